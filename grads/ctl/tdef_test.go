package ctl

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTdef(t *testing.T) {
	tests := []struct {
		line  string
		count int
		start time.Time
		step  time.Duration
	}{
		{"tdef 1 linear 00z03aug2021 360mn", 1,
			time.Date(2021, 8, 3, 0, 0, 0, 0, time.UTC), 6 * time.Hour},
		{"tdef    1 linear 00z03AUG2021   360mn", 1,
			time.Date(2021, 8, 3, 0, 0, 0, 0, time.UTC), 6 * time.Hour},
		{"TDEF 41 LINEAR 12Z31DEC1999 6HR", 41,
			time.Date(1999, 12, 31, 12, 0, 0, 0, time.UTC), 6 * time.Hour},
		{"tdef 3 linear 18z28feb2020 1dy", 3,
			time.Date(2020, 2, 28, 18, 0, 0, 0, time.UTC), 24 * time.Hour},
		{"tdef 5 linear 06z01jan2000 15mn", 5,
			time.Date(2000, 1, 1, 6, 0, 0, 0, time.UTC), 15 * time.Minute},
	}
	for _, test := range tests {
		c, _, err := decodeFirst(test.line)
		if err != nil {
			t.Error(test.line, err)
			return
		}
		td := c.TDef
		if td.Type != Linear || td.Count != test.count || len(td.Values) != test.count {
			t.Error(test.line, "wrong tdef", td.Type, td.Count, len(td.Values))
			return
		}
		if !td.Start.Equal(test.start) || td.Step != test.step {
			t.Error(test.line, "wrong start/step", td.Start, td.Step)
			return
		}
		for i, v := range td.Values {
			if !v.Equal(test.start.Add(time.Duration(i) * test.step)) {
				t.Error(test.line, "wrong value at", i, v)
				return
			}
		}
	}
}

func TestTdefLeapDay(t *testing.T) {
	c, _, err := decodeFirst("tdef 3 linear 18z28feb2020 1dy")
	if err != nil {
		t.Error(err)
		return
	}
	want := time.Date(2020, 3, 1, 18, 0, 0, 0, time.UTC)
	if !c.TDef.Values[2].Equal(want) {
		t.Error("got", c.TDef.Values[2], "want", want)
	}
}

func TestTdefLongAxis(t *testing.T) {
	// 328 years of daily steps, longer than a Duration can span
	c, _, err := decodeFirst("tdef 120000 linear 00z01jan1900 1dy")
	if err != nil {
		t.Error(err)
		return
	}
	values := c.TDef.Values
	for i := 1; i < len(values); i++ {
		if !values[i].After(values[i-1]) {
			t.Error("time axis not increasing at", i, values[i-1], values[i])
			return
		}
	}
	want := time.Date(1900, 1, 1+119999, 0, 0, 0, 0, time.UTC)
	if last := values[len(values)-1]; !last.Equal(want) {
		t.Error("last time", last, "want", want)
	}
}

func TestBadTdef(t *testing.T) {
	quietly(t)
	tests := []struct {
		line  string
		err   error
		token string
	}{
		{"tdef 1 linear 00z03aug2021", ErrMalformedTimeDimension, "tdef"},
		{"tdef 1 linear 00z03aug2021 6hr extra", ErrMalformedTimeDimension, "tdef"},
		{"tdef 2 levels 00z03aug2021 00z04aug2021", ErrMalformedTimeDimension, "levels"},
		{"tdef x linear 00z03aug2021 6hr", ErrMalformedTimeDimension, "x"},
		{"tdef 1 linear 00:00z03aug2021 6hr", ErrUnsupportedTimeFormat, "00:00z03aug2021"},
		{"tdef 1 linear 00z3aug2021 6hr", ErrUnsupportedTimeFormat, "00z3aug2021"},
		{"tdef 1 linear 03aug2021 6hr", ErrUnsupportedTimeFormat, "03aug2021"},
		{"tdef 1 linear 00z03xyz2021 6hr", ErrUnsupportedTimeFormat, "00z03xyz2021"},
		{"tdef 1 linear 00z03aug2021 1mo", ErrUnsupportedTimeUnit, "mo"},
		{"tdef 1 linear 00z03aug2021 1yr", ErrUnsupportedTimeUnit, "yr"},
		{"tdef 1 linear 00z03aug2021 6hh", ErrUnsupportedTimeUnit, "hh"},
		{"tdef 1 linear 00z03aug2021 xxhr", ErrMalformedTimeDimension, "xxhr"},
		{"tdef 1 linear 00z03aug2021 hr", ErrMalformedTimeDimension, "hr"},
		{"tdef 1 linear 00z03aug2021 200000dy", ErrMalformedTimeDimension, "200000dy"},
		{"tdef 99999999999999 linear 00z03aug2021 6hr", ErrMalformedTimeDimension, "tdef"},
	}
	for _, test := range tests {
		_, _, err := decodeFirst(test.line)
		if !errors.Is(err, test.err) {
			t.Error(test.line, "got", err, "want", test.err)
			continue
		}
		if !strings.Contains(err.Error(), test.token) {
			t.Error(test.line, "error should name", test.token, err)
		}
	}
}
