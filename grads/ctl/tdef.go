package ctl

import (
	"strings"
	"time"
)

// hhZddmmmyyyy, e.g. 00z03aug2021. The token is lower-cased before parsing.
const startTimeLayout = "15z02Jan2006"

//	tdef    1 linear 00z03AUG2021   360mn
func (p *parser) parseTdef(c *cursor) {
	parts := strings.Fields(c.line())
	assertf(len(parts) == 5, ErrMalformedTimeDimension, "tdef: expected 5 fields, found %d", len(parts))
	assertf(strings.EqualFold(parts[2], string(Linear)), ErrMalformedTimeDimension,
		"tdef: only linear is supported, found %q", parts[2])

	count := mustCount(parts[1], ErrMalformedTimeDimension, "tdef")
	start := parseStartTime(parts[3])
	step := parseIncrement(parts[4])

	// i*step as a Duration overflows past about 292 years.
	values := make([]time.Time, count)
	values[0] = start
	for i := 1; i < count; i++ {
		values[i] = values[i-1].Add(step)
	}
	p.ctl.TDef = &TimeDimension{
		Type:   Linear,
		Count:  count,
		Start:  start,
		Step:   step,
		Values: values,
	}
}

// Only the form without minutes is handled. The full GrADS grammar is
// hh:mmZddmmmyyyy with optional parts and two digit years.
func parseStartTime(s string) time.Time {
	assertf(!strings.Contains(s, ":"), ErrUnsupportedTimeFormat, "tdef: start time with minutes %q", s)
	assertf(len(s) == len(startTimeLayout), ErrUnsupportedTimeFormat, "tdef: start time %q", s)
	t, err := time.Parse(startTimeLayout, strings.ToLower(s))
	assertf(err == nil, ErrUnsupportedTimeFormat, "tdef: start time %q", s)
	return t
}

// Increment is vvkk: an integer and a unit among mn, hr, dy, mo, yr.
// Months and years have no fixed duration and are rejected.
func parseIncrement(s string) time.Duration {
	assertf(len(s) > 2, ErrMalformedTimeDimension, "tdef: increment %q", s)
	vv, ok := toInt(s[:len(s)-2])
	assertf(ok, ErrMalformedTimeDimension, "tdef: increment %q", s)
	var unit time.Duration
	switch kk := strings.ToLower(s[len(s)-2:]); kk {
	case "mn":
		unit = time.Minute
	case "hr":
		unit = time.Hour
	case "dy":
		unit = 24 * time.Hour
	default:
		failf(ErrUnsupportedTimeUnit, "tdef: %q", kk)
	}
	d := time.Duration(vv) * unit
	assertf(d/unit == time.Duration(vv), ErrMalformedTimeDimension, "tdef: increment %q out of range", s)
	return d
}
