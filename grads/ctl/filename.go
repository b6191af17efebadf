package ctl

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Descriptor names written by the GRAPES post processors.
var fileNamePrefixes = []string{"post.ctl_", "model.ctl_"}

const issueTimeLayout = "2006010215"

var (
	// GRAPES MESO: post.ctl_201408111202900
	mesoRe *regexp.Regexp
	// GRAPES GFS: post.ctl_2014081112_001
	gfsRe *regexp.Regexp
)

func init() {
	var err error
	mesoRe, err = regexp.Compile(`^([0-9]{10})[0-9]([0-9]{3})[0-9]`)
	if err != nil {
		panic(err)
	}
	gfsRe, err = regexp.Compile(`^([0-9]{10})_([0-9]{3})`)
	if err != nil {
		panic(err)
	}
}

// guessTimes fills StartTime and ForecastTime from the descriptor's file
// name when nothing else set them. Failure only warns.
func (p *parser) guessTimes() {
	if p.ctl.StartTime != nil || p.ctl.ForecastTime != nil {
		return
	}
	logger.Debug("guess start time and forecast time")
	start, forecast, ok := timesFromFileName(filepath.Base(p.fname))
	if !ok {
		logger.Warnf("can't recognize ctl file name %q", filepath.Base(p.fname))
		return
	}
	p.ctl.StartTime = &start
	p.ctl.ForecastTime = &forecast
}

func timesFromFileName(name string) (time.Time, time.Duration, bool) {
	prefixed := false
	for _, prefix := range fileNamePrefixes {
		if strings.HasPrefix(name, prefix) {
			prefixed = true
			break
		}
	}
	if !prefixed {
		return time.Time{}, 0, false
	}
	stamp := name[strings.Index(name, "_")+1:]

	m := mesoRe.FindStringSubmatch(stamp)
	if m == nil {
		m = gfsRe.FindStringSubmatch(stamp)
	}
	if m == nil {
		return time.Time{}, 0, false
	}
	start, err := time.Parse(issueTimeLayout, m[1])
	if err != nil {
		return time.Time{}, 0, false
	}
	hours, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, 0, false
	}
	return start, time.Duration(hours) * time.Hour, true
}
