package ctl

import (
	"fmt"

	"github.com/batchatco/go-thrower"
)

// Throws err, annotated with the formatted message, if condition isn't met
func assertf(condition bool, err error, format string, v ...any) {
	if condition {
		return
	}
	failf(err, format, v...)
}

// Throws always. The message names the offending keyword or token.
func failf(err error, format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	logger.Info(msg)
	thrower.Throw(fmt.Errorf("%w: %s", err, msg))
	panic("never gets here")
}
