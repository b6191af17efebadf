package internal

// Internal logging utility.

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Logger struct {
	logLevel LogLevel
	logger   *log.Logger
	lock     sync.Mutex
}

type LogLevel int

const (
	// error levels that should almost always be printed
	LevelFatal LogLevel = iota // error that must stop the program
	LevelError                 // error that does not need to stop execution

	// debugging levels, okay to disable
	LevelWarn  // something may be wrong, but not necessarily an error
	LevelInfo  // nothing wrong, informational only
	LevelDebug // chatty tracing of the decoder

	// Production code by default only shows warnings and above.
	LogLevelDefault = LevelWarn

	// min, max levels for setting print level
	LevelMin = LevelFatal
	LevelMax = LevelDebug
)

var (
	levelToPrefix = []string{
		"FATAL ",
		"ERROR ",
		"WARN ",
		"INFO ",
		"DEBUG ",
	}
)

// NewLogger returns a logger writing to stderr. The name, if any, is
// printed after the level prefix on every line.
func NewLogger(name string) *Logger {
	prefix := ""
	if name != "" {
		prefix = name + ": "
	}
	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lmsgprefix)
	logger.SetPrefix(prefix)
	return &Logger{logLevel: LogLevelDefault, logger: logger}
}

func (l *Logger) LogLevel() LogLevel {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.logLevel
}

// SetLogLevel returns the old level
func (l *Logger) SetLogLevel(level LogLevel) LogLevel {
	if level < LevelMin || level > LevelMax {
		panic("trying to set invalid log level")
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	old := l.logLevel
	l.logLevel = level
	return old
}

// SetOutput redirects the logger, mostly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.logger.SetOutput(w)
}

func (l *Logger) output(level LogLevel, s string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if level > l.logLevel {
		return
	}
	l.logger.Output(3, levelToPrefix[level]+s)
}

func (l *Logger) Debug(v ...any)                 { l.output(LevelDebug, fmt.Sprintln(v...)) }
func (l *Logger) Debugf(format string, v ...any) { l.output(LevelDebug, fmt.Sprintf(format, v...)) }

func (l *Logger) Info(v ...any)                 { l.output(LevelInfo, fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...any) { l.output(LevelInfo, fmt.Sprintf(format, v...)) }

func (l *Logger) Warn(v ...any)                 { l.output(LevelWarn, fmt.Sprintln(v...)) }
func (l *Logger) Warnf(format string, v ...any) { l.output(LevelWarn, fmt.Sprintf(format, v...)) }

func (l *Logger) Error(v ...any)                 { l.output(LevelError, fmt.Sprintln(v...)) }
func (l *Logger) Errorf(format string, v ...any) { l.output(LevelError, fmt.Sprintf(format, v...)) }

func (l *Logger) Fatal(v ...any) {
	l.output(LevelFatal, fmt.Sprintln(v...))
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, v ...any) {
	l.output(LevelFatal, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// SetLevelFromInt maps the public 0..4 verbosity scale onto log levels
// and returns the old level on the same scale.
func (l *Logger) SetLevelFromInt(level int) int {
	switch {
	case level <= 0:
		level = int(LevelFatal)
	case level > int(LevelMax):
		level = int(LevelMax)
	}
	return int(l.SetLogLevel(LogLevel(level)))
}
