package internal

import (
	"regexp"
)

const (
	// GrADS variable names start with a letter and hold letters, digits and
	// underscores. Longer names are truncated by GrADS itself, so length
	// is not checked.
	pattern = `^[A-Za-z][A-Za-z0-9_]*$`
)

var (
	re *regexp.Regexp
)

func init() {
	var err error
	re, err = regexp.Compile(pattern)
	if err != nil {
		panic(err)
	}
}

// IsValidVarName returns true if name is a valid GrADS variable name.
func IsValidVarName(name string) bool {
	return re.MatchString(name)
}
