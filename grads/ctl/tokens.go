package ctl

import (
	"strconv"

	"github.com/spf13/cast"
)

// Counts are decimal. strconv is used rather than cast here because cast
// parses integers with base prefixes, and "010" would come back as 8.
func toInt(tok string) (int, bool) {
	n, err := strconv.Atoi(tok)
	return n, err == nil
}

func toFloat(tok string) (float64, bool) {
	f, err := cast.ToFloat64E(tok)
	return f, err == nil
}

func mustFloat(tok string, err error, keyword string) float64 {
	f, ok := toFloat(tok)
	assertf(ok, err, "%s: bad number %q", keyword, tok)
	return f
}

// maxCount bounds declared dimension sizes, which are allocated up front.
const maxCount = 1 << 24

func mustCount(tok string, err error, keyword string) int {
	n, ok := toInt(tok)
	assertf(ok && n > 0, err, "%s: bad count %q", keyword, tok)
	assertf(n <= maxCount, err, "%s: count %d exceeds %d", keyword, n, maxCount)
	return n
}

// capacity caps a declared count at the lines left after the cursor,
// so a bogus count fails on missing lines instead of a huge allocation.
func capacity(count int, c *cursor) int {
	return min(count, len(c.lines)-c.pos-1)
}
