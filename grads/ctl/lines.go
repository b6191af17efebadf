package ctl

import (
	"bufio"
	"os"
	"strings"
)

// Long vars blocks can carry lengthy descriptions.
const maxLineSize = 1024 * 1024

// readLines reads the whole descriptor into memory. The file is closed
// before returning.
func readLines(fname string) ([]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// cursor walks the descriptor lines once. Handlers for multi-line
// directives move it forward past the lines they consume.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

func (c *cursor) line() string {
	return c.lines[c.pos]
}

// next moves to the following line and returns it, or returns false if
// there are no more lines.
func (c *cursor) next() (string, bool) {
	if c.pos+1 >= len(c.lines) {
		return "", false
	}
	c.pos++
	return c.lines[c.pos], true
}
