package ctl

import (
	"strings"

	"github.com/batchatco/go-native-grads/internal"
)

// parseVars reads the header line and exactly the declared number of
// variable lines after it. Only the old style record is understood:
//
//	name levels units description...
func (p *parser) parseVars(c *cursor) {
	parts := strings.Fields(c.line())
	assertf(len(parts) == 2, ErrMalformedVars, "vars: expected a count, found %q", c.line())
	count, ok := toInt(parts[1])
	assertf(ok && count >= 0, ErrMalformedVars, "vars: bad count %q", parts[1])

	vars := make([]Variable, 0, capacity(count, c))
	for i := 0; i < count; i++ {
		line, ok := c.next()
		assertf(ok, ErrMalformedVars, "vars: expected %d variables, found %d", count, i)
		vars = append(vars, parseVariable(line))
	}
	p.ctl.Vars = vars
}

func parseVariable(line string) Variable {
	parts := strings.Fields(line)
	assertf(len(parts) >= 3, ErrMalformedVars, "variable line %q", line)
	levels, ok := toInt(parts[1])
	assertf(ok && levels >= 0, ErrMalformedVars, "%s: bad level count %q", parts[0], parts[1])
	if !internal.IsValidVarName(parts[0]) {
		logger.Warnf("variable name %q is not a valid GrADS name", parts[0])
	}
	return Variable{
		Name:        parts[0],
		Levels:      levels,
		Units:       parts[2],
		Description: strings.Join(parts[3:], " "),
	}
}
