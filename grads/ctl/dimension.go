package ctl

import (
	"strings"
)

// parseDimension handles xdef, ydef and zdef.
func (p *parser) parseDimension(c *cursor) {
	tokens := strings.Fields(strings.ToLower(c.line()))
	name := tokens[0]
	assertf(len(tokens) >= 3, ErrMalformedDimension, "%s: expected count and type", name)
	count := mustCount(tokens[1], ErrMalformedDimension, name)

	var dim *Dimension
	switch DimensionType(tokens[2]) {
	case Linear:
		dim = parseLinearDimension(name, count, tokens)
	case Levels:
		dim = parseLevelsDimension(name, count, tokens, c)
	default:
		failf(ErrUnsupportedDimension, "%s: %q", name, tokens[2])
	}

	switch name {
	case "xdef":
		p.ctl.XDef = dim
	case "ydef":
		p.ctl.YDef = dim
	case "zdef":
		p.ctl.ZDef = dim
	}
}

//	xdef 1440 linear    0.0000    0.2500
func parseLinearDimension(name string, count int, tokens []string) *Dimension {
	assertf(len(tokens) >= 5, ErrMalformedDimension, "%s: linear needs start and step", name)
	start := mustFloat(tokens[3], ErrMalformedDimension, name)
	step := mustFloat(tokens[4], ErrMalformedDimension, name)
	values := make([]float64, count)
	for n := range values {
		values[n] = start + step*float64(n)
	}
	return &Dimension{
		Name:   name,
		Type:   Linear,
		Count:  count,
		Start:  start,
		Step:   step,
		Values: values,
	}
}

// Levels may be given on the xdef line, on the lines after it, or both:
//
//	zdef   27 levels
//	     1000.000
//	     925.0000
//	     ...
func parseLevelsDimension(name string, count int, tokens []string, c *cursor) *Dimension {
	values := make([]float64, 0, capacity(count, c)+len(tokens))
	for _, tok := range tokens[3:] {
		values = append(values, mustFloat(tok, ErrMalformedDimension, name))
	}
	if len(values) > count {
		logger.Warnf("%s: %d levels given, %d declared; extra ignored", name, len(values), count)
		values = values[:count]
	}
	for len(values) < count {
		line, ok := c.next()
		assertf(ok, ErrMalformedDimension, "%s: expected %d levels, found %d", name, count, len(values))
		values = append(values, mustFloat(line, ErrMalformedDimension, name))
	}
	return &Dimension{
		Name:   name,
		Type:   Levels,
		Count:  count,
		Values: values,
	}
}
