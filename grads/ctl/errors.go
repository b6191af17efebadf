package ctl

import "errors"

var (
	// ErrMalformedDirective is returned for a dset/undef line that can't be decoded
	ErrMalformedDirective = errors.New("malformed directive")

	// ErrMalformedDimension is returned for an xdef/ydef/zdef line with missing
	// or invalid fields, or an explicit level list that ends early
	ErrMalformedDimension = errors.New("malformed dimension")

	// ErrUnsupportedDimension is returned for dimension kinds other than
	// linear and levels (gaussian grids, for instance)
	ErrUnsupportedDimension = errors.New("unsupported dimension type")

	// ErrMalformedTimeDimension is returned when tdef doesn't have the
	// "tdef <count> linear <start> <increment>" shape
	ErrMalformedTimeDimension = errors.New("malformed tdef")

	// ErrUnsupportedTimeFormat is returned for start times other than hhZddmmmyyyy
	ErrUnsupportedTimeFormat = errors.New("unsupported time format")

	// ErrUnsupportedTimeUnit is returned for increments in months, years or
	// any unit other than mn, hr and dy
	ErrUnsupportedTimeUnit = errors.New("unsupported time unit")

	// ErrMalformedVars is returned for a bad vars header or variable line
	ErrMalformedVars = errors.New("malformed vars")

	// ErrMissingAxis is returned when the record index needs an axis the
	// descriptor never declared
	ErrMissingAxis = errors.New("missing axis")
)
