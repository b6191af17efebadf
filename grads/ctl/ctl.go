// Package ctl decodes GrADS descriptor (control) files and builds the
// record index of the companion binary data file.
package ctl

import (
	"encoding/binary"
	"path/filepath"
	"strings"
	"time"

	"github.com/batchatco/go-native-grads/grads/util"
	"github.com/batchatco/go-native-grads/internal"
	"github.com/batchatco/go-thrower"
)

// ByteOrder of the binary data file.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (bo ByteOrder) String() string {
	if bo == BigEndian {
		return "big"
	}
	return "little"
}

func (bo ByteOrder) MarshalText() ([]byte, error) {
	return []byte(bo.String()), nil
}

// Order returns the matching encoding/binary byte order.
func (bo ByteOrder) Order() binary.ByteOrder {
	if bo == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

type DimensionType string

const (
	Linear DimensionType = "linear"
	Levels DimensionType = "levels"
)

// Dimension is one of xdef, ydef or zdef.
type Dimension struct {
	Name   string
	Type   DimensionType
	Count  int
	Start  float64 // linear only
	Step   float64 // linear only
	Values []float64
}

// TimeDimension is a linear tdef.
type TimeDimension struct {
	Type   DimensionType
	Count  int
	Start  time.Time
	Step   time.Duration
	Values []time.Time
}

// Variable is one entry of the vars block. Levels is 0 for a surface
// (single level) field.
type Variable struct {
	Name        string
	Levels      int
	Units       string
	Description string
}

type LevelType string

const (
	Single LevelType = "single"
	Multi  LevelType = "multi"
)

// Record is one 2D field of the data file. Index is its position in the
// file, counted in records.
type Record struct {
	Name        string
	LevelType   LevelType
	Level       float64
	LevelIndex  int
	ValidTime   time.Time
	Units       string
	Description string
	Index       int
}

// Ctl is a decoded descriptor.
type Ctl struct {
	Dset       string
	Title      string
	Options    []string
	ByteOrder  ByteOrder
	YRev       bool
	Sequential bool
	Undef      *float64

	// Only set when they can be guessed from the descriptor's file name.
	StartTime    *time.Time
	ForecastTime *time.Duration

	XDef *Dimension
	YDef *Dimension
	ZDef *Dimension
	TDef *TimeDimension

	Vars    []Variable
	Records []Record

	varIndex *util.NameIndex
}

var (
	logger = internal.NewLogger("ctl")
)

// SetLogLevel sets the logging level to the given level, and returns
// the old level. The lowest level is 0 (fatal only) and the highest is
// 4 (everything, including decoder tracing).
func SetLogLevel(level int) int {
	return logger.SetLevelFromInt(level)
}

type handler func(p *parser, c *cursor)

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"dset":    (*parser).parseDset,
		"options": (*parser).parseOptions,
		"title":   (*parser).parseTitle,
		"undef":   (*parser).parseUndef,
		"xdef":    (*parser).parseDimension,
		"ydef":    (*parser).parseDimension,
		"zdef":    (*parser).parseDimension,
		"tdef":    (*parser).parseTdef,
		"vars":    (*parser).parseVars,
	}
}

type parser struct {
	fname string
	ctl   *Ctl
}

// Parse decodes the descriptor file fname. On error no document is returned.
func Parse(fname string) (*Ctl, error) {
	lines, err := readLines(fname)
	if err != nil {
		return nil, err
	}
	p := &parser{fname: fname, ctl: &Ctl{}}
	err = p.parse(lines)
	if err != nil {
		return nil, err
	}
	return p.ctl, nil
}

func (p *parser) parse(lines []string) (err error) {
	defer thrower.RecoverError(&err)
	for c := newCursor(lines); !c.done(); c.pos++ {
		keyword := firstWord(c.line())
		if keyword == "" {
			continue
		}
		h, has := handlers[strings.ToLower(keyword)]
		if !has {
			logger.Debugf("skipping line %d: %q", c.pos+1, keyword)
			continue
		}
		h(p, c)
	}
	p.ctl.Records = buildRecords(p.ctl)
	p.ctl.varIndex = newVarIndex(p.ctl.Vars)
	p.guessTimes()
	return nil
}

func firstWord(line string) string {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i]
	}
	return line
}

// rest returns the line with its leading keyword removed.
func rest(line string) string {
	return strings.TrimSpace(line[len(firstWord(line)):])
}

// dset ^postvar2021080200_024
func (p *parser) parseDset(c *cursor) {
	dset := rest(c.line())
	assertf(dset != "", ErrMalformedDirective, "dset: no file name")
	if strings.HasPrefix(dset, "^") {
		dset = filepath.Join(filepath.Dir(p.fname), dset[1:])
	}
	p.ctl.Dset = dset
}

func (p *parser) parseOptions(c *cursor) {
	options := strings.Fields(rest(c.line()))
	p.ctl.Options = append(p.ctl.Options, options...)
	for _, option := range options {
		switch strings.ToLower(option) {
		case "big_endian":
			p.ctl.ByteOrder = BigEndian
		case "little_endian":
			p.ctl.ByteOrder = LittleEndian
		case "yrev":
			p.ctl.YRev = true
		case "sequential":
			p.ctl.Sequential = true
		}
	}
}

func (p *parser) parseTitle(c *cursor) {
	p.ctl.Title = rest(c.line())
}

func (p *parser) parseUndef(c *cursor) {
	fields := strings.Fields(c.line())
	assertf(len(fields) >= 2, ErrMalformedDirective, "undef: no value")
	undef := mustFloat(fields[1], ErrMalformedDirective, "undef")
	p.ctl.Undef = &undef
}

// Variable returns the first declared variable with the given name.
func (c *Ctl) Variable(name string) (Variable, bool) {
	pos, has := c.index().First(name)
	if !has {
		return Variable{}, false
	}
	return c.Vars[pos], true
}

// VariableNames returns the unique variable names in declaration order.
func (c *Ctl) VariableNames() []string {
	return c.index().Keys()
}

// RecordsFor returns the records of every variable declared as name.
func (c *Ctl) RecordsFor(name string) []Record {
	if _, has := c.index().Get(name); !has {
		return nil
	}
	var recs []Record
	for _, r := range c.Records {
		if r.Name == name {
			recs = append(recs, r)
		}
	}
	return recs
}

// Record finds the record of the first variable declared as name at
// valid time t and the given level index (0 for single level fields).
func (c *Ctl) Record(name string, t time.Time, levelIndex int) (Record, bool) {
	pos, has := c.index().First(name)
	if !has || c.TDef == nil {
		return Record{}, false
	}
	tpos := -1
	for i, vt := range c.TDef.Values {
		if vt.Equal(t) {
			tpos = i
			break
		}
	}
	if tpos < 0 {
		return Record{}, false
	}
	perStep := 0
	varOffset := 0
	for i, v := range c.Vars {
		if i == pos {
			varOffset = perStep
		}
		perStep += levelsInFile(v)
	}
	if levelIndex < 0 || levelIndex >= levelsInFile(c.Vars[pos]) {
		return Record{}, false
	}
	idx := tpos*perStep + varOffset + levelIndex
	if idx >= len(c.Records) {
		return Record{}, false
	}
	return c.Records[idx], true
}

// index falls back to a throwaway index for documents not built by Parse.
func (c *Ctl) index() *util.NameIndex {
	if c.varIndex != nil {
		return c.varIndex
	}
	return newVarIndex(c.Vars)
}

func newVarIndex(vars []Variable) *util.NameIndex {
	ni := util.NewNameIndex()
	for _, v := range vars {
		ni.Add(v.Name)
	}
	return ni
}
