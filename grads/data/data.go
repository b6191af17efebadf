// Package data reads 2D fields from the binary file a GrADS descriptor
// points at. Records are fixed size, so a field's byte offset is its
// record index times the record size.
package data

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/batchatco/go-native-grads/grads/ctl"
	"github.com/batchatco/go-native-grads/grads/util"
	"github.com/batchatco/go-native-grads/internal"
	"github.com/batchatco/go-thrower"
)

// Fortran sequential records are framed by a 4-byte length on each side.
const markerSize = 4

var (
	// ErrNoGrid is returned when the descriptor lacks xdef or ydef
	ErrNoGrid = errors.New("descriptor has no horizontal grid")

	// ErrRecordRange is returned for records past the end of the index
	ErrRecordRange = errors.New("record out of range")

	// ErrNotFound is returned when no record matches a lookup
	ErrNotFound = errors.New("not found")

	// ErrCorruptedRecord is returned when sequential record markers don't
	// match the record size
	ErrCorruptedRecord = errors.New("corrupted record")
)

var (
	logger = internal.NewLogger("data")
)

// SetLogLevel sets the logging level and returns the old one, on the same
// 0 (fatal only) to 4 (debug) scale as ctl.SetLogLevel.
func SetLogLevel(level int) int {
	return logger.SetLevelFromInt(level)
}

type Reader struct {
	ctl     *ctl.Ctl
	file    io.ReaderAt
	closer  io.Closer
	nx, ny  int
	recSize int64 // including markers
}

// Open opens the descriptor's data file.
func Open(c *ctl.Ctl) (*Reader, error) {
	file, err := os.Open(c.Dset)
	if err != nil {
		return nil, err
	}
	r, err := New(c, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.closer = file
	return r, nil
}

// New is like Open, but reads from r. The caller keeps ownership of r.
func New(c *ctl.Ctl, r io.ReaderAt) (*Reader, error) {
	if c.XDef == nil || c.YDef == nil {
		return nil, ErrNoGrid
	}
	nx, ny := c.XDef.Count, c.YDef.Count
	recSize := int64(nx) * int64(ny) * 4
	if c.Sequential {
		recSize += 2 * markerSize
	}
	logger.Debugf("%s: %dx%d grid, %d byte records, %s endian",
		c.Dset, nx, ny, recSize, c.ByteOrder)
	return &Reader{ctl: c, file: r, nx: nx, ny: ny, recSize: recSize}, nil
}

// RecordSize is the size in bytes of one record in the data file.
func (r *Reader) RecordSize() int64 {
	return r.recSize
}

// Offset returns where rec's values start in the data file.
func (r *Reader) Offset(rec ctl.Record) int64 {
	off := int64(rec.Index) * r.recSize
	if r.ctl.Sequential {
		off += markerSize
	}
	return off
}

// ReadRecord returns rec as ny rows of nx values, south to north. Values
// equal to the descriptor's undef become NaN.
func (r *Reader) ReadRecord(rec ctl.Record) (rows [][]float32, err error) {
	defer thrower.RecoverError(&err)
	if rec.Index < 0 || rec.Index >= len(r.ctl.Records) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRecordRange, rec.Index, len(r.ctl.Records))
	}
	order := r.ctl.ByteOrder.Order()
	n := r.nx * r.ny
	off := r.Offset(rec)
	if r.ctl.Sequential {
		r.checkMarker(off-markerSize, rec)
		r.checkMarker(off+int64(n)*4, rec)
	}
	vals := util.MustReadFloat32s(r.file, off, order, n)
	if r.ctl.Undef != nil {
		undef := float32(*r.ctl.Undef)
		for i, v := range vals {
			if v == undef {
				vals[i] = float32(math.NaN())
			}
		}
	}

	rows = make([][]float32, r.ny)
	for j := range rows {
		rows[j] = vals[j*r.nx : (j+1)*r.nx]
	}
	// yrev files are stored north to south
	if r.ctl.YRev {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows, nil
}

func (r *Reader) checkMarker(off int64, rec ctl.Record) {
	want := uint32(r.nx * r.ny * 4)
	got := util.MustReadUint32At(r.file, off, r.ctl.ByteOrder.Order())
	if got != want {
		logger.Errorf("record %d (%s): marker %d, want %d", rec.Index, rec.Name, got, want)
		thrower.Throw(ErrCorruptedRecord)
	}
}

// ReadField reads the field of variable name at valid time t and level
// index levelIndex (0 for single level variables).
func (r *Reader) ReadField(name string, t time.Time, levelIndex int) ([][]float32, error) {
	rec, has := r.ctl.Record(name, t, levelIndex)
	if !has {
		return nil, fmt.Errorf("%w: %s at %s level %d", ErrNotFound, name,
			t.Format(time.RFC3339), levelIndex)
	}
	return r.ReadRecord(rec)
}

// Close closes the data file if the reader opened it.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
