package util

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/batchatco/go-thrower"
)

// MustWrite wraps binary.Write and throws an error if it fails.
func MustWrite(w io.Writer, order binary.ByteOrder, data any) {
	err := binary.Write(w, order, data)
	thrower.ThrowIfError(err)
}

// MustReadAt reads exactly len(p) bytes at offset off and throws on a short read.
func MustReadAt(r io.ReaderAt, p []byte, off int64) {
	n, err := r.ReadAt(p, off)
	if n == len(p) {
		return
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	thrower.Throw(err)
}

// MustReadFloat32s reads n 32-bit floats starting at offset off.
func MustReadFloat32s(r io.ReaderAt, off int64, order binary.ByteOrder, n int) []float32 {
	b := make([]byte, 4*n)
	MustReadAt(r, b, off)
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = math.Float32frombits(order.Uint32(b[4*i:]))
	}
	return vals
}

// MustReadUint32At reads one 32-bit unsigned integer at offset off.
func MustReadUint32At(r io.ReaderAt, off int64, order binary.ByteOrder) uint32 {
	var b [4]byte
	MustReadAt(r, b[:], off)
	return order.Uint32(b[:])
}
