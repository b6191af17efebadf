package util

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/batchatco/go-thrower"
)

// errWriter is an io.Writer that always returns an error.
type errWriter struct{ err error }

func (e errWriter) Write(p []byte) (int, error) { return 0, e.err }

var errIO = errors.New("io error")

func TestMustWriteRead(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		var buf bytes.Buffer
		MustWrite(&buf, order, []float32{1.5, -2})
		got := MustReadFloat32s(bytes.NewReader(buf.Bytes()), 0, order, 2)
		if got[0] != 1.5 || got[1] != -2 {
			t.Errorf("%v: got %v", order, got)
		}
	}
}

func TestMustReadFloat32s(t *testing.T) {
	var buf bytes.Buffer
	MustWrite(&buf, binary.BigEndian, []float32{9, 1, 2, 3})
	r := bytes.NewReader(buf.Bytes())
	got := MustReadFloat32s(r, 4, binary.BigEndian, 3)
	want := []float32{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			return
		}
	}
	// wrong byte order gives different bits
	swapped := MustReadFloat32s(r, 4, binary.LittleEndian, 1)
	if math.Float32bits(swapped[0]) == math.Float32bits(1) {
		t.Error("byte order was ignored")
	}
}

func TestMustReadUint32At(t *testing.T) {
	r := bytes.NewReader([]byte{0, 0, 0, 0x10, 0x20})
	if got := MustReadUint32At(r, 0, binary.BigEndian); got != 0x10 {
		t.Errorf("got 0x%X, want 0x10", got)
	}
}

func TestMustWriteError(t *testing.T) {
	err := func() (e error) {
		defer thrower.RecoverError(&e)
		MustWrite(errWriter{errIO}, binary.LittleEndian, uint32(0))
		return nil
	}()
	if err == nil {
		t.Error("expected error, got nil")
	}
}

func TestMustReadAtShort(t *testing.T) {
	err := func() (e error) {
		defer thrower.RecoverError(&e)
		MustReadFloat32s(bytes.NewReader([]byte{1, 2, 3, 4, 5}), 0, binary.LittleEndian, 2)
		return nil
	}()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
	err = func() (e error) {
		defer thrower.RecoverError(&e)
		MustReadUint32At(bytes.NewReader([]byte{1}), 0, binary.LittleEndian)
		return nil
	}()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}
