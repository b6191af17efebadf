package grads

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/batchatco/go-native-grads/grads/util"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	ctlFile := filepath.Join(dir, "post.ctl_2021080200_003")
	lines := []string{
		"dset ^postvar2021080200_003",
		"options big_endian",
		"xdef 2 linear 0 180",
		"ydef 1 linear 0 1",
		"tdef 1 linear 03z02aug2021 1hr",
		"vars 1",
		"ps 0 99 surface pressure",
		"endvars",
	}
	if err := os.WriteFile(ctlFile, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	util.MustWrite(&buf, binary.BigEndian, []float32{101325, 100000})
	if err := os.WriteFile(filepath.Join(dir, "postvar2021080200_003"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	c, r, err := Open(ctlFile)
	if err != nil {
		t.Error(err)
		return
	}
	defer r.Close()
	rows, err := r.ReadRecord(c.Records[0])
	if err != nil {
		t.Error(err)
		return
	}
	if rows[0][0] != 101325 || rows[0][1] != 100000 {
		t.Error("wrong values", rows)
	}
}

func TestOpenMissing(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing.ctl"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected not exist, got", err)
	}
}
