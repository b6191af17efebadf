// Package grads opens GrADS datasets: a descriptor (control) file and the
// flat binary data file it describes.
package grads

import (
	"github.com/batchatco/go-native-grads/grads/ctl"
	"github.com/batchatco/go-native-grads/grads/data"
)

// Open parses the descriptor fname and opens its data file. The caller
// must close the returned reader.
func Open(fname string) (*ctl.Ctl, *data.Reader, error) {
	c, err := ctl.Parse(fname)
	if err != nil {
		return nil, nil, err
	}
	r, err := data.Open(c)
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}
