// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8_test

import (
	"testing"

	"github.com/db47h/counter8"
	"github.com/pkg/errors"
)

func TestParseValue(t *testing.T) {
	td := []struct {
		in       string
		v        uint8
		rangeErr bool
		err      bool
	}{
		{"0", 0, false, false},
		{"250", 250, false, false},
		{" 0xFF ", 255, false, false},
		{"0b1010", 10, false, false},
		{"0o17", 15, false, false},
		{"256", 0, true, true},
		{"-1", 0, true, true},
		{"99999999999999999999", 0, true, true},
		{"ten", 0, false, true},
		{"", 0, false, true},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			v, err := counter8.ParseValue(d.in)
			if (err != nil) != d.err {
				t.Fatalf("got error %v", err)
			}
			if (errors.Cause(err) == counter8.ErrValueRange) != d.rangeErr {
				t.Fatalf("got error %v, range error expected: %v", err, d.rangeErr)
			}
			if v != d.v {
				t.Fatalf("got %d, expected %d", v, d.v)
			}
		})
	}
}
