// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vcd writes Value Change Dump files as read by waveform viewers like
// GTKWave.
//
package vcd

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Var is a traced variable. Width is in bits, from 1 to 64.
//
type Var struct {
	Name  string
	Width int
}

// Writer writes VCD samples. Only values that changed since the previous
// sample are written.
//
type Writer struct {
	w     *bufio.Writer
	vars  []Var
	ids   []string
	last  []uint64
	first bool
	time  uint64
	err   error
}

// identifier codes use the printable ASCII range.
const (
	idFirst = '!'
	idBase  = '~' - '!' + 1
)

func idCode(i int) string {
	var b []byte
	for {
		b = append(b, byte(idFirst+i%idBase))
		i /= idBase
		if i == 0 {
			return string(b)
		}
		i--
	}
}

// NewWriter writes the VCD header for the given variables in a single scope
// and returns a Writer ready for samples. timescale is a VCD time scale like
// "1ns".
//
func NewWriter(w io.Writer, timescale, scope string, vars ...Var) (*Writer, error) {
	if len(vars) == 0 {
		return nil, errors.New("vcd: no variables")
	}
	vw := &Writer{
		w:     bufio.NewWriter(w),
		vars:  vars,
		ids:   make([]string, len(vars)),
		last:  make([]uint64, len(vars)),
		first: true,
	}
	vw.printf("$version counter8 $end\n$timescale ", timescale, " $end\n$scope module ", scope, " $end\n")
	for i, v := range vars {
		if v.Width < 1 || v.Width > 64 {
			return nil, errors.Errorf("vcd: invalid width %d for %s", v.Width, v.Name)
		}
		vw.ids[i] = idCode(i)
		vw.printf("$var wire ", strconv.Itoa(v.Width), " ", vw.ids[i], " ", v.Name, " $end\n")
	}
	vw.printf("$upscope $end\n$enddefinitions $end\n")
	if vw.err != nil {
		return nil, errors.Wrap(vw.err, "vcd: write header")
	}
	return vw, nil
}

func (w *Writer) printf(ss ...string) {
	for _, s := range ss {
		if w.err != nil {
			return
		}
		_, w.err = w.w.WriteString(s)
	}
}

func (w *Writer) value(i int, v uint64) {
	if w.vars[i].Width == 1 {
		w.printf(strconv.FormatUint(v&1, 2), w.ids[i], "\n")
		return
	}
	w.printf("b", strconv.FormatUint(v, 2), " ", w.ids[i], "\n")
}

// Sample records the values of all variables, in declaration order, at time
// t. Times must be increasing.
//
func (w *Writer) Sample(t uint64, values ...uint64) error {
	if len(values) != len(w.vars) {
		return errors.Errorf("vcd: got %d values for %d variables", len(values), len(w.vars))
	}
	if !w.first && t <= w.time {
		return errors.Errorf("vcd: time %d is not after %d", t, w.time)
	}
	stamped := false
	for i, v := range values {
		if width := w.vars[i].Width; width < 64 {
			v &= 1<<uint(width) - 1
		}
		if !w.first && v == w.last[i] {
			continue
		}
		if !stamped {
			w.printf("#", strconv.FormatUint(t, 10), "\n")
			stamped = true
		}
		w.value(i, v)
		w.last[i] = v
	}
	w.first = false
	w.time = t
	return w.err
}

// Flush writes any buffered data to the underlying writer.
//
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Bool converts a bool to a sample value.
//
func Bool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
