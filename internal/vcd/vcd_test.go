// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd_test

import (
	"strings"
	"testing"

	"github.com/db47h/counter8/internal/vcd"
)

func TestWriter(t *testing.T) {
	var b strings.Builder
	w, err := vcd.NewWriter(&b, "1ns", "counter8",
		vcd.Var{Name: "en", Width: 1},
		vcd.Var{Name: "q", Width: 8},
	)
	if err != nil {
		t.Fatal(err)
	}
	samples := []struct {
		t  uint64
		en bool
		q  uint64
	}{
		{0, false, 0},
		{1, true, 0},
		{2, true, 1},
		{3, true, 1},
		{4, false, 0x1ff},
	}
	for _, s := range samples {
		if err = w.Sample(s.t, vcd.Bool(s.en), s.q); err != nil {
			t.Fatal(err)
		}
	}
	if err = w.Flush(); err != nil {
		t.Fatal(err)
	}
	exp := `$version counter8 $end
$timescale 1ns $end
$scope module counter8 $end
$var wire 1 ! en $end
$var wire 8 " q $end
$upscope $end
$enddefinitions $end
#0
0!
b0 "
#1
1!
#2
b1 "
#4
0!
b11111111 "
`
	if b.String() != exp {
		t.Fatalf("expected:\n%s\ngot:\n%s", exp, b.String())
	}
}

func TestWriter_errors(t *testing.T) {
	var b strings.Builder
	if _, err := vcd.NewWriter(&b, "1ns", "top"); err == nil {
		t.Fatal("expected error for empty variable list")
	}
	if _, err := vcd.NewWriter(&b, "1ns", "top", vcd.Var{Name: "x", Width: 65}); err == nil {
		t.Fatal("expected error for invalid width")
	}
	w, err := vcd.NewWriter(&b, "1ns", "top", vcd.Var{Name: "x", Width: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err = w.Sample(0, 1, 2); err == nil {
		t.Fatal("expected error for value count mismatch")
	}
	if err = w.Sample(5, 1); err != nil {
		t.Fatal(err)
	}
	if err = w.Sample(5, 0); err == nil {
		t.Fatal("expected error for non increasing time")
	}
}
