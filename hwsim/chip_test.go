// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim_test

import (
	"testing"

	"github.com/db47h/counter8/hwlib"
	"github.com/db47h/counter8/hwsim"
)

func TestChip_errors(t *testing.T) {
	unkChip, err := hwsim.Chip("TESTCHIP", "a, b", "out",
		// chip input a is unused
		hwlib.Nand("a=b, b=b, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	data := []struct {
		name    string
		in, out string
		parts   hwsim.Parts
		err     string
	}{
		{"true_out", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, b=b, out=true"),
			hwlib.Nand("a=a, b=b, out=out"),
		}, "NAND.out:true: output pin connected to constant true input"},
		{"false_out", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, b=b, out=false"),
			hwlib.Nand("a=a, b=b, out=out"),
		}, "NAND.out:false: output pin connected to constant false input"},
		{"input_out", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, b=b, out=a"),
			hwlib.Nand("a=a, b=b, out=out"),
		}, "NAND.out:a: chip input pin used as output"},
		{"multi_out", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, b=b, out=x"),
			hwlib.Nand("a=a, b=b, out=x"),
			hwlib.Not("in=x, out=out"),
		}, "NAND.out:x: output pin already used as output"},
		{"multi_in", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, a=b, out=out"),
		}, "NAND.a: input pin connected to more than one wire"},
		{"no_output", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, b=wx, out=out"),
		}, "pin wx not connected to any output"},
		{"no_input", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, b=b, out=foo"),
			hwlib.Nand("a=a, b=b, out=out"),
		}, "pin foo not connected to any input"},
		{"unconnected_in", "a, b", "out", hwsim.Parts{}, ""},
		{"unknown_pin", "a, b", "out", hwsim.Parts{
			hwlib.Nand("a=a, typo=b, out=out"),
		}, "invalid pin name typo for part NAND"},
		{"unknown_chip_pin", "a, b", "out", hwsim.Parts{
			unkChip("a=a, typo=b, out=out"),
		}, "invalid pin name typo for part TESTCHIP"},
		{"chip", "a, b", "out", hwsim.Parts{
			unkChip("a=a, b=b, out=out"),
		}, ""},
		{"duplicate", "a, a", "out", nil, "duplicate: duplicate or reserved pin name a"},
		{"reserved", "a, b", "clk", nil, "reserved: duplicate or reserved pin name clk"},
		{"bus_range", "a[0..3]", "out", nil, `bus_range inputs: in "a[0..3]" at pos 1: bus ranges are not allowed in pin specifications`},
	}
	for _, d := range data {
		d := d
		t.Run(d.name, func(t *testing.T) {
			_, err := hwsim.Chip(d.name, d.in, d.out, d.parts...)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("got error %v, expected %q", err, d.err)
			}
		})
	}
}

func TestChip_omitted_pins(t *testing.T) {
	var a, b, c, tr, f, o0, o1 int
	dummy := (&hwsim.PartSpec{
		Name:    "dummy",
		Inputs:  hwsim.IO("a, b, c, t, f"),
		Outputs: hwsim.IO("o0, o1"),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b, c, tr, f, o0, o1 = s.Pin("a"), s.Pin("b"), s.Pin("c"), s.Pin("t"), s.Pin("f"), s.Pin("o0"), s.Pin("o1")
			return nil
		}}).NewPart
	wrapper, err := hwsim.Chip("wrapper", "wa, wb", "wo0, wo1",
		dummy("a=wa, c=clk, t=true, f=false, o0=wo0"),
	)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}

	cc, err := hwsim.NewCircuit(0, 0, wrapper(""))
	if err != nil {
		t.Fatal(err)
	}
	defer cc.Dispose()

	if a != 0 || b != 0 || f != 0 { // false
		t.Errorf("a = %v, b = %v, f = %v, all must be 0", a, b, f)
	}
	if tr != 1 { // true
		t.Errorf("t = %v, must be 1", tr)
	}
	if c != 2 { // clk
		t.Errorf("c = %v, must be 2", c)
	}
	if o0 < 3 || o1 < 3 || o0 == o1 {
		t.Errorf("o0 = %v, o1 = %v, must be distinct and >= 3", o0, o1)
	}
}

func TestChip_fanout_to_outputs(t *testing.T) {
	gate, err := hwsim.Chip("FANOUT", "in", "a, b, bus[2]",
		hwlib.Or("a=in, b=in, out=a, out=b, out=bus[0..1]"),
	)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	wrapper, err := hwsim.Chip("FANOUT_Wrapper", "in", "o[8]",
		gate("in=in, a=o[0..1], b=o[2..3], bus[0]=o[4..5], bus[1]=o[6..7]"),
	)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	var out uint64
	c, err := hwsim.NewCircuit(0, testTPC,
		wrapper("in=true, o=wrapOut[0..7]"),
		hwlib.OutputN(8, func(v uint64) { out = v })("in=wrapOut[0..7]"),
	)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	defer c.Dispose()

	c.TickTock()
	if out != 255 {
		t.Fatalf("out = %d != 255", out)
	}
}
