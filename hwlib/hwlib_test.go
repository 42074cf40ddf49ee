// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/counter8/hwlib"
	"github.com/db47h/counter8/hwsim"
)

const testTPC = 8

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

// testGate checks the truth table of a part. Inputs are enumerated with the
// first input as the most significant bit. result holds one row per output.
func testGate(t *testing.T, gate hwsim.NewPartFn, result [][]bool) {
	t.Helper()
	part := gate("").PartSpec
	inputs := make([]bool, len(part.Inputs))
	outputs := make([]bool, len(part.Outputs))
	var conns []string
	parts := make(hwsim.Parts, 0, len(part.Inputs)+len(part.Outputs)+1)
	for i, n := range part.Inputs {
		conns = append(conns, n+"="+n)
		in := &inputs[i]
		parts = append(parts, hwlib.Input(func() bool { return *in })("out="+n))
	}
	for i, n := range part.Outputs {
		conns = append(conns, n+"="+n)
		out := &outputs[i]
		parts = append(parts, hwlib.Output(func(v bool) { *out = v })("in="+n))
	}
	parts = append(parts, gate(strings.Join(conns, ", ")))
	c, err := hwsim.NewCircuit(0, testTPC, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	tot := 1 << uint(len(part.Inputs))
	for i := 0; i < tot; i++ {
		for bit := range inputs {
			inputs[len(inputs)-bit-1] = (i & (1 << uint(bit))) != 0
		}
		c.TickTock()
		for o, out := range outputs {
			if exp := result[o][i]; exp != out {
				t.Errorf("%s %v: %s = %v, got %v", part.Name, inputs, part.Outputs[o], exp, out)
			}
		}
	}
}

func Test_gates(t *testing.T) {
	tr, err := hwsim.Chip("TRUE", "a", "out",
		hwlib.And("a=true, b=true, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	fa, err := hwsim.Chip("FALSE", "a", "out",
		hwlib.Or("a=false, b=false, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		name   string
		gate   hwsim.NewPartFn
		result [][]bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"NOT", hwlib.Not, [][]bool{{true, false}}},
		{"AND", hwlib.And, [][]bool{{false, false, false, true}}},
		{"NAND", hwlib.Nand, [][]bool{{true, true, true, false}}},
		{"OR", hwlib.Or, [][]bool{{false, true, true, true}}},
		{"NOR", hwlib.Nor, [][]bool{{true, false, false, false}}},
		{"XOR", hwlib.Xor, [][]bool{{false, true, true, false}}},
		{"XNOR", hwlib.Xnor, [][]bool{{true, false, false, true}}},
		{"TRUE", tr, [][]bool{{true, true}}},
		{"FALSE", fa, [][]bool{{false, false}}},
		{"MUX", hwlib.Mux, [][]bool{{false, false, false, true, true, false, true, true}}},
		{"DMUX", hwlib.DMux, [][]bool{{false, false, true, false}, {false, false, false, true}}},
		{"HalfAdder", hwlib.HalfAdder, [][]bool{{false, true, true, false}, {false, false, false, true}}},
		{"FullAdder", hwlib.FullAdder, [][]bool{
			{false, true, true, false, true, false, false, true},
			{false, false, false, true, false, true, true, true},
		}},
		{"OR3Way", hwlib.OrNWay(3), [][]bool{{false, true, true, true, true, true, true, true}}},
		{"AND3Way", hwlib.AndNWay(3), [][]bool{{false, false, false, false, false, false, false, true}}},
		{"NOR3Way", hwlib.NorNWay(3), [][]bool{{true, false, false, false, false, false, false, false}}},
	}
	for _, d := range td {
		d := d
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.gate, d.result)
		})
	}
}

func TestInputN(t *testing.T) {
	var in, out uint64
	c, err := hwsim.NewCircuit(0, testTPC,
		hwlib.InputN(8, func() uint64 { return in })("out[0..7] = t[0..7]"),
		hwlib.OutputN(8, func(n uint64) { out = n })("in = t[0..7]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for _, in = range []uint64{0xa2, 0, 0xff, 0x5a} {
		c.TickTock()
		if out != in {
			t.Fatalf("expected %x, got %x", in, out)
		}
	}
}

func Test_gateN(t *testing.T) {
	td := []struct {
		name string
		gate hwsim.NewPartFn
		ctrl func(a, b uint8) uint8
	}{
		{"AND8", hwlib.GateN("AND", 8, func(a, b bool) bool { return a && b }), func(a, b uint8) uint8 { return a & b }},
		{"OR8", hwlib.GateN("OR", 8, func(a, b bool) bool { return a || b }), func(a, b uint8) uint8 { return a | b }},
		{"XOR8", hwlib.GateN("XOR", 8, func(a, b bool) bool { return a != b }), func(a, b uint8) uint8 { return a ^ b }},
		{"Adder8", nil, func(a, b uint8) uint8 { return a + b }},
	}
	for _, d := range td {
		d := d
		t.Run(d.name, func(t *testing.T) {
			var a, b, out uint8
			conns := "a=a[0..7], b=b[0..7], out=out[0..7]"
			var gate hwsim.Part
			if d.gate != nil {
				gate = d.gate(conns)
			} else {
				gate = hwlib.AdderN(8)(conns)
			}
			c, err := hwsim.NewCircuit(0, testTPC,
				hwlib.InputN(8, func() uint64 { return uint64(a) })("out=a[0..7]"),
				hwlib.InputN(8, func() uint64 { return uint64(b) })("out=b[0..7]"),
				gate,
				hwlib.OutputN(8, func(v uint64) { out = uint8(v) })("in=out[0..7]"),
			)
			if err != nil {
				t.Fatal(err)
			}
			defer c.Dispose()

			for i := 0; i < 500; i++ {
				a, b = uint8(rand.Intn(256)), uint8(rand.Intn(256))
				c.TickTock()
				if exp := d.ctrl(a, b); out != exp {
					t.Fatalf("%s(%#02x, %#02x) = %#02x, got %#02x", d.name, a, b, exp, out)
				}
			}
		})
	}
}

func TestNotN(t *testing.T) {
	var in, out uint64
	c, err := hwsim.NewCircuit(0, testTPC,
		hwlib.InputN(8, func() uint64 { return in })("out=in[0..7]"),
		hwlib.NotN(8)("in=in[0..7], out=out[0..7]"),
		hwlib.OutputN(8, func(v uint64) { out = v })("in=out[0..7]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for in = 0; in < 256; in += 17 {
		c.TickTock()
		if out != ^in&0xff {
			t.Fatalf("NOT8(%#02x) = %#02x, got %#02x", in, ^in&0xff, out)
		}
	}
}
