// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim_test

import (
	"testing"

	"github.com/db47h/counter8/hwlib"
	"github.com/db47h/counter8/hwsim"
	"github.com/pkg/errors"
)

const testTPC = 16

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

func TestNewCircuit(t *testing.T) {
	if _, err := hwsim.NewCircuit(0, testTPC); err == nil {
		t.Fatal("expected error for an empty part list")
	}
	for _, d := range []struct{ in, spc uint }{{0, 2}, {3, 4}, {16, 16}, {17, 32}} {
		c, err := hwsim.NewCircuit(1, d.in, hwlib.Not("in=false, out=x"), hwlib.Output(func(bool) {})("in=x"))
		if err != nil {
			t.Fatal(err)
		}
		if c.SPC() != d.spc {
			t.Errorf("NewCircuit(_, %d): expected %d steps per cycle, got %d", d.in, d.spc, c.SPC())
		}
		c.Dispose()
	}
}

func TestCircuit_clock(t *testing.T) {
	var clk bool
	c, err := hwsim.NewCircuit(0, 8, hwlib.Output(func(b bool) { clk = b })("in=clk"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	if !c.AtTick() || c.AtTock() {
		t.Fatal("circuit must start on a rising edge")
	}
	c.Tick()
	if c.Steps() != 4 || !c.AtTock() {
		t.Fatalf("Tick: expected to stop on the falling edge at step 4, got step %d", c.Steps())
	}
	if !clk {
		t.Fatal("probe must see clk high during the first half cycle")
	}
	c.Tock()
	if c.Steps() != 8 || !c.AtTick() {
		t.Fatalf("Tock: expected to stop on the rising edge at step 8, got step %d", c.Steps())
	}
	if clk {
		t.Fatal("probe must see clk low during the second half cycle")
	}
	c.TickTock()
	if c.Steps() != 16 || c.Cycles() != 2 {
		t.Fatalf("TickTock: expected step 16 and 2 cycles, got %d and %d", c.Steps(), c.Cycles())
	}
	if c.Size() != 2 || c.Wires() != 3 {
		t.Fatalf("expected 2 components and 3 wires, got %d and %d", c.Size(), c.Wires())
	}
}

// Test a basic clock with a Nor gate.
//
// The purpose of this test is to catch changes in propagation delays
// from Inputs and Outputs as well as testing loops between input and outputs.
//
func Test_oscillator(t *testing.T) {
	var disable, tick bool

	check := func(v bool) {
		t.Helper()
		if tick != v {
			t.Errorf("expected %v, got %v", v, tick)
		}
	}
	// wrapped into a chip to add a layer of complexity.
	osc, err := hwsim.Chip("OSC", "disable", "tick",
		hwlib.Nor("a=disable, b=tick, out=tick"),
	)
	if err != nil {
		t.Fatal(err)
	}
	c, err := hwsim.NewCircuit(0, testTPC,
		hwlib.Input(func() bool { return disable })("out=disable"),
		osc("disable=disable, tick=out"),
		hwlib.Output(func(out bool) { tick = out })("in=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	// Output sees the Nor output one step after it is updated.
	disable = true
	c.Step()
	check(false)
	c.Step()
	// glitch from the initial all-zero state.
	check(true)
	c.Step()
	check(false)
	c.Step()
	check(false)

	disable = false
	c.Step()
	check(false)
	c.Step()
	check(false)
	c.Step()
	// starts oscillating
	check(true)
	c.Step()
	check(false)
	c.Step()
	check(true)
	disable = true
	c.Step()
	check(false)
	c.Step()
	check(true)
	c.Step()
	// stopped
	check(false)
	c.Step()
	check(false)
}
