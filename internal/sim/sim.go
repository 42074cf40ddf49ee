// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package sim drives a counter one clock cycle at a time, either through the
// core model or through a simulated circuit.
//
package sim

import (
	"github.com/db47h/counter8"
	"github.com/db47h/counter8/hwlib"
	"github.com/db47h/counter8/hwsim"
	"github.com/pkg/errors"
)

// A Driver clocks a counter.
//
// The reset level set with SetReset applies to the following calls to Step
// until changed.
//
type Driver interface {
	Variant() counter8.Variant
	Step(ctl counter8.Controls) counter8.Outputs
	SetReset(asserted bool)
	Cycles() uint64
	Close() error
}

type core struct {
	*counter8.Counter
}

// NewCore returns a Driver for the core model.
//
func NewCore(v counter8.Variant) Driver {
	return core{counter8.New(v)}
}

func (core) Close() error { return nil }

// MinStepsPerCycle is the minimum number of simulation steps per clock cycle
// for the gate level counter to settle.
//
const MinStepsPerCycle = 16

// Config configures a Circuit.
//
type Config struct {
	Gates         bool // use the gate level counter
	Workers       int  // worker goroutines, GOMAXPROCS if <= 0
	StepsPerCycle uint // raised to MinStepsPerCycle if lower
}

// Circuit is a Driver that runs a counter part in a hwsim circuit.
//
type Circuit struct {
	v     counter8.Variant
	c     *hwsim.Circuit
	ctl   counter8.Controls
	reset bool

	q, bus                     uint64
	busoe, wrap, carry, loaded bool
}

const counterConns = "en=en, load=load, up=up, oe=oe, reset=reset, d=d[0..7], " +
	"q=q[0..7], bus=bus[0..7], busoe=busoe, wrap=wrap, carry=carry, loaded=loaded"

// NewCircuit builds a circuit around the behavioral Counter8 part, or around
// Counter8Chip if cfg.Gates is set.
//
func NewCircuit(v counter8.Variant, cfg Config) (*Circuit, error) {
	part := hwlib.Counter8(v)
	if cfg.Gates {
		var err error
		if part, err = hwlib.Counter8Chip(v); err != nil {
			return nil, errors.Wrap(err, "build counter chip")
		}
	}
	tpc := cfg.StepsPerCycle
	if tpc < MinStepsPerCycle {
		tpc = MinStepsPerCycle
	}

	h := &Circuit{v: v}
	c, err := hwsim.NewCircuit(cfg.Workers, tpc,
		hwlib.Input(func() bool { return h.ctl.Enable })("out=en"),
		hwlib.Input(func() bool { return h.ctl.Load })("out=load"),
		hwlib.Input(func() bool { return h.ctl.Up })("out=up"),
		hwlib.Input(func() bool { return h.ctl.OutputEnable })("out=oe"),
		hwlib.Input(func() bool { return h.reset })("out=reset"),
		hwlib.InputN(8, func() uint64 { return uint64(h.ctl.LoadValue) })("out=d[0..7]"),
		part(counterConns),
		hwlib.OutputN(8, func(n uint64) { h.q = n })("in=q[0..7]"),
		hwlib.OutputN(8, func(n uint64) { h.bus = n })("in=bus[0..7]"),
		hwlib.Output(func(b bool) { h.busoe = b })("in=busoe"),
		hwlib.Output(func(b bool) { h.wrap = b })("in=wrap"),
		hwlib.Output(func(b bool) { h.carry = b })("in=carry"),
		hwlib.Output(func(b bool) { h.loaded = b })("in=loaded"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build circuit")
	}
	h.c = c
	// leave the clock low so that inputs set by Step settle before the next
	// rising edge.
	c.Tick()
	return h, nil
}

// Variant returns the counter variant.
//
func (h *Circuit) Variant() counter8.Variant { return h.v }

// Step sets the inputs and runs the circuit for one clock cycle.
//
func (h *Circuit) Step(ctl counter8.Controls) counter8.Outputs {
	h.ctl = ctl
	h.c.Tock()
	h.c.Tick()
	return h.Outputs()
}

// Outputs returns the outputs sampled at the end of the last cycle.
//
func (h *Circuit) Outputs() counter8.Outputs {
	st := counter8.State{Value: uint8(h.q), Wrap: h.wrap, CarryBorrow: h.carry, Loaded: h.loaded}
	o := counter8.Project(h.v, st, h.ctl.OutputEnable)
	o.Bus = uint8(h.bus)
	o.Driven = h.busoe
	return o
}

// SetReset drives the reset input.
//
func (h *Circuit) SetReset(asserted bool) { h.reset = asserted }

// Cycles returns the number of clock cycles run by Step.
//
func (h *Circuit) Cycles() uint64 { return uint64(h.c.Cycles()) }

// Steps returns the number of simulation steps.
//
func (h *Circuit) Steps() uint { return h.c.Steps() }

// SPC returns the number of simulation steps per clock cycle.
//
func (h *Circuit) SPC() uint { return h.c.SPC() }

// Size returns the number of components in the circuit.
//
func (h *Circuit) Size() int { return h.c.Size() }

// Close stops the circuit workers.
//
func (h *Circuit) Close() error {
	h.c.Dispose()
	return nil
}
