// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Variant selects the flavour of the counter.
//
type Variant int

// Supported variants.
//
const (
	// Full has wrap, carry/borrow and load pulses and a tri-state data bus.
	Full Variant = iota
	// Minimal has no status pulses and drives 0 on the data bus when output
	// is disabled.
	Minimal
)

func (v Variant) String() string {
	switch v {
	case Full:
		return "full"
	case Minimal:
		return "minimal"
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

// ParseVariant returns the Variant with the given name (case insensitive).
//
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return Full, nil
	case "minimal", "min":
		return Minimal, nil
	}
	return Full, errors.Errorf("unknown counter variant %q", s)
}

// State is the complete register state of the counter. The three flags are
// pulses: they are true for exactly one clock cycle.
//
type State struct {
	Value       uint8
	Wrap        bool // 255 -> 0 when counting up, 0 -> 255 when counting down
	CarryBorrow bool // carry on up-wrap, borrow on down-wrap
	Loaded      bool // a synchronous load was applied on the last clock edge
}

// ResetState is the state forced by reset, and the initial state.
//
var ResetState = State{}

// Controls are the control inputs sampled on a clock edge.
//
type Controls struct {
	Enable       bool  // count when true, hold otherwise
	Load         bool  // load LoadValue; takes priority over Enable and Up
	Up           bool  // count up when true, down otherwise
	LoadValue    uint8 // only sampled when Load is true
	OutputEnable bool  // drive the data bus; does not affect the state
}

// Next returns the state following cur on a clock edge, given the control
// inputs and the level of the reset line. In priority order:
//
//	reset:     0, no pulses
//	load:      LoadValue, Loaded pulse
//	enable+up: Value+1; 255 wraps to 0 with Wrap and CarryBorrow pulses
//	enable:    Value-1; 0 wraps to 255 with Wrap and CarryBorrow pulses
//	otherwise: Value, no pulses
//
// The Minimal variant never raises any pulse.
//
func Next(v Variant, cur State, ctl Controls, reset bool) State {
	var n State
	switch {
	case reset:
		return ResetState
	case ctl.Load:
		n.Value = ctl.LoadValue
		n.Loaded = true
	case ctl.Enable && ctl.Up:
		n.Value = cur.Value + 1
		n.Wrap = cur.Value == 0xFF
	case ctl.Enable:
		n.Value = cur.Value - 1
		n.Wrap = cur.Value == 0
	default:
		n.Value = cur.Value
	}
	if v == Minimal {
		return State{Value: n.Value}
	}
	n.CarryBorrow = n.Wrap
	return n
}
