// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8

// Bit layout of the Full variant status word.
//
const (
	StatusValueMask = 0x1F   // bits 4..0: low bits of the counter value
	StatusLoaded    = 1 << 5 // load pulse
	StatusCarry     = 1 << 6 // carry/borrow pulse
	StatusWrap      = 1 << 7 // wrap pulse
)

// Outputs is the projection of a State onto the output pins of the counter.
//
type Outputs struct {
	State
	Bus    uint8 // data bus, only meaningful when Driven is true
	Driven bool  // false when the data bus is released (high impedance)
	Status uint8 // debug word
	OE     uint8 // per-bit drive enable of the data bus
}

// BusValue returns the value on the data bus and true if the bus is driven, or
// 0 and false if it is released.
//
func (o Outputs) BusValue() (uint8, bool) {
	if !o.Driven {
		return 0, false
	}
	return o.Bus, true
}

// Project computes the outputs for state s. It has no memory: the outputs
// follow the state and the output enable control.
//
// The Full variant releases the bus when outputEnable is false and reports
// the pulses and the low 5 bits of the value in Status. The Minimal variant
// always drives the bus, with 0 when outputEnable is false, and reports the
// whole value in Status.
//
func Project(v Variant, s State, outputEnable bool) Outputs {
	o := Outputs{State: s}
	if v == Minimal {
		o.Driven = true
		o.OE = 0xFF
		o.Status = s.Value
		if outputEnable {
			o.Bus = s.Value
		}
		return o
	}

	if outputEnable {
		o.Driven = true
		o.Bus = s.Value
		o.OE = 0xFF
	}
	o.Status = s.Value & StatusValueMask
	if s.Loaded {
		o.Status |= StatusLoaded
	}
	if s.CarryBorrow {
		o.Status |= StatusCarry
	}
	if s.Wrap {
		o.Status |= StatusWrap
	}
	return o
}
