// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/counter8/hwsim"
)

// Uint returns the value on a bus. pins[0] is the least significant bit.
//
func Uint(c *hwsim.Circuit, pins []int) uint64 {
	var v uint64
	for i, p := range pins {
		if c.Get(p) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// SetUint drives a bus with the low len(pins) bits of v.
//
func SetUint(c *hwsim.Circuit, pins []int, v uint64) {
	for i, p := range pins {
		c.Set(p, v>>uint(i)&1 != 0)
	}
}

// Input returns a part that drives its output with the value returned by f.
// f is called on every simulation step from a worker goroutine: the host
// program must only change the value it returns between steps.
//
//	Outputs: out
//	Function: out = f()
//
func Input(f func() bool) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "Input",
		Outputs: []string{pOut},
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			out := s.Pin(pOut)
			return []hwsim.Component{func(c *hwsim.Circuit) { c.Set(out, f()) }}
		}}).NewPart
}

// Output returns a probe that reports the state of its input to f on every
// simulation step.
//
//	Inputs: in
//	Function: f(in)
//
func Output(f func(bool)) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:   "Output",
		Inputs: []string{pIn},
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in := s.Pin(pIn)
			return []hwsim.Component{func(c *hwsim.Circuit) { f(c.Get(in)) }}
		}}).NewPart
}

// InputN is the bus version of Input.
//
//	Outputs: out[bits]
//	Function: out = f()
//
func InputN(bits int, f func() uint64) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "Input" + strconv.Itoa(bits),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			out := s.Bus(pOut, bits)
			return []hwsim.Component{func(c *hwsim.Circuit) { SetUint(c, out, f()) }}
		}}).NewPart
}

// OutputN is the bus version of Output.
//
//	Inputs: in[bits]
//	Function: f(in)
//
func OutputN(bits int, f func(uint64)) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:   "Output" + strconv.Itoa(bits),
		Inputs: bus(bits, pIn),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in := s.Bus(pIn, bits)
			return []hwsim.Component{func(c *hwsim.Circuit) { f(Uint(c, in)) }}
		}}).NewPart
}
