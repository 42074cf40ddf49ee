// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/counter8/hwsim"
)

const pReset = "reset"

var dff = &hwsim.PartSpec{
	Name:    "DFF",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		var curOut bool
		return []hwsim.Component{
			func(c *hwsim.Circuit) {
				// raising edge?
				if c.AtTick() {
					curOut = c.Get(in)
				}
				c.Set(out, curOut)
			}}
	}}

// DFF returns a clocked data flip flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) hwsim.Part { return dff.NewPart(w) }

// DFFN returns a N-bits register made of DFFs.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: out(t) = in(t-1)
//
func DFFN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "DFF" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in, out := s.Bus(pIn, bits), s.Bus(pOut, bits)
			cur := make([]bool, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					if c.AtTick() {
						for i, p := range in {
							cur[i] = c.Get(p)
						}
					}
					for i, p := range out {
						c.Set(p, cur[i])
					}
				}}
		}}).NewPart
}

var dffr = &hwsim.PartSpec{
	Name:    "DFFR",
	Inputs:  []string{pIn, pReset},
	Outputs: []string{pOut},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		in, rst, out := s.Pin(pIn), s.Pin(pReset), s.Pin(pOut)
		var curOut bool
		return []hwsim.Component{
			func(c *hwsim.Circuit) {
				switch {
				case c.Get(rst):
					curOut = false
				case c.AtTick():
					curOut = c.Get(in)
				}
				c.Set(out, curOut)
			}}
	}}

// DFFR returns a data flip flop with an asynchronous, active high reset. The
// reset input is sampled on every simulation step, not only on clock edges.
//
//	Inputs: in, reset
//	Outputs: out
//	Function: if reset { out = 0 } else { out(t) = in(t-1) }
//
func DFFR(w string) hwsim.Part { return dffr.NewPart(w) }

// DFFRN returns a N-bits register with asynchronous reset.
//
//	Inputs: in[bits], reset
//	Outputs: out[bits]
//	Function: if reset { out = 0 } else { out(t) = in(t-1) }
//
func DFFRN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "DFFR" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pIn), pReset),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in, rst, out := s.Bus(pIn, bits), s.Pin(pReset), s.Bus(pOut, bits)
			cur := make([]bool, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					switch {
					case c.Get(rst):
						for i := range cur {
							cur[i] = false
						}
					case c.AtTick():
						for i, p := range in {
							cur[i] = c.Get(p)
						}
					}
					for i, p := range out {
						c.Set(p, cur[i])
					}
				}}
		}}).NewPart
}
