// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/counter8"
	"github.com/db47h/counter8/hwsim"
)

// Counter8 pin names.
//
const (
	CounterInputs  = "en, load, up, oe, reset, d[8]"
	CounterOutputs = "q[8], bus[8], busoe, wrap, carry, loaded"
)

// Counter8 returns the behavioral model of the 8 bits counter for the given
// variant. State changes on the rising edge of the clock, except for reset
// which is asynchronous and active high.
//
//	Inputs: en, load, up, oe, reset, d[8]
//	Outputs: q[8], bus[8], busoe, wrap, carry, loaded
//	Function: q(t) = counter8.Next(q(t-1), ...)
//	          bus = q if busoe else 0
//
// For the Full variant, busoe follows oe. The Minimal variant always drives
// the bus and its wrap, carry and loaded pins stay low.
//
func Counter8(v counter8.Variant) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "Counter8" + variantSuffix(v),
		Inputs:  hwsim.IO(CounterInputs),
		Outputs: hwsim.IO(CounterOutputs),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			en, load, up, oe, rst := s.Pin("en"), s.Pin("load"), s.Pin("up"), s.Pin("oe"), s.Pin("reset")
			d := s.Bus("d", 8)
			q, bus := s.Bus("q", 8), s.Bus("bus", 8)
			busoe, wrap, carry, loaded := s.Pin("busoe"), s.Pin("wrap"), s.Pin("carry"), s.Pin("loaded")
			var st counter8.State
			return []hwsim.Component{func(c *hwsim.Circuit) {
				switch {
				case c.Get(rst):
					st = counter8.ResetState
				case c.AtTick():
					st = counter8.Next(v, st, counter8.Controls{
						Enable:    c.Get(en),
						Load:      c.Get(load),
						Up:        c.Get(up),
						LoadValue: uint8(Uint(c, d)),
					}, false)
				}
				o := counter8.Project(v, st, c.Get(oe))
				SetUint(c, q, uint64(o.Value))
				SetUint(c, bus, uint64(o.Bus))
				c.Set(busoe, o.Driven)
				c.Set(wrap, o.Wrap)
				c.Set(carry, o.CarryBorrow)
				c.Set(loaded, o.Loaded)
			}}
		}}).NewPart
}

func variantSuffix(v counter8.Variant) string {
	if v == counter8.Minimal {
		return "Min"
	}
	return ""
}
