// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package counter8 models an 8-bit up/down, loadable counter with a tri-state
data bus, as found on small ASIC tiles.

The core is the pure transition function Next, invoked once per clock edge,
and the output projection Project. Counter wraps both into the single mutable
register of the design, with an asynchronous reset that takes effect
immediately rather than on the next clock edge:

	c := counter8.New(counter8.Full)
	c.Step(counter8.Controls{Load: true, LoadValue: 250})
	out := c.Step(counter8.Controls{Enable: true, Up: true, OutputEnable: true})
	v, ok := out.BusValue() // 251, true

Two variants are supported. Full generates wrap, carry/borrow and load pulses
and releases the data bus when output is disabled. Minimal has no status
pulses and drives 0 on the data bus when output is disabled.
*/
package counter8
