// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8

// Counter is the counter register. It is not safe for concurrent use: there
// is exactly one writer, the clock.
//
type Counter struct {
	variant Variant
	st      State
	reset   bool
	cycles  uint64
}

// New returns a new counter of the given variant in its reset state.
//
func New(v Variant) *Counter {
	return &Counter{variant: v, st: ResetState}
}

// Variant returns the counter variant.
//
func (c *Counter) Variant() Variant { return c.variant }

// State returns the current state.
//
func (c *Counter) State() State { return c.st }

// Cycles returns the number of clock edges seen since creation.
//
func (c *Counter) Cycles() uint64 { return c.cycles }

// InReset returns true while the reset line is asserted.
//
func (c *Counter) InReset() bool { return c.reset }

// Step applies one clock edge with the given controls and returns the new
// outputs. While reset is asserted, the counter stays in its reset state.
//
func (c *Counter) Step(ctl Controls) Outputs {
	c.st = Next(c.variant, c.st, ctl, c.reset)
	c.cycles++
	return Project(c.variant, c.st, ctl.OutputEnable)
}

// Outputs returns the outputs for the current state without clocking the
// counter.
//
func (c *Counter) Outputs(outputEnable bool) Outputs {
	return Project(c.variant, c.st, outputEnable)
}

// AssertReset asserts the reset line. The state is cleared immediately, not
// on the next clock edge, and held until ReleaseReset is called.
//
func (c *Counter) AssertReset() {
	c.reset = true
	c.st = ResetState
}

// ReleaseReset releases the reset line. The counter resumes on the next
// clock edge.
//
func (c *Counter) ReleaseReset() {
	c.reset = false
}

// SetReset drives the reset line to the given level.
//
func (c *Counter) SetReset(asserted bool) {
	if asserted {
		c.AssertReset()
	} else {
		c.ReleaseReset()
	}
}

// Reset pulses the reset line: the state is cleared immediately and the
// counter resumes on the next clock edge.
//
func (c *Counter) Reset() {
	c.st = ResetState
}
