// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"math/bits"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Circuit is a runnable circuit simulation.
//
// Wire states are double buffered: during a step, components read from cur
// and write to next, then the two frames are swapped.
//
type Circuit struct {
	cur   []bool
	next  []bool
	cs    []Component
	wires int
	spc   uint // steps per clock cycle, a power of two
	step  uint

	wc []chan struct{}
	wg sync.WaitGroup
}

// NewCircuit builds a new circuit based on the given parts.
//
// workers is the number of goroutines used to update the state of the Circuit
// each step of the simulation. If less or equal to 0, the value of GOMAXPROCS
// will be used.
//
// stepsPerCycle indicates how many simulation steps to run per clock cycle
// (the clk signal, not wall clock). It is rounded up to the next power of two
// and must be large enough for the deepest combinational path of the circuit
// to settle within half a cycle.
//
// The clock starts high, at the rising edge of the first cycle.
//
// Callers must make sure to call Dispose() once the circuit is no longer needed
// in order to stop the worker goroutines.
//
func NewCircuit(workers int, stepsPerCycle uint, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}
	if stepsPerCycle < 2 {
		stepsPerCycle = 2
	}

	c := &Circuit{wires: cstCount, spc: 1 << uint(bits.Len(stepsPerCycle-1))}
	top, err := Chip("CIRCUIT", "", "", parts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chip wrapper")
	}
	c.cs = append(top("").Mount(newSocket(c)), updClock)
	c.cur = make([]bool, c.wires)
	c.next = make([]bool, c.wires)
	c.cur[cstClk] = true
	c.cur[cstTrue] = true
	c.next[cstTrue] = true

	c.startWorkers(workers)
	return c, nil
}

// startWorkers splits the components into evenly sized batches, one per
// worker.
//
func (c *Circuit) startWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(-1)
	}
	if n <= 0 {
		n = 1
	}
	cs := c.cs
	size := (len(cs) + n - 1) / n
	for len(cs) > 0 {
		if size > len(cs) {
			size = len(cs)
		}
		wc := make(chan struct{}, 1)
		c.wc = append(c.wc, wc)
		go c.worker(cs[:size], wc)
		cs = cs[size:]
	}
}

func (c *Circuit) worker(cs []Component, wc <-chan struct{}) {
	for range wc {
		for _, f := range cs {
			f(c)
		}
		c.wg.Done()
	}
	c.wg.Done()
}

// updClock drives clk: high for the first half of each cycle.
//
func updClock(c *Circuit) {
	if c.cur[cstFalse] || !c.cur[cstTrue] {
		panic("true or false constants have been overwritten")
	}
	c.next[cstClk] = (c.step+1)&(c.spc-1) < c.spc/2
}

// Dispose stops the worker goroutines. The circuit cannot be used afterwards.
//
func (c *Circuit) Dispose() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		close(wc)
	}
	c.wg.Wait()
	c.wc = nil
}

// allocPin allocates a wire and returns its number.
//
func (c *Circuit) allocPin() int {
	n := c.wires
	c.wires++
	return n
}

// Steps returns the number of simulation steps run so far.
//
func (c *Circuit) Steps() uint { return c.step }

// SPC returns the number of steps per clock cycle.
//
func (c *Circuit) SPC() uint { return c.spc }

// Cycles returns the number of complete clock cycles run so far.
//
func (c *Circuit) Cycles() uint { return c.step / c.spc }

// AtTick returns true if the current step is at the beginning of a clock cycle
// (raising edge of clk).
//
func (c *Circuit) AtTick() bool {
	return c.step&(c.spc-1) == 0
}

// AtTock returns true if the current step is at the beginning of the second
// half of a clock cycle (falling edge of clk).
//
func (c *Circuit) AtTock() bool {
	return (c.step+c.spc/2)&(c.spc-1) == 0
}

// Get returns the state of wire n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) bool { return c.cur[n] }

// Set sets the state of wire n for the next step.
//
func (c *Circuit) Set(n int, s bool) { c.next[n] = s }

// Step advances the simulation by one step.
//
func (c *Circuit) Step() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		wc <- struct{}{}
	}
	c.wg.Wait()
	c.step++
	c.cur, c.next = c.next, c.cur
}

// Tick runs the simulation until the falling edge of clk. Inputs should be
// changed after Tick returns so that they settle before the next rising edge.
//
func (c *Circuit) Tick() {
	for c.Get(cstClk) {
		c.Step()
	}
}

// Tock runs the simulation until the next rising edge of clk. Clocked parts
// latch their inputs on the first step that follows.
//
func (c *Circuit) Tock() {
	for !c.Get(cstClk) {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }

// Wires returns the number of allocated wires, constant pins included.
//
func (c *Circuit) Wires() int { return c.wires }
