// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/pkg/errors"
)

// a pin is identified by the part it belongs to and its name in that part's
// interface. Chip pins use p == -1.
type pin struct {
	p    int
	name string
}

// a net is a named wire inside a chip.
type net struct {
	driven bool
	read   bool
	input  bool // chip input or constant
	output bool // chip output
}

type wiring struct {
	nets  map[string]*net
	order []string
}

func newWiring(ins, outs []string) *wiring {
	w := &wiring{nets: make(map[string]*net, len(ins)+len(outs)+cstCount)}
	for _, n := range [...]string{False, True, Clk} {
		w.nets[n] = &net{driven: true, input: true, read: true}
	}
	for _, in := range ins {
		// unused chip inputs are fine.
		n := w.get(in)
		n.input = true
		n.driven = true
		n.read = true
	}
	for _, out := range outs {
		w.get(out).output = true
	}
	return w
}

func (w *wiring) get(name string) *net {
	n := w.nets[name]
	if n == nil {
		n = new(net)
		w.nets[name] = n
		w.order = append(w.order, name)
	}
	return n
}

// drive records that wire is driven by some part output.
func (w *wiring) drive(wire string) error {
	if isConstant(wire) {
		return errors.New("output pin connected to constant " + wire + " input")
	}
	n := w.get(wire)
	switch {
	case n.input:
		return errors.New("chip input pin used as output")
	case n.driven:
		return errors.New("output pin already used as output")
	}
	n.driven = true
	return nil
}

// read records that wire is read by some part input.
func (w *wiring) read(wire string) {
	w.get(wire).read = true
}

// check reports dangling internal wires, in declaration order.
func (w *wiring) check() error {
	for _, name := range w.order {
		n := w.nets[name]
		if n.input {
			continue
		}
		if n.read && !n.driven {
			return errors.New("pin " + name + " not connected to any output")
		}
		if n.driven && !n.read && !n.output {
			return errors.New("pin " + name + " not connected to any input")
		}
	}
	return nil
}
