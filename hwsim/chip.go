// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec       // PartSpec for this chip
	parts    Parts // sub parts
}

// mount binds part outputs first so that a wire gets the pin number of its
// driver regardless of the order in which parts reference it.
func (c *chip) mount(s *Socket) []Component {
	var cs []Component
	subs := make([]*Socket, len(c.parts))

	for i, p := range c.parts {
		sub := newSocket(s.c)
		subs[i] = sub
		for _, o := range p.Outputs {
			wires := connectedTo(p.Conns, o)
			n := -1
			for _, w := range wires {
				if pn, ok := s.m[w]; ok {
					n = pn
					break
				}
			}
			if n < 0 {
				n = s.c.allocPin()
			}
			for _, w := range wires {
				pn, ok := s.m[w]
				switch {
				case !ok:
					s.m[w] = n
				case pn != n:
					// fan-out to two wires already allocated by the container.
					cs = append(cs, buffer(n, pn))
				}
			}
			sub.m[o] = n
		}
	}

	for i, p := range c.parts {
		sub := subs[i]
		// unconnected inputs are grounded.
		for _, in := range p.Inputs {
			sub.m[in] = cstFalse
		}
		for _, conn := range p.Conns {
			if p.IsInput(conn.PP) {
				sub.m[conn.PP] = s.PinOrNew(conn.CP)
			}
		}
		cs = append(cs, p.Mount(sub)...)
	}
	return cs
}

func connectedTo(conns []Connection, pp string) []string {
	var ws []string
	for _, c := range conns {
		if c.PP == pp {
			ws = append(ws, c.CP)
		}
	}
	return ws
}

func buffer(from, to int) Component {
	return func(c *Circuit) { c.Set(to, c.Get(from)) }
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip. They are parsed with ParseIOSpec.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		hwlib.Nand("a=a, b=b, out=nandAB"),
//		hwlib.Nand("a=a, b=nandAB, out=w0"),
//		hwlib.Nand("a=b, b=nandAB, out=w1"),
//		hwlib.Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a NewPartFn that can be used to compose the new part
// with others into other chips:
//
//	xnor, err := Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		hwlib.Not("in=xorAB, out=out"),
//	)
//
// Unconnected part inputs are wired to false. Chip returns an error if a part
// pin does not exist, if an output drives a constant, a chip input or an
// already driven wire, or if an internal wire is not both driven and read.
//
func Chip(name string, inputs string, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := ParseIOSpec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" inputs")
	}
	outs, err := ParseIOSpec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" outputs")
	}
	seen := make(map[string]bool, len(ins)+len(outs))
	for _, n := range append(append([]string(nil), ins...), outs...) {
		if seen[n] || isConstant(n) {
			return nil, errors.New(name + ": duplicate or reserved pin name " + n)
		}
		seen[n] = true
	}

	wr := newWiring(ins, outs)
	for pnum, p := range parts {
		inConns := make(map[string]bool)
		for _, c := range p.Conns {
			switch {
			case p.IsOutput(c.PP):
				if err := wr.drive(c.CP); err != nil {
					return nil, errors.Wrap(err, pinName(parts, pin{pnum, c.PP})+":"+c.CP)
				}
			case p.IsInput(c.PP):
				if inConns[c.PP] {
					return nil, errors.New(pinName(parts, pin{pnum, c.PP}) + ": input pin connected to more than one wire")
				}
				inConns[c.PP] = true
				wr.read(c.CP)
			default:
				return nil, errors.New("invalid pin name " + c.PP + " for part " + p.Name)
			}
		}
	}
	if err = wr.check(); err != nil {
		return nil, err
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
		},
		parts,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}

func pinName(ps Parts, p pin) string {
	if p.p < 0 {
		return p.name
	}
	return ps[p.p].Name + "." + p.name
}
