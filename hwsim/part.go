// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// A Component is the update function of a part. It is called once per
// simulation step, reads its inputs with c.Get and writes its outputs with
// c.Set.
//
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. It asks the socket for the wire
// numbers of the part pins and returns closures over these numbers. Any state
// the part keeps between steps lives in those closures.
//
// A resettable flip-flop, for example:
//
//	Mount: func(s *Socket) []Component {
//		in, rst, out := s.Pin("in"), s.Pin("reset"), s.Pin("out")
//		var q bool
//		return []Component{func(c *Circuit) {
//			switch {
//			case c.Get(rst):
//				q = false
//			case c.AtTick():
//				q = c.Get(in)
//			}
//			c.Set(out, q)
//		}}
//	}
//
type MountFn func(s *Socket) []Component

// A PartSpec is the blueprint of a part: its name, pin names and mount
// function. Pin names must be distinct; use IO to expand bus declarations:
//
//	spec := &hwsim.PartSpec{
//		Name:    "Register8",
//		Inputs:  hwsim.IO("d[8], load"),
//		Outputs: hwsim.IO("q[8]"),
//		Mount:   mountRegister8,
//	}
//
// spec.NewPart is then a NewPartFn usable in Chip or NewCircuit:
//
//	reg := spec.NewPart("d=bus[0..7], load=ld, q=acc[0..7]")
//
type PartSpec struct {
	Name    string
	Inputs  []string
	Outputs []string
	Mount   MountFn
}

// NewPart returns a Part for p with the given connections. It panics if the
// connection string cannot be parsed, like regexp.MustCompile does, since
// connection strings are almost always literals.
//
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := p.Connections(connections)
	if err != nil {
		panic(err)
	}
	return Part{p, conns}
}

// IsInput returns true if name is one of p's input pins.
//
func (p *PartSpec) IsInput(name string) bool { return indexOf(p.Inputs, name) >= 0 }

// IsOutput returns true if name is one of p's output pins.
//
func (p *PartSpec) IsOutput(name string) bool { return indexOf(p.Outputs, name) >= 0 }

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// A NewPartFn returns a new Part wired with the connection string c. See
// PartSpec.Connections for the syntax.
//
type NewPartFn func(c string) Part

// A Part is a PartSpec placed in a host chip.
//
type Part struct {
	*PartSpec
	Conns []Connection
}

// Parts is a list of parts.
//
type Parts []Part
