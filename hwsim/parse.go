// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"strconv"

	"github.com/db47h/counter8/internal/hdl"
	"github.com/pkg/errors"
)

// BusPinName returns the pin name for the n-th bit of the given bus.
//
func BusPinName(bus string, bit int) string {
	return bus + "[" + strconv.Itoa(bit) + "]"
}

// ParseIOSpec parses the pin specification string and returns individual pin
// names in a slice, also expanding bus declarations to individual pin names.
// For example:
//
//	ParseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIOSpec(names string) ([]string, error) {
	var out []string
	p := hdl.Parser{Input: names}
	for {
		v, err := p.Next(false)
		if err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case nil:
			return out, nil
		case hdl.Pin:
			out = append(out, v.Name)
		case hdl.PinIndex:
			for i := 0; i < v.Index; i++ {
				out = append(out, BusPinName(v.Name, i))
			}
		case hdl.PinRange:
			return nil, errors.Errorf("in %q at pos %d: bus ranges are not allowed in pin specifications", names, v.Pos+1)
		}
	}
}

// IO is like ParseIOSpec but panics on error. It is meant to be used when
// declaring PartSpecs.
//
func IO(names string) []string {
	out, err := ParseIOSpec(names)
	if err != nil {
		panic(err)
	}
	return out
}

// A Connection wires a part pin (PP) to a pin in the host chip (CP).
//
type Connection struct {
	PP string
	CP string
}

// Connections parses a connection configuration string and returns the
// individual connections for that part.
//
// The connection string is a comma separated list of part_pin=chip_pin
// assignments. Both sides can refer to single pins (a), bus bits (d[3]) or bus
// ranges (d[0..3]). A bus name used alone on the part side expands to the
// whole bus. Both sides must have the same width, or the chip side must be a
// single wire which is then connected to every part pin:
//
//	"d=true, q=count[0..7], b[1..7]=down, up=dir"
//
// A part output may appear several times or face a range of chip pins in
// order to drive several wires.
//
func (p *PartSpec) Connections(c string) ([]Connection, error) {
	var conns []Connection
	ps := hdl.Parser{Input: c}
	for {
		v, err := ps.Next(true)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return conns, nil
		}
		pa := v.(hdl.PinAssignment)
		lhs := p.partPins(pa.LHS)
		rhs := expandItem(pa.RHS)
		switch {
		case len(lhs) == len(rhs):
			for i := range lhs {
				conns = append(conns, Connection{lhs[i], rhs[i]})
			}
		case len(rhs) == 1:
			for _, l := range lhs {
				conns = append(conns, Connection{l, rhs[0]})
			}
		case len(lhs) == 1:
			// fan-out
			for _, r := range rhs {
				conns = append(conns, Connection{lhs[0], r})
			}
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in assignment for part pin %s", c, pinItemName(pa.LHS))
		}
	}
}

func (p *PartSpec) partPins(v interface{}) []string {
	switch v := v.(type) {
	case hdl.Pin:
		if p.IsInput(v.Name) || p.IsOutput(v.Name) {
			return []string{v.Name}
		}
		var out []string
		for i := 0; ; i++ {
			n := BusPinName(v.Name, i)
			if !p.IsInput(n) && !p.IsOutput(n) {
				break
			}
			out = append(out, n)
		}
		if len(out) == 0 {
			// unknown pin, reported by Chip.
			return []string{v.Name}
		}
		return out
	}
	return expandItem(v)
}

func expandItem(v interface{}) []string {
	switch v := v.(type) {
	case hdl.Pin:
		return []string{v.Name}
	case hdl.PinIndex:
		return []string{BusPinName(v.Name, v.Index)}
	case hdl.PinRange:
		out := make([]string, 0, v.End-v.Start+1)
		for i := v.Start; i <= v.End; i++ {
			out = append(out, BusPinName(v.Name, i))
		}
		return out
	}
	panic("unexpected parser output")
}

func pinItemName(v interface{}) string {
	switch v := v.(type) {
	case hdl.Pin:
		return v.Name
	case hdl.PinIndex:
		return v.Name
	case hdl.PinRange:
		return v.Name
	}
	return ""
}
