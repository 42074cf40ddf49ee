// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package script parses and runs counter stimulus scripts.
//
// A script has one statement per line. Text after a '#' is a comment. A
// statement lists the control inputs applied for one clock cycle, an optional
// repeat count and optional expectations checked after the last cycle:
//
//	reset                  # reset asserted for one cycle
//	load=250 oe            expect q=250 loaded bus=250
//	en up oe *5            expect q=255 !wrap
//	en up oe               expect q=0 wrap carry
//	nop                    # idle cycle, output disabled
//	expect bus=z           # check only, no clock
//
// Controls are en, up, down, oe, load=<v>, reset and nop. Checks are q=<v>,
// bus=<v>, bus=z, status=<v> and the pulses wrap, carry and loaded, which can
// be negated with a leading '!'. Values accept decimal, 0x hex and 0b binary.
//
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/counter8"
	"github.com/pkg/errors"
)

// A Check is a single expectation on the counter outputs.
//
type Check struct {
	Name string // q, bus, status, wrap, carry or loaded
	Want int    // expected value, 0/1 for pulses, -1 for a released bus
}

func (c Check) String() string {
	switch c.Name {
	case "wrap", "carry", "loaded":
		if c.Want == 0 {
			return "!" + c.Name
		}
		return c.Name
	case "bus":
		if c.Want < 0 {
			return "bus=z"
		}
	}
	return c.Name + "=" + strconv.Itoa(c.Want)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Eval checks o against c.
//
func (c Check) Eval(o counter8.Outputs) error {
	var got int
	switch c.Name {
	case "q":
		got = int(o.Value)
	case "bus":
		got = int(o.Bus)
		if !o.Driven {
			got = -1
		}
	case "status":
		got = int(o.Status)
	case "wrap":
		got = b2i(o.Wrap)
	case "carry":
		got = b2i(o.CarryBorrow)
	case "loaded":
		got = b2i(o.Loaded)
	default:
		return errors.Errorf("unknown check %s", c.Name)
	}
	if got != c.Want {
		return errors.Errorf("expected %v, got %v", c, Check{c.Name, got})
	}
	return nil
}

// A Statement is one script line.
//
type Statement struct {
	Line     int
	Clock    bool // false for check only statements
	Controls counter8.Controls
	Reset    bool
	Repeat   int
	Expect   []Check
}

func (s Statement) String() string {
	var f []string
	if s.Clock {
		ctl := s.Controls
		if s.Reset {
			f = append(f, "reset")
		}
		if ctl.Load {
			f = append(f, "load="+strconv.Itoa(int(ctl.LoadValue)))
		}
		if ctl.Enable {
			f = append(f, "en")
			if ctl.Up {
				f = append(f, "up")
			} else {
				f = append(f, "down")
			}
		}
		if ctl.OutputEnable {
			f = append(f, "oe")
		}
		if len(f) == 0 {
			f = append(f, "nop")
		}
		if s.Repeat > 1 {
			f = append(f, "*"+strconv.Itoa(s.Repeat))
		}
	}
	if len(s.Expect) > 0 {
		f = append(f, "expect")
		for _, c := range s.Expect {
			f = append(f, c.String())
		}
	}
	return strings.Join(f, " ")
}

// Parse reads a script.
//
func Parse(r io.Reader) ([]Statement, error) {
	var sts []Statement
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		st, err := parseStatement(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		st.Line = line
		sts = append(sts, st)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return sts, nil
}

// ParseString is a convenience wrapper around Parse.
//
func ParseString(s string) ([]Statement, error) {
	return Parse(strings.NewReader(s))
}

func parseStatement(fields []string) (Statement, error) {
	st := Statement{Repeat: 1}
	i := 0
	for ; i < len(fields); i++ {
		f := fields[i]
		if f == "expect" {
			break
		}
		st.Clock = true
		switch {
		case f == "en":
			st.Controls.Enable = true
		case f == "up":
			st.Controls.Up = true
		case f == "down":
			st.Controls.Up = false
		case f == "oe":
			st.Controls.OutputEnable = true
		case f == "reset":
			st.Reset = true
		case f == "nop":
		case strings.HasPrefix(f, "load="):
			v, err := counter8.ParseValue(f[len("load="):])
			if err != nil {
				return st, err
			}
			st.Controls.Load = true
			st.Controls.LoadValue = v
		case strings.HasPrefix(f, "*"):
			n, err := strconv.Atoi(f[1:])
			if err != nil || n < 1 {
				return st, errors.Errorf("invalid repeat count %q", f)
			}
			st.Repeat = n
		default:
			return st, errors.Errorf("unknown control %q", f)
		}
	}
	if i == len(fields) {
		return st, nil
	}
	if i == len(fields)-1 {
		return st, errors.New("expect without checks")
	}
	for _, f := range fields[i+1:] {
		c, err := parseCheck(f)
		if err != nil {
			return st, err
		}
		st.Expect = append(st.Expect, c)
	}
	return st, nil
}

func parseCheck(f string) (Check, error) {
	switch f {
	case "wrap", "carry", "loaded":
		return Check{f, 1}, nil
	case "!wrap", "!carry", "!loaded":
		return Check{f[1:], 0}, nil
	case "bus=z", "bus=Z":
		return Check{"bus", -1}, nil
	}
	i := strings.IndexByte(f, '=')
	if i < 0 {
		return Check{}, errors.Errorf("unknown check %q", f)
	}
	name := f[:i]
	switch name {
	case "q", "bus", "status":
	default:
		return Check{}, errors.Errorf("unknown check %q", f)
	}
	v, err := counter8.ParseValue(f[i+1:])
	if err != nil {
		return Check{}, err
	}
	return Check{name, int(v)}, nil
}

// A Clock is anything that can be clocked like a counter.
//
type Clock interface {
	Variant() counter8.Variant
	Step(ctl counter8.Controls) counter8.Outputs
	SetReset(asserted bool)
}

// Failure is a failed expectation.
//
type Failure struct {
	Statement Statement
	Cycle     uint64
	Err       error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("line %d (%s), cycle %d: %v", f.Statement.Line, f.Statement, f.Cycle, f.Err)
}

// Run runs the statements against c. observe, if not nil, is called after
// every clock cycle with the cycle number starting at 1. Run stops at the
// first failed expectation and returns it as a *Failure.
//
func Run(c Clock, sts []Statement, observe func(cycle uint64, st Statement, o counter8.Outputs)) error {
	out := counter8.Project(c.Variant(), counter8.ResetState, false)
	var cycle uint64
	for _, st := range sts {
		if st.Clock {
			c.SetReset(st.Reset)
			for i := 0; i < st.Repeat; i++ {
				out = c.Step(st.Controls)
				cycle++
				if observe != nil {
					observe(cycle, st, out)
				}
			}
		}
		for _, chk := range st.Expect {
			if err := chk.Eval(out); err != nil {
				return &Failure{st, cycle, err}
			}
		}
	}
	return nil
}
