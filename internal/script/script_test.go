// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package script_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/db47h/counter8"
	"github.com/db47h/counter8/internal/script"
	"github.com/db47h/counter8/internal/sim"
)

func TestParse(t *testing.T) {
	sts, err := script.ParseString(`
# comment line
reset
load=0x10 oe       expect q=16 loaded   # trailing comment
en up oe *3
en down
nop
expect bus=z !wrap status=0b101
`)
	if err != nil {
		t.Fatal(err)
	}
	exp := []script.Statement{
		{Line: 3, Clock: true, Reset: true, Repeat: 1},
		{Line: 4, Clock: true, Repeat: 1,
			Controls: counter8.Controls{Load: true, LoadValue: 0x10, OutputEnable: true},
			Expect:   []script.Check{{Name: "q", Want: 16}, {Name: "loaded", Want: 1}}},
		{Line: 5, Clock: true, Repeat: 3, Controls: counter8.Controls{Enable: true, Up: true, OutputEnable: true}},
		{Line: 6, Clock: true, Repeat: 1, Controls: counter8.Controls{Enable: true}},
		{Line: 7, Clock: true, Repeat: 1},
		{Line: 8, Repeat: 1, Expect: []script.Check{{Name: "bus", Want: -1}, {Name: "wrap", Want: 0}, {Name: "status", Want: 5}}},
	}
	if !reflect.DeepEqual(sts, exp) {
		t.Fatalf("expected\n%+v\ngot\n%+v", exp, sts)
	}

	strs := []string{"reset", "load=16 oe expect q=16 loaded", "en up oe *3", "en down", "nop", "expect bus=z !wrap status=5"}
	for i, st := range sts {
		if st.String() != strs[i] {
			t.Errorf("statement %d: expected %q, got %q", i, strs[i], st.String())
		}
	}
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		in, err string
	}{
		{"en\nfoo", `line 2: unknown control "foo"`},
		{"load=256", `line 1: parse "256": value out of range [0, 255]`},
		{"en *0", `line 1: invalid repeat count "*0"`},
		{"en expect", "line 1: expect without checks"},
		{"expect q", `line 1: unknown check "q"`},
		{"expect x=1", `line 1: unknown check "x=1"`},
		{"expect q=zz", `line 1: invalid value "zz": strconv.ParseInt: parsing "zz": invalid syntax`},
	}
	for _, d := range td {
		_, err := script.ParseString(d.in)
		if err == nil || err.Error() != d.err {
			t.Errorf("%q: expected error %q, got %v", d.in, d.err, err)
		}
	}
}

func drivers(t *testing.T, v counter8.Variant) map[string]func() sim.Driver {
	return map[string]func() sim.Driver{
		"core": func() sim.Driver { return sim.NewCore(v) },
		"part": func() sim.Driver {
			h, err := sim.NewCircuit(v, sim.Config{})
			if err != nil {
				t.Fatal(err)
			}
			return h
		},
		"gates": func() sim.Driver {
			h, err := sim.NewCircuit(v, sim.Config{Gates: true})
			if err != nil {
				t.Fatal(err)
			}
			return h
		},
	}
}

func TestScenarios(t *testing.T) {
	for _, v := range []counter8.Variant{counter8.Full, counter8.Minimal} {
		for dn, newDriver := range drivers(t, v) {
			for _, sc := range script.Scenarios(v) {
				v, newDriver, sc := v, newDriver, sc
				t.Run(v.String()+"/"+dn+"/"+sc.Name, func(t *testing.T) {
					sts, err := script.ParseString(sc.Source)
					if err != nil {
						t.Fatal(err)
					}
					d := newDriver()
					defer d.Close()
					var cycles uint64
					err = script.Run(d, sts, func(c uint64, _ script.Statement, _ counter8.Outputs) { cycles = c })
					if err != nil {
						t.Fatal(err)
					}
					if cycles != d.Cycles() {
						t.Fatalf("observed %d cycles, driver ran %d", cycles, d.Cycles())
					}
				})
			}
		}
	}
}

func TestRun_failure(t *testing.T) {
	sts, err := script.ParseString("load=9 oe\nen up oe expect q=11")
	if err != nil {
		t.Fatal(err)
	}
	err = script.Run(sim.NewCore(counter8.Full), sts, nil)
	f, ok := err.(*script.Failure)
	if !ok {
		t.Fatalf("expected a *Failure, got %v", err)
	}
	if f.Cycle != 2 || f.Statement.Line != 2 {
		t.Fatalf("unexpected failure location: %v", f)
	}
	if !strings.HasSuffix(f.Error(), "expected q=11, got q=10") {
		t.Fatalf("unexpected failure message: %v", f)
	}
}

func TestLookup(t *testing.T) {
	if _, err := script.Lookup(counter8.Full, "count_up_wrap"); err != nil {
		t.Fatal(err)
	}
	if _, err := script.Lookup(counter8.Minimal, "tristate_enable"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}
