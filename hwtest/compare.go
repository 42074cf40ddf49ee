// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/db47h/counter8/hwlib"
	"github.com/db47h/counter8/hwsim"
)

// A Stimulus sets the values of the input pins for the given clock cycle.
// pins and values have the same length and values are those of the previous
// cycle when Stimulus is called.
//
type Stimulus func(cycle int, pins []string, values []bool)

// RandomInputs is a Stimulus that sets every input to a random value.
//
func RandomInputs(cycle int, pins []string, values []bool) {
	for i := range values {
		values[i] = rand.Int63()&(1<<62) != 0
	}
}

func connString(pins ...[]string) string {
	var b strings.Builder
	for _, ps := range pins {
		for _, n := range ps {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(n)
		}
	}
	return b.String()
}

// pinList rebuilds an IO spec from expanded pin names.
func pinList(in []string) string {
	bus := make(map[string]int)
	var pins []string

	for _, n := range in {
		b := strings.IndexRune(n, '[')
		if b < 0 {
			pins = append(pins, n)
			continue
		}
		bn := n[:b]
		idx, err := strconv.Atoi(n[b+1 : strings.IndexRune(n, ']')])
		if err != nil {
			panic(err)
		}
		if bidx, ok := bus[bn]; !ok || bidx < idx {
			bus[bn] = idx
		}
	}
	for k, n := range bus {
		pins = append(pins, k+"["+strconv.Itoa(n+1)+"]")
	}
	sort.Strings(pins)
	return strings.Join(pins, ", ")
}

func sameIO(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("pin count mismatch: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("pin %d: %q != %q", i, a[i], b[i])
		}
	}
	return nil
}

// ComparePart takes two parts and compares their outputs given the same
// random inputs. Both parts must have the same Input/Output interface.
//
func ComparePart(t *testing.T, tpc uint, part1 hwsim.NewPartFn, part2 hwsim.NewPartFn) {
	t.Helper()
	rand.Seed(time.Now().UnixNano())

	iter := len(part1("").Inputs)
	if iter > 12 {
		iter = 12
	}
	CompareWith(t, tpc, part1, part2, 1<<uint(iter), RandomInputs)
}

// CompareWith runs two parts side by side for the given number of clock
// cycles, feeding them the inputs set by stim, and fails the test as soon as
// their outputs differ.
//
func CompareWith(t *testing.T, tpc uint, part1, part2 hwsim.NewPartFn, cycles int, stim Stimulus) {
	t.Helper()

	ps1, ps2 := part1(""), part2("")
	if err := sameIO(ps1.Inputs, ps2.Inputs); err != nil {
		t.Fatalf("%s vs. %s inputs: %v", ps1.Name, ps2.Name, err)
	}
	if err := sameIO(ps1.Outputs, ps2.Outputs); err != nil {
		t.Fatalf("%s vs. %s outputs: %v", ps1.Name, ps2.Name, err)
	}

	inNames := ps1.Inputs
	inputs := make([]bool, len(inNames))
	outputs := make([][2]bool, len(ps1.Outputs))

	// each part gets its own wrapper with output probes.
	wrap := func(name string, part hwsim.NewPartFn, k int) hwsim.NewPartFn {
		parts := hwsim.Parts{part(connString(inNames, ps1.Outputs))}
		for i, o := range ps1.Outputs {
			n := i
			parts = append(parts, hwlib.Output(func(b bool) { outputs[n][k] = b })("in="+o))
		}
		w, err := hwsim.Chip(name, pinList(inNames), "", parts...)
		if err != nil {
			t.Fatal(err)
		}
		return w
	}
	w1, w2 := wrap("wrapper1", part1, 0), wrap("wrapper2", part2, 1)

	var parts hwsim.Parts
	for i, n := range inNames {
		k := i
		parts = append(parts, hwlib.Input(func() bool { return inputs[k] })("out="+n))
	}
	cstr := connString(inNames)
	parts = append(parts, w1(cstr), w2(cstr))

	c, err := hwsim.NewCircuit(0, tpc, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	check := func(cycle int) {
		for o, out := range outputs {
			if out[0] == out[1] {
				continue
			}
			var b strings.Builder
			for i, n := range inNames {
				if b.Len() > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s=%v", n, inputs[i])
			}
			t.Fatalf("cycle %d: %s\n%s: %s=%v, %s: %s=%v", cycle, b.String(),
				ps1.Name, ps1.Outputs[o], out[0], ps2.Name, ps2.Outputs[o], out[1])
		}
	}

	start := time.Now()
	c.Tick()
	for i := 0; i < cycles; i++ {
		stim(i, inNames, inputs)
		c.Tock()
		c.Tick()
		check(i)
	}

	elapsed := time.Since(start)
	ticks := c.Steps() / c.SPC()
	t.Logf("%d components. %d steps in %v. %d clock ticks => %.2f Hz", c.Size(), c.Steps(), elapsed, ticks, float64(ticks)/elapsed.Seconds())
}
