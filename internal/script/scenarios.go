// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package script

import (
	"github.com/db47h/counter8"
	"github.com/pkg/errors"
)

// Scenario is a named built-in script.
//
type Scenario struct {
	Name   string
	Source string
}

var fullScenarios = []Scenario{
	{"reset_and_load", `
reset                   expect q=0 !wrap !carry !loaded bus=z
load=0xA5 oe            expect q=0xA5 loaded bus=0xA5 status=0x25
oe                      expect q=0xA5 !loaded bus=0xA5
reset oe                expect q=0 !loaded bus=0
`},
	{"count_up_wrap", `
reset
load=250 oe             expect q=250 loaded
en up oe *5             expect q=255 !wrap !carry
en up oe                expect q=0 wrap carry bus=0 status=0xC0
en up oe                expect q=1 !wrap !carry
`},
	{"count_down_wrap", `
reset
load=1 oe               expect q=1
en down oe              expect q=0 !wrap
en down oe              expect q=255 wrap carry bus=255
en down oe              expect q=254 !wrap !carry
`},
	{"tristate_enable", `
reset
load=0xA5               expect q=0xA5 bus=z
oe                      expect bus=0xA5
en up oe                expect q=0xA6 bus=0xA6
nop                     expect q=0xA6 bus=z
en up                   expect q=0xA7 bus=z
oe                      expect bus=0xA7
`},
	{"load_priority", `
reset
load=10 en up oe        expect q=10 loaded !wrap
load=255 en up oe       expect q=255 loaded
load=3 en up oe         expect q=3 loaded !wrap !carry
`},
}

var minimalScenarios = []Scenario{
	{"reset_and_load", `
reset                   expect q=0 bus=0
load=0xA5 oe            expect q=0xA5 !loaded bus=0xA5 status=0xA5
oe                      expect q=0xA5 bus=0xA5
`},
	{"count_up_wrap", `
reset
load=250 oe             expect q=250
en up oe *5             expect q=255
en up oe                expect q=0 !wrap !carry bus=0
en up oe                expect q=1
`},
	{"count_down_wrap", `
reset
load=1 oe               expect q=1
en down oe *2           expect q=255 !wrap bus=255
`},
	{"output_disable", `
reset
load=0xA5               expect q=0xA5 bus=0
oe                      expect bus=0xA5
nop                     expect bus=0
`},
}

// Scenarios returns the built-in scenarios for the given variant.
//
func Scenarios(v counter8.Variant) []Scenario {
	if v == counter8.Minimal {
		return minimalScenarios
	}
	return fullScenarios
}

// Lookup returns the named scenario for the given variant.
//
func Lookup(v counter8.Variant, name string) (Scenario, error) {
	for _, s := range Scenarios(v) {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, errors.Errorf("no scenario %q for variant %v", name, v)
}
