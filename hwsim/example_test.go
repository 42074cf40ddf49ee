// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim_test

import (
	"fmt"

	"github.com/db47h/counter8/hwlib"
	"github.com/db47h/counter8/hwsim"
)

// counter4 is a 4 bits counter. Fields without a tag hold state.
//
type counter4 struct {
	En  int    `hw:"in"`
	Out [4]int `hw:"out,q"` // output bus "q"
	n   uint64
}

// Update implements Updater.
//
func (p *counter4) Update(c *hwsim.Circuit) {
	if c.AtTick() && c.Get(p.En) {
		p.n = (p.n + 1) & 15
	}
	hwlib.SetUint(c, p.Out[:], p.n)
}

// no need to import reflect, just cast a nil pointer to counter4
var c4Spec = hwsim.MakePart((*counter4)(nil))

// Counter4 wraps c4Spec into a function for use like the parts in hwlib.
func Counter4(c string) hwsim.Part { return c4Spec.NewPart(c) }

// MakePart example with a custom counter.
func ExampleMakePart() {
	var en bool
	var out uint64
	c, err := hwsim.NewCircuit(0, 8,
		hwlib.Input(func() bool { return en })("out=en"),
		Counter4("en=en, q=count[0..3]"),
		hwlib.OutputN(4, func(v uint64) { out = v })("in=count[0..3]"),
	)
	if err != nil {
		panic(err)
	}
	defer c.Dispose()

	// inputs are set while the clock is low.
	c.Tick()
	en = true
	for i := 1; i <= 16; i++ {
		c.Tock()
		c.Tick()
		if i%4 == 0 {
			fmt.Printf("cycle %d: q=%d\n", i, out)
		}
	}

	// Output:
	// cycle 4: q=4
	// cycle 8: q=8
	// cycle 12: q=12
	// cycle 16: q=0
}
