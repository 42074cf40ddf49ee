// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8_test

import (
	"fmt"

	"github.com/db47h/counter8"
)

func ExampleCounter() {
	c := counter8.New(counter8.Full)
	c.Step(counter8.Controls{Load: true, LoadValue: 254})
	for i := 0; i < 3; i++ {
		o := c.Step(counter8.Controls{Enable: true, Up: true, OutputEnable: i != 1})
		v, driven := o.BusValue()
		fmt.Printf("value=%d wrap=%v carry=%v bus=%d driven=%v\n", o.Value, o.Wrap, o.CarryBorrow, v, driven)
	}

	// Output:
	// value=255 wrap=false carry=false bus=255 driven=true
	// value=0 wrap=true carry=true bus=0 driven=false
	// value=1 wrap=false carry=false bus=1 driven=true
}
