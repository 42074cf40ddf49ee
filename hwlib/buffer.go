// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/counter8/hwsim"

// buffer8 is an 8 bits bus driver. Since wires only carry two states, a
// released bus reads as 0 and the drive output tells whether the value is
// meaningful.
type buffer8 struct {
	In    [8]int `hw:"in"`
	OE    int    `hw:"in"`
	Out   [8]int `hw:"out"`
	Drive int    `hw:"out"`
}

func (t *buffer8) Update(c *hwsim.Circuit) {
	oe := c.Get(t.OE)
	for i, p := range t.In {
		c.Set(t.Out[i], oe && c.Get(p))
	}
	c.Set(t.Drive, oe)
}

var buffer8Spec = hwsim.MakePart((*buffer8)(nil))

// Buffer8 returns an 8 bits tri-state bus driver.
//
//	Inputs: in[8], oe
//	Outputs: out[8], drive
//	Function: if oe { out = in } else { out = 0 }
//	          drive = oe
//
func Buffer8(w string) hwsim.Part { return buffer8Spec.NewPart(w) }
