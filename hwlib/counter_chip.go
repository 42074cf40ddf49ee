// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/counter8"
	"github.com/db47h/counter8/hwsim"
)

// Counter8Chip builds the gate level equivalent of Counter8 out of an adder,
// two multiplexers and resettable flip-flops. Its interface is the same as
// Counter8's.
//
// The adder computes q+1 when counting up and q+255 when counting down. In
// both cases the adder carry tells whether the step wraps: it is set for
// 255+1 and cleared for 0+255 only.
//
// The circuit needs at least 16 steps per cycle to settle.
//
func Counter8Chip(v counter8.Variant) (hwsim.NewPartFn, error) {
	adder := "a=q[0..7], b[0]=true, b[1..7]=down, out=sum[0..7]"
	if v != counter8.Minimal {
		adder += ", c=cout"
	}
	parts := hwsim.Parts{
		Not("in=up, out=down"),
		AdderN(8)(adder),
		MuxN(8)("a=q[0..7], b=sum[0..7], sel=en, out=step[0..7]"),
		MuxN(8)("a=step[0..7], b=d[0..7], sel=load, out=next[0..7]"),
		DFFRN(8)("in=next[0..7], reset=reset, out=q[0..7]"),
	}
	switch v {
	case counter8.Minimal:
		parts = append(parts,
			Buffer8("in=q[0..7], oe=oe, out=bus[0..7]"),
			// tie high
			Not("in=false, out=busoe"),
		)
	default:
		parts = append(parts,
			Buffer8("in=q[0..7], oe=oe, out=bus[0..7], drive=busoe"),
			Not("in=load, out=nload"),
			And("a=en, b=nload, out=count"),
			Xnor("a=up, b=cout, out=edge"),
			And("a=count, b=edge, out=wrapNext"),
			DFFR("in=wrapNext, reset=reset, out=wrap"),
			DFFR("in=wrapNext, reset=reset, out=carry"),
			DFFR("in=load, reset=reset, out=loaded"),
		)
	}
	return hwsim.Chip("Counter8Chip"+variantSuffix(v), CounterInputs, CounterOutputs, parts...)
}
