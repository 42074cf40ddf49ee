// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwsim provides a naive, cycle-stepped hardware simulator used to run
the counter8 core as a clocked part next to an equivalent gate-level chip.

Parts are described by a PartSpec and composed into bigger chips with Chip. A
Circuit mounts a set of parts, allocates one wire per net and advances all
components in lock-step: every component reads wire states from the current
frame and writes to the next one, so that each component adds exactly one step
of propagation delay.

The API mimics a hardware description language and relies heavily on closures:

	c, err := hwsim.NewCircuit(0, 16,
		hwlib.Input(func() bool { return en })("out=en"),
		hwlib.Counter8(counter8.Full)("en=en, up=true, q=q[0..7]"),
		hwlib.OutputN(8, func(v uint64) { q = v })("in=q[0..7]"),
	)

*/
package hwsim
