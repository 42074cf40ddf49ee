// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8_test

import (
	"testing"

	"github.com/db47h/counter8"
)

func TestPackControls(t *testing.T) {
	// ctrl(en=1, load=0, up=1, oe=1) in the tile testbench.
	ui, uio := counter8.PackControls(counter8.Controls{Enable: true, Up: true, OutputEnable: true, LoadValue: 0x55})
	if ui != 0x55 || uio != 0x0D {
		t.Fatalf("got ui=%#x uio=%#x", ui, uio)
	}
	check(t, func(ctl counter8.Controls) bool {
		return counter8.UnpackControls(counter8.PackControls(ctl)) == ctl
	})
	// upper uio bits are not connected.
	if ctl := counter8.UnpackControls(0, 0xF0); ctl != (counter8.Controls{}) {
		t.Fatalf("got %+v", ctl)
	}
}
