// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8

// Control bits on the bidirectional uio_in port of the TinyTapeout tile. The
// load value is presented on ui_in.
//
const (
	CtlEnable       = 1 << iota // uio_in[0]
	CtlLoad                     // uio_in[1]
	CtlUp                       // uio_in[2]
	CtlOutputEnable             // uio_in[3]
)

// PackControls returns the ui_in and uio_in port values for ctl.
//
func PackControls(ctl Controls) (ui, uio uint8) {
	if ctl.Enable {
		uio |= CtlEnable
	}
	if ctl.Load {
		uio |= CtlLoad
	}
	if ctl.Up {
		uio |= CtlUp
	}
	if ctl.OutputEnable {
		uio |= CtlOutputEnable
	}
	return ctl.LoadValue, uio
}

// UnpackControls decodes the ui_in and uio_in port values. Unused uio_in bits
// are ignored.
//
func UnpackControls(ui, uio uint8) Controls {
	return Controls{
		Enable:       uio&CtlEnable != 0,
		Load:         uio&CtlLoad != 0,
		Up:           uio&CtlUp != 0,
		OutputEnable: uio&CtlOutputEnable != 0,
		LoadValue:    ui,
	}
}
