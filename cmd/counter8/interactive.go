// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/db47h/counter8"
	"github.com/db47h/counter8/internal/logger"
	"github.com/pkg/errors"
	"github.com/pkg/term"
)

const interactiveHelp = `keys:
  e  toggle enable       u  toggle direction   o  toggle output enable
  0-9 a-f  shift a hex digit into the load value
  l  load on next clock  r  reset pulse        space/enter  clock
  ?  help                q  quit
`

// console is the keyboard state.
type console struct {
	ctl   counter8.Controls
	reset bool
	load  bool
}

// key applies a key press. It returns true if the counter must be clocked
// and false, false on quit.
func (c *console) key(k byte) (clock bool, ok bool) {
	switch {
	case k == 'e':
		c.ctl.Enable = !c.ctl.Enable
	case k == 'u':
		c.ctl.Up = !c.ctl.Up
	case k == 'o':
		c.ctl.OutputEnable = !c.ctl.OutputEnable
	case k >= '0' && k <= '9':
		c.ctl.LoadValue = c.ctl.LoadValue<<4 | (k - '0')
	case k >= 'a' && k <= 'f':
		c.ctl.LoadValue = c.ctl.LoadValue<<4 | (k - 'a' + 10)
	case k == 'l':
		c.load = true
	case k == 'r':
		c.reset = true
		return true, true
	case k == ' ' || k == '\n' || k == '\r':
		return true, true
	case k == 'q' || k == 3 || k == 4: // ^C, ^D
		return false, false
	}
	return false, true
}

// controls returns the controls for the next clock and clears one-shot
// inputs.
func (c *console) controls() (counter8.Controls, bool) {
	ctl, reset := c.ctl, c.reset
	ctl.Load = c.load
	c.load, c.reset = false, false
	return ctl, reset
}

func (c *console) String() string {
	dir := "down"
	if c.ctl.Up {
		dir = "up"
	}
	return fmt.Sprintf("en=%v %-4s oe=%v d=%#02x load=%v", b2c(c.ctl.Enable), dir, b2c(c.ctl.OutputEnable), c.ctl.LoadValue, b2c(c.load))
}

func b2c(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func interactiveMode(args []string, out io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	opts.register(fs)
	oe := fs.Bool("oe", true, "initial output enable")
	tty := fs.String("tty", "/dev/tty", "terminal `device`")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := term.Open(*tty, term.CBreakMode)
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	defer t.Close()
	defer t.Restore()

	s, err := newSession(&opts)
	if err != nil {
		return err
	}
	c := &console{ctl: counter8.Controls{Up: true, OutputEnable: *oe}}
	logger.Log(logger.Allow, logTag, "interactive mode")
	fmt.Fprint(out, interactiveHelp)
	fmt.Fprintf(out, "\r%6d  %s  %s ", s.Cycles(), formatOutputs(s.last), c)

	var b [1]byte
	for {
		n, err := t.Read(b[:])
		if err != nil {
			s.Close()
			return errors.Wrap(err, "read terminal")
		}
		if n == 0 {
			continue
		}
		if b[0] == '?' {
			fmt.Fprint(out, "\n"+interactiveHelp)
		}
		clock, ok := c.key(b[0])
		if !ok {
			break
		}
		if clock {
			ctl, reset := c.controls()
			s.SetReset(reset)
			s.Step(ctl)
		}
		fmt.Fprintf(out, "\r%6d  %s  %s ", s.Cycles(), formatOutputs(s.last), c)
	}
	fmt.Fprintln(out)
	return s.Close()
}
