// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/counter8"
	"github.com/db47h/counter8/internal/script"
	"github.com/pkg/errors"
)

func formatOutputs(o counter8.Outputs) string {
	bus := "  z"
	if v, ok := o.BusValue(); ok {
		bus = fmt.Sprintf("%3d", v)
	}
	flags := []byte("---")
	if o.Wrap {
		flags[0] = 'W'
	}
	if o.CarryBorrow {
		flags[1] = 'C'
	}
	if o.Loaded {
		flags[2] = 'L'
	}
	return fmt.Sprintf("q=%3d bus=%s %s status=%#02x", o.Value, bus, flags, o.Status)
}

func runMode(args []string, out io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	opts.register(fs)
	verbose := fs.Bool("v", false, "print the outputs of every cycle")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("run: expected exactly one script file")
	}

	var r io.Reader = os.Stdin
	if fn := fs.Arg(0); fn != "-" {
		f, err := os.Open(fn)
		if err != nil {
			return errors.Wrap(err, "open script")
		}
		defer f.Close()
		r = f
	}
	sts, err := script.Parse(r)
	if err != nil {
		return err
	}

	s, err := newSession(&opts)
	if err != nil {
		return err
	}
	var observe func(uint64, script.Statement, counter8.Outputs)
	if *verbose {
		observe = func(c uint64, st script.Statement, o counter8.Outputs) {
			fmt.Fprintf(out, "%6d  %-24s %s\n", c, st.String(), formatOutputs(o))
		}
	}
	err = script.Run(s, sts, observe)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d cycles, %s\n", s.Cycles(), formatOutputs(s.last))
	return nil
}
