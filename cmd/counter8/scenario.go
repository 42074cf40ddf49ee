// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/counter8"
	"github.com/db47h/counter8/internal/logger"
	"github.com/db47h/counter8/internal/script"
	"github.com/pkg/errors"
)

func scenarioMode(args []string, out io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)
	opts.register(fs)
	name := fs.String("name", "", "run only the named scenario")
	list := fs.Bool("list", false, "list scenarios and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := counter8.ParseVariant(opts.variant)
	if err != nil {
		return err
	}

	scs := script.Scenarios(v)
	if *list {
		for _, sc := range scs {
			fmt.Fprintln(out, sc.Name)
		}
		return nil
	}
	if *name != "" {
		sc, err := script.Lookup(v, *name)
		if err != nil {
			return err
		}
		scs = []script.Scenario{sc}
	}

	s, err := newSession(&opts)
	if err != nil {
		return err
	}
	failed := 0
	for _, sc := range scs {
		sts, err := script.ParseString(sc.Source)
		if err != nil {
			s.Close()
			return errors.Wrapf(err, "scenario %s", sc.Name)
		}
		start := s.Cycles()
		logger.Logf(logger.Allow, logTag, "scenario %s", sc.Name)
		if err = script.Run(s, sts, nil); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", sc.Name, err)
			continue
		}
		fmt.Fprintf(out, "PASS %s (%d cycles)\n", sc.Name, s.Cycles()-start)
	}
	if err = s.Close(); err != nil {
		return err
	}
	if failed > 0 {
		logger.Tail(os.Stderr, 10)
		return errors.Errorf("%d of %d scenarios failed", failed, len(scs))
	}
	return nil
}
