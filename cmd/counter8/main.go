// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command counter8 runs the 8-bit counter either through its core model or
// through the hwsim circuit simulator.
//
// Usage:
//
//	counter8 [mode] [flags] [args]
//
// Modes are:
//
//	scenario     run the built-in scenarios (default)
//	run          run a stimulus script, "-" for stdin
//	interactive  drive the counter from the keyboard
//	bench        free-run the counter with random inputs
//
// Run "counter8 <mode> -h" for the flags of each mode.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type modeFn func(args []string, out io.Writer) error

var modes = map[string]modeFn{
	"scenario":    scenarioMode,
	"run":         runMode,
	"interactive": interactiveMode,
	"bench":       benchMode,
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, "counter8:", err)
		}
		os.Exit(2)
	}
}

func run(args []string, out io.Writer) error {
	mode := "scenario"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode, args = strings.ToLower(args[0]), args[1:]
	}
	if mode == "help" {
		usage(out)
		return nil
	}
	fn, ok := modes[mode]
	if !ok {
		usage(os.Stderr)
		return errors.Errorf("unknown mode %q", mode)
	}
	return fn(args, out)
}

func usage(w io.Writer) {
	names := make([]string, 0, len(modes))
	for n := range modes {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintf(w, "usage: counter8 [%s] [flags] [args]\n", strings.Join(names, "|"))
}
