// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/db47h/counter8"
	"github.com/db47h/counter8/internal/logger"
	"github.com/db47h/counter8/internal/sim"
	"github.com/db47h/counter8/internal/vcd"
	"github.com/pkg/errors"
)

const logTag = "counter8"

// options common to all modes.
type options struct {
	variant string
	gates   bool
	circuit bool
	workers int
	tpc     uint
	vcd     string
	log     bool
	dump    string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.variant, "variant", "full", "counter variant: full or minimal")
	fs.BoolVar(&o.circuit, "circuit", false, "run the counter part in the circuit simulator")
	fs.BoolVar(&o.gates, "gates", false, "run the gate level counter in the circuit simulator (implies -circuit)")
	fs.IntVar(&o.workers, "workers", 0, "simulator worker goroutines, 0 for GOMAXPROCS")
	fs.UintVar(&o.tpc, "tpc", sim.MinStepsPerCycle, "simulator steps per clock cycle")
	fs.StringVar(&o.vcd, "vcd", "", "write a VCD trace to `file`")
	fs.BoolVar(&o.log, "log", false, "echo log entries to stderr")
	fs.StringVar(&o.dump, "dump", "", "write a graphviz dump of the final outputs to `file`")
}

// session is a sim.Driver with logging and tracing.
type session struct {
	sim.Driver
	opts  *options
	reset bool
	ctl   counter8.Controls
	last  counter8.Outputs
	trace *vcd.Writer
	tf    *os.File
}

var traceVars = []vcd.Var{
	{Name: "reset", Width: 1},
	{Name: "en", Width: 1},
	{Name: "load", Width: 1},
	{Name: "up", Width: 1},
	{Name: "oe", Width: 1},
	{Name: "d", Width: 8},
	{Name: "q", Width: 8},
	{Name: "bus", Width: 8},
	{Name: "busoe", Width: 1},
	{Name: "wrap", Width: 1},
	{Name: "carry", Width: 1},
	{Name: "loaded", Width: 1},
	{Name: "status", Width: 8},
}

func newSession(o *options) (*session, error) {
	v, err := counter8.ParseVariant(o.variant)
	if err != nil {
		return nil, err
	}
	if o.log {
		logger.SetEcho(os.Stderr)
	}

	s := &session{opts: o}
	if o.circuit || o.gates {
		h, err := sim.NewCircuit(v, sim.Config{Gates: o.gates, Workers: o.workers, StepsPerCycle: o.tpc})
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, logTag, "%v circuit: %d components, %d steps per cycle, gates=%v", v, h.Size(), h.SPC(), o.gates)
		s.Driver = h
	} else {
		s.Driver = sim.NewCore(v)
		logger.Logf(logger.Allow, logTag, "%v core", v)
	}
	s.last = counter8.Project(v, counter8.ResetState, false)

	if o.vcd != "" {
		if s.tf, err = os.Create(o.vcd); err != nil {
			s.Driver.Close()
			return nil, errors.Wrap(err, "create trace file")
		}
		if s.trace, err = vcd.NewWriter(s.tf, "1us", "counter8", traceVars...); err != nil {
			s.tf.Close()
			s.Driver.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *session) SetReset(asserted bool) {
	if asserted != s.reset {
		if asserted {
			logger.Log(logger.Allow, logTag, "reset asserted")
		} else {
			logger.Log(logger.Allow, logTag, "reset released")
		}
	}
	s.reset = asserted
	s.Driver.SetReset(asserted)
}

func (s *session) Step(ctl counter8.Controls) counter8.Outputs {
	o := s.Driver.Step(ctl)
	s.ctl, s.last = ctl, o
	if ctl.Load && !s.reset {
		logger.Logf(logger.Allow, logTag, "load %#02x", o.Value)
	}
	if o.Wrap {
		logger.Logf(logger.Allow, logTag, "wrap to %d", o.Value)
	}
	if s.trace != nil {
		err := s.trace.Sample(s.Cycles(),
			vcd.Bool(s.reset), vcd.Bool(ctl.Enable), vcd.Bool(ctl.Load), vcd.Bool(ctl.Up), vcd.Bool(ctl.OutputEnable),
			uint64(ctl.LoadValue), uint64(o.Value), uint64(o.Bus), vcd.Bool(o.Driven),
			vcd.Bool(o.Wrap), vcd.Bool(o.CarryBorrow), vcd.Bool(o.Loaded), uint64(o.Status))
		if err != nil {
			logger.Log(logger.Allow, logTag, err)
			s.trace = nil
		}
	}
	return o
}

// snapshot is the memviz dump root.
type snapshot struct {
	Variant  string
	Cycles   uint64
	Reset    bool
	Controls counter8.Controls
	Outputs  counter8.Outputs
}

func (s *session) Close() error {
	var errs []error
	if s.trace != nil {
		errs = append(errs, s.trace.Flush())
	}
	if s.tf != nil {
		errs = append(errs, s.tf.Close())
	}
	if s.opts.dump != "" {
		errs = append(errs, s.dumpTo(s.opts.dump))
	}
	errs = append(errs, s.Driver.Close())
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *session) dumpTo(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create dump file")
	}
	memviz.Map(f, &snapshot{
		Variant:  s.Variant().String(),
		Cycles:   s.Cycles(),
		Reset:    s.reset,
		Controls: s.ctl,
		Outputs:  s.last,
	})
	return errors.Wrap(f.Close(), "write dump file")
}
