// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/db47h/counter8"
	"github.com/db47h/counter8/internal/logger"
	"github.com/db47h/counter8/internal/sim"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const statsPath = "/debug/statsview"

// launchStats starts the runtime statistics server.
func launchStats(addr string, out io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		mgr.Start()
	}()
	logger.Logf(logger.Allow, "statsview", "serving on %s", addr)
	fmt.Fprintf(out, "stats server available at http://%s%s\n", addr, statsPath)
}

func benchMode(args []string, out io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	opts.register(fs)
	cycles := fs.Uint64("cycles", 1000000, "number of clock cycles")
	oe := fs.Bool("oe", true, "output enable")
	seed := fs.Int64("seed", 1, "random seed for the input vectors")
	stats := fs.String("statsview", "", "serve runtime statistics on `addr` (e.g. localhost:12600)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *stats != "" {
		launchStats(*stats, out)
	}

	s, err := newSession(&opts)
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(*seed))
	var wraps uint64
	start := time.Now()
	for i := uint64(0); i < *cycles; i++ {
		ctl := counter8.UnpackControls(uint8(rnd.Intn(256)), uint8(rnd.Intn(8)))
		ctl.OutputEnable = *oe
		// keep loads rare so that the counter wraps now and then.
		ctl.Load = ctl.Load && rnd.Intn(64) == 0
		s.SetReset(false)
		if o := s.Step(ctl); o.Wrap {
			wraps++
		}
	}
	elapsed := time.Since(start)
	if err = s.Close(); err != nil {
		return err
	}

	hz := float64(*cycles) / elapsed.Seconds()
	fmt.Fprintf(out, "%s: %d cycles in %v => %.2f Hz, %d wraps, %s\n",
		s.Variant(), *cycles, elapsed, hz, wraps, formatOutputs(s.last))
	if h, ok := s.Driver.(*sim.Circuit); ok {
		fmt.Fprintf(out, "%d components, %d steps\n", h.Size(), h.Steps())
	}
	return nil
}
