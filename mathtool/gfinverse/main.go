// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// This tool inverts a generated matrix over GF(2^32) with one of
// the three engines and reports time & score (n^3 per second).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/templexxx/gjinverse"
	"github.com/templexxx/gjinverse/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	def := cli.Defaults()

	fs := flag.NewFlagSet("gfinverse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("s", def.Seed, "seed for matrix generation")
	check := fs.Bool("c", false, "verify the inverse")
	threads := fs.Int("p", def.Threads, "parallelism; <= 0 selects the serial engine")
	singular := fs.Bool("SINGULAR", false, "generate a singular matrix")
	permutation := fs.Bool("PERM", false, "generate a permutation matrix")
	nowait := fs.Bool("NOWAIT", false, "use the dependency graph engine instead of the barrier one")
	verbose := fs.Bool("v", false, "debug logging")
	asYAML := fs.Bool("yaml", false, "print the report as YAML")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gfinverse [-s seed] [-p parallelism] [-c] [-SINGULAR] [-PERM] [-NOWAIT] [-v] [-yaml] [size]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	n := def.Size
	if fs.NArg() > 0 {
		v, err := strconv.Atoi(fs.Arg(0))
		if err != nil || v < 0 {
			fs.Usage()
			return 1
		}
		n = v
	}

	log := cli.NewLogger(stderr, *verbose)
	f := gjinverse.GF32

	var src gjinverse.Source
	switch {
	case *singular:
		src = gjinverse.NewSingular(f, *seed, n)
	case *permutation:
		src = gjinverse.NewPermutation(*seed, n)
	default:
		src = gjinverse.NewRandom(f, *seed, n)
	}
	a := src.Matrix()

	inv := gjinverse.New(gjinverse.Config{
		Field:   f,
		Threads: *threads,
		NoWait:  *nowait,
		Logger:  log,
	})
	start := time.Now()
	err := inv.Invert(ctx, a)
	elapsed := time.Since(start)
	if err != nil {
		log.WithError(err).WithField("engine", inv.Name()).Error("inversion failed")
		return 1
	}
	rep := cli.NewReport(inv.Name(), inv.Threads(), n, *seed, elapsed)

	code := 0
	if *check {
		start = time.Now()
		ok, err := gjinverse.Check(ctx, f, src, a, 0)
		if err != nil {
			log.WithError(err).Error("check failed")
			return 1
		}
		rep.Check = &cli.CheckReport{OK: ok, Elapsed: time.Since(start)}
		if !ok {
			code = 1
		}
	}

	if err := rep.Write(stdout, *asYAML); err != nil {
		log.WithError(err).Error("write report")
		return 1
	}
	return code
}
