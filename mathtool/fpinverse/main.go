// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// This tool inverts a generated float64 matrix serially,
// for comparison with gfinverse.
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

// tolerance is the largest residual a successful check accepts.
const tolerance = 1e-7

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	def := cli.Defaults()

	fs := flag.NewFlagSet("fpinverse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("s", def.Seed, "seed for matrix generation")
	check := fs.Bool("c", false, "verify the inverse")
	singular := fs.Bool("SINGULAR", false, "generate a singular matrix")
	permutation := fs.Bool("PERM", false, "generate a permutation matrix")
	verbose := fs.Bool("v", false, "debug logging")
	asYAML := fs.Bool("yaml", false, "print the report as YAML")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: fpinverse [-s seed] [-c] [-SINGULAR] [-PERM] [-v] [-yaml] [size]")
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

	var src gjinverse.FloatSource
	switch {
	case *singular:
		src = gjinverse.NewFloatSingular(*seed, n)
	case *permutation:
		src = gjinverse.NewFloatPermutation(*seed, n)
	default:
		src = gjinverse.NewFloatRandom(*seed, n)
	}
	a := src.Matrix()

	log.WithField("n", n).Debug("inversion started")
	start := time.Now()
	err := gjinverse.InvertFloat(a)
	elapsed := time.Since(start)
	if err != nil {
		log.WithError(err).Error("inversion failed")
		return 1
	}
	log.WithField("elapsed", elapsed).Debug("inversion finished")
	rep := cli.NewReport("DoubleInverse", 0, n, *seed, elapsed)

	code := 0
	if *check {
		start = time.Now()
		res, err := gjinverse.CheckFloat(ctx, src, a, 0)
		if err != nil {
			log.WithError(err).Error("check failed")
			return 1
		}
		ok := res < tolerance
		rep.Check = &cli.CheckReport{OK: ok, MaxError: &res, Elapsed: time.Since(start)}
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
