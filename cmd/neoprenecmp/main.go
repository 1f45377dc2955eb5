// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command neoprenecmp compares two closed-form real expressions built
// from rationals, pi, and e, and reports which is larger.
package main

import (
	"flag"
	"fmt"
	"os"

	"neoprene.dev/neoprene/compare"
	"neoprene.dev/neoprene/config"
	"neoprene.dev/neoprene/eval"
	"neoprene.dev/neoprene/expr"
	"neoprene.dev/neoprene/interval"
	"neoprene.dev/neoprene/lang"
	"neoprene.dev/neoprene/rat"
)

var (
	maxRounds = flag.Int("rounds", 0, "maximum refinement rounds before reporting Diverged (0 uses the default)")
	initIter  = flag.Int64("iter", 0, "initial series/Newton iteration count (0 uses the default)")
	show      = flag.Bool("show", false, "print each expression's interval enclosure at the initial iter and denominator cap (not at the round where the comparison stopped) after the result")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <expr1> <expr2>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	if !run(flag.Arg(0), flag.Arg(1)) {
		os.Exit(1)
	}
}

// run parses and compares the two expressions, printing the result (or
// an error) to standard output/error. It returns false if anything
// went wrong, so main can set a nonzero exit status.
//
// The recover here is the one boundary in this program that turns a
// package-level panic (rat.Error, interval.Error, expr.Error, eval.Error)
// into ordinary output: those types all signal a malformed expression
// or an evaluation that can't stay real-valued, not a bug in this
// program, so they're reported and swallowed rather than left to crash
// the process. Anything else re-panics.
func run(src1, src2 string) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r.(type) {
		case rat.Error, interval.Error, expr.Error, eval.Error:
			fmt.Fprintf(os.Stderr, "neoprenecmp: %s\n", r)
			ok = false
		default:
			panic(r)
		}
	}()

	a, err := lang.Parse(src1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "neoprenecmp: %s\n", err)
		return false
	}
	b, err := lang.Parse(src2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "neoprenecmp: %s\n", err)
		return false
	}

	cfg := config.New()
	if *maxRounds > 0 {
		cfg.SetMaxRounds(*maxRounds)
	}
	if *initIter > 0 {
		cfg.SetInitialIter(*initIter)
	}

	result := compare.Compare(a, b, cfg.MaxRounds(), cfg)
	fmt.Println(result)

	if *show {
		printEnclosure(a, cfg)
		printEnclosure(b, cfg)
	}
	return true
}

func printEnclosure(n expr.Node, cfg *config.Config) {
	iv := eval.Eval(n, cfg.InitialIter(), cfg.InitialDenomCap(), cfg.ExpNumCap())
	fmt.Printf("%s: %s\n", n, iv)
}
