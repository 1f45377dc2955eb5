// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compare implements the comparison driver: given two
// canonical expression trees, it refines both their interval
// enclosures in lockstep until the intervals become disjoint (a sound
// basis for Less/Greater) or a round budget is exhausted, in which case
// it reports Diverged rather than guess. It never reports Equal —
// two closed-form reals that still overlap after the configured budget
// might be exactly equal, or might simply be too close to separate
// yet, and this package does not try to tell those cases apart.
package compare

import (
	"math/big"

	"neoprene.dev/neoprene/config"
	"neoprene.dev/neoprene/eval"
	"neoprene.dev/neoprene/expr"
)

// Result is the outcome of comparing two expressions.
type Result int

const (
	// Less means the first expression's value is provably less than
	// the second's.
	Less Result = iota
	// Equal is never returned by Compare — true equality between two
	// closed-form reals is not decidable within a finite budget — but
	// is declared so Result's shape is the four-valued type spec.md
	// describes rather than silently dropping a case a caller might
	// switch on.
	Equal
	// Greater means the first expression's value is provably greater
	// than the second's.
	Greater
	// Diverged means the comparison could not separate the two values
	// within the configured round budget. This covers both "the two
	// values are exactly equal" and "the two values are distinct but
	// too close together to resolve in time" — the driver cannot tell
	// these apart, and spec.md's scope excludes trying to.
	Diverged
)

func (r Result) String() string {
	switch r {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Diverged:
		return "Diverged"
	default:
		return "Result(?)"
	}
}

// Compare decides the ordering between a and b, trying at most maxIter
// refinement rounds. It starts both expressions' enclosures at cfg's
// initial iteration count and denominator cap, and on every round
// where the two intervals still overlap, increments iter by one,
// multiplies the denominator cap by cfg's grow factor, and tries
// again, per spec.md §4.6 step 5 — until the rounds disjoint or
// maxIter is exhausted.
//
// A nil cfg uses the package defaults (see the config package), which
// is almost always the right choice for an ordinary comparison.
func Compare(a, b expr.Node, maxIter int, cfg *config.Config) Result {
	iter := cfg.InitialIter()
	denomCap := cfg.InitialDenomCap()
	bigGrowFactor := big.NewInt(cfg.GrowFactor())
	expNumCap := cfg.ExpNumCap()

	for round := 0; round < maxIter; round++ {
		ia := eval.Eval(a, iter, denomCap, expNumCap)
		ib := eval.Eval(b, iter, denomCap, expNumCap)

		cfg.Debugf("rounds", "round %d: iter=%d denomCap=%s a=%s b=%s", round, iter, denomCap, ia, ib)

		if ia.Hi.Cmp(ib.Lo) < 0 {
			return Less
		}
		if ib.Hi.Cmp(ia.Lo) < 0 {
			return Greater
		}

		iter++
		denomCap = new(big.Int).Mul(denomCap, bigGrowFactor)
	}
	return Diverged
}
