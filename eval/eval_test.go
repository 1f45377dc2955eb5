// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math/big"
	"testing"

	"neoprene.dev/neoprene/expr"
	"neoprene.dev/neoprene/interval"
	"neoprene.dev/neoprene/rat"
)

func r(n, d int64) rat.Rat { return rat.New(n, d) }

const (
	testExpNumCap = 8
)

func denomCap(n int64) *big.Int { return big.NewInt(n) }

func TestEvalRatIsPoint(t *testing.T) {
	n := expr.NewRat(r(3, 4))
	iv := Eval(n, 5, denomCap(6091), testExpNumCap)
	if !iv.Lo.Equal(r(3, 4)) || !iv.Hi.Equal(r(3, 4)) {
		t.Fatalf("expected point interval [3/4, 3/4], got %v", iv)
	}
}

func TestEvalPiEnclosesKnownBounds(t *testing.T) {
	n := expr.NewConst(expr.Pi)
	iv := Eval(n, 20, denomCap(1000000), testExpNumCap)
	// 3.14159 should lie strictly within the enclosure for a reasonably
	// refined iteration count.
	known := r(314159, 100000)
	if !iv.Contains(known) {
		t.Fatalf("pi enclosure %v does not contain %v", iv, known)
	}
	if iv.Lo.Cmp(iv.Hi) > 0 {
		t.Fatalf("pi enclosure inverted: %v", iv)
	}
}

func TestEvalPiShrinksWithMoreIterations(t *testing.T) {
	coarse := Eval(expr.NewConst(expr.Pi), 2, denomCap(100000000), testExpNumCap)
	fine := Eval(expr.NewConst(expr.Pi), 20, denomCap(100000000), testExpNumCap)
	coarseWidth := coarse.Hi.Sub(coarse.Lo)
	fineWidth := fine.Hi.Sub(fine.Lo)
	if fineWidth.Cmp(coarseWidth) >= 0 {
		t.Fatalf("expected finer iteration to produce a narrower enclosure: coarse=%v fine=%v", coarseWidth, fineWidth)
	}
	if fine.Lo.Cmp(coarse.Lo) < 0 || fine.Hi.Cmp(coarse.Hi) > 0 {
		t.Fatalf("finer pi enclosure should sit within the coarser one: coarse=%v fine=%v", coarse, fine)
	}
}

func TestEvalEEnclosesKnownBounds(t *testing.T) {
	n := expr.NewConst(expr.E)
	iv := Eval(n, 20, denomCap(1000000), testExpNumCap)
	known := r(2718281828, 1000000000)
	if !iv.Contains(known) {
		t.Fatalf("e enclosure %v does not contain %v", iv, known)
	}
}

func TestEvalSum(t *testing.T) {
	// pi + e
	n := expr.NewSum(rat.Zero(), []expr.SumTerm{
		{Coeff: rat.One(), Term: expr.NewConst(expr.Pi)},
		{Coeff: rat.One(), Term: expr.NewConst(expr.E)},
	})
	iv := Eval(n, 20, denomCap(1000000), testExpNumCap)
	known := r(5859874482, 1000000000) // approx 3.141592654 + 2.718281828
	if !iv.Contains(known) {
		t.Fatalf("pi+e enclosure %v does not contain %v", iv, known)
	}
}

func TestEvalProd(t *testing.T) {
	// 2 * pi
	n := expr.NewProd(r(2, 1), []expr.ProdTerm{
		{Exp: rat.One(), Term: expr.NewConst(expr.Pi)},
	})
	iv := Eval(n, 20, denomCap(1000000), testExpNumCap)
	known := r(6283185307, 1000000000) // approx 2*3.1415926535
	if !iv.Contains(known) {
		t.Fatalf("2*pi enclosure %v does not contain %v", iv, known)
	}
}

func TestEvalPowIntegerExponent(t *testing.T) {
	// 3^2 = 9
	n := expr.NewPow(expr.NewRat(r(3, 1)), r(2, 1))
	iv := Eval(n, 5, denomCap(6091), testExpNumCap)
	if !iv.Lo.Equal(r(9, 1)) || !iv.Hi.Equal(r(9, 1)) {
		t.Fatalf("expected exact [9, 9], got %v", iv)
	}
}

func TestEvalPowSquareRoot(t *testing.T) {
	// 2^(1/2) ~ 1.41421356
	n := expr.NewPow(expr.NewRat(r(2, 1)), r(1, 2))
	iv := Eval(n, 30, denomCap(1000000), testExpNumCap)
	known := r(1414213562, 1000000000)
	if !iv.Contains(known) {
		t.Fatalf("sqrt(2) enclosure %v does not contain %v", iv, known)
	}
}

func TestEvalPowEvenPowerOfStraddlingInterval(t *testing.T) {
	// (pi - pi + [-1,2 encoded as a sum])^2 isn't directly expressible
	// through the canonical tree (no raw intervals at the tree level),
	// so instead exercise the zero-clamp via intPow directly, matching
	// the source's own (-1..2)^2 example.
	base := ivFromRats(t, r(-1, 1), r(2, 1))
	out := intPow(base, 2)
	if out.Lo.Negative() {
		t.Fatalf("expected zero-clamped lower bound, got %v", out.Lo)
	}
	if !out.Lo.IsZero() {
		t.Fatalf("expected lower bound exactly zero, got %v", out.Lo)
	}
	if !out.Hi.Equal(r(4, 1)) {
		t.Fatalf("expected upper bound 4, got %v", out.Hi)
	}
}

func TestEvalNegativeBaseOddRoot(t *testing.T) {
	// (-8)^(1/3) = -2
	n := expr.NewPow(expr.NewRat(r(-8, 1)), r(1, 3))
	iv := Eval(n, 30, denomCap(1000000), testExpNumCap)
	known := r(-2, 1)
	if !iv.Contains(known) {
		t.Fatalf("cbrt(-8) enclosure %v does not contain %v", iv, known)
	}
}

func TestEvalNegativeBaseEvenRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for even root of a negative base")
		}
	}()
	n := expr.NewPow(expr.NewRat(r(-4, 1)), r(1, 2))
	Eval(n, 5, denomCap(6091), testExpNumCap)
}

func TestEvalExponentNumeratorCapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for exponent numerator exceeding cap")
		}
	}()
	n := expr.NewProd(rat.One(), []expr.ProdTerm{
		{Exp: r(9, 1), Term: expr.NewConst(expr.Pi)},
	})
	Eval(n, 5, denomCap(6091), testExpNumCap)
}

func ivFromRats(t *testing.T, lo, hi rat.Rat) interval.Interval {
	t.Helper()
	return interval.From(lo, hi)
}
