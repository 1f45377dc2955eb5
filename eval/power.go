// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math/big"

	"neoprene.dev/neoprene/interval"
	"neoprene.dev/neoprene/rat"
)

// intPow raises every endpoint of base to the non-negative integer
// power k, returning the resulting enclosure. Monotonicity of x^k on
// each sign-definite half of the line is handled the same way
// interval.Interval.Classify already sorts the nine-way multiply: an
// interval straddling zero raised to an even power must consider 0 as
// a candidate extremum.
func intPow(base interval.Interval, k int64) interval.Interval {
	lo := base.Lo.Pow(k)
	hi := base.Hi.Pow(k)
	if k%2 == 0 && base.Classify() == interval.StraddlesZero {
		// (-1..2)^2 ranges over [0, 4], not [1, 4]: zero is always
		// attainable and is always the minimum for an even power.
		zero := rat.Zero()
		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}
		return interval.From(zero, maxRat(lo, hi))
	}
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return interval.From(lo, hi)
}

func maxRat(a, b rat.Rat) rat.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// initialRootBounds returns a coarse enclosure of base^(1/root), base
// >= 0, by taking the integer nth root of the numerator and
// denominator separately and widening by one unit in the last place —
// cheap, always-sound starting bounds for the Newton refinement below.
func initialRootBounds(base rat.Rat, root int64) interval.Interval {
	numRoot := nthRootFloor(base.Num(), root)
	denRoot := nthRootFloor(base.Den(), root)
	one := big.NewInt(1)
	lo := rat.NewBig(false, numRoot, new(big.Int).Add(denRoot, one))
	hi := rat.NewBig(false, new(big.Int).Add(numRoot, one), denRoot)
	return interval.From(lo, hi)
}

// nthRootFloor returns floor(x^(1/root)) for x >= 0 via binary search;
// math/big has no native integer nth root.
func nthRootFloor(x *big.Int, root int64) *big.Int {
	if x.Sign() == 0 {
		return big.NewInt(0)
	}
	lo := big.NewInt(0)
	hi := new(big.Int).Set(x)
	if hi.Cmp(big.NewInt(1)) < 0 {
		hi.SetInt64(1)
	}
	for {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, big.NewInt(1))
		mid.Rsh(mid, 1)
		if mid.Cmp(lo) == 0 {
			break
		}
		p := new(big.Int).Exp(mid, big.NewInt(root), nil)
		if p.Cmp(x) <= 0 {
			lo = mid
		} else {
			hi = new(big.Int).Sub(mid, big.NewInt(1))
		}
	}
	return lo
}

// midpoint returns (lo+hi)/2 exactly.
func midpoint(i interval.Interval) rat.Rat {
	return i.Lo.Add(i.Hi).Div(rat.New(2, 1))
}

// nthRoot refines an enclosure of base^(1/root), via Newton's method
// applied to f(x) = x^root - base: each step evaluates f at the
// current bracket's midpoint and divides by an interval enclosure of
// f's derivative over the whole bracket, which is the interval-Newton
// contraction the source's own nth_root implements. The result is
// coarsened to denomCap after every iteration to keep the rationals'
// size bounded. A negative base is only ever passed with an odd root
// (the caller has already ruled out the even case), so the root of its
// magnitude is negated back at the end.
func nthRoot(base rat.Rat, root, iter int64, denomCap *big.Int) interval.Interval {
	if base.Negative() {
		r := nthRoot(base.Negate(), root, iter, denomCap)
		return interval.From(r.Hi.Negate(), r.Lo.Negate())
	}
	if base.IsZero() {
		// The derivative of x^root at x=0 is 0, which would make the
		// Newton step divide by zero; 0 is its own exact root for any
		// positive root degree, so short-circuit instead.
		return interval.Point(rat.Zero())
	}
	guess := initialRootBounds(base, root)
	q := root - 1

	for n := int64(0); n < iter; n++ {
		mid := midpoint(guess)
		fMid := mid.Pow(root).Sub(base)

		derivLo := guess.Lo.Pow(q).Mul(rat.New(root, 1))
		derivHi := guess.Hi.Pow(q).Mul(rat.New(root, 1))

		a := fMid.Div(derivLo)
		b := fMid.Div(derivHi)
		if a.Cmp(b) > 0 {
			a, b = b, a
		}

		newLo := mid.Sub(b)
		newHi := mid.Sub(a)
		if newLo.Cmp(newHi) > 0 {
			newLo, newHi = newHi, newLo
		}
		guess = interval.From(newLo, newHi).Coarsen(denomCap)
	}
	return guess
}

// ratPow raises the interval base to the rational power exp =
// numer/denom, following the source's separation into an integer power
// (applied exactly to both endpoints) followed by an integer root
// (refined by Newton's method). exp must not be zero or one; its
// caller (evalPow) handles those reductions before calling in, since they are
// really expr-level normalizations rather than numeric work.
func ratPow(base interval.Interval, exp rat.Rat, iter int64, denomCap *big.Int) interval.Interval {
	if (base.Lo.Negative() || base.Hi.Negative()) && !exp.IsDenominatorOdd() {
		// A negative base needs an odd root denominator to stay real;
		// an even root of a negative number has no real value.
		panic(Error("rational power would require a complex value"))
	}

	num := exp.Num().Int64()
	den := exp.Den().Int64()

	raised := intPow(base, num)

	var root interval.Interval
	if den == 1 {
		root = raised
	} else {
		loRoot := nthRoot(raised.Lo, den, iter, denomCap)
		hiRoot := nthRoot(raised.Hi, den, iter, denomCap)
		lo := minRat4(loRoot.Lo, loRoot.Hi, hiRoot.Lo, hiRoot.Hi)
		hi := maxRat4(loRoot.Lo, loRoot.Hi, hiRoot.Lo, hiRoot.Hi)
		root = interval.From(lo, hi)
	}

	if raised.Classify() == interval.StraddlesZero && !root.Lo.Negative() && !root.Hi.Negative() {
		// (-1..2)^2 ranges over [0, 4]: zero is always attainable once
		// the numerator power straddles zero, regardless of what the
		// root step alone would have bracketed.
		root = interval.From(rat.Zero(), root.Hi)
	}

	if exp.Negative() {
		root = root.Reciprocal()
	}
	return root
}

func minRat4(a, b, c, d rat.Rat) rat.Rat {
	m := a
	for _, v := range []rat.Rat{b, c, d} {
		if v.Cmp(m) < 0 {
			m = v
		}
	}
	return m
}

func maxRat4(a, b, c, d rat.Rat) rat.Rat {
	m := a
	for _, v := range []rat.Rat{b, c, d} {
		if v.Cmp(m) > 0 {
			m = v
		}
	}
	return m
}
