// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval implements I, a rational interval: an ordered pair
// (Lo, Hi) of exact rationals with Lo <= Hi. It is the value the
// Neoprene evaluator produces for every expression node, and the only
// currency the comparison driver deals in.
package interval

import (
	"fmt"
	"math/big"

	"neoprene.dev/neoprene/rat"
)

// Error is raised, by panic, when a caller violates an interval
// invariant: constructing lo > hi, or taking the reciprocal of an
// interval that straddles zero.
type Error string

func (e Error) Error() string { return string(e) }

func errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf("interval: "+format, args...)))
}

// Interval is a closed rational interval [Lo, Hi].
type Interval struct {
	Lo, Hi rat.Rat
}

// From returns the interval [lo, hi]. It panics if lo > hi; a caller
// building an interval from endpoints it computed itself has made a
// programming error if they are out of order.
func From(lo, hi rat.Rat) Interval {
	if lo.Cmp(hi) > 0 {
		errorf("lo > hi: %s > %s", lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}
}

// Point returns the degenerate interval [v, v].
func Point(v rat.Rat) Interval {
	return Interval{Lo: v, Hi: v}
}

// Sign classifies an interval's relationship to zero.
type Sign int

const (
	// NonNegative means 0 <= Lo.
	NonNegative Sign = iota
	// NonPositive means Hi <= 0.
	NonPositive
	// StraddlesZero means Lo < 0 < Hi.
	StraddlesZero
)

// Classify returns the interval's sign classification. It panics if
// Lo > Hi, which would indicate the interval was built without going
// through From/Point and so never had its invariant checked.
func (i Interval) Classify() Sign {
	if i.Lo.Cmp(i.Hi) > 0 {
		errorf("classify: lo > hi (%s > %s)", i.Lo, i.Hi)
	}
	switch {
	case !i.Lo.Negative():
		return NonNegative
	case i.Hi.Negative() || i.Hi.IsZero():
		return NonPositive
	default:
		return StraddlesZero
	}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.Lo, i.Hi)
}

// Add returns the interval sum of i and j: componentwise endpoint
// addition.
func (i Interval) Add(j Interval) Interval {
	return Interval{Lo: i.Lo.Add(j.Lo), Hi: i.Hi.Add(j.Hi)}
}

// Neg returns the interval [-Hi, -Lo].
func (i Interval) Neg() Interval {
	return Interval{Lo: i.Hi.Negate(), Hi: i.Lo.Negate()}
}

// Sub returns i - j.
func (i Interval) Sub(j Interval) Interval {
	return i.Add(j.Neg())
}

// ScaleRat returns the interval i scaled by the rational c, handling
// c's sign so the result still satisfies Lo <= Hi.
func (i Interval) ScaleRat(c rat.Rat) Interval {
	a := i.Lo.Mul(c)
	b := i.Hi.Mul(c)
	if c.Negative() {
		a, b = b, a
	}
	return Interval{Lo: a, Hi: b}
}

func minRat(a, b rat.Rat) rat.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxRat(a, b rat.Rat) rat.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Mul returns the interval product of i and j, the interval spanned by
// the four products of their endpoints. This is a nine-way case split
// on the sign classifications of i and j; the hardest case (both
// straddling zero) is the one spelled out in spec.md: lo is the lesser
// of i.Lo*j.Hi and i.Hi*j.Lo, hi is the greater of i.Lo*j.Lo and
// i.Hi*j.Hi.
func (i Interval) Mul(j Interval) Interval {
	si, sj := i.Classify(), j.Classify()
	switch {
	case si == NonNegative && sj == NonNegative:
		return Interval{Lo: i.Lo.Mul(j.Lo), Hi: i.Hi.Mul(j.Hi)}
	case si == NonPositive && sj == NonPositive:
		return Interval{Lo: i.Hi.Mul(j.Hi), Hi: i.Lo.Mul(j.Lo)}
	case si == NonNegative && sj == NonPositive:
		return Interval{Lo: i.Hi.Mul(j.Lo), Hi: i.Lo.Mul(j.Hi)}
	case si == NonPositive && sj == NonNegative:
		return Interval{Lo: i.Lo.Mul(j.Hi), Hi: i.Hi.Mul(j.Lo)}
	case si == NonNegative && sj == StraddlesZero:
		return Interval{Lo: i.Hi.Mul(j.Lo), Hi: i.Hi.Mul(j.Hi)}
	case si == StraddlesZero && sj == NonNegative:
		return Interval{Lo: i.Lo.Mul(j.Hi), Hi: i.Hi.Mul(j.Hi)}
	case si == NonPositive && sj == StraddlesZero:
		return Interval{Lo: i.Lo.Mul(j.Hi), Hi: i.Lo.Mul(j.Lo)}
	case si == StraddlesZero && sj == NonPositive:
		return Interval{Lo: i.Hi.Mul(j.Lo), Hi: i.Lo.Mul(j.Lo)}
	default: // both straddle zero
		lo := minRat(i.Lo.Mul(j.Hi), i.Hi.Mul(j.Lo))
		hi := maxRat(i.Lo.Mul(j.Lo), i.Hi.Mul(j.Hi))
		return Interval{Lo: lo, Hi: hi}
	}
}

// Reciprocal returns [1/Hi, 1/Lo]. It panics if i straddles zero or
// touches zero at either endpoint, since reciprocal is undefined there.
func (i Interval) Reciprocal() Interval {
	if i.Classify() == StraddlesZero {
		errorf("reciprocal of interval straddling zero: %s", i)
	}
	if i.Lo.IsZero() || i.Hi.IsZero() {
		errorf("reciprocal of interval touching zero: %s", i)
	}
	return Interval{Lo: i.Hi.Invert(), Hi: i.Lo.Invert()}
}

// Coarsen replaces both endpoints by the nearest rational with
// denominator at most denomCap, rounding outward — the lower endpoint
// down, the upper endpoint up — so the coarsened interval always
// still encloses the original one. If outward rounding to denomCap
// would itself produce lo > hi (it cannot once lo <= hi held, but a
// defensive check costs nothing and keeps the invariant unconditional),
// the original, tighter endpoint is kept instead of widening past
// nonsense.
func (i Interval) Coarsen(denomCap *big.Int) Interval {
	if denomCap.Sign() <= 0 {
		errorf("coarsen to non-positive denominator cap")
	}
	lo := i.Lo
	if lo.Den().Cmp(denomCap) > 0 {
		lo = lo.CoarsenToDenominator(denomCap, false)
	}
	hi := i.Hi
	if hi.Den().Cmp(denomCap) > 0 {
		hi = hi.CoarsenToDenominator(denomCap, true)
	}
	if lo.Cmp(hi) > 0 {
		// Coarsening must never tighten past the true enclosure; if the
		// outward-rounded endpoints would cross, keep the un-coarsened
		// interval for this step rather than report a corrupt bound.
		return i
	}
	return Interval{Lo: lo, Hi: hi}
}

// Midpoint returns (Lo+Hi)/2.
func (i Interval) Midpoint() rat.Rat {
	return i.Lo.Add(i.Hi).Mul(rat.New(1, 2))
}

// Contains reports whether v lies within [Lo, Hi]; used by tests to
// check the enclosure property.
func (i Interval) Contains(v rat.Rat) bool {
	return i.Lo.Cmp(v) <= 0 && v.Cmp(i.Hi) <= 0
}
