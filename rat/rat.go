// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rat implements Q, a canonical signed arbitrary-precision
// rational number: a triple (sign, numerator, denominator) with
// gcd(numerator, denominator) = 1, denominator > 0 always, and a unique
// representation for zero. It is the bottom layer of the Neoprene
// evaluator: every interval endpoint and every Rat expression node is a
// Rat.
package rat

import (
	"fmt"
	"math/big"
)

// MaxIntPow is the largest exponent accepted by Pow. The source this
// package is modeled on bounds integer exponents at 12; we keep that
// bound explicit rather than let it float, since it is a documented
// precondition of the public API, not an implementation accident.
const MaxIntPow = 12

// Error is the error type raised, by panic, for programmer mistakes:
// dividing by zero, inverting zero, exponentiating out of range. These
// indicate a bug upstream in tree construction or evaluator use, not a
// runtime condition a caller should recover from in the ordinary case.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Errorf panics with a formatted Error.
func Errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf("rat: "+format, args...)))
}

// Rat is an exact rational number. The zero value is 0/1 and is ready
// to use. Rat is a value type; operations return new Rats rather than
// mutating the receiver, matching the value semantics spec.md requires
// of Q.
type Rat struct {
	neg bool     // true iff the value is strictly negative
	num *big.Int // >= 0
	den *big.Int // > 0
}

func big0() *big.Int { return new(big.Int) }

// New returns the canonical Rat equal to num/den. It panics if den is
// zero.
func New(num, den int64) Rat {
	return fromBig((num < 0) != (den < 0), new(big.Int).SetInt64(abs64(num)), new(big.Int).SetInt64(abs64(den)))
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// NewBig returns the canonical Rat with the given sign and unsigned
// numerator/denominator magnitudes. It panics if den is zero. The
// supplied big.Ints are copied; the caller retains ownership of theirs.
func NewBig(neg bool, num, den *big.Int) Rat {
	return fromBig(neg, new(big.Int).Abs(num), new(big.Int).Abs(den))
}

// fromBig canonicalizes in place; num and den must not be aliased by
// the caller afterward.
func fromBig(neg bool, num, den *big.Int) Rat {
	if den.Sign() == 0 {
		Errorf("zero denominator")
	}
	if num.Sign() == 0 {
		return Rat{neg: false, num: big0(), den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, num, den)
	if g.Cmp(big.NewInt(1)) != 0 {
		num = new(big.Int).Div(num, g)
		den = new(big.Int).Div(den, g)
	}
	return Rat{neg: neg, num: num, den: den}
}

// Zero is the canonical representation of 0.
func Zero() Rat { return Rat{num: big0(), den: big.NewInt(1)} }

// One is the canonical representation of 1.
func One() Rat { return Rat{num: big.NewInt(1), den: big.NewInt(1)} }

// Num returns the (non-negative) numerator.
func (r Rat) Num() *big.Int {
	if r.num == nil {
		return big0()
	}
	return new(big.Int).Set(r.num)
}

// Den returns the (positive) denominator.
func (r Rat) Den() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	return new(big.Int).Set(r.den)
}

func (r Rat) numOrZero() *big.Int {
	if r.num == nil {
		return big0()
	}
	return r.num
}

func (r Rat) denOrOne() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	return r.den
}

// Negative reports whether r is strictly negative.
func (r Rat) Negative() bool {
	return r.neg && r.numOrZero().Sign() != 0
}

// IsZero reports whether r is exactly zero.
func (r Rat) IsZero() bool {
	return r.numOrZero().Sign() == 0
}

// IsOne reports whether r is exactly one.
func (r Rat) IsOne() bool {
	return !r.neg && r.numOrZero().Cmp(r.denOrOne()) == 0 && r.numOrZero().Sign() != 0
}

// IsInteger reports whether r has denominator 1.
func (r Rat) IsInteger() bool {
	return r.denOrOne().Cmp(big.NewInt(1)) == 0
}

// IsDenominatorOdd reports whether the canonical denominator is odd.
func (r Rat) IsDenominatorOdd() bool {
	return r.denOrOne().Bit(0) == 1
}

// String renders r in "n/d" or "n" form, with a leading "-" when
// negative. This is diagnostic only, not a stable format.
func (r Rat) String() string {
	sign := ""
	if r.Negative() {
		sign = "-"
	}
	if r.denOrOne().Cmp(big.NewInt(1)) == 0 {
		return fmt.Sprintf("%s%s", sign, r.numOrZero())
	}
	return fmt.Sprintf("%s%s/%s", sign, r.numOrZero(), r.denOrOne())
}

// crossNumerators returns the unsigned numerators of a and b placed
// over the common denominator a.den*b.den via cross multiplication.
func crossNumerators(a, b Rat) (*big.Int, *big.Int) {
	an := new(big.Int).Mul(a.numOrZero(), b.denOrOne())
	bn := new(big.Int).Mul(b.numOrZero(), a.denOrOne())
	return an, bn
}

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater than
// other. Comparison is total and sign-aware: any positive value compares
// greater than any negative value, and the two representations of zero
// always compare equal regardless of stored sign.
func (r Rat) Cmp(other Rat) int {
	rZero, oZero := r.IsZero(), other.IsZero()
	if rZero && oZero {
		return 0
	}
	if r.Negative() != other.Negative() {
		if r.Negative() {
			return -1
		}
		return 1
	}
	// Same sign (including both non-negative).
	an, bn := crossNumerators(r, other)
	c := an.Cmp(bn)
	if r.Negative() {
		return -c
	}
	return c
}

// Equal reports whether r and other denote the same rational value.
func (r Rat) Equal(other Rat) bool {
	return r.Cmp(other) == 0
}

// Negate returns -r.
func (r Rat) Negate() Rat {
	if r.IsZero() {
		return r
	}
	return Rat{neg: !r.Negative(), num: r.Num(), den: r.Den()}
}

// Invert returns 1/r. It panics if r is zero.
func (r Rat) Invert() Rat {
	if r.IsZero() {
		Errorf("invert of zero")
	}
	return Rat{neg: r.Negative(), num: r.Den(), den: r.Num()}
}

// Add returns r+other.
func (r Rat) Add(other Rat) Rat {
	an, bn := crossNumerators(r, other)
	den := new(big.Int).Mul(r.denOrOne(), other.denOrOne())
	var num *big.Int
	var neg bool
	switch {
	case r.Negative() == other.Negative():
		num = new(big.Int).Add(an, bn)
		neg = r.Negative()
	case an.Cmp(bn) >= 0:
		num = new(big.Int).Sub(an, bn)
		neg = r.Negative()
	default:
		num = new(big.Int).Sub(bn, an)
		neg = other.Negative()
	}
	return fromBig(neg, num, den)
}

// Sub returns r-other.
func (r Rat) Sub(other Rat) Rat {
	return r.Add(other.Negate())
}

// Mul returns r*other.
func (r Rat) Mul(other Rat) Rat {
	num := new(big.Int).Mul(r.numOrZero(), other.numOrZero())
	den := new(big.Int).Mul(r.denOrOne(), other.denOrOne())
	return fromBig(r.Negative() != other.Negative(), num, den)
}

// Div returns r/other. It panics if other is zero.
func (r Rat) Div(other Rat) Rat {
	if other.IsZero() {
		Errorf("division by zero")
	}
	return r.Mul(other.Invert())
}

// Pow returns r raised to the non-negative integer power k. It panics
// if k exceeds MaxIntPow. An even k always yields a non-negative
// result. Since gcd(numerator, denominator) = 1 is preserved by raising
// both to the same power, no re-canonicalization is needed.
func (r Rat) Pow(k int64) Rat {
	if k < 0 {
		Errorf("negative integer power %d", k)
	}
	if k > MaxIntPow {
		Errorf("integer power %d exceeds cap of %d", k, MaxIntPow)
	}
	if k == 0 {
		return One()
	}
	neg := r.Negative() && k%2 == 1
	return Rat{
		neg: neg,
		num: new(big.Int).Exp(r.numOrZero(), big.NewInt(k), nil),
		den: new(big.Int).Exp(r.denOrOne(), big.NewInt(k), nil),
	}
}

// CoarsenToDenominator replaces r by the nearest rational with
// denominator exactly d, rounding toward +infinity if roundUp is true
// and toward -infinity otherwise. This is used by the evaluator to keep
// denominators from growing without bound across refinement steps;
// callers needing an enclosure must round the lower endpoint down and
// the upper endpoint up (see interval.Interval.Coarsen).
func (r Rat) CoarsenToDenominator(d *big.Int, roundUp bool) Rat {
	if d.Sign() <= 0 {
		Errorf("coarsen to non-positive denominator")
	}
	// Work with the true signed numerator over d: signedNum = r.num * d / r.den,
	// rounded toward +inf or -inf depending on roundUp and the true sign.
	prod := new(big.Int).Mul(r.numOrZero(), d)
	q, rem := new(big.Int).QuoRem(prod, r.denOrOne(), new(big.Int))
	if rem.Sign() != 0 {
		roundAwayFromZeroUp := roundUp != r.Negative()
		if roundAwayFromZeroUp {
			q.Add(q, big.NewInt(1))
		}
	}
	return fromBig(r.Negative(), q, new(big.Int).Set(d))
}
