// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval is the Neoprene evaluator: it turns a canonical
// expr.Node together with a refinement budget (iteration count and
// denominator cap) into a rational interval that soundly encloses the
// node's real value. Every step that can widen a denominator coarsens
// its result back down immediately afterward, rounding the lower
// endpoint toward -infinity and the upper endpoint toward +infinity, so
// the enclosure is never corrupted even as it is kept small enough to
// stay fast.
package eval

import (
	"fmt"
	"math/big"

	"neoprene.dev/neoprene/expr"
	"neoprene.dev/neoprene/interval"
	"neoprene.dev/neoprene/rat"
)

// Error is raised, by panic, when a node cannot be evaluated
// soundly — most notably a Pow whose real value would be complex, or
// an exponent outside the configured cap. These indicate a malformed
// expression tree, not an evaluator bug.
type Error string

func (e Error) Error() string { return string(e) }

func errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf("eval: "+format, args...)))
}

// Eval returns a rational interval enclosing n's value, refined to
// iter iterations of series/Newton work and coarsened to denomCap after
// every compositional step. expNumCap bounds the numerator a Pow
// exponent may carry; this mirrors the source's own guard against
// runaway integer powers, since a large numerator forces a large
// intPow before any root refinement even begins.
func Eval(n expr.Node, iter int64, denomCap *big.Int, expNumCap int64) interval.Interval {
	return coarsen(eval(n, iter, denomCap, expNumCap), denomCap)
}

func coarsen(i interval.Interval, denomCap *big.Int) interval.Interval {
	return i.Coarsen(denomCap)
}

func eval(n expr.Node, iter int64, denomCap *big.Int, expNumCap int64) interval.Interval {
	switch n.Kind() {
	case expr.KindRat:
		v, _ := expr.AsRat(n)
		return interval.Point(v)

	case expr.KindConst:
		sym, _ := expr.AsConst(n)
		switch sym {
		case expr.Pi:
			return coarsen(seriesPi(iter), denomCap)
		case expr.E:
			return coarsen(seriesE(iter), denomCap)
		default:
			errorf("unknown constant %v", sym)
		}

	case expr.KindSum:
		tail, terms, _ := expr.AsSum(n)
		acc := interval.Point(tail)
		for _, term := range terms {
			ti := eval(term.Term, iter, denomCap, expNumCap)
			acc = coarsen(acc.Add(ti.ScaleRat(term.Coeff)), denomCap)
		}
		return acc

	case expr.KindProd:
		tail, terms, _ := expr.AsProd(n)
		acc := interval.Point(tail)
		for _, term := range terms {
			ti := eval(term.Term, iter, denomCap, expNumCap)
			pi := evalPow(ti, term.Exp, iter, denomCap, expNumCap)
			acc = coarsen(acc.Mul(pi), denomCap)
		}
		return acc

	case expr.KindPow:
		base, exp, _ := expr.AsPow(n)
		b := eval(base, iter, denomCap, expNumCap)
		return evalPow(b, exp, iter, denomCap, expNumCap)

	default:
		errorf("unhandled node kind %v", n.Kind())
	}
	panic("unreachable")
}

// evalPow applies the Pow-node exponent rules (zero and one are
// structurally impossible here since the normalizer already reduces
// them away, but a Prod term can still legitimately carry any nonzero
// rational weight) and enforces the numerator cap before delegating to
// the Newton-root machinery in power.go.
func evalPow(base interval.Interval, exp rat.Rat, iter int64, denomCap *big.Int, expNumCap int64) interval.Interval {
	if exp.IsZero() {
		return interval.Point(rat.One())
	}
	if exp.IsOne() {
		return base
	}
	num := exp.Num().Int64()
	if exp.Negative() {
		num = -num
	}
	if num > expNumCap || num < -expNumCap {
		errorf("exponent numerator %d exceeds cap of %d", num, expNumCap)
	}
	return coarsen(ratPow(base, exp, iter, denomCap), denomCap)
}
