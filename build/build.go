// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package build is construction sugar for the expr package: thin
// wrappers over expr's normalizer constructors that let a caller build
// up an expression tree from Go values without repeating rat.New
// boilerplate or hand-assembling SumTerm/ProdTerm slices. Every
// function here does nothing but call straight into expr — the
// canonicalization logic itself lives there, and only there.
package build

import (
	"neoprene.dev/neoprene/expr"
	"neoprene.dev/neoprene/rat"
)

// Rat returns the canonical node for the rational num/den.
func Rat(num, den int64) expr.Node {
	return expr.NewRat(rat.New(num, den))
}

// Int returns the canonical node for the integer n.
func Int(n int64) expr.Node {
	return expr.NewRat(rat.New(n, 1))
}

// Pi returns the canonical node for the constant π.
func Pi() expr.Node {
	return expr.NewConst(expr.Pi)
}

// E returns the canonical node for the constant e.
func E() expr.Node {
	return expr.NewConst(expr.E)
}

// Term is one coefficient*node contribution passed to Sum, or one
// node^exponent factor passed to Prod, depending on which the caller
// invokes. The field is deliberately named generically since both
// read naturally as "the rational attached to this node."
type Term struct {
	Rat  rat.Rat
	Node expr.Node
}

// Weighted returns a Term with rational coefficient/exponent num/den
// attached to n.
func Weighted(num, den int64, n expr.Node) Term {
	return Term{Rat: rat.New(num, den), Node: n}
}

// Plain returns a Term with coefficient/exponent 1 attached to n.
func Plain(n expr.Node) Term {
	return Term{Rat: rat.One(), Node: n}
}

// Sum returns the canonical node for tailNum/tailDen + Σ terms.
func Sum(tailNum, tailDen int64, terms ...Term) expr.Node {
	contributions := make([]expr.SumTerm, len(terms))
	for i, t := range terms {
		contributions[i] = expr.SumTerm{Coeff: t.Rat, Term: t.Node}
	}
	return expr.NewSum(rat.New(tailNum, tailDen), contributions)
}

// Add returns a + b, a two-term special case of Sum.
func Add(a, b expr.Node) expr.Node {
	return Sum(0, 1, Plain(a), Plain(b))
}

// Prod returns the canonical node for tailNum/tailDen * Π terms.
func Prod(tailNum, tailDen int64, terms ...Term) expr.Node {
	contributions := make([]expr.ProdTerm, len(terms))
	for i, t := range terms {
		contributions[i] = expr.ProdTerm{Exp: t.Rat, Term: t.Node}
	}
	return expr.NewProd(rat.New(tailNum, tailDen), contributions)
}

// Mul returns a * b, a two-term special case of Prod.
func Mul(a, b expr.Node) expr.Node {
	return Prod(1, 1, Plain(a), Plain(b))
}

// Pow returns base raised to the rational power expNum/expDen.
func Pow(base expr.Node, expNum, expDen int64) expr.Node {
	return expr.NewPow(base, rat.New(expNum, expDen))
}
