// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the canonical symbolic expression tree:
// rationals, the transcendental constants π and e, and the algebraic
// operations sum, product, and rational-exponent power. The normalizer
// in normalize.go is the sole entry point that can build a Node; every
// constructed Node satisfies the canonical-form invariants, so
// structural identity and a total order fall out cheaply (order.go).
package expr

import (
	"fmt"

	"neoprene.dev/neoprene/rat"
)

// Kind identifies a Node's variant. The order of the constants fixes
// the variant ordering used by Compare; any total, stable order would
// do, and this one is chosen only for readability (base cases first).
type Kind int

const (
	KindRat Kind = iota
	KindConst
	KindSum
	KindProd
	KindPow
)

func (k Kind) String() string {
	switch k {
	case KindRat:
		return "Rat"
	case KindConst:
		return "Const"
	case KindSum:
		return "Sum"
	case KindProd:
		return "Prod"
	case KindPow:
		return "Pow"
	default:
		return "Kind(?)"
	}
}

// Const names one of the two supported transcendental constants.
type Const int

const (
	Pi Const = iota
	E
)

func (c Const) String() string {
	switch c {
	case Pi:
		return "pi"
	case E:
		return "e"
	default:
		return "Const(?)"
	}
}

// Error is raised, by panic, when a caller asks the normalizer to build
// something that would violate a canonical-form invariant or would
// require deciding an undecidable branch (e.g. collapsing a power tower
// in a way that could smuggle in a complex value).
type Error string

func (e Error) Error() string { return string(e) }

func errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf("expr: "+format, args...)))
}

// Node is a canonical expression node. It is a closed, sealed interface:
// only the five unexported types in this file implement it, and only
// the normalizer in normalize.go can construct them, so every Node
// that exists anywhere in a program satisfies the canonical-form
// invariants — there is no exported struct type a caller could build
// one of directly and smuggle past the normalizer. Callers that need
// to inspect a Node's contents switch on Kind() and use the As*
// accessors below.
type Node interface {
	Kind() Kind
	String() string

	sealed()
}

// ratNode is a literal rational value.
type ratNode struct {
	Value rat.Rat
}

func (*ratNode) Kind() Kind { return KindRat }
func (*ratNode) sealed()    {}

// constNode is one of the two transcendental constants.
type constNode struct {
	Sym Const
}

func (*constNode) Kind() Kind { return KindConst }
func (*constNode) sealed()    {}

// SumTerm is one coefficient*term contribution to a Sum.
type SumTerm struct {
	Coeff rat.Rat
	Term  Node
}

// sumNode is the value Tail + Σ Coeff_i * Term_i. Terms is sorted by
// the total order on Node, contains no zero coefficients, no duplicate
// Term entries, and no Term that is itself a ratNode or sumNode.
type sumNode struct {
	Tail  rat.Rat
	Terms []SumTerm
}

func (*sumNode) Kind() Kind { return KindSum }
func (*sumNode) sealed()    {}

// ProdTerm is one Term^Exp factor of a Prod.
type ProdTerm struct {
	Exp  rat.Rat
	Term Node
}

// prodNode is the value Tail * Π Term_i^Exp_i. Terms is sorted by the
// total order on Node, contains no zero exponents, no duplicate Term
// entries, and no Term that is itself a ratNode or prodNode.
type prodNode struct {
	Tail  rat.Rat
	Terms []ProdTerm
}

func (*prodNode) Kind() Kind { return KindProd }
func (*prodNode) sealed()    {}

// powNode is Base^Exp.
type powNode struct {
	Base Node
	Exp  rat.Rat
}

func (*powNode) Kind() Kind { return KindPow }
func (*powNode) sealed()    {}

// AsRat reports whether n is a literal rational and, if so, its value.
func AsRat(n Node) (rat.Rat, bool) {
	r, ok := n.(*ratNode)
	if !ok {
		return rat.Rat{}, false
	}
	return r.Value, true
}

// AsConst reports whether n is a transcendental constant and, if so,
// which one.
func AsConst(n Node) (Const, bool) {
	c, ok := n.(*constNode)
	if !ok {
		return 0, false
	}
	return c.Sym, true
}

// AsSum reports whether n is a Sum and, if so, its rational tail and
// term list.
func AsSum(n Node) (tail rat.Rat, terms []SumTerm, ok bool) {
	s, ok := n.(*sumNode)
	if !ok {
		return rat.Rat{}, nil, false
	}
	return s.Tail, s.Terms, true
}

// AsProd reports whether n is a Prod and, if so, its rational tail and
// term list.
func AsProd(n Node) (tail rat.Rat, terms []ProdTerm, ok bool) {
	p, ok := n.(*prodNode)
	if !ok {
		return rat.Rat{}, nil, false
	}
	return p.Tail, p.Terms, true
}

// AsPow reports whether n is a Pow and, if so, its base and exponent.
func AsPow(n Node) (base Node, exp rat.Rat, ok bool) {
	p, ok := n.(*powNode)
	if !ok {
		return nil, rat.Rat{}, false
	}
	return p.Base, p.Exp, true
}
