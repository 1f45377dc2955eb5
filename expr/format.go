// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "strings"

// String renders a ratNode as its rational value. This is diagnostic
// only; it is not a stable external format (spec.md §6).
func (n *ratNode) String() string {
	return n.Value.String()
}

// String renders a constNode as its symbol.
func (n *constNode) String() string {
	return n.Sym.String()
}

// String renders a sumNode as "tail + c1*t1 + c2*t2 + ...", omitting a
// zero tail and unit coefficients, matching the texture of the
// original ByzNodeCoefficientAddVec Debug rendering.
func (n *sumNode) String() string {
	var b strings.Builder
	first := true
	if !n.Tail.IsZero() {
		b.WriteString(n.Tail.String())
		first = false
	}
	for _, t := range n.Terms {
		if !first {
			b.WriteString(" + ")
		}
		first = false
		if t.Coeff.IsOne() {
			b.WriteString(t.Term.String())
		} else {
			b.WriteString(t.Coeff.String())
			b.WriteString("*")
			b.WriteString(t.Term.String())
		}
	}
	if first {
		return "0"
	}
	return b.String()
}

// String renders a prodNode as "tail * t1^e1 * t2^e2 * ...", omitting a
// unit tail and unit exponents.
func (n *prodNode) String() string {
	var b strings.Builder
	first := true
	if !n.Tail.IsOne() {
		b.WriteString(n.Tail.String())
		first = false
	}
	for _, t := range n.Terms {
		if !first {
			b.WriteString(" * ")
		}
		first = false
		b.WriteString(powBaseString(t.Term))
		if !t.Exp.IsOne() {
			b.WriteString("^")
			b.WriteString(t.Exp.String())
		}
	}
	if first {
		return "1"
	}
	return b.String()
}

// String renders a powNode as "base^exp", parenthesizing the base
// whenever it is itself a Sum or Prod: without the parens, "(pi+e)^3"
// and "pi + e^3" would both render as the bare token sequence
// "pi + e^3" and become indistinguishable to anything reading the
// string back, which is exactly what the hash-consing table in
// intern.go must never let happen.
func (n *powNode) String() string {
	return powBaseString(n.Base) + "^" + n.Exp.String()
}

func powBaseString(base Node) string {
	switch base.Kind() {
	case KindSum, KindProd:
		return "(" + base.String() + ")"
	default:
		return base.String()
	}
}
