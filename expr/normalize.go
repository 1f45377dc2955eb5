// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file is the normalizer: the sole entry point through which Sum,
// Prod, Pow, and Rat nodes are built. It implements spec.md §4.3 in
// full: folding rational contributions into the tail, flattening
// nested same-kind children, sorted insertion-merge of term lists, and
// the conservative Pow-of-Pow collapse rule.
package expr

import (
	"sort"

	"neoprene.dev/neoprene/rat"
)

// NewRat returns the canonical node for the literal rational q.
func NewRat(q rat.Rat) Node {
	return intern(&ratNode{Value: q})
}

// NewConst returns the canonical node for the transcendental constant
// sym.
func NewConst(sym Const) Node {
	return intern(&constNode{Sym: sym})
}

// ratIntPow raises q to the integer power represented by e, which must
// satisfy e.IsInteger(). Negative integer exponents invert after
// raising to the positive magnitude.
func ratIntPow(q rat.Rat, e rat.Rat) rat.Rat {
	if q.IsOne() {
		return rat.One()
	}
	k := e.Num().Int64()
	if e.Negative() {
		return q.Pow(k).Invert()
	}
	return q.Pow(k)
}

// foldRatPower folds qᵉ into tail when e is an integer (or q is
// exactly 1, in which case 1ᵉ = 1 for any e with no risk of smuggling
// in a complex branch). Otherwise the non-integer exponent on a
// rational base is kept as a Pow term with weight 1, per spec.md §4.3
// rule 1 — folding it would silently decide an nth-root branch that
// the caller never asked for.
func foldRatPower(tail rat.Rat, terms []ProdTerm, q, e rat.Rat) (rat.Rat, []ProdTerm) {
	if e.IsInteger() || q.IsOne() {
		return tail.Mul(ratIntPow(q, e)), terms
	}
	return tail, insertProdTerm(terms, rat.One(), NewPow(NewRat(q), e))
}

// foldIntoSum recursively folds one (coeff, term) contribution into a
// Sum under construction, flattening nested Rat/Sum children (spec.md
// §4.3 rules 1 and 2) and otherwise inserting the term into the sorted
// list (rule 3).
func foldIntoSum(tail rat.Rat, terms []SumTerm, coeff rat.Rat, term Node) (rat.Rat, []SumTerm) {
	if coeff.IsZero() {
		return tail, terms
	}
	switch n := term.(type) {
	case *ratNode:
		return tail.Add(coeff.Mul(n.Value)), terms
	case *sumNode:
		tail = tail.Add(coeff.Mul(n.Tail))
		for _, inner := range n.Terms {
			tail, terms = foldIntoSum(tail, terms, coeff.Mul(inner.Coeff), inner.Term)
		}
		return tail, terms
	default:
		return tail, insertSumTerm(terms, coeff, term)
	}
}

// foldIntoProd is foldIntoSum's analogue for Prod: the ambient quantity
// is a multiplicative exponent rather than an additive coefficient, and
// a nested Prod's own rational tail folds in raised to the ambient
// exponent (spec.md §4.3 rules 1 and 2, Prod form).
func foldIntoProd(tail rat.Rat, terms []ProdTerm, exp rat.Rat, term Node) (rat.Rat, []ProdTerm) {
	if exp.IsZero() {
		return tail, terms
	}
	switch n := term.(type) {
	case *ratNode:
		return foldRatPower(tail, terms, n.Value, exp)
	case *prodNode:
		tail, terms = foldRatPower(tail, terms, n.Tail, exp)
		for _, inner := range n.Terms {
			tail, terms = foldIntoProd(tail, terms, inner.Exp.Mul(exp), inner.Term)
		}
		return tail, terms
	default:
		return tail, insertProdTerm(terms, exp, term)
	}
}

// insertSumTerm binary-searches terms by node order and either merges
// coeff into a matching entry (deleting it if the merged coefficient
// is zero) or inserts a new sorted entry.
func insertSumTerm(terms []SumTerm, coeff rat.Rat, term Node) []SumTerm {
	i := sort.Search(len(terms), func(i int) bool { return Compare(terms[i].Term, term) >= 0 })
	if i < len(terms) && Equal(terms[i].Term, term) {
		combined := terms[i].Coeff.Add(coeff)
		if combined.IsZero() {
			return append(terms[:i], terms[i+1:]...)
		}
		terms[i].Coeff = combined
		return terms
	}
	terms = append(terms, SumTerm{})
	copy(terms[i+1:], terms[i:])
	terms[i] = SumTerm{Coeff: coeff, Term: term}
	return terms
}

// insertProdTerm is insertSumTerm's analogue for Prod term lists,
// merging by exponent addition instead of coefficient addition.
func insertProdTerm(terms []ProdTerm, exp rat.Rat, term Node) []ProdTerm {
	i := sort.Search(len(terms), func(i int) bool { return Compare(terms[i].Term, term) >= 0 })
	if i < len(terms) && Equal(terms[i].Term, term) {
		combined := terms[i].Exp.Add(exp)
		if combined.IsZero() {
			return append(terms[:i], terms[i+1:]...)
		}
		terms[i].Exp = combined
		return terms
	}
	terms = append(terms, ProdTerm{})
	copy(terms[i+1:], terms[i:])
	terms[i] = ProdTerm{Exp: exp, Term: term}
	return terms
}

// NewSum builds the canonical Sum (or, if its term list reduces to
// empty, Rat) node for tail + Σ contributions. Each contribution is a
// (coefficient, term) pair; term may be any previously-constructed
// Node, including a Rat or Sum, which this function flattens away per
// spec.md §4.3.
func NewSum(tail rat.Rat, contributions []SumTerm) Node {
	terms := make([]SumTerm, 0, len(contributions))
	for _, c := range contributions {
		tail, terms = foldIntoSum(tail, terms, c.Coeff, c.Term)
	}
	if len(terms) == 0 {
		return NewRat(tail)
	}
	return intern(&sumNode{Tail: tail, Terms: terms})
}

// NewProd builds the canonical Prod (or, if its term list reduces to
// empty, Rat) node for tail * Π contributions. Each contribution is a
// (exponent, term) pair; term may be any previously-constructed Node,
// including a Rat or Prod, which this function flattens away per
// spec.md §4.3.
func NewProd(tail rat.Rat, contributions []ProdTerm) Node {
	terms := make([]ProdTerm, 0, len(contributions))
	for _, c := range contributions {
		tail, terms = foldIntoProd(tail, terms, c.Exp, c.Term)
	}
	if len(terms) == 0 {
		return NewRat(tail)
	}
	return intern(&prodNode{Tail: tail, Terms: terms})
}

// NewPow builds base^exp, reducing exp=0 to Rat(1) and exp=1 to base
// per spec.md §4.3 rule 3. A power tower (x^a)^b collapses to x^(a*b)
// only when both a and b are integers — the source this is modeled on
// is conservative about collapsing any other combination, since doing
// so could silently pick a branch of a multivalued root, and this
// package matches that conservatism rather than risk smuggling in a
// complex-valued result.
func NewPow(base Node, exp rat.Rat) Node {
	if exp.IsZero() {
		return NewRat(rat.One())
	}
	if exp.IsOne() {
		return base
	}
	if p, ok := base.(*powNode); ok && exp.IsInteger() && p.Exp.IsInteger() {
		return NewPow(p.Base, p.Exp.Mul(exp))
	}
	return intern(&powNode{Base: base, Exp: exp})
}
