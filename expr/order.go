// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Compare imposes the total order on Nodes that canonicalization
// requires: first by variant tag, then within a variant by the rules
// in spec.md §3 (Const by symbol; Sum/Prod lexicographically by term
// list then rational tail; Pow by base then exponent). Two nodes
// compare Equal under Compare iff they are structurally identical.
func Compare(a, b Node) int {
	if a == b {
		return 0
	}
	if a.Kind() != b.Kind() {
		return compareInt(int(a.Kind()), int(b.Kind()))
	}
	switch a := a.(type) {
	case *ratNode:
		return a.Value.Cmp(b.(*ratNode).Value)
	case *constNode:
		return compareInt(int(a.Sym), int(b.(*constNode).Sym))
	case *sumNode:
		bb := b.(*sumNode)
		if c := compareSumTerms(a.Terms, bb.Terms); c != 0 {
			return c
		}
		return a.Tail.Cmp(bb.Tail)
	case *prodNode:
		bb := b.(*prodNode)
		if c := compareProdTerms(a.Terms, bb.Terms); c != 0 {
			return c
		}
		return a.Tail.Cmp(bb.Tail)
	case *powNode:
		bb := b.(*powNode)
		if c := Compare(a.Base, bb.Base); c != 0 {
			return c
		}
		return a.Exp.Cmp(bb.Exp)
	default:
		errorf("Compare: unhandled node kind %v", a)
		panic("unreachable")
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareSumTerms(a, b []SumTerm) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i].Term, b[i].Term); c != 0 {
			return c
		}
		if c := a[i].Coeff.Cmp(b[i].Coeff); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

func compareProdTerms(a, b []ProdTerm) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i].Term, b[i].Term); c != 0 {
			return c
		}
		if c := a[i].Exp.Cmp(b[i].Exp); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Node) bool {
	return Compare(a, b) == 0
}

// Less reports whether a sorts strictly before b under Compare; used
// to assert the sortedness invariant in tests and during insertion.
func Less(a, b Node) bool {
	return Compare(a, b) < 0
}
