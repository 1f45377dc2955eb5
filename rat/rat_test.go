// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rat

import (
	"math/big"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		num, den  int64
		wantNum   int64
		wantDen   int64
		wantNeg   bool
	}{
		{6, 8, 3, 4, false},
		{-6, 8, 3, 4, true},
		{6, -8, 3, 4, true},
		{-6, -8, 3, 4, false},
		{0, 5, 0, 1, false},
		{0, -5, 0, 1, false},
		{5, 1, 5, 1, false},
	}
	for _, test := range tests {
		r := New(test.num, test.den)
		if r.Num().Int64() != test.wantNum || r.Den().Int64() != test.wantDen || r.Negative() != test.wantNeg {
			t.Errorf("New(%d,%d) = %s, want num=%d den=%d neg=%v", test.num, test.den, r, test.wantNum, test.wantDen, test.wantNeg)
		}
	}
}

func TestZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New(1, 0) did not panic")
		}
	}()
	New(1, 0)
}

func TestInvertZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Zero().Invert() did not panic")
		}
	}()
	Zero().Invert()
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		a, b, want Rat
	}{
		{New(1, 2), New(1, 3), New(5, 6)},
		{New(-1, 2), New(1, 3), New(-1, 6)},
		{New(1, 2), New(-1, 2), Zero()},
		{New(-1, 3), New(-1, 6), New(-1, 2)},
		{New(2, 1), New(-2, 1), Zero()},
	}
	for _, test := range tests {
		got := test.a.Add(test.b)
		if !got.Equal(test.want) {
			t.Errorf("%s + %s = %s, want %s", test.a, test.b, got, test.want)
		}
	}
}

func TestMulDiv(t *testing.T) {
	a := New(2, 3)
	b := New(-3, 4)
	if got := a.Mul(b); !got.Equal(New(-1, 2)) {
		t.Errorf("(2/3)*(-3/4) = %s, want -1/2", got)
	}
	if got := a.Div(b); !got.Equal(New(-8, 9)) {
		t.Errorf("(2/3)/(-3/4) = %s, want -8/9", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("division by zero did not panic")
		}
	}()
	a.Div(Zero())
}

func TestPow(t *testing.T) {
	if got := New(-1, 2).Pow(2); !got.Equal(New(1, 4)) {
		t.Errorf("(-1/2)^2 = %s, want 1/4", got)
	}
	if got := New(-1, 2).Pow(3); !got.Equal(New(-1, 8)) {
		t.Errorf("(-1/2)^3 = %s, want -1/8", got)
	}
	if got := New(3, 1).Pow(0); !got.Equal(One()) {
		t.Errorf("3^0 = %s, want 1", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Pow(13) did not panic")
		}
	}()
	New(2, 1).Pow(13)
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b Rat
		want int
	}{
		{New(1, 2), New(1, 3), 1},
		{New(1, 3), New(1, 2), -1},
		{New(-1, 2), New(1, 3), -1},
		{New(0, 1), New(0, 5), 0},
		{New(2, 4), New(1, 2), 0},
		{New(-1, 2), New(-1, 3), -1},
	}
	for _, test := range tests {
		if got := test.a.Cmp(test.b); got != test.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestCoarsenRounding(t *testing.T) {
	// 1/3 coarsened to denominator 10: floor is 3/10, ceil is 4/10.
	r := New(1, 3)
	if got := r.CoarsenToDenominator(big.NewInt(10), false); !got.Equal(New(3, 10)) {
		t.Errorf("floor coarsen of 1/3 to /10 = %s, want 3/10", got)
	}
	if got := r.CoarsenToDenominator(big.NewInt(10), true); !got.Equal(New(4, 10)) {
		t.Errorf("ceil coarsen of 1/3 to /10 = %s, want 4/10", got)
	}
	// -1/3 coarsened to /10: floor (toward -inf) is -4/10, ceil is -3/10.
	neg := New(-1, 3)
	if got := neg.CoarsenToDenominator(big.NewInt(10), false); !got.Equal(New(-4, 10)) {
		t.Errorf("floor coarsen of -1/3 to /10 = %s, want -4/10", got)
	}
	if got := neg.CoarsenToDenominator(big.NewInt(10), true); !got.Equal(New(-3, 10)) {
		t.Errorf("ceil coarsen of -1/3 to /10 = %s, want -3/10", got)
	}
	// Exact values are unaffected by rounding direction.
	exact := New(3, 10)
	if got := exact.CoarsenToDenominator(big.NewInt(10), false); !got.Equal(exact) {
		t.Errorf("floor coarsen of exact value changed it: %s", got)
	}
}

func TestLaws(t *testing.T) {
	a, b, c := New(1, 2), New(2, 3), New(-3, 5)
	if !a.Add(b).Equal(b.Add(a)) {
		t.Errorf("addition not commutative")
	}
	if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
		t.Errorf("addition not associative")
	}
	if !a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) {
		t.Errorf("multiplication does not distribute over addition")
	}
	if !a.Invert().Invert().Equal(a) {
		t.Errorf("double invert is not identity")
	}
}
