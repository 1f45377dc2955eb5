// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

import (
	"testing"

	"neoprene.dev/neoprene/build"
	"neoprene.dev/neoprene/expr"
)

func TestParseRational(t *testing.T) {
	n, err := Parse("3/4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != build.Rat(3, 4) {
		t.Fatalf("expected canonical Rat(3/4), got %v", n)
	}
}

func TestParseConstants(t *testing.T) {
	n, err := Parse("pi")
	if err != nil || n != build.Pi() {
		t.Fatalf("expected pi, got %v, err=%v", n, err)
	}
	n, err = Parse("e")
	if err != nil || n != build.E() {
		t.Fatalf("expected e, got %v, err=%v", n, err)
	}
}

func TestParseSumAndProduct(t *testing.T) {
	n, err := Parse("2 + 3*pi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := build.Add(build.Int(2), build.Mul(build.Int(3), build.Pi()))
	if n != want {
		t.Fatalf("expected %v, got %v", want, n)
	}
}

func TestParsePow(t *testing.T) {
	n, err := Parse("2^1/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := build.Pow(build.Int(2), 1, 2)
	if n != want {
		t.Fatalf("expected %v, got %v", want, n)
	}
}

func TestParseParensAndPrecedence(t *testing.T) {
	n, err := Parse("(2 + 3) * pi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := build.Mul(build.Int(5), build.Pi())
	if n != want {
		t.Fatalf("expected %v, got %v", want, n)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	n, err := Parse("-pi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := build.Sum(0, 1, build.Weighted(-1, 1, build.Pi()))
	if n != want {
		t.Fatalf("expected %v, got %v", want, n)
	}
}

func TestParseSyntaxErrorsDoNotPanic(t *testing.T) {
	cases := []string{"", "+", "2 +", "(2", "2 $ 3", "bogus"}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q): expected error, got none", src)
		}
	}
}

func TestParseDivision(t *testing.T) {
	n, err := Parse("3/4 * 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.AsRat(n); !ok {
		t.Fatalf("expected a fully-folded rational node, got %T", n)
	}
}
