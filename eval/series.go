// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math/big"

	"neoprene.dev/neoprene/interval"
	"neoprene.dev/neoprene/rat"
)

// seriesPi brackets π using the Gregory-Leibniz variant
//
//	π = 3 + 4/(2*3*4) - 4/(4*5*6) + 4/(6*7*8) - ...
//
// run out to k = 8*iter correction terms, starting the accumulation
// from the partial sum 3. The series alternates between an under- and
// an overapproximation of π, so the partial sums after k and k+1 terms
// bracket it; which one is the lower and which is the upper bound
// depends on the parity of k, exactly as in the source this evaluator
// is modeled on.
func seriesPi(iter int64) interval.Interval {
	k := iter * 8
	a := rat.New(3, 1)
	var n int64
	for n = 1; n <= k; n++ {
		a = a.Add(leibnizTerm(n))
	}
	b := a
	a = a.Add(leibnizTerm(k + 1))

	if k%2 == 1 {
		return interval.From(a, b)
	}
	return interval.From(b, a)
}

// leibnizTerm returns the signed nth correction term 4 / (2n*(2n+1)*(2n+2)),
// with sign +1 for odd n and -1 for even n.
func leibnizTerm(n int64) rat.Rat {
	c := new(big.Int).SetInt64(2 * n)
	c.Mul(c, big.NewInt(2*n+1))
	c.Mul(c, big.NewInt(2*n+2))
	term := rat.NewBig(false, big.NewInt(4), c)
	if n%2 == 0 {
		term = term.Negate()
	}
	return term
}

// seriesE brackets e using the truncated Maclaurin series of exp at 1,
// i.e. the partial sum of 1/n! up to n=iter+2, with an error term
// 3/(iter+3)! added as an upper correction. The source this bound is
// modeled on uses e itself in the numerator and rounds that up to 3
// (since e < 3), giving a valid upper bound without a circular
// dependency on e's own value.
func seriesE(iter int64) interval.Interval {
	k := iter
	min := rat.New(2, 1)
	for n := int64(2); n <= k+2; n++ {
		min = min.Add(factorialRat(n).Invert())
	}
	errDen := factorial(k + 3)
	max := min.Add(rat.NewBig(false, big.NewInt(3), errDen))
	return interval.From(min, max)
}

func factorial(n int64) *big.Int {
	f := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		f.Mul(f, big.NewInt(i))
	}
	return f
}

func factorialRat(n int64) rat.Rat {
	return rat.NewBig(false, factorial(n), big.NewInt(1))
}
