// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

// aeq reports whether got is within tol of expect, relative to
// max(1, |expect|).
func aeq(expect, got, tol float64) bool {
	if expect == got || (math.IsNaN(expect) && math.IsNaN(got)) {
		return true
	}
	return math.Abs(expect-got) <= tol*math.Max(1, math.Abs(expect))
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64, tol float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got, tol) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// integrate returns ∫ f from lo to hi by Gauss-Legendre quadrature.
func integrate(f func(float64) float64, lo, hi float64) float64 {
	if hi < lo {
		return -integrate(f, hi, lo)
	}
	return quad.Fixed(f, lo, hi, 1000, nil, 0)
}

// testMonotone checks that d.CDF is non-decreasing and stays in
// [0, 1] on n points spanning [lo, hi].
func testMonotone(t *testing.T, d Dist, lo, hi float64, n int) {
	t.Helper()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	ys := d.CDFEach(xs)
	for i, y := range ys {
		if y < 0 || y > 1 || math.IsNaN(y) {
			t.Errorf("%v.CDF(%v) = %v, outside [0, 1]", d, xs[i], y)
		}
		if i > 0 && y < ys[i-1] {
			t.Errorf("%v.CDF decreases from %v at %v to %v at %v", d, ys[i-1], xs[i-1], y, xs[i])
		}
	}
}

// testCDFIntegral checks that d.CDF(x) is the integral of d.PDF from
// lo to x.
func testCDFIntegral(t *testing.T, d Dist, lo float64, xs []float64, tol float64) {
	t.Helper()
	for _, x := range xs {
		want := d.CDF(lo) + integrate(d.PDF, lo, x)
		if got := d.CDF(x); !aeq(want, got, tol) {
			t.Errorf("%v.CDF(%v) = %v, but ∫PDF = %v", d, x, got, want)
		}
	}
}
