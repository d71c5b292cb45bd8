// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// A Dist is a continuous distribution over distances.
//
// Implementations are immutable values, so a Dist may be shared
// freely between goroutines.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	//
	// Outside of the support, PDF returns either 0 or NaN,
	// depending on whether the density is defined there. See
	// the individual distributions.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. CDF is defined on the
	// whole real line.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// Support returns the interval outside of which the density
	// is zero or undefined.
	Support() Support

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// Rand returns n random variates drawn using r. It either
	// returns all n variates or an error.
	Rand(r *rand.Rand, n int) ([]float64, error)
}

// Support is an interval of the real line.
type Support struct {
	Lo, Hi float64

	// Open indicates that Lo and Hi themselves are not part of
	// the support. Infinite ends are never part of the support.
	Open bool
}

// Contains reports whether x lies in s.
func (s Support) Contains(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	if s.Open {
		return s.Lo < x && x < s.Hi
	}
	return s.Lo <= x && x <= s.Hi
}

func (s Support) String() string {
	l, r := "[", "]"
	if s.Open || math.IsInf(s.Lo, -1) {
		l = "("
	}
	if s.Open || math.IsInf(s.Hi, 1) {
		r = ")"
	}
	return fmt.Sprintf("%s%v, %v%s", l, s.Lo, s.Hi, r)
}
