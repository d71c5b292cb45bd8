// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// hyp2f1MaxTerms bounds the number of power series terms summed by
// Hyp2F1.
const hyp2f1MaxTerms = 10000

// Hyp2F1 returns the Gauss hypergeometric function ₂F₁(a, b; c; z)
// for real z < 1.
//
// For z < 0, Hyp2F1 applies one of the Pfaff transformations
//
//	₂F₁(a, b; c; z) = (1-z)^(-a) ₂F₁(a, c-b; c; z/(z-1))
//	                = (1-z)^(-b) ₂F₁(c-a, b; c; z/(z-1))
//
// which map all of (-∞, 0) onto (0, 1), and then sums the power
// series. It prefers the form without a negative numerator
// parameter, whose terms do not alternate in sign. The series
// converges geometrically in its argument w, so the cost grows as w
// approaches 1 (that is, as z approaches 1 or -∞). For |w| <= 1/2,
// which covers z in [-1, 1/2], it takes at most about 55 terms.
//
// Hyp2F1 returns NaN if z >= 1, if c is a non-positive integer, or if
// the series fails to converge.
func Hyp2F1(a, b, c, z float64) float64 {
	switch {
	case math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) || math.IsNaN(z):
		return nan
	case z == 0:
		return 1
	case z >= 1:
		return nan
	case c <= 0 && c == math.Floor(c):
		return nan
	}

	if z < 0 {
		w := z / (z - 1)
		if c-b < 0 && c-a >= 0 {
			return math.Pow(1-z, -b) * hyp2f1Series(c-a, b, c, w)
		}
		return math.Pow(1-z, -a) * hyp2f1Series(a, c-b, c, w)
	}
	return hyp2f1Series(a, b, c, z)
}

// hyp2f1Series sums the Gauss series Σ (a)ₙ(b)ₙ/(c)ₙ zⁿ/n!.
func hyp2f1Series(a, b, c, z float64) float64 {
	sum, term := 1.0, 1.0
	for n := 0; n < hyp2f1MaxTerms; n++ {
		k := float64(n)
		term *= (a + k) * (b + k) / ((c + k) * (k + 1)) * z
		sum += term
		if math.Abs(term) <= epsilon*math.Abs(sum) {
			return sum
		}
	}
	return nan
}
