// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/integrate/quad"
)

// Below kingQuadRT the closed-form CDF cancels catastrophically (C is
// O(rt⁵) while its terms are O(rt)), so the density is integrated by
// Gauss-Legendre quadrature on kingQuadN nodes instead. The nearest
// singularities of the density are at ±i, far from an interval this
// short.
const (
	kingQuadRT = 1
	kingQuadN  = 32
)

// kingNodes and kingWeights are the Gauss-Legendre rule on [-1, 1].
var kingNodes, kingWeights = legendre(kingQuadN)

func legendre(n int) (x, w []float64) {
	x, w = make([]float64, n), make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	return x, w
}

// KingDist is the King profile, a density with a finite tidal radius
// rt, in units of the core radius:
//
//	PDF(x) = ((1+x²)^(-1/2) - (1+rt²)^(-1/2))² / C  for |x| < rt
//	C      = 2(rt/(1+rt²) - 2 asinh(rt)/√(1+rt²) + atan(rt))
//
// The density is undefined beyond the tidal radius, where PDF returns
// NaN. The CDF is 0 below -rt and 1 above rt.
type KingDist struct {
	rt  float64
	u   float64 // 1 + rt²
	b   float64 // √u
	cte float64 // Normalization C
}

// NewKing returns the King distribution with tidal radius rt > 0.
// Tidal radii so small that C underflows are rejected.
func NewKing(rt float64) (KingDist, error) {
	if !(rt > 0) || math.IsInf(rt, 1) {
		return KingDist{}, &InvalidParameterError{"King", "rt", rt, "> 0"}
	}
	u := 1 + rt*rt
	d := KingDist{rt: rt, u: u, b: math.Sqrt(u)}
	d.cte = d.mass(rt)
	// C must be a normal float for PDF and CDF to keep full precision.
	if !(d.cte >= 0x1p-1022) || math.IsInf(d.cte, 1) {
		return KingDist{}, &InvalidParameterError{"King", "rt", rt, "normalizable"}
	}
	return d, nil
}

// kernel returns the unnormalized density at |s| <= rt, written as
// ((rt²-s²)/(a·b·(a+b)))² with a = √(1+s²) so that nothing cancels.
func (d KingDist) kernel(s float64) float64 {
	a := math.Sqrt(1 + s*s)
	k := (d.rt - s) * (d.rt + s) / (a * d.b * (a + d.b))
	return k * k
}

// mass returns the unnormalized mass in [-rt, x] for x in [-rt, rt].
func (d KingDist) mass(x float64) float64 {
	rt := d.rt
	if rt < kingQuadRT {
		// Map the Legendre nodes onto [-rt, x].
		h, c := (x+rt)/2, (x-rt)/2
		var sum float64
		for i, t := range kingNodes {
			sum += kingWeights[i] * d.kernel(c+h*t)
		}
		return h * sum
	}
	return (rt+x)/d.u - 2*(math.Asinh(rt)+math.Asinh(x))/d.b + (math.Atan(rt) + math.Atan(x))
}

// RT returns the tidal radius of d.
func (d KingDist) RT() float64 {
	return d.rt
}

func (d KingDist) String() string {
	return fmt.Sprintf("King(rt=%v)", d.rt)
}

func (d KingDist) PDF(x float64) float64 {
	if !(math.Abs(x) < d.rt) {
		return nan
	}
	return d.kernel(x) / d.cte
}

func (d KingDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d KingDist) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x <= -d.rt:
		return 0
	case x >= d.rt:
		return 1
	}
	if x > 0 && d.rt < kingQuadRT {
		// The upper tail by symmetry, so that the quadrature only
		// ever sees the short interval [-rt, -x].
		return 1 - d.mass(-x)/d.cte
	}
	return d.mass(x) / d.cte
}

func (d KingDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

func (d KingDist) Support() Support {
	return Support{-d.rt, d.rt, true}
}

func (d KingDist) Bounds() (float64, float64) {
	return -d.rt, d.rt
}

func (d KingDist) Rand(r *rand.Rand, n int) ([]float64, error) {
	return Sampler{}.Rand(d, r, n)
}

// bracket returns the support. The CDF is exactly 0 and 1 at its ends.
func (d KingDist) bracket() (float64, float64) {
	return -d.rt, d.rt
}

func (d KingDist) uniformRange() (float64, float64) {
	return 0, 1
}
