// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"

	"github.com/kalkayotl/priors/mathx"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
)

// EFF sampling draws u from [effUniformLo, effUniformHi] and searches
// for the root in [-effBracket, effBracket].
//
// Clamping u keeps the root finder away from the extreme tails, where
// the bracket may not contain the root for γ close to 1. This
// truncates the sampled distribution to its central 98%, so samples
// are not drawn from the exact EFF law. The truncation is part of the
// reproducible sampling contract and callers that care about the
// tails must account for it.
const (
	effUniformLo = 0.01
	effUniformHi = 0.99
	effBracket   = 1000
)

// effHypMaxGamma is the largest γ for which the CDF is evaluated
// through the hypergeometric series. Beyond it the series needs
// O(γ) terms and its prefactor underflows.
const effHypMaxGamma = 100

// EFFDist is the Elson-Fall-Freeman profile, a power-law density
// with index γ > 1 in units of the core radius:
//
//	PDF(x) = (1+x²)^(-γ/2) / C
//	C      = √π Γ((γ-1)/2) / Γ(γ/2)
//
// Its CDF is
//
//	CDF(x) = 1/2 + x ₂F₁(1/2, γ/2; 3/2; -x²) / C
//
// For γ = 2 this is the Cauchy distribution.
type EFFDist struct {
	gamma float64
	cte   float64 // Normalization C
}

// NewEFF returns the EFF distribution with power-law index gamma > 1.
func NewEFF(gamma float64) (EFFDist, error) {
	if !(gamma > 1) || math.IsInf(gamma, 1) {
		return EFFDist{}, &InvalidParameterError{"EFF", "gamma", gamma, "> 1"}
	}
	cte := math.Sqrt(math.Pi) * mathx.GammaRatio(0.5*(gamma-1), 0.5*gamma)
	return EFFDist{gamma, cte}, nil
}

// Gamma returns the power-law index of d.
func (d EFFDist) Gamma() float64 {
	return d.gamma
}

func (d EFFDist) String() string {
	return fmt.Sprintf("EFF(gamma=%v)", d.gamma)
}

func (d EFFDist) PDF(x float64) float64 {
	return math.Pow(1+x*x, -0.5*d.gamma) / d.cte
}

func (d EFFDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d EFFDist) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case math.Abs(x) <= 1 && d.gamma <= effHypMaxGamma:
		return d.cdfHyp(x)
	}
	return d.cdfBeta(x)
}

// cdfHyp evaluates the CDF through the hypergeometric function. It is
// accurate for |x| <= 1, where the series converges quickly.
func (d EFFDist) cdfHyp(x float64) float64 {
	return 0.5 + x*(mathx.Hyp2F1(0.5, 0.5*d.gamma, 1.5, -x*x)/d.cte)
}

// cdfBeta evaluates the CDF through the tail weight
//
//	Pr[X > |x|] = I_{1/(1+x²)}((γ-1)/2, 1/2) / 2
//
// where I is the regularized incomplete beta function. This is the
// same function as cdfHyp, but stays accurate for large |x| and γ.
func (d EFFDist) cdfBeta(x float64) float64 {
	tail := 0.5 * mathext.RegIncBeta(0.5*(d.gamma-1), 0.5, 1/(1+x*x))
	if x < 0 {
		return tail
	}
	return 1 - tail
}

func (d EFFDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

func (d EFFDist) Support() Support {
	return Support{-inf, inf, false}
}

// Bounds returns the sampling bracket, [-1000, 1000]. For γ close to
// 1 the tails beyond it carry significant weight.
func (d EFFDist) Bounds() (float64, float64) {
	return -effBracket, effBracket
}

func (d EFFDist) Rand(r *rand.Rand, n int) ([]float64, error) {
	return Sampler{}.Rand(d, r, n)
}

func (d EFFDist) bracket() (float64, float64) {
	return -effBracket, effBracket
}

func (d EFFDist) uniformRange() (float64, float64) {
	return effUniformLo, effUniformHi
}
