// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
)

// edsdBracketScale is the upper end of the EDSD sampling bracket in
// units of L. CDF(x) rounds to 1 well before x = 50L.
const edsdBracketScale = 1e3

// Below edsdGammaT = x/L, the closed-form CDF subtracts nearly equal
// quantities and the regularized incomplete gamma function is used
// instead.
const edsdGammaT = 1

// EDSDDist is the exponentially decreasing space density
// distribution, which models stellar density falling off
// exponentially with distance:
//
//	PDF(x) = x²/(2L³) exp(-x/L)  for x >= 0
//
// This is a gamma distribution with shape 3 and scale L, so its mean
// is 3L and its mode is 2L.
type EDSDDist struct {
	l float64
}

// NewEDSD returns the EDSD distribution with scale length L > 0.
func NewEDSD(L float64) (EDSDDist, error) {
	if !(L > 0) || math.IsInf(L, 1) {
		return EDSDDist{}, &InvalidParameterError{"EDSD", "L", L, "> 0"}
	}
	return EDSDDist{L}, nil
}

// L returns the scale length of d.
func (d EDSDDist) L() float64 {
	return d.l
}

func (d EDSDDist) String() string {
	return fmt.Sprintf("EDSD(L=%v)", d.l)
}

func (d EDSDDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	L := d.l
	return (0.5 * (x * x / (L * L * L))) * math.Exp(-x/L)
}

func (d EDSDDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d EDSDDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	L := d.l
	if t := x / L; t < edsdGammaT {
		return mathext.GammaIncReg(3, t)
	}
	e := math.Exp(-x / L)
	if e == 0 {
		return 1
	}
	return 1 - e*(x*x+2*x*L+2*L*L)/(2*L*L)
}

func (d EDSDDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

func (d EDSDDist) Support() Support {
	return Support{0, inf, false}
}

// Bounds returns [0, 20L]. The weight beyond 20L is about 5e-7.
func (d EDSDDist) Bounds() (float64, float64) {
	return 0, 20 * d.l
}

func (d EDSDDist) Mean() float64 {
	return 3 * d.l
}

func (d EDSDDist) Rand(r *rand.Rand, n int) ([]float64, error) {
	return Sampler{}.Rand(d, r, n)
}

func (d EDSDDist) bracket() (float64, float64) {
	return 0, edsdBracketScale * d.l
}

func (d EDSDDist) uniformRange() (float64, float64) {
	return 0, 1
}
