// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// MultivariateEFFDist is the EFF profile generalized to Dim
// dimensions.
//
// Its density and sampling are not implemented. NewMultivariateEFF
// always fails with ErrNotImplemented, and the methods of a
// MultivariateEFFDist panic (PDF, CDF) or fail (Rand) with it.
type MultivariateEFFDist struct {
	Gamma float64
	Dim   int
}

// NewMultivariateEFF validates gamma > 1 and dim >= 1 and then
// returns ErrNotImplemented.
func NewMultivariateEFF(gamma float64, dim int) (MultivariateEFFDist, error) {
	if !(gamma > 1) || math.IsInf(gamma, 1) {
		return MultivariateEFFDist{}, &InvalidParameterError{"multivariate EFF", "gamma", gamma, "> 1"}
	}
	if dim < 1 {
		return MultivariateEFFDist{}, &InvalidParameterError{"multivariate EFF", "dim", float64(dim), ">= 1"}
	}
	return MultivariateEFFDist{}, fmt.Errorf("multivariate EFF: %w", ErrNotImplemented)
}

func (d MultivariateEFFDist) String() string {
	return fmt.Sprintf("MultivariateEFF(gamma=%v, dim=%d)", d.Gamma, d.Dim)
}

func (d MultivariateEFFDist) PDF(x float64) float64 {
	panic(ErrNotImplemented)
}

func (d MultivariateEFFDist) PDFEach(xs []float64) []float64 {
	panic(ErrNotImplemented)
}

func (d MultivariateEFFDist) CDF(x float64) float64 {
	panic(ErrNotImplemented)
}

func (d MultivariateEFFDist) CDFEach(xs []float64) []float64 {
	panic(ErrNotImplemented)
}

func (d MultivariateEFFDist) Support() Support {
	return Support{-inf, inf, false}
}

func (d MultivariateEFFDist) Bounds() (float64, float64) {
	return -inf, inf
}

func (d MultivariateEFFDist) Rand(r *rand.Rand, n int) ([]float64, error) {
	return nil, fmt.Errorf("%v: %w", d, ErrNotImplemented)
}
