// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Scaled is Dist shifted to Loc and stretched by Scale. If X is
// distributed as Dist, then Loc + Scale*X is distributed as Scaled.
//
// For example, a King profile centred at distance r0 with core
// radius rc and tidal radius rt is
//
//	king, _ := NewKing(rt / rc)
//	Scaled{king, r0, rc}
type Scaled struct {
	Dist  Dist
	Loc   float64
	Scale float64 // Scale > 0
}

// NewScaled returns d shifted by loc and stretched by scale > 0.
func NewScaled(d Dist, loc, scale float64) (Scaled, error) {
	if math.IsNaN(loc) || math.IsInf(loc, 0) {
		return Scaled{}, &InvalidParameterError{fmt.Sprint(d), "loc", loc, "finite"}
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return Scaled{}, &InvalidParameterError{fmt.Sprint(d), "scale", scale, "> 0"}
	}
	return Scaled{d, loc, scale}, nil
}

func (s Scaled) String() string {
	return fmt.Sprintf("%v·%v%+v", s.Scale, s.Dist, s.Loc)
}

func (s Scaled) standardize(x float64) float64 {
	return (x - s.Loc) / s.Scale
}

func (s Scaled) PDF(x float64) float64 {
	return s.Dist.PDF(s.standardize(x)) / s.Scale
}

func (s Scaled) PDFEach(xs []float64) []float64 {
	return each(s.PDF, xs)
}

func (s Scaled) CDF(x float64) float64 {
	return s.Dist.CDF(s.standardize(x))
}

func (s Scaled) CDFEach(xs []float64) []float64 {
	return each(s.CDF, xs)
}

func (s Scaled) Support() Support {
	sup := s.Dist.Support()
	return Support{s.Loc + s.Scale*sup.Lo, s.Loc + s.Scale*sup.Hi, sup.Open}
}

func (s Scaled) Bounds() (float64, float64) {
	lo, hi := s.Dist.Bounds()
	return s.Loc + s.Scale*lo, s.Loc + s.Scale*hi
}

func (s Scaled) Rand(r *rand.Rand, n int) ([]float64, error) {
	return Sampler{}.Rand(s, r, n)
}
