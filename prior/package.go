// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prior implements the radial distance distributions used as
// priors for stellar-cluster distance inference: the exponentially
// decreasing space density (EDSD), the Elson-Fall-Freeman (EFF)
// profile, and the King profile.
//
// None of these distributions has a closed-form inverse CDF, so
// random variates are drawn by inverse-transform sampling, solving
// CDF(x) = u for each uniform draw u with a bracketed root finder.
package prior // import "github.com/kalkayotl/priors/prior"

import (
	"math"

	"github.com/op/go-logging"
)

var inf = math.Inf(1)
var nan = math.NaN()

var log = logging.MustGetLogger("prior")

// each returns f(xs[i]) for each i.
func each(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}
