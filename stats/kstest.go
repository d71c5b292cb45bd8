// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrSampleSize is returned by tests that are given too few samples.
var ErrSampleSize = errors.New("sample is too small")

// A KSTestResult is the result of a one-sample Kolmogorov-Smirnov
// test.
type KSTestResult struct {
	// N is the size of the sample.
	N int

	// D is the Kolmogorov-Smirnov statistic: the largest absolute
	// difference between the empirical CDF of the sample and the
	// hypothesized CDF.
	D float64

	// P is the p-value of the test: the probability of observing
	// a D at least this large if the sample was drawn from the
	// hypothesized distribution.
	P float64
}

// KolmogorovSmirnov performs a one-sample Kolmogorov-Smirnov test
// of the null hypothesis that xs was drawn from the continuous
// distribution with the given CDF.
//
// The p-value uses the asymptotic Kolmogorov distribution with
// Stephens' (1970) small-sample correction, which is accurate to a
// few percent for n >= 5.
//
// If xs is empty, KolmogorovSmirnov returns ErrSampleSize.
func KolmogorovSmirnov(xs []float64, cdf func(float64) float64) (*KSTestResult, error) {
	n := len(xs)
	if n == 0 {
		return nil, ErrSampleSize
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	// The empirical CDF steps from i/n to (i+1)/n at sorted[i],
	// so the supremum is attained at one side of a step.
	fn := float64(n)
	d := 0.0
	for i, x := range sorted {
		f := cdf(x)
		d = math.Max(d, math.Max(float64(i+1)/fn-f, f-float64(i)/fn))
	}

	sqrtN := math.Sqrt(fn)
	p := kolmogorovQ((sqrtN + 0.12 + 0.11/sqrtN) * d)
	return &KSTestResult{N: n, D: d, P: p}, nil
}

// kolmogorovQ returns Pr[K > λ] for the Kolmogorov distribution K.
func kolmogorovQ(λ float64) float64 {
	if λ <= 0 {
		return 1
	}
	var q float64
	if λ < 1.18 {
		// Jacobi theta form, which converges fast for small λ:
		//
		//   Pr[K <= λ] = √(2π)/λ Σ_{k≥1} exp(-(2k-1)²π²/(8λ²))
		y := math.Exp(-math.Pi * math.Pi / (8 * λ * λ))
		q = 1 - math.Sqrt(2*math.Pi)/λ*(y+math.Pow(y, 9)+math.Pow(y, 25)+math.Pow(y, 49))
	} else {
		//   Pr[K > λ] = 2 Σ_{k≥1} (-1)^(k-1) exp(-2k²λ²)
		x := math.Exp(-2 * λ * λ)
		q = 2 * (x - math.Pow(x, 4) + math.Pow(x, 9))
	}
	return math.Max(0, math.Min(1, q))
}
