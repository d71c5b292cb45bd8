// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/kalkayotl/priors/mathx"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// invertible is implemented by distributions that are sampled by
// numerically inverting their CDF.
type invertible interface {
	Dist

	// bracket returns an interval containing the root of
	// CDF(x) = u for every u in uniformRange.
	bracket() (lo, hi float64)

	// uniformRange returns the interval uniform draws are taken
	// from.
	uniformRange() (lo, hi float64)
}

// A Sampler draws random variates by inverse-transform sampling.
//
// The uniform draws are always taken sequentially from the caller's
// source, so the output depends only on the source's seed, the
// distribution, and n, and not on Workers.
//
// The zero Sampler inverts on the calling goroutine using
// mathx.DefaultRootTol.
type Sampler struct {
	// Workers is the maximum number of goroutines inverting the
	// CDF concurrently. Values <= 1 mean no concurrency.
	Workers int

	// Tol is the root-finding tolerance. If Tol.MaxIter is 0,
	// mathx.DefaultRootTol is used.
	Tol mathx.RootTol
}

// Sample returns n variates drawn from d by a zero Sampler using a
// source seeded with seed. Equal arguments give identical results.
func Sample(d Dist, n int, seed uint64) ([]float64, error) {
	return Sampler{}.Rand(d, rand.New(rand.NewSource(seed)), n)
}

// Rand returns n variates drawn from d using r.
//
// If inverting the CDF fails for any draw, Rand returns no variates
// and an error; a *RootBracketError if the bracket did not contain
// the root. Distributions that cannot be sampled return an error
// wrapping ErrNotImplemented.
func (s Sampler) Rand(d Dist, r *rand.Rand, n int) ([]float64, error) {
	if n < 0 {
		panic("prior: negative sample count")
	}
	switch d := d.(type) {
	case *Scaled:
		return s.Rand(*d, r, n)
	case Scaled:
		xs, err := s.Rand(d.Dist, r, n)
		if err != nil {
			return nil, err
		}
		for i, x := range xs {
			xs[i] = d.Loc + d.Scale*x
		}
		return xs, nil
	case invertible:
		return s.invert(d, r, n)
	}
	return nil, fmt.Errorf("prior: cannot sample %v: %w", d, ErrNotImplemented)
}

// SampledCDF returns the CDF of the variates Sampler draws from d.
// It differs from d.CDF where sampling is truncated to a central
// probability range, as it is for EFF.
func SampledCDF(d Dist) func(float64) float64 {
	switch d := d.(type) {
	case *Scaled:
		return SampledCDF(*d)
	case Scaled:
		cdf := SampledCDF(d.Dist)
		return func(x float64) float64 {
			return cdf(d.standardize(x))
		}
	case invertible:
		lo, hi := d.uniformRange()
		if lo == 0 && hi == 1 {
			return d.CDF
		}
		return func(x float64) float64 {
			p := (d.CDF(x) - lo) / (hi - lo)
			return math.Max(0, math.Min(1, p))
		}
	}
	return d.CDF
}

func (s Sampler) invert(d invertible, r *rand.Rand, n int) ([]float64, error) {
	tol := s.Tol
	if tol.MaxIter == 0 {
		tol = mathx.DefaultRootTol
	}

	ulo, uhi := d.uniformRange()
	us := make([]float64, n)
	for i := range us {
		us[i] = ulo + (uhi-ulo)*r.Float64()
	}

	lo, hi := d.bracket()
	xs := make([]float64, n)
	solve := func(i int) error {
		u := us[i]
		x, err := mathx.Brent(func(x float64) float64 { return d.CDF(x) - u }, lo, hi, tol)
		if errors.Is(err, mathx.ErrNotBracketed) {
			return &RootBracketError{u, lo, hi, d.CDF(lo), d.CDF(hi), err}
		} else if err != nil {
			return fmt.Errorf("prior: inverting %v at u=%v: %w", d, u, err)
		}
		xs[i] = x
		return nil
	}

	workers := s.Workers
	if workers > n {
		workers = n
	}
	log.Debugf("sampling %d variates from %v on %d workers", n, d, max(workers, 1))

	if workers <= 1 {
		for i := range us {
			if err := solve(i); err != nil {
				return nil, err
			}
		}
		return xs, nil
	}

	// Split the draws into one contiguous chunk per worker. The
	// first failure cancels the remaining chunks.
	g, ctx := errgroup.WithContext(context.Background())
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := solve(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return xs, nil
}
