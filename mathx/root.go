// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"math"
)

var (
	// ErrNotBracketed is returned by Brent if f does not change
	// sign between the ends of the bracket.
	ErrNotBracketed = errors.New("mathx: root is not bracketed")

	// ErrNoConvergence is returned by Brent if the root was not
	// located within the iteration limit.
	ErrNoConvergence = errors.New("mathx: root finder did not converge")
)

// RootTol controls the termination of Brent.
//
// Brent stops once the bracket around the root is narrower than
// XTol + RTol*|x|, or fails after MaxIter iterations.
type RootTol struct {
	XTol, RTol float64
	MaxIter    int
}

// DefaultRootTol is the tolerance used when the caller has no reason
// to pick another one. It matches the defaults of the widely used
// brentq implementation so that roots are reproducible across
// implementations.
var DefaultRootTol = RootTol{XTol: 2e-12, RTol: 4 * epsilon, MaxIter: 100}

// Brent returns a root of f in the bracket [lo, hi] using Brent's
// method: inverse quadratic interpolation and secant steps,
// falling back to bisection whenever those do not shrink the
// bracket fast enough. It never evaluates f outside [lo, hi] and
// does not need the derivative of f.
//
// f(lo) and f(hi) must have opposite signs (or one of them must be
// 0). Otherwise, Brent returns ErrNotBracketed. If the root cannot
// be located to within tol in tol.MaxIter iterations, Brent returns
// the best estimate so far and ErrNoConvergence.
func Brent(f func(float64) float64, lo, hi float64, tol RootTol) (float64, error) {
	if tol.RTol < 4*epsilon {
		tol.RTol = 4 * epsilon
	}

	xpre, xcur := lo, hi
	fpre, fcur := f(xpre), f(xcur)
	if fpre == 0 {
		return xpre, nil
	}
	if fcur == 0 {
		return xcur, nil
	}
	if math.IsNaN(fpre) || math.IsNaN(fcur) || math.Signbit(fpre) == math.Signbit(fcur) {
		return nan, ErrNotBracketed
	}

	// xblk is the "contrapoint": f(xblk) has the opposite sign
	// of f(xcur), so the root is always between the two.
	// scur is the step just taken and spre the one before it.
	var xblk, fblk, spre, scur float64
	for i := 0; i < tol.MaxIter; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			// Make xcur the best estimate.
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := (tol.XTol + tol.RTol*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			return xcur, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// Secant.
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// Inverse quadratic interpolation.
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}
		fcur = f(xcur)
	}
	return xcur, ErrNoConvergence
}
