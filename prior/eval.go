// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"
)

// A DomainWarning reports that a density was evaluated outside of
// the support, where it is undefined and evaluates to NaN. It is not
// an error: the remaining densities are valid.
type DomainWarning struct {
	Count   int     // Number of points outside of Support
	First   float64 // First such point
	Support Support
}

func (w *DomainWarning) String() string {
	return fmt.Sprintf("density undefined at %d point(s) outside %v (first x=%v)", w.Count, w.Support, w.First)
}

// Evaluate returns d.PDF(xs[i]) for each i.
//
// Where the density is undefined outside the support, the result is
// NaN and Evaluate also returns a DomainWarning summarizing those
// points. Densities that are zero outside the support never produce
// a warning. Callers building a log-density must drop or reject the
// NaN entries themselves.
func Evaluate(d Dist, xs []float64) ([]float64, *DomainWarning) {
	ys := d.PDFEach(xs)
	sup := d.Support()
	var w *DomainWarning
	for i, y := range ys {
		if !math.IsNaN(y) || math.IsNaN(xs[i]) || sup.Contains(xs[i]) {
			continue
		}
		if w == nil {
			w = &DomainWarning{First: xs[i], Support: sup}
		}
		w.Count++
	}
	if w != nil {
		log.Debugf("%v: %v", d, w)
	}
	return ys, w
}

// EvaluateCDF returns d.CDF(xs[i]) for each i. The CDF is defined
// everywhere, so there is nothing to warn about.
func EvaluateCDF(d Dist, xs []float64) []float64 {
	return d.CDFEach(xs)
}
