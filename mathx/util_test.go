// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

// aeq reports whether got is within relative (or, near 0, absolute)
// distance tol of expect.
func aeq(expect, got, tol float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= tol*math.Max(1, math.Abs(expect))
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64, tol float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got, tol) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}
