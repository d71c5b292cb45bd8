// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		got := f(x)
		if !(aeq(want, got) || (math.IsNaN(want) && math.IsNaN(got))) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}
