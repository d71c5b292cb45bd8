// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 19.666666666666666,
		.40: 27,
		.95: 50,
		1:   50,
		2:   50,
	})

	// Quantile must not reorder the caller's data.
	s = Sample{Xs: []float64{50, 15, 40, 20, 35}}
	testFunc(t, "Quantile(unsorted)", s.Quantile, map[float64]float64{
		.30: 19.666666666666666,
		.40: 27,
	})
	if s.Xs[0] != 50 {
		t.Errorf("Quantile sorted its receiver: %v", s.Xs)
	}

	if got := (Sample{}).Quantile(0.5); !math.IsNaN(got) {
		t.Errorf("Quantile of empty sample = %v, want NaN", got)
	}
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if got := s.Sum(); got != 40 {
		t.Errorf("Sum = %v, want 40", got)
	}
	if got := s.Mean(); got != 5 {
		t.Errorf("Mean = %v, want 5", got)
	}
	if got, want := s.Variance(), 32.0/7; !aeq(want, got) {
		t.Errorf("Variance = %v, want %v", got, want)
	}
	if got, want := s.StdDev(), math.Sqrt(32.0/7); !aeq(want, got) {
		t.Errorf("StdDev = %v, want %v", got, want)
	}

	w := Sample{Xs: []float64{1, 2, 3}, Weights: []float64{1, 0, 3}}
	if got := w.Weight(); got != 4 {
		t.Errorf("Weight = %v, want 4", got)
	}
	if got := w.Sum(); got != 10 {
		t.Errorf("weighted Sum = %v, want 10", got)
	}
	if got := w.Mean(); got != 2.5 {
		t.Errorf("weighted Mean = %v, want 2.5", got)
	}

	if got := (Sample{}).Mean(); !math.IsNaN(got) {
		t.Errorf("Mean of empty sample = %v, want NaN", got)
	}
	if got := (Sample{Xs: []float64{1}}).StdDev(); !math.IsNaN(got) {
		t.Errorf("StdDev of one point = %v, want NaN", got)
	}
}

func TestSampleBounds(t *testing.T) {
	check := func(s Sample, wmin, wmax float64) {
		t.Helper()
		min, max := s.Bounds()
		naneq := func(a, b float64) bool {
			return a == b || (math.IsNaN(a) && math.IsNaN(b))
		}
		if !naneq(min, wmin) || !naneq(max, wmax) {
			t.Errorf("%+v.Bounds() = %v, %v, want %v, %v", s, min, max, wmin, wmax)
		}
	}
	nan := math.NaN()
	check(Sample{}, nan, nan)
	check(Sample{Xs: []float64{3, -1, 7}}, -1, 7)
	check(Sample{Xs: []float64{-1, 3, 7}, Sorted: true}, -1, 7)
	check(Sample{Xs: []float64{3, -1, 7}, Weights: []float64{1, 0, 1}}, 3, 7)
	check(Sample{Xs: []float64{-1, 3, 7}, Weights: []float64{0, 1, 0}, Sorted: true}, 3, 3)
	check(Sample{Xs: []float64{-1, 3}, Weights: []float64{0, 0}}, nan, nan)
}

func TestSampleSort(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}, Weights: []float64{30, 10, 20}}
	s.Copy().Sort()
	if s.Xs[0] != 3 || s.Sorted {
		t.Fatalf("sorting a copy modified the original: %+v", s)
	}
	s.Sort()
	for i, want := range []float64{1, 2, 3} {
		if s.Xs[i] != want || s.Weights[i] != 10*want {
			t.Fatalf("after Sort, got %+v", s)
		}
	}
	if !s.Sorted {
		t.Errorf("Sort did not set Sorted")
	}
}
