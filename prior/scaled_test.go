// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestScaled(t *testing.T) {
	king := mustKing(t, 10)
	d, err := NewScaled(king, 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{81, 90, 99, 100, 100.5, 119} {
		z := (x - 100) / 2
		if got, want := d.PDF(x), king.PDF(z)/2; !aeq(want, got, 1e-15) {
			t.Errorf("PDF(%v) = %v, want %v", x, got, want)
		}
		if got, want := d.CDF(x), king.CDF(z); !aeq(want, got, 1e-15) {
			t.Errorf("CDF(%v) = %v, want %v", x, got, want)
		}
	}
	if got := d.PDF(120); !math.IsNaN(got) {
		t.Errorf("PDF at the tidal radius = %v, want NaN", got)
	}
	if sup := d.Support(); sup != (Support{80, 120, true}) {
		t.Errorf("Support() = %v", sup)
	}
	if lo, hi := d.Bounds(); lo != 80 || hi != 120 {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
	if got := integrate(d.PDF, 80, 120); !aeq(1, got, 1e-6) {
		t.Errorf("∫ PDF = %v, want 1", got)
	}

	// Scaled samples are the unscaled samples, transformed.
	xs, err := d.Rand(rand.New(rand.NewSource(5)), 50)
	if err != nil {
		t.Fatal(err)
	}
	zs, err := king.Rand(rand.New(rand.NewSource(5)), 50)
	if err != nil {
		t.Fatal(err)
	}
	for i := range xs {
		if xs[i] != 100+2*zs[i] {
			t.Errorf("sample %d: got %v, want 100+2·%v", i, xs[i], zs[i])
		}
	}
}

func TestNewScaledInvalid(t *testing.T) {
	d := mustEDSD(t, 1)
	for _, test := range []struct {
		loc, scale float64
		param      string
	}{
		{0, 0, "scale"},
		{0, -2, "scale"},
		{0, math.NaN(), "scale"},
		{math.Inf(1), 1, "loc"},
		{math.NaN(), 1, "loc"},
	} {
		_, err := NewScaled(d, test.loc, test.scale)
		var perr *InvalidParameterError
		if !errors.As(err, &perr) || perr.Param != test.param {
			t.Errorf("NewScaled(%v, %v): want InvalidParameterError for %s, got %v", test.loc, test.scale, test.param, err)
		}
	}
}
