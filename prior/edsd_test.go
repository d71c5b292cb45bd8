// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"errors"
	"math"
	"testing"
)

func mustEDSD(t testing.TB, L float64) EDSDDist {
	d, err := NewEDSD(L)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestEDSD(t *testing.T) {
	d := mustEDSD(t, 1)
	testFunc(t, "EDSD(1).PDF", d.PDF, map[float64]float64{
		-1: 0,
		0:  0,
		1:  0.18393972058572117,
		2:  0.2706705664732254,
	}, 1e-14)
	testFunc(t, "EDSD(1).CDF", d.CDF, map[float64]float64{
		math.Inf(-1): 0,
		-1:           0,
		0:            0,
		1:            0.08030139707139416,
		2:            0.3233235838169365,
		1e3:          1,
		1e300:        1,
		math.Inf(1):  1,
	}, 1e-14)

	d = mustEDSD(t, 100)
	testFunc(t, "EDSD(100).PDF", d.PDF, map[float64]float64{
		50:   0.0007581633246407917,
		300:  0.0022404180765538775,
		1000: 2.2699964881242427e-05,
	}, 1e-14)
	testFunc(t, "EDSD(100).CDF", d.CDF, map[float64]float64{
		50:   0.014387677966970713,
		300:  0.5768099188731565,
		1000: 0.9972306042844884,
	}, 1e-14)

	if d.L() != 100 || d.Mean() != 300 {
		t.Errorf("got L=%v mean=%v, want 100, 300", d.L(), d.Mean())
	}
	if lo, hi := d.Bounds(); lo != 0 || hi != 2000 {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
}

func TestEDSDNormalization(t *testing.T) {
	for _, L := range []float64{0.01, 1, 100, 1e4} {
		d := mustEDSD(t, L)
		if got := integrate(d.PDF, 0, 60*L); !aeq(1, got, 1e-6) {
			t.Errorf("∫ %v.PDF = %v, want 1", d, got)
		}
		testMonotone(t, d, -L, 50*L, 2001)
		testCDFIntegral(t, d, 0, []float64{0.1 * L, L, 3 * L, 10 * L}, 1e-9)

		lo, hi := d.bracket()
		if d.CDF(lo) != 0 || d.CDF(hi) != 1 {
			t.Errorf("%v: CDF over bracket [%v, %v] is [%v, %v], want [0, 1]", d, lo, hi, d.CDF(lo), d.CDF(hi))
		}
	}
}

func TestEDSDCDFNearZero(t *testing.T) {
	for _, L := range []float64{1, 100} {
		d := mustEDSD(t, L)
		testMonotone(t, d, 0, 1e-3*L, 100001)
		testMonotone(t, d, 0, 2*L, 2001)

		// CDF(x) = t³/6 (1 - 3t/4 + O(t²)) with t = x/L.
		for _, tt := range []float64{1e-9, 1e-6, 1e-4} {
			want := tt * tt * tt / 6 * (1 - 0.75*tt)
			if got := d.CDF(tt * L); math.Abs(got-want) > 1e-7*want {
				t.Errorf("%v.CDF(%v) = %v, want %v", d, tt*L, got, want)
			}
		}
	}
}

func TestNewEDSDInvalid(t *testing.T) {
	for _, L := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewEDSD(L)
		var perr *InvalidParameterError
		if !errors.As(err, &perr) {
			t.Errorf("NewEDSD(%v): want InvalidParameterError, got %v", L, err)
			continue
		}
		if perr.Param != "L" || !aeq(L, perr.Value, 0) {
			t.Errorf("NewEDSD(%v): got %+v", L, perr)
		}
	}
}
