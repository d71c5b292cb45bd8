// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// GammaRatio returns Γ(a)/Γ(b).
//
// The ratio is computed in log space, so it stays finite when Γ(a)
// and Γ(b) individually overflow (for example, a and b > 171).
func GammaRatio(a, b float64) float64 {
	la, sa := math.Lgamma(a)
	lb, sb := math.Lgamma(b)
	return float64(sa*sb) * math.Exp(la-lb)
}
