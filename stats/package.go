// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats summarizes samples drawn from distance priors and
// tests them against their hypothesized distributions.
package stats // import "github.com/kalkayotl/priors/stats"

import "math"

var inf = math.Inf(1)
