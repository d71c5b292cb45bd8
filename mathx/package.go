// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions and numerical routines
// that the standard math package and gonum's mathext lack.
package mathx // import "github.com/kalkayotl/priors/mathx"

import "math"

var nan = math.NaN()

// epsilon is the difference between 1 and the next float64.
const epsilon = 0x1p-52
