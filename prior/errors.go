// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by distributions whose density and
// sampling are not implemented.
var ErrNotImplemented = errors.New("prior: not implemented")

// An InvalidParameterError reports a shape parameter outside of its
// admissible domain.
type InvalidParameterError struct {
	Dist  string  // Distribution name, such as "King"
	Param string  // Parameter name, such as "rt"
	Value float64 // Rejected value
	Want  string  // Admissible domain, such as "> 0"
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("prior: invalid %s parameter %s=%v, want %s %s", e.Dist, e.Param, e.Value, e.Param, e.Want)
}

// A RootBracketError reports that the CDF did not change sign over
// the root finder's bracket for the uniform draw U, so CDF(x) = U
// has no solution in [Lo, Hi]. This happens for extreme parameter
// values, where the bracket no longer covers the bulk of the
// distribution.
type RootBracketError struct {
	U            float64 // Uniform draw being inverted
	Lo, Hi       float64 // Bracket
	CDFLo, CDFHi float64 // CDF(Lo) and CDF(Hi)
	Err          error   // Error from the root finder
}

func (e *RootBracketError) Error() string {
	return fmt.Sprintf("prior: cannot invert CDF at u=%v: CDF(%v)=%v, CDF(%v)=%v", e.U, e.Lo, e.CDFLo, e.Hi, e.CDFHi)
}

func (e *RootBracketError) Unwrap() error {
	return e.Err
}
