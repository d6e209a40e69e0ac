// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package boxuniform implements a multivariate uniform distribution over an
axis-aligned box: each dimension is an independent uniform distribution
over [lower, upper), and the log density of a point is the sum of the
per-dimension log densities (zero density, -Inf log density, outside the
box).
*/
package boxuniform

import (
	"fmt"

	"github.com/emer/etable/v2/etensor"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dist is a box-uniform distribution over NDims independent dimensions.
// It is immutable after construction and safe for concurrent read-only use
// apart from the shared random source used by Sample.
type Dist struct {

	// lower bound per dimension
	Lower []float64

	// upper bound per dimension
	Upper []float64

	dims []distuv.Uniform
}

// New returns a box-uniform distribution over the given bounds, using src
// for random draws (nil uses the global source).  The bound slices must
// have equal nonzero length with Lower[i] <= Upper[i] for all i; they are
// copied, so the caller's slices are not retained.
func New(lower, upper []float64, src rand.Source) (*Dist, error) {
	if len(lower) != len(upper) {
		return nil, fmt.Errorf("boxuniform.New: lower bound has %d dimensions but upper bound has %d", len(lower), len(upper))
	}
	if len(lower) == 0 {
		return nil, fmt.Errorf("boxuniform.New: bounds must have at least one dimension")
	}
	bu := &Dist{
		Lower: make([]float64, len(lower)),
		Upper: make([]float64, len(upper)),
		dims:  make([]distuv.Uniform, len(lower)),
	}
	copy(bu.Lower, lower)
	copy(bu.Upper, upper)
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("boxuniform.New: dimension %d: lower bound %g exceeds upper bound %g", i, lower[i], upper[i])
		}
		bu.dims[i] = distuv.Uniform{Min: lower[i], Max: upper[i], Src: src}
	}
	return bu, nil
}

// NDims returns the number of dimensions.
func (bu *Dist) NDims() int {
	return len(bu.dims)
}

// Sample draws n independent points and returns them as an n x NDims
// tensor, one row per draw.
func (bu *Dist) Sample(n int) *etensor.Float64 {
	nd := bu.NDims()
	tsr := etensor.NewFloat64([]int{n, nd}, nil, []string{"Sample", "Param"})
	for i := 0; i < n; i++ {
		for j := 0; j < nd; j++ {
			tsr.Values[i*nd+j] = bu.dims[j].Rand()
		}
	}
	return tsr
}

// LogProb returns the log density of x under the distribution: the sum of
// the per-dimension uniform log densities, -Inf if any dimension falls
// outside its bounds.  x must have exactly NDims elements.
func (bu *Dist) LogProb(x []float64) (float64, error) {
	if len(x) != len(bu.dims) {
		return 0, fmt.Errorf("boxuniform.LogProb: point has %d dimensions, distribution has %d", len(x), len(bu.dims))
	}
	lp := 0.0
	for i := range bu.dims {
		lp += bu.dims[i].LogProb(x[i])
	}
	return lp, nil
}
