// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package prior constructs the bounded uniform prior distribution over the
circuit parameters of the pyloric network model, using the reference
ranges from Goncalves et al. 2020 (based on Prinz et al. 2004).

The prior is a box-uniform distribution: independent uniform per selected
parameter, between a lower and upper bound derived from the catalog
reference ranges.  Which parameters participate is controlled by a
per-group mask configuration (see catalog.Masks); excluded parameters are
treated as externally fixed and are not part of the distribution.

Samples are returned as etable tables with one named column per parameter,
so downstream inference code can refer to parameters by name rather than
by position.
*/
package prior

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/pyloric/boxuniform"
	"github.com/emer/pyloric/catalog"
	"golang.org/x/exp/rand"
)

// Config specifies the construction of a Prior.  Call Defaults first,
// then modify fields as needed.
type Config struct {

	// explicit lower bound, overriding the computed reference bounds entirely -- length must equal the number of active parameters implied by Customization
	Lower []float64

	// explicit upper bound, overriding the computed reference bounds entirely -- length must equal the number of active parameters implied by Customization
	Upper []float64

	// per-group selection overrides, keyed by catalog group name (see catalog.MaskKeys) -- groups not listed use the default masks
	Customization map[string]any

	// sample the synaptic conductances in natural-log space (the sampler then draws log-conductances)
	SynapsesLogSpace bool

	// random source for sampling -- nil uses the global source
	Src rand.Source
}

// Defaults sets the default configuration: computed reference bounds,
// default masks, synapses in log space.
func (cf *Config) Defaults() {
	cf.SynapsesLogSpace = true
}

// Prior is a box-uniform prior over the selected circuit parameters, with
// per-parameter names.  It is immutable after construction and safe for
// concurrent read-only use apart from the random source used by Sample.
type Prior struct {

	// lower bound per active parameter, in canonical group order
	Lower []float64

	// upper bound per active parameter, in canonical group order
	Upper []float64

	// type name per active parameter (neuron type, Synapses, or Q10 family)
	TypeNames []string

	// channel name per active parameter (membrane channel, synapse, or Q10 member)
	ChanNames []string

	labels []string
	dist   *boxuniform.Dist
}

// New constructs a Prior from the given configuration.  Construction
// fails on unrecognized customization keys, mask shape mismatches, and
// explicit bound vectors whose length does not match the number of
// parameters selected by the masks.
func New(cfg Config) (*Prior, error) {
	mk := catalog.Masks{}
	mk.Defaults()
	if err := mk.ApplyConfig(cfg.Customization); err != nil {
		return nil, err
	}
	bd := computeBounds(&mk, cfg.SynapsesLogSpace)
	lower := bd.Lower
	upper := bd.Upper
	if cfg.Lower != nil {
		if len(cfg.Lower) != len(lower) {
			return nil, fmt.Errorf("prior.New: explicit lower bound has length %d, but masks select %d parameters", len(cfg.Lower), len(lower))
		}
		lower = cfg.Lower
	}
	if cfg.Upper != nil {
		if len(cfg.Upper) != len(upper) {
			return nil, fmt.Errorf("prior.New: explicit upper bound has length %d, but masks select %d parameters", len(cfg.Upper), len(upper))
		}
		upper = cfg.Upper
	}
	dist, err := boxuniform.New(lower, upper, cfg.Src)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(bd.TypeNames))
	for i := range labels {
		labels[i] = bd.TypeNames[i] + " " + bd.ChanNames[i]
	}
	return &Prior{
		Lower:     dist.Lower,
		Upper:     dist.Upper,
		TypeNames: bd.TypeNames,
		ChanNames: bd.ChanNames,
		labels:    labels,
		dist:      dist,
	}, nil
}

// NumParams returns the number of active parameters.
func (pr *Prior) NumParams() int {
	return len(pr.Lower)
}

// Labels returns a copy of the per-parameter column labels, in bound
// order: type name and channel name joined by a space.
func (pr *Prior) Labels() []string {
	lbs := make([]string, len(pr.labels))
	copy(lbs, pr.labels)
	return lbs
}

// Sample draws n independent points from the prior and returns them as a
// table with one row per draw and one FLOAT64 column per parameter, named
// by the parameter labels, in bound order.
func (pr *Prior) Sample(n int) *etable.Table {
	samp := pr.dist.Sample(n)
	sch := etable.Schema{}
	for _, lb := range pr.labels {
		sch = append(sch, etable.Column{Name: lb, Type: etensor.FLOAT64})
	}
	dt := &etable.Table{}
	dt.SetFromSchema(sch, n)
	nd := len(pr.labels)
	for ri := 0; ri < n; ri++ {
		for ci, lb := range pr.labels {
			dt.SetCellFloat(lb, ri, samp.Values[ri*nd+ci])
		}
	}
	return dt
}

// LogProb returns the log density of each row of the given table under
// the prior.  The table must have one column per parameter label (extra
// columns are ignored); a missing column is an error.  Rows outside the
// bounding box yield -Inf, not an error.
func (pr *Prior) LogProb(dt *etable.Table) ([]float64, error) {
	cols := make([]etensor.Tensor, len(pr.labels))
	for ci, lb := range pr.labels {
		col, err := dt.ColByNameTry(lb)
		if err != nil {
			return nil, fmt.Errorf("prior.LogProb: %v", err)
		}
		cols[ci] = col
	}
	lps := make([]float64, dt.Rows)
	theta := make([]float64, len(cols))
	for ri := 0; ri < dt.Rows; ri++ {
		for ci := range cols {
			theta[ci] = cols[ci].FloatVal1D(ri)
		}
		lp, err := pr.dist.LogProb(theta)
		if err != nil {
			return nil, err
		}
		lps[ri] = lp
	}
	return lps, nil
}

// LogProbVec returns the log density of a single point given as a flat
// vector aligned with the bound order.  -Inf for out-of-box points.
func (pr *Prior) LogProbVec(theta []float64) (float64, error) {
	return pr.dist.LogProb(theta)
}

// LogDensity returns the log density of any in-box point: the negative
// sum of the log bound widths (constant, since the density is uniform).
func (pr *Prior) LogDensity() float64 {
	lp := 0.0
	for i := range pr.Lower {
		lp -= math.Log(pr.Upper[i] - pr.Lower[i])
	}
	return lp
}
