// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "github.com/emer/etable/v2/minmax"

// GbarUnits converts the published membrane conductance ranges into the
// units used by the simulator.  Both the range tables and the padding
// vector must be scaled by this factor before any further arithmetic,
// to reproduce the reference bounds exactly.
const GbarUnits = 0.628e-3

// MembraneGbarMins are the minimal maximal-conductance values per neuron
// type and channel, as used by Prinz et al. 2004, in published units
// (multiply by GbarUnits before use).
var MembraneGbarMins = [NeuronTypes][MembraneChans]float64{
	{100, 2.5, 2, 10, 5, 50, 0.01, 0.0}, // PM
	{100, 0.0, 4, 20, 0, 25, 0.0, 0.02}, // LP
	{100, 2.5, 0, 40, 0, 75, 0.0, 0.0},  // PY
}

// MembraneGbarMaxs are the maximal values per neuron type and channel,
// in published units (multiply by GbarUnits before use).
var MembraneGbarMaxs = [NeuronTypes][MembraneChans]float64{
	{400, 5, 6, 50, 10, 125, 0.01, 0.0}, // PM
	{100, 0, 10, 50, 5, 100, 0.05, 0.03}, // LP
	{500, 10, 2, 50, 0, 125, 0.05, 0.03}, // PY
}

// MembraneGbarPad is the per-channel padding subtracted from the minimum
// table and added to the maximum table, widening the published ranges.
// The same padding applies to every neuron type.  In published units
// (multiply by GbarUnits before use).  Padded minima are clipped at zero:
// conductances cannot be negative.
var MembraneGbarPad = [MembraneChans]float64{100, 2.5, 2, 10, 5, 25, 0.01, 0.01}

// SynGbar is the shared range for the synaptic conductances.  The first
// synapse (AB-LP) has a maximum SynGbarFirstMaxScale times larger.
var SynGbar = minmax.F64{Min: 1e-8, Max: 1e-3}

// SynGbarFirstMaxScale scales the maximum of the first synapse only.
const SynGbarFirstMaxScale = 10.0

// Q10Gbar is the range for the conductance Q10 temperature-sensitivity
// coefficients (membrane and synaptic).
var Q10Gbar = minmax.F64{Min: 1, Max: 2}

// Q10Tau is the range for the time-constant Q10 temperature-sensitivity
// coefficients (activation, inactivation, calcium buffering, synapse).
var Q10Tau = minmax.F64{Min: 1, Max: 4}
