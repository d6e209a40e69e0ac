// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package catalog holds the static reference data for the pyloric network
circuit parameters: the published physiological ranges for the maximal
membrane conductances (Prinz et al. 2004), the shared synaptic conductance
range, and the Q10 temperature-sensitivity coefficient ranges, along with
the names of the neuron types, membrane channels, and synapses.

It also provides the Masks type, which records per-group which scalar
parameters participate in the prior distribution and which are excluded
(treated as externally fixed).  Mask configurations are supplied as a
loosely-typed map (scalar bool, flat slice, or nested slice per group) and
are coerced into fixed compile-time shapes, so that any shape mismatch is
a construction-time error rather than a silent broadcast.
*/
package catalog

// Fixed dimensions of the circuit parameter space.
const (
	// NeuronTypes is the number of model neuron types: PM, LP, PY
	NeuronTypes = 3

	// MembraneChans is the number of membrane conductance channels per neuron
	MembraneChans = 8

	// SynChans is the number of synapses in the circuit
	SynChans = 7

	// Q10SynChans is the number of synaptic transmitter types with separate
	// Q10 coefficients: glutamate, choline
	Q10SynChans = 2
)

// Group keys recognized in mask customization configs.
const (
	MembraneGbar = "membrane_gbar"
	Q10GbarMem   = "Q10_gbar_mem"
	Q10GbarSyn   = "Q10_gbar_syn"
	Q10TauM      = "Q10_tau_m"
	Q10TauH      = "Q10_tau_h"
	Q10TauCaBuff = "Q10_tau_CaBuff"
	Q10TauSyn    = "Q10_tau_syn"
)

// MaskKeys lists the recognized mask group keys, in canonical order.
// The synaptic conductance group has no key: all 7 synapses are always
// part of the prior.
var MaskKeys = []string{
	MembraneGbar,
	Q10GbarMem,
	Q10GbarSyn,
	Q10TauM,
	Q10TauH,
	Q10TauCaBuff,
	Q10TauSyn,
}
