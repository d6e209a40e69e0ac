// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

// NeuronNames are the neuron type names, in row order of the membrane
// conductance tables.
var NeuronNames = [NeuronTypes]string{"PM", "LP", "PY"}

// ChanNames are the membrane conductance channel names, in column order
// of the membrane conductance tables.
var ChanNames = [MembraneChans]string{"Na", "CaT", "CaS", "A", "KCa", "Kd", "H", "Leak"}

// SynNames are the synapse names, in order of the synaptic conductance
// parameters.
var SynNames = [SynChans]string{"AB-LP", "PD-LP", "AB-PY", "PD-PY", "LP-PD", "LP-PY", "PY-LP"}

// Q10SynNames are the transmitter type names for the synaptic Q10 groups.
var Q10SynNames = [Q10SynChans]string{"Glut", "Chol"}

// Type-name labels for the non-membrane parameter groups.
const (
	SynTypeName     = "Synapses"
	Q10GbarTypeName = "Q10 gbar"
	Q10TauTypeName  = "Q10 tau"
)

// Member labels for the scalar Q10 time-constant groups.
const (
	Q10TauMChan      = "m"
	Q10TauHChan      = "h"
	Q10TauCaBuffChan = "CaBuff"
)
