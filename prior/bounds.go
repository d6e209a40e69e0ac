// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/pyloric/catalog"
)

// bounds accumulates the selected lower / upper bound values and the
// matching type / channel names, in the canonical group order: membrane
// conductances, synaptic conductances, Q10 gbar membrane, Q10 gbar
// synapse, Q10 tau m, Q10 tau h, Q10 tau CaBuff, Q10 tau synapse.
// Each group is processed in a single pass that emits bounds and names
// together, so the four slices cannot fall out of alignment.
type bounds struct {
	Lower     []float64
	Upper     []float64
	TypeNames []string
	ChanNames []string
}

// computeBounds returns the bounds and names for all parameters selected
// by the given masks, with synaptic conductance bounds optionally in
// natural-log space.
func computeBounds(mk *catalog.Masks, synLogSpace bool) *bounds {
	bd := &bounds{}
	bd.membraneGbar(mk)
	bd.synGbar(synLogSpace)
	bd.q10(catalog.Q10Gbar, catalog.Q10GbarTypeName, catalog.ChanNames[:], mk.Q10GbarMem[:])
	bd.q10(catalog.Q10Gbar, catalog.Q10GbarTypeName, catalog.Q10SynNames[:], mk.Q10GbarSyn[:])
	bd.q10(catalog.Q10Tau, catalog.Q10TauTypeName, []string{catalog.Q10TauMChan}, mk.Q10TauM[:])
	bd.q10(catalog.Q10Tau, catalog.Q10TauTypeName, []string{catalog.Q10TauHChan}, mk.Q10TauH[:])
	bd.q10(catalog.Q10Tau, catalog.Q10TauTypeName, []string{catalog.Q10TauCaBuffChan}, mk.Q10TauCaBuff[:])
	bd.q10(catalog.Q10Tau, catalog.Q10TauTypeName, catalog.Q10SynNames[:], mk.Q10TauSyn[:])
	return bd
}

// add appends one active parameter: its bound pair and its name pair.
func (bd *bounds) add(lower, upper float64, typeName, chanName string) {
	bd.Lower = append(bd.Lower, lower)
	bd.Upper = append(bd.Upper, upper)
	bd.TypeNames = append(bd.TypeNames, typeName)
	bd.ChanNames = append(bd.ChanNames, chanName)
}

// membraneGbar emits the masked membrane conductance bounds, row-major
// over neuron types and channels.  The reference tables and the padding
// vector are unit-scaled first and the padding applied after, preserving
// the exact floating point values of the reference bounds.  Padding is
// uniform across neuron types, and padded minima are clipped at zero:
// conductances cannot be negative.
func (bd *bounds) membraneGbar(mk *catalog.Masks) {
	for ti := 0; ti < catalog.NeuronTypes; ti++ {
		for ci := 0; ci < catalog.MembraneChans; ci++ {
			mn := catalog.MembraneGbarMins[ti][ci] * catalog.GbarUnits
			mx := catalog.MembraneGbarMaxs[ti][ci] * catalog.GbarUnits
			pad := catalog.MembraneGbarPad[ci] * catalog.GbarUnits
			mn -= pad
			mx += pad
			if mn < 0 {
				mn = 0
			}
			if mk.MembraneGbar[ti][ci] {
				bd.add(mn, mx, catalog.NeuronNames[ti], catalog.ChanNames[ci])
			}
		}
	}
}

// synGbar emits the synaptic conductance bounds.  All 7 synapses are
// always active.  In log space the sampler draws log-conductances; the
// caller is responsible for exponentiating if linear values are needed.
func (bd *bounds) synGbar(logSpace bool) {
	for si := 0; si < catalog.SynChans; si++ {
		mn := catalog.SynGbar.Min
		mx := catalog.SynGbar.Max
		if si == 0 {
			mx *= catalog.SynGbarFirstMaxScale
		}
		if logSpace {
			mn = math.Log(mn)
			mx = math.Log(mx)
		}
		bd.add(mn, mx, catalog.SynTypeName, catalog.SynNames[si])
	}
}

// q10 emits the masked bounds for one Q10 group: every member shares the
// group's range.  No padding, unit scaling, or log transform applies.
func (bd *bounds) q10(rng minmax.F64, typeName string, chanNames []string, mask []bool) {
	for i, on := range mask {
		if on {
			bd.add(rng.Min, rng.Max, typeName, chanNames[i])
		}
	}
}
