// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "fmt"

// Masks records, per parameter group, which scalar circuit parameters are
// part of the prior's support (true) and which are excluded and treated
// as externally fixed (false).  Shapes are fixed at compile time to match
// the catalog tables.  The synaptic conductance group has no mask: all 7
// synapses are always active.
type Masks struct {

	// maximal membrane conductances, one row per neuron type, one column per channel
	MembraneGbar [NeuronTypes][MembraneChans]bool

	// Q10 coefficients of the membrane conductances, one per channel
	Q10GbarMem [MembraneChans]bool

	// Q10 coefficients of the synaptic conductances, per transmitter type
	Q10GbarSyn [Q10SynChans]bool

	// Q10 coefficient of the activation time constant
	Q10TauM [1]bool

	// Q10 coefficient of the inactivation time constant
	Q10TauH [1]bool

	// Q10 coefficient of the calcium buffering time constant
	Q10TauCaBuff [1]bool

	// Q10 coefficients of the synaptic time constants, per transmitter type
	Q10TauSyn [Q10SynChans]bool
}

// Defaults sets the default selection: all membrane conductances active,
// all Q10 coefficients excluded.
func (mk *Masks) Defaults() {
	for ti := range mk.MembraneGbar {
		for ci := range mk.MembraneGbar[ti] {
			mk.MembraneGbar[ti][ci] = true
		}
	}
	mk.Q10GbarMem = [MembraneChans]bool{}
	mk.Q10GbarSyn = [Q10SynChans]bool{}
	mk.Q10TauM = [1]bool{}
	mk.Q10TauH = [1]bool{}
	mk.Q10TauCaBuff = [1]bool{}
	mk.Q10TauSyn = [Q10SynChans]bool{}
}

// ApplyConfig overwrites masks from a loosely-typed customization config,
// keyed by group (see MaskKeys).  Each value may be a single bool, which
// broadcasts to the group's full shape, or a (nested) slice of bools whose
// shape must equal the group's shape exactly.  Groups absent from the
// config keep their current values.  Unrecognized keys and shape
// mismatches are errors.
func (mk *Masks) ApplyConfig(cfg map[string]any) error {
	for key, val := range cfg {
		var err error
		switch key {
		case MembraneGbar:
			err = coerceRows(key, val, mk.MembraneGbar[:])
		case Q10GbarMem:
			err = coerceFlat(key, val, mk.Q10GbarMem[:])
		case Q10GbarSyn:
			err = coerceFlat(key, val, mk.Q10GbarSyn[:])
		case Q10TauM:
			err = coerceFlat(key, val, mk.Q10TauM[:])
		case Q10TauH:
			err = coerceFlat(key, val, mk.Q10TauH[:])
		case Q10TauCaBuff:
			err = coerceFlat(key, val, mk.Q10TauCaBuff[:])
		case Q10TauSyn:
			err = coerceFlat(key, val, mk.Q10TauSyn[:])
		default:
			err = fmt.Errorf("catalog.Masks: unrecognized parameter group key: %q", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// NumActive returns the total number of active parameters implied by the
// masks: selected membrane conductances, the 7 always-active synaptic
// conductances, and selected Q10 coefficients.
func (mk *Masks) NumActive() int {
	n := SynChans
	for ti := range mk.MembraneGbar {
		n += countTrue(mk.MembraneGbar[ti][:])
	}
	n += countTrue(mk.Q10GbarMem[:])
	n += countTrue(mk.Q10GbarSyn[:])
	n += countTrue(mk.Q10TauM[:])
	n += countTrue(mk.Q10TauH[:])
	n += countTrue(mk.Q10TauCaBuff[:])
	n += countTrue(mk.Q10TauSyn[:])
	return n
}

func countTrue(ms []bool) int {
	n := 0
	for _, m := range ms {
		if m {
			n++
		}
	}
	return n
}

// coerceFlat fills dst from a scalar bool (broadcast) or a flat bool slice
// of exactly matching length.
func coerceFlat(key string, val any, dst []bool) error {
	if b, ok := val.(bool); ok {
		for i := range dst {
			dst[i] = b
		}
		return nil
	}
	bs, ok := boolsOf(val)
	if !ok || len(bs) != len(dst) {
		return fmt.Errorf("catalog.Masks: %s: cannot coerce value %v to shape (%d)", key, val, len(dst))
	}
	copy(dst, bs)
	return nil
}

// coerceRows fills dst from a scalar bool (broadcast) or a nested slice
// whose row count and row lengths exactly match.
func coerceRows(key string, val any, dst [][MembraneChans]bool) error {
	if b, ok := val.(bool); ok {
		for ri := range dst {
			for ci := range dst[ri] {
				dst[ri][ci] = b
			}
		}
		return nil
	}
	rows, ok := rowsOf(val)
	if !ok || len(rows) != len(dst) {
		return fmt.Errorf("catalog.Masks: %s: cannot coerce value %v to shape (%d, %d)", key, val, len(dst), MembraneChans)
	}
	for ri, row := range rows {
		bs, ok := boolsOf(row)
		if !ok || len(bs) != MembraneChans {
			return fmt.Errorf("catalog.Masks: %s: row %d: cannot coerce value %v to shape (%d)", key, ri, row, MembraneChans)
		}
		copy(dst[ri][:], bs)
	}
	return nil
}

// boolsOf extracts a flat bool slice from []bool or []any of bools.
func boolsOf(val any) ([]bool, bool) {
	switch vl := val.(type) {
	case []bool:
		return vl, true
	case []any:
		bs := make([]bool, len(vl))
		for i, v := range vl {
			b, ok := v.(bool)
			if !ok {
				return nil, false
			}
			bs[i] = b
		}
		return bs, true
	}
	return nil, false
}

// rowsOf extracts the rows of a nested slice value.
func rowsOf(val any) ([]any, bool) {
	switch vl := val.(type) {
	case [][]bool:
		rows := make([]any, len(vl))
		for i, r := range vl {
			rows[i] = r
		}
		return rows, true
	case []any:
		return vl, true
	}
	return nil, false
}
