// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"
	"testing"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/pyloric/catalog"
	"golang.org/x/exp/rand"
)

func TestNewDefault(t *testing.T) {
	cfg := Config{}
	cfg.Defaults()
	pr, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if pr.NumParams() != 31 {
		t.Errorf("default NumParams: %d != 31", pr.NumParams())
	}
	lbs := pr.Labels()
	if lbs[0] != "PM Na" || lbs[24] != "Synapses AB-LP" {
		t.Errorf("labels: %q, %q != %q, %q", lbs[0], lbs[24], "PM Na", "Synapses AB-LP")
	}
}

func TestNewErrors(t *testing.T) {
	cfg := Config{}
	cfg.Defaults()
	cfg.Customization = map[string]any{"membran_gbar": true}
	if _, err := New(cfg); err == nil {
		t.Errorf("typo in customization key should fail construction")
	}

	cfg = Config{}
	cfg.Defaults()
	cfg.Lower = make([]float64, 5) // masks select 31
	if _, err := New(cfg); err == nil {
		t.Errorf("explicit lower bound with wrong length should fail construction")
	}

	cfg = Config{}
	cfg.Defaults()
	cfg.Upper = make([]float64, 30)
	if _, err := New(cfg); err == nil {
		t.Errorf("explicit upper bound with wrong length should fail construction")
	}
}

func TestExplicitBounds(t *testing.T) {
	lower := make([]float64, 31)
	upper := make([]float64, 31)
	for i := range lower {
		lower[i] = float64(i)
		upper[i] = float64(i) + 1
	}
	cfg := Config{}
	cfg.Defaults()
	cfg.Lower = lower
	cfg.Upper = upper
	pr, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range lower {
		if pr.Lower[i] != lower[i] || pr.Upper[i] != upper[i] {
			t.Errorf("explicit bounds not used at %d: [%v, %v]", i, pr.Lower[i], pr.Upper[i])
		}
	}
}

func TestSample(t *testing.T) {
	cfg := Config{}
	cfg.Defaults()
	cfg.Src = rand.NewSource(17)
	pr, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	lbs := pr.Labels()
	for _, n := range []int{1, 10, 1000} {
		dt := pr.Sample(n)
		if dt.Rows != n {
			t.Fatalf("sample rows: %d != %d", dt.Rows, n)
		}
		if dt.NumCols() != pr.NumParams() {
			t.Fatalf("sample cols: %d != %d", dt.NumCols(), pr.NumParams())
		}
		for ri := 0; ri < n; ri++ {
			for ci, lb := range lbs {
				v := dt.CellFloat(lb, ri)
				if v < pr.Lower[ci] || v > pr.Upper[ci] {
					t.Errorf("sample %d col %s: %v outside [%v, %v]", ri, lb, v, pr.Lower[ci], pr.Upper[ci])
				}
			}
		}
	}
}

func TestLogProb(t *testing.T) {
	cfg := Config{}
	cfg.Defaults()
	cfg.Src = rand.NewSource(3)
	pr, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	dt := pr.Sample(100)
	lps, err := pr.LogProb(dt)
	if err != nil {
		t.Fatal(err)
	}
	if len(lps) != 100 {
		t.Fatalf("log probs length: %d != 100", len(lps))
	}
	cor := pr.LogDensity()
	for ri, lp := range lps {
		if math.IsInf(lp, 0) || math.IsNaN(lp) {
			t.Errorf("row %d: log prob of sampled point not finite: %v", ri, lp)
		}
		if dif := math.Abs(lp - cor); dif > difTol {
			t.Errorf("row %d: log prob %v != %v, dif: %v", ri, lp, cor, dif)
		}
	}
}

func TestLogProbOutOfBox(t *testing.T) {
	cfg := Config{}
	cfg.Defaults()
	pr, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	theta := make([]float64, pr.NumParams())
	for i := range theta {
		theta[i] = pr.Lower[i]
	}
	lp, err := pr.LogProbVec(theta)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsInf(lp, -1) {
		t.Errorf("boundary point should be in the box")
	}
	theta[0] = pr.Lower[0] - 1
	lp, err = pr.LogProbVec(theta)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(lp, -1) {
		t.Errorf("out-of-box log prob: %v != -Inf", lp)
	}
	if _, err = pr.LogProbVec(theta[:5]); err == nil {
		t.Errorf("short query vector should be an error")
	}
}

func TestLogProbColMismatch(t *testing.T) {
	cfg := Config{}
	cfg.Defaults()
	pr, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sch := etable.Schema{{Name: "NotAParam", Type: etensor.FLOAT64}}
	dt := &etable.Table{}
	dt.SetFromSchema(sch, 1)
	if _, err := pr.LogProb(dt); err == nil {
		t.Errorf("table with missing parameter columns should be an error")
	}
}

func TestMembraneExcludedPrior(t *testing.T) {
	cfg := Config{}
	cfg.Defaults()
	cfg.Customization = map[string]any{catalog.MembraneGbar: false}
	pr, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if pr.NumParams() != 7 {
		t.Fatalf("membrane-excluded NumParams: %d != 7", pr.NumParams())
	}
	for i, tn := range pr.TypeNames {
		if tn != catalog.SynTypeName {
			t.Errorf("entry %d type: %s != %s", i, tn, catalog.SynTypeName)
		}
	}
}
