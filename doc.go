// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pyloric is the overall repository for the pyloric network prior
construction code implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* catalog: the static reference data for the circuit parameters (published
physiological ranges for membrane and synaptic conductances and Q10
temperature-sensitivity coefficients), together with the per-group selection
masks that determine which parameters participate in the prior.

* boxuniform: a multivariate uniform distribution over an axis-aligned box,
with independent draws and log-density per dimension.

* prior: computes the lower and upper bounds for all selected circuit
parameters and wraps them into a named, sampleable prior distribution,
with samples returned as labeled etable tables.

* examples: these compile into runnable programs.  examples/sampleprior
draws samples from the default prior and writes them as tab-separated values.
*/
package pyloric
