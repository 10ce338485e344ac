// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package chain computes forward outputs and exact input Jacobians for
// fixed linear sequences of differentiable layers, by reverse-mode
// accumulation.
//
// # Overview
//
// A chain is built once from a closed set of layer variants — Affine
// (W·x + b), Activation (a scalar function applied componentwise) and
// Sum (vector to scalar) — with all dimensions validated at
// construction. After that, Forward and Backward run with zero heap
// allocation: every buffer, including the per-layer composed-Jacobian
// matrices, is allocated up front. This targets small latency-critical
// paths where the transformation sequence never changes.
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/born-ml/adiff/chain"
//	)
//
//	func main() {
//	    w := mat.NewDense(1, 2, []float64{1, 2})
//	    affine, _ := chain.NewAffine(w, mat.NewVecDense(1, nil))
//
//	    c, err := chain.New(affine, chain.NewActivation(1, chain.Tanh))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    y := c.Forward(mat.NewVecDense(2, []float64{3, 4}))
//	    jac, err := c.Backward() // d(y)/d(x), shape [1, 2]
//	}
//
// # Backward Semantics
//
// Backward returns the Jacobian of the chain output with respect to the
// input of the most recent Forward call. Calling it on a chain that has
// not been forwarded — or whose weights were replaced since the last
// forward pass — fails with ErrNotForwarded. NaN and Inf propagate as
// ordinary floating-point values.
//
// # Concurrency
//
// A chain instance is not safe for concurrent use; callers sequence
// Forward and Backward externally.
package chain
