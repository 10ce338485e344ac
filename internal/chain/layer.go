// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Layer is the unit of computation in a chain.
//
// Every layer maps a fixed-size input vector to a fixed-size output vector
// and knows its own local Jacobian with respect to its input, evaluated at
// the most recently forwarded point. The concrete set of layers is closed:
// Affine, Activation and Sum. The jacobian method is unexported to keep it
// that way — the chain-rule composition in Chain.Backward relies on every
// variant honoring the same buffer discipline.
//
// A layer owns its parameters (if any) and whatever activation state its
// derivative needs. Forward overwrites that state; only the latest call is
// ever reflected by a backward pass.
type Layer interface {
	// InDim returns the layer's input dimension.
	InDim() int

	// OutDim returns the layer's output dimension.
	OutDim() int

	// Forward evaluates the layer at x and returns the output vector.
	//
	// The returned vector is an internal buffer owned by the layer,
	// overwritten by the next Forward call. Panics if x does not have
	// length InDim — input shapes are fixed at construction and a
	// mis-sized vector is a caller bug, not a runtime condition.
	Forward(x *mat.VecDense) *mat.VecDense

	// Forwarded reports whether the layer holds activation state from a
	// Forward call, i.e. whether a backward pass is currently defined.
	Forwarded() bool

	// Reset drops any cached activation state, returning the layer to
	// its freshly constructed condition.
	Reset()

	// jacobian writes the layer's accumulated Jacobian into dst.
	//
	// prev is the predecessor's accumulated Jacobian with respect to the
	// chain's root input; dst receives local·prev. A nil prev marks the
	// root base case: dst receives the local Jacobian itself.
	jacobian(dst *mat.Dense, prev mat.Matrix)
}

// checkInDim panics unless x has the expected length. Shared by all
// Forward implementations.
func checkInDim(name string, x *mat.VecDense, want int) {
	if x.Len() != want {
		panic(fmt.Sprintf("%s.Forward: expected input of length %d, got %d", name, want, x.Len()))
	}
}
