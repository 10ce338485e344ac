// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Chain is an ordered, strictly linear sequence of layers exposing a
// single forward/backward pair over the whole sequence.
//
// The chain owns its layers: the predecessor relationship is a position
// in the sequence, never a reference held by a layer, so no layer can
// outlive or dangle off another. Layer dimensions are validated once at
// construction; the composed-Jacobian buffer for every position is also
// allocated there, so Forward and Backward allocate nothing.
//
// A chain is not safe for concurrent use. Forward and Backward must be
// externally sequenced; wrap the chain in a mutex if multiple goroutines
// need to share one instance.
//
// Example:
//
//	w := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
//	affine, _ := chain.NewAffine(w, mat.NewVecDense(2, nil))
//	c, err := chain.New(affine, chain.NewActivation(2, chain.Tanh))
//	if err != nil { ... }
//
//	y := c.Forward(mat.NewVecDense(2, []float64{3, 4}))
//	jac, err := c.Backward() // d(y)/d(input), [2, 2]
type Chain struct {
	layers []Layer
	jacs   []*mat.Dense // jacs[i]: [layers[i].OutDim(), root InDim()]
}

// New builds a chain over layers, in order from root to leaf.
//
// Every adjacent pair must agree on dimensions: layer i's output
// dimension is layer i+1's input dimension. A disagreement is a
// configuration error reported as ErrShapeMismatch before any forward
// or backward call is possible. At least one layer is required.
//
// The chain takes ownership of the layers; driving a layer that is part
// of a chain directly is allowed (it is how single-layer use works) but
// sidesteps the chain's bookkeeping.
func New(layers ...Layer) (*Chain, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("chain: no layers: %w", ErrShapeMismatch)
	}

	for i := 1; i < len(layers); i++ {
		if out, in := layers[i-1].OutDim(), layers[i].InDim(); out != in {
			return nil, fmt.Errorf("chain: layer %d outputs %d values, layer %d expects %d: %w",
				i-1, out, i, in, ErrShapeMismatch)
		}
	}

	rootIn := layers[0].InDim()
	jacs := make([]*mat.Dense, len(layers))
	for i, l := range layers {
		jacs[i] = mat.NewDense(l.OutDim(), rootIn, nil)
	}

	return &Chain{layers: layers, jacs: jacs}, nil
}

// InDim returns the root layer's input dimension.
func (c *Chain) InDim() int { return c.layers[0].InDim() }

// OutDim returns the leaf layer's output dimension.
func (c *Chain) OutDim() int { return c.layers[len(c.layers)-1].OutDim() }

// Len returns the number of layers.
func (c *Chain) Len() int { return len(c.layers) }

// Layer returns the layer at position i, root first.
//
// Panics if i is out of bounds.
func (c *Chain) Layer(i int) Layer {
	if i < 0 || i >= len(c.layers) {
		panic("chain: layer index out of bounds")
	}
	return c.layers[i]
}

// Forward pushes x through every layer in order and returns the leaf
// output.
//
// Each layer caches what its own derivative needs, overwriting the
// state of any previous pass. The returned vector is the leaf layer's
// internal buffer, overwritten by the next Forward call. Panics if x
// does not have length InDim.
func (c *Chain) Forward(x *mat.VecDense) *mat.VecDense {
	for _, l := range c.layers {
		x = l.Forward(x)
	}
	return x
}

// Backward computes the Jacobian of the chain's output with respect to
// the input of the most recent Forward call.
//
// The accumulation runs from root to leaf: the root contributes its
// local Jacobian directly (d input / d input is the identity), and each
// subsequent layer left-multiplies the running product by its own local
// Jacobian — the chain rule. The result has OutDim rows and InDim
// columns.
//
// Returns ErrNotForwarded if any layer lacks activation state, which
// covers both a chain that was never forwarded and one invalidated by a
// SetWeights call since its last Forward. The returned matrix is owned
// by the chain and valid until the next Backward call.
func (c *Chain) Backward() (*mat.Dense, error) {
	for i, l := range c.layers {
		if !l.Forwarded() {
			return nil, fmt.Errorf("chain: layer %d has no forward state: %w", i, ErrNotForwarded)
		}
	}

	var prev mat.Matrix
	for i, l := range c.layers {
		l.jacobian(c.jacs[i], prev)
		prev = c.jacs[i]
	}
	return c.jacs[len(c.jacs)-1], nil
}

// Reset drops the cached activation state of every layer, forcing a
// Forward call before the next Backward.
func (c *Chain) Reset() {
	for _, l := range c.layers {
		l.Reset()
	}
}
