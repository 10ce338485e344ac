// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Affine implements a fully connected layer without activation.
//
// Performs the transformation: y = W·x + b
// where:
//   - x is the input vector of length n (in dimension)
//   - W is the weight matrix with shape [m, n]
//   - b is the bias vector of length m
//   - y is the output vector of length m (out dimension)
//
// The local Jacobian of an affine map is W itself, independent of the
// input, so the layer caches no activation values — it only records that
// a forward pass happened.
//
// Note: many NN libraries use row vectors for affine transforms
// (i.e. x·W + b); make sure W is not transposed when loading weights
// from such a source.
//
// Example:
//
//	w := mat.NewDense(1, 2, []float64{1, 2})
//	b := mat.NewVecDense(1, nil)
//	layer, err := chain.NewAffine(w, b)
type Affine struct {
	in  int
	out int
	w   *mat.Dense    // [out, in]
	b   *mat.VecDense // [out]
	y   *mat.VecDense // output buffer, [out]
	fwd bool
}

// NewAffine creates an affine layer owning copies of w and b.
//
// Returns ErrShapeMismatch if the row count of w differs from the length
// of b. The dimensions of w fix the layer's input and output dimensions
// for its lifetime.
func NewAffine(w *mat.Dense, b *mat.VecDense) (*Affine, error) {
	m, n := w.Dims()
	if b.Len() != m {
		return nil, fmt.Errorf("affine: weight rows %d, bias length %d: %w", m, b.Len(), ErrShapeMismatch)
	}

	return &Affine{
		in:  n,
		out: m,
		w:   mat.DenseCopyOf(w),
		b:   mat.VecDenseCopyOf(b),
		y:   mat.NewVecDense(m, nil),
	}, nil
}

// InDim returns the input dimension n.
func (a *Affine) InDim() int { return a.in }

// OutDim returns the output dimension m.
func (a *Affine) OutDim() int { return a.out }

// Forward computes W·x + b into the layer's output buffer.
func (a *Affine) Forward(x *mat.VecDense) *mat.VecDense {
	checkInDim("Affine", x, a.in)

	a.y.MulVec(a.w, x)
	a.y.AddVec(a.y, a.b)
	a.fwd = true
	return a.y
}

// SetWeights replaces the layer's parameters with copies of w and b.
//
// The new parameters must match the layer's declared dimensions;
// ErrShapeMismatch otherwise. Replacing weights invalidates any cached
// forward state: the owning chain must be forwarded again before its
// next backward pass.
func (a *Affine) SetWeights(w *mat.Dense, b *mat.VecDense) error {
	m, n := w.Dims()
	if m != a.out || n != a.in {
		return fmt.Errorf("affine: got weights [%d,%d], layer is [%d,%d]: %w", m, n, a.out, a.in, ErrShapeMismatch)
	}
	if b.Len() != a.out {
		return fmt.Errorf("affine: got bias length %d, layer output is %d: %w", b.Len(), a.out, ErrShapeMismatch)
	}

	a.w.Copy(w)
	a.b.CopyVec(b)
	a.fwd = false
	return nil
}

// Forwarded reports whether a forward pass has happened since
// construction, Reset, or the last SetWeights call.
func (a *Affine) Forwarded() bool { return a.fwd }

// Reset drops the forwarded state.
func (a *Affine) Reset() { a.fwd = false }

// jacobian composes the local Jacobian W with the predecessor's
// accumulated Jacobian.
func (a *Affine) jacobian(dst *mat.Dense, prev mat.Matrix) {
	if prev == nil {
		dst.Copy(a.w)
		return
	}
	dst.Mul(a.w, prev)
}
