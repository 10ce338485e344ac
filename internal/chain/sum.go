// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"gonum.org/v1/gonum/mat"
)

// Sum collapses a vector to a scalar by summing its components.
//
// The output dimension is always 1; for uniformity with the other layers
// the scalar is carried as a length-1 vector (Value returns it as a
// float64). The derivative of a sum is constant, so the local Jacobian
// is the 1×n all-ones row regardless of the forwarded values, and no
// activation state is cached beyond the forwarded flag.
type Sum struct {
	n    int
	y    *mat.VecDense // output buffer, [1]
	ones *mat.Dense    // local Jacobian, [1, n]
	fwd  bool
}

// NewSum creates a sum-reduction layer over vectors of length n.
func NewSum(n int) *Sum {
	ones := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		ones.Set(0, j, 1)
	}

	return &Sum{
		n:    n,
		y:    mat.NewVecDense(1, nil),
		ones: ones,
	}
}

// InDim returns the input dimension n.
func (s *Sum) InDim() int { return s.n }

// OutDim returns 1.
func (s *Sum) OutDim() int { return 1 }

// Forward sums the components of x into the length-1 output buffer.
func (s *Sum) Forward(x *mat.VecDense) *mat.VecDense {
	checkInDim("Sum", x, s.n)

	s.y.SetVec(0, mat.Sum(x))
	s.fwd = true
	return s.y
}

// Value returns the scalar result of the most recent Forward call.
func (s *Sum) Value() float64 { return s.y.AtVec(0) }

// Forwarded reports whether a forward pass has happened.
func (s *Sum) Forwarded() bool { return s.fwd }

// Reset drops the forwarded state.
func (s *Sum) Reset() { s.fwd = false }

// jacobian composes the all-ones row with the predecessor's accumulated
// Jacobian.
func (s *Sum) jacobian(dst *mat.Dense, prev mat.Matrix) {
	if prev == nil {
		dst.Copy(s.ones)
		return
	}
	dst.Mul(s.ones, prev)
}
