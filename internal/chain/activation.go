// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Function is a differentiable scalar function and its derivative,
// applied componentwise by an Activation layer.
//
// Both closures must be pure: the layer evaluates Deriv against the
// cached pre-activation input during the backward pass, possibly long
// after the forward pass that cached it.
type Function struct {
	// Eval computes f(u).
	Eval func(u float64) float64
	// Deriv computes f'(u).
	Deriv func(u float64) float64
}

// Tanh is the hyperbolic tangent activation: f(u) = tanh(u),
// f'(u) = 1 - tanh(u)².
var Tanh = Function{
	Eval: math.Tanh,
	Deriv: func(u float64) float64 {
		t := math.Tanh(u)
		return 1 - t*t
	},
}

// Sigmoid is the logistic activation: f(u) = 1/(1+exp(-u)),
// f'(u) = f(u)·(1-f(u)).
var Sigmoid = Function{
	Eval: sigmoid,
	Deriv: func(u float64) float64 {
		s := sigmoid(u)
		return s * (1 - s)
	},
}

// ReLU is the rectified linear activation: f(u) = max(0, u).
// The derivative at 0 is taken as 0 (the usual subgradient choice).
var ReLU = Function{
	Eval: func(u float64) float64 {
		if u > 0 {
			return u
		}
		return 0
	},
	Deriv: func(u float64) float64 {
		if u > 0 {
			return 1
		}
		return 0
	},
}

func sigmoid(u float64) float64 {
	return 1 / (1 + math.Exp(-u))
}

// Activation applies a scalar function componentwise.
//
// Because each output component depends only on the matching input
// component, the local Jacobian is the diagonal matrix diag(f'(x)),
// evaluated at the most recently forwarded input x. The layer caches
// that pre-activation input, which is sufficient to evaluate the
// derivative of any f expressible via its argument.
//
// Input and output dimensions are equal.
type Activation struct {
	n   int
	fn  Function
	x   *mat.VecDense  // cached pre-activation input, [n]
	y   *mat.VecDense  // output buffer, [n]
	d   *mat.DiagDense // local Jacobian scratch, [n, n]
	fwd bool
}

// NewActivation creates an activation layer of dimension n applying fn.
func NewActivation(n int, fn Function) *Activation {
	return &Activation{
		n:  n,
		fn: fn,
		x:  mat.NewVecDense(n, nil),
		y:  mat.NewVecDense(n, nil),
		d:  mat.NewDiagDense(n, nil),
	}
}

// InDim returns the dimension n.
func (l *Activation) InDim() int { return l.n }

// OutDim returns the dimension n.
func (l *Activation) OutDim() int { return l.n }

// Forward caches x and applies f componentwise into the output buffer.
func (l *Activation) Forward(x *mat.VecDense) *mat.VecDense {
	checkInDim("Activation", x, l.n)

	l.x.CopyVec(x)
	for i := 0; i < l.n; i++ {
		l.y.SetVec(i, l.fn.Eval(l.x.AtVec(i)))
	}
	l.fwd = true
	return l.y
}

// Forwarded reports whether the layer holds a cached input.
func (l *Activation) Forwarded() bool { return l.fwd }

// Reset drops the cached input.
func (l *Activation) Reset() { l.fwd = false }

// jacobian composes diag(f'(cached input)) with the predecessor's
// accumulated Jacobian.
func (l *Activation) jacobian(dst *mat.Dense, prev mat.Matrix) {
	for i := 0; i < l.n; i++ {
		l.d.SetDiag(i, l.fn.Deriv(l.x.AtVec(i)))
	}
	if prev == nil {
		dst.Copy(l.d)
		return
	}
	dst.Mul(l.d, prev)
}
