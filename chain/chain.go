// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/adiff/internal/chain"
)

// Chain is an ordered linear sequence of layers with one forward/backward
// pair over the whole sequence.
type Chain = chain.Chain

// Layer is the unit of computation in a chain. The concrete set is
// closed: Affine, Activation and Sum.
type Layer = chain.Layer

// Affine computes y = W·x + b.
type Affine = chain.Affine

// Activation applies a scalar function componentwise.
type Activation = chain.Activation

// Sum collapses a vector to a scalar by summation.
type Sum = chain.Sum

// Function is a differentiable scalar function and its derivative.
type Function = chain.Function

// Built-in activation functions.
var (
	Tanh    = chain.Tanh
	Sigmoid = chain.Sigmoid
	ReLU    = chain.ReLU
)

// Sentinel errors; match with errors.Is.
var (
	ErrShapeMismatch = chain.ErrShapeMismatch
	ErrNotForwarded  = chain.ErrNotForwarded
)

// New builds a chain over layers, root first, validating that every
// adjacent pair agrees on dimensions.
func New(layers ...Layer) (*Chain, error) {
	return chain.New(layers...)
}

// NewAffine creates an affine layer owning copies of w and b.
func NewAffine(w *mat.Dense, b *mat.VecDense) (*Affine, error) {
	return chain.NewAffine(w, b)
}

// NewActivation creates an activation layer of dimension n applying fn.
func NewActivation(n int, fn Function) *Activation {
	return chain.NewActivation(n, fn)
}

// NewSum creates a sum-reduction layer over vectors of length n.
func NewSum(n int) *Sum {
	return chain.NewSum(n)
}
