// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/adiff/internal/chain"
)

// checkJacobian compares the chain's analytic Jacobian at x against a
// central-difference numeric approximation.
func checkJacobian(t *testing.T, c *chain.Chain, x []float64) {
	t.Helper()
	require.Len(t, x, c.InDim())

	c.Forward(mat.NewVecDense(len(x), x))
	jac, err := c.Backward()
	require.NoError(t, err)
	analytic := mat.DenseCopyOf(jac)

	numeric := mat.NewDense(c.OutDim(), c.InDim(), nil)
	fd.Jacobian(numeric, func(y, x []float64) {
		out := c.Forward(mat.NewVecDense(len(x), x))
		for i := range y {
			y[i] = out.AtVec(i)
		}
	}, x, &fd.JacobianSettings{Formula: fd.Central})

	for i := 0; i < c.OutDim(); i++ {
		require.True(t,
			floats.EqualApprox(analytic.RawRowView(i), numeric.RawRowView(i), 1e-6),
			"row %d: analytic %v, numeric %v", i, analytic.RawRowView(i), numeric.RawRowView(i))
	}
}

// TestJacobian_MatchesFiniteDifferences cross-checks the reverse-mode
// Jacobian against finite differences for every layer variant and for
// mixed chains.
func TestJacobian_MatchesFiniteDifferences(t *testing.T) {
	t.Run("root affine", func(t *testing.T) {
		c, err := chain.New(
			mustAffine(t, 3, 2, []float64{0.5, -1.2, 2.0, 0.3, -0.7, 1.1}, []float64{0.1, -0.2, 0.4}),
		)
		require.NoError(t, err)
		checkJacobian(t, c, []float64{0.3, -0.8})
	})

	t.Run("root tanh", func(t *testing.T) {
		c, err := chain.New(chain.NewActivation(3, chain.Tanh))
		require.NoError(t, err)
		checkJacobian(t, c, []float64{-0.5, 0.1, 0.9})
	})

	t.Run("root sigmoid", func(t *testing.T) {
		c, err := chain.New(chain.NewActivation(2, chain.Sigmoid))
		require.NoError(t, err)
		checkJacobian(t, c, []float64{0.4, -1.3})
	})

	t.Run("affine tanh", func(t *testing.T) {
		c, err := chain.New(
			mustAffine(t, 2, 2, []float64{1.5, -0.4, 0.2, 0.9}, []float64{0.3, -0.1}),
			chain.NewActivation(2, chain.Tanh),
		)
		require.NoError(t, err)
		checkJacobian(t, c, []float64{0.25, -0.6})
	})

	t.Run("affine tanh affine tanh", func(t *testing.T) {
		c, err := chain.New(
			mustAffine(t, 3, 2, []float64{0.4, 0.1, -0.9, 0.7, 0.2, -0.3}, []float64{0.05, -0.15, 0.25}),
			chain.NewActivation(3, chain.Tanh),
			mustAffine(t, 2, 3, []float64{0.6, -0.2, 0.8, -0.5, 0.3, 0.1}, []float64{0, 0.2}),
			chain.NewActivation(2, chain.Tanh),
		)
		require.NoError(t, err)
		checkJacobian(t, c, []float64{0.7, -0.3})
	})

	t.Run("affine sigmoid sum", func(t *testing.T) {
		c, err := chain.New(
			mustAffine(t, 4, 3, []float64{
				0.2, -0.5, 0.7,
				0.9, 0.1, -0.3,
				-0.6, 0.4, 0.8,
				0.3, -0.2, 0.5,
			}, []float64{0.1, 0.2, 0.3, 0.4}),
			chain.NewActivation(4, chain.Sigmoid),
			chain.NewSum(4),
		)
		require.NoError(t, err)
		checkJacobian(t, c, []float64{-0.4, 0.9, 0.2})
	})
}
