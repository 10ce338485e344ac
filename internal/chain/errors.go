// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import "errors"

// Sentinel errors for chain construction and use.
// Raise sites wrap these with fmt.Errorf("...: %w", ...) to add
// the offending dimensions or layer indices.
var (
	// ErrShapeMismatch indicates that adjacent layers (or a layer's own
	// parameters) disagree on dimensions. Only possible at construction
	// or SetWeights time; shapes are fixed afterwards.
	ErrShapeMismatch = errors.New("layer dimensions disagree")

	// ErrNotForwarded indicates Backward was called on a chain with at
	// least one layer that has no cached activation state, either because
	// Forward was never called or because a weight update invalidated it.
	ErrNotForwarded = errors.New("backward before forward")
)
