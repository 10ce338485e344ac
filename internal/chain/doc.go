// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package chain implements reverse-mode differentiation over a fixed
// linear sequence of layers.
//
// Unlike a tape-based autodiff system, nothing is recorded at run time:
// the sequence of transformations and every dimension are fixed when the
// chain is built, each layer knows its own local Jacobian, and a
// backward pass is a single root-to-leaf product of those Jacobians.
// All buffers are allocated at construction, so forward and backward
// passes allocate nothing — the point of the design is small,
// latency-critical paths where the network shape never changes.
//
// Dense arithmetic is delegated to gonum/mat; NaN and Inf propagate
// through both passes as ordinary floating-point values.
package chain
