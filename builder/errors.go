// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w (method tag, edge ID, node ID).
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, layers, width) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrInvalidDocument indicates a graph document that fails structural
// validation (missing IDs, missing endpoints).
var ErrInvalidDocument = errors.New("builder: invalid graph document")

// ErrDuplicateNode indicates two nodes sharing one ID within a document.
// core.Build would silently keep the first; the boundary reports it.
var ErrDuplicateNode = errors.New("builder: duplicate node ID")

// ErrBadWeight indicates an edge whose weight cannot be resolved to a
// finite number.
var ErrBadWeight = errors.New("builder: edge weight is not a finite number")

// ErrDecode indicates malformed YAML/JSON input.
var ErrDecode = errors.New("builder: cannot decode graph document")

// ErrUnknownIDScheme indicates a node naming scheme that ParseIDScheme or
// Relabel cannot use.
var ErrUnknownIDScheme = errors.New("builder: unknown node ID scheme")
