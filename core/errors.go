// SPDX-License-Identifier: MIT
// Package: vdconquest/core
//
// errors.go — sentinel errors for the adjacency store.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context with %w at the call site.
package core

import "errors"

// Sentinel errors for the mesh adjacency store.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent or
	// retired vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrGateExists indicates add_face would overwrite an existing gate,
	// which signals non-CCW input or a duplicate triangle (MalformedInput).
	ErrGateExists = errors.New("core: gate already exists")

	// ErrGateNotFound indicates a lookup against a gate that is not present.
	// Traversal code treats this as an ordinary skip case, never as a fault.
	ErrGateNotFound = errors.New("core: gate not found")

	// ErrNotInRing indicates rotate/replace/splice addressed a vertex that
	// is not present in the target ring.
	ErrNotInRing = errors.New("core: vertex not in ring")

	// ErrMalformedInput indicates the input face list references missing
	// vertices, is not consistently oriented, or produces duplicate gates.
	ErrMalformedInput = errors.New("core: malformed input mesh")

	// ErrInvariantBreach indicates a ring length/valence mismatch or gate
	// table asymmetry was detected after a rewrite. Fatal: abort the pass.
	ErrInvariantBreach = errors.New("core: adjacency invariant breach")
)
