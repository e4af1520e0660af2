// SPDX-License-Identifier: MIT
// Package: vdconquest/builder
//
// Package builder provides canonical, deterministic test meshes for the
// core engine: the Platonic solids the spec's boundary-behavior scenarios
// name (tetrahedron, octahedron, icosahedron) plus the non-manifold-fan
// fixture exercised by core.BuildFromFaces's vertex-duplication rule.
//
// Every constructor returns a (positions, faces) pair directly consumable
// by core.BuildFromFaces: 1-based vertex IDs, CCW-oriented triangles, no
// duplicate or degenerate faces. Vertex counts, valences and face counts
// are fixed by construction, not computed, so a caller asserting "valence
// 4 everywhere" against the octahedron is asserting a property of this
// file, not of the algorithm under test — which is the point: these are
// fixtures, not something under test themselves.
package builder
