// SPDX-License-Identifier: MIT
// Package: vdconquest/builder
package builder

// Name enumerates the canonical meshes this package can produce.
type Name int

const (
	// Tetrahedron is the 4-vertex, 4-face regular tetrahedron: every
	// vertex has valence 3 (spec §8 scenario 1).
	Tetrahedron Name = iota
	// Octahedron is the 6-vertex, 8-face regular octahedron: every vertex
	// has valence 4 (spec §8 scenario 2).
	Octahedron
	// Icosahedron is the 12-vertex, 20-face regular icosahedron: every
	// vertex has valence 5 (spec §8 scenario 3).
	Icosahedron
	// NonManifoldFan is two tetrahedra sharing exactly one vertex before
	// core.BuildFromFaces's duplication rule runs (spec §8 scenario 6).
	NonManifoldFan
)

// String renders n for diagnostics.
func (n Name) String() string {
	switch n {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	case NonManifoldFan:
		return "NonManifoldFan"
	default:
		return "Unknown"
	}
}
