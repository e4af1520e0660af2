// SPDX-License-Identifier: MIT
// Package: vdconquest/builder
//
// fixtures.go — meshes that exercise a specific recovery path rather than
// a Platonic solid's clean combinatorics.
package builder

import "github.com/vdconquest/mesh/core"

// NonManifoldFanMesh returns two tetrahedra sharing exactly one vertex
// (id 1), before core.BuildFromFaces's duplication rule runs. Vertex 1's
// incident faces form two disjoint triangle fans rather than a single
// cycle, so BuildFromFaces must mint a duplicate vertex and give each fan
// its own ring (spec §8 scenario 6; see core.BuildFromFaces).
func NonManifoldFanMesh() ([]core.Vec3, [][3]int) {
	positions := []core.Vec3{
		{X: 0, Y: 0, Z: 0},  // 1: shared apex
		{X: 1, Y: 0, Z: 0},  // 2
		{X: 0, Y: 1, Z: 0},  // 3
		{X: 0, Y: 0, Z: 1},  // 4
		{X: -1, Y: 0, Z: 0}, // 5
		{X: 0, Y: -1, Z: 0}, // 6
		{X: 0, Y: 0, Z: -1}, // 7
	}
	faces := [][3]int{
		{1, 2, 3}, {1, 3, 4}, {1, 4, 2}, {2, 4, 3}, // first fan's tetrahedron
		{1, 5, 6}, {1, 6, 7}, {1, 7, 5}, {5, 7, 6}, // second fan's tetrahedron
	}
	return positions, faces
}
