// SPDX-License-Identifier: MIT
// Package: vdconquest/builder
//
// platonic.go — canonical vertex/face data for the three Platonic solids
// the spec's boundary-behavior scenarios name. Positions are illustrative
// (the engine never inspects them beyond carrying them through to V
// records); what the scenarios actually exercise is the combinatorics:
// exact valence, exact face count, and a fixed CCW orientation.
package builder

import (
	"math"

	"github.com/vdconquest/mesh/core"
)

// TetrahedronMesh returns the 4-vertex, 4-face regular tetrahedron: every
// vertex has valence 3, so a single Decimating Conquest pass removes
// exactly one of them (spec §8 scenario 1).
func TetrahedronMesh() ([]core.Vec3, [][3]int) {
	positions := []core.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	faces := [][3]int{
		{1, 2, 3},
		{1, 3, 4},
		{1, 4, 2},
		{2, 4, 3},
	}
	return positions, faces
}

// OctahedronMesh returns the 6-vertex, 8-face regular octahedron: every
// vertex has valence 4, so one Decimating Conquest pass removes two
// opposite vertices and the residual is a tetrahedron (spec §8 scenario
// 2). Vertices are the six unit points along the coordinate axes; faces
// are the eight octant triangles, each wound CCW as seen from outside.
func OctahedronMesh() ([]core.Vec3, [][3]int) {
	positions := []core.Vec3{
		{X: 1, Y: 0, Z: 0},  // 1: +X
		{X: -1, Y: 0, Z: 0}, // 2: -X
		{X: 0, Y: 1, Z: 0},  // 3: +Y
		{X: 0, Y: -1, Z: 0}, // 4: -Y
		{X: 0, Y: 0, Z: 1},  // 5: +Z
		{X: 0, Y: 0, Z: -1}, // 6: -Z
	}
	faces := [][3]int{
		{1, 3, 5}, {3, 2, 5}, {2, 4, 5}, {4, 1, 5}, // top cap (+Z pole)
		{3, 1, 6}, {2, 3, 6}, {4, 2, 6}, {1, 4, 6}, // bottom cap (-Z pole)
	}
	return positions, faces
}

// IcosahedronMesh returns the 12-vertex, 20-face regular icosahedron:
// every vertex has valence 5 (spec §8 scenario 3). Vertices are laid out
// as a north pole, a ring of 5, a second ring of 5 rotated by 36 degrees,
// and a south pole — the standard antiprism construction, matching the
// numbering convention of the pole/ring Platonic datasets this package's
// tests compare valences against.
func IcosahedronMesh() ([]core.Vec3, [][3]int) {
	const (
		ringZ     = 1.0 / 2.2360679774997896 // 1/sqrt(5)
		ringR     = 2.0 / 2.2360679774997896 // 2/sqrt(5)
		degToRad  = math.Pi / 180
		ringStep  = 72 * degToRad
		ringPhase = 36 * degToRad
	)

	positions := make([]core.Vec3, 0, 12)
	positions = append(positions, core.Vec3{X: 0, Y: 0, Z: 1}) // 1: north pole
	for i := 0; i < 5; i++ {
		a := float64(i) * ringStep
		positions = append(positions, core.Vec3{X: ringR * math.Cos(a), Y: ringR * math.Sin(a), Z: ringZ})
	}
	for i := 0; i < 5; i++ {
		a := ringPhase + float64(i)*ringStep
		positions = append(positions, core.Vec3{X: ringR * math.Cos(a), Y: ringR * math.Sin(a), Z: -ringZ})
	}
	positions = append(positions, core.Vec3{X: 0, Y: 0, Z: -1}) // 12: south pole

	// 1-based IDs: 1=north pole, 2..6=top ring T0..T4, 7..11=bottom ring
	// B0..B4, 12=south pole.
	top := func(i int) int { return 2 + (i+5)%5 }
	bot := func(i int) int { return 7 + (i+5)%5 }

	var faces [][3]int
	for i := 0; i < 5; i++ {
		faces = append(faces, [3]int{1, top(i), top(i + 1)}) // north cap
	}
	for i := 0; i < 5; i++ {
		faces = append(faces, [3]int{top(i), bot(i), top(i + 1)})     // band, upper triangle
		faces = append(faces, [3]int{top(i + 1), bot(i), bot(i + 1)}) // band, lower triangle
	}
	for i := 0; i < 5; i++ {
		faces = append(faces, [3]int{12, bot(i + 1), bot(i)}) // south cap
	}
	return positions, faces
}
