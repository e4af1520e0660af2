// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the single dispatch entry point over the package's fixture
//       constructors, mirroring the one-orchestrator shape the rest of
//       this module's components use (see e.g. retriangulate.Retriangulate).
// Determinism:
//   - Every constructor this dispatches to returns a fixed, hand-laid-out
//     (positions, faces) pair — no RNG, no map iteration — so Build(name)
//     returns byte-identical output on every call.
// Concurrency:
//   - None: constructors allocate and return fresh slices; Build has no
//     shared state and is safe to call concurrently for that reason alone.
// AI-Hints (file):
//   - Add a new fixture by giving it its own *Mesh() function plus a Name
//     constant and a case here; do not fold new combinatorics into an
//     existing constructor.
package builder

import "github.com/vdconquest/mesh/core"

// Build returns the (positions, faces) pair for the named canonical mesh,
// ready for core.BuildFromFaces. ErrUnknownMesh if name is not one of the
// enumerated constants.
func Build(name Name) ([]core.Vec3, [][3]int, error) {
	switch name {
	case Tetrahedron:
		p, f := TetrahedronMesh()
		return p, f, nil
	case Octahedron:
		p, f := OctahedronMesh()
		return p, f, nil
	case Icosahedron:
		p, f := IcosahedronMesh()
		return p, f, nil
	case NonManifoldFan:
		p, f := NonManifoldFanMesh()
		return p, f, nil
	default:
		return nil, nil, ErrUnknownMesh
	}
}
