package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vdconquest/mesh/core"
)

func TestTetrahedronAllValenceThree(t *testing.T) {
	positions, faces := TetrahedronMesh()
	s, err := core.BuildFromFaces(positions, faces)
	require.NoError(t, err)
	require.Len(t, s.ActiveVertices(), 4)
	for _, id := range s.ActiveVertices() {
		val, err := s.Valence(id)
		require.NoError(t, err)
		require.Equal(t, 3, val)
	}
	require.NoError(t, s.CheckInvariants())
}

func TestOctahedronAllValenceFour(t *testing.T) {
	positions, faces := OctahedronMesh()
	s, err := core.BuildFromFaces(positions, faces)
	require.NoError(t, err)
	require.Len(t, s.ActiveVertices(), 6)
	for _, id := range s.ActiveVertices() {
		val, err := s.Valence(id)
		require.NoError(t, err)
		require.Equal(t, 4, val)
	}
	require.NoError(t, s.CheckInvariants())
}

func TestIcosahedronAllValenceFive(t *testing.T) {
	positions, faces := IcosahedronMesh()
	s, err := core.BuildFromFaces(positions, faces)
	require.NoError(t, err)
	require.Len(t, s.ActiveVertices(), 12)
	for _, id := range s.ActiveVertices() {
		val, err := s.Valence(id)
		require.NoError(t, err)
		require.Equal(t, 5, val)
	}
	require.NoError(t, s.CheckInvariants())
}

// BuildFromFaces sees vertex 1's incident faces as two disjoint triangle
// fans and must duplicate it so each fan gets its own ring.
func TestNonManifoldFanIsDuplicated(t *testing.T) {
	positions, faces := NonManifoldFanMesh()
	s, err := core.BuildFromFaces(positions, faces)
	require.NoError(t, err)

	// 7 input vertices + 1 duplicate of the shared apex.
	require.Len(t, s.ActiveVertices(), 8)

	ring1, err := s.Ring(1)
	require.NoError(t, err)
	require.Len(t, ring1, 3)
	require.NoError(t, s.CheckInvariants())
}

func TestBuildUnknownMesh(t *testing.T) {
	_, _, err := Build(Name(99))
	require.ErrorIs(t, err, ErrUnknownMesh)
}

func TestBuildDispatchesToConstructors(t *testing.T) {
	for _, name := range []Name{Tetrahedron, Octahedron, Icosahedron, NonManifoldFan} {
		positions, faces, err := Build(name)
		require.NoError(t, err, name)
		require.NotEmpty(t, positions, name)
		require.NotEmpty(t, faces, name)
	}
}
