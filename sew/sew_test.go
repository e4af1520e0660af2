package sew

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vdconquest/mesh/command"
	"github.com/vdconquest/mesh/core"
)

func tetrahedron(t *testing.T) *core.Store {
	t.Helper()
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
	s, err := core.BuildFromFaces(positions, faces)
	require.NoError(t, err)
	return s
}

// attachPillow mints three fresh vertices forming an isolated valence-2-cubed
// component: two triangles sharing both of their edges, disconnected from
// the rest of s. It returns the three new IDs (apex, w0, w1).
func attachPillow(t *testing.T, s *core.Store) (apex, w0, w1 int) {
	t.Helper()
	a, err := s.Duplicate(1)
	require.NoError(t, err)
	b, err := s.Duplicate(1)
	require.NoError(t, err)
	c, err := s.Duplicate(1)
	require.NoError(t, err)
	apex, w0, w1 = a.ID, b.ID, c.ID

	s.SetGate(apex, w0, w1)
	s.SetGate(w0, w1, apex)
	s.SetGate(w1, apex, w0)
	s.SetGate(apex, w1, w0)
	s.SetGate(w1, w0, apex)
	s.SetGate(w0, apex, w1)

	s.SetRing(apex, []int{w0, w1})
	s.SetRing(w0, []int{w1, apex})
	s.SetRing(w1, []int{apex, w0})

	s.AdjustValence(apex, 2)
	s.AdjustValence(w0, 2)
	s.AdjustValence(w1, 2)

	require.NoError(t, s.CheckInvariants())
	return apex, w0, w1
}

func TestRunNoValence2IsNoop(t *testing.T) {
	s := tetrahedron(t)

	buf, warnings, err := Run(s)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 0, buf.Len())

	for _, id := range []int{1, 2, 3, 4} {
		val, err := s.Valence(id)
		require.NoError(t, err)
		require.Equal(t, 3, val, "vertex %d", id)
	}
}

func TestRunCollapsesIsolatedValence2Pillow(t *testing.T) {
	s := tetrahedron(t)
	apex, w0, w1 := attachPillow(t, s)

	buf, warnings, err := Run(s)
	require.NoError(t, err)
	require.Empty(t, warnings)

	records := buf.Records()
	require.Len(t, records, 2)
	require.Equal(t, command.KindV, records[0].Kind)
	require.Equal(t, apex, records[0].ID)
	require.Equal(t, command.KindF, records[1].Kind)
	require.Equal(t, apex, records[1].A)
	require.Equal(t, w0, records[1].B)
	require.Equal(t, w1, records[1].C)

	require.False(t, s.HasVertex(apex))
	require.True(t, s.HasVertex(w0))
	require.True(t, s.HasVertex(w1))

	val0, err := s.Valence(w0)
	require.NoError(t, err)
	require.Equal(t, 0, val0)
	val1, err := s.Valence(w1)
	require.NoError(t, err)
	require.Equal(t, 0, val1)

	ring0, err := s.Ring(w0)
	require.NoError(t, err)
	require.Empty(t, ring0)
	ring1, err := s.Ring(w1)
	require.NoError(t, err)
	require.Empty(t, ring1)

	_, ok := s.GateTarget(w0, w1)
	require.False(t, ok)
	_, ok = s.GateTarget(w1, w0)
	require.False(t, ok)

	for _, id := range []int{1, 2, 3, 4} {
		val, err := s.Valence(id)
		require.NoError(t, err)
		require.Equal(t, 3, val, "vertex %d untouched by pillow collapse", id)
	}

	require.NoError(t, s.CheckInvariants())
}

func TestDetectPinchesFindsRepeatedRingEntry(t *testing.T) {
	s := tetrahedron(t)
	s.SetRing(1, []int{2, 3, 2})

	warnings, err := detectPinches(s)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, PinchWarning{Vertex: 1, Repeated: 2}, warnings[0])
}

func TestRingNeighborBeforeWrapsAround(t *testing.T) {
	s := tetrahedron(t)

	before, err := ringNeighborBefore(s, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 4, before) // ring(1) == [2,3,4]; predecessor of 2 wraps to 4

	_, err = ringNeighborBefore(s, 1, 99)
	require.ErrorIs(t, err, core.ErrNotInRing)
}
