package retriangulate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vdconquest/mesh/conquest"
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

func TestRetriangulateValence3(t *testing.T) {
	s := tetrahedron(t)

	ring, err := s.Ring(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, ring)

	parity := conquest.ParityMap{}
	parity.Set(2, conquest.Plus) // right
	parity.Set(4, conquest.Plus) // left

	newFaces, err := Retriangulate(s, parity, ring, 1)
	require.NoError(t, err)
	require.Equal(t, [][3]int{{4, 2, 3}}, newFaces)

	p3, ok := parity.Get(3)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p3)

	for _, id := range []int{2, 3, 4} {
		val, err := s.Valence(id)
		require.NoError(t, err)
		require.Equal(t, 2, val, "vertex %d", id)
	}

	front, ok := s.GateTarget(4, 2)
	require.True(t, ok)
	require.Equal(t, 3, front)
	front, ok = s.GateTarget(2, 3)
	require.True(t, ok)
	require.Equal(t, 4, front)
	front, ok = s.GateTarget(3, 4)
	require.True(t, ok)
	require.Equal(t, 2, front)

	r2, err := s.Ring(2)
	require.NoError(t, err)
	require.NotContains(t, r2, 1)
	require.ElementsMatch(t, []int{3, 4}, r2)

	r3, err := s.Ring(3)
	require.NoError(t, err)
	require.NotContains(t, r3, 1)
	require.ElementsMatch(t, []int{2, 4}, r3)

	r4, err := s.Ring(4)
	require.NoError(t, err)
	require.NotContains(t, r4, 1)
	require.ElementsMatch(t, []int{2, 3}, r4)
}

// bipyramid returns a closed n-gonal bipyramid: a north apex and a south
// apex, each connected to every vertex of an n-cycle rim, so both apexes
// have valence n and every rim vertex has valence 4 — the same
// north-cap/south-cap construction builder.IcosahedronMesh() uses,
// generalized to any rim size so the v=5 and v=6 rows of the case table
// can be driven directly instead of only incidentally inside a full
// traversal. Ring(1) (the north apex) comes out as the rim in ascending
// order, [2, 3, ..., n+1], since chainFragments starts its walk at the
// lowest-numbered fragment.
func bipyramid(t *testing.T, n int) *core.Store {
	t.Helper()
	positions := make([]core.Vec3, 0, n+2)
	positions = append(positions, core.Vec3{X: 0, Y: 0, Z: 1}) // 1: north apex
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		positions = append(positions, core.Vec3{X: math.Cos(a), Y: math.Sin(a), Z: 0})
	}
	positions = append(positions, core.Vec3{X: 0, Y: 0, Z: -1}) // n+2: south apex

	rim := func(i int) int { return 2 + (i+n)%n }
	south := n + 2

	var faces [][3]int
	for i := 0; i < n; i++ {
		faces = append(faces, [3]int{1, rim(i), rim(i + 1)})
		faces = append(faces, [3]int{south, rim(i + 1), rim(i)})
	}

	s, err := core.BuildFromFaces(positions, faces)
	require.NoError(t, err)
	return s
}

// TestRetriangulateValence5RightMinus drives the v=5 row's first branch
// (table.go:29): sign(right)=MINUS.
func TestRetriangulateValence5RightMinus(t *testing.T) {
	s := bipyramid(t, 5)
	ring, err := s.Ring(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4, 5, 6}, ring)

	parity := conquest.ParityMap{}
	parity.Set(2, conquest.Minus) // right
	parity.Set(6, conquest.Plus)  // left

	newFaces, err := Retriangulate(s, parity, ring, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, [][3]int{{6, 2, 3}, {6, 3, 5}, {3, 4, 5}}, newFaces)
	require.NoError(t, s.CheckInvariants())

	p3, ok := parity.Get(3)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p3)
	p4, ok := parity.Get(4)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p4)
	p5, ok := parity.Get(5)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p5)
}

// TestRetriangulateValence5LeftMinus drives the v=5 row's second branch
// (table.go:31): sign(right)=PLUS, sign(left)=MINUS.
func TestRetriangulateValence5LeftMinus(t *testing.T) {
	s := bipyramid(t, 5)
	ring, err := s.Ring(1)
	require.NoError(t, err)

	parity := conquest.ParityMap{}
	parity.Set(2, conquest.Plus)  // right
	parity.Set(6, conquest.Minus) // left

	newFaces, err := Retriangulate(s, parity, ring, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, [][3]int{{6, 2, 5}, {2, 3, 5}, {3, 4, 5}}, newFaces)
	require.NoError(t, s.CheckInvariants())

	p3, ok := parity.Get(3)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p3)
	p4, ok := parity.Get(4)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p4)
	p5, ok := parity.Get(5)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p5)
}

// TestRetriangulateValence5BothPlus drives the v=5 row's fallback branch
// (table.go:33): both boundary vertices PLUS.
func TestRetriangulateValence5BothPlus(t *testing.T) {
	s := bipyramid(t, 5)
	ring, err := s.Ring(1)
	require.NoError(t, err)

	parity := conquest.ParityMap{}
	parity.Set(2, conquest.Plus) // right
	parity.Set(6, conquest.Plus) // left

	newFaces, err := Retriangulate(s, parity, ring, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, [][3]int{{6, 2, 4}, {2, 3, 4}, {6, 4, 5}}, newFaces)
	require.NoError(t, s.CheckInvariants())

	p3, ok := parity.Get(3)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p3)
	p4, ok := parity.Get(4)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p4)
	p5, ok := parity.Get(5)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p5)
}

// TestRetriangulateValence6RightMinus drives the v=6 row's first branch
// (table.go:39): sign(right)=MINUS.
func TestRetriangulateValence6RightMinus(t *testing.T) {
	s := bipyramid(t, 6)
	ring, err := s.Ring(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4, 5, 6, 7}, ring)

	parity := conquest.ParityMap{}
	parity.Set(2, conquest.Minus) // right
	parity.Set(7, conquest.Plus)  // left

	newFaces, err := Retriangulate(s, parity, ring, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, [][3]int{{7, 2, 3}, {7, 3, 5}, {3, 4, 5}, {7, 5, 6}}, newFaces)
	require.NoError(t, s.CheckInvariants())

	p3, ok := parity.Get(3)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p3)
	p4, ok := parity.Get(4)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p4)
	p5, ok := parity.Get(5)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p5)
	p6, ok := parity.Get(6)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p6)
}

// TestRetriangulateValence6Else drives the v=6 row's fallback branch
// (table.go:42): sign(right)!=MINUS.
func TestRetriangulateValence6Else(t *testing.T) {
	s := bipyramid(t, 6)
	ring, err := s.Ring(1)
	require.NoError(t, err)

	parity := conquest.ParityMap{}
	parity.Set(2, conquest.Plus) // right
	parity.Set(7, conquest.Plus) // left

	newFaces, err := Retriangulate(s, parity, ring, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, [][3]int{{2, 3, 4}, {2, 4, 6}, {4, 5, 6}, {7, 2, 6}}, newFaces)
	require.NoError(t, s.CheckInvariants())

	p3, ok := parity.Get(3)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p3)
	p4, ok := parity.Get(4)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p4)
	p5, ok := parity.Get(5)
	require.True(t, ok)
	require.Equal(t, conquest.Minus, p5)
	p6, ok := parity.Get(6)
	require.True(t, ok)
	require.Equal(t, conquest.Plus, p6)
}

func TestRetriangulateRejectsBadValence(t *testing.T) {
	s := core.NewStore()
	parity := conquest.ParityMap{}
	_, err := Retriangulate(s, parity, []int{1, 2}, 99)
	require.ErrorIs(t, err, ErrUnsupportedValence)
}
