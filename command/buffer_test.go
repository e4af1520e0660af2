package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vdconquest/mesh/core"
)

func TestBufferEmitAndSeq(t *testing.T) {
	buf := NewBuffer()

	seq0 := buf.EmitV(7, core.Vec3{X: 1})
	buf.EmitF(7, 1, 2)
	buf.EmitDF(1, 2, 3)
	seq1 := buf.EmitV(9, core.Vec3{X: 2})

	require.Equal(t, 0, seq0)
	require.Equal(t, 1, seq1)
	require.Equal(t, 4, buf.Len())

	m := buf.SeqToVertex()
	require.Equal(t, map[int]int{0: 7, 1: 9}, m)

	recs := buf.Records()
	require.Len(t, recs, 4)
	require.Equal(t, KindV, recs[0].Kind)
	require.Equal(t, KindF, recs[1].Kind)
	require.Equal(t, KindDF, recs[2].Kind)
	require.Equal(t, "f 7 1 2", recs[1].String())
}
