package edge_test

import (
	"testing"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/stretchr/testify/require"
)

func mustEdge(t *testing.T, segs []edge.Segment, arrow bool) edge.Edge {
	t.Helper()
	e, err := edge.New(segs, arrow)
	require.NoError(t, err)
	return e
}

func TestEdgeLocateOffsetRoundTrip(t *testing.T) {
	e := mustEdge(t, []edge.Segment{
		{Charge: symmetry.NewZ2(1), Dim: 3},
		{Charge: symmetry.NewZ2(0), Dim: 2},
	}, false)
	require.Equal(t, 5, e.TotalDim())

	for p := 0; p < e.TotalDim(); p++ {
		segIdx, sub, err := e.Locate(p)
		require.NoError(t, err)
		back, err := e.Offset(segIdx, sub)
		require.NoError(t, err)
		require.Equal(t, p, back)
	}
}

func TestEdgeDuplicateChargeRejected(t *testing.T) {
	_, err := edge.New([]edge.Segment{
		{Charge: symmetry.NewZ2(1), Dim: 1},
		{Charge: symmetry.NewZ2(1), Dim: 2},
	}, false)
	require.ErrorIs(t, err, edge.ErrDuplicateCharge)
}

func TestEdgeReversedKeepsSegments(t *testing.T) {
	e := mustEdge(t, []edge.Segment{{Charge: symmetry.NewFermiZ2(1), Dim: 2}}, false)
	r := e.Reversed()
	require.True(t, r.Arrow)
	require.True(t, r.Equal(mustEdge(t, e.Segments, true)))
}

func TestEdgeNegatedFlipsChargesAndArrow(t *testing.T) {
	e := mustEdge(t, []edge.Segment{{Charge: symmetry.NewU1(2), Dim: 3}}, true)
	n := e.Negated()
	require.False(t, n.Arrow)
	require.True(t, n.Segments[0].Charge.Equal(symmetry.NewU1(-2)))
}
