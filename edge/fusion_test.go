package edge_test

import (
	"testing"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/stretchr/testify/require"
)

func u1edge(t *testing.T, charges []int64, dims []int) edge.Edge {
	t.Helper()
	segs := make([]edge.Segment, len(charges))
	for i := range charges {
		segs[i] = edge.Segment{Charge: symmetry.NewU1(charges[i]), Dim: dims[i]}
	}
	e, err := edge.New(segs, false)
	require.NoError(t, err)
	return e
}

// TestFuseReconstructsOriginal mirrors §8 scenario 3: three U(1) edges with
// charges {-1,0,1} and dims {3,1,2}/{1,2,3}/{2,3,1} fuse into one edge whose
// every contribution can be unraveled back to its exact originating parts.
func TestFuseReconstructsOriginal(t *testing.T) {
	a := u1edge(t, []int64{-1, 0, 1}, []int{3, 1, 2})
	b := u1edge(t, []int64{-1, 0, 1}, []int{1, 2, 3})
	c := u1edge(t, []int64{-1, 0, 1}, []int{2, 3, 1})

	fusion, err := edge.Fuse([]edge.Edge{a, b, c})
	require.NoError(t, err)

	// Total dimension is preserved.
	require.Equal(t, a.TotalDim()*b.TotalDim()*c.TotalDim(), fusion.Agg.TotalDim())

	// Every contribution round-trips through ByParts using its own PartIdx.
	for aggIdx, contribs := range fusion.ByAggSeg {
		for _, contrib := range contribs {
			require.Equal(t, aggIdx, contrib.AggSegIdx)
			got, ok := fusion.Lookup(contrib.PartIdx)
			require.True(t, ok)
			require.Equal(t, contrib, got)
		}
	}

	// Every (ai,bi,ci) combination produced exactly one contribution.
	count := 0
	for range fusion.ByParts {
		count++
	}
	require.Equal(t, len(a.Segments)*len(b.Segments)*len(c.Segments), count)
}

func TestFuseArrowMismatchRejected(t *testing.T) {
	a, _ := edge.New([]edge.Segment{{Charge: symmetry.NewFermiZ2(0), Dim: 1}}, false)
	b, _ := edge.New([]edge.Segment{{Charge: symmetry.NewFermiZ2(1), Dim: 1}}, true)
	_, err := edge.Fuse([]edge.Edge{a, b})
	require.ErrorIs(t, err, edge.ErrArrowMismatch)
}

func TestFuseEmptyRejected(t *testing.T) {
	_, err := edge.Fuse(nil)
	require.ErrorIs(t, err, edge.ErrEmptyFusion)
}
