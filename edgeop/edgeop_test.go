package edgeop_test

import (
	"testing"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/edgeop"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/katalvlaran/symtensor/tensor"
	"github.com/stretchr/testify/require"
)

type axis string

func (a axis) String() string { return string(a) }

func z2edge(t *testing.T, arrow bool, dims ...int) edge.Edge {
	t.Helper()
	segs := make([]edge.Segment, len(dims))
	for v, d := range dims {
		segs[v] = edge.Segment{Charge: symmetry.NewZ2(v), Dim: d}
	}
	e, err := edge.New(segs, arrow)
	require.NoError(t, err)
	return e
}

func fermiEdge(t *testing.T, arrow bool, dims ...int) edge.Edge {
	t.Helper()
	segs := make([]edge.Segment, len(dims))
	for v, d := range dims {
		segs[v] = edge.Segment{Charge: symmetry.NewFermiZ2(v), Dim: d}
	}
	e, err := edge.New(segs, arrow)
	require.NoError(t, err)
	return e
}

// TestTransposeRoundTrip mirrors §8 scenario 1: transposing a rank-3 ℤ₂
// tensor out and back must reproduce every stored element exactly.
func TestTransposeRoundTrip(t *testing.T) {
	e0 := z2edge(t, false, 2, 2)
	e1 := z2edge(t, false, 2, 2)
	e2 := z2edge(t, false, 2, 2)
	names := []axis{"a", "b", "c"}
	tn, err := tensor.New[float64, axis](names, []edge.Edge{e0, e1, e2})
	require.NoError(t, err)

	tn = tensor.Fill(tn, func(idx []int) float64 {
		return float64(idx[0]*100 + idx[1]*10 + idx[2])
	})

	transposed, err := edgeop.Transpose[float64](tn, []axis{"c", "a", "b"})
	require.NoError(t, err)
	require.Equal(t, []axis{"c", "a", "b"}, transposed.Names)

	back, err := edgeop.Transpose[float64](transposed, []axis{"a", "b", "c"})
	require.NoError(t, err)

	require.Equal(t, len(tn.Core.Storage), len(back.Core.Storage))
	for i := range tn.Core.Storage {
		require.InDelta(t, tn.Core.Storage[i], back.Core.Storage[i], 1e-12)
	}
}

// TestReverseEdgeFermionicSignFlip mirrors §8 scenario 2: reversing a
// fermion-odd axis's arrow with ApplyParity set negates odd-parity blocks.
func TestReverseEdgeFermionicSignFlip(t *testing.T) {
	e0 := fermiEdge(t, false, 1, 1)
	e1 := fermiEdge(t, false, 1, 1)
	names := []axis{"a", "b"}
	tn, err := tensor.New[float64, axis](names, []edge.Edge{e0, e1})
	require.NoError(t, err)
	tn, err = tn.Set([]int{1, 1}, 7.0)
	require.NoError(t, err)

	out, err := edgeop.ReverseEdge[float64](tn, []axis{"a"}, true, nil)
	require.NoError(t, err)

	v, err := out.At([]int{1, 1})
	require.NoError(t, err)
	require.Equal(t, -7.0, v)
}

// TestSplitMergeRoundTrip is a ℤ₂ variant of §8 scenario 3's merge/split
// round trip: splitting a ℤ₂ edge into
// two sub-edges and immediately merging them back reproduces the tensor.
func TestSplitMergeRoundTrip(t *testing.T) {
	e0 := z2edge(t, false, 2, 2) // dim 4 total, degenerate split target
	e1 := z2edge(t, false, 3, 3)
	names := []axis{"ab", "c"}
	tn, err := tensor.New[float64, axis](names, []edge.Edge{e0, e1})
	require.NoError(t, err)
	tn = tensor.Fill(tn, func(idx []int) float64 { return float64(idx[0]*10 + idx[1]) })

	sub0 := z2edge(t, false, 1, 1)
	sub1 := z2edge(t, false, 1, 1)
	split, err := edgeop.SplitEdge[float64](tn, "ab", []edgeop.SplitPart[axis]{
		{Name: "a", Segments: sub0.Segments},
		{Name: "b", Segments: sub1.Segments},
	}, false, nil)
	require.NoError(t, err)
	require.ElementsMatch(t, []axis{"a", "b", "c"}, split.Names)

	merged, err := edgeop.MergeEdge[float64](split, "ab", []axis{"a", "b"}, false, nil)
	require.NoError(t, err)
	require.Equal(t, []axis{"ab", "c"}, merged.Names)

	require.Equal(t, len(tn.Core.Storage), len(merged.Core.Storage))
	for i := range tn.Core.Storage {
		require.InDelta(t, tn.Core.Storage[i], merged.Core.Storage[i], 1e-12)
	}
}

// TestRenamePreservesData checks the pure relabeling path reproduces every
// element, in the same storage order.
func TestRenamePreservesData(t *testing.T) {
	e0 := z2edge(t, false, 2, 2)
	tn, err := tensor.New[float64, axis]([]axis{"x"}, []edge.Edge{e0})
	require.NoError(t, err)
	tn = tensor.Fill(tn, func(idx []int) float64 { return float64(idx[0] + 1) })

	renamed, err := edgeop.Rename[float64](tn, map[axis]axis{"x": "y"})
	require.NoError(t, err)
	require.Equal(t, []axis{"y"}, renamed.Names)
	require.Equal(t, tn.Core.Storage, renamed.Core.Storage)
}
