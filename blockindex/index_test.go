package blockindex_test

import (
	"testing"

	"github.com/katalvlaran/symtensor/blockindex"
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/stretchr/testify/require"
)

func z2edge(t *testing.T, dims map[int]int, arrow bool) edge.Edge {
	t.Helper()
	segs := []edge.Segment{
		{Charge: symmetry.NewZ2(1), Dim: dims[1]},
		{Charge: symmetry.NewZ2(0), Dim: dims[0]},
	}
	e, err := edge.New(segs, arrow)
	require.NoError(t, err)
	return e
}

// TestBuildRank0 covers §4.2's rank-0 rule: exactly one block, volume 1.
func TestBuildRank0(t *testing.T) {
	ix, err := blockindex.Build(nil)
	require.NoError(t, err)
	require.Len(t, ix.Entries, 1)
	require.Equal(t, 1, ix.Entries[0].Volume)
	require.Equal(t, 1, ix.StorageLength())
}

// TestBuildZ2Rank3 mirrors §8 scenario 1's rank-3 ℤ₂ tensor: edges with
// dims {1:3,0:1}, {1:1,0:2}, {1:2,0:3}. Every allowed tuple must satisfy
// q0+q1+q2 == 0 (mod 2, non-fermionic so no arrow signs).
func TestBuildZ2Rank3(t *testing.T) {
	e0 := z2edge(t, map[int]int{1: 3, 0: 1}, false)
	e1 := z2edge(t, map[int]int{1: 1, 0: 2}, false)
	e2 := z2edge(t, map[int]int{1: 2, 0: 3}, false)

	ix, err := blockindex.Build([]edge.Edge{e0, e1, e2})
	require.NoError(t, err)
	require.NotEmpty(t, ix.Entries)

	sum := 0
	for _, entry := range ix.Entries {
		parity := 0
		for _, c := range entry.Charges {
			parity ^= int(c.(symmetry.Z2).V)
		}
		require.Equal(t, 0, parity)
		sum += entry.Volume
	}
	require.Equal(t, ix.StorageLength(), sum)

	// Lexicographic order: keys must be strictly increasing.
	for i := 1; i < len(ix.Entries); i++ {
		require.True(t, lessKey(ix.Entries[i-1].Key.Idx, ix.Entries[i].Key.Idx))
	}
}

func lessKey(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// TestBuildArrowFlipsConservation mirrors §8 scenario 2: a fermionic edge
// with Arrow=true negates that edge's contribution to the conservation sum.
func TestBuildArrowFlipsConservation(t *testing.T) {
	mk := func(arrow0, arrow1 bool) *blockindex.Index {
		e0, err := edge.New([]edge.Segment{
			{Charge: symmetry.NewFermiZ2(1), Dim: 1},
			{Charge: symmetry.NewFermiZ2(0), Dim: 1},
		}, arrow0)
		require.NoError(t, err)
		e1, err := edge.New([]edge.Segment{
			{Charge: symmetry.NewFermiZ2(1), Dim: 1},
			{Charge: symmetry.NewFermiZ2(0), Dim: 1},
		}, arrow1)
		require.NoError(t, err)
		ix, err := blockindex.Build([]edge.Edge{e0, e1})
		require.NoError(t, err)
		return ix
	}

	// arrows (true,false): s0=-1, s1=+1, so -q0+q1==0 => q0==q1.
	ix := mk(true, false)
	require.Len(t, ix.Entries, 2) // (0,0) and (1,1)
	for _, e := range ix.Entries {
		require.Equal(t, e.Charges[0].(symmetry.FermiZ2).V, e.Charges[1].(symmetry.FermiZ2).V)
	}
}

func TestResolveCharges(t *testing.T) {
	e0 := z2edge(t, map[int]int{1: 2, 0: 2}, false)
	key, ok := blockindex.ResolveCharges([]edge.Edge{e0}, []symmetry.Group{symmetry.NewZ2(1)})
	require.True(t, ok)
	require.Equal(t, 0, key.Idx[0])
}
