package tensor_test

import (
	"testing"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/katalvlaran/symtensor/tensor"
	"github.com/stretchr/testify/require"
)

type idxName string

func (n idxName) String() string { return string(n) }

func dummyEdge(t *testing.T) edge.Edge {
	t.Helper()
	e, err := edge.New([]edge.Segment{
		{Charge: symmetry.NewZ2(0), Dim: 2},
		{Charge: symmetry.NewZ2(1), Dim: 2},
	}, false)
	require.NoError(t, err)
	return e
}

func TestNewRejectsNameEdgeCountMismatch(t *testing.T) {
	_, err := tensor.New[float64, idxName]([]idxName{"a"}, nil)
	require.Error(t, err)
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	e := dummyEdge(t)
	_, err := tensor.New[float64, idxName]([]idxName{"a", "a"}, []edge.Edge{e, e})
	require.Error(t, err)
}

func TestSetThenAtRoundTrip(t *testing.T) {
	e := dummyEdge(t)
	tr, err := tensor.New[float64, idxName]([]idxName{"a", "b"}, []edge.Edge{e, e})
	require.NoError(t, err)

	// (0,0) and (2,2) both have charge-sum 0 (even), conservation-allowed.
	tr2, err := tr.Set([]int{0, 0}, 3.5)
	require.NoError(t, err)
	v, err := tr2.At([]int{0, 0})
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	// Original tensor's storage must be untouched (copy-on-write).
	v0, err := tr.At([]int{0, 0})
	require.NoError(t, err)
	require.Equal(t, 0.0, v0)
}

func TestAtOutsideConservationIsZeroNoError(t *testing.T) {
	e := dummyEdge(t)
	tr, err := tensor.New[float64, idxName]([]idxName{"a", "b"}, []edge.Edge{e, e})
	require.NoError(t, err)

	// position (0,2): charges 0 and 1, sum is odd -> conservation-forbidden.
	v, err := tr.At([]int{0, 2})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestRenamePreservesCoreSharing(t *testing.T) {
	e := dummyEdge(t)
	tr, err := tensor.New[float64, idxName]([]idxName{"a", "b"}, []edge.Edge{e, e})
	require.NoError(t, err)

	renamed, err := tr.Rename([]idxName{"a"}, []idxName{"x"})
	require.NoError(t, err)
	require.Same(t, tr.Core, renamed.Core)
	require.Equal(t, []idxName{"x", "b"}, renamed.Names)
}

func TestTransformAndZero(t *testing.T) {
	e := dummyEdge(t)
	tr, err := tensor.New[float64, idxName]([]idxName{"a", "b"}, []edge.Edge{e, e})
	require.NoError(t, err)

	filled := tensor.Fill(tr, func(idx []int) float64 { return 1 })
	require.Equal(t, float64(len(filled.Core.Storage)), tensor.Norm(filled, 0))

	doubled := tensor.Transform(filled, func(v float64) float64 { return v * 2 })
	require.InDelta(t, 2.0, tensor.Norm(doubled, -1), 1e-9)

	zeroed := tensor.Zero(doubled)
	require.Equal(t, 0.0, tensor.Norm(zeroed, 1))
}
