package tencore_test

import (
	"testing"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/katalvlaran/symtensor/tencore"
	"github.com/stretchr/testify/require"
)

func rank1(t *testing.T) []edge.Edge {
	t.Helper()
	e, err := edge.New([]edge.Segment{
		{Charge: symmetry.NewZ2(0), Dim: 2},
		{Charge: symmetry.NewZ2(1), Dim: 3},
	}, false)
	require.NoError(t, err)
	return []edge.Edge{e, e}
}

func TestNewSizesStorageToIndex(t *testing.T) {
	c, err := tencore.New[float64](rank1(t))
	require.NoError(t, err)
	require.Equal(t, c.Index.StorageLength(), len(c.Storage))
}

func TestCloneIfSharedOnlyCopiesWhenShared(t *testing.T) {
	c, err := tencore.New[float64](rank1(t))
	require.NoError(t, err)

	same, cloned := c.CloneIfShared()
	require.False(t, cloned)
	require.Same(t, c, same)

	other := c.Retain()
	require.True(t, c.Shared())

	priv, cloned := c.CloneIfShared()
	require.True(t, cloned)
	require.NotSame(t, c, priv)
	require.False(t, priv.Shared())

	priv.Storage[0] = 42
	require.NotEqual(t, priv.Storage[0], other.Storage[0])
}

func TestBlockIsAViewNotACopy(t *testing.T) {
	c, err := tencore.New[float64](rank1(t))
	require.NoError(t, err)
	require.NotEmpty(t, c.Index.Entries)

	e := c.Index.Entries[0]
	b := c.Block(e.Offset, e.Volume)
	b[0] = 7
	require.Equal(t, float64(7), c.Storage[e.Offset])
}
