package serialize_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/serialize"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/katalvlaran/symtensor/tensor"
	"github.com/stretchr/testify/require"
)

type axis string

func (a axis) String() string { return string(a) }

func parseAxis(s string) (axis, error) { return axis(s), nil }

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

func buildTensor(t *testing.T) *tensor.Tensor[float64, axis] {
	t.Helper()
	tn, err := tensor.New[float64, axis]([]axis{"a", "b"}, []edge.Edge{
		z2edge(t, false, 2, 3),
		z2edge(t, true, 2, 3),
	})
	require.NoError(t, err)
	tn = tensor.Fill(tn, func(idx []int) float64 {
		return float64(idx[0]*10 + idx[1])
	})
	return tn
}

func TestTextRoundTrip(t *testing.T) {
	tn := buildTensor(t)

	var buf bytes.Buffer
	require.NoError(t, serialize.DumpText(&buf, tn))

	loaded, err := serialize.LoadText[float64, axis](&buf, parseAxis)
	require.NoError(t, err)
	require.Equal(t, tn.Names, loaded.Names)
	require.Equal(t, tn.Core.Storage, loaded.Core.Storage)
}

func TestBinaryRoundTrip(t *testing.T) {
	tn := buildTensor(t)

	var buf bytes.Buffer
	require.NoError(t, serialize.DumpBinary(&buf, tn))

	loaded, err := serialize.LoadBinary[float64, axis](&buf, parseAxis)
	require.NoError(t, err)
	require.Equal(t, tn.Names, loaded.Names)
	require.Equal(t, tn.Core.Storage, loaded.Core.Storage)
}

func TestLoadTextRejectsTruncatedStream(t *testing.T) {
	tn := buildTensor(t)
	var buf bytes.Buffer
	require.NoError(t, serialize.DumpText(&buf, tn))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	_, err := serialize.LoadText[float64, axis](truncated, parseAxis)
	require.Error(t, err)
}
