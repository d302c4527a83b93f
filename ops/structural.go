package ops

import (
	"github.com/katalvlaran/symtensor/blockindex"
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/tensor"
)

// Identity builds the rank-2 tensor named (rowName, colName) over edges
// (e, e.Reversed()) whose every conservation-allowed block is the identity
// matrix on that block's charge sector — the unit for Contract along a
// matching pair of axes.
func Identity[S tensor.Scalar, N Name](rowName, colName N, e edge.Edge) (*tensor.Tensor[S, N], error) {
	t, err := tensor.New[S, N]([]N{rowName, colName}, []edge.Edge{e, e.Reversed()})
	if err != nil {
		return nil, err
	}
	for _, entry := range t.Core.Index.Entries {
		dim := entry.Shape[0]
		for i := 0; i < dim; i++ {
			t.Core.Storage[entry.Offset+i*dim+i] = 1
		}
	}
	return t, nil
}

// Conjugate negates the charge of every segment on every edge (via
// edge.Edge.Negated, §4.4) while leaving Storage untouched: the data layout
// (segment order, dims) is identical, only the charge labels attached to
// each segment flip sign, mirroring what complex conjugation does to a
// U(1) tensor's charge flow without requiring S to be complex.
func Conjugate[S tensor.Scalar, N Name](t *tensor.Tensor[S, N]) (*tensor.Tensor[S, N], error) {
	edges := make([]edge.Edge, len(t.Core.Edges))
	for i, e := range t.Core.Edges {
		edges[i] = e.Negated()
	}
	out, err := tensor.New[S, N](t.Names, edges)
	if err != nil {
		return nil, err
	}
	copy(out.Core.Storage, t.Core.Storage)
	return out, nil
}

// Trace contracts axisA against axisB within a single tensor (they must be
// mirror-image edges, as in Contract) and sums the result into a tensor
// over the remaining axes. A rank-2 tensor traced over both its axes
// yields a rank-0 tensor: a single scalar block.
func Trace[S tensor.Scalar, N Name](t *tensor.Tensor[S, N], axisA, axisB N) (*tensor.Tensor[S, N], error) {
	ai, ok := t.IndexOf(axisA)
	if !ok {
		return nil, ErrUnknownAxis
	}
	bi, ok := t.IndexOf(axisB)
	if !ok {
		return nil, ErrUnknownAxis
	}
	if ai == bi || !t.Core.Edges[ai].Reversed().Equal(t.Core.Edges[bi]) {
		return nil, ErrNotContractible
	}

	freePos := remainingPos(t.Rank(), toSet([]int{ai, bi}))
	outNames := make([]N, len(freePos))
	outEdges := make([]edge.Edge, len(freePos))
	for i, p := range freePos {
		outNames[i] = t.Names[p]
		outEdges[i] = t.Core.Edges[p]
	}
	out, err := tensor.New[S, N](outNames, outEdges)
	if err != nil {
		return nil, err
	}

	for _, entry := range t.Core.Index.Entries {
		if entry.Key.Idx[ai] != entry.Key.Idx[bi] {
			continue // only matching (diagonal) segment pairs contribute
		}
		strides := rowMajorStrides(entry.Shape)
		diag := entry.Shape[ai]
		loc := make([]int, len(entry.Shape))
		keyIdx := make([]int, len(freePos))
		for i, p := range freePos {
			keyIdx[i] = entry.Key.Idx[p]
		}
		entryOut, ok := out.Core.Index.Lookup(blockindex.Key{Idx: keyIdx})
		if !ok {
			continue
		}
		freeVolume := entryOut.Volume
		for flatFree := 0; flatFree < freeVolume; flatFree++ {
			rem := flatFree
			for i := len(freePos) - 1; i >= 0; i-- {
				p := freePos[i]
				loc[p] = rem % entry.Shape[p]
				rem /= entry.Shape[p]
			}
			sum := S(0)
			for d := 0; d < diag; d++ {
				loc[ai], loc[bi] = d, d
				sum += t.Core.Storage[entry.Offset+dot(loc, strides)]
			}
			out.Core.Storage[entryOut.Offset+flatFree] += sum
		}
	}
	return out, nil
}
