package ops

import (
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/linalg"
	"github.com/katalvlaran/symtensor/tensor"
)

// QR factors a rank-2 tensor (rowName, colName) with mirrored edges
// (t.Core.Edges[1] == t.Core.Edges[0].Reversed()) into Q (rowName,
// midName) and R (midName, colName), one provider.QR call per
// conservation-allowed block (the diagonal charge sectors a mirrored pair
// admits). Higher-rank operands are expected to have been reshaped down to
// this form first via a chain of edgeop.MergeEdge calls — QR/SVD don't
// re-derive the aggregate charge-fusion bookkeeping edgeop already owns.
func QR[S linalg.Scalar, N Name](t *tensor.Tensor[S, N], rowName, colName, midName N, provider linalg.Provider[S]) (q, r *tensor.Tensor[S, N], err error) {
	if t.Rank() != 2 {
		return nil, nil, ErrNotSquare
	}
	rowEdge, colEdge := t.Core.Edges[0], t.Core.Edges[1]
	if !rowEdge.Reversed().Equal(colEdge) {
		return nil, nil, ErrNotContractible
	}

	midEdge := colEdge
	qOut, err := tensor.New[S, N]([]N{rowName, midName}, []edge.Edge{rowEdge, midEdge})
	if err != nil {
		return nil, nil, err
	}
	rOut, err := tensor.New[S, N]([]N{midName, colName}, []edge.Edge{midEdge.Reversed(), colEdge})
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range t.Core.Index.Entries {
		m, n := entry.Shape[0], entry.Shape[1]
		if m < n {
			return nil, nil, ErrDimensionMismatchTall
		}
		block := t.Core.Storage[entry.Offset : entry.Offset+entry.Volume]
		qBlock, rBlock, err := provider.QR(block, m, n)
		if err != nil {
			return nil, nil, err
		}
		qEntry, ok := qOut.Core.Index.Lookup(entry.Key)
		if !ok {
			continue
		}
		copy(qOut.Core.Storage[qEntry.Offset:qEntry.Offset+qEntry.Volume], qBlock)
		rEntry, ok := rOut.Core.Index.Lookup(entry.Key)
		if !ok {
			continue
		}
		copy(rOut.Core.Storage[rEntry.Offset:rEntry.Offset+rEntry.Volume], rBlock)
	}
	return qOut, rOut, nil
}

// SVD factors a rank-2 tensor the same way QR does, into U (rowName,
// midName), singular values per block (returned alongside, keyed by the
// block's encoded blockindex.Key, i.e. its segment-index tuple), and V
// (midName, colName). SVD takes no truncation policy and never drops a
// singular value or a segment; every block is returned in full.
func SVD[S linalg.Scalar, N Name](t *tensor.Tensor[S, N], rowName, colName, midName N, provider linalg.Provider[S]) (u, v *tensor.Tensor[S, N], values map[string][]float64, err error) {
	if t.Rank() != 2 {
		return nil, nil, nil, ErrNotSquare
	}
	rowEdge, colEdge := t.Core.Edges[0], t.Core.Edges[1]
	if !rowEdge.Reversed().Equal(colEdge) {
		return nil, nil, nil, ErrNotContractible
	}

	midEdge := colEdge
	uOut, err := tensor.New[S, N]([]N{rowName, midName}, []edge.Edge{rowEdge, midEdge})
	if err != nil {
		return nil, nil, nil, err
	}
	vOut, err := tensor.New[S, N]([]N{midName, colName}, []edge.Edge{midEdge.Reversed(), colEdge})
	if err != nil {
		return nil, nil, nil, err
	}
	values = make(map[string][]float64, len(t.Core.Index.Entries))

	for _, entry := range t.Core.Index.Entries {
		m, n := entry.Shape[0], entry.Shape[1]
		block := t.Core.Storage[entry.Offset : entry.Offset+entry.Volume]
		uBlock, sv, vBlock, err := provider.SVD(block, m, n)
		if err != nil {
			return nil, nil, nil, err
		}
		values[entry.Key.Encode()] = sv

		uEntry, ok := uOut.Core.Index.Lookup(entry.Key)
		if !ok {
			continue
		}
		copy(uOut.Core.Storage[uEntry.Offset:uEntry.Offset+uEntry.Volume], uBlock)
		vEntry, ok := vOut.Core.Index.Lookup(entry.Key)
		if !ok {
			continue
		}
		copy(vOut.Core.Storage[vEntry.Offset:vEntry.Offset+vEntry.Volume], vBlock)
	}
	return uOut, vOut, values, nil
}
