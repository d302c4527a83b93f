package tensor

import (
	"github.com/katalvlaran/symtensor/blockindex"
	"github.com/katalvlaran/symtensor/symtensorerr"
)

// At returns the element at the dense position pos (one coordinate per
// index, in Names order). If pos falls in a symmetry sector that the
// conservation law forbids, the element is structurally zero and At
// returns the zero value with no error.
func (t *Tensor[S, N]) At(pos []int) (S, error) {
	var zero S
	if len(pos) != t.Rank() {
		return zero, symtensorerr.ErrShapeMismatch
	}
	segIdx, sub, err := t.locate(pos)
	if err != nil {
		return zero, err
	}
	entry, within, ok := t.blockOffset(segIdx, sub)
	if !ok {
		return zero, nil
	}
	return t.Core.Storage[entry.Offset+within], nil
}

// Set writes v at the dense position pos. The returned Tensor counts as a
// second owner of t's Core, so Set always writes into a private copy
// (copy-on-write) and t itself is left unchanged; the new Tensor is
// returned alongside any error. Writing into a
// conservation-forbidden sector is an error: such positions have no
// storage to write into.
func (t *Tensor[S, N]) Set(pos []int, v S) (*Tensor[S, N], error) {
	if len(pos) != t.Rank() {
		return t, symtensorerr.ErrShapeMismatch
	}
	segIdx, sub, err := t.locate(pos)
	if err != nil {
		return t, err
	}
	entry, within, ok := t.blockOffset(segIdx, sub)
	if !ok {
		return t, symtensorerr.ErrBlockNotFound
	}
	core, _ := t.Core.Retain().CloneIfShared()
	out := &Tensor[S, N]{Names: t.Names, Core: core}
	out.Core.Storage[entry.Offset+within] = v
	return out, nil
}

func (t *Tensor[S, N]) locate(pos []int) (segIdx, sub []int, err error) {
	segIdx = make([]int, t.Rank())
	sub = make([]int, t.Rank())
	for k, e := range t.Core.Edges {
		si, s, lErr := e.Locate(pos[k])
		if lErr != nil {
			return nil, nil, lErr
		}
		segIdx[k], sub[k] = si, s
	}
	return segIdx, sub, nil
}

// blockOffset resolves the block at segIdx and the within-block flat
// offset of sub, row-major over the block's Shape.
func (t *Tensor[S, N]) blockOffset(segIdx, sub []int) (blockindex.Entry, int, bool) {
	entry, ok := t.Core.Index.Lookup(blockindex.Key{Idx: segIdx})
	if !ok {
		return blockindex.Entry{}, 0, false
	}
	stride := 1
	within := 0
	for k := len(sub) - 1; k >= 0; k-- {
		within += sub[k] * stride
		stride *= entry.Shape[k]
	}
	return entry, within, true
}
