package tensor

// Transform returns a Tensor with f applied to every stored element,
// elementwise, across every block. It acquires exclusive Core ownership
// first (copy-on-write): the result writes into a private copy and t is
// left unchanged.
func Transform[S Scalar, N Name](t *Tensor[S, N], f func(S) S) *Tensor[S, N] {
	core, _ := t.Core.Retain().CloneIfShared()
	for i, v := range core.Storage {
		core.Storage[i] = f(v)
	}
	return &Tensor[S, N]{Names: t.Names, Core: core}
}

// Zero returns a Tensor with every stored element set to the zero value,
// written into a private copy of t's Core (t is left unchanged).
func Zero[S Scalar, N Name](t *Tensor[S, N]) *Tensor[S, N] {
	core, _ := t.Core.Retain().CloneIfShared()
	var zero S
	for i := range core.Storage {
		core.Storage[i] = zero
	}
	return &Tensor[S, N]{Names: t.Names, Core: core}
}

// Fill returns a Tensor with every stored element set to f(idx), where idx
// is the element's dense position (one coordinate per index, in Names
// order). Unlike At/Set, Fill only visits positions inside conservation-
// allowed blocks — it never calls f for a structurally-zero position. Like
// Transform, it writes into a private copy of t's Core.
func Fill[S Scalar, N Name](t *Tensor[S, N], f func(idx []int) S) *Tensor[S, N] {
	core, _ := t.Core.Retain().CloneIfShared()
	rank := len(core.Edges)
	for _, entry := range core.Index.Entries {
		sub := make([]int, rank)
		for off := 0; off < entry.Volume; off++ {
			rem := off
			for k := rank - 1; k >= 0; k-- {
				sub[k] = rem % entry.Shape[k]
				rem /= entry.Shape[k]
			}
			idx := make([]int, rank)
			for k := 0; k < rank; k++ {
				o, _ := core.Edges[k].Offset(entry.Key.Idx[k], sub[k])
				idx[k] = o
			}
			core.Storage[entry.Offset+off] = f(idx)
		}
	}
	return &Tensor[S, N]{Names: t.Names, Core: core}
}
