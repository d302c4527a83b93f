package tensor

import "github.com/katalvlaran/symtensor/symtensorerr"

// Rename returns a new Tensor sharing t's Core (Retain, not cloned — a pure
// relabeling touches no storage) with names replacing the entries at the
// same positions as t.Names. from/to must be parallel slices of equal
// length; every entry of from must be present in t.Names.
func (t *Tensor[S, N]) Rename(from, to []N) (*Tensor[S, N], error) {
	if len(from) != len(to) {
		return nil, symtensorerr.ErrShapeMismatch
	}
	next := append([]N(nil), t.Names...)
	for i, f := range from {
		pos, ok := t.IndexOf(f)
		if !ok {
			return nil, symtensorerr.ErrNameNotFound
		}
		next[pos] = to[i]
	}
	if err := checkDuplicateNames(next); err != nil {
		return nil, err
	}
	return &Tensor[S, N]{Names: next, Core: t.Core.Retain()}, nil
}
