package edgeop

import "github.com/katalvlaran/symtensor/tensor"

// identityNewNames returns names unchanged, for operators that declare no
// split and no merge (Rename, ReverseEdge): NewNames is just the tensor's
// current axis order, renamed where applicable.
func identityNewNames[N Name](names []N, rename map[N]N) []N {
	return applyRename(names, rename)
}

// Rename relabels axes without changing data values or charges. It runs
// through Apply, so the result owns a fresh copy of the storage; use
// tensor.Tensor.Rename to relabel while sharing the Core.
func Rename[S tensor.Scalar, N Name](t *tensor.Tensor[S, N], mapping map[N]N) (*tensor.Tensor[S, N], error) {
	desc := Description[N]{
		Rename:   mapping,
		NewNames: identityNewNames(t.Names, mapping),
	}
	return Apply(t, desc)
}

// Transpose reorders axes to newNames, applying Stage C's always-on
// fermionic transposition sign.
func Transpose[S tensor.Scalar, N Name](t *tensor.Tensor[S, N], newNames []N) (*tensor.Tensor[S, N], error) {
	return Apply(t, Description[N]{NewNames: newNames})
}

// ReverseEdge flips the arrow of every edge named in names, applying the
// §4.3 Stage B sign when applyParity is set (gated per-name by exclude).
func ReverseEdge[S tensor.Scalar, N Name](t *tensor.Tensor[S, N], names []N, applyParity bool, exclude map[N]struct{}) (*tensor.Tensor[S, N], error) {
	set := make(map[N]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	desc := Description[N]{
		ReversedBefore:             set,
		NewNames:                   identityNewNames(t.Names, nil),
		ApplyParity:                applyParity,
		ParityExcludeReverseBefore: exclude,
	}
	return Apply(t, desc)
}

// MergeEdge fuses the contiguous run of edges in constituents into one new
// edge named group, applying the §4.3 Stage E reordering sign when
// applyParity is set.
func MergeEdge[S tensor.Scalar, N Name](t *tensor.Tensor[S, N], group N, constituents []N, applyParity bool, exclude map[N]struct{}) (*tensor.Tensor[S, N], error) {
	desc := Description[N]{
		NewNames:           t.Names,
		Merge:              map[N][]N{group: constituents},
		ApplyParity:        applyParity,
		ParityExcludeMerge: exclude,
	}
	return Apply(t, desc)
}

// SplitEdge replaces the edge named name by parts, in declared order,
// applying the §4.3 Stage A reordering sign when applyParity is set.
func SplitEdge[S tensor.Scalar, N Name](t *tensor.Tensor[S, N], name N, parts []SplitPart[N], applyParity bool, exclude map[N]struct{}) (*tensor.Tensor[S, N], error) {
	newNames := make([]N, 0, len(t.Names)+len(parts))
	for _, n := range t.Names {
		if n == name {
			for _, p := range parts {
				newNames = append(newNames, p.Name)
			}
			continue
		}
		newNames = append(newNames, n)
	}
	desc := Description[N]{
		Split:              map[N][]SplitPart[N]{name: parts},
		NewNames:           newNames,
		ApplyParity:        applyParity,
		ParityExcludeSplit: exclude,
	}
	return Apply(t, desc)
}
