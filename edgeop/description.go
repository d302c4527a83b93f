package edgeop

import (
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/tensor"
)

// Name is tensor's Name constraint, re-exported so callers need not import
// tensor solely to name edgeop.Description's type parameter.
type Name = tensor.Name

// SplitPart names one sub-edge produced by splitting a parent edge; Segments
// must, together with its siblings in declared order, reconstruct the
// parent edge under edge.Fuse (§4.1).
type SplitPart[N Name] struct {
	Name     N
	Segments []edge.Segment
}

// Description is edge_operator's declarative input (§4.3). A zero
// Description (no rename, split, reverse, merge, and NewNames equal to the
// tensor's current Names) is the identity operator.
type Description[N Name] struct {
	// Rename is a pure pre-stage relabeling, old name -> new name.
	Rename map[N]N

	// Split replaces one edge by several declared sub-edges.
	Split map[N][]SplitPart[N]

	// ReversedBefore flips these (post-split, post-rename) edges' arrows
	// before the transpose.
	ReversedBefore map[N]struct{}

	// NewNames is the order after split, before merge. Its length must
	// equal the post-split rank.
	NewNames []N

	// Merge combines contiguous (in NewNames) edges into one new edge,
	// named by the map key, constituents listed in merge order.
	Merge map[N][]N

	// ApplyParity is the global fermionic-sign toggle; each per-stage
	// exclusion set lets the caller assign a stage's sign to the partner
	// tensor in a contraction instead of this one.
	ApplyParity bool

	ParityExcludeSplit         map[N]struct{}
	ParityExcludeReverseBefore map[N]struct{}
	ParityExcludeReverseAfter  map[N]struct{}
	ParityExcludeMerge         map[N]struct{}
}

func (d Description[N]) excludeSplit(n N) bool         { return inSet(d.ParityExcludeSplit, n) }
func (d Description[N]) excludeReverseBefore(n N) bool { return inSet(d.ParityExcludeReverseBefore, n) }
func (d Description[N]) excludeReverseAfter(n N) bool  { return inSet(d.ParityExcludeReverseAfter, n) }
func (d Description[N]) excludeMerge(n N) bool         { return inSet(d.ParityExcludeMerge, n) }

func inSet[N Name](set map[N]struct{}, n N) bool {
	if set == nil {
		return false
	}
	_, ok := set[n]
	return ok
}

// signGate reports whether a stage's sign bit should be applied for name n:
// ApplyParity XOR (n is in the stage's exclusion set).
func (d Description[N]) signGate(excluded bool) bool {
	return d.ApplyParity != excluded
}
