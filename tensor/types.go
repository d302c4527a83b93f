package tensor

import (
	"fmt"

	"github.com/katalvlaran/symtensor/blockindex"
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/katalvlaran/symtensor/symtensorerr"
	"github.com/katalvlaran/symtensor/tencore"
)

// Name is the constraint on index labels: comparable (usable as a map key
// and for equality) and Stringer (for diagnostics and serialization).
type Name interface {
	comparable
	fmt.Stringer
}

// Scalar re-exports tencore.Scalar so callers only need to import tensor.
type Scalar = tencore.Scalar

// Tensor pairs an ordered list of index Names with the shared Core backing
// its symmetry sectors and storage. Names and Edges (on the Core) are kept
// in lockstep: Names[i] labels Core.Edges[i].
//
// Multiple Tensor values may share the same *tencore.Core; any operation
// that mutates storage acquires an exclusive Core first via
// tencore.CloneIfShared, so sharing is always copy-on-write.
type Tensor[S Scalar, N Name] struct {
	Names []N
	Core  *tencore.Core[S]
}

// New builds a Tensor over names and edges (one edge per name, same order),
// with freshly zeroed storage.
func New[S Scalar, N Name](names []N, edges []edge.Edge, opts ...Option) (*Tensor[S, N], error) {
	if len(names) != len(edges) {
		return nil, fmt.Errorf("tensor: %d names but %d edges", len(names), len(edges))
	}
	cfg := gatherOptions(opts)
	if cfg.validateNames {
		if err := checkDuplicateNames(names); err != nil {
			return nil, err
		}
	}
	c, err := tencore.New[S](edges)
	if err != nil {
		return nil, err
	}
	return &Tensor[S, N]{Names: append([]N(nil), names...), Core: c}, nil
}

func checkDuplicateNames[N Name](names []N) error {
	seen := make(map[N]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w %v", symtensorerr.ErrDuplicateName, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// Rank is the number of indices (edges) the tensor carries.
func (t *Tensor[S, N]) Rank() int { return len(t.Names) }

// IndexOf returns the position of name within t.Names.
func (t *Tensor[S, N]) IndexOf(name N) (int, bool) {
	for i, n := range t.Names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Edges returns the tensor's edges, in Names order.
func (t *Tensor[S, N]) Edges() []edge.Edge { return t.Core.Edges }

// Block looks up the block addressed by charges (one per index, in Names
// order), returning its index Entry and whether such a block exists.
func (t *Tensor[S, N]) Block(charges []symmetry.Group) (blockindex.Entry, bool) {
	key, ok := blockindex.ResolveCharges(t.Core.Edges, charges)
	if !ok {
		return blockindex.Entry{}, false
	}
	return t.Core.Index.Lookup(key)
}
