package tencore

import (
	"sync/atomic"

	"github.com/katalvlaran/symtensor/blockindex"
	"github.com/katalvlaran/symtensor/edge"
)

// Scalar is the set of numeric types a Core's storage may hold.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Core is the shared, reference-counted storage behind one or more Tensor
// values. Edges define the symmetry sectors; Index enumerates the allowed
// blocks in canonical order; Storage holds every block's elements
// back-to-back at the offsets Index records.
//
// A *Core is shared by value-copying the pointer (Retain), never by deep
// copy, until a caller needs to mutate Storage in place — at that point it
// calls CloneIfShared, mirroring core.UnweightedView/InducedSubgraph's
// "never mutate the shared source, hand back a private copy" discipline.
type Core[S Scalar] struct {
	Edges   []edge.Edge
	Storage []S
	Index   *blockindex.Index

	refs *int32
}

// New builds a Core over edges with freshly zeroed storage sized to the
// index's total volume.
func New[S Scalar](edges []edge.Edge) (*Core[S], error) {
	ix, err := blockindex.Build(edges)
	if err != nil {
		return nil, err
	}
	refs := int32(1)
	return &Core[S]{
		Edges:   edges,
		Storage: make([]S, ix.StorageLength()),
		Index:   ix,
		refs:    &refs,
	}, nil
}

// Retain returns c with its shared refcount incremented, for a new owner
// that will only read (or that promises to CloneIfShared before writing).
func (c *Core[S]) Retain() *Core[S] {
	atomic.AddInt32(c.refs, 1)
	return c
}

// Release decrements the shared refcount. Callers that drop a reference to
// c without replacing it with a clone should call Release so later
// CloneIfShared calls on sibling owners can detect uniqueness correctly.
func (c *Core[S]) Release() {
	atomic.AddInt32(c.refs, -1)
}

// Shared reports whether c has more than one owner.
func (c *Core[S]) Shared() bool {
	return atomic.LoadInt32(c.refs) > 1
}

// CloneIfShared returns c unchanged if c is uniquely owned, or a private
// deep copy (fresh Storage, fresh refcount of 1, same Edges/Index — both
// are immutable once built and safe to share) if c has other owners. The
// bool result reports whether a clone was made.
func (c *Core[S]) CloneIfShared() (*Core[S], bool) {
	if !c.Shared() {
		return c, false
	}
	c.Release()
	storage := make([]S, len(c.Storage))
	copy(storage, c.Storage)
	refs := int32(1)
	return &Core[S]{
		Edges:   c.Edges,
		Storage: storage,
		Index:   c.Index,
		refs:    &refs,
	}, true
}

// Block returns the storage slice for the block at offset/volume, a plain
// slice view (no copy) into c.Storage.
func (c *Core[S]) Block(offset, volume int) []S {
	return c.Storage[offset : offset+volume]
}
