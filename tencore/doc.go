// Package tencore holds the shared, reference-counted block storage behind a
// Tensor: the edge list that defines its symmetry sectors, the enumerated
// block index built from those edges, and the flat slice every block is
// sliced out of. Multiple Tensor values may point at the same *Core; callers
// that need to mutate storage in place call CloneIfShared first so that
// sharing is always copy-on-write, never aliased surprise-mutation.
package tencore
