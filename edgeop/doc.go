// Package edgeop implements the edge_operator: a single fused pipeline
// applying a chosen subset of {rename, split, arrow-reverse, transpose,
// merge} to a symmetric block-sparse Tensor in one pass, with fermionic
// sign bookkeeping.
//
// The pipeline runs in five logical stages (A resolve/split, B
// pre-transpose reverse, C transpose, D post-transpose reverse
// (auto-inserted), E merge) but never materializes an intermediate Core:
// Apply enumerates the final tensor's blocks directly and, for each one,
// traces the contributing input block(s), the slab within each, the
// permutation, and the combined sign, then dispatches a dense copy.
package edgeop
