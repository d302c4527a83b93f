// Package symtensor is your in-memory playground for building, reshaping,
// and contracting symmetric block-sparse tensors — from Abelian group
// primitives to fermionic edge reordering and SVD/QR decomposition.
//
// 🚀 What is symtensor?
//
//	A tensor-network library that brings together:
//		• Symmetry algebra: Abelian groups (ℤ₂, U(1), fermionic variants)
//		• Edges: charge-labelled segments, optional fermionic arrow
//		• Block index: conservation-law enumeration in canonical order
//		• Core storage: copy-on-write flat scalar buffer + block map
//		• edge_operator: fused rename/split/reverse/transpose/merge with
//		  fermionic sign bookkeeping — the hard part of the whole library
//		• Consumers: contract, trace, identity, conjugate, exponential, SVD, QR
//
// ✨ Why choose symtensor?
//
//   - Only the blocks allowed by the conservation law are ever stored
//   - Fermionic signs from reordering and arrow reversal are tracked for you
//   - Copy-on-write Cores — rename is free, mutation clones only when shared
//   - Pluggable linear-algebra provider — ships a pure-Go default, but any
//     GEMM/SVD/QR backend can be swapped in without touching the core
//
// Under the hood, everything is organized under one subpackage per layer:
//
//	symmetry/  — Abelian group contract and concrete implementations
//	edge/      — Edge, Segment, arrow, merge
//	blockindex/ — conservation-law block enumeration and offsets
//	tencore/   — Core: flat storage + edge list, copy-on-write
//	tensor/    — Tensor: names + Core, construction, norms, elementwise ops
//	edgeop/    — edge_operator: the fused reshape pipeline
//	linalg/    — GEMM/SVD/QR provider interface + pure-Go default
//	ops/       — contract, trace, identity, conjugate, exponential, SVD/QR
//	serialize/ — text/binary tensor dump and load
//	cmd/symtensorcli/ — inspect a serialized tensor from the command line
//
// Install the tensor package with:
//
//	go get github.com/katalvlaran/symtensor/tensor
package symtensor
