package symtensorerr

import "errors"

// Sentinel errors for symtensor's higher-level packages. Every message is
// prefixed "symtensor: ..." for grep-friendliness; wrap with fmt.Errorf's
// %w at the call site when extra context is needed, callers still match via
// errors.Is.
var (
	// ErrShapeMismatch indicates two tensors' edges are incompatible for the
	// requested operation (contraction, elementwise combination).
	ErrShapeMismatch = errors.New("symtensor: shape mismatch")

	// ErrConservationViolation indicates a requested block's charge tuple
	// does not sum to the group identity under the edges' arrows.
	ErrConservationViolation = errors.New("symtensor: conservation law violated")

	// ErrBlockNotFound indicates a requested block has no entry in the
	// tensor's block index.
	ErrBlockNotFound = errors.New("symtensor: block not found")

	// ErrArithmeticDomain indicates an operation (e.g. a kernel given a
	// singular/rank-deficient input where the result is undefined) was asked
	// to produce a value outside its domain.
	ErrArithmeticDomain = errors.New("symtensor: arithmetic domain error")

	// ErrExternalKernel indicates a linalg.Provider call failed internally
	// (e.g. non-convergent iterative routine).
	ErrExternalKernel = errors.New("symtensor: external kernel failure")

	// ErrArrowMismatch names a fermionic arrow disagreement between paired
	// edges. No package in this module returns it: ops.Contract reports a
	// pair without opposite arrows as ops.ErrNotContractible, edge.Fuse
	// uses edge.ErrArrowMismatch, and edgeop gives split sub-edges their
	// parent's arrow.
	ErrArrowMismatch = errors.New("symtensor: fermionic arrow mismatch")

	// ErrNameNotFound indicates a requested index Name is absent from a
	// Tensor's Names.
	ErrNameNotFound = errors.New("symtensor: name not found")

	// ErrDuplicateName indicates a Tensor construction or rename would
	// produce two edges sharing the same Name.
	ErrDuplicateName = errors.New("symtensor: duplicate name")
)
