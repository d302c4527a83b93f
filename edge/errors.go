package edge

import "errors"

// Sentinel errors for edge construction and offset resolution.
var (
	// ErrDuplicateCharge indicates two segments of the same Edge share a
	// charge; §3 requires all q_i within an edge to be distinct.
	ErrDuplicateCharge = errors.New("edge: duplicate charge in segment list")

	// ErrNegativeDim indicates a segment was constructed with dim < 0.
	ErrNegativeDim = errors.New("edge: negative segment dimension")

	// ErrOffsetOutOfRange indicates Locate was called with an offset
	// outside [0, TotalDim()), or Offset with a segment index or
	// sub-offset outside the edge.
	ErrOffsetOutOfRange = errors.New("edge: offset out of range")

	// ErrChargeNotFound names a charge absent from an edge's segment list.
	// Offset takes a segment index, not a charge; IndexOf reports a missing
	// charge through its bool result rather than this error.
	ErrChargeNotFound = errors.New("edge: charge not found")

	// ErrArrowMismatch indicates two edges being merged or fused disagree
	// on arrow direction while both carry fermionic charges.
	ErrArrowMismatch = errors.New("edge: fermionic arrow mismatch")

	// ErrEmptyFusion indicates Fuse was called with zero parts.
	ErrEmptyFusion = errors.New("edge: cannot fuse zero edges")
)
