package edgeop

import "errors"

// Sentinel errors specific to edge_operator's own stages. Apply reports
// rank and name problems with these sentinels, not with symtensorerr's;
// errors from edge.New and edge.Fuse (for example edge.ErrArrowMismatch)
// are passed through unchanged.
var (
	// ErrSplitReconstructionMismatch indicates a declared split's sub-edges
	// do not merge back (§4.1) into the edge being split.
	ErrSplitReconstructionMismatch = errors.New("edgeop: split sub-edges do not reconstruct the original edge")

	// ErrUnknownSplitName indicates a post-split axis name is absent from
	// new_names, or a merge constituent is absent from new_names. Split and
	// reversed_before entries naming no axis are ignored, not reported.
	ErrUnknownSplitName = errors.New("edgeop: unknown name in description")

	// ErrMergeGroupNotContiguous indicates a merge group's constituent
	// names are not contiguous in new_names.
	ErrMergeGroupNotContiguous = errors.New("edgeop: merge group is not contiguous in new_names")

	// ErrNewNamesRankMismatch indicates new_names' length does not equal
	// the rank after split.
	ErrNewNamesRankMismatch = errors.New("edgeop: new_names length does not match post-split rank")
)
