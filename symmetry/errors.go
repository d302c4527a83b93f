package symmetry

import "errors"

// Sentinel errors for symmetry group construction and comparison.
var (
	// ErrMixedGroupTypes indicates two Group values of different concrete
	// types were combined (e.g. a Z2 added to a U1).
	ErrMixedGroupTypes = errors.New("symmetry: mixed group types")

	// ErrInvalidElement indicates a group element outside its valid domain
	// (e.g. a Z2 value other than 0/1).
	ErrInvalidElement = errors.New("symmetry: invalid group element")
)
