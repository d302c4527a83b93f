package tencore

import "errors"

// Sentinel errors for Core construction and block access.
var (
	// ErrScalarMismatch indicates a block or fill value's scalar count does
	// not match the block's declared volume.
	ErrScalarMismatch = errors.New("tencore: scalar count does not match block volume")

	// ErrBlockNotFound indicates a lookup key has no conservation-allowed
	// block in this Core's index.
	ErrBlockNotFound = errors.New("tencore: block not found")
)
