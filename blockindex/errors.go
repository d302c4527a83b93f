package blockindex

import "errors"

// Sentinel errors for block enumeration and lookup.
var (
	// ErrKeyLengthMismatch indicates a lookup Key's length does not match
	// the tensor's rank.
	ErrKeyLengthMismatch = errors.New("blockindex: key length does not match rank")

	// ErrBlockNotFound indicates a lookup Key has no corresponding block
	// (it either isn't conservation-allowed or is out of range).
	ErrBlockNotFound = errors.New("blockindex: no such block")

	// ErrNameNotFound indicates a name→charge lookup referenced a name
	// absent from the supplied name list.
	ErrNameNotFound = errors.New("blockindex: name not found")
)
