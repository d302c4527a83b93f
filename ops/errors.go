package ops

import "errors"

// ErrUnknownAxis and ErrNotContractible are deliberately not
// symtensorerr.ErrNameNotFound/ErrArrowMismatch: callers match ops failures
// with errors.Is against these ops-specific sentinels rather than the
// shared taxonomy's more generic ones. The same sentinel is returned for
// either side of an AxisPair; the error does not say which one failed.
var (
	// ErrNoContractionAxes reports a Contract call with an empty pairs list.
	ErrNoContractionAxes = errors.New("ops: no contraction axes given")

	// ErrUnknownAxis reports an AxisPair naming an axis absent from its tensor.
	ErrUnknownAxis = errors.New("ops: unknown axis name")

	// ErrNotContractible reports a pair whose edges aren't mirror images of
	// each other (same Segments, opposite Arrow) and so cannot be summed.
	ErrNotContractible = errors.New("ops: axes are not contractible")

	// ErrNotSquare reports a QR or SVD call on a tensor whose rank is not 2.
	ErrNotSquare = errors.New("ops: tensor is not square over the requested axes")

	// ErrDimensionMismatchTall reports a QR call on a block with more
	// columns than rows; Default.QR only handles the m >= n case.
	ErrDimensionMismatchTall = errors.New("ops: QR requires rows >= columns per block")
)
