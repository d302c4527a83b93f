package linalg

import "errors"

var (
	// ErrDimensionMismatch reports a GEMM/QR/SVD call with non-conformable shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrUnsupportedScalar reports a Provider asked to operate on a scalar
	// type it cannot handle (Default only supports float32/float64).
	ErrUnsupportedScalar = errors.New("linalg: unsupported scalar type")

	// ErrDidNotConverge names an iterative kernel exceeding its iteration
	// budget without reaching the requested tolerance. Default.SVD does not
	// return it: its Jacobi sweep stops after 100 sweeps and the current
	// estimate is used whether or not the tolerance was reached.
	ErrDidNotConverge = errors.New("linalg: did not converge")
)
