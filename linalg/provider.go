package linalg

// Provider is the external-kernel seam consumed by ops.Contract and
// ops.SVD/ops.QR: plain row-major dense buffers in, no symmetry awareness.
// A block-sparse tensor operation dispatches one Provider call per
// conservation-allowed block.
type Provider[S Scalar] interface {
	// GEMM computes C = A*B for row-major A (m×k) and B (k×n), returning a
	// freshly allocated row-major C (m×n).
	GEMM(a []S, m, k int, b []S, k2, n int) ([]S, error)

	// QR factors row-major A (m×n, m >= n) into Q (m×n, orthonormal
	// columns) and R (n×n, upper triangular), both row-major.
	QR(a []S, m, n int) (q, r []S, err error)

	// SVD factors row-major A (m×n) into U (m×r), S (length r singular
	// values, descending), and V (n×r), where r = min(m,n).
	SVD(a []S, m, n int) (u []S, s []float64, v []S, err error)
}

// Scalar bounds the scalar types a Provider may operate on. Default only
// implements the floating-point members; complex support is a Non-goal
// extension point for a future Provider.
type Scalar interface {
	~float32 | ~float64
}
