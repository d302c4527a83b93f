// Package linalg declares the external-kernel seam (§6): GEMM/SVD/QR over a
// plain dense buffer, independent of symmetry bookkeeping. ops.Contract and
// ops.SVD call a Provider to do the actual floating-point work per block;
// symtensor ships Default, a pure-Go implementation, but callers needing a
// BLAS/LAPACK-backed kernel can supply their own Provider.
package linalg
