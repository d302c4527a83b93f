package linalg

import "math"

// Default is the pure-Go Provider, grounded on the teacher's dense
// Householder QR and Jacobi eigensolver (matrix/impl_linear_algebra.go):
// the same reflection/rotation math, generalized from "square matrix" to
// "arbitrary m×n block" and parameterized over S.
type Default[S Scalar] struct{}

// GEMM is the direct triple-loop product; blocks are small (one
// conservation sector at a time), so no tiling is warranted.
func (Default[S]) GEMM(a []S, m, k int, b []S, k2, n int) ([]S, error) {
	if k != k2 || len(a) != m*k || len(b) != k2*n {
		return nil, ErrDimensionMismatch
	}
	c := make([]S, m*n)
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			if aip == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
	return c, nil
}

// QR runs Householder reflections column by column, same recurrence as
// the teacher's square-matrix QR, generalized to m >= n rectangular input.
// It returns the thin factors: Q is m×n and R is n×n upper triangular.
func (Default[S]) QR(a []S, m, n int) ([]S, []S, error) {
	if len(a) != m*n || m < n {
		return nil, nil, ErrDimensionMismatch
	}
	r := make([]float64, m*n)
	for i, v := range a {
		r[i] = float64(v)
	}
	q := make([]float64, m*m)
	for i := 0; i < m; i++ {
		q[i*m+i] = 1
	}

	v := make([]float64, m)
	for k := 0; k < n; k++ {
		norm := 0.0
		for i := k; i < m; i++ {
			norm += r[i*n+k] * r[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		alpha := -math.Copysign(norm, r[k*n+k])
		for i := range v {
			v[i] = 0
		}
		for i := k; i < m; i++ {
			v[i] = r[i*n+k]
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau := 2.0 / beta

		for j := k; j < n; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * r[i*n+j]
			}
			for i := k; i < m; i++ {
				r[i*n+j] -= tau * v[i] * sum
			}
		}
		for j := 0; j < m; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * q[i*m+j]
			}
			for i := k; i < m; i++ {
				q[i*m+j] -= tau * v[i] * sum
			}
		}
	}

	// q currently holds Q^T (it was built applying the same reflections
	// that triangularize A to an identity); transpose and take the first
	// n columns to get the thin Q (m×n).
	qOut := make([]S, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			qOut[i*n+j] = S(q[j*m+i])
		}
	}
	// R is thin (n×n, upper triangular): only the top n rows of the m×n
	// triangularized working matrix carry nonzero content.
	rOut := make([]S, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			rOut[i*n+j] = S(r[i*n+j])
		}
	}
	return qOut, rOut, nil
}

// SVD computes the thin SVD via the symmetric eigendecomposition of A^T A
// (n×n, n = min dimension after an implicit transpose), using the same
// cyclic Jacobi rotation sweep as the teacher's Eigen, then recovers U
// from A*V*Σ^-1. This is the classical one-sided route, adequate for the
// small per-block matrices a block-sparse SVD operates on.
func (d Default[S]) SVD(a []S, m, n int) ([]S, []float64, []S, error) {
	if len(a) != m*n {
		return nil, nil, nil, ErrDimensionMismatch
	}
	transposed := false
	rows, cols := m, n
	af := make([]float64, len(a))
	for i, v := range a {
		af[i] = float64(v)
	}
	if m < n {
		// Work on A^T (cols x rows) so the Gram matrix is always the
		// smaller of the two, then swap U/V back at the end.
		transposed = true
		rows, cols = n, m
		t := make([]float64, len(af))
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				t[j*m+i] = af[i*n+j]
			}
		}
		af = t
	}

	// Gram matrix G = A^T A, cols x cols.
	g := make([]float64, cols*cols)
	for i := 0; i < cols; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < rows; k++ {
				sum += af[k*cols+i] * af[k*cols+j]
			}
			g[i*cols+j] = sum
		}
	}

	eigvals, eigvecs := jacobiEigen(g, cols, 1e-12, 100)

	order := make([]int, cols)
	for i := range order {
		order[i] = i
	}
	for i := 0; i < cols; i++ {
		for j := i + 1; j < cols; j++ {
			if eigvals[order[j]] > eigvals[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	sv := make([]float64, cols)
	vMat := make([]float64, cols*cols) // cols x cols, columns are eigenvectors in order
	for rank, oi := range order {
		val := eigvals[oi]
		if val < 0 {
			val = 0
		}
		sv[rank] = math.Sqrt(val)
		for r := 0; r < cols; r++ {
			vMat[r*cols+rank] = eigvecs[r*cols+oi]
		}
	}

	uMat := make([]float64, rows*cols)
	for rank := 0; rank < cols; rank++ {
		if sv[rank] <= 1e-14 {
			continue
		}
		for r := 0; r < rows; r++ {
			sum := 0.0
			for k := 0; k < cols; k++ {
				sum += af[r*cols+k] * vMat[k*cols+rank]
			}
			uMat[r*cols+rank] = sum / sv[rank]
		}
	}

	uOut := make([]S, rows*cols)
	vOut := make([]S, cols*cols)
	for i, v := range uMat {
		uOut[i] = S(v)
	}
	for i, v := range vMat {
		vOut[i] = S(v)
	}

	if !transposed {
		return uOut, sv, vOut, nil
	}
	// A was m<n, worked on A^T: swap U and V to restore A = U Σ V^T.
	return vOut, sv, uOut, nil
}

// jacobiEigen runs the classical cyclic Jacobi rotation sweep on symmetric
// g (n×n), returning eigenvalues and the matching eigenvectors as columns
// of an n×n matrix, following the same off-diagonal-elimination loop as
// the teacher's Eigen kernel.
func jacobiEigen(g []float64, n int, tol float64, maxSweeps int) ([]float64, []float64) {
	a := make([]float64, len(g))
	copy(a, g)
	v := make([]float64, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off += a[i*n+j] * a[i*n+j]
			}
		}
		if off < tol {
			break
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				apq := a[p*n+q]
				if math.Abs(apq) < 1e-300 {
					continue
				}
				theta := (a[q*n+q] - a[p*n+p]) / (2 * apq)
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(1+theta*theta))
				c := 1 / math.Sqrt(1+t*t)
				s := t * c

				app, aqq := a[p*n+p], a[q*n+q]
				a[p*n+p] = c*c*app - 2*s*c*apq + s*s*aqq
				a[q*n+q] = s*s*app + 2*s*c*apq + c*c*aqq
				a[p*n+q] = 0
				a[q*n+p] = 0
				for i := 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, aiq := a[i*n+p], a[i*n+q]
					a[i*n+p] = c*aip - s*aiq
					a[p*n+i] = a[i*n+p]
					a[i*n+q] = s*aip + c*aiq
					a[q*n+i] = a[i*n+q]
				}
				for i := 0; i < n; i++ {
					vip, viq := v[i*n+p], v[i*n+q]
					v[i*n+p] = c*vip - s*viq
					v[i*n+q] = s*vip + c*viq
				}
			}
		}
	}

	eigvals := make([]float64, n)
	for i := 0; i < n; i++ {
		eigvals[i] = a[i*n+i]
	}
	return eigvals, v
}
