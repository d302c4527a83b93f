package tensor

import "math"

// scalarAbs returns |v| as a float64 for any Scalar, real or complex.
func scalarAbs[S Scalar](v S) float64 {
	switch x := any(v).(type) {
	case complex64:
		return math.Hypot(float64(real(x)), float64(imag(x)))
	case complex128:
		return math.Hypot(real(x), imag(x))
	default:
		return math.Abs(toFloat(v))
	}
}

func toFloat[S Scalar](v S) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

// Norm computes the p-norm over every stored element across every block:
// p == 2 is the Frobenius/Euclidean norm, p == 1 is the sum of absolute
// values, p == 0 is the count of nonzero elements, p < 0 is the infinity
// (max-abs) norm, and any other finite p is the general p-norm.
func Norm[S Scalar, N Name](t *Tensor[S, N], p float64) float64 {
	switch {
	case p < 0:
		max := 0.0
		for _, v := range t.Core.Storage {
			if a := scalarAbs(v); a > max {
				max = a
			}
		}
		return max
	case p == 0:
		count := 0.0
		for _, v := range t.Core.Storage {
			if scalarAbs(v) != 0 {
				count++
			}
		}
		return count
	default:
		sum := 0.0
		for _, v := range t.Core.Storage {
			sum += math.Pow(scalarAbs(v), p)
		}
		return math.Pow(sum, 1/p)
	}
}
