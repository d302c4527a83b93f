package ops

import (
	"math"

	"github.com/katalvlaran/symtensor/tensor"
)

// scaleDown halves t (as many times as needed) until its largest-magnitude
// entry is at most 1, returning the number of halvings and a fresh scaled
// copy; t itself is left untouched.
func scaleDown[S tensor.Scalar, N Name](t *tensor.Tensor[S, N]) (int, *tensor.Tensor[S, N], error) {
	maxAbs := 0.0
	for _, v := range t.Core.Storage {
		if a := cmplxAbs(v); a > maxAbs {
			maxAbs = a
		}
	}
	scale := 0
	for maxAbs > 1 {
		maxAbs /= 2
		scale++
	}

	out, err := tensor.New[S, N](t.Names, t.Core.Edges)
	if err != nil {
		return 0, nil, err
	}
	copy(out.Core.Storage, t.Core.Storage)
	if scale > 0 {
		divideInPlace(out, math.Pow(2, float64(scale)))
	}
	return scale, out, nil
}

func divideInPlace[S tensor.Scalar, N Name](t *tensor.Tensor[S, N], divisor float64) {
	d := scalarFromFloat[S](divisor)
	for i, v := range t.Core.Storage {
		t.Core.Storage[i] = v / d
	}
}

func scalarFromFloat[S tensor.Scalar](f float64) S {
	var zero S
	switch any(zero).(type) {
	case float32:
		return any(float32(f)).(S)
	case float64:
		return any(f).(S)
	case complex64:
		return any(complex64(complex(f, 0))).(S)
	case complex128:
		return any(complex(f, 0)).(S)
	}
	return zero
}

// addInPlace returns a fresh tensor holding a+b, block for block; a and b
// must share the same edges (same Index), as every term in the
// Exponential series does by construction.
func addInPlace[S tensor.Scalar, N Name](a, b *tensor.Tensor[S, N]) (*tensor.Tensor[S, N], error) {
	out, err := tensor.New[S, N](a.Names, a.Core.Edges)
	if err != nil {
		return nil, err
	}
	for i := range out.Core.Storage {
		out.Core.Storage[i] = a.Core.Storage[i] + b.Core.Storage[i]
	}
	return out, nil
}

func cmplxAbs[S tensor.Scalar](v S) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return complexAbs(complex128(x))
	case complex128:
		return complexAbs(x)
	}
	return 0
}

func complexAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
