package serialize

import (
	"strconv"

	"github.com/katalvlaran/symtensor/tensor"
)

// formatScalar renders v precisely enough to round-trip through parseScalar.
func formatScalar[S tensor.Scalar](v S) (string, error) {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case complex64:
		return strconv.FormatComplex(complex128(x), 'g', -1, 64), nil
	case complex128:
		return strconv.FormatComplex(x, 'g', -1, 128), nil
	default:
		return "", ErrUnsupportedScalar
	}
}

func parseScalar[S tensor.Scalar](s string) (S, error) {
	var zero S
	switch any(zero).(type) {
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return zero, ErrMalformedText
		}
		return any(float32(f)).(S), nil
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, ErrMalformedText
		}
		return any(f).(S), nil
	case complex64:
		c, err := strconv.ParseComplex(s, 64)
		if err != nil {
			return zero, ErrMalformedText
		}
		return any(complex64(c)).(S), nil
	case complex128:
		c, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return zero, ErrMalformedText
		}
		return any(c).(S), nil
	default:
		return zero, ErrUnsupportedScalar
	}
}
