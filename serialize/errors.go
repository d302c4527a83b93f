package serialize

import "errors"

var (
	// ErrUnknownGroupKind reports a dumped charge kind tag that does not
	// match any of symmetry's five concrete Group implementations.
	ErrUnknownGroupKind = errors.New("serialize: unknown symmetry group kind")

	// ErrMalformedText reports a text stream that does not parse as the
	// fixed line-oriented DumpText layout.
	ErrMalformedText = errors.New("serialize: malformed text stream")

	// ErrMalformedBinary reports a binary stream that ends early or
	// disagrees with the fixed DumpBinary layout.
	ErrMalformedBinary = errors.New("serialize: malformed binary stream")

	// ErrUnsupportedScalar reports a scalar type outside
	// float32/float64/complex64/complex128.
	ErrUnsupportedScalar = errors.New("serialize: unsupported scalar type")
)
