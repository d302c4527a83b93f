package serialize

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/tensor"
)

// DumpBinary writes t in a fixed little-endian layout: int32 rank, then
// per axis a length-prefixed name string, a byte arrow flag, an int32
// segment count and per segment (byte kind, int64 charge value, int32
// dim), then an int64 storage length and every storage value
// (block-major, Core.Storage order) as 8 bytes per real component (16 for
// complex: real then imaginary).
func DumpBinary[S tensor.Scalar, N Name](w io.Writer, t *tensor.Tensor[S, N]) error {
	if err := binary.Write(w, binary.LittleEndian, int32(t.Rank())); err != nil {
		return err
	}
	for i, name := range t.Names {
		if err := writeString(w, name.String()); err != nil {
			return err
		}
		e := t.Core.Edges[i]
		var arrow byte
		if e.Arrow {
			arrow = 1
		}
		if err := binary.Write(w, binary.LittleEndian, arrow); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(len(e.Segments))); err != nil {
			return err
		}
		for _, seg := range e.Segments {
			kind, value := groupKind(seg.Charge)
			if err := binary.Write(w, binary.LittleEndian, kind); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, value); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, int32(seg.Dim)); err != nil {
				return err
			}
		}
	}
	if err := binary.Write(w, binary.LittleEndian, int64(len(t.Core.Storage))); err != nil {
		return err
	}
	for _, v := range t.Core.Storage {
		if err := writeScalar(w, v); err != nil {
			return err
		}
	}
	return nil
}

// LoadBinary is DumpBinary's inverse.
func LoadBinary[S tensor.Scalar, N Name](r io.Reader, parseName ParseName[N]) (*tensor.Tensor[S, N], error) {
	var rank int32
	if err := binary.Read(r, binary.LittleEndian, &rank); err != nil {
		return nil, ErrMalformedBinary
	}
	names := make([]N, rank)
	edges := make([]edge.Edge, rank)
	for i := int32(0); i < rank; i++ {
		nameStr, err := readString(r)
		if err != nil {
			return nil, err
		}
		name, err := parseName(nameStr)
		if err != nil {
			return nil, err
		}
		var arrow byte
		if err := binary.Read(r, binary.LittleEndian, &arrow); err != nil {
			return nil, ErrMalformedBinary
		}
		var nseg int32
		if err := binary.Read(r, binary.LittleEndian, &nseg); err != nil {
			return nil, ErrMalformedBinary
		}
		segs := make([]edge.Segment, nseg)
		for j := int32(0); j < nseg; j++ {
			var kind byte
			var value int64
			var dim int32
			if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
				return nil, ErrMalformedBinary
			}
			if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
				return nil, ErrMalformedBinary
			}
			if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
				return nil, ErrMalformedBinary
			}
			charge, err := buildGroup(kind, value)
			if err != nil {
				return nil, err
			}
			segs[j] = edge.Segment{Charge: charge, Dim: int(dim)}
		}
		e, err := edge.New(segs, arrow != 0)
		if err != nil {
			return nil, err
		}
		names[i] = name
		edges[i] = e
	}

	t, err := tensor.New[S, N](names, edges)
	if err != nil {
		return nil, err
	}

	var volume int64
	if err := binary.Read(r, binary.LittleEndian, &volume); err != nil {
		return nil, ErrMalformedBinary
	}
	if int(volume) != len(t.Core.Storage) {
		return nil, ErrMalformedBinary
	}
	for i := int64(0); i < volume; i++ {
		v, err := readScalar[S](r)
		if err != nil {
			return nil, err
		}
		t.Core.Storage[i] = v
	}
	return t, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", ErrMalformedBinary
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrMalformedBinary
	}
	return string(buf), nil
}

// writeScalar encodes v's real components as float64, one per real/
// imaginary part; encoding/binary has no native complex support.
func writeScalar[S tensor.Scalar](w io.Writer, v S) error {
	switch x := any(v).(type) {
	case float32:
		return binary.Write(w, binary.LittleEndian, float64(x))
	case float64:
		return binary.Write(w, binary.LittleEndian, x)
	case complex64:
		c := complex128(x)
		if err := binary.Write(w, binary.LittleEndian, real(c)); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, imag(c))
	case complex128:
		if err := binary.Write(w, binary.LittleEndian, real(x)); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, imag(x))
	default:
		return ErrUnsupportedScalar
	}
}

func readScalar[S tensor.Scalar](r io.Reader) (S, error) {
	var zero S
	switch any(zero).(type) {
	case float32:
		var f float64
		if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
			return zero, ErrMalformedBinary
		}
		return any(float32(f)).(S), nil
	case float64:
		var f float64
		if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
			return zero, ErrMalformedBinary
		}
		return any(f).(S), nil
	case complex64:
		var re, im float64
		if err := binary.Read(r, binary.LittleEndian, &re); err != nil {
			return zero, ErrMalformedBinary
		}
		if err := binary.Read(r, binary.LittleEndian, &im); err != nil {
			return zero, ErrMalformedBinary
		}
		return any(complex64(complex(re, im))).(S), nil
	case complex128:
		var re, im float64
		if err := binary.Read(r, binary.LittleEndian, &re); err != nil {
			return zero, ErrMalformedBinary
		}
		if err := binary.Read(r, binary.LittleEndian, &im); err != nil {
			return zero, ErrMalformedBinary
		}
		return any(complex(re, im)).(S), nil
	default:
		return zero, ErrUnsupportedScalar
	}
}
