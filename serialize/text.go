package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/tensor"
)

// ParseName reconstructs a Name from its String() rendering. Callers own
// this since N's concrete type (and how it parses) is theirs to know.
type ParseName[N Name] func(string) (N, error)

// DumpText writes t as whitespace-separated tokens: rank, then per axis
// (name, arrow, segment count, (kind:value, dim) per segment), then the
// storage length and every storage value in block-major (Core.Storage)
// order — the same order LoadText expects them back in.
func DumpText[S tensor.Scalar, N Name](w io.Writer, t *tensor.Tensor[S, N]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, t.Rank())
	for i, name := range t.Names {
		e := t.Core.Edges[i]
		arrow := 0
		if e.Arrow {
			arrow = 1
		}
		fmt.Fprintf(bw, "%s %d %d\n", name.String(), arrow, len(e.Segments))
		for _, seg := range e.Segments {
			fmt.Fprintf(bw, "%s %d\n", formatGroup(seg.Charge), seg.Dim)
		}
	}
	fmt.Fprintln(bw, len(t.Core.Storage))
	for _, v := range t.Core.Storage {
		s, err := formatScalar(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, s)
	}
	return bw.Flush()
}

// LoadText is DumpText's inverse. parseName reconstructs a tensor's axis
// names; charges parse via the package's own closed symmetry.Group set.
func LoadText[S tensor.Scalar, N Name](r io.Reader, parseName ParseName[N]) (*tensor.Tensor[S, N], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<24)
	sc.Split(bufio.ScanWords)
	next := func() (string, error) {
		if !sc.Scan() {
			return "", ErrMalformedText
		}
		return sc.Text(), nil
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, ErrMalformedText
		}
		return v, nil
	}

	rank, err := nextInt()
	if err != nil {
		return nil, err
	}
	names := make([]N, rank)
	edges := make([]edge.Edge, rank)
	for i := 0; i < rank; i++ {
		nameTok, err := next()
		if err != nil {
			return nil, err
		}
		name, err := parseName(nameTok)
		if err != nil {
			return nil, err
		}
		arrowTok, err := nextInt()
		if err != nil {
			return nil, err
		}
		nseg, err := nextInt()
		if err != nil {
			return nil, err
		}
		segs := make([]edge.Segment, nseg)
		for j := 0; j < nseg; j++ {
			chargeTok, err := next()
			if err != nil {
				return nil, err
			}
			charge, err := parseGroup(chargeTok)
			if err != nil {
				return nil, err
			}
			dim, err := nextInt()
			if err != nil {
				return nil, err
			}
			segs[j] = edge.Segment{Charge: charge, Dim: dim}
		}
		e, err := edge.New(segs, arrowTok != 0)
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

	volume, err := nextInt()
	if err != nil {
		return nil, err
	}
	if volume != len(t.Core.Storage) {
		return nil, ErrMalformedText
	}
	for i := 0; i < volume; i++ {
		tok, err := next()
		if err != nil {
			return nil, err
		}
		v, err := parseScalar[S](tok)
		if err != nil {
			return nil, err
		}
		t.Core.Storage[i] = v
	}
	return t, nil
}
