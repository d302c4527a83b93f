package edge

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/symtensor/symmetry"
)

// Segment is one (charge, dimension) pair within an Edge.
type Segment struct {
	Charge symmetry.Group
	Dim    int
}

// Edge is a single tensor index: an ordered, charge-distinct list of
// Segments, plus an Arrow meaningful only when the charges are fermionic.
// Once constructed an Edge's segment order is fixed and is part of the
// owning tensor's identity (§3).
type Edge struct {
	Segments []Segment
	Arrow    bool
}

// New validates segments (non-negative dims, distinct charges) and returns
// an Edge. arrow is stored verbatim; it is ignored by conservation-law code
// when the charge type is not fermionic.
func New(segments []Segment, arrow bool) (Edge, error) {
	seen := make(map[string]struct{}, len(segments))
	for _, s := range segments {
		if s.Dim < 0 {
			return Edge{}, ErrNegativeDim
		}
		k := s.Charge.Key()
		if _, ok := seen[k]; ok {
			return Edge{}, ErrDuplicateCharge
		}
		seen[k] = struct{}{}
	}
	out := make([]Segment, len(segments))
	copy(out, segments)
	return Edge{Segments: out, Arrow: arrow}, nil
}

// IsFermi reports whether this edge's charges are fermionic. An edge with
// zero segments is not fermionic (there is nothing to test); callers should
// treat that as "arrow irrelevant".
func (e Edge) IsFermi() bool {
	if len(e.Segments) == 0 {
		return false
	}
	return e.Segments[0].Charge.IsFermi()
}

// TotalDim returns Σ d_i over all segments.
func (e Edge) TotalDim() int {
	total := 0
	for _, s := range e.Segments {
		total += s.Dim
	}
	return total
}

// IndexOf returns the segment index holding charge q, or (-1, false).
func (e Edge) IndexOf(q symmetry.Group) (int, bool) {
	key := q.Key()
	for i, s := range e.Segments {
		if s.Charge.Key() == key {
			return i, true
		}
	}
	return -1, false
}

// Locate maps a global offset p ∈ [0, TotalDim()) to the segment index that
// contains it and the local sub-offset within that segment.
func (e Edge) Locate(p int) (segIdx int, sub int, err error) {
	if p < 0 {
		return 0, 0, ErrOffsetOutOfRange
	}
	base := 0
	for i, s := range e.Segments {
		if p < base+s.Dim {
			return i, p - base, nil
		}
		base += s.Dim
	}
	return 0, 0, ErrOffsetOutOfRange
}

// Offset is the inverse of Locate: given a segment index and a local
// sub-offset, returns the global flat offset.
func (e Edge) Offset(segIdx, sub int) (int, error) {
	if segIdx < 0 || segIdx >= len(e.Segments) {
		return 0, ErrOffsetOutOfRange
	}
	if sub < 0 || sub >= e.Segments[segIdx].Dim {
		return 0, ErrOffsetOutOfRange
	}
	base := 0
	for i := 0; i < segIdx; i++ {
		base += e.Segments[i].Dim
	}
	return base + sub, nil
}

// Equal reports whether e and other have identical segments (charge and
// dim, in order) and the same arrow.
func (e Edge) Equal(other Edge) bool {
	if e.Arrow != other.Arrow || len(e.Segments) != len(other.Segments) {
		return false
	}
	for i, s := range e.Segments {
		o := other.Segments[i]
		if s.Dim != o.Dim || !s.Charge.Equal(o.Charge) {
			return false
		}
	}
	return true
}

// Reversed flips the arrow without touching segments. Per §4.3 Stage B,
// the physical segment order and dims are unchanged by a reversal; only
// the arrow (and, for conservation/display purposes, the effective charge
// sign) changes.
func (e Edge) Reversed() Edge {
	out := Edge{Segments: make([]Segment, len(e.Segments)), Arrow: !e.Arrow}
	copy(out.Segments, e.Segments)
	return out
}

// Negated returns an edge with every segment's charge negated, keeping
// position and dim, and the arrow flipped. This is the primitive behind
// complex conjugation (§4.4): unlike Reversed, it changes the charges
// themselves, not just their interpretation under the conservation law.
func (e Edge) Negated() Edge {
	out := Edge{Segments: make([]Segment, len(e.Segments)), Arrow: !e.Arrow}
	for i, s := range e.Segments {
		out.Segments[i] = Segment{Charge: s.Charge.Neg(), Dim: s.Dim}
	}
	return out
}

// String renders the edge for diagnostics, e.g. "arrow=true [(1,3) (0,2)]".
func (e Edge) String() string {
	var b strings.Builder
	b.WriteString("arrow=")
	if e.Arrow {
		b.WriteString("true ")
	} else {
		b.WriteString("false ")
	}
	b.WriteByte('[')
	for i, s := range e.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		b.WriteString(s.Charge.String())
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(s.Dim))
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}
