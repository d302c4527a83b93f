package symmetry

import "strconv"

// U1 is the bosonic U(1) integer-charge group under ordinary addition. It
// does not contribute fermionic sign; use FermiU1 for that.
type U1 struct {
	V int64
}

var _ Group = U1{}

// NewU1 constructs a U1 element with charge v.
func NewU1(v int64) U1 { return U1{V: v} }

// Add returns the integer sum. Panics if other is not U1.
func (g U1) Add(other Group) Group {
	o := other.(U1)
	return U1{V: g.V + o.V}
}

// Neg returns the additive inverse.
func (g U1) Neg() Group { return U1{V: -g.V} }

// Identity returns the 0 charge.
func (U1) Identity() Group { return U1{V: 0} }

// Equal reports whether g and other denote the same charge.
func (g U1) Equal(other Group) bool {
	o, ok := other.(U1)
	return ok && g.V == o.V
}

// Less orders by integer charge.
func (g U1) Less(other Group) bool {
	o := other.(U1)
	return g.V < o.V
}

// IsFermi is false: U1 is a bosonic charge label.
func (U1) IsFermi() bool { return false }

// Parity is always false for the bosonic variant.
func (U1) Parity() bool { return false }

// Len is 1: U(1) carries one quantum number.
func (U1) Len() int { return 1 }

// Key encodes the element for map lookups.
func (g U1) Key() string { return strconv.FormatInt(g.V, 10) }

// String renders the element.
func (g U1) String() string { return strconv.FormatInt(g.V, 10) }
