package symmetry

import "strconv"

// Z2 is the bosonic ℤ₂ parity group: elements {0, 1} under addition mod 2.
// It does not contribute fermionic sign; use FermiZ2 for that.
type Z2 struct {
	V int8 // 0 or 1
}

var _ Group = Z2{}

// NewZ2 constructs a Z2 element, reducing v modulo 2 into {0,1}.
func NewZ2(v int) Z2 {
	return Z2{V: int8(((v % 2) + 2) % 2)}
}

// Add returns the ℤ₂ sum (XOR) of g and other. Panics if other is not Z2.
func (g Z2) Add(other Group) Group {
	o := other.(Z2)
	return Z2{V: g.V ^ o.V}
}

// Neg is the identity map: every ℤ₂ element is its own inverse.
func (g Z2) Neg() Group { return g }

// Identity returns the 0 element.
func (Z2) Identity() Group { return Z2{V: 0} }

// Equal reports whether g and other denote the same ℤ₂ element.
func (g Z2) Equal(other Group) bool {
	o, ok := other.(Z2)
	return ok && g.V == o.V
}

// Less orders 0 before 1.
func (g Z2) Less(other Group) bool {
	o := other.(Z2)
	return g.V < o.V
}

// IsFermi is false: Z2 is a bosonic parity label.
func (Z2) IsFermi() bool { return false }

// Parity is always false for the bosonic variant.
func (Z2) Parity() bool { return false }

// Len is 1: ℤ₂ carries one quantum number.
func (Z2) Len() int { return 1 }

// Key encodes the element for map lookups.
func (g Z2) Key() string { return strconv.Itoa(int(g.V)) }

// String renders the element.
func (g Z2) String() string { return strconv.Itoa(int(g.V)) }
