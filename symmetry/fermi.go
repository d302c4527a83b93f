package symmetry

import "strconv"

// FermiZ2 is the fermionic ℤ₂ parity group: elements {0, 1} under addition
// mod 2, where the element's value IS its parity bit (0 = even/boson-like,
// 1 = odd/fermion-like). Edges carrying FermiZ2 charges participate in the
// arrow/sign machinery of edge_operator.
type FermiZ2 struct {
	V int8 // 0 or 1
}

var _ Group = FermiZ2{}

// NewFermiZ2 constructs a FermiZ2 element, reducing v modulo 2.
func NewFermiZ2(v int) FermiZ2 {
	return FermiZ2{V: int8(((v % 2) + 2) % 2)}
}

// Add returns the ℤ₂ sum (XOR). Panics if other is not FermiZ2.
func (g FermiZ2) Add(other Group) Group {
	o := other.(FermiZ2)
	return FermiZ2{V: g.V ^ o.V}
}

// Neg is the identity map: every ℤ₂ element is its own inverse.
func (g FermiZ2) Neg() Group { return g }

// Identity returns the 0 element.
func (FermiZ2) Identity() Group { return FermiZ2{V: 0} }

// Equal reports whether g and other denote the same element.
func (g FermiZ2) Equal(other Group) bool {
	o, ok := other.(FermiZ2)
	return ok && g.V == o.V
}

// Less orders 0 before 1.
func (g FermiZ2) Less(other Group) bool {
	o := other.(FermiZ2)
	return g.V < o.V
}

// IsFermi is true: FermiZ2 contributes sign on fermionic reorder.
func (FermiZ2) IsFermi() bool { return true }

// Parity is the element's own value: FermiZ2{1} is odd.
func (g FermiZ2) Parity() bool { return g.V == 1 }

// Len is 1.
func (FermiZ2) Len() int { return 1 }

// Key encodes the element for map lookups.
func (g FermiZ2) Key() string { return "f" + strconv.Itoa(int(g.V)) }

// String renders the element.
func (g FermiZ2) String() string { return strconv.Itoa(int(g.V)) }

// FermiU1 is the fermionic U(1) integer-charge group under ordinary
// addition, where parity is the charge's oddness. Negation preserves
// parity (two's-complement negation never flips the low bit of an odd
// magnitude), satisfying the Group.Parity/Neg invariant.
type FermiU1 struct {
	V int64
}

var _ Group = FermiU1{}

// NewFermiU1 constructs a FermiU1 element with charge v.
func NewFermiU1(v int64) FermiU1 { return FermiU1{V: v} }

// Add returns the integer sum. Panics if other is not FermiU1.
func (g FermiU1) Add(other Group) Group {
	o := other.(FermiU1)
	return FermiU1{V: g.V + o.V}
}

// Neg returns the additive inverse.
func (g FermiU1) Neg() Group { return FermiU1{V: -g.V} }

// Identity returns the 0 charge.
func (FermiU1) Identity() Group { return FermiU1{V: 0} }

// Equal reports whether g and other denote the same charge.
func (g FermiU1) Equal(other Group) bool {
	o, ok := other.(FermiU1)
	return ok && g.V == o.V
}

// Less orders by integer charge.
func (g FermiU1) Less(other Group) bool {
	o := other.(FermiU1)
	return g.V < o.V
}

// IsFermi is true: FermiU1 contributes sign on fermionic reorder.
func (FermiU1) IsFermi() bool { return true }

// Parity reports whether the charge is odd.
func (g FermiU1) Parity() bool { return g.V&1 != 0 }

// Len is 1.
func (FermiU1) Len() int { return 1 }

// Key encodes the element for map lookups.
func (g FermiU1) Key() string { return "F" + strconv.FormatInt(g.V, 10) }

// String renders the element.
func (g FermiU1) String() string { return strconv.FormatInt(g.V, 10) }
