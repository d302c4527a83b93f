package symmetry

// Trivial is the one-element group used for non-symmetric tensors. Every
// Trivial value is the identity; arithmetic and comparisons are no-ops.
type Trivial struct{}

var _ Group = Trivial{}

// Add returns Trivial{} unconditionally (the only element of this group).
func (Trivial) Add(Group) Group { return Trivial{} }

// Neg returns Trivial{} (self-inverse).
func (Trivial) Neg() Group { return Trivial{} }

// Identity returns Trivial{}.
func (Trivial) Identity() Group { return Trivial{} }

// Equal is always true: Trivial has a single element.
func (Trivial) Equal(Group) bool { return true }

// Less is always false: there is no ordering among a single element.
func (Trivial) Less(Group) bool { return false }

// IsFermi is always false for the trivial group.
func (Trivial) IsFermi() bool { return false }

// Parity is always false for the trivial group.
func (Trivial) Parity() bool { return false }

// Len is 0: a Trivial-symmetric tensor is a plain dense tensor.
func (Trivial) Len() int { return 0 }

// Key returns a constant encoding, since all Trivial values are equal.
func (Trivial) Key() string { return "1" }

// String renders the trivial element.
func (Trivial) String() string { return "*" }
