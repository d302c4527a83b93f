// Package symmetry defines the Abelian-group contract that every edge charge
// must satisfy, plus a handful of concrete groups used throughout symtensor:
// the trivial (non-symmetric) group, ℤ₂ and U(1) parity/charge groups, and
// their fermionic counterparts.
//
// A Group value must support addition, negation, an identity element,
// equality, and a total order (used to canonicalize charge tuples). Static
// properties — IsFermi (does this charge contribute a sign on reorder) and
// Len (0 for the trivial group, which marks a non-symmetric tensor) — are
// exposed as methods rather than compile-time constants because edges of
// different concrete Group types may coexist across different tensors in
// the same program; symtensor resolves symmetry dynamically (see the
// Generic parameterization note in SPEC_FULL.md) the way edge charges are
// resolved dynamically in matrix/impl_linear_algebra.go's Matrix interface.
package symmetry
