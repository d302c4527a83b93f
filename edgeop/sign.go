package edgeop

import "github.com/katalvlaran/symtensor/symmetry"

// reverseSign computes (-1)^(parity(q)·gate) for one fermionic arrow flip,
// as a multiplicative float64 factor (+1 or -1). Non-fermionic edges and a
// closed gate contribute no sign.
func reverseSign(isFermi bool, q symmetry.Group, gate bool) float64 {
	if !isFermi || !gate || !q.Parity() {
		return 1
	}
	return -1
}

// transposeSign computes the Stage C sign: parity of the permutation pi
// (old position -> new position) restricted to pairs (i<j) with
// pi[i] > pi[j] where both charges are fermion-odd. Always applied,
// never gated by ApplyParity (§4.3 Stage C).
func transposeSign(pi []int, charges []symmetry.Group, fermi []bool) float64 {
	sign := 1.0
	n := len(pi)
	for i := 0; i < n; i++ {
		if !fermi[i] || !charges[i].Parity() {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !fermi[j] || !charges[j].Parity() {
				continue
			}
			if pi[i] > pi[j] {
				sign = -sign
			}
		}
	}
	return sign
}

// groupReorderSign computes the canonical-side reordering sign for a split
// or merge group (Stage A / Stage E): parity of the number of pairs (i<j)
// within the group that are both fermion-odd, gated by gate. This is the
// convention documented in DESIGN.md for the informally-specified
// "canonical reordering" sign.
func groupReorderSign(charges []symmetry.Group, fermi []bool, gate bool) float64 {
	if !gate {
		return 1
	}
	odd := 0
	for i := range charges {
		if fermi[i] && charges[i].Parity() {
			odd++
		}
	}
	pairs := odd * (odd - 1) / 2
	if pairs%2 == 1 {
		return -1
	}
	return 1
}
