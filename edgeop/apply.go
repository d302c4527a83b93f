package edgeop

import (
	"github.com/katalvlaran/symtensor/blockindex"
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/katalvlaran/symtensor/tencore"
	"github.com/katalvlaran/symtensor/tensor"
)

// origGroup records, for one axis of the original (post-rename, pre-split)
// edge list, how its post-split descendants map back to it.
type origGroup struct {
	dropped              bool
	passthroughInterPos  int
	fusion               *edge.Fusion // non-nil iff this edge was split
	members              []int        // intermediate positions, splitPos order
}

func buildOrigGroups[N Name](origEdges []edge.Edge, im *intermediate[N]) []origGroup {
	groups := make([]origGroup, len(origEdges))
	touched := make([]bool, len(origEdges))
	for interPos, oi := range im.origIdx {
		touched[oi] = true
		if im.splitFusion[interPos] == nil {
			groups[oi].passthroughInterPos = interPos
			continue
		}
		groups[oi].fusion = im.splitFusion[interPos]
		if groups[oi].members == nil {
			groups[oi].members = make([]int, len(groups[oi].fusion.Parts))
		}
		groups[oi].members[im.splitPos[interPos]] = interPos
	}
	for oi := range groups {
		groups[oi].dropped = !touched[oi]
	}
	return groups
}

// mergedChoice is one merged slot's resolved set of alternative
// (sub-charge-combination) contributions for a specific output block.
type mergedChoice struct {
	slotIdx int
	combos  []edge.Contribution
}

// Apply implements the edge_operator (§4.3): rename, split, pre-transpose
// reverse, transpose, auto post-transpose reverse, and merge, with
// fermionic sign bookkeeping. No intermediate Core is materialized: for
// every output block, contributing input blocks, slabs, permutation, and
// sign are computed directly and a dense copy is dispatched.
func Apply[S tencore.Scalar, N Name](t *tensor.Tensor[S, N], desc Description[N]) (*tensor.Tensor[S, N], error) {
	renamedNames := applyRename(t.Names, desc.Rename)
	origEdges := t.Core.Edges

	im, err := stageSplit(origEdges, renamedNames, desc)
	if err != nil {
		return nil, err
	}
	stageReverse(im, desc.ReversedBefore)

	pi, invPi, err := buildPermutation(im.names, desc.NewNames)
	if err != nil {
		return nil, err
	}

	autoFlip, err := buildAutoReverse(desc, im, pi, invPi)
	if err != nil {
		return nil, err
	}

	slots, err := buildSlots(desc, im, pi, invPi, autoFlip)
	if err != nil {
		return nil, err
	}

	finalNames := make([]N, len(slots))
	finalEdges := make([]edge.Edge, len(slots))
	for i, s := range slots {
		finalNames[i] = s.name
		if s.merged {
			finalEdges[i] = s.fusion.Agg
		} else {
			finalEdges[i] = edgeAtStageD(im, invPi, autoFlip, s.passthroughPos)
		}
	}

	out, err := tensor.New[S, N](finalNames, finalEdges, tensor.WithoutNameValidation())
	if err != nil {
		return nil, err
	}

	groups := buildOrigGroups(origEdges, im)

	// groupJs[oi] lists the NewNames positions that jointly make up
	// original axis oi's descendants, in declared (Fuse) order.
	groupJs := make([][]int, len(groups))
	for oi, g := range groups {
		switch {
		case g.dropped:
			groupJs[oi] = nil
		case g.fusion == nil:
			groupJs[oi] = []int{pi[g.passthroughInterPos]}
		default:
			js := make([]int, len(g.members))
			for m, interPos := range g.members {
				js[m] = pi[interPos]
			}
			groupJs[oi] = js
		}
	}

	for _, entryOut := range out.Core.Index.Entries {
		if err := applyToBlock(t, out, desc, im, pi, invPi, autoFlip, slots, groups, groupJs, renamedNames, entryOut); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func applyToBlock[S tencore.Scalar, N Name](
	t *tensor.Tensor[S, N], out *tensor.Tensor[S, N], desc Description[N],
	im *intermediate[N], pi, invPi []int, autoFlip map[int]bool,
	slots []slot[N], groups []origGroup, groupJs [][]int, renamedNames []N, entryOut blockindex.Entry,
) error {
	rPrime := len(desc.NewNames)

	var merged []mergedChoice
	for i, s := range slots {
		if s.merged {
			merged = append(merged, mergedChoice{slotIdx: i, combos: s.fusion.ByAggSeg[entryOut.Key.Idx[i]]})
		}
	}
	outStrides := rowMajorStrides(entryOut.Shape)

	totalCombos := 1
	for _, m := range merged {
		totalCombos *= len(m.combos)
	}

	for comboIdx := 0; comboIdx < totalCombos; comboIdx++ {
		stageDTuple := make([]int, rPrime)
		chosen := make([]edge.Contribution, len(merged))
		rem := comboIdx
		for mi := len(merged) - 1; mi >= 0; mi-- {
			n := len(merged[mi].combos)
			chosen[mi] = merged[mi].combos[rem%n]
			rem /= n
		}
		for mi, m := range merged {
			c := chosen[mi]
			for k, j := range slots[m.slotIdx].groupPositions {
				stageDTuple[j] = c.PartIdx[k]
			}
		}
		for i, s := range slots {
			if !s.merged {
				stageDTuple[s.passthroughPos] = entryOut.Key.Idx[i]
			}
		}

		if err := copyOneContribution(t, out, desc, im, pi, invPi, autoFlip, groups, groupJs, slots, merged, chosen, renamedNames, entryOut, outStrides, stageDTuple); err != nil {
			return err
		}
	}
	return nil
}

func copyOneContribution[S tencore.Scalar, N Name](
	t *tensor.Tensor[S, N], out *tensor.Tensor[S, N], desc Description[N],
	im *intermediate[N], pi, invPi []int, autoFlip map[int]bool,
	groups []origGroup, groupJs [][]int, slots []slot[N],
	merged []mergedChoice, chosen []edge.Contribution, renamedNames []N,
	entryOut blockindex.Entry, outStrides []int, stageDTuple []int,
) error {
	rPrime := len(stageDTuple)

	axisDim := make([]int, rPrime)
	charge := make([]symmetry.Group, rPrime)
	fermi := make([]bool, rPrime)
	for j := 0; j < rPrime; j++ {
		e := im.edges[invPi[j]]
		seg := e.Segments[stageDTuple[j]]
		axisDim[j] = seg.Dim
		charge[j] = seg.Charge
		fermi[j] = e.IsFermi()
	}

	// Resolve each original axis's segment index and slab base offset.
	origSegIdx := make([]int, len(groups))
	origBase := make([]int, len(groups))
	for oi, g := range groups {
		switch {
		case g.dropped:
			origSegIdx[oi] = 0
			origBase[oi] = 0
		case g.fusion == nil:
			origSegIdx[oi] = stageDTuple[groupJs[oi][0]]
			origBase[oi] = 0
		default:
			partIdx := make([]int, len(g.members))
			for m, interPos := range g.members {
				partIdx[m] = stageDTuple[pi[interPos]]
			}
			contrib, ok := g.fusion.Lookup(partIdx)
			if !ok {
				return nil // infeasible combination; no data to copy
			}
			origSegIdx[oi] = contrib.AggSegIdx
			origBase[oi] = contrib.Offset
		}
	}

	entryIn, ok := t.Core.Index.Lookup(blockindex.Key{Idx: origSegIdx})
	if !ok {
		return nil
	}
	inStrides := rowMajorStrides(entryIn.Shape)

	sign := computeSign(desc, im, pi, autoFlip, groups, groupJs, slots, renamedNames, charge, fermi)

	volume := product(axisDim)
	loc := make([]int, rPrime)
	for flat := 0; flat < volume; flat++ {
		rem := flat
		for j := rPrime - 1; j >= 0; j-- {
			loc[j] = rem % axisDim[j]
			rem /= axisDim[j]
		}

		inWithin := 0
		for oi := range groups {
			pos := origBase[oi] + withinGroupIndex(groupJs[oi], axisDim, loc)
			inWithin += pos * inStrides[oi]
		}
		outWithin := 0
		for si, s := range slots {
			base := 0
			js := []int{s.passthroughPos}
			if s.merged {
				js = s.groupPositions
				for _, m := range merged {
					if m.slotIdx == si {
						for ci := range chosen {
							if merged[ci].slotIdx == si {
								base = chosen[ci].Offset
							}
						}
					}
				}
			}
			pos := base + withinGroupIndex(js, axisDim, loc)
			outWithin += pos * outStrides[si]
		}

		out.Core.Storage[entryOut.Offset+outWithin] = scale(t.Core.Storage[entryIn.Offset+inWithin], sign)
	}
	return nil
}

func scale[S tencore.Scalar](v S, sign float64) S {
	if sign >= 0 {
		return v
	}
	switch x := any(v).(type) {
	case float32:
		return any(-x).(S)
	case float64:
		return any(-x).(S)
	case complex64:
		return any(-x).(S)
	case complex128:
		return any(-x).(S)
	}
	return v
}

func computeSign[N Name](
	desc Description[N], im *intermediate[N], pi []int, autoFlip map[int]bool,
	groups []origGroup, groupJs [][]int, slots []slot[N], renamedNames []N,
	charge []symmetry.Group, fermi []bool,
) float64 {
	sign := 1.0

	// Stage B: pre-transpose reverse, keyed by intermediate name.
	for i, name := range im.names {
		if !inSet(desc.ReversedBefore, name) {
			continue
		}
		j := pi[i]
		sign *= reverseSign(fermi[j], charge[j], desc.signGate(desc.excludeReverseBefore(name)))
	}

	// Stage C: transpose, always applied.
	chargesInter := make([]symmetry.Group, len(im.names))
	fermiInter := make([]bool, len(im.names))
	for i := range im.names {
		chargesInter[i] = charge[pi[i]]
		fermiInter[i] = fermi[pi[i]]
	}
	sign *= transposeSign(pi, chargesInter, fermiInter)

	// Stage D: auto post-transpose reverse, keyed by NewNames position.
	for j := range desc.NewNames {
		if !autoFlip[j] {
			continue
		}
		sign *= reverseSign(fermi[j], charge[j], desc.signGate(desc.excludeReverseAfter(desc.NewNames[j])))
	}

	// Stage A: split reordering sign, per split group actually resolved.
	for oi, g := range groups {
		if g.dropped || g.fusion == nil {
			continue
		}
		js := groupJs[oi]
		c := make([]symmetry.Group, len(js))
		f := make([]bool, len(js))
		for k, j := range js {
			c[k] = charge[j]
			f[k] = fermi[j]
		}
		sign *= groupReorderSign(c, f, desc.signGate(desc.excludeSplit(renamedNames[oi])))
	}

	// Stage E: merge reordering sign, per merged slot.
	for _, s := range slots {
		if !s.merged {
			continue
		}
		c := make([]symmetry.Group, len(s.groupPositions))
		f := make([]bool, len(s.groupPositions))
		for k, j := range s.groupPositions {
			c[k] = charge[j]
			f[k] = fermi[j]
		}
		sign *= groupReorderSign(c, f, desc.signGate(desc.excludeMerge(s.name)))
	}

	return sign
}
