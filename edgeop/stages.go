package edgeop

import (
	"github.com/katalvlaran/symtensor/edge"
)

// intermediate holds, per post-split axis (in declaration order), everything
// needed to trace that axis back to the original edge it derives from.
// stageReverse folds Stage B's arrow flips into edges in place, so after it
// runs edges holds the post-B edges.
type intermediate[N Name] struct {
	names []N
	edges []edge.Edge

	origIdx      []int          // index into the post-rename original edge list
	splitFusion  []*edge.Fusion // nil unless this axis came from a split
	splitPos     []int          // this axis's position within its split group's Parts order
}

func applyRename[N Name](names []N, rename map[N]N) []N {
	out := make([]N, len(names))
	for i, n := range names {
		if r, ok := rename[n]; ok {
			out[i] = r
		} else {
			out[i] = n
		}
	}
	return out
}

// stageSplit implements §4.3 Stage A: replace every split-declared edge by
// its sub-edges, after verifying the sub-edges reconstruct the parent
// under edge.Fuse. An edge split into zero sub-edges is dropped entirely
// if it is trivially dimensioned (§4.3 edge case); an empty split of any
// other edge is rejected with ErrSplitReconstructionMismatch. Edges not
// named in Split pass through unchanged.
func stageSplit[N Name](edges []edge.Edge, names []N, desc Description[N]) (*intermediate[N], error) {
	im := &intermediate[N]{}
	for i, name := range names {
		parts, isSplit := desc.Split[name]
		if !isSplit {
			im.names = append(im.names, name)
			im.edges = append(im.edges, edges[i])
			im.origIdx = append(im.origIdx, i)
			im.splitFusion = append(im.splitFusion, nil)
			im.splitPos = append(im.splitPos, 0)
			continue
		}
		if len(parts) == 0 {
			if edges[i].TotalDim() != 1 {
				return nil, ErrSplitReconstructionMismatch
			}
			continue // dropped
		}

		subEdges := make([]edge.Edge, len(parts))
		for k, p := range parts {
			se, err := edge.New(p.Segments, edges[i].Arrow)
			if err != nil {
				return nil, err
			}
			subEdges[k] = se
		}
		fusion, err := edge.Fuse(subEdges)
		if err != nil {
			return nil, err
		}
		if !fusion.Agg.Equal(edges[i]) {
			return nil, ErrSplitReconstructionMismatch
		}
		for k, p := range parts {
			im.names = append(im.names, p.Name)
			im.edges = append(im.edges, subEdges[k])
			im.origIdx = append(im.origIdx, i)
			im.splitFusion = append(im.splitFusion, &fusion)
			im.splitPos = append(im.splitPos, k)
		}
	}
	return im, nil
}

// stageReverse implements §4.3 Stage B: flip the arrow of every axis whose
// name is in set, in place. Segments are untouched (edge.Reversed's
// contract), so every downstream segment-index lookup stays valid.
func stageReverse[N Name](im *intermediate[N], set map[N]struct{}) {
	for i, name := range im.names {
		if inSet(set, name) {
			im.edges[i] = im.edges[i].Reversed()
		}
	}
}

// buildPermutation returns pi where pi[i] is the NewNames position of the
// intermediate axis at position i, and invPi the inverse.
func buildPermutation[N Name](interNames, newNames []N) (pi, invPi []int, err error) {
	if len(interNames) != len(newNames) {
		return nil, nil, ErrNewNamesRankMismatch
	}
	newPos := make(map[N]int, len(newNames))
	for j, n := range newNames {
		newPos[n] = j
	}
	pi = make([]int, len(interNames))
	invPi = make([]int, len(interNames))
	for i, n := range interNames {
		j, ok := newPos[n]
		if !ok {
			return nil, nil, ErrUnknownSplitName
		}
		pi[i] = j
		invPi[j] = i
	}
	return pi, invPi, nil
}

// mergeGroupPositions resolves a merge group's declared constituent names
// to NewNames positions, and validates they form a contiguous, ascending
// range — the range's declared order is taken as the Fuse order.
func mergeGroupPositions[N Name](constituents []N, newNames []N, newPos map[N]int) ([]int, error) {
	positions := make([]int, len(constituents))
	for i, n := range constituents {
		j, ok := newPos[n]
		if !ok {
			return nil, ErrUnknownSplitName
		}
		positions[i] = j
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] != positions[i-1]+1 {
			return nil, ErrMergeGroupNotContiguous
		}
	}
	return positions, nil
}
