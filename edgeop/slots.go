package edgeop

import "github.com/katalvlaran/symtensor/edge"

// slot is one axis of the final, post-merge tensor: either a passthrough
// of a single post-D axis, or the result of fusing a contiguous merge
// group of post-D axes.
type slot[N Name] struct {
	name N

	passthroughPos int // valid when !merged

	merged         bool
	fusion         *edge.Fusion
	groupPositions []int // NewNames positions, ascending, declared Fuse order
}

// buildAutoReverse implements §4.3's automatic reverse insertion: for each
// merge group, the first constituent's (post-B) arrow is the target; every
// other fermionic constituent with a disagreeing arrow is flipped before
// Stage E. Returns the set of NewNames positions flipped at Stage D.
func buildAutoReverse[N Name](desc Description[N], im *intermediate[N], pi, invPi []int) (map[int]bool, error) {
	newPos := make(map[N]int, len(desc.NewNames))
	for j, n := range desc.NewNames {
		newPos[n] = j
	}
	autoFlip := make(map[int]bool)
	for _, constituents := range desc.Merge {
		positions, err := mergeGroupPositions(constituents, desc.NewNames, newPos)
		if err != nil {
			return nil, err
		}
		if len(positions) == 0 {
			continue
		}
		target := im.edges[invPi[positions[0]]].Arrow
		for _, j := range positions[1:] {
			e := im.edges[invPi[j]]
			if e.IsFermi() && e.Arrow != target {
				autoFlip[j] = true
			}
		}
	}
	return autoFlip, nil
}

// edgeAtStageD returns the post-Stage-D edge occupying NewNames position j:
// the post-B intermediate edge at that position, with its arrow flipped
// again if Stage D's auto-reverse selected it.
func edgeAtStageD[N Name](im *intermediate[N], invPi []int, autoFlip map[int]bool, j int) edge.Edge {
	e := im.edges[invPi[j]]
	if autoFlip[j] {
		e = e.Reversed()
	}
	return e
}

// buildSlots implements §4.3 Stage E's grouping: walks NewNames positions
// once, collapsing each merge group (keyed by its first constituent's
// position) into one slot and passing every other position through.
func buildSlots[N Name](desc Description[N], im *intermediate[N], pi, invPi []int, autoFlip map[int]bool) ([]slot[N], error) {
	r := len(desc.NewNames)
	consumed := make([]bool, r)
	groupAt := make(map[int][]int) // first position -> full group positions
	groupName := make(map[int]N)

	newPos := make(map[N]int, r)
	for j, n := range desc.NewNames {
		newPos[n] = j
	}
	for name, constituents := range desc.Merge {
		positions, err := mergeGroupPositions(constituents, desc.NewNames, newPos)
		if err != nil {
			return nil, err
		}
		first := positions[0]
		groupAt[first] = positions
		groupName[first] = name
		for _, p := range positions {
			consumed[p] = true
		}
		consumed[first] = true // re-set; first is also the emission point
	}

	var slots []slot[N]
	for j := 0; j < r; j++ {
		if positions, ok := groupAt[j]; ok {
			groupEdges := make([]edge.Edge, len(positions))
			for i, p := range positions {
				groupEdges[i] = edgeAtStageD(im, invPi, autoFlip, p)
			}
			fusion, err := edge.Fuse(groupEdges)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot[N]{
				name:           groupName[j],
				merged:         true,
				fusion:         &fusion,
				groupPositions: positions,
			})
			continue
		}
		if consumed[j] {
			continue // non-first member of a merge group, already emitted
		}
		slots = append(slots, slot[N]{name: desc.NewNames[j], passthroughPos: j})
	}
	return slots, nil
}
