package edge

import "strconv"

// Contribution is one combination of per-part segment indices that fuses
// into a single segment of the aggregate edge produced by Fuse. It serves
// both directions of edge_operator's Stage A (split) and Stage E (merge):
//   - merge direction: iterate Fusion.ByAggSeg[aggSegIdx] to find every
//     (PartIdx, Offset, Dim) slab that must be copied into that aggregate
//     segment's axis;
//   - split direction: look up Fusion.ByParts[encoded PartIdx] to find
//     which aggregate segment (and which contiguous slab of it) a specific
//     combination of sub-edge segments corresponds to.
type Contribution struct {
	// PartIdx holds one segment index per part, in Fusion.Parts order.
	PartIdx []int

	// AggSegIdx is the index into Fusion.Agg.Segments this combination
	// contributes to.
	AggSegIdx int

	// Offset is this contribution's starting position within the
	// aggregate segment's [0, Dim) axis.
	Offset int

	// Dim is this contribution's length along that axis (product of the
	// per-part segment dims).
	Dim int
}

// Fusion records how a list of edges ("parts") combine into one aggregate
// edge under repeated two-edge merges (§4.1), left to right. It is built
// once by Fuse and then consulted in either direction by edgeop.
type Fusion struct {
	Parts    []Edge
	Agg      Edge
	ByAggSeg [][]Contribution // indexed by Agg segment index
	ByParts  map[string]Contribution
}

// encodePartIdx builds a stable map key from a per-part segment-index tuple.
func encodePartIdx(idx []int) string {
	// A byte per digit-group would be faster, but readability wins here;
	// these keys are built once per Fuse call, not per element copied.
	out := make([]byte, 0, len(idx)*4)
	for i, v := range idx {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendInt(out, int64(v), 10)
	}
	return string(out)
}

// Fuse combines parts left to right into one aggregate Edge, following the
// §4.1 two-edge merge rule at each step: combined charge = q_a + q_b,
// combined dim = d_a * d_b, equal-charge combinations accumulated in
// first-occurrence order. All parts carrying fermionic charge must share
// the same arrow (edge_operator's Stage D aligns arrows before calling
// Fuse for an actual merge; Stage A's split-verification call relies on
// the user's declared sub-edges already agreeing, since a parent edge has
// exactly one arrow).
func Fuse(parts []Edge) (Fusion, error) {
	if len(parts) == 0 {
		return Fusion{}, ErrEmptyFusion
	}

	arrow := parts[0].Arrow
	fermi := parts[0].IsFermi()

	// cur holds, for the aggregate-so-far, one entry per distinct
	// combination of part segment indices seen so far.
	type acc struct {
		partIdx []int
		charge  Edge // reuse Segment.Charge via a 1-segment Edge to keep the Group type
		dim     int
	}
	cur := make([]acc, len(parts[0].Segments))
	for i, s := range parts[0].Segments {
		cur[i] = acc{partIdx: []int{i}, charge: Edge{Segments: []Segment{s}}, dim: s.Dim}
	}

	for pi := 1; pi < len(parts); pi++ {
		part := parts[pi]
		if fermi && part.IsFermi() && part.Arrow != arrow {
			return Fusion{}, ErrArrowMismatch
		}
		next := make([]acc, 0, len(cur)*len(part.Segments))
		for _, e := range cur {
			aCharge := e.charge.Segments[0].Charge
			for bi, bseg := range part.Segments {
				q := aCharge.Add(bseg.Charge)
				pidx := make([]int, len(e.partIdx)+1)
				copy(pidx, e.partIdx)
				pidx[len(e.partIdx)] = bi
				next = append(next, acc{
					partIdx: pidx,
					charge:  Edge{Segments: []Segment{{Charge: q}}},
					dim:     e.dim * bseg.Dim,
				})
			}
		}
		cur = next
	}

	segOf := make(map[string]int)
	var segs []Segment
	var byAggSeg [][]Contribution
	byParts := make(map[string]Contribution, len(cur))
	for _, e := range cur {
		ch := e.charge.Segments[0].Charge
		key := ch.Key()
		idx, ok := segOf[key]
		if !ok {
			idx = len(segs)
			segOf[key] = idx
			segs = append(segs, Segment{Charge: ch, Dim: 0})
			byAggSeg = append(byAggSeg, nil)
		}
		contrib := Contribution{
			PartIdx:   e.partIdx,
			AggSegIdx: idx,
			Offset:    segs[idx].Dim,
			Dim:       e.dim,
		}
		segs[idx].Dim += e.dim
		byAggSeg[idx] = append(byAggSeg[idx], contrib)
		byParts[encodePartIdx(e.partIdx)] = contrib
	}

	agg := Edge{Segments: segs, Arrow: arrow}
	partsCopy := make([]Edge, len(parts))
	copy(partsCopy, parts)
	return Fusion{Parts: partsCopy, Agg: agg, ByAggSeg: byAggSeg, ByParts: byParts}, nil
}

// Lookup resolves a full per-part segment-index tuple to its Contribution.
func (f Fusion) Lookup(partIdx []int) (Contribution, bool) {
	c, ok := f.ByParts[encodePartIdx(partIdx)]
	return c, ok
}
