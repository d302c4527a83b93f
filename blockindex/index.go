package blockindex

import (
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/symmetry"
)

// Index is the enumerated, canonically ordered set of blocks a tensor's
// edges allow. Entries are in lexicographic Key order, which is also the
// order blocks are laid out back-to-back in Core.Storage.
type Index struct {
	Edges   []edge.Edge
	Entries []Entry
	total   int
	pos     map[string]int
}

// Build enumerates every conservation-allowed symmetry tuple over edges:
// Σ_k s_k·q_k = identity, where s_k = -1 iff edges[k] is fermionic and its
// Arrow is true, else +1 (§3). A rank-0 edge list yields exactly one block
// of volume 1, matching §4.2's rank-0 rule.
//
// Rank is typically small (≤ 10 per §4.3's performance note), so the
// Cartesian product is walked with a plain odometer over a reused []int
// buffer rather than recursion.
func Build(edges []edge.Edge) (*Index, error) {
	if len(edges) == 0 {
		entry := Entry{Key: Key{Idx: nil}, Charges: nil, Shape: nil, Offset: 0, Volume: 1}
		return &Index{
			Edges:   edges,
			Entries: []Entry{entry},
			total:   1,
			pos:     map[string]int{"": 0},
		}, nil
	}

	r := len(edges)
	for k := 0; k < r; k++ {
		if len(edges[k].Segments) == 0 {
			// Empty Cartesian product: no blocks at all.
			return &Index{Edges: edges, pos: map[string]int{}}, nil
		}
	}

	var identity symmetry.Group
	for k := 0; k < r; k++ {
		identity = edges[k].Segments[0].Charge.Identity()
		break
	}

	idx := make([]int, r)
	var entries []Entry
	offset := 0
	for {
		acc := identity
		for k := 0; k < r; k++ {
			seg := edges[k].Segments[idx[k]]
			q := seg.Charge
			if edges[k].IsFermi() && edges[k].Arrow {
				q = q.Neg()
			}
			acc = acc.Add(q)
		}
		if acc.Equal(identity) {
			shape := make([]int, r)
			charges := make([]symmetry.Group, r)
			vol := 1
			for k := 0; k < r; k++ {
				seg := edges[k].Segments[idx[k]]
				shape[k] = seg.Dim
				charges[k] = seg.Charge
				vol *= seg.Dim
			}
			keyIdx := make([]int, r)
			copy(keyIdx, idx)
			entries = append(entries, Entry{
				Key:     Key{Idx: keyIdx},
				Charges: charges,
				Shape:   shape,
				Offset:  offset,
				Volume:  vol,
			})
			offset += vol
		}

		k := r - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < len(edges[k].Segments) {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}

	pos := make(map[string]int, len(entries))
	for i, e := range entries {
		pos[e.Key.Encode()] = i
	}
	return &Index{Edges: edges, Entries: entries, total: offset, pos: pos}, nil
}

// StorageLength returns the sum of all block volumes, i.e. the required
// length of the owning Core's flat storage slice.
func (ix *Index) StorageLength() int { return ix.total }

// Lookup resolves a Key to its Entry.
func (ix *Index) Lookup(k Key) (Entry, bool) {
	i, ok := ix.pos[k.Encode()]
	if !ok {
		return Entry{}, false
	}
	return ix.Entries[i], true
}

// ResolveCharges turns a per-edge charge tuple into the Key addressing it,
// by finding each charge's segment index within its edge. This supports
// the "name→charge mapping" lookup form from §9's open question, once the
// caller has already mapped names to a charge slice in edge order.
func ResolveCharges(edges []edge.Edge, charges []symmetry.Group) (Key, bool) {
	if len(edges) != len(charges) {
		return Key{}, false
	}
	idx := make([]int, len(edges))
	for k, e := range edges {
		i, ok := e.IndexOf(charges[k])
		if !ok {
			return Key{}, false
		}
		idx[k] = i
	}
	return Key{Idx: idx}, true
}
