package ops

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/symtensor/blockindex"
	"github.com/katalvlaran/symtensor/edge"
	"github.com/katalvlaran/symtensor/linalg"
	"github.com/katalvlaran/symtensor/tensor"
)

// AxisPair names one contracted axis on each side of a Contract call. b's
// edge at AxisB must equal a's edge at AxisA with the arrow reversed —
// the usual "one leg points in, the matching leg points out" convention
// for contractible symmetric tensor indices.
type AxisPair[N Name] struct {
	AxisA, AxisB N
}

// Contract sums a and b over every axis pair in pairs, returning a tensor
// whose axes are a's remaining (free) axes in order, followed by b's. Per
// conservation-allowed block pair sharing the same contracted-segment
// tuple, the block's local data is gathered into a dense (free × contract)
// buffer and handed to provider.GEMM; results accumulate into the output
// block (free axes never need reordering, since they're already laid out
// in output order).
func Contract[S linalg.Scalar, N Name](a, b *tensor.Tensor[S, N], provider linalg.Provider[S], pairs []AxisPair[N]) (*tensor.Tensor[S, N], error) {
	if len(pairs) == 0 {
		return nil, ErrNoContractionAxes
	}

	posA := make([]int, len(pairs))
	posB := make([]int, len(pairs))
	for i, p := range pairs {
		ai, ok := a.IndexOf(p.AxisA)
		if !ok {
			return nil, ErrUnknownAxis
		}
		bi, ok := b.IndexOf(p.AxisB)
		if !ok {
			return nil, ErrUnknownAxis
		}
		if !a.Core.Edges[ai].Reversed().Equal(b.Core.Edges[bi]) {
			return nil, ErrNotContractible
		}
		posA[i], posB[i] = ai, bi
	}

	freePosA := remainingPos(a.Rank(), toSet(posA))
	freePosB := remainingPos(b.Rank(), toSet(posB))

	outNames := make([]N, 0, len(freePosA)+len(freePosB))
	outEdges := make([]edge.Edge, 0, len(freePosA)+len(freePosB))
	for _, p := range freePosA {
		outNames = append(outNames, a.Names[p])
		outEdges = append(outEdges, a.Core.Edges[p])
	}
	for _, p := range freePosB {
		outNames = append(outNames, b.Names[p])
		outEdges = append(outEdges, b.Core.Edges[p])
	}

	out, err := tensor.New[S, N](outNames, outEdges)
	if err != nil {
		return nil, err
	}

	aGroups := groupByContractTuple(a.Core.Index, posA)
	bGroups := groupByContractTuple(b.Core.Index, posB)

	for key, aEntries := range aGroups {
		bEntries, ok := bGroups[key]
		if !ok {
			continue
		}
		for _, entryA := range aEntries {
			aBuf, freeVolA, contractVol := gatherMatrix(a.Core.Storage, entryA, freePosA, posA)
			for _, entryB := range bEntries {
				bBuf, _, freeVolB := gatherMatrixSwapped(b.Core.Storage, entryB, posB, freePosB)
				prod, err := provider.GEMM(aBuf, freeVolA, contractVol, bBuf, contractVol, freeVolB)
				if err != nil {
					return nil, err
				}
				if err := accumulate(out, entryA, freePosA, entryB, freePosB, prod, freeVolA, freeVolB); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

func toSet(pos []int) map[int]struct{} {
	m := make(map[int]struct{}, len(pos))
	for _, p := range pos {
		m[p] = struct{}{}
	}
	return m
}

func remainingPos(rank int, exclude map[int]struct{}) []int {
	var out []int
	for i := 0; i < rank; i++ {
		if _, skip := exclude[i]; !skip {
			out = append(out, i)
		}
	}
	return out
}

// groupByContractTuple buckets ix's entries by the segment-index tuple at
// positions (in pair order), so A's and B's entries sharing a contracted
// charge combination can be found by the same string key.
func groupByContractTuple(ix *blockindex.Index, positions []int) map[string][]blockindex.Entry {
	groups := make(map[string][]blockindex.Entry)
	for _, e := range ix.Entries {
		key := encodeTuple(e.Key.Idx, positions)
		groups[key] = append(groups[key], e)
	}
	return groups
}

func encodeTuple(idx []int, positions []int) string {
	var b strings.Builder
	for i, p := range positions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx[p]))
	}
	return b.String()
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = stride
		stride *= shape[k]
	}
	return strides
}

// gatherMatrix reshapes entry's dense block into a (freeVol × contractVol)
// row-major buffer, free axes (in freePos order) major, contract axes (in
// pairPos order) minor.
func gatherMatrix[S linalg.Scalar](storage []S, entry blockindex.Entry, freePos, pairPos []int) ([]S, int, int) {
	strides := rowMajorStrides(entry.Shape)
	freeVol, contractVol := 1, 1
	for _, p := range freePos {
		freeVol *= entry.Shape[p]
	}
	for _, p := range pairPos {
		contractVol *= entry.Shape[p]
	}
	buf := make([]S, freeVol*contractVol)
	loc := make([]int, len(entry.Shape))
	for flat := 0; flat < entry.Volume; flat++ {
		rem := flat
		for k := len(entry.Shape) - 1; k >= 0; k-- {
			loc[k] = rem % entry.Shape[k]
			rem /= entry.Shape[k]
		}
		fi := groupIndex(freePos, entry.Shape, loc)
		ci := groupIndex(pairPos, entry.Shape, loc)
		buf[fi*contractVol+ci] = storage[entry.Offset+dot(loc, strides)]
	}
	return buf, freeVol, contractVol
}

// gatherMatrixSwapped reshapes entry's block into (contractVol × freeVol),
// contract axes major, free axes minor — the layout GEMM's right operand
// needs.
func gatherMatrixSwapped[S linalg.Scalar](storage []S, entry blockindex.Entry, pairPos, freePos []int) ([]S, int, int) {
	strides := rowMajorStrides(entry.Shape)
	contractVol, freeVol := 1, 1
	for _, p := range pairPos {
		contractVol *= entry.Shape[p]
	}
	for _, p := range freePos {
		freeVol *= entry.Shape[p]
	}
	buf := make([]S, contractVol*freeVol)
	loc := make([]int, len(entry.Shape))
	for flat := 0; flat < entry.Volume; flat++ {
		rem := flat
		for k := len(entry.Shape) - 1; k >= 0; k-- {
			loc[k] = rem % entry.Shape[k]
			rem /= entry.Shape[k]
		}
		ci := groupIndex(pairPos, entry.Shape, loc)
		fi := groupIndex(freePos, entry.Shape, loc)
		buf[ci*freeVol+fi] = storage[entry.Offset+dot(loc, strides)]
	}
	return buf, contractVol, freeVol
}

func groupIndex(positions []int, shape, loc []int) int {
	idx := 0
	for _, p := range positions {
		idx = idx*shape[p] + loc[p]
	}
	return idx
}

func dot(a, b []int) int {
	sum := 0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func accumulate[S linalg.Scalar, N Name](out *tensor.Tensor[S, N], entryA blockindex.Entry, freePosA []int, entryB blockindex.Entry, freePosB []int, prod []S, freeVolA, freeVolB int) error {
	keyIdx := make([]int, len(freePosA)+len(freePosB))
	for i, p := range freePosA {
		keyIdx[i] = entryA.Key.Idx[p]
	}
	for i, p := range freePosB {
		keyIdx[len(freePosA)+i] = entryB.Key.Idx[p]
	}
	entryOut, ok := out.Core.Index.Lookup(blockindex.Key{Idx: keyIdx})
	if !ok {
		return nil // no conservation-allowed output block for this combination
	}
	for i := 0; i < freeVolA*freeVolB; i++ {
		out.Core.Storage[entryOut.Offset+i] += prod[i]
	}
	return nil
}
