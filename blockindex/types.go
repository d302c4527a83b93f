package blockindex

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/symtensor/symmetry"
)

// Key identifies a block by the per-edge segment index chosen for each of
// the tensor's edges, in edge order. Two Keys are equal iff their Idx
// slices are equal elementwise; lexicographic order on Idx is the block
// storage order (§3).
type Key struct {
	Idx []int
}

// Encode returns a comparable string form of k, suitable as a map key.
func (k Key) Encode() string {
	var b strings.Builder
	for i, v := range k.Idx {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Entry describes one conservation-allowed block.
type Entry struct {
	Key     Key
	Charges []symmetry.Group
	Shape   []int
	Offset  int
	Volume  int
}
