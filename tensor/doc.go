// Package tensor defines the user-facing symmetric block-sparse tensor
// type: a named index list paired with a shared, reference-counted
// tencore.Core. Construction, renaming, element access, norms, and
// elementwise transforms live here; the edge_operator pipeline (rename,
// split, transpose, merge, arrow reversal) lives in edgeop, and linear
// algebra consumers live in ops.
package tensor
