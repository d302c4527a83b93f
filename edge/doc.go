// Package edge defines a single tensor index: an ordered list of
// charge-labelled segments, plus an optional fermionic arrow.
//
// Edge operations (total dimension, offset↔(charge,sub-offset) mapping,
// reversal, and the two-edge merge of §4.1) are the building blocks the
// blockindex and edgeop packages compose into the full edge_operator
// pipeline. Edge itself never touches storage — it only describes shape.
package edge
