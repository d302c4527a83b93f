// Package blockindex enumerates, in canonical lexicographic order, every
// symmetry-tuple a tensor's edges allow under the global conservation law
// (§4.2), and records each resulting block's dense shape and flat-storage
// offset. It is the layer that turns an edge list into "where does this
// block live in the flat Core.Storage slice".
package blockindex
