// Package serialize dumps and loads Tensor values as text or binary,
// grounded on matrix/conversions.go's converter style (plain, allocation-
// light exporter functions with no reflection or external codec) —
// generalized here from "graph to matrix" to "tensor to bytes".
//
// Names and charges are opaque type parameters, so Load needs a little
// help reconstructing them: callers supply a ParseName and the package
// supplies charge parsing itself, since symmetry.Group only has five
// concrete implementations and all of them live in this module.
package serialize
