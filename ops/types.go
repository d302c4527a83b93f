package ops

import "github.com/katalvlaran/symtensor/tensor"

// Name is the axis-label type every op in this package is generic over,
// matching edgeop's convention so Contract/Trace/etc. slot directly into
// the same Description-driven pipelines.
type Name = tensor.Name
