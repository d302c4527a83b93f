package serialize

import "github.com/katalvlaran/symtensor/tensor"

// Name matches tensor's axis-label constraint so DumpText/DumpBinary and
// their Load counterparts slot directly onto any Tensor in this module.
type Name = tensor.Name
