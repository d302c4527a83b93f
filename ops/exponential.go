package ops

import (
	"github.com/katalvlaran/symtensor/linalg"
	"github.com/katalvlaran/symtensor/tensor"
)

// Exponential computes exp(t) for a rank-2 tensor (rowName, colName) with
// mirrored edges, via scaling-and-squaring: t is halved until its largest
// block entry is small, the truncated Taylor series is summed, and the
// result is squared back up. terms bounds the Taylor series length; 8 is
// enough once the scaling step has shrunk the operand below unit norm.
func Exponential[S linalg.Scalar, N Name](t *tensor.Tensor[S, N], rowName, colName N, provider linalg.Provider[S], terms int) (*tensor.Tensor[S, N], error) {
	scale, scaled, err := scaleDown(t)
	if err != nil {
		return nil, err
	}

	result, err := Identity[S, N](rowName, colName, scaled.Core.Edges[0])
	if err != nil {
		return nil, err
	}
	term, err := Identity[S, N](rowName, colName, scaled.Core.Edges[0])
	if err != nil {
		return nil, err
	}
	for k := 1; k <= terms; k++ {
		term, err = Contract(term, scaled, provider, []AxisPair[N]{{AxisA: colName, AxisB: rowName}})
		if err != nil {
			return nil, err
		}
		divideInPlace(term, float64(k))
		result, err = addInPlace(result, term)
		if err != nil {
			return nil, err
		}
	}

	for i := 0; i < scale; i++ {
		result, err = Contract(result, result, provider, []AxisPair[N]{{AxisA: colName, AxisB: rowName}})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
