package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/symtensor/symmetry"
	"github.com/stretchr/testify/require"
)

func TestZ2Arithmetic(t *testing.T) {
	a := symmetry.NewZ2(1)
	b := symmetry.NewZ2(1)
	require.True(t, a.Add(b).Equal(symmetry.NewZ2(0)))
	require.True(t, a.Neg().Equal(a))
	require.False(t, a.IsFermi())
}

func TestU1Arithmetic(t *testing.T) {
	a := symmetry.NewU1(3)
	b := symmetry.NewU1(-1)
	require.True(t, a.Add(b).Equal(symmetry.NewU1(2)))
	require.True(t, a.Neg().Equal(symmetry.NewU1(-3)))
	require.True(t, symmetry.NewU1(1).Less(symmetry.NewU1(2)))
}

func TestFermiZ2Parity(t *testing.T) {
	odd := symmetry.NewFermiZ2(1)
	even := symmetry.NewFermiZ2(0)
	require.True(t, odd.IsFermi())
	require.True(t, odd.Parity())
	require.False(t, even.Parity())
	// Parity must be invariant under Neg.
	require.Equal(t, odd.Parity(), odd.Neg().(symmetry.FermiZ2).Parity())
}

func TestFermiU1ParityInvariantUnderNeg(t *testing.T) {
	for _, v := range []int64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5} {
		q := symmetry.NewFermiU1(v)
		neg := q.Neg().(symmetry.FermiU1)
		require.Equal(t, q.Parity(), neg.Parity(), "parity must be sign-invariant for v=%d", v)
	}
}

func TestTrivialGroup(t *testing.T) {
	var a, b symmetry.Trivial
	require.True(t, a.Equal(b))
	require.False(t, a.IsFermi())
	require.Equal(t, 0, a.Len())
	require.True(t, a.Add(b).Equal(symmetry.Trivial{}))
}
