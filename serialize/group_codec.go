package serialize

import (
	"strconv"

	"github.com/katalvlaran/symtensor/symmetry"
)

// Group kind tags. symmetry ships exactly five concrete Group
// implementations; a closed type switch over them is simpler and more
// honest than a registry built for groups that don't exist yet.
const (
	kindTrivial = 0
	kindZ2      = 1
	kindU1      = 2
	kindFermiZ2 = 3
	kindFermiU1 = 4
)

// groupKind returns q's kind tag and its integer payload (0 for Trivial).
func groupKind(q symmetry.Group) (kind byte, value int64) {
	switch g := q.(type) {
	case symmetry.Trivial:
		return kindTrivial, 0
	case symmetry.Z2:
		return kindZ2, int64(g.V)
	case symmetry.U1:
		return kindU1, g.V
	case symmetry.FermiZ2:
		return kindFermiZ2, int64(g.V)
	case symmetry.FermiU1:
		return kindFermiU1, g.V
	default:
		return 0xff, 0
	}
}

// buildGroup reconstructs a Group from a kind tag and its integer payload.
func buildGroup(kind byte, value int64) (symmetry.Group, error) {
	switch kind {
	case kindTrivial:
		return symmetry.Trivial{}, nil
	case kindZ2:
		return symmetry.NewZ2(int(value)), nil
	case kindU1:
		return symmetry.NewU1(value), nil
	case kindFermiZ2:
		return symmetry.NewFermiZ2(int(value)), nil
	case kindFermiU1:
		return symmetry.NewFermiU1(value), nil
	default:
		return nil, ErrUnknownGroupKind
	}
}

func formatGroup(q symmetry.Group) string {
	kind, value := groupKind(q)
	return strconv.Itoa(int(kind)) + ":" + strconv.FormatInt(value, 10)
}

func parseGroup(s string) (symmetry.Group, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			kind, err := strconv.Atoi(s[:i])
			if err != nil {
				return nil, ErrMalformedText
			}
			value, err := strconv.ParseInt(s[i+1:], 10, 64)
			if err != nil {
				return nil, ErrMalformedText
			}
			return buildGroup(byte(kind), value)
		}
	}
	return nil, ErrMalformedText
}
