package query

import (
	"fmt"
	"strings"
)

// Op names a set algebra operation.
type Op string

const (
	OpUnion               Op = "union"
	OpIntersection        Op = "intersection"
	OpDifference          Op = "difference"
	OpSymmetricDifference Op = "symmetric_difference"
	OpDisjoint            Op = "disjoint"
	OpSubset              Op = "subset"
	OpProperSubset        Op = "proper_subset"
	OpEqual               Op = "equal"
)

var knownOps = map[Op]struct{}{
	OpUnion:               {},
	OpIntersection:        {},
	OpDifference:          {},
	OpSymmetricDifference: {},
	OpDisjoint:            {},
	OpSubset:              {},
	OpProperSubset:        {},
	OpEqual:               {},
}

// ParseOp resolves an operation name, ignoring case and accepting dashes in place of underscores.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if _, ok := knownOps[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return op, nil
}

// IsPredicate returns true if the operation yields a boolean rather than a set.
func (o Op) IsPredicate() bool {
	switch o {
	case OpDisjoint, OpSubset, OpProperSubset, OpEqual:
		return true
	default:
		return false
	}
}

// IsVariadic returns true if the operation accepts any number of operands.
func (o Op) IsVariadic() bool {
	switch o {
	case OpUnion, OpIntersection, OpSymmetricDifference:
		return true
	default:
		return false
	}
}
