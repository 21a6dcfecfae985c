package content

import (
	"strconv"
	"strings"
)

// ConditionKind tags the parsed form of a crisis trigger expression.
type ConditionKind uint8

const (
	// CondNone marks an unrecognized expression; it never fires.
	CondNone ConditionKind = iota
	// CondCompare compares a named player field against a constant.
	CondCompare
	// CondMarketPeak fires when the market index sits at the last position
	// of the trend cycle.
	CondMarketPeak
)

// CompareOp is the comparison operator of a CondCompare condition.
type CompareOp uint8

const (
	OpGreater CompareOp = iota + 1
	OpLess
)

// Condition is a parsed trigger expression. The raw grammar is deliberately
// small: "<field><op><int>" with op '>' or '<', or the literal "market_high".
type Condition struct {
	Kind  ConditionKind
	Field string
	Op    CompareOp
	Value int
}

// ParseCondition parses a trigger expression. Unrecognized expressions yield
// a CondNone condition rather than an error: content with a malformed trigger
// simply never fires.
func ParseCondition(expr string) Condition {
	expr = strings.TrimSpace(expr)
	if expr == "market_high" {
		return Condition{Kind: CondMarketPeak}
	}

	var op CompareOp
	var sep string
	switch {
	case strings.Contains(expr, ">"):
		op, sep = OpGreater, ">"
	case strings.Contains(expr, "<"):
		op, sep = OpLess, "<"
	default:
		return Condition{}
	}

	field, rhs, _ := strings.Cut(expr, sep)
	field = strings.TrimSpace(field)
	value, err := strconv.Atoi(strings.TrimSpace(rhs))
	if err != nil || field == "" {
		return Condition{}
	}
	return Condition{Kind: CondCompare, Field: field, Op: op, Value: value}
}

// Eval evaluates the condition. field resolves a comparison field to its
// current value (reporting whether the field is known); marketAtPeak reports
// whether the market index is at the end of the trend cycle.
func (c Condition) Eval(field func(name string) (int, bool), marketAtPeak bool) bool {
	switch c.Kind {
	case CondCompare:
		current, ok := field(c.Field)
		if !ok {
			return false
		}
		if c.Op == OpGreater {
			return current > c.Value
		}
		return current < c.Value
	case CondMarketPeak:
		return marketAtPeak
	default:
		return false
	}
}
