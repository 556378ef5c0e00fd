package filter

import "strings"

// Condition is a single field/operator/value clause.
// Value is stored already escaped.
type Condition struct {
	Field    string
	Operator Operator
	Value    string
}

// String renders the condition as one bracketed filter clause.
func (c Condition) String() string {
	return renderCondition(c)
}

// wrap encloses s in one pair of parentheses.
func wrap(s string) string {
	return "(" + s + ")"
}

func renderCondition(c Condition) string {
	switch c.Operator {
	case OpWildcard:
		return wrap(c.Field + "=*")
	case OpEquals:
		return wrap(c.Field + "=" + c.Value)
	case OpDoesNotEqual:
		return wrap("!" + wrap(c.Field+"="+c.Value))
	case OpGreaterOrEqual, OpLessOrEqual, OpApproxEqual:
		return wrap(c.Field + string(c.Operator) + c.Value)
	case OpStartsWith:
		return wrap(c.Field + "=" + c.Value + "*")
	case OpEndsWith:
		return wrap(c.Field + "=*" + c.Value)
	case OpContains:
		return wrap(c.Field + "=*" + c.Value + "*")
	case OpAnd:
		return wrap("&" + wrap(c.Field+"="+c.Value))
	default:
		return ""
	}
}

// Build assembles AND and OR conditions into a single filter string.
//
// AND clauses are concatenated in order and OR clauses are grouped as
// (|...). The result is wrapped in (&...) when there is more than one
// AND clause or any OR clause, so an OR-only query renders as
// (&(|...)). A lone AND clause is returned bare. No conditions yields
// an empty string.
func Build(wheres, orWheres []Condition) string {
	var sb strings.Builder

	for _, c := range wheres {
		sb.WriteString(renderCondition(c))
	}

	if len(orWheres) > 0 {
		var or strings.Builder
		for _, c := range orWheres {
			or.WriteString(renderCondition(c))
		}
		sb.WriteString(wrap("|" + or.String()))
	}

	if len(wheres) > 1 || len(orWheres) > 0 {
		return wrap("&" + sb.String())
	}
	return sb.String()
}
