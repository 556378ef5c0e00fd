package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Operator is a condition operator accepted by the Builder.
type Operator string

const (
	// OpWildcard matches any entry that has the attribute (attr=*).
	OpWildcard Operator = "*"
	// OpEquals matches an exact value (attr=value).
	OpEquals Operator = "="
	// OpDoesNotEqual negates an equality match (!(attr=value)).
	OpDoesNotEqual Operator = "!"
	// OpGreaterOrEqual is an ordering match (attr>=value).
	OpGreaterOrEqual Operator = ">="
	// OpLessOrEqual is an ordering match (attr<=value).
	OpLessOrEqual Operator = "<="
	// OpApproxEqual is an approximate match (attr~=value).
	OpApproxEqual Operator = "~="
	// OpStartsWith is a substring match with an initial component (attr=value*).
	OpStartsWith Operator = "starts_with"
	// OpEndsWith is a substring match with a final component (attr=*value).
	OpEndsWith Operator = "ends_with"
	// OpContains is a substring match with an any component (attr=*value*).
	OpContains Operator = "contains"
	// OpAnd wraps a single equality match in a conjunction (&(attr=value)).
	OpAnd Operator = "&"
)

// operators lists every accepted operator in display order.
var operators = [...]Operator{
	OpWildcard,
	OpEquals,
	OpDoesNotEqual,
	OpGreaterOrEqual,
	OpLessOrEqual,
	OpApproxEqual,
	OpStartsWith,
	OpEndsWith,
	OpContains,
	OpAnd,
}

// ErrInvalidOperator is matched by every InvalidOperatorError.
var ErrInvalidOperator = errors.New("invalid operator")

// InvalidOperatorError reports an operator outside the accepted set.
type InvalidOperatorError struct {
	Operator string
	Accepted []string
}

// Error implements the error interface.
func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("operator %q is invalid, accepted operators are: %s",
		e.Operator, strings.Join(e.Accepted, ", "))
}

// Is reports whether target is ErrInvalidOperator.
func (e *InvalidOperatorError) Is(target error) bool {
	return target == ErrInvalidOperator
}

// Operators returns the accepted operator tokens.
func Operators() []string {
	tokens := make([]string, len(operators))
	for i, op := range operators {
		tokens[i] = string(op)
	}
	return tokens
}

// ParseOperator resolves s to its canonical Operator.
// Matching ignores case and surrounding whitespace.
func ParseOperator(s string) (Operator, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for _, op := range operators {
		if string(op) == token {
			return op, nil
		}
	}
	return "", &InvalidOperatorError{
		Operator: s,
		Accepted: Operators(),
	}
}

// Valid reports whether op is one of the accepted operators.
func (op Operator) Valid() bool {
	for _, known := range operators {
		if op == known {
			return true
		}
	}
	return false
}

// String returns the operator token.
func (op Operator) String() string {
	return string(op)
}
