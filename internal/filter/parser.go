package filter

import (
	"errors"
	"strings"
)

var (
	ErrEmptyFilter      = errors.New("empty filter")
	ErrInvalidFilter    = errors.New("invalid filter syntax")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrMissingAttribute = errors.New("missing attribute name")
)

// Parse parses an LDAP filter string into a Filter structure.
// Supports RFC 4515 filter syntax:
//   - (attr=value)     - equality
//   - (attr=*)         - presence
//   - (attr=*val*)     - substring
//   - (attr>=value)    - greater or equal
//   - (attr<=value)    - less or equal
//   - (attr~=value)    - approximate match
//   - (&(f1)(f2)...)   - AND
//   - (|(f1)(f2)...)   - OR
//   - (!(filter))      - NOT
func Parse(filterStr string) (*Filter, error) {
	filterStr = strings.TrimSpace(filterStr)
	if filterStr == "" {
		return nil, ErrEmptyFilter
	}

	return parseFilter(filterStr)
}

func parseFilter(s string) (*Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyFilter
	}

	// Must start and end with parentheses
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		// Try wrapping simple filters
		if !strings.Contains(s, "(") {
			s = "(" + s + ")"
		} else {
			return nil, ErrInvalidFilter
		}
	}

	// The opening paren must close at the very end
	end := matchingParen(s)
	if end == -1 {
		return nil, ErrUnbalancedParens
	}
	if end != len(s)-1 {
		return nil, ErrInvalidFilter
	}

	// Remove outer parentheses
	inner := s[1 : len(s)-1]
	if inner == "" {
		return nil, ErrEmptyFilter
	}

	// Check for composite filters
	switch inner[0] {
	case '&':
		return parseAndFilter(inner[1:])
	case '|':
		return parseOrFilter(inner[1:])
	case '!':
		return parseNotFilter(inner[1:])
	default:
		return parseSimpleFilter(inner)
	}
}

func parseAndFilter(s string) (*Filter, error) {
	children, err := parseFilterList(s)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, ErrInvalidFilter
	}
	return NewAndFilter(children...), nil
}

func parseOrFilter(s string) (*Filter, error) {
	children, err := parseFilterList(s)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, ErrInvalidFilter
	}
	return NewOrFilter(children...), nil
}

func parseNotFilter(s string) (*Filter, error) {
	s = strings.TrimSpace(s)
	child, err := parseFilter(s)
	if err != nil {
		return nil, err
	}
	return NewNotFilter(child), nil
}

func parseFilterList(s string) ([]*Filter, error) {
	var filters []*Filter
	s = strings.TrimSpace(s)

	for len(s) > 0 {
		if s[0] != '(' {
			return nil, ErrInvalidFilter
		}

		end := matchingParen(s)
		if end == -1 {
			return nil, ErrUnbalancedParens
		}

		filterStr := s[:end+1]
		f, err := parseFilter(filterStr)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)

		s = strings.TrimSpace(s[end+1:])
	}

	return filters, nil
}

// matchingParen returns the index of the paren closing s[0], or -1.
func matchingParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseSimpleFilter(s string) (*Filter, error) {
	idx := strings.IndexByte(s, '=')
	if idx < 0 {
		return nil, ErrInvalidFilter
	}

	attr := s[:idx]
	value := s[idx+1:]

	// The character before '=' selects an ordering or approximate match
	typ := FilterEquality
	if attr != "" {
		switch attr[len(attr)-1] {
		case '>':
			typ = FilterGreaterOrEqual
		case '<':
			typ = FilterLessOrEqual
		case '~':
			typ = FilterApproxMatch
		}
		if typ != FilterEquality {
			attr = attr[:len(attr)-1]
		}
	}

	attr = strings.TrimSpace(attr)
	if attr == "" {
		return nil, ErrMissingAttribute
	}

	switch typ {
	case FilterGreaterOrEqual:
		return NewGreaterOrEqualFilter(attr, []byte(value)), nil
	case FilterLessOrEqual:
		return NewLessOrEqualFilter(attr, []byte(value)), nil
	case FilterApproxMatch:
		return NewApproxMatchFilter(attr, []byte(value)), nil
	}

	// Presence filter: (attr=*)
	if value == "*" {
		return NewPresentFilter(attr), nil
	}

	if strings.Contains(value, "*") {
		return parseSubstringFilter(attr, value)
	}

	return NewEqualityFilter(attr, []byte(value)), nil
}

// parseSubstringFilter splits value on '*'. The first part is the initial
// component, the last part the final one, everything between is "any".
// Initial and final may be empty; an empty "any" (as in "a**b") is
// rejected.
func parseSubstringFilter(attr, value string) (*Filter, error) {
	parts := strings.Split(value, "*")
	last := len(parts) - 1
	for _, part := range parts[1:last] {
		if part == "" {
			return nil, ErrInvalidFilter
		}
	}

	sf := &SubstringFilter{
		Attribute: attr,
	}

	for i, part := range parts {
		if part == "" {
			continue
		}
		switch i {
		case 0:
			sf.Initial = []byte(part)
		case last:
			sf.Final = []byte(part)
		default:
			sf.Any = append(sf.Any, []byte(part))
		}
	}

	return NewSubstringFilter(sf), nil
}
