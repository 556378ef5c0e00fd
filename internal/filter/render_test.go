package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCondition(t *testing.T) {
	tests := []struct {
		name     string
		cond     Condition
		expected string
	}{
		{"equals", Condition{"cn", OpEquals, "v"}, "(cn=v)"},
		{"not equals", Condition{"cn", OpDoesNotEqual, "v"}, "(!(cn=v))"},
		{"gte", Condition{"n", OpGreaterOrEqual, "1"}, "(n>=1)"},
		{"lte", Condition{"n", OpLessOrEqual, "1"}, "(n<=1)"},
		{"approx", Condition{"cn", OpApproxEqual, "v"}, "(cn~=v)"},
		{"starts with", Condition{"cn", OpStartsWith, "v"}, "(cn=v*)"},
		{"ends with", Condition{"cn", OpEndsWith, "v"}, "(cn=*v)"},
		{"contains", Condition{"cn", OpContains, "v"}, "(cn=*v*)"},
		{"wildcard ignores value", Condition{"cn", OpWildcard, "v"}, "(cn=*)"},
		{"and", Condition{"cn", OpAnd, "v"}, "(&(cn=v))"},
		{"unknown", Condition{"cn", Operator("?"), "v"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cond.String())
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "(x)", wrap("x"))
	assert.Equal(t, "()", wrap(""))
}

func TestBuild(t *testing.T) {
	a := Condition{"a", OpEquals, "1"}
	b := Condition{"b", OpEquals, "2"}
	c := Condition{"c", OpEquals, "3"}

	tests := []struct {
		name     string
		wheres   []Condition
		orWheres []Condition
		expected string
	}{
		{"nothing", nil, nil, ""},
		{"one and", []Condition{a}, nil, "(a=1)"},
		{"two and", []Condition{a, b}, nil, "(&(a=1)(b=2))"},
		{"one or", nil, []Condition{c}, "(&(|(c=3)))"},
		{"two or", nil, []Condition{b, c}, "(&(|(b=2)(c=3)))"},
		{"one and one or", []Condition{a}, []Condition{c}, "(&(a=1)(|(c=3)))"},
		{"insertion order", []Condition{b, a}, nil, "(&(b=2)(a=1))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Build(tt.wheres, tt.orWheres))
		})
	}
}
