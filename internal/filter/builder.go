package filter

import (
	"strings"

	"github.com/KilimcininKorOglu/obaquery/internal/escape"
	"github.com/KilimcininKorOglu/obaquery/internal/schema"
)

// EscapeFunc sanitizes a raw assertion value before it is stored.
type EscapeFunc func(raw string) string

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithEscaper replaces the value escape function.
// A nil fn stores values verbatim.
func WithEscaper(fn EscapeFunc) BuilderOption {
	return func(b *Builder) {
		if fn == nil {
			fn = func(raw string) string { return raw }
		}
		b.escape = fn
	}
}

// Builder accumulates selected attributes and conditions and assembles
// them into an LDAP search filter.
//
// A Builder belongs to a single query construction and must not be
// mutated from several goroutines at once. Use Clone to fan out.
type Builder struct {
	selects  []string
	wheres   []Condition
	orWheres []Condition

	escape EscapeFunc

	version      uint64
	cached       string
	cacheVersion uint64
	cacheValid   bool
}

// NewBuilder creates an empty Builder. Values are escaped with
// escape.FilterValue unless WithEscaper says otherwise.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		escape: escape.FilterValue,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Select adds attribute names to the selection. Blank names are dropped.
func (b *Builder) Select(fields ...string) *Builder {
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		b.selects = append(b.selects, f)
	}
	return b
}

// Where adds an AND condition. The operator is validated before
// anything is stored; on error the builder is returned unchanged.
func (b *Builder) Where(field, operator, value string) (*Builder, error) {
	op, err := ParseOperator(operator)
	if err != nil {
		return b, err
	}
	b.addWhere(field, op, value)
	return b, nil
}

// OrWhere adds an OR condition. See Where.
func (b *Builder) OrWhere(field, operator, value string) (*Builder, error) {
	op, err := ParseOperator(operator)
	if err != nil {
		return b, err
	}
	b.addOrWhere(field, op, value)
	return b, nil
}

// WhereEquals adds (field=value).
func (b *Builder) WhereEquals(field, value string) *Builder {
	b.addWhere(field, OpEquals, value)
	return b
}

// WhereNotEquals adds (!(field=value)).
func (b *Builder) WhereNotEquals(field, value string) *Builder {
	b.addWhere(field, OpDoesNotEqual, value)
	return b
}

// WhereHas adds a presence match (field=*).
func (b *Builder) WhereHas(field string) *Builder {
	b.addWhere(field, OpWildcard, "")
	return b
}

// WhereContains adds (field=*value*).
func (b *Builder) WhereContains(field, value string) *Builder {
	b.addWhere(field, OpContains, value)
	return b
}

// WhereStartsWith adds (field=value*).
func (b *Builder) WhereStartsWith(field, value string) *Builder {
	b.addWhere(field, OpStartsWith, value)
	return b
}

// WhereEndsWith adds (field=*value).
func (b *Builder) WhereEndsWith(field, value string) *Builder {
	b.addWhere(field, OpEndsWith, value)
	return b
}

// OrWhereEquals adds (field=value) to the OR group.
func (b *Builder) OrWhereEquals(field, value string) *Builder {
	b.addOrWhere(field, OpEquals, value)
	return b
}

// OrWhereNotEquals adds (!(field=value)) to the OR group.
func (b *Builder) OrWhereNotEquals(field, value string) *Builder {
	b.addOrWhere(field, OpDoesNotEqual, value)
	return b
}

// OrWhereHas adds (field=*) to the OR group.
func (b *Builder) OrWhereHas(field string) *Builder {
	b.addOrWhere(field, OpWildcard, "")
	return b
}

// OrWhereContains adds (field=*value*) to the OR group.
func (b *Builder) OrWhereContains(field, value string) *Builder {
	b.addOrWhere(field, OpContains, value)
	return b
}

// OrWhereStartsWith adds (field=value*) to the OR group.
func (b *Builder) OrWhereStartsWith(field, value string) *Builder {
	b.addOrWhere(field, OpStartsWith, value)
	return b
}

// OrWhereEndsWith adds (field=*value) to the OR group.
func (b *Builder) OrWhereEndsWith(field, value string) *Builder {
	b.addOrWhere(field, OpEndsWith, value)
	return b
}

func (b *Builder) addWhere(field string, op Operator, value string) {
	b.wheres = append(b.wheres, b.condition(field, op, value))
	b.version++
}

func (b *Builder) addOrWhere(field string, op Operator, value string) {
	b.orWheres = append(b.orWheres, b.condition(field, op, value))
	b.version++
}

func (b *Builder) condition(field string, op Operator, value string) Condition {
	if op == OpWildcard {
		value = ""
	}
	if value != "" {
		value = b.escape(value)
	}
	return Condition{Field: field, Operator: op, Value: value}
}

// Query returns the assembled filter. The result is cached until the
// next condition is added.
func (b *Builder) Query() string {
	if b.cacheValid && b.cacheVersion == b.version {
		return b.cached
	}
	b.cached = Build(b.wheres, b.orWheres)
	b.cacheVersion = b.version
	b.cacheValid = true
	return b.cached
}

// String returns Query.
func (b *Builder) String() string {
	return b.Query()
}

// Compile parses the assembled filter into a Filter tree.
func (b *Builder) Compile() (*Filter, error) {
	return Parse(b.Query())
}

// Selects returns the selected attributes. A non-empty selection always
// carries the object category and distinguished name attributes. An
// empty selection stays empty, meaning all attributes.
func (b *Builder) Selects() []string {
	if len(b.selects) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(b.selects)+2)
	out = append(out, b.selects...)
	return append(out, schema.AttrObjectCategory, schema.AttrDistinguishedName)
}

// Wheres returns a copy of the AND conditions.
func (b *Builder) Wheres() []Condition {
	return append([]Condition(nil), b.wheres...)
}

// OrWheres returns a copy of the OR conditions.
func (b *Builder) OrWheres() []Condition {
	return append([]Condition(nil), b.orWheres...)
}

// HasConditions reports whether any condition has been added.
func (b *Builder) HasConditions() bool {
	return len(b.wheres) > 0 || len(b.orWheres) > 0
}

// Clone returns an independent copy of the builder.
func (b *Builder) Clone() *Builder {
	return &Builder{
		selects:      append([]string(nil), b.selects...),
		wheres:       b.Wheres(),
		orWheres:     b.OrWheres(),
		escape:       b.escape,
		version:      b.version,
		cached:       b.cached,
		cacheVersion: b.cacheVersion,
		cacheValid:   b.cacheValid,
	}
}

// Reset drops all selects and conditions, keeping the escape function.
func (b *Builder) Reset() *Builder {
	b.selects = nil
	b.wheres = nil
	b.orWheres = nil
	b.version++
	return b
}
