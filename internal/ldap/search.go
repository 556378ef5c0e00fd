// Package ldap composes LDAP search requests around a built filter.
package ldap

import (
	"errors"
	"time"

	goldap "github.com/go-ldap/ldap/v3"

	"github.com/KilimcininKorOglu/obaquery/internal/config"
	"github.com/KilimcininKorOglu/obaquery/internal/filter"
	"github.com/KilimcininKorOglu/obaquery/internal/schema"
)

// SearchScope represents the scope of an LDAP search operation
type SearchScope int

const (
	// ScopeBaseObject searches only the base object
	ScopeBaseObject SearchScope = 0
	// ScopeSingleLevel searches one level below the base object
	ScopeSingleLevel SearchScope = 1
	// ScopeWholeSubtree searches the entire subtree
	ScopeWholeSubtree SearchScope = 2
)

var scopeNames = map[string]SearchScope{
	"base": ScopeBaseObject,
	"one":  ScopeSingleLevel,
	"sub":  ScopeWholeSubtree,
}

// String returns the string representation of the search scope
func (s SearchScope) String() string {
	switch s {
	case ScopeBaseObject:
		return "BaseObject"
	case ScopeSingleLevel:
		return "SingleLevel"
	case ScopeWholeSubtree:
		return "WholeSubtree"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the scope by its short name (base, one, sub).
func (s SearchScope) MarshalText() ([]byte, error) {
	for name, v := range scopeNames {
		if v == s {
			return []byte(name), nil
		}
	}
	return nil, ErrInvalidSearchScope
}

// ParseSearchScope parses base, one or sub. Empty means sub.
func ParseSearchScope(s string) (SearchScope, error) {
	if s == "" {
		return ScopeWholeSubtree, nil
	}
	if v, ok := scopeNames[s]; ok {
		return v, nil
	}
	return 0, ErrInvalidSearchScope
}

// DerefAliases represents how aliases should be dereferenced during search
type DerefAliases int

const (
	// DerefNever never dereferences aliases
	DerefNever DerefAliases = 0
	// DerefInSearching dereferences aliases when searching subordinates
	DerefInSearching DerefAliases = 1
	// DerefFindingBaseObj dereferences aliases when finding the base object
	DerefFindingBaseObj DerefAliases = 2
	// DerefAlways always dereferences aliases
	DerefAlways DerefAliases = 3
)

var derefNames = map[string]DerefAliases{
	"never":     DerefNever,
	"searching": DerefInSearching,
	"finding":   DerefFindingBaseObj,
	"always":    DerefAlways,
}

// String returns the string representation of the deref aliases setting
func (d DerefAliases) String() string {
	switch d {
	case DerefNever:
		return "NeverDerefAliases"
	case DerefInSearching:
		return "DerefInSearching"
	case DerefFindingBaseObj:
		return "DerefFindingBaseObj"
	case DerefAlways:
		return "DerefAlways"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the setting by its short name.
func (d DerefAliases) MarshalText() ([]byte, error) {
	for name, v := range derefNames {
		if v == d {
			return []byte(name), nil
		}
	}
	return nil, ErrInvalidDerefAliases
}

// ParseDerefAliases parses never, searching, finding or always. Empty
// means never.
func ParseDerefAliases(s string) (DerefAliases, error) {
	if s == "" {
		return DerefNever, nil
	}
	if v, ok := derefNames[s]; ok {
		return v, nil
	}
	return 0, ErrInvalidDerefAliases
}

// MatchAllFilter is used when a request carries no conditions.
const MatchAllFilter = "(" + schema.AttrObjectClass + "=*)"

// SearchRequest holds the parameters of an LDAP search around a filter.
type SearchRequest struct {
	// BaseObject is the base DN for the search
	BaseObject string `json:"baseDN" yaml:"baseDN"`
	// Scope is the search scope
	Scope SearchScope `json:"scope" yaml:"scope"`
	// DerefAliases specifies how aliases should be dereferenced
	DerefAliases DerefAliases `json:"derefAliases" yaml:"derefAliases"`
	// SizeLimit is the maximum number of entries to return (0 = no limit)
	SizeLimit int `json:"sizeLimit" yaml:"sizeLimit"`
	// TimeLimit is the maximum time in seconds (0 = no limit)
	TimeLimit int `json:"timeLimit" yaml:"timeLimit"`
	// TypesOnly if true, only attribute types are returned (no values)
	TypesOnly bool `json:"typesOnly" yaml:"typesOnly"`
	// Filter is the search filter
	Filter string `json:"filter" yaml:"filter"`
	// Attributes is the list of attributes to return (empty = all user attributes)
	Attributes []string `json:"attributes" yaml:"attributes"`
}

var (
	// ErrInvalidSearchScope is returned when the search scope is invalid
	ErrInvalidSearchScope = errors.New("ldap: invalid search scope")
	// ErrInvalidDerefAliases is returned when the deref aliases value is invalid
	ErrInvalidDerefAliases = errors.New("ldap: invalid deref aliases value")
)

// NewSearchRequest composes a request from directory settings and a
// builder. Attributes from cfg are selected on the builder before its
// selection is read. A builder without conditions searches with
// MatchAllFilter.
func NewSearchRequest(cfg config.DirectoryConfig, b *filter.Builder) (*SearchRequest, error) {
	scope, err := ParseSearchScope(cfg.Scope)
	if err != nil {
		return nil, err
	}
	deref, err := ParseDerefAliases(cfg.DerefAliases)
	if err != nil {
		return nil, err
	}

	if len(cfg.Attributes) > 0 {
		b = b.Clone().Select(cfg.Attributes...)
	}

	f := b.Query()
	if f == "" {
		f = MatchAllFilter
	}

	return &SearchRequest{
		BaseObject:   cfg.BaseDN,
		Scope:        scope,
		DerefAliases: deref,
		SizeLimit:    cfg.SizeLimit,
		TimeLimit:    int(time.Duration(cfg.TimeLimit) / time.Second),
		TypesOnly:    cfg.TypesOnly,
		Filter:       f,
		Attributes:   b.Selects(),
	}, nil
}

// ToGoLDAP converts the request for use with a go-ldap connection.
func (r *SearchRequest) ToGoLDAP(controls ...goldap.Control) *goldap.SearchRequest {
	return goldap.NewSearchRequest(
		r.BaseObject,
		int(r.Scope),
		int(r.DerefAliases),
		r.SizeLimit,
		r.TimeLimit,
		r.TypesOnly,
		r.Filter,
		r.Attributes,
		controls,
	)
}

// Verify compiles the filter with go-ldap's RFC 4515 compiler.
func (r *SearchRequest) Verify() error {
	_, err := goldap.CompileFilter(r.Filter)
	return err
}
