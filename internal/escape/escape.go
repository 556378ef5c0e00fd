// Package escape sanitizes raw values for use in LDAP search filters.
package escape

import (
	ldap "github.com/go-ldap/ldap/v3"
)

// FilterValue escapes raw for embedding in a filter assertion value.
// The filter metacharacters '*', '(', ')', '\' and NUL as well as every
// byte above 0x7f are replaced by their \XX hex form, so the result is
// always ASCII.
func FilterValue(raw string) string {
	return ldap.EscapeFilter(raw)
}

// FilterValues escapes each value in raws.
func FilterValues(raws []string) []string {
	out := make([]string, len(raws))
	for i, r := range raws {
		out[i] = FilterValue(r)
	}
	return out
}
