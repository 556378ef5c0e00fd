// Package schema holds directory attribute names shared across packages.
package schema

// Attributes every non-empty selection carries so that returned entries
// can be identified and typed.
const (
	AttrObjectCategory    = "objectcategory"
	AttrDistinguishedName = "distinguishedname"
)

// Common attribute names.
const (
	AttrObjectClass = "objectClass"
	AttrCommonName  = "cn"
	AttrMail        = "mail"
	AttrUID         = "uid"
)
