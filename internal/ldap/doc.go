// Package ldap composes LDAP search requests around a built filter.
//
// A SearchRequest carries the parameters that surround a filter on the
// wire: base DN, scope, alias dereferencing, limits and the attribute
// selection. NewSearchRequest fills them from configuration and a
// filter.Builder:
//
//	b := filter.NewBuilder().Select("cn").WhereEquals("uid", "alice")
//	req, err := ldap.NewSearchRequest(cfg.Directory, b)
//	if err != nil {
//	    return err
//	}
//
// ToGoLDAP converts the request into a *ldap.SearchRequest from
// github.com/go-ldap/ldap/v3, ready for Conn.Search.
package ldap
