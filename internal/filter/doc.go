// Package filter builds and parses LDAP search filters.
//
// # Overview
//
// The Builder turns a fluent sequence of field/operator/value conditions
// into a single RFC 4515 filter string:
//
//	b := filter.NewBuilder().
//	    Select("cn", "mail").
//	    WhereStartsWith("cn", "John").
//	    OrWhereContains("mail", "acme")
//
//	b.Query() // (&(cn=John*)(|(mail=*acme*)))
//
// Conditions live in two groups. AND conditions are concatenated in
// insertion order; OR conditions are grouped as (|...). The whole query
// is wrapped in (&...) when it holds more than one AND condition or any
// OR condition. A single AND condition is returned bare.
//
// # Operators
//
// Where and OrWhere take an operator token, matched case-insensitively:
//
//	=            equality         (attr=value)
//	*            presence         (attr=*)
//	!            negated equality (!(attr=value))
//	>=           greater or equal (attr>=value)
//	<=           less or equal    (attr<=value)
//	~=           approximate      (attr~=value)
//	starts_with  substring        (attr=value*)
//	ends_with    substring        (attr=*value)
//	contains     substring        (attr=*value*)
//	&            conjunction      (&(attr=value))
//
// An unknown token fails with an *InvalidOperatorError and nothing is
// added:
//
//	if _, err := b.Where("cn", "like", "x"); errors.Is(err, filter.ErrInvalidOperator) {
//	    // ...
//	}
//
// # Escaping
//
// Values are escaped before they are stored, by default with
// escape.FilterValue. Supply a different function with WithEscaper.
// Field names are used verbatim.
//
// # Parsing
//
// Parse reads a filter string into a Filter tree and Filter.String
// renders it back:
//
//	f, err := filter.Parse("(&(objectClass=person)(uid=alice))")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Children[1].Attribute) // uid
package filter
