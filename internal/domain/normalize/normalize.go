// Package normalize builds the canonical comparison keys used by the
// matching engine. Contacts and attendees must go through the exact same
// normalization or the fuzzy comparison is meaningless.
package normalize

import "strings"

// keySeparator joins the name and company halves of a match key.
const keySeparator = " | "

// Normalize canonicalizes a single value: trim, lowercase, and collapse any
// run of whitespace to a single space. It is idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// BuildKey combines a name and a company into the canonical
// "name | company" match key. When either side is empty the separator is
// stripped, so a contact with no company yields just the normalized name.
// An empty key (both sides empty) means the record cannot be matched.
func BuildKey(name, company string) string {
	n := Normalize(name)
	c := Normalize(company)
	switch {
	case n == "" && c == "":
		return ""
	case c == "":
		return n
	case n == "":
		return c
	default:
		return n + keySeparator + c
	}
}
