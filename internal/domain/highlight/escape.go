// Package highlight resolves keyword spans inside transcript text.
// Given the fixed vocabulary, Resolver annotates a document with
// non-overlapping leftmost-longest keyword spans; EscapeLiteral makes
// arbitrary user strings safe to hand to a regexp engine as literal text.
package highlight

import "regexp"

// EscapeLiteral returns a pattern that matches s and only s as a literal
// sequence. Every regexp metacharacter (. * + ? ^ $ { } ( ) | [ ] \ and
// friends) is escaped; no case-folding, no trimming.
func EscapeLiteral(s string) string {
	return regexp.QuoteMeta(s)
}
