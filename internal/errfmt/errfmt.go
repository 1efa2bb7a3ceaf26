// Package errfmt provides shared error formatting for file parsers.
package errfmt

import "unicode/utf8"

// MaxLen caps quoted line content in errors. Solution-file lines are
// normally short; anything longer is almost certainly binary garbage and
// must not be propagated wholesale into error chains and logs.
const MaxLen = 256

// truncateUTF8 caps s at max bytes, backtracking to a valid UTF-8 boundary.
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	end := limit
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end]
}

// Truncate caps a string at MaxLen bytes with UTF-8-safe truncation.
func Truncate(s string) string {
	return truncateUTF8(s, MaxLen)
}
