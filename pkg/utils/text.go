package utils

import "strings"

// CleanToValidUTF8 drops invalid UTF-8 sequences and collapses runs of whitespace.
func CleanToValidUTF8(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Join(strings.Fields(s), " ")
}
