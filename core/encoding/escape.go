// Package encoding provides shared text escaping utilities for the
// export emitters. Escaping applies to literal text only; control
// sequences the emitters produce themselves are never escaped.
package encoding

import "strings"

// EscapeHTML escapes special characters for HTML text content.
// Escapes: & < > "
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// EscapeMarkdown escapes the characters the plain-markup vocabulary
// reserves, so literal text survives a reparse unchanged.
// Escapes: \ * <
func EscapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "<", "\\<")
	return s
}
