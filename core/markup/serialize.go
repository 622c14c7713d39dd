package markup

import (
	"strings"

	"github.com/inkforge/inkforge/core/encoding"
)

var (
	openMarker = map[StyleSet]string{
		Bold:      "**",
		Italic:    "*",
		Underline: "<u>",
	}
	closeMarker = map[StyleSet]string{
		Bold:      "**",
		Italic:    "*",
		Underline: "</u>",
	}
)

// SerializeParagraph renders one paragraph back into the plain-markup
// subset: doubled sigil for bold, single sigil for italic, explicit
// bracket tags for underline, two trailing spaces plus newline for an
// explicit line break. Reserved characters in literal text are escaped;
// markers emitted here never are.
func SerializeParagraph(p Paragraph) string {
	var out strings.Builder
	RenderParagraph(p, RenderHooks{
		Open:  func(s StyleSet) { out.WriteString(openMarker[s]) },
		Close: func(s StyleSet) { out.WriteString(closeMarker[s]) },
		Text:  func(t string) { out.WriteString(encoding.EscapeMarkdown(t)) },
		Break: func() { out.WriteString("  \n") },
	})
	return out.String()
}

// Serialize renders paragraph blocks back into the plain-markup subset,
// with a blank line as the paragraph break. For well-formed input,
// Parse(Serialize(blocks)) yields an equivalent block sequence.
func Serialize(paras []Paragraph) string {
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		parts = append(parts, SerializeParagraph(p))
	}
	return strings.Join(parts, "\n\n")
}
