// Package markdown provides the plain-markup export backend. Bold is a
// doubled sigil, italic a single sigil, and underline an explicit
// bracket tag, since the format has no native underline primitive.
package markdown

import (
	"fmt"
	"strings"

	"github.com/inkforge/inkforge/core/emit"
	"github.com/inkforge/inkforge/core/encoding"
	"github.com/inkforge/inkforge/core/export"
	"github.com/inkforge/inkforge/core/markup"
	"github.com/inkforge/inkforge/core/profile"
)

// FormatName is the registry name of this backend.
const FormatName = "markdown"

// Register registers this backend with the format registry.
func Register() {
	export.RegisterFormat(FormatName, New)
}

func init() {
	Register()
}

// Emitter writes the plain-markup artifact. The buffer is owned
// exclusively by one export call.
type Emitter struct {
	buf strings.Builder
}

// New creates a fresh emitter instance.
func New() emit.Emitter {
	return &Emitter{}
}

// block appends s followed by a paragraph break (a blank output line).
func (e *Emitter) block(s string) {
	e.buf.WriteString(s)
	e.buf.WriteString("\n\n")
}

// CoverPage emits the metadata preamble block in place of a visual
// cover: the format has no pagination to center anything on.
func (e *Emitter) CoverPage(meta emit.CoverMeta, _ profile.Profile) {
	// Values are double-quoted so titles holding :, #, or a leading
	// dash stay valid YAML.
	var fm strings.Builder
	fm.WriteString("---\n")
	fm.WriteString(fmt.Sprintf("title: %q\n", meta.Title))
	if meta.Author != "" {
		fm.WriteString(fmt.Sprintf("author: %q\n", meta.Author))
	}
	fm.WriteString(fmt.Sprintf("type: %q\n", meta.TypeLabel))
	if meta.Genre != "" {
		fm.WriteString(fmt.Sprintf("genre: %q\n", meta.Genre))
	}
	fm.WriteString("date: " + meta.Date.Format("2006-01-02") + "\n")
	fm.WriteString("---")
	e.block(fm.String())

	e.block("# " + encoding.EscapeMarkdown(meta.Title))
	if meta.Author != "" {
		e.block("by " + encoding.EscapeMarkdown(meta.Author))
	}
}

// TableOfContents emits one ordered-list item per chapter.
func (e *Emitter) TableOfContents(entries []emit.TOCEntry, _ profile.Profile) {
	var toc strings.Builder
	toc.WriteString("## Contents\n")
	for _, en := range entries {
		toc.WriteString(fmt.Sprintf("\n%d. %s", en.Number, encoding.EscapeMarkdown(en.Label())))
	}
	e.block(toc.String())
}

// ChapterHeading emits a level-1 heading.
func (e *Emitter) ChapterHeading(text string, _ profile.Profile) {
	e.block("# " + encoding.EscapeMarkdown(text))
}

// SceneHeading emits a level-2 heading.
func (e *Emitter) SceneHeading(text string, _ profile.Profile) {
	e.block("## " + encoding.EscapeMarkdown(text))
}

// Paragraph renders one paragraph block; an explicit line break is two
// trailing spaces plus a newline, a paragraph break a blank line.
func (e *Emitter) Paragraph(block markup.Paragraph, _ profile.Profile) {
	e.block(markup.SerializeParagraph(block))
}

// SceneSeparator emits the configured separator token on its own line.
func (e *Emitter) SceneSeparator(p profile.Profile) {
	e.block(p.SceneSeparator)
}

// PageBreak emits a thematic break, the closest the format has to a
// section break.
func (e *Emitter) PageBreak() {
	e.block("---")
}

// Finalize returns the complete artifact bytes.
func (e *Emitter) Finalize() ([]byte, error) {
	out := strings.TrimRight(e.buf.String(), "\n")
	if out == "" {
		return []byte{}, nil
	}
	return []byte(out + "\n"), nil
}

// Extension returns the conventional file extension.
func (e *Emitter) Extension() string {
	return ".md"
}
