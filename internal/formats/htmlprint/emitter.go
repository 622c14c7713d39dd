// Package htmlprint provides the print-paginated export backend. Styles
// are represented with the same tag vocabulary the rich-markup parser
// accepts; reserved characters are escaped only inside literal text,
// never inside control sequences emitted here; chapter boundaries get
// explicit page-break commands per the profile policy.
package htmlprint

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
const FormatName = "html"

// Register registers this backend with the format registry.
func Register() {
	export.RegisterFormat(FormatName, New)
}

func init() {
	Register()
}

var styleTag = map[markup.StyleSet]string{
	markup.Bold:      "b",
	markup.Italic:    "i",
	markup.Underline: "u",
}

// Emitter writes the paginated HTML artifact. The body buffer is owned
// exclusively by one export call; the document shell with its stylesheet
// is wrapped around it at Finalize.
type Emitter struct {
	body  strings.Builder
	title string
	prof  profile.Profile
	seen  bool
}

// New creates a fresh emitter instance.
func New() emit.Emitter {
	return &Emitter{}
}

func (e *Emitter) capture(p profile.Profile) {
	if !e.seen {
		e.prof = p
		e.seen = true
	}
}

// CoverPage emits a centered cover section on its own page.
func (e *Emitter) CoverPage(meta emit.CoverMeta, p profile.Profile) {
	e.capture(p)
	e.title = meta.Title

	e.body.WriteString("<section class=\"cover\">\n")
	e.body.WriteString("  <h1>" + encoding.EscapeHTML(meta.Title) + "</h1>\n")
	if meta.Author != "" {
		e.body.WriteString("  <p class=\"author\">" + encoding.EscapeHTML(meta.Author) + "</p>\n")
	}
	line := meta.TypeLabel
	if meta.Genre != "" {
		line += " · " + meta.Genre
	}
	e.body.WriteString("  <p class=\"meta\">" + encoding.EscapeHTML(line) + "</p>\n")
	e.body.WriteString("  <p class=\"meta\">" + meta.Date.Format("2 January 2006") + "</p>\n")
	e.body.WriteString("</section>\n")
	e.pageBreakCommand()
}

// TableOfContents emits one list entry per chapter, then a page break.
func (e *Emitter) TableOfContents(entries []emit.TOCEntry, p profile.Profile) {
	e.capture(p)
	e.body.WriteString("<nav class=\"toc\">\n  <h2>Contents</h2>\n  <ol>\n")
	for _, en := range entries {
		e.body.WriteString("    <li>" + encoding.EscapeHTML(en.Label()) + "</li>\n")
	}
	e.body.WriteString("  </ol>\n</nav>\n")
	e.pageBreakCommand()
}

// ChapterHeading emits a level-1 heading.
func (e *Emitter) ChapterHeading(text string, p profile.Profile) {
	e.capture(p)
	e.body.WriteString("<h1>" + encoding.EscapeHTML(text) + "</h1>\n")
}

// SceneHeading emits a level-2 heading.
func (e *Emitter) SceneHeading(text string, p profile.Profile) {
	e.capture(p)
	e.body.WriteString("<h2>" + encoding.EscapeHTML(text) + "</h2>\n")
}

// Paragraph renders one paragraph block using the parser's own tag
// vocabulary for styles.
func (e *Emitter) Paragraph(block markup.Paragraph, p profile.Profile) {
	e.capture(p)
	e.body.WriteString("<p>")
	markup.RenderParagraph(block, markup.RenderHooks{
		Open:  func(s markup.StyleSet) { e.body.WriteString("<" + styleTag[s] + ">") },
		Close: func(s markup.StyleSet) { e.body.WriteString("</" + styleTag[s] + ">") },
		Text:  func(t string) { e.body.WriteString(encoding.EscapeHTML(t)) },
		Break: func() { e.body.WriteString("<br/>") },
	})
	e.body.WriteString("</p>\n")
}

// SceneSeparator emits the configured separator token, centered.
func (e *Emitter) SceneSeparator(p profile.Profile) {
	e.capture(p)
	e.body.WriteString("<p class=\"separator\">" + encoding.EscapeHTML(p.SceneSeparator) + "</p>\n")
}

// PageBreak emits an explicit page-break command.
func (e *Emitter) PageBreak() {
	e.pageBreakCommand()
}

func (e *Emitter) pageBreakCommand() {
	e.body.WriteString("<div class=\"page-break\"></div>\n")
}

// Finalize wraps the body in a standalone document with the profile's
// page geometry expressed as print CSS.
func (e *Emitter) Finalize() ([]byte, error) {
	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	out.WriteString("<meta charset=\"utf-8\"/>\n")
	if e.title != "" {
		out.WriteString("<title>" + encoding.EscapeHTML(e.title) + "</title>\n")
	}
	out.WriteString("<style>\n" + e.stylesheet() + "</style>\n")
	out.WriteString("</head>\n<body>\n")
	out.WriteString(e.body.String())
	out.WriteString("</body>\n</html>\n")
	return []byte(out.String()), nil
}

// Extension returns the conventional file extension.
func (e *Emitter) Extension() string {
	return ".html"
}

func (e *Emitter) stylesheet() string {
	p := e.prof
	if !e.seen {
		p = profile.Resolve("", profile.Options{})
	}

	var css strings.Builder
	fmt.Fprintf(&css, "@page { size: %s; margin: %.1fmm %.1fmm %.1fmm %.1fmm; }\n",
		p.PageSize, p.MarginTop, p.MarginRight, p.MarginBottom, p.MarginLeft)
	fmt.Fprintf(&css, "body { font-family: %q, serif; font-size: %.1fpt; line-height: %.2f; }\n",
		p.FontFamily, p.ContentFontSize, p.LineSpacing)
	fmt.Fprintf(&css, "p { text-align: %s; text-indent: %.1fmm; margin: 0 0 %.1fpt 0; }\n",
		p.Alignment, p.FirstLineIndent, p.ParagraphSpacing)
	fmt.Fprintf(&css, "h1 { font-size: %.1fpt; }\n", p.ChapterFontSize)
	fmt.Fprintf(&css, "h2 { font-size: %.1fpt; }\n", p.SceneFontSize)
	css.WriteString(".cover { text-align: center; margin-top: 30%; }\n")
	css.WriteString(".cover p, .toc li { text-indent: 0; }\n")
	css.WriteString(".separator { text-align: center; text-indent: 0; }\n")
	css.WriteString(".page-break { page-break-after: always; }\n")
	return css.String()
}
