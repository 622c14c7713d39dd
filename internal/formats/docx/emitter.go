// Package docx provides the word-processor export backend. Each styled
// run becomes one discrete document fragment carrying boolean style
// attributes; an explicit line break is a break token inside the current
// paragraph object, never a new paragraph. The artifact is a minimal
// OOXML package assembled as a zip archive.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/inkforge/inkforge/core/emit"
	"github.com/inkforge/inkforge/core/export"
	"github.com/inkforge/inkforge/core/markup"
	"github.com/inkforge/inkforge/core/profile"
)

// FormatName is the registry name of this backend.
const FormatName = "docx"

// Register registers this backend with the format registry.
func Register() {
	export.RegisterFormat(FormatName, New)
}

func init() {
	Register()
}

// Emitter accumulates paragraph objects; the package is assembled at
// Finalize. One instance serves exactly one export call.
type Emitter struct {
	paragraphs []paragraph
	prof       profile.Profile
	seen       bool
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

func (e *Emitter) add(p paragraph) {
	e.paragraphs = append(e.paragraphs, p)
}

// CoverPage emits centered cover paragraphs on their own page.
func (e *Emitter) CoverPage(meta emit.CoverMeta, p profile.Profile) {
	e.capture(p)

	centered := func(text string, size float64, bold bool) paragraph {
		return paragraph{
			Props: &paraProps{
				Justify: &val{Val: "center"},
				Spacing: &spacing{After: 240},
			},
			Runs: []run{styledRun(text, size, bold, p)},
		}
	}

	e.add(centered(meta.Title, p.ChapterFontSize, true))
	if meta.Author != "" {
		e.add(centered(meta.Author, p.SceneFontSize, false))
	}
	line := meta.TypeLabel
	if meta.Genre != "" {
		line += " · " + meta.Genre
	}
	e.add(centered(line, p.ContentFontSize, false))
	e.add(centered(meta.Date.Format("2 January 2006"), p.ContentFontSize, false))
	e.pageBreakParagraph()
}

// TableOfContents emits one entry paragraph per chapter, then a page break.
func (e *Emitter) TableOfContents(entries []emit.TOCEntry, p profile.Profile) {
	e.capture(p)
	e.add(paragraph{
		Props: &paraProps{Spacing: &spacing{After: 240}},
		Runs:  []run{styledRun("Contents", p.SceneFontSize, true, p)},
	})
	for _, en := range entries {
		e.add(paragraph{
			Props: &paraProps{Spacing: &spacing{After: 120}},
			Runs:  []run{styledRun(en.Label(), p.ContentFontSize, false, p)},
		})
	}
	e.pageBreakParagraph()
}

// ChapterHeading emits a chapter heading paragraph.
func (e *Emitter) ChapterHeading(text string, p profile.Profile) {
	e.capture(p)
	e.add(paragraph{
		Props: &paraProps{Spacing: &spacing{After: 360}},
		Runs:  []run{styledRun(text, p.ChapterFontSize, true, p)},
	})
}

// SceneHeading emits a scene heading paragraph.
func (e *Emitter) SceneHeading(text string, p profile.Profile) {
	e.capture(p)
	e.add(paragraph{
		Props: &paraProps{Spacing: &spacing{After: 240}},
		Runs:  []run{styledRun(text, p.SceneFontSize, true, p)},
	})
}

// Paragraph emits one paragraph object with a fragment per styled run
// and a break token per explicit line break.
func (e *Emitter) Paragraph(block markup.Paragraph, p profile.Profile) {
	e.capture(p)

	para := paragraph{Props: e.bodyProps(p)}
	for _, r := range block.Runs {
		if r.Break {
			para.Runs = append(para.Runs, run{Break: &brk{}})
			continue
		}
		para.Runs = append(para.Runs, run{
			Props: e.runProps(r.Styles, p),
			Text:  &text{Space: "preserve", Value: r.Text},
		})
	}
	e.add(para)
}

// SceneSeparator emits the configured separator token, centered.
func (e *Emitter) SceneSeparator(p profile.Profile) {
	e.capture(p)
	e.add(paragraph{
		Props: &paraProps{
			Justify: &val{Val: "center"},
			Spacing: &spacing{After: twentieths(p.ParagraphSpacing)},
		},
		Runs: []run{styledRun(p.SceneSeparator, p.ContentFontSize, false, p)},
	})
}

// PageBreak emits a paragraph holding an explicit page-break token.
func (e *Emitter) PageBreak() {
	e.pageBreakParagraph()
}

func (e *Emitter) pageBreakParagraph() {
	e.add(paragraph{Runs: []run{{Break: &brk{Type: "page"}}}})
}

// Finalize assembles the OOXML package and returns its bytes.
func (e *Emitter) Finalize() ([]byte, error) {
	prof := e.prof
	if !e.seen {
		prof = profile.Resolve("", profile.Options{})
	}

	doc := document{
		XmlnsW: wordNamespace,
		Body: body{
			Paragraphs: e.paragraphs,
			SectPr: &sectPr{
				PageSize: pageDimensions(prof.PageSize),
				PageMargins: pageMargins{
					Top:    twips(prof.MarginTop),
					Right:  twips(prof.MarginRight),
					Bottom: twips(prof.MarginBottom),
					Left:   twips(prof.MarginLeft),
				},
			},
		},
	}

	docXML, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{"word/document.xml", append([]byte(xml.Header), docXML...)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close package: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the conventional file extension.
func (e *Emitter) Extension() string {
	return ".docx"
}

// bodyProps builds paragraph properties from the profile: spacing,
// alignment, and first-line indent.
func (e *Emitter) bodyProps(p profile.Profile) *paraProps {
	props := &paraProps{
		Spacing: &spacing{
			After:    twentieths(p.ParagraphSpacing),
			Line:     int(p.LineSpacing*240 + 0.5),
			LineRule: "auto",
		},
	}
	switch p.Alignment {
	case profile.AlignJustify:
		props.Justify = &val{Val: "both"}
	case profile.AlignCenter:
		props.Justify = &val{Val: "center"}
	}
	if p.FirstLineIndent > 0 {
		props.Indent = &indent{FirstLine: twips(p.FirstLineIndent)}
	}
	return props
}

// runProps carries the boolean style attributes of one styled run.
func (e *Emitter) runProps(styles markup.StyleSet, p profile.Profile) *runProps {
	props := &runProps{
		Fonts: &fonts{ASCII: p.FontFamily, HAnsi: p.FontFamily},
		Size:  &val{Val: halfPoints(p.ContentFontSize)},
	}
	if styles.Has(markup.Bold) {
		props.Bold = &toggle{}
	}
	if styles.Has(markup.Italic) {
		props.Italic = &toggle{}
	}
	if styles.Has(markup.Underline) {
		props.Underline = &val{Val: "single"}
	}
	return props
}

func styledRun(s string, size float64, bold bool, p profile.Profile) run {
	props := &runProps{
		Fonts: &fonts{ASCII: p.FontFamily, HAnsi: p.FontFamily},
		Size:  &val{Val: halfPoints(size)},
	}
	if bold {
		props.Bold = &toggle{}
	}
	return run{Props: props, Text: &text{Space: "preserve", Value: s}}
}

// twentieths converts points to twentieths of a point.
func twentieths(pt float64) int {
	return int(pt*20 + 0.5)
}
