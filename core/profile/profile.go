// Package profile resolves per-project-type layout rules into a flat
// formatting profile. Resolution is a pure function of the project type
// and the caller's overrides; the tables below are plain data, and no
// global mutable state is involved.
package profile

import "github.com/inkforge/inkforge/core/manuscript"

// Alignment selects body paragraph alignment.
type Alignment string

// Alignment constants.
const (
	AlignLeft    Alignment = "left"
	AlignJustify Alignment = "justify"
	AlignCenter  Alignment = "center"
)

// Profile is the resolved set of layout parameters for one export call.
// Every emitter receives the same profile; not every emitter uses every
// field.
type Profile struct {
	// FontFamily is the body font family name.
	FontFamily string

	// Font sizes in points.
	ContentFontSize float64
	ChapterFontSize float64
	SceneFontSize   float64

	// LineSpacing is the line height multiplier (1.0 = single).
	LineSpacing float64

	// ParagraphSpacing is the space after a paragraph, in points.
	ParagraphSpacing float64

	// Page margins in millimetres.
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// Alignment of body paragraphs.
	Alignment Alignment

	// ChapterPageBreak requests a page or section break after each
	// chapter's last scene (except the final chapter).
	ChapterPageBreak bool

	// SceneSeparator is the token emitted between scenes.
	SceneSeparator string

	// FirstLineIndent is the body first-line indent in millimetres.
	// Used by the paginated emitters only.
	FirstLineIndent float64

	// PageSize names the physical page ("A4", "Letter"). Used by the
	// print emitter only.
	PageSize string
}

// baseline is the default profile every project type starts from,
// including unrecognized ones.
var baseline = Profile{
	FontFamily:       "Georgia",
	ContentFontSize:  12,
	ChapterFontSize:  24,
	SceneFontSize:    16,
	LineSpacing:      1.5,
	ParagraphSpacing: 6,
	MarginLeft:       25,
	MarginRight:      25,
	MarginTop:        25,
	MarginBottom:     25,
	Alignment:        AlignLeft,
	ChapterPageBreak: true,
	SceneSeparator:   "* * *",
	FirstLineIndent:  8,
	PageSize:         "A4",
}

// typeProfiles holds the per-project-type layout rules as plain data.
var typeProfiles = map[manuscript.ProjectType]Profile{
	manuscript.TypeNovel: withBaseline(func(p *Profile) {
		p.Alignment = AlignJustify
	}),
	manuscript.TypeNovella: withBaseline(func(p *Profile) {
		p.Alignment = AlignJustify
		p.ChapterFontSize = 22
	}),
	manuscript.TypeShortStory: withBaseline(func(p *Profile) {
		p.ChapterFontSize = 18
		p.SceneFontSize = 14
		p.ChapterPageBreak = false
		p.SceneSeparator = "#"
	}),
	manuscript.TypePoetry: withBaseline(func(p *Profile) {
		p.LineSpacing = 1.2
		p.ParagraphSpacing = 12
		p.FirstLineIndent = 0
		p.ChapterPageBreak = false
		p.SceneSeparator = "~"
	}),
	manuscript.TypeMemoir: withBaseline(func(p *Profile) {
		p.FontFamily = "Palatino"
		p.Alignment = AlignJustify
	}),
	manuscript.TypeAcademic: withBaseline(func(p *Profile) {
		p.FontFamily = "Times New Roman"
		p.LineSpacing = 2.0
		p.FirstLineIndent = 12
		p.PageSize = "Letter"
	}),
}

func withBaseline(mod func(*Profile)) Profile {
	p := baseline
	mod(&p)
	return p
}

// Resolve returns the formatting profile for a project type with the
// caller's overrides merged on top, key by key, with highest precedence.
// Every project type, including unrecognized ones, resolves to at least
// the baseline profile.
func Resolve(projectType manuscript.ProjectType, opts Options) Profile {
	p, ok := typeProfiles[projectType]
	if !ok {
		p = baseline
	}

	if opts.ChapterPageBreak != nil {
		p.ChapterPageBreak = *opts.ChapterPageBreak
	}
	if opts.SeparatorStyle != "" {
		p.SceneSeparator = opts.SeparatorStyle
	}
	if opts.MarginLeft != nil {
		p.MarginLeft = *opts.MarginLeft
	}
	if opts.MarginRight != nil {
		p.MarginRight = *opts.MarginRight
	}
	if opts.MarginTop != nil {
		p.MarginTop = *opts.MarginTop
	}
	if opts.MarginBottom != nil {
		p.MarginBottom = *opts.MarginBottom
	}
	if opts.ChapterFontSize != nil {
		p.ChapterFontSize = *opts.ChapterFontSize
	}
	if opts.SceneFontSize != nil {
		p.SceneFontSize = *opts.SceneFontSize
	}
	if opts.ContentFontSize != nil {
		p.ContentFontSize = *opts.ContentFontSize
	}
	return p
}
