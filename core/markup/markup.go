// Package markup converts raw scene content into an ordered sequence of
// paragraph blocks of styled runs. Parsing is total and forgiving: no
// input, however malformed, returns an error. Malformed markup recovers
// by force-closing open styles at paragraph boundaries.
package markup

import "strings"

// StyleSet is the exact set of inline styles active on a run.
type StyleSet uint8

// Style flags.
const (
	Bold StyleSet = 1 << iota
	Italic
	Underline
)

// Has returns true if every style in s is active in the set.
func (ss StyleSet) Has(s StyleSet) bool {
	return ss&s == s
}

// With returns the set with s added.
func (ss StyleSet) With(s StyleSet) StyleSet {
	return ss | s
}

// Without returns the set with s removed.
func (ss StyleSet) Without(s StyleSet) StyleSet {
	return ss &^ s
}

// IsZero returns true if no style is active.
func (ss StyleSet) IsZero() bool {
	return ss == 0
}

// String renders the set for diagnostics, e.g. "bold+italic".
func (ss StyleSet) String() string {
	if ss.IsZero() {
		return "none"
	}
	var parts []string
	if ss.Has(Bold) {
		parts = append(parts, "bold")
	}
	if ss.Has(Italic) {
		parts = append(parts, "italic")
	}
	if ss.Has(Underline) {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, "+")
}

// Run is a text fragment with one exact active style set. A run is never
// stylistically heterogeneous and never empty, except an explicit
// line-break marker run, which carries no text.
type Run struct {
	Text   string
	Styles StyleSet

	// Break marks an explicit in-paragraph line break.
	Break bool
}

// Paragraph is an ordered sequence of runs forming one paragraph.
// Run order mirrors source order and is never reordered.
type Paragraph struct {
	Runs []Run
}

// Text returns the paragraph's concatenated literal text, with break
// runs rendered as newlines.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		if r.Break {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// frame is one entry of the explicit ordered style stack. The token
// records which opening marker pushed it, so a matching close pops
// exactly the style set that marker declared.
type frame struct {
	styles StyleSet
	token  string
}

// builder accumulates runs and paragraphs while the style stack evolves.
type builder struct {
	paras []Paragraph
	runs  []Run
	cur   strings.Builder
	stack []frame
}

func (b *builder) active() StyleSet {
	var ss StyleSet
	for _, f := range b.stack {
		ss = ss.With(f.styles)
	}
	return ss
}

// flush ends the current run, if any text accumulated.
func (b *builder) flush() {
	if b.cur.Len() == 0 {
		return
	}
	b.runs = append(b.runs, Run{Text: b.cur.String(), Styles: b.active()})
	b.cur.Reset()
}

func (b *builder) text(s string) {
	b.cur.WriteString(s)
}

func (b *builder) push(token string, styles StyleSet) {
	b.flush()
	b.stack = append(b.stack, frame{styles: styles, token: token})
}

// pop removes the topmost frame opened by token. Unmatched closes are
// tolerated and ignored.
func (b *builder) pop(token string) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].token == token {
			b.flush()
			b.stack = append(b.stack[:i], b.stack[i+1:]...)
			return
		}
	}
}

// toggled reports whether a frame opened by token is currently open.
func (b *builder) toggled(token string) bool {
	for _, f := range b.stack {
		if f.token == token {
			return true
		}
	}
	return false
}

func (b *builder) lineBreak() {
	b.flush()
	b.runs = append(b.runs, Run{Break: true})
}

// endParagraph force-closes all open styles and finishes the paragraph.
// Paragraphs reduced to nothing but trailing breaks are dropped, so
// content without a trailing blank line yields no trailing empty block.
func (b *builder) endParagraph() {
	b.flush()
	b.stack = b.stack[:0]

	runs := b.runs
	for len(runs) > 0 && runs[len(runs)-1].Break {
		runs = runs[:len(runs)-1]
	}
	b.runs = nil
	if len(runs) == 0 {
		return
	}
	b.paras = append(b.paras, Paragraph{Runs: runs})
}
