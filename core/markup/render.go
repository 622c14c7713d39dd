package markup

// RenderHooks receives rendering events for one paragraph. Open and
// Close fire for single style flags in properly nested order; Text
// receives literal run text with the styles already open; Break marks
// an explicit line break.
type RenderHooks struct {
	Open  func(style StyleSet)
	Close func(style StyleSet)
	Text  func(text string)
	Break func()
}

// renderOrder is the canonical nesting order for opening markers.
var renderOrder = []StyleSet{Bold, Italic, Underline}

// RenderParagraph walks a paragraph's runs, translating flat style sets
// back into a well-nested open/close sequence. Backends that need
// textual markers (the plain-markup serializer, the print emitter)
// build on this; run-oriented backends iterate runs directly.
func RenderParagraph(p Paragraph, h RenderHooks) {
	var open []StyleSet

	closeFrom := func(i int) {
		for j := len(open) - 1; j >= i; j-- {
			h.Close(open[j])
		}
		open = open[:i]
	}

	for _, r := range p.Runs {
		if r.Break {
			h.Break()
			continue
		}

		// pop to the deepest open style this run no longer wants
		keep := len(open)
		for i, s := range open {
			if !r.Styles.Has(s) {
				keep = i
				break
			}
		}
		closeFrom(keep)

		for _, s := range renderOrder {
			if r.Styles.Has(s) && !hasFrame(open, s) {
				h.Open(s)
				open = append(open, s)
			}
		}

		h.Text(r.Text)
	}
	closeFrom(0)
}

func hasFrame(open []StyleSet, s StyleSet) bool {
	for _, o := range open {
		if o == s {
			return true
		}
	}
	return false
}
