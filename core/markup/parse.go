package markup

import (
	"regexp"
	"strings"
)

// blankLine splits plain content into paragraphs. Three or more
// consecutive newlines collapse to a single paragraph break.
var blankLine = regexp.MustCompile(`\n{2,}`)

// Parse converts raw scene content into paragraph blocks. Content
// beginning with a tag open token is parsed as the restricted rich-markup
// subset; everything else as plain text with lightweight inline emphasis.
// Empty content yields zero paragraphs.
func Parse(content string) []Paragraph {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if isRich(content) {
		return parseRich(content)
	}
	return parsePlain(content)
}

// isRich sniffs the leading content for a markup start token. Rich-text
// scene editors always save content beginning with a block tag. The
// underline tag belongs to the plain vocabulary, so content leading with
// it stays in plain mode and serialized output re-parses as written.
func isRich(content string) bool {
	s := strings.TrimLeft(content, " \t\n")
	if !strings.HasPrefix(s, "<") {
		return false
	}
	if strings.HasPrefix(s, "<u>") || strings.HasPrefix(s, "</u>") {
		return false
	}
	return true
}

// parsePlain handles the plain-text mode: blank lines split paragraphs,
// a single interior newline is an explicit line break, and the inline
// vocabulary matches what the plain-markup emitter writes (** bold,
// * italic, <u>/</u> underline, backslash escapes).
func parsePlain(content string) []Paragraph {
	var b builder
	for _, block := range blankLine.Split(content, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		parseInline(&b, block)
		b.endParagraph()
	}
	return b.paras
}

// escapable is the set of punctuation a backslash neutralizes.
const escapable = "\\*_<>[]()#+-.!`"

func parseInline(b *builder, block string) {
	rs := []rune(strings.Trim(block, "\n"))
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\\':
			if i+1 < len(rs) && strings.ContainsRune(escapable, rs[i+1]) {
				b.text(string(rs[i+1]))
				i++
				continue
			}
			b.text("\\")

		case '*':
			if i+1 < len(rs) && rs[i+1] == '*' {
				i++
				if b.toggled("**") {
					b.pop("**")
				} else {
					b.push("**", Bold)
				}
				continue
			}
			if b.toggled("*") {
				b.pop("*")
			} else {
				b.push("*", Italic)
			}

		case '<':
			if tag, n := matchUnderlineTag(rs[i:]); n > 0 {
				if tag == "<u>" {
					b.push("<u>", Underline)
				} else {
					b.pop("<u>")
				}
				i += n - 1
				continue
			}
			b.text("<")

		case '\n':
			b.lineBreak()

		default:
			b.text(string(rs[i]))
		}
	}
}

// matchUnderlineTag recognizes the explicit <u> / </u> underline tags at
// the start of rs, returning the tag and its rune length.
func matchUnderlineTag(rs []rune) (string, int) {
	s := string(rs)
	if strings.HasPrefix(s, "<u>") {
		return "<u>", 3
	}
	if strings.HasPrefix(s, "</u>") {
		return "</u>", 4
	}
	return "", 0
}
