package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// metaTags are meta-content blocks whose entire textual content,
// nested markers included, is suppressed from output.
var metaTags = map[string]bool{
	"head":   true,
	"style":  true,
	"script": true,
	"title":  true,
}

// styleTags maps the simple inline markers to their style flag.
var styleTags = map[string]StyleSet{
	"b":      Bold,
	"strong": Bold,
	"i":      Italic,
	"em":     Italic,
	"u":      Underline,
}

// parseRich handles the restricted rich-markup subset saved by scene
// editors. The tokenizer never fails, which keeps the whole path total;
// stray or unclosed markers are recovered by the style stack drain at
// paragraph and input boundaries.
func parseRich(content string) []Paragraph {
	var b builder
	suppress := 0

	z := html.NewTokenizer(strings.NewReader(content))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break // io.EOF, or garbage the tokenizer gave up on
		}

		switch tt {
		case html.TextToken:
			if suppress > 0 {
				continue
			}
			richText(&b, string(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if metaTags[tag] {
				if tt == html.StartTagToken {
					suppress++
				}
				continue
			}
			if suppress > 0 {
				continue
			}
			switch {
			case tag == "p":
				b.endParagraph()
			case tag == "br":
				b.lineBreak()
			case tag == "span":
				b.push("span", spanStyles(z, hasAttr))
			default:
				if s, ok := styleTags[tag]; ok {
					b.push(tag, s)
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if metaTags[tag] {
				if suppress > 0 {
					suppress--
				}
				continue
			}
			if suppress > 0 {
				continue
			}
			switch tag {
			case "p":
				b.endParagraph()
			case "span":
				b.pop("span")
			default:
				if _, ok := styleTags[tag]; ok {
					b.pop(tag)
				}
			}
		}
	}

	b.endParagraph()
	return b.paras
}

// spanStyles reads the carrier marker's style attribute, which may
// declare several styles at once.
func spanStyles(z *html.Tokenizer, hasAttr bool) StyleSet {
	for hasAttr {
		key, val, more := z.TagAttr()
		if string(key) == "style" {
			return ParseStyleDecls(string(val))
		}
		hasAttr = more
	}
	return 0
}

// richText appends tokenized text, folding the source's interior
// newlines to spaces and dropping pure inter-element whitespace.
func richText(b *builder, text string) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", " ")
	if strings.TrimSpace(text) == "" && b.cur.Len() == 0 && len(b.runs) == 0 {
		return
	}
	b.text(text)
}
