package markup

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// declLexer tokenizes CSS-style inline declaration lists as carried by
// the span marker, e.g. "font-weight:600; font-style: italic".
var declLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?(?:%|[a-z]+)?`},
	{Name: "Ident", Pattern: `[A-Za-z-][A-Za-z0-9-]*`},
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Punct", Pattern: `[:;,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// declarationList is the participle grammar for a declaration list.
//
//nolint:govet // participle grammar tags are not standard struct tags
type declarationList struct {
	Decls []*declaration `( @@ ( ";" @@? )* )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type declaration struct {
	Property string   `@Ident ":"`
	Values   []string `( @Ident | @Number | @String | "," )*`
}

var declParser = participle.MustBuild[declarationList](
	participle.Lexer(declLexer),
	participle.Elide("Whitespace"),
)

// ParseStyleDecls resolves an inline style declaration list to the style
// set it declares. The function is total: declarations the grammar cannot
// handle fall back to a lenient split, and unknown properties are ignored.
func ParseStyleDecls(s string) StyleSet {
	var ss StyleSet
	s = strings.TrimSpace(s)
	if s == "" {
		return ss
	}

	parsed, err := declParser.ParseString("", s)
	if err != nil {
		return lenientStyleDecls(s)
	}
	for _, d := range parsed.Decls {
		applyDecl(d.Property, d.Values, &ss)
	}
	return ss
}

// lenientStyleDecls recovers declaration lists the grammar rejects
// (exotic values, stray punctuation). Markup handling must never fail.
func lenientStyleDecls(s string) StyleSet {
	var ss StyleSet
	for _, decl := range strings.Split(s, ";") {
		prop, rest, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		applyDecl(strings.TrimSpace(prop), strings.Fields(rest), &ss)
	}
	return ss
}

func applyDecl(prop string, values []string, ss *StyleSet) {
	switch strings.ToLower(prop) {
	case "font-weight":
		for _, v := range values {
			v = strings.ToLower(v)
			if v == "bold" || v == "bolder" {
				*ss = ss.With(Bold)
				continue
			}
			if n, err := strconv.Atoi(strings.TrimSuffix(v, ";")); err == nil && n >= 600 {
				*ss = ss.With(Bold)
			}
		}
	case "font-style":
		for _, v := range values {
			v = strings.ToLower(v)
			if v == "italic" || v == "oblique" {
				*ss = ss.With(Italic)
			}
		}
	case "text-decoration", "text-decoration-line":
		for _, v := range values {
			if strings.ToLower(v) == "underline" {
				*ss = ss.With(Underline)
			}
		}
	}
}
