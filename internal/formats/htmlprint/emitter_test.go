package htmlprint

import (
	"strings"
	"testing"
	"time"

	"github.com/inkforge/inkforge/core/emit"
	"github.com/inkforge/inkforge/core/markup"
	"github.com/inkforge/inkforge/core/profile"
)

func testProfile() profile.Profile {
	return profile.Resolve("", profile.Options{})
}

func finalize(t *testing.T, e emit.Emitter) string {
	t.Helper()
	data, err := e.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	return string(data)
}

func TestParagraphStyleTags(t *testing.T) {
	e := New()
	e.Paragraph(markup.Parse("Hello **world**")[0], testProfile())

	out := finalize(t, e)
	if !strings.Contains(out, "<p>Hello <b>world</b></p>") {
		t.Errorf("output missing styled paragraph:\n%s", out)
	}
}

func TestParagraphEscapesLiteralTextOnly(t *testing.T) {
	e := New()
	// Literal text contains reserved characters; the style markers the
	// emitter writes itself must stay unescaped.
	e.Paragraph(markup.Parse("*a < b* & c")[0], testProfile())

	out := finalize(t, e)
	if !strings.Contains(out, "<p><i>a &lt; b</i> &amp; c</p>") {
		t.Errorf("escaping wrong:\n%s", out)
	}
}

func TestParagraphLineBreak(t *testing.T) {
	e := New()
	e.Paragraph(markup.Parse("one\ntwo")[0], testProfile())

	if out := finalize(t, e); !strings.Contains(out, "<p>one<br/>two</p>") {
		t.Errorf("output missing in-paragraph break:\n%s", out)
	}
}

func TestHeadings(t *testing.T) {
	e := New()
	e.ChapterHeading("Chapter 1", testProfile())
	e.SceneHeading("Scene <1>", testProfile())

	out := finalize(t, e)
	if !strings.Contains(out, "<h1>Chapter 1</h1>") {
		t.Errorf("missing chapter heading:\n%s", out)
	}
	if !strings.Contains(out, "<h2>Scene &lt;1&gt;</h2>") {
		t.Errorf("heading text not escaped:\n%s", out)
	}
}

func TestCoverPage(t *testing.T) {
	e := New()
	e.CoverPage(emit.CoverMeta{
		Title:     "Draft & Notes",
		Author:    "A. Writer",
		TypeLabel: "Novel",
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}, testProfile())

	out := finalize(t, e)
	if !strings.Contains(out, `<section class="cover">`) {
		t.Errorf("missing cover section:\n%s", out)
	}
	if !strings.Contains(out, "<h1>Draft &amp; Notes</h1>") {
		t.Errorf("cover title not escaped:\n%s", out)
	}
	if !strings.Contains(out, "<title>Draft &amp; Notes</title>") {
		t.Errorf("document title missing:\n%s", out)
	}
	if !strings.Contains(out, `<div class="page-break"></div>`) {
		t.Errorf("cover should end with a page break:\n%s", out)
	}
}

func TestPageBreakCommand(t *testing.T) {
	e := New()
	e.PageBreak()
	out := finalize(t, e)
	if strings.Count(out, `<div class="page-break"></div>`) != 1 {
		t.Errorf("output = %q", out)
	}
}

func TestStylesheetReflectsProfile(t *testing.T) {
	margin := 20.0
	size := 11.0
	prof := profile.Resolve("novel", profile.Options{
		MarginLeft:      &margin,
		ContentFontSize: &size,
	})

	e := New()
	e.ChapterHeading("Chapter 1", prof)
	out := finalize(t, e)

	for _, want := range []string{
		"@page { size: A4; margin: 25.0mm 25.0mm 25.0mm 20.0mm; }",
		"font-size: 11.0pt",
		"text-align: justify",
		".page-break { page-break-after: always; }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stylesheet missing %q:\n%s", want, out)
		}
	}
}

func TestFinalizeWithoutContentUsesBaseline(t *testing.T) {
	out := finalize(t, New())
	if !strings.Contains(out, "<!DOCTYPE html>") || !strings.Contains(out, "@page") {
		t.Errorf("empty document shell wrong:\n%s", out)
	}
}

func TestExtension(t *testing.T) {
	if got := New().Extension(); got != ".html" {
		t.Errorf("Extension() = %q, want .html", got)
	}
}
