package profile

import (
	"testing"

	"github.com/inkforge/inkforge/core/manuscript"
)

func TestResolveBaselineForUnknownTypes(t *testing.T) {
	for _, pt := range []manuscript.ProjectType{"", "screenplay", "unknown"} {
		p := Resolve(pt, Options{})
		if p != baseline {
			t.Errorf("Resolve(%q) = %+v, want baseline", pt, p)
		}
	}
}

func TestResolvePerTypeRules(t *testing.T) {
	tests := []struct {
		name  string
		pt    manuscript.ProjectType
		check func(t *testing.T, p Profile)
	}{
		{"novel justifies body text", manuscript.TypeNovel, func(t *testing.T, p Profile) {
			if p.Alignment != AlignJustify {
				t.Errorf("Alignment = %q, want justify", p.Alignment)
			}
			if !p.ChapterPageBreak {
				t.Error("novel should break pages between chapters")
			}
		}},
		{"short story keeps chapters flowing", manuscript.TypeShortStory, func(t *testing.T, p Profile) {
			if p.ChapterPageBreak {
				t.Error("short story should not break pages between chapters")
			}
			if p.SceneSeparator != "#" {
				t.Errorf("SceneSeparator = %q, want #", p.SceneSeparator)
			}
		}},
		{"poetry drops the indent", manuscript.TypePoetry, func(t *testing.T, p Profile) {
			if p.FirstLineIndent != 0 {
				t.Errorf("FirstLineIndent = %v, want 0", p.FirstLineIndent)
			}
			if p.LineSpacing != 1.2 {
				t.Errorf("LineSpacing = %v, want 1.2", p.LineSpacing)
			}
		}},
		{"academic is double spaced on Letter", manuscript.TypeAcademic, func(t *testing.T, p Profile) {
			if p.LineSpacing != 2.0 {
				t.Errorf("LineSpacing = %v, want 2.0", p.LineSpacing)
			}
			if p.PageSize != "Letter" {
				t.Errorf("PageSize = %q, want Letter", p.PageSize)
			}
		}},
		{"memoir changes the font", manuscript.TypeMemoir, func(t *testing.T, p Profile) {
			if p.FontFamily != "Palatino" {
				t.Errorf("FontFamily = %q, want Palatino", p.FontFamily)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Resolve(tt.pt, Options{}))
		})
	}
}

func TestResolveOverridesMergeKeyByKey(t *testing.T) {
	noBreak := false
	margin := 30.0
	size := 11.0

	p := Resolve(manuscript.TypeNovel, Options{
		ChapterPageBreak: &noBreak,
		SeparatorStyle:   "---",
		MarginLeft:       &margin,
		ContentFontSize:  &size,
	})

	if p.ChapterPageBreak {
		t.Error("override should disable chapter page breaks")
	}
	if p.SceneSeparator != "---" {
		t.Errorf("SceneSeparator = %q, want ---", p.SceneSeparator)
	}
	if p.MarginLeft != 30 {
		t.Errorf("MarginLeft = %v, want 30", p.MarginLeft)
	}
	if p.ContentFontSize != 11 {
		t.Errorf("ContentFontSize = %v, want 11", p.ContentFontSize)
	}
	// untouched keys keep the per-type rule
	if p.Alignment != AlignJustify {
		t.Errorf("Alignment = %q, want justify (untouched)", p.Alignment)
	}
	if p.MarginRight != baseline.MarginRight {
		t.Errorf("MarginRight = %v, want baseline %v", p.MarginRight, baseline.MarginRight)
	}
}

func TestResolveIsPure(t *testing.T) {
	a := Resolve(manuscript.TypeNovel, Options{})
	margin := 99.0
	Resolve(manuscript.TypeNovel, Options{MarginLeft: &margin})
	b := Resolve(manuscript.TypeNovel, Options{})
	if a != b {
		t.Errorf("Resolve mutated shared state: %+v vs %+v", a, b)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if !o.CoverEnabled() || !o.TOCEnabled() || !o.SeparatorsEnabled() {
		t.Error("zero Options should enable cover, TOC, and separators")
	}
	off := false
	o.IncludeCover = &off
	if o.CoverEnabled() {
		t.Error("explicit false should disable the cover")
	}
}

func TestOptionsFromMap(t *testing.T) {
	o := OptionsFromMap(map[string]interface{}{
		"include_cover":     false,
		"include_toc":       true,
		"separator_style":   "~",
		"margin_left":       30.0,
		"content_font_size": 11, // ints are accepted
		"wrong_type":        "ignored",
		"unknown_key":       true,
	})

	if o.IncludeCover == nil || *o.IncludeCover {
		t.Error("include_cover should be explicit false")
	}
	if o.IncludeTOC == nil || !*o.IncludeTOC {
		t.Error("include_toc should be explicit true")
	}
	if o.SeparatorStyle != "~" {
		t.Errorf("SeparatorStyle = %q, want ~", o.SeparatorStyle)
	}
	if o.MarginLeft == nil || *o.MarginLeft != 30 {
		t.Errorf("MarginLeft = %v, want 30", o.MarginLeft)
	}
	if o.ContentFontSize == nil || *o.ContentFontSize != 11 {
		t.Errorf("ContentFontSize = %v, want 11", o.ContentFontSize)
	}
	if o.MarginRight != nil {
		t.Error("absent keys should stay unset")
	}
}

func TestOptionsFromMapWrongTypesUnset(t *testing.T) {
	o := OptionsFromMap(map[string]interface{}{
		"include_cover": "yes",
		"margin_left":   "wide",
	})
	if o.IncludeCover != nil {
		t.Error("wrong-typed bool should stay unset")
	}
	if o.MarginLeft != nil {
		t.Error("wrong-typed float should stay unset")
	}
}
