package profile

// Options carries the recognized export options. Toggle fields default
// to enabled; pointer fields distinguish "unset" from an explicit value
// so overrides merge key by key. Emitters ignore options they have no
// use for.
type Options struct {
	IncludeCover     *bool
	IncludeTOC       *bool
	ChapterPageBreak *bool
	SceneSeparators  *bool

	SeparatorStyle string

	MarginLeft   *float64
	MarginRight  *float64
	MarginTop    *float64
	MarginBottom *float64

	ChapterFontSize *float64
	SceneFontSize   *float64
	ContentFontSize *float64
}

// CoverEnabled reports whether a cover page should be emitted (default true).
func (o Options) CoverEnabled() bool {
	return o.IncludeCover == nil || *o.IncludeCover
}

// TOCEnabled reports whether a table of contents should be emitted (default true).
func (o Options) TOCEnabled() bool {
	return o.IncludeTOC == nil || *o.IncludeTOC
}

// SeparatorsEnabled reports whether scene separators should be emitted (default true).
func (o Options) SeparatorsEnabled() bool {
	return o.SceneSeparators == nil || *o.SceneSeparators
}

// OptionsFromMap builds Options from a loosely-typed option map, the
// shape the dialog layer hands over. Unrecognized keys are ignored;
// values of the wrong type are treated as unset.
func OptionsFromMap(m map[string]interface{}) Options {
	var o Options
	o.IncludeCover = boolOpt(m, "include_cover")
	o.IncludeTOC = boolOpt(m, "include_toc")
	o.ChapterPageBreak = boolOpt(m, "chapter_page_break")
	o.SceneSeparators = boolOpt(m, "scene_separators")
	if v, ok := m["separator_style"].(string); ok {
		o.SeparatorStyle = v
	}
	o.MarginLeft = floatOpt(m, "margin_left")
	o.MarginRight = floatOpt(m, "margin_right")
	o.MarginTop = floatOpt(m, "margin_top")
	o.MarginBottom = floatOpt(m, "margin_bottom")
	o.ChapterFontSize = floatOpt(m, "chapter_font_size")
	o.SceneFontSize = floatOpt(m, "scene_font_size")
	o.ContentFontSize = floatOpt(m, "content_font_size")
	return o
}

func boolOpt(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func floatOpt(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}
