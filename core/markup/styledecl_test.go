package markup

import "testing"

func TestParseStyleDecls(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want StyleSet
	}{
		{"empty", "", 0},
		{"bold keyword", "font-weight: bold", Bold},
		{"bolder keyword", "font-weight: bolder", Bold},
		{"numeric weight above threshold", "font-weight: 600", Bold},
		{"numeric weight at max", "font-weight: 900", Bold},
		{"numeric weight below threshold", "font-weight: 400", 0},
		{"normal weight", "font-weight: normal", 0},
		{"italic", "font-style: italic", Italic},
		{"oblique", "font-style: oblique", Italic},
		{"underline", "text-decoration: underline", Underline},
		{"underline line variant", "text-decoration-line: underline", Underline},
		{"multi-value decoration", "text-decoration: underline line-through", Underline},
		{"combined declarations", "font-weight:bold; font-style:italic; text-decoration:underline", Bold | Italic | Underline},
		{"trailing semicolon", "font-weight: bold;", Bold},
		{"empty declaration between semicolons", "font-weight:bold;;font-style:italic", Bold | Italic},
		{"unknown property ignored", "color: blue; font-weight: bold", Bold},
		{"case insensitive", "FONT-WEIGHT: BOLD", Bold},
		{"no styling declared", "margin: 0; padding: 0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStyleDecls(tt.decl); got != tt.want {
				t.Errorf("ParseStyleDecls(%q) = %v, want %v", tt.decl, got, tt.want)
			}
		})
	}
}

func TestParseStyleDeclsLenientFallback(t *testing.T) {
	// Declarations the grammar rejects still resolve via the lenient
	// split; markup handling must never fail.
	tests := []struct {
		decl string
		want StyleSet
	}{
		{"color:#ff0000; font-weight:bold", Bold},
		{"font-style: italic !important", Italic},
		{"garbage without structure", 0},
	}
	for _, tt := range tests {
		if got := ParseStyleDecls(tt.decl); got != tt.want {
			t.Errorf("ParseStyleDecls(%q) = %v, want %v", tt.decl, got, tt.want)
		}
	}
}
