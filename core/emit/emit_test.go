package emit

import "testing"

func TestTOCEntryLabel(t *testing.T) {
	tests := []struct {
		name  string
		entry TOCEntry
		want  string
	}{
		{"untitled no scenes", TOCEntry{Number: 1}, "Chapter 1"},
		{"untitled one scene", TOCEntry{Number: 2, SceneCount: 1}, "Chapter 2 (1 scene)"},
		{"untitled many scenes", TOCEntry{Number: 3, SceneCount: 4}, "Chapter 3 (4 scenes)"},
		{"titled no scenes", TOCEntry{Number: 1, Title: "The Road"}, "Chapter 1: The Road"},
		{"titled with scenes", TOCEntry{Number: 7, Title: "Storm", SceneCount: 2}, "Chapter 7: Storm (2 scenes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
