package main

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"ascii title", "The Long Road", "the-long-road"},
		{"punctuation dropped", "One: Two!", "one-two"},
		{"underscores and dashes kept", "draft_v2-final", "draft-v2-final"},
		{"accented letters kept", "Crème Brûlée", "crème-brûlée"},
		{"cyrillic kept", "Война и мир", "война-и-мир"},
		{"cjk kept", "雪国", "雪国"},
		{"surrounding separators trimmed", "  - A Tale - ", "a-tale"},
		{"symbols only", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slug(tt.title); got != tt.want {
				t.Errorf("slug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
