// Package manuscript defines the document model consumed by the export
// engine. A manuscript is supplied by the structure editor as ordered
// chapters of ordered scenes and is read-only to every exporter.
package manuscript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ProjectType tags a manuscript with the kind of writing project it is.
// The formatting resolver maps each type to a layout profile.
type ProjectType string

// Project type constants.
const (
	TypeNovel      ProjectType = "novel"
	TypeNovella    ProjectType = "novella"
	TypeShortStory ProjectType = "short_story"
	TypePoetry     ProjectType = "poetry"
	TypeMemoir     ProjectType = "memoir"
	TypeAcademic   ProjectType = "academic"
)

// validProjectTypes is the set of recognized project types.
var validProjectTypes = map[ProjectType]bool{
	TypeNovel:      true,
	TypeNovella:    true,
	TypeShortStory: true,
	TypePoetry:     true,
	TypeMemoir:     true,
	TypeAcademic:   true,
}

// IsValid returns true if the project type is recognized. Unrecognized
// types are still exportable; they resolve to the baseline profile.
func (p ProjectType) IsValid() bool {
	return validProjectTypes[p]
}

// Label returns a human-readable label for cover pages.
func (p ProjectType) Label() string {
	if p == "" {
		return "Manuscript"
	}
	words := strings.Split(string(p), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Project is the top-level manuscript container.
type Project struct {
	// Title is the working title of the manuscript.
	Title string `json:"title"`

	// Author is the manuscript author.
	Author string `json:"author,omitempty"`

	// Genre is free-form genre metadata shown on the cover page.
	Genre string `json:"genre,omitempty"`

	// Language is the BCP-47 language tag (e.g., "en", "de").
	Language string `json:"language,omitempty"`

	// Type selects the per-type formatting profile.
	Type ProjectType `json:"project_type,omitempty"`

	// Chapters holds the ordered chapter list.
	Chapters []*Chapter `json:"chapters,omitempty"`

	// Attributes contains additional metadata as key-value pairs.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Chapter is one ordered division of a project.
type Chapter struct {
	// Title is optional; export falls back to "Chapter i".
	Title string `json:"title,omitempty"`

	// Scenes holds the ordered scene list.
	Scenes []*Scene `json:"scenes,omitempty"`
}

// Scene is the smallest exportable unit of content.
type Scene struct {
	// Title is optional; export falls back to "Scene j".
	Title string `json:"title,omitempty"`

	// Content is plain paragraph text or the restricted rich-markup subset.
	Content string `json:"content,omitempty"`
}

// SceneCount returns the total number of scenes across all chapters.
func (p *Project) SceneCount() int {
	n := 0
	for _, ch := range p.Chapters {
		n += len(ch.Scenes)
	}
	return n
}

// ChapterTitle returns the chapter title, defaulting to "Chapter i"
// (1-indexed) when unset.
func (c *Chapter) ChapterTitle(index int) string {
	if c.Title != "" {
		return c.Title
	}
	return fmt.Sprintf("Chapter %d", index)
}

// SceneTitle returns the scene title, defaulting to "Scene j" (1-indexed)
// when unset.
func (s *Scene) SceneTitle(index int) string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("Scene %d", index)
}

// Parse decodes a manuscript from its JSON interchange form.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse manuscript: %w", err)
	}
	return &p, nil
}

// Load reads and decodes a manuscript JSON file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manuscript: %w", err)
	}
	return Parse(data)
}
