// Package emit defines the run emitter capability set shared by every
// export backend. Each emitter instance owns its output buffer
// exclusively; one instance serves exactly one export call.
package emit

import (
	"fmt"
	"time"

	"github.com/inkforge/inkforge/core/markup"
	"github.com/inkforge/inkforge/core/profile"
)

// CoverMeta is the metadata block rendered on the cover page.
type CoverMeta struct {
	Title     string
	Author    string
	TypeLabel string
	Genre     string
	Date      time.Time
}

// TOCEntry is one table-of-contents entry.
type TOCEntry struct {
	// Number is the 1-indexed chapter number.
	Number int

	// Title is the chapter title; empty when the chapter is untitled.
	Title string

	// SceneCount is the number of scenes in the chapter.
	SceneCount int
}

// Label renders the entry text all backends share: "Chapter i", with
// ": <title>" when the chapter is titled and a scene-count suffix when
// scenes exist.
func (e TOCEntry) Label() string {
	label := fmt.Sprintf("Chapter %d", e.Number)
	if e.Title != "" {
		label += ": " + e.Title
	}
	switch {
	case e.SceneCount == 1:
		label += " (1 scene)"
	case e.SceneCount > 1:
		label += fmt.Sprintf(" (%d scenes)", e.SceneCount)
	}
	return label
}

// Emitter is the backend-specific translator from parsed run structure
// to one output format. Calls append to the instance's private buffer;
// Finalize produces the complete artifact bytes. Given the same blocks
// and profile, all emitters must agree on paragraph counts, run order,
// styled-run flags, and break points, however different their syntax.
type Emitter interface {
	CoverPage(meta CoverMeta, p profile.Profile)
	TableOfContents(entries []TOCEntry, p profile.Profile)
	ChapterHeading(text string, p profile.Profile)
	SceneHeading(text string, p profile.Profile)
	Paragraph(block markup.Paragraph, p profile.Profile)
	SceneSeparator(p profile.Profile)
	PageBreak()

	// Finalize completes the document and returns the artifact bytes.
	Finalize() ([]byte, error)

	// Extension is the conventional file extension, with the dot.
	Extension() string
}

// Factory constructs a fresh emitter for one export call.
type Factory func() Emitter
