// Package assemble orchestrates a full document build: cover page,
// table of contents, chapter and scene iteration with breaks, and final
// persistence of the artifact.
package assemble

import (
	"os"
	"time"

	"github.com/inkforge/inkforge/core/artifact"
	"github.com/inkforge/inkforge/core/emit"
	"github.com/inkforge/inkforge/core/errors"
	"github.com/inkforge/inkforge/core/manuscript"
	"github.com/inkforge/inkforge/core/markup"
	"github.com/inkforge/inkforge/core/profile"
	"github.com/inkforge/inkforge/internal/fileutil"
)

// EmptyScenePlaceholder is emitted for scenes with no content, so the
// manuscript structure stays visible in unfinished drafts.
const EmptyScenePlaceholder = "[Empty scene]"

// Injectable for testing
var now = time.Now

// Document drives the emitter over the whole manuscript and returns the
// finalized artifact bytes. It never touches the filesystem.
func Document(doc *manuscript.Project, prof profile.Profile, opts profile.Options, em emit.Emitter) ([]byte, error) {
	if opts.CoverEnabled() {
		em.CoverPage(emit.CoverMeta{
			Title:     doc.Title,
			Author:    doc.Author,
			TypeLabel: doc.Type.Label(),
			Genre:     doc.Genre,
			Date:      now(),
		}, prof)
	}

	if opts.TOCEnabled() {
		entries := make([]emit.TOCEntry, 0, len(doc.Chapters))
		for i, ch := range doc.Chapters {
			entries = append(entries, emit.TOCEntry{
				Number:     i + 1,
				Title:      ch.Title,
				SceneCount: len(ch.Scenes),
			})
		}
		em.TableOfContents(entries, prof)
	}

	for ci, ch := range doc.Chapters {
		em.ChapterHeading(ch.ChapterTitle(ci+1), prof)

		for si, sc := range ch.Scenes {
			em.SceneHeading(sc.SceneTitle(si+1), prof)

			blocks := markup.Parse(sc.Content)
			if len(blocks) == 0 {
				blocks = []markup.Paragraph{placeholderBlock()}
			}
			for _, block := range blocks {
				em.Paragraph(block, prof)
			}

			if opts.SeparatorsEnabled() && si < len(ch.Scenes)-1 {
				em.SceneSeparator(prof)
			}
		}

		if prof.ChapterPageBreak && ci < len(doc.Chapters)-1 {
			em.PageBreak()
		}
	}

	return em.Finalize()
}

// Export assembles the document and persists the artifact at outPath.
// Persistence goes through a temp-file rename, so on failure no
// half-written file is readable as valid at the destination.
func Export(doc *manuscript.Project, prof profile.Profile, opts profile.Options, em emit.Emitter, format, outPath string) (artifact.Artifact, error) {
	data, err := Document(doc, prof, opts, em)
	if err != nil {
		return artifact.Artifact{}, errors.Wrap(err, "failed to assemble document")
	}

	if err := fileutil.WriteAtomic(outPath, data, os.FileMode(0644)); err != nil {
		return artifact.Artifact{}, errors.NewIO("write", outPath, err)
	}
	return artifact.Describe(outPath, format, data), nil
}

func placeholderBlock() markup.Paragraph {
	return markup.Paragraph{Runs: []markup.Run{{Text: EmptyScenePlaceholder}}}
}
