// Package export is the single entry point callers use to turn a
// manuscript into a file artifact. It validates preconditions, resolves
// the registered format to an emitter, delegates to the assembler, and
// reports every outcome as a structured result rather than an exception.
package export

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inkforge/inkforge/core/artifact"
	"github.com/inkforge/inkforge/core/assemble"
	"github.com/inkforge/inkforge/core/errors"
	"github.com/inkforge/inkforge/core/manuscript"
	"github.com/inkforge/inkforge/core/profile"
)

// Category classifies a failed export so any caller, UI or CLI, renders
// one consistent message regardless of which internal stage failed.
type Category string

// Failure categories.
const (
	CategoryNone       Category = ""
	CategoryValidation Category = "validation"
	CategoryIO         Category = "io"
	CategoryInternal   Category = "internal"
)

// Result is the structured outcome of one export call. On success
// exactly one artifact exists at the requested path; on failure none is
// presented as valid.
type Result struct {
	OK       bool              `json:"ok"`
	RunID    string            `json:"run_id"`
	Format   string            `json:"format"`
	Category Category          `json:"category,omitempty"`
	Reason   string            `json:"reason,omitempty"`
	Artifact artifact.Artifact `json:"artifact,omitempty"`
	Duration time.Duration     `json:"duration"`
}

// Coordinator dispatches export calls to registered formats. The logger
// is injected so exports stay testable in isolation; a nil logger
// discards everything.
type Coordinator struct {
	log *slog.Logger
}

// New creates a coordinator with the given logger.
func New(logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Coordinator{log: logger}
}

// Export converts the manuscript to the named format and persists the
// artifact at outPath. It is synchronous and holds no state across
// calls; concurrent exports to different paths are independently safe.
func (c *Coordinator) Export(doc *manuscript.Project, format string, opts profile.Options, outPath string) Result {
	start := time.Now()
	res := Result{
		RunID:  uuid.NewString(),
		Format: format,
	}

	fail := func(cat Category, err error) Result {
		res.Category = cat
		res.Reason = err.Error()
		res.Duration = time.Since(start)
		c.log.Error("export_failed",
			"run_id", res.RunID,
			"format", format,
			"path", outPath,
			"category", string(cat),
			"reason", res.Reason,
		)
		return res
	}

	if doc == nil {
		return fail(CategoryValidation, errors.ErrNoManuscript)
	}
	factory, ok := factoryFor(format)
	if !ok {
		return fail(CategoryValidation, errors.NewUnsupportedFormat(format, SupportedFormats()))
	}
	em := factory()
	if em == nil {
		return fail(CategoryInternal, errors.NewInternal("format registry",
			"factory for "+format+" produced no emitter"))
	}

	prof := profile.Resolve(doc.Type, opts)

	art, err := assemble.Export(doc, prof, opts, em, format, outPath)
	if err != nil {
		return fail(categorize(err), err)
	}

	res.OK = true
	res.Artifact = art
	res.Duration = time.Since(start)
	c.log.Info("export_complete",
		"run_id", res.RunID,
		"format", format,
		"path", art.Path,
		"size_bytes", art.Size,
		"sha256", art.SHA256,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res
}

// categorize maps an assembly error onto the failure taxonomy.
func categorize(err error) Category {
	var ioErr *errors.IOError
	if errors.As(err, &ioErr) {
		return CategoryIO
	}
	if errors.Is(err, errors.ErrInvalidInput) || errors.Is(err, errors.ErrNoManuscript) ||
		errors.Is(err, errors.ErrUnsupportedFormat) {
		return CategoryValidation
	}
	return CategoryInternal
}
