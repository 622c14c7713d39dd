// Command inkport is the export CLI for Inkforge manuscripts. It turns
// a manuscript JSON file into print-paginated, word-processor, or
// plain-markup artifacts via the engine's format registry.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alecthomas/kong"

	"github.com/inkforge/inkforge/core/artifact"
	"github.com/inkforge/inkforge/core/assemble"
	"github.com/inkforge/inkforge/core/export"
	"github.com/inkforge/inkforge/core/manuscript"
	"github.com/inkforge/inkforge/core/profile"
	"github.com/inkforge/inkforge/internal/archive"
	"github.com/inkforge/inkforge/internal/fileutil"
	"github.com/inkforge/inkforge/internal/journal"
	"github.com/inkforge/inkforge/internal/logging"
	"github.com/inkforge/inkforge/internal/oxml"

	// Register built-in export backends.
	_ "github.com/inkforge/inkforge/internal/embedded"
)

const version = "0.4.0"

// CLI defines the command-line interface for inkport.
var CLI struct {
	// Global flags
	Verbose bool   `name:"verbose" short:"v" help:"Enable debug logging"`
	Journal string `name:"journal" help:"Path to the export journal database (disabled when empty)" type:"path"`

	Export  ExportCmd  `cmd:"" help:"Export a manuscript to one format"`
	Bundle  BundleCmd  `cmd:"" help:"Export a manuscript to every registered format as a tar.xz bundle"`
	Formats FormatsCmd `cmd:"" help:"List registered export formats"`
	Verify  VerifyCmd  `cmd:"" help:"Verify an exported artifact"`
	History HistoryCmd `cmd:"" help:"Show recent exports from the journal"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// appContext carries the shared logger into command Run methods.
type appContext struct {
	log *slog.Logger
}

// exportOptions are the option flags shared by export and bundle.
type exportOptions struct {
	Cover          bool     `name:"cover" default:"true" negatable:"" help:"Emit the cover page"`
	Toc            bool     `name:"toc" default:"true" negatable:"" help:"Emit the table of contents"`
	PageBreaks     bool     `name:"page-breaks" default:"true" negatable:"" help:"Page break after each chapter"`
	Separators     bool     `name:"separators" default:"true" negatable:"" help:"Separator between scenes"`
	SeparatorStyle string   `name:"separator-style" help:"Scene separator token"`
	MarginLeft     *float64 `name:"margin-left" help:"Left margin in mm"`
	MarginRight    *float64 `name:"margin-right" help:"Right margin in mm"`
	MarginTop      *float64 `name:"margin-top" help:"Top margin in mm"`
	MarginBottom   *float64 `name:"margin-bottom" help:"Bottom margin in mm"`
	ChapterFont    *float64 `name:"chapter-font-size" help:"Chapter heading size in pt"`
	SceneFont      *float64 `name:"scene-font-size" help:"Scene heading size in pt"`
	ContentFont    *float64 `name:"content-font-size" help:"Body text size in pt"`
}

func (o exportOptions) toOptions() profile.Options {
	return profile.Options{
		IncludeCover:     &o.Cover,
		IncludeTOC:       &o.Toc,
		ChapterPageBreak: &o.PageBreaks,
		SceneSeparators:  &o.Separators,
		SeparatorStyle:   o.SeparatorStyle,
		MarginLeft:       o.MarginLeft,
		MarginRight:      o.MarginRight,
		MarginTop:        o.MarginTop,
		MarginBottom:     o.MarginBottom,
		ChapterFontSize:  o.ChapterFont,
		SceneFontSize:    o.SceneFont,
		ContentFontSize:  o.ContentFont,
	}
}

// ExportCmd exports one manuscript to one format.
type ExportCmd struct {
	Manuscript string `arg:"" help:"Path to manuscript JSON" type:"existingfile"`
	Format     string `name:"format" short:"f" default:"markdown" help:"Export format name"`
	Out        string `name:"out" short:"o" help:"Output path (defaults next to the manuscript)" type:"path"`

	exportOptions
}

func (c *ExportCmd) Run(app *appContext) error {
	doc, err := manuscript.Load(c.Manuscript)
	if err != nil {
		return err
	}

	outPath := c.Out
	if outPath == "" {
		em, ok := export.NewEmitter(c.Format)
		if !ok {
			return fmt.Errorf("unsupported export format: %q (supported: %s)",
				c.Format, strings.Join(export.SupportedFormats(), ", "))
		}
		base := strings.TrimSuffix(c.Manuscript, filepath.Ext(c.Manuscript))
		outPath = base + em.Extension()
	}

	coord := export.New(app.log)
	res := coord.Export(doc, c.Format, c.toOptions(), outPath)
	recordJournal(app.log, doc.Title, res)

	if !res.OK {
		return fmt.Errorf("export failed (%s): %s", res.Category, res.Reason)
	}
	fmt.Printf("Exported %s to %s (%d bytes)\n", doc.Title, res.Artifact.Path, res.Artifact.Size)
	fmt.Printf("  sha256: %s\n", res.Artifact.SHA256)
	return nil
}

// BundleCmd exports to every registered format and packs the artifacts
// into one xz-compressed tar archive.
type BundleCmd struct {
	Manuscript string `arg:"" help:"Path to manuscript JSON" type:"existingfile"`
	Out        string `name:"out" short:"o" help:"Bundle path (defaults to <manuscript>.tar.xz)" type:"path"`

	exportOptions
}

func (c *BundleCmd) Run(app *appContext) error {
	doc, err := manuscript.Load(c.Manuscript)
	if err != nil {
		return err
	}
	opts := c.toOptions()
	prof := profile.Resolve(doc.Type, opts)
	base := slug(doc.Title)
	if base == "" {
		base = "manuscript"
	}

	var artifacts []archive.Artifact
	for _, format := range export.SupportedFormats() {
		em, ok := export.NewEmitter(format)
		if !ok {
			return fmt.Errorf("exporter misconfigured: no emitter for registered format %q", format)
		}
		data, err := assemble.Document(doc, prof, opts, em)
		if err != nil {
			return fmt.Errorf("failed to assemble %s artifact: %w", format, err)
		}
		name := base + em.Extension()
		artifacts = append(artifacts, archive.Artifact{Name: name, Format: format, Data: data})
		app.log.Info("bundle_entry", "format", format, "name", name, "size_bytes", len(data))
	}

	var buf bytes.Buffer
	manifest := archive.Manifest{
		Title:  doc.Title,
		Author: doc.Author,
		Type:   string(doc.Type),
	}
	if err := archive.Write(&buf, manifest, artifacts); err != nil {
		return err
	}

	outPath := c.Out
	if outPath == "" {
		outPath = strings.TrimSuffix(c.Manuscript, filepath.Ext(c.Manuscript)) + ".tar.xz"
	}
	if err := fileutil.WriteAtomic(outPath, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Printf("Bundled %d formats into %s (%d bytes)\n",
		len(artifacts), outPath, buf.Len())
	return nil
}

// FormatsCmd lists the registered export formats.
type FormatsCmd struct{}

func (c *FormatsCmd) Run() error {
	for _, name := range export.SupportedFormats() {
		ext := ""
		if em, ok := export.NewEmitter(name); ok {
			ext = em.Extension()
		}
		fmt.Printf("%-10s %s\n", name, ext)
	}
	return nil
}

// VerifyCmd re-hashes an exported artifact. Word-processor packages get
// a structural check on top; bundles are verified entry by entry against
// their manifest.
type VerifyCmd struct {
	Path string `arg:"" help:"Path to exported artifact or bundle" type:"existingfile"`
}

func (c *VerifyCmd) Run() error {
	if strings.HasSuffix(c.Path, ".tar.xz") {
		return c.verifyBundle()
	}

	art, err := artifact.FromFile(c.Path, strings.TrimPrefix(filepath.Ext(c.Path), "."))
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  size:   %d bytes\n  sha256: %s\n  blake3: %s\n",
		art.Path, art.Size, art.SHA256, art.BLAKE3)

	if oxml.IsPackagePath(c.Path) {
		data, err := os.ReadFile(c.Path)
		if err != nil {
			return err
		}
		report, err := oxml.VerifyPackage(data)
		if err != nil {
			return fmt.Errorf("package verification failed: %w", err)
		}
		fmt.Printf("  package: %d parts, %d paragraphs, %d runs\n",
			len(report.Parts), report.ParagraphCount, report.RunCount)
	}
	return nil
}

func (c *VerifyCmd) verifyBundle() error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := archive.Verify(f)
	if err != nil {
		return fmt.Errorf("bundle verification failed: %w", err)
	}
	fmt.Printf("%s\n  title:   %s\n  created: %s\n", c.Path, m.Title, m.CreatedAt)
	for _, e := range m.Entries {
		fmt.Printf("  %-10s %s (%d bytes, ok)\n", e.Format, e.Name, e.Size)
	}
	return nil
}

// HistoryCmd lists recent exports from the journal.
type HistoryCmd struct {
	Limit int `name:"limit" short:"n" default:"20" help:"Number of entries to show"`
}

func (c *HistoryCmd) Run() error {
	if CLI.Journal == "" {
		return fmt.Errorf("no journal configured; pass --journal")
	}
	j, err := journal.Open(CLI.Journal)
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.Recent(c.Limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		status := "ok"
		if !e.OK {
			status = "FAILED (" + e.Category + ")"
		}
		fmt.Printf("%s  %-8s  %-10s  %s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Format, status, e.Manuscript, e.Path)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("inkport %s\n", version)
	return nil
}

// recordJournal stores the export outcome when a journal is configured.
// Journal trouble never fails the export itself.
func recordJournal(log *slog.Logger, title string, res export.Result) {
	if CLI.Journal == "" {
		return
	}
	j, err := journal.Open(CLI.Journal)
	if err != nil {
		log.Warn("journal_unavailable", "path", CLI.Journal, "error", err.Error())
		return
	}
	defer j.Close()
	if err := j.Record(title, res); err != nil {
		log.Warn("journal_write_failed", "path", CLI.Journal, "error", err.Error())
	}
}

// slug reduces a title to a filesystem-friendly name. Letters and
// digits of any script are kept so non-English titles stay meaningful.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("inkport"),
		kong.Description("Inkforge manuscript export engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	app := &appContext{log: logging.NewCLI(CLI.Verbose)}
	err := ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
