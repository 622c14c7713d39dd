package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inkforge/inkforge/core/artifact"
	"github.com/inkforge/inkforge/core/export"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	ok := export.Result{
		OK:     true,
		RunID:  "run-1",
		Format: "markdown",
		Artifact: artifact.Artifact{
			Path:   "/tmp/draft.md",
			Size:   120,
			SHA256: "aa",
			BLAKE3: "bb",
		},
		Duration: 42 * time.Millisecond,
	}
	failed := export.Result{
		RunID:    "run-2",
		Format:   "docx",
		Category: export.CategoryIO,
		Reason:   "disk full",
	}

	if err := j.Record("The Draft", ok); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record("The Draft", failed); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	byID := map[string]Entry{}
	for _, e := range entries {
		byID[e.RunID] = e
	}

	got := byID["run-1"]
	if !got.OK || got.Format != "markdown" || got.Path != "/tmp/draft.md" {
		t.Errorf("success entry = %+v", got)
	}
	if got.SizeBytes != 120 || got.SHA256 != "aa" || got.DurationMS != 42 {
		t.Errorf("success entry details = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got = byID["run-2"]
	if got.OK || got.Category != "io" || got.Reason != "disk full" {
		t.Errorf("failure entry = %+v", got)
	}
}

func TestRecentLimit(t *testing.T) {
	j := openTestJournal(t)
	for i := 0; i < 5; i++ {
		res := export.Result{RunID: string(rune('a' + i)), Format: "markdown"}
		if err := j.Record("Draft", res); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := j.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}

	// non-positive limits fall back to the default window
	entries, err = j.Recent(0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d entries, want all 5", len(entries))
	}
}

func TestRecentEmptyJournal(t *testing.T) {
	j := openTestJournal(t)
	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("fresh journal has %d entries", len(entries))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := j1.Record("Draft", export.Result{RunID: "r1", Format: "html"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	j1.Close()

	j2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer j2.Close()
	entries, err := j2.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 || entries[0].RunID != "r1" {
		t.Errorf("entries after reopen = %+v", entries)
	}
}
