package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestChecksums(t *testing.T) {
	sha, b3 := Checksums([]byte("the quick brown fox"))
	if len(sha) != 64 || len(b3) != 64 {
		t.Fatalf("digest lengths = %d / %d, want 64", len(sha), len(b3))
	}
	if sha == b3 {
		t.Error("SHA-256 and BLAKE3 digests should differ")
	}

	sha2, b32 := Checksums([]byte("the quick brown fox"))
	if sha != sha2 || b3 != b32 {
		t.Error("same data should hash identically")
	}

	sha3, _ := Checksums([]byte("different data"))
	if sha == sha3 {
		t.Error("different data should hash differently")
	}
}

func TestDescribe(t *testing.T) {
	data := []byte("artifact bytes")
	art := Describe("/tmp/out.md", "markdown", data)
	if art.Path != "/tmp/out.md" || art.Format != "markdown" {
		t.Errorf("descriptor = %+v", art)
	}
	if art.Size != int64(len(data)) {
		t.Errorf("Size = %d, want %d", art.Size, len(data))
	}
	sha, b3 := Checksums(data)
	if art.SHA256 != sha || art.BLAKE3 != b3 {
		t.Error("descriptor hashes disagree with Checksums")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	data := []byte("# Chapter 1\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	art, err := FromFile(path, "markdown")
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if !art.Matches(Describe(path, "markdown", data)) {
		t.Error("file descriptor should match in-memory descriptor")
	}

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing"), "markdown"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestMatches(t *testing.T) {
	a := Describe("a", "markdown", []byte("same"))
	b := Describe("b", "html", []byte("same"))
	c := Describe("c", "markdown", []byte("other"))
	if !a.Matches(b) {
		t.Error("identical content at different paths should match")
	}
	if a.Matches(c) {
		t.Error("different content should not match")
	}
}
