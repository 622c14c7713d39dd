// Package archive reads and writes manuscript bundles: every export
// format of one manuscript packed into a single tar.xz archive, led by
// a manifest that records per-artifact checksums.
package archive

import (
	"archive/tar"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/inkforge/inkforge/core/artifact"
)

// ManifestName is the bundle's leading tar entry.
const ManifestName = "manifest.json"

// ManifestVersion identifies the current manifest layout.
const ManifestVersion = "1"

// Entry describes one artifact inside a bundle.
type Entry struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Size   int64  `json:"size_bytes"`
	SHA256 string `json:"sha256"`
}

// Manifest is the bundle's self-description. It travels as the first
// tar entry so readers can list and verify contents without unpacking
// everything first.
type Manifest struct {
	Version   string  `json:"version"`
	Title     string  `json:"title"`
	Author    string  `json:"author,omitempty"`
	Type      string  `json:"project_type,omitempty"`
	CreatedAt string  `json:"created_at"`
	Entries   []Entry `json:"entries"`
}

// Artifact is one file to place in a bundle.
type Artifact struct {
	Name   string
	Format string
	Data   []byte
}

// Write assembles a bundle onto w: the manifest first, then each
// artifact, tar-packed and xz-compressed. Manifest entries and the
// creation timestamp are filled in here.
func Write(w io.Writer, m Manifest, artifacts []Artifact) error {
	if m.Version == "" {
		m.Version = ManifestVersion
	}
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	m.Entries = make([]Entry, 0, len(artifacts))
	for _, a := range artifacts {
		sha, _ := artifact.Checksums(a.Data)
		m.Entries = append(m.Entries, Entry{
			Name:   a.Name,
			Format: a.Format,
			Size:   int64(len(a.Data)),
			SHA256: sha,
		})
	}

	manifestJSON, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	modTime, _ := time.Parse(time.RFC3339, m.CreatedAt)
	writeEntry := func(name string, data []byte) error {
		hdr := &tar.Header{
			Name:    name,
			Mode:    0644,
			Size:    int64(len(data)),
			ModTime: modTime,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		return nil
	}

	if err := writeEntry(ManifestName, manifestJSON); err != nil {
		return err
	}
	for _, a := range artifacts {
		if err := writeEntry(a.Name, a.Data); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return nil
}

// ReadManifest returns the manifest of the bundle read from r without
// verifying artifact contents.
func ReadManifest(r io.Reader) (*Manifest, error) {
	tr, err := newTarReader(r)
	if err != nil {
		return nil, err
	}
	hdr, err := tr.Next()
	if err != nil {
		return nil, fmt.Errorf("bundle is empty: %w", err)
	}
	if hdr.Name != ManifestName {
		return nil, fmt.Errorf("bundle does not start with %s (found %s)", ManifestName, hdr.Name)
	}
	var m Manifest
	if err := json.NewDecoder(tr).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}

// Verify reads the whole bundle from r and re-hashes every artifact
// against its manifest entry. It returns the manifest on success.
func Verify(r io.Reader) (*Manifest, error) {
	tr, err := newTarReader(r)
	if err != nil {
		return nil, err
	}

	var m *Manifest
	seen := map[string]bool{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read bundle: %w", err)
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", hdr.Name, err)
		}

		if hdr.Name == ManifestName {
			m = &Manifest{}
			if err := json.Unmarshal(data, m); err != nil {
				return nil, fmt.Errorf("failed to decode manifest: %w", err)
			}
			continue
		}
		if m == nil {
			return nil, fmt.Errorf("bundle does not start with %s", ManifestName)
		}

		entry, ok := findEntry(m, hdr.Name)
		if !ok {
			return nil, fmt.Errorf("artifact %s missing from manifest", hdr.Name)
		}
		sha, _ := artifact.Checksums(data)
		if sha != entry.SHA256 {
			return nil, fmt.Errorf("artifact %s checksum mismatch", hdr.Name)
		}
		if int64(len(data)) != entry.Size {
			return nil, fmt.Errorf("artifact %s size mismatch: %d, manifest says %d",
				hdr.Name, len(data), entry.Size)
		}
		seen[hdr.Name] = true
	}

	if m == nil {
		return nil, fmt.Errorf("bundle has no %s", ManifestName)
	}
	for _, e := range m.Entries {
		if !seen[e.Name] {
			return nil, fmt.Errorf("manifest entry %s missing from bundle", e.Name)
		}
	}
	return m, nil
}

func newTarReader(r io.Reader) (*tar.Reader, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("not an xz stream: %w", err)
	}
	return tar.NewReader(xzr), nil
}

func findEntry(m *Manifest, name string) (Entry, bool) {
	for _, e := range m.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
