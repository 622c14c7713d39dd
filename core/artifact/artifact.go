// Package artifact describes finished export artifacts. Every artifact
// carries dual checksums (SHA-256 primary, BLAKE3 secondary) so exports
// can be verified and deduplicated later.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/zeebo/blake3"
)

// Artifact is the descriptor of one exported file.
type Artifact struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Size   int64  `json:"size_bytes"`
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Checksums returns the SHA-256 and BLAKE3 hex digests of data.
func Checksums(data []byte) (sha, b3 string) {
	s := sha256.Sum256(data)
	b := blake3.Sum256(data)
	return hex.EncodeToString(s[:]), hex.EncodeToString(b[:])
}

// Describe builds the descriptor for artifact bytes about to be
// persisted at path.
func Describe(path, format string, data []byte) Artifact {
	sha, b3 := Checksums(data)
	return Artifact{
		Path:   path,
		Format: format,
		Size:   int64(len(data)),
		SHA256: sha,
		BLAKE3: b3,
	}
}

// FromFile reads an existing artifact and computes its descriptor.
func FromFile(path, format string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to read artifact: %w", err)
	}
	return Describe(path, format, data), nil
}

// Matches reports whether other has the same content hashes.
func (a Artifact) Matches(other Artifact) bool {
	return a.SHA256 == other.SHA256 && a.BLAKE3 == other.BLAKE3
}
