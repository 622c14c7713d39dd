// Package embedded registers all built-in export backends. Importing it
// (usually blank) triggers each backend's init registration, so binaries
// choose their format surface with a single import.
package embedded

import (
	"github.com/inkforge/inkforge/internal/formats/docx"
	"github.com/inkforge/inkforge/internal/formats/htmlprint"
	"github.com/inkforge/inkforge/internal/formats/markdown"
)

// RegisterAll registers every built-in backend. Importing this package
// already does so via init; RegisterAll exists for tests that clear the
// registry and need to restore it.
func RegisterAll() {
	htmlprint.Register()
	docx.Register()
	markdown.Register()
}
