package export

import (
	"sort"
	"sync"

	"github.com/inkforge/inkforge/core/emit"
)

// registry holds the registered format factories. Formats register at
// init time (the built-ins) or at runtime; the coordinator itself never
// changes when a format is added.
var (
	regMu    sync.RWMutex
	registry = make(map[string]emit.Factory)
)

// RegisterFormat registers an emitter factory under a format name.
// Re-registering a name replaces the previous factory.
func RegisterFormat(name string, factory emit.Factory) {
	if name == "" || factory == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	registry[name] = factory
}

// SupportedFormats returns the registered format names, sorted.
func SupportedFormats() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatRegistered checks if a format name has a registered factory.
func FormatRegistered(name string) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	_, ok := registry[name]
	return ok
}

func factoryFor(name string) (emit.Factory, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// NewEmitter constructs a fresh emitter for a registered format, for
// callers that drive the assembler themselves (bundled multi-format
// exports). Returns false when the format is not registered.
func NewEmitter(name string) (emit.Emitter, bool) {
	f, ok := factoryFor(name)
	if !ok || f == nil {
		return nil, false
	}
	em := f()
	if em == nil {
		return nil, false
	}
	return em, true
}

// ClearRegistry removes all registered formats (for testing).
func ClearRegistry() {
	regMu.Lock()
	defer regMu.Unlock()
	registry = make(map[string]emit.Factory)
}
