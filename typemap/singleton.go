package typemap

import "sync"

// Process-wide registry and its freeze guard.
var (
	globalRegistry = NewRegistry()
	freezeOnce     sync.Once
	freezeErr      error
)

// Global returns the process-wide registry that vocabulary packages fill from
// their init functions. Use Default to read from it.
func Global() *Registry {
	return globalRegistry
}

// Default returns the process-wide registry, freezing it on first call.
// A conflicting registration is a startup bug, so Default panics on it.
func Default() *Registry {
	freezeOnce.Do(func() {
		freezeErr = globalRegistry.Freeze()
	})
	if freezeErr != nil {
		panic("invalid facet registry: " + freezeErr.Error())
	}
	return globalRegistry
}
