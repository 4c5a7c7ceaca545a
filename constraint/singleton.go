package constraint

import "sync"

// Default registry instance and initialization guard.
var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide default registry, creating it on first
// call. The built-in vocabularies (vocabulary/numeric, vocabulary/text)
// register into it from their init functions.
//
// Tests that need isolation should construct their own registry with
// NewRegistry rather than sharing this one.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// InitDefault installs a custom registry as the default. Must be called
// before any call to Default to take effect; only the first call has any
// effect.
func InitDefault(r *Registry) {
	defaultOnce.Do(func() {
		defaultRegistry = r
	})
}

// ResetDefault resets the default registry for testing purposes.
// Not thread-safe; tests only. Vocabulary init registrations are lost
// until the importing test process restarts.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultRegistry = nil
}
