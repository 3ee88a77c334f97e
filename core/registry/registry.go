package registry

import "sync"

// Registry is a thread-safe key-value store with lock-after-init semantics.
// Extension registries (cmd, cron, api) write during init() and lock once
// the application wires them up; further writes to a locked key panic at
// the call sites that check IsLocked.
type Registry struct {
	values sync.Map
	locked sync.Map
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = &Registry{}

// SetGlobal stores a value for a key.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.values.Store(key, value)
}

// GetGlobal retrieves a value for a key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	return r.values.Load(key)
}

// Lock marks a key immutable. Callers must check IsLocked before writing.
func (r *Registry) Lock(key string) {
	r.locked.Store(key, struct{}{})
}

// IsLocked reports whether a key has been locked.
func (r *Registry) IsLocked(key string) bool {
	_, ok := r.locked.Load(key)
	return ok
}

// UnlockForTesting removes the lock on a key (for tests only).
func (r *Registry) UnlockForTesting(key string) {
	r.locked.Delete(key)
}
