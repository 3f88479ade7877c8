// Package viewcache tracks which rendered view paths have been invalidated
// by a mutation so the next read regenerates them instead of serving a
// stale cached render.
package viewcache

import (
	"sync"
	"time"
)

type Registry struct {
	mu    sync.RWMutex
	stale map[string]time.Time
}

func New() *Registry {
	return &Registry{stale: make(map[string]time.Time)}
}

// Invalidate marks a view path stale. Safe to call concurrently with reads.
func (r *Registry) Invalidate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stale[path] = time.Now()
}

// Revalidate clears the stale mark after a fresh result has been served.
func (r *Registry) Revalidate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stale, path)
}

// IsStale reports whether the path has been invalidated since its last
// revalidation.
func (r *Registry) IsStale(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.stale[path]
	return ok
}

// InvalidatedAt returns when the path was last invalidated.
func (r *Registry) InvalidatedAt(path string) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.stale[path]
	return t, ok
}
