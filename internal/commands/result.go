package commands

import "sync"

// Result receives the value produced by a query command. Messages carry a
// *Result so handlers keep the error-only Commander signature.
type Result[R any] struct {
	mu    sync.RWMutex
	value R
	set   bool
}

// NewResult returns an empty result.
func NewResult[R any]() *Result[R] {
	return &Result[R]{}
}

// Store records value, replacing any earlier one.
func (r *Result[R]) Store(value R) {
	r.mu.Lock()
	r.value = value
	r.set = true
	r.mu.Unlock()
}

// Load returns the stored value and whether one was stored.
func (r *Result[R]) Load() (R, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.set
}

// Value returns the stored value or the zero value.
func (r *Result[R]) Value() R {
	value, _ := r.Load()
	return value
}
