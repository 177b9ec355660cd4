package catalog

import "sync"

// Holder hands out the current Store snapshot and lets a rebuild swap in a
// fresh one. Handlers always read a consistent snapshot; they never see a
// store mid-reload.
type Holder struct {
	mu    sync.RWMutex
	store *Store
}

// NewHolder wraps the initial snapshot.
func NewHolder(store *Store) *Holder {
	return &Holder{store: store}
}

// Get returns the current snapshot.
func (h *Holder) Get() *Store {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.store
}

// Set swaps in a freshly loaded snapshot.
func (h *Holder) Set(store *Store) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.store = store
}
