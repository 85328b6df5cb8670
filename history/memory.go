package history

import (
	"sync"

	"github.com/xy-planning-network/blaze"
)

// A MemoryHost is a [Host] held entirely in memory.
//
// MemoryHost stands in for a browser-like environment in tests, examples,
// and embedders without one.
// [*MemoryHost.Back] and [*MemoryHost.Forward] play the part of the end user
// reaching for the host's history buttons:
// they move the history pointer and fire OnChanged callbacks,
// exactly the changes [*MemoryHost.PushEntry] never announces.
//
// All methods serialize access with a mutex,
// so a MemoryHost tolerates hosts whose events arrive from more than one goroutine.
type MemoryHost struct {
	mu        sync.Mutex
	entries   []blaze.Path
	pos       int
	callbacks map[int]func(blaze.Path)
	nextID    int
}

// NewMemoryHost constructs a MemoryHost whose history stack holds
// a single entry for initial.
//
// A zero-value initial is seeded as [blaze.RootPath].
func NewMemoryHost(initial blaze.Path) *MemoryHost {
	if initial == "" {
		initial = blaze.RootPath
	}

	return &MemoryHost{
		entries:   []blaze.Path{initial},
		callbacks: make(map[int]func(blaze.Path)),
	}
}

// PushEntry appends a new entry for p, truncating any forward entries first,
// the way host history stacks drop their forward range when a new page is visited.
//
// PushEntry fires no OnChanged callbacks.
func (h *MemoryHost) PushEntry(p blaze.Path) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.pos+1], p)
	h.pos = len(h.entries) - 1
}

// CurrentPath returns the pathname of the current history entry.
func (h *MemoryHost) CurrentPath() blaze.Path {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.entries[h.pos]
}

// OnChanged registers fn to hear host-driven history moves.
// The returned handle cancels the registration.
func (h *MemoryHost) OnChanged(fn func(blaze.Path)) *DetachHandle {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.callbacks[id] = fn
	h.mu.Unlock()

	return NewDetachHandle(func() {
		h.mu.Lock()
		delete(h.callbacks, id)
		h.mu.Unlock()
	})
}

// Back moves the history pointer one entry back, firing OnChanged callbacks.
// Back reports whether a previous entry existed to move to.
func (h *MemoryHost) Back() bool {
	h.mu.Lock()
	if h.pos <= 0 {
		h.mu.Unlock()
		return false
	}

	h.pos--
	p := h.entries[h.pos]
	cbs := h.snapshotCallbacks()
	h.mu.Unlock()

	for _, fn := range cbs {
		fn(p)
	}

	return true
}

// Forward moves the history pointer one entry forward, firing OnChanged callbacks.
// Forward reports whether a forward entry existed to move to.
func (h *MemoryHost) Forward() bool {
	h.mu.Lock()
	if h.pos >= len(h.entries)-1 {
		h.mu.Unlock()
		return false
	}

	h.pos++
	p := h.entries[h.pos]
	cbs := h.snapshotCallbacks()
	h.mu.Unlock()

	for _, fn := range cbs {
		fn(p)
	}

	return true
}

// CanGoBack reports whether a previous history entry exists.
func (h *MemoryHost) CanGoBack() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pos > 0
}

// CanGoForward reports whether a forward history entry exists.
func (h *MemoryHost) CanGoForward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pos < len(h.entries)-1
}

// Len returns the number of entries in the history stack.
func (h *MemoryHost) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}

// snapshotCallbacks copies registered callbacks so they can run outside the lock.
// Callers must hold h.mu.
func (h *MemoryHost) snapshotCallbacks() []func(blaze.Path) {
	cbs := make([]func(blaze.Path), 0, len(h.callbacks))
	for _, fn := range h.callbacks {
		cbs = append(cbs, fn)
	}

	return cbs
}
