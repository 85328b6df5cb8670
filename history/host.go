package history

import (
	"github.com/xy-planning-network/blaze"
	"go.uber.org/atomic"
)

// A Host is the navigation facility the hosting environment provides to a routing session.
//
// A Host owns its history stack entirely.
// A routing session only appends to the stack through PushEntry,
// reads the current entry's pathname through CurrentPath,
// and hears about host-driven moves of the history pointer through OnChanged.
// The session never enumerates the stack.
type Host interface {
	// PushEntry appends a new entry for p to the host's history stack,
	// making it the current entry.
	//
	// PushEntry must not fire callbacks registered with OnChanged;
	// hosts conventionally reserve that notification for changes
	// arriving from outside the program, such as back or forward buttons.
	PushEntry(p blaze.Path)

	// CurrentPath returns the pathname of the host's current history entry.
	CurrentPath() blaze.Path

	// OnChanged registers fn to be called with the host's new current pathname
	// each time the host moves its history pointer without PushEntry being involved.
	//
	// The returned [*DetachHandle] cancels the registration.
	OnChanged(fn func(blaze.Path)) *DetachHandle
}

// A DetachHandle cancels a single registration,
// whether a Host subscription or a path store observer.
type DetachHandle struct {
	detached atomic.Bool
	detach   func()
}

// NewDetachHandle constructs a DetachHandle wrapping detach.
//
// detach is called at most once, no matter how many times Detach is called.
func NewDetachHandle(detach func()) *DetachHandle {
	return &DetachHandle{detach: detach}
}

// Detach cancels the registration the handle stands for.
//
// Detach is idempotent: second and subsequent calls are no-ops,
// as is calling it after the routing session tore down.
// Detach on a nil handle is a no-op.
func (h *DetachHandle) Detach() {
	if h == nil {
		return
	}

	if !h.detached.CompareAndSwap(false, true) {
		return
	}

	if h.detach != nil {
		h.detach()
	}
}

// Detached reports whether Detach has been called.
func (h *DetachHandle) Detached() bool {
	if h == nil {
		return true
	}

	return h.detached.Load()
}
