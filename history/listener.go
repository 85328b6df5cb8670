package history

import (
	"fmt"

	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/logger"
	"go.uber.org/atomic"
)

// A PathStore receives the pathnames a [Listener] reads off its [Host].
//
// [github.com/xy-planning-network/blaze/router.Store] implements PathStore.
type PathStore interface {
	SetCurrentPath(p blaze.Path)
}

// A Listener keeps a [PathStore] consistent with host-driven history changes
// that bypass programmatic navigation, such as back or forward buttons.
//
// A routing session holds exactly one attached Listener.
type Listener struct {
	host  Host
	store PathStore
	l     logger.Logger
	live  atomic.Bool
}

// NewListener constructs a Listener syncing store with host.
//
// l may be nil, in which case the Listener logs nothing.
func NewListener(host Host, store PathStore, l logger.Logger) *Listener {
	return &Listener{host: host, store: store, l: l}
}

// Attach registers the Listener's one subscription on its [Host].
//
// On each host-driven history change, the Listener reads the host's
// current pathname and writes it into the [PathStore];
// it never pushes a new history entry, since the host already moved its pointer.
//
// A second Attach while the previous handle is live fails with
// [blaze.ErrDuplicateListener].
// Detaching the returned handle frees the Listener to be attached again.
func (l *Listener) Attach() (*DetachHandle, error) {
	if !l.live.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: history listener already attached", blaze.ErrDuplicateListener)
	}

	inner := l.host.OnChanged(func(_ blaze.Path) {
		p := l.host.CurrentPath()
		l.store.SetCurrentPath(p)

		if l.l != nil {
			l.l.Debug("host moved history pointer", &logger.LogContext{Path: p.String()})
		}
	})

	return NewDetachHandle(func() {
		inner.Detach()
		l.live.Store(false)
	}), nil
}

// Attached reports whether a live subscription exists.
func (l *Listener) Attached() bool { return l.live.Load() }
