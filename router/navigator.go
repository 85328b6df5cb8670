package router

import (
	"fmt"

	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/history"
	"github.com/xy-planning-network/blaze/logger"
)

// A Navigator performs programmatic navigation,
// keeping host history and the [Store] consistent.
//
// A Navigator is the single choke point all link-like elements call through.
type Navigator struct {
	host  history.Host
	store *Store
	l     logger.Logger
}

// NewNavigator constructs a Navigator pushing onto host and updating store.
//
// l may be nil, in which case the Navigator logs nothing.
func NewNavigator(host history.Host, store *Store, l logger.Logger) *Navigator {
	return &Navigator{host: host, store: store, l: l}
}

// Navigate changes the current pathname to target.
//
// A malformed or unnormalized target fails fast with an error wrapping
// [blaze.ErrInvalidPath] before any history entry is pushed or the [Store]
// touched; navigation is never partially applied.
//
// Otherwise, Navigate pushes a host history entry for target and then updates
// the Store, in that order; after Navigate returns, the Store and the host
// both report target. Navigating to the pathname already current pushes no
// entry and fires no notification.
func (n *Navigator) Navigate(target blaze.Path) error {
	if err := target.Valid(); err != nil {
		if n.l != nil {
			n.l.Warn("rejected navigation", &logger.LogContext{Error: err, Path: target.String()})
		}

		return err
	}

	if target == n.store.CurrentPath() {
		if n.l != nil {
			n.l.Debug("already current, skipping navigation", &logger.LogContext{Path: target.String()})
		}

		return nil
	}

	n.host.PushEntry(target)
	n.store.SetCurrentPath(target)

	if n.l != nil {
		n.l.Debug("navigated", &logger.LogContext{Path: target.String()})
	}

	return nil
}

// NavigateRaw normalizes raw with [blaze.ParsePath] and navigates to the result.
//
// NavigateRaw is the entry point for pathnames arriving as strings,
// say, off a link-like element's href.
func (n *Navigator) NavigateRaw(raw string) error {
	target, err := blaze.ParsePath(raw)
	if err != nil {
		if n.l != nil {
			n.l.Warn("rejected navigation", &logger.LogContext{Error: err, Path: raw})
		}

		return fmt.Errorf("cannot navigate to %q: %w", raw, err)
	}

	return n.Navigate(target)
}

// An Intent is the contract between a link-like element and the [Navigator]:
// the element supplies its target pathname and the way to suppress the host's
// default navigation for the activation that produced it.
//
// An Intent is ephemeral; it is consumed synchronously by [*Navigator.Follow]
// and never persisted.
type Intent struct {
	// Target is the raw pathname the element points at.
	Target string

	// CancelDefault suppresses the host's default navigation behavior
	// for the triggering activation, preventing a real page load.
	//
	// A nil CancelDefault means the intent arrived pre-cancelled.
	CancelDefault func()
}

// Follow consumes an [Intent] from a link-like element.
//
// Follow cancels the host's default navigation first, before validating the
// target, so a malformed pathname cannot fall through to a real page load.
func (n *Navigator) Follow(in Intent) error {
	if in.CancelDefault != nil {
		in.CancelDefault()
	}

	return n.NavigateRaw(in.Target)
}
