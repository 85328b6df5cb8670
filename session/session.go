package session

import (
	"fmt"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/history"
	"github.com/xy-planning-network/blaze/logger"
	"github.com/xy-planning-network/blaze/router"
	"go.uber.org/atomic"
)

// A Session manages and exposes all components of a blaze routing session to one another:
// the host, the path store, the navigator, and the history listener.
type Session struct {
	closed      atomic.Bool
	detach      *history.DetachHandle
	env         blaze.Environment
	host        history.Host
	id          uuid.UUID
	initialPath blaze.Path
	l           logger.Logger
	listener    *history.Listener
	nav         *router.Navigator
	routes      router.Routes
	store       *router.Store
	trace       bool
}

// New constructs a Session from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// With no options, a Session runs against a [history.MemoryHost] seeded from
// the INITIAL_PATH environment variable, logging per ENVIRONMENT and LOG_LEVEL.
//
// New seeds the path store from the host's current pathname and attaches the
// session's one history listener, so the Session answers [*Session.CurrentPath]
// correctly before any navigation occurs.
func New(opts ...SessionOption) (*Session, error) {
	s := new(Session)
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Session under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Session
	// until either (1) user supplied SessionOptions or (2) default SessionOptions
	// configure the *Session first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(s)
		if err != nil {
			return s, fmt.Errorf("%w: %s", blaze.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", blaze.ErrBadConfig, err)
		}
	}

	if err := s.routes.Valid(); err != nil {
		return nil, fmt.Errorf("%w: %s", blaze.ErrBadConfig, err)
	}

	s.id = uuid.New()
	s.store = router.NewStore(s.host.CurrentPath())
	s.nav = router.NewNavigator(s.host, s.store, s.l)
	s.listener = history.NewListener(s.host, s.store, s.l)

	handle, err := s.listener.Attach()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", blaze.ErrBadConfig, err)
	}
	s.detach = handle

	if s.trace {
		s.store.Observe(func(p blaze.Path) {
			s.l.Debug("path changed", &logger.LogContext{Path: p.String(), SessionID: s.id.String()})
		})
	}

	s.l.Debug("routing session ready", &logger.LogContext{
		Path:      s.store.CurrentPath().String(),
		SessionID: s.id.String(),
	})

	return s, nil
}

// ID returns the unique identifier stamped on the Session at construction.
func (s *Session) ID() uuid.UUID { return s.id }

// Env returns the [blaze.Environment] the Session operates in.
func (s *Session) Env() blaze.Environment { return s.env }

// EmitHost exposes the [history.Host] backing the Session.
func (s *Session) EmitHost() history.Host { return s.host }

// EmitLogger exposes the [logger.Logger] backing the Session.
func (s *Session) EmitLogger() logger.Logger { return s.l }

// CurrentPath returns the pathname the Session currently holds.
func (s *Session) CurrentPath() blaze.Path { return s.store.CurrentPath() }

// Routes returns a copy of the registered routes, in registration order.
func (s *Session) Routes() router.Routes {
	return append(router.Routes(nil), s.routes...)
}

// Match returns every registered route the current pathname matches,
// in registration order. Confer [router.Routes.Match] on multiple matches.
func (s *Session) Match() router.Routes {
	return s.routes.Match(s.store.CurrentPath())
}

// First returns the first registered route the current pathname matches
// and whether any matched at all.
func (s *Session) First() (router.Route, bool) {
	return s.routes.First(s.store.CurrentPath())
}

// Navigate changes the current pathname to target. Confer [router.Navigator.Navigate].
//
// Navigate fails with [blaze.ErrSessionClosed] after [*Session.Close].
func (s *Session) Navigate(target blaze.Path) error {
	if s.closed.Load() {
		return fmt.Errorf("%w: cannot navigate", blaze.ErrSessionClosed)
	}

	return s.nav.Navigate(target)
}

// NavigateRaw normalizes raw and navigates to the result.
// Confer [router.Navigator.NavigateRaw].
func (s *Session) NavigateRaw(raw string) error {
	if s.closed.Load() {
		return fmt.Errorf("%w: cannot navigate", blaze.ErrSessionClosed)
	}

	return s.nav.NavigateRaw(raw)
}

// Follow consumes an [router.Intent] from a link-like element.
//
// The host's default navigation is suppressed even when the Session is closed,
// so a dead session never lets an activation fall through to a real page load.
func (s *Session) Follow(in router.Intent) error {
	if s.closed.Load() {
		if in.CancelDefault != nil {
			in.CancelDefault()
		}

		return fmt.Errorf("%w: cannot follow intent", blaze.ErrSessionClosed)
	}

	return s.nav.Follow(in)
}

// Observe registers fn to be called with each new current pathname.
// The returned handle cancels the registration.
func (s *Session) Observe(fn func(blaze.Path)) *history.DetachHandle {
	return s.store.Observe(fn)
}

// Close tears the routing session down, detaching its history listener.
//
// Close is idempotent; second and subsequent calls are no-ops, not errors.
// Host history survives Close: the host owns it.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.detach.Detach()
	s.l.Info("routing session closed", &logger.LogContext{SessionID: s.id.String()})

	return nil
}
