package session

import (
	"fmt"

	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/history"
	"github.com/xy-planning-network/blaze/logger"
	"github.com/xy-planning-network/blaze/router"
)

// A SessionOption configures a *Session either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some SessionOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Session is updated with the enclosed value.
//
// The default host option is an example of the second.
// It waits for WithInitialPath and WithHost to have their say
// before deciding whether to construct a [history.MemoryHost].
type SessionOption func(s *Session) (OptFollowup, error)
type OptFollowup func() error

// WithEnv casts the provided string into a valid [blaze.Environment],
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) SessionOption {
	e := blaze.Environment(envVar)
	err := e.Valid()
	if err == nil {
		return func(s *Session) (OptFollowup, error) {
			s.env = e
			return nil, nil
		}
	}

	return func(s *Session) (OptFollowup, error) {
		s.env = blaze.EnvVarOrEnv(environmentEnvVar, blaze.Development)
		return nil, nil
	}
}

// WithHost exposes the provided [history.Host] to the routing session,
// in place of the default [history.MemoryHost].
//
// WithHost assumes the host already reports a current pathname;
// the session's path store is seeded from it.
func WithHost(h history.Host) SessionOption {
	return func(s *Session) (OptFollowup, error) {
		if h == nil {
			return nil, fmt.Errorf("nil host")
		}

		s.host = h
		return nil, nil
	}
}

// WithInitialPath seeds the default [history.MemoryHost] with the provided pathname.
//
// A malformed pathname fails construction.
// WithInitialPath has no effect when WithHost supplies the host;
// the host's own current pathname wins.
func WithInitialPath(raw string) SessionOption {
	return func(s *Session) (OptFollowup, error) {
		p, err := blaze.ParsePath(raw)
		if err != nil {
			return nil, err
		}

		s.initialPath = p
		return nil, nil
	}
}

// WithLogger exposes the provided [logger.Logger] to the routing session.
func WithLogger(l logger.Logger) SessionOption {
	return func(s *Session) (OptFollowup, error) {
		s.l = l
		return nil, nil
	}
}

// WithRoutes registers the set of [router.Route] for the lifetime of the routing session.
//
// Routes are validated at construction and immutable afterward.
// Registration order is rendering order when more than one Route matches;
// register most-specific first if mutual exclusivity is desired.
func WithRoutes(routes ...router.Route) SessionOption {
	return func(s *Session) (OptFollowup, error) {
		s.routes = append(s.routes, routes...)
		return nil, nil
	}
}

// WithTrace toggles debug logging of every path change.
//
// The ROUTER_TRACE environment variable sets the default.
func WithTrace(on bool) SessionOption {
	return func(s *Session) (OptFollowup, error) {
		s.trace = on
		return nil, nil
	}
}
