package session

import (
	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/history"
	"github.com/xy-planning-network/blaze/logger"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = logger.LogLevelInfo

	// Routing defaults
	initialPathEnvVar = "INITIAL_PATH"
	traceEnvVar       = "ROUTER_TRACE"
)

// defaultOpts are the SessionOptions New applies before those a caller supplies.
func defaultOpts() []SessionOption {
	return []SessionOption{
		WithEnv(""),
		defaultInitialPath(),
		defaultTrace(),
		defaultLogger(),
		defaultHost(),
	}
}

// defaultInitialPath seeds the default host's pathname from INITIAL_PATH.
func defaultInitialPath() SessionOption {
	return func(s *Session) (OptFollowup, error) {
		s.initialPath = blaze.EnvVarOrPath(initialPathEnvVar, blaze.RootPath)
		return nil, nil
	}
}

// defaultTrace reads ROUTER_TRACE to decide whether to log every path change.
func defaultTrace() SessionOption {
	return func(s *Session) (OptFollowup, error) {
		s.trace = blaze.EnvVarOrBool(traceEnvVar, false)
		return nil, nil
	}
}

// defaultLogger constructs a [logger.BlazeLogger] configured from the environment,
// unless another option already supplied a [logger.Logger].
func defaultLogger() SessionOption {
	return func(s *Session) (OptFollowup, error) {
		return func() error {
			if s.l != nil {
				return nil
			}

			s.l = logger.NewLogger(
				logger.WithEnv(s.env.String()),
				logger.WithLevel(blaze.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
			)

			return nil
		}, nil
	}
}

// defaultHost constructs a [history.MemoryHost] seeded with the initial pathname,
// unless another option already supplied a [history.Host].
func defaultHost() SessionOption {
	return func(s *Session) (OptFollowup, error) {
		return func() error {
			if s.host != nil {
				return nil
			}

			s.host = history.NewMemoryHost(s.initialPath)
			return nil
		}, nil
	}
}
