package logger

import "log"

// A LoggerOptFn is a functional option configuring a BlazeLogger when constructing a new one.
type LoggerOptFn func(*BlazeLogger)

// WithEnv sets the environment BlazeLogger is operating in.
func WithEnv(env string) func(*BlazeLogger) {
	return func(l *BlazeLogger) {
		l.env = env
	}
}

// WithLevel sets the log level BlazeLogger uses.
func WithLevel(level LogLevel) func(*BlazeLogger) {
	return func(l *BlazeLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger BlazeLogger uses.
func WithLogger(log *log.Logger) func(*BlazeLogger) {
	return func(l *BlazeLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*BlazeLogger) {
	return func(l *BlazeLogger) {
		l.skip = skip
	}
}
