package blaze

import "errors"

var (
	ErrBadConfig         = errors.New("bad config")
	ErrDuplicateListener = errors.New("duplicate listener")
	ErrInvalidPath       = errors.New("invalid path")
	ErrNotValid          = errors.New("invalid")
	ErrSessionClosed     = errors.New("session closed")
)
