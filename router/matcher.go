package router

import (
	"github.com/xy-planning-network/blaze"
)

// A MatchMode is the policy deciding how a [Route] pattern applies to a pathname.
type MatchMode int

const (
	// MatchExact matches a pathname equal to the pattern after normalization.
	MatchExact MatchMode = iota

	// MatchPrefix matches a pathname the pattern begins at a path-segment boundary:
	// pattern "/about" matches "/about" and "/about/team" but not "/aboutus".
	//
	// Pattern [blaze.RootPath] matches every pathname under MatchPrefix.
	// Register it last as a catch-all, or use MatchExact to avoid the foot-gun.
	MatchPrefix
)

// String stringifies the MatchMode.
//
// String implements [blaze.Enumerable].
func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Valid asserts the MatchMode is an enumerated constant.
//
// Valid implements [blaze.Enumerable].
func (m MatchMode) Valid() error {
	switch m {
	case MatchExact, MatchPrefix:
		return nil
	default:
		return blaze.ErrNotValid
	}
}

// Matches reports whether current should render the route registered
// under pattern with the given mode.
//
// Matches is a pure function of its arguments;
// an invalid mode matches nothing.
func Matches(pattern, current blaze.Path, mode MatchMode) bool {
	switch mode {
	case MatchExact:
		return current == pattern
	case MatchPrefix:
		return pattern.SegmentPrefixOf(current)
	default:
		return false
	}
}
