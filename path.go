package blaze

import (
	"fmt"
	"net/url"
	"strings"
)

// A Path is a normalized URL pathname used as the sole routing key.
//
// A valid Path begins with "/", carries no query string or fragment,
// and has no trailing slash except for [RootPath] itself.
// Construct one with [ParsePath] when the input is not already normalized.
type Path string

// RootPath is the pathname of the topmost page.
//
// Under prefix matching, RootPath matches every Path.
const RootPath Path = "/"

// ParsePath normalizes raw into a [Path].
//
// Normalization strips any query string or fragment and collapses trailing
// slashes; "/about/" and "/about?tab=1#team" both become "/about".
//
// Input missing a leading "/" or containing whitespace or control characters
// is rejected with an error wrapping [ErrInvalidPath].
// ParsePath never silently corrects a malformed pathname.
func ParsePath(raw string) (Path, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if !strings.HasPrefix(raw, "/") {
		return "", fmt.Errorf("%w: %q does not begin with %q", ErrInvalidPath, raw, "/")
	}

	// NOTE: "//about" is an authority, not a pathname; hosts navigate it off-origin.
	if strings.HasPrefix(raw, "//") {
		return "", fmt.Errorf("%w: %q is not a bare pathname", ErrInvalidPath, raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	p := u.Path
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}

	// NOTE: validate the decoded pathname, not the raw input, so
	// percent-encoded escapes cannot smuggle in what the raw form could not.
	if !strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: %q does not begin with %q", ErrInvalidPath, raw, "/")
	}

	for _, r := range p {
		if r <= ' ' || r == 0x7f {
			return "", fmt.Errorf("%w: %q contains disallowed character %q", ErrInvalidPath, raw, r)
		}
	}

	return Path(p), nil
}

// String stringifies the Path.
//
// String implements [Enumerable].
func (p Path) String() string { return string(p) }

// Valid asserts p is a well-formed, normalized Path.
//
// Valid implements [Enumerable], returning an error wrapping [ErrInvalidPath]
// so callers can fail fast before touching host history.
func (p Path) Valid() error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if !strings.HasPrefix(string(p), "/") {
		return fmt.Errorf("%w: %q does not begin with %q", ErrInvalidPath, p, "/")
	}

	norm, err := ParsePath(string(p))
	if err != nil {
		return err
	}

	if norm != p {
		return fmt.Errorf("%w: %q is not normalized", ErrInvalidPath, p)
	}

	return nil
}

// SegmentPrefixOf reports whether other equals p
// or extends p at a path-segment boundary.
//
// "/about" is a segment prefix of "/about" and "/about/team" but not of
// "/aboutus". [RootPath] is a segment prefix of every Path.
func (p Path) SegmentPrefixOf(other Path) bool {
	if p == "" {
		return false
	}

	if p == RootPath {
		return true
	}

	if other == p {
		return true
	}

	return strings.HasPrefix(string(other), string(p)) &&
		len(other) > len(p) &&
		other[len(p)] == '/'
}
