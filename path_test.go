package blaze_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/blaze"
)

func TestParsePath(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected blaze.Path
	}{
		{"Root", "/", "/"},
		{"Simple", "/about", "/about"},
		{"Nested", "/about/team", "/about/team"},
		{"Trailing-Slash", "/about/", "/about"},
		{"Many-Trailing-Slashes", "/about///", "/about"},
		{"Query-Stripped", "/about?tab=1", "/about"},
		{"Fragment-Stripped", "/about#team", "/about"},
		{"Query-And-Fragment", "/about/?tab=1#team", "/about"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := blaze.ParsePath(tc.input)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestParsePathRejectsMalformed(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"Zero-Value", ""},
		{"No-Leading-Slash", "about"},
		{"Relative", "./about"},
		{"Space", "/about us"},
		{"Control-Character", "/about\n"},
		{"Authority", "//about"},
		{"Empty-Authority", "//"},
		{"Authority-With-Path", "///about"},
		{"Encoded-Space", "/a%20b"},
		{"Encoded-Control", "/a%0Ab"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := blaze.ParsePath(tc.input)

			// Assert
			require.ErrorIs(t, err, blaze.ErrInvalidPath)
			require.Zero(t, actual)
		})
	}
}

func TestPathValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input blaze.Path
		valid bool
	}{
		{"Root", "/", true},
		{"Simple", "/about", true},
		{"Nested", "/about/team", true},
		{"Zero-Value", "", false},
		{"No-Leading-Slash", "about", false},
		{"Trailing-Slash", "/about/", false},
		{"Query-Retained", "/about?tab=1", false},
		{"Space-Retained", "/a b", false},
		{"Authority", "//about", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			err := tc.input.Valid()

			// Assert
			if tc.valid {
				require.Nil(t, err)
				return
			}

			require.ErrorIs(t, err, blaze.ErrInvalidPath)
		})
	}
}

func TestPathSegmentPrefixOf(t *testing.T) {
	for _, tc := range []struct {
		name     string
		pattern  blaze.Path
		other    blaze.Path
		expected bool
	}{
		{"Equal", "/about", "/about", true},
		{"Segment-Child", "/about", "/about/team", true},
		{"Deep-Child", "/about", "/about/team/leads", true},
		{"Root-Matches-All", "/", "/anything/at/all", true},
		{"Root-Matches-Root", "/", "/", true},
		{"Not-A-Boundary", "/a", "/about", false},
		{"Shared-Chars-Only", "/about", "/aboutus", false},
		{"Sibling", "/about", "/contact", false},
		{"Parent", "/about/team", "/about", false},
		{"Zero-Value-Pattern", "", "/about", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.pattern.SegmentPrefixOf(tc.other))
		})
	}
}
