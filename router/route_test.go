package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/router"
)

func TestRoutesMatchExactVersusPrefix(t *testing.T) {
	// Arrange
	routes := router.Routes{
		{Pattern: "/", Mode: router.MatchExact, Name: "home"},
		{Pattern: "/about", Mode: router.MatchPrefix, Name: "about"},
	}

	for _, tc := range []struct {
		name     string
		current  blaze.Path
		expected []string
	}{
		{"About", "/about", []string{"about"}},
		{"Root", "/", []string{"home"}},
		{"About-Team", "/about/team", []string{"about"}},
		{"Unregistered", "/contact", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			matched := routes.Match(tc.current)

			// Assert
			require.Len(t, matched, len(tc.expected))
			for i, name := range tc.expected {
				require.Equal(t, name, matched[i].Name)
			}
		})
	}
}

// TestRoutesMatchReportsAll pins the multiple-match contract:
// every matching route renders, not just the most specific one.
func TestRoutesMatchReportsAll(t *testing.T) {
	// Arrange
	routes := router.Routes{
		{Pattern: "/", Mode: router.MatchPrefix, Name: "layout"},
		{Pattern: "/about", Mode: router.MatchExact, Name: "about"},
	}

	// Act
	matched := routes.Match("/about")

	// Assert -- both match, in registration order
	require.Len(t, matched, 2)
	require.Equal(t, "layout", matched[0].Name)
	require.Equal(t, "about", matched[1].Name)
}

func TestRoutesFirst(t *testing.T) {
	// Arrange
	routes := router.Routes{
		{Pattern: "/about", Mode: router.MatchExact, Name: "about"},
		{Pattern: "/", Mode: router.MatchPrefix, Name: "catch-all"},
	}

	// Act
	r, ok := routes.First("/about")

	// Assert -- most specific registered first wins
	require.True(t, ok)
	require.Equal(t, "about", r.Name)

	// Act
	r, ok = routes.First("/contact")

	// Assert -- the catch-all picks up the rest
	require.True(t, ok)
	require.Equal(t, "catch-all", r.Name)

	// Act
	_, ok = router.Routes{}.First("/contact")

	// Assert -- zero matches is not an error
	require.False(t, ok)
}

func TestRoutesValid(t *testing.T) {
	// Arrange
	valid := router.Routes{
		{Pattern: "/", Mode: router.MatchExact, Name: "home"},
	}
	malformedPattern := router.Routes{
		{Pattern: "about", Mode: router.MatchExact, Name: "about"},
	}
	unknownMode := router.Routes{
		{Pattern: "/about", Mode: router.MatchMode(99), Name: "about"},
	}

	// Act + Assert
	require.Nil(t, valid.Valid())
	require.ErrorIs(t, malformedPattern.Valid(), blaze.ErrInvalidPath)
	require.ErrorIs(t, unknownMode.Valid(), blaze.ErrNotValid)
}
