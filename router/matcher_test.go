package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/router"
)

func TestMatches(t *testing.T) {
	for _, tc := range []struct {
		name     string
		pattern  blaze.Path
		current  blaze.Path
		mode     router.MatchMode
		expected bool
	}{
		{"Exact-Equal", "/about", "/about", router.MatchExact, true},
		{"Exact-Root", "/", "/", router.MatchExact, true},
		{"Exact-Child-Misses", "/about", "/about/team", router.MatchExact, false},
		{"Exact-Root-Misses-Child", "/", "/about", router.MatchExact, false},
		{"Prefix-Equal", "/about", "/about", router.MatchPrefix, true},
		{"Prefix-Child", "/about", "/about/team", router.MatchPrefix, true},
		{"Prefix-Boundary-Respected", "/a", "/about", router.MatchPrefix, false},
		{"Prefix-Root-Matches-All", "/", "/about/team", router.MatchPrefix, true},
		{"Prefix-Sibling-Misses", "/about", "/contact", router.MatchPrefix, false},
		{"Unknown-Mode", "/about", "/about", router.MatchMode(99), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, router.Matches(tc.pattern, tc.current, tc.mode))
		})
	}
}

func TestMatchModeValid(t *testing.T) {
	require.Nil(t, router.MatchExact.Valid())
	require.Nil(t, router.MatchPrefix.Valid())
	require.ErrorIs(t, router.MatchMode(99).Valid(), blaze.ErrNotValid)
}

func TestMatchModeString(t *testing.T) {
	require.Equal(t, "exact", router.MatchExact.String())
	require.Equal(t, "prefix", router.MatchPrefix.String())
	require.Equal(t, "unknown", router.MatchMode(99).String())
}
