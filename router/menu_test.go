package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/router"
)

func TestMenuFilter(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  router.Menu
		output router.Menu
	}{
		{"Nil", nil, make(router.Menu, 0)},
		{"Zero", make(router.Menu, 0), make(router.Menu, 0)},
		{"Filter-All", make(router.Menu, 4), make(router.Menu, 0)},
		{
			"From-4-To-1",
			router.Menu{
				{}, {}, {},
				{Name: "About", Href: "/about"},
			},
			router.Menu{{Name: "About", Href: "/about"}},
		},
		{
			"Keep-All",
			router.Menu{
				{Name: "Home", Href: "/"},
				{Name: "About", Href: "/about"},
			},
			router.Menu{
				{Name: "Home", Href: "/"},
				{Name: "About", Href: "/about"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.output, tc.input.Filter())
		})
	}
}

func TestLinkRender(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  router.Link
		output bool
	}{
		{"Zero", router.Link{}, false},
		{"No-Href", router.Link{Name: "About"}, false},
		{"No-Name", router.Link{Href: "/about"}, false},
		{"Complete", router.Link{Name: "About", Href: "/about"}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.output, tc.input.Render())
		})
	}
}

func TestLinkActive(t *testing.T) {
	// Arrange
	link := router.Link{Name: "About", Href: "/about/"}

	// Act + Assert -- href is normalized before comparing
	require.True(t, link.Active("/about"))
	require.False(t, link.Active("/"))

	// Arrange
	link = router.Link{Name: "Broken", Href: "about"}

	// Act + Assert -- a malformed href is never active
	require.False(t, link.Active("/about"))
}

func TestLinkIntent(t *testing.T) {
	// Arrange
	nav, store, _ := newNavigator("/")
	link := router.Link{Name: "Contact", Href: "/contact"}
	var cancelled bool

	// Act
	err := nav.Follow(link.Intent(func() { cancelled = true }))

	// Assert
	require.Nil(t, err)
	require.True(t, cancelled)
	require.Equal(t, blaze.Path("/contact"), store.CurrentPath())
}
