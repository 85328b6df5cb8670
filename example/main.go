package main

import (
	"fmt"

	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/history"
	"github.com/xy-planning-network/blaze/router"
	"github.com/xy-planning-network/blaze/session"
)

// main walks a three-page app - home, about, contact - through programmatic
// navigation and host-driven back/forward moves, printing what renders at
// each step.
func main() {
	s, err := session.New(
		session.WithEnv(blaze.Demo.String()),
		session.WithRoutes(
			router.Route{Pattern: "/about", Mode: router.MatchPrefix, Name: "about"},
			router.Route{Pattern: "/contact", Mode: router.MatchExact, Name: "contact"},
			router.Route{Pattern: "/", Mode: router.MatchExact, Name: "home"},
		),
	)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	// re-render on every path change, the way a UI layer would
	s.Observe(func(p blaze.Path) { render(s) })
	render(s)

	// a link-like element activates; its default navigation gets suppressed
	err = s.Follow(router.Intent{
		Target:        "/about",
		CancelDefault: func() { fmt.Println("(default navigation cancelled)") },
	})
	if err != nil {
		panic(err)
	}

	if err := s.NavigateRaw("/contact"); err != nil {
		panic(err)
	}

	// malformed pathnames are rejected before touching history
	if err := s.NavigateRaw("contact"); err != nil {
		fmt.Println("rejected:", err)
	}

	// the end user reaches for the back and forward buttons
	host := s.EmitHost().(*history.MemoryHost)
	host.Back()
	host.Back()
	host.Forward()
}

func render(s *session.Session) {
	matched := s.Match()
	if len(matched) == 0 {
		fmt.Printf("%s -> nothing to render\n", s.CurrentPath())
		return
	}

	names := make([]string, 0, len(matched))
	for _, r := range matched {
		names = append(names, r.Name)
	}

	fmt.Printf("%s -> render %v\n", s.CurrentPath(), names)
}
