package router

import (
	"fmt"

	"github.com/xy-planning-network/blaze"
)

// A Route maps a pattern and a [MatchMode] to a named renderable.
//
// Name is the handle the UI layer maps to whatever it renders for the Route;
// the router core never dereferences it.
// Routes are immutable once registered for the lifetime of a routing session.
type Route struct {
	Pattern blaze.Path
	Mode    MatchMode
	Name    string
}

// Valid asserts the Route carries a well-formed pattern and an enumerated mode.
func (r Route) Valid() error {
	if err := r.Pattern.Valid(); err != nil {
		return fmt.Errorf("route %q: %w", r.Name, err)
	}

	if err := r.Mode.Valid(); err != nil {
		return fmt.Errorf("route %q: mode: %w", r.Name, err)
	}

	return nil
}

// Matches reports whether current should render the Route.
func (r Route) Matches(current blaze.Path) bool {
	return Matches(r.Pattern, current, r.Mode)
}

// Routes is the set of [Route] a consumer registered, in registration order.
type Routes []Route

// Valid asserts every registered Route is valid.
func (rs Routes) Valid() error {
	for _, r := range rs {
		if err := r.Valid(); err != nil {
			return err
		}
	}

	return nil
}

// Match returns every Route that current matches, in registration order.
//
// More than one Route matching the same pathname is expected, not exceptional:
// a catch-all prefix route on [blaze.RootPath] matches alongside anything more
// specific. Match deliberately reports them all; it is the consumer's
// responsibility to register most-specific first and take [Routes.First]
// when mutual exclusivity is desired.
//
// Zero matches is not an error; the consumer renders nothing.
func (rs Routes) Match(current blaze.Path) Routes {
	var matched Routes
	for _, r := range rs {
		if r.Matches(current) {
			matched = append(matched, r)
		}
	}

	return matched
}

// First returns the first registered Route that current matches.
//
// The bool reports whether any Route matched at all.
func (rs Routes) First(current blaze.Path) (Route, bool) {
	for _, r := range rs {
		if r.Matches(current) {
			return r, true
		}
	}

	return Route{}, false
}
