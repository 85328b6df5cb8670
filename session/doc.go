/*

Package session initializes a complete blaze routing session from a set of options
and manages its lifecycle from construction through teardown.

A [Session] wires the components of the router core to one another:
a [history.Host] supplying the environment's navigation facility,
a [router.Store] owning the current pathname,
a [router.Navigator] changing it,
and the session's one [history.Listener] hearing host-driven changes.
The Session seeds the store from the host's current pathname at construction,
so consumers read the right answer before any navigation occurs.

Construction follows the functional option pattern:

	s, err := session.New(
		session.WithEnv("TESTING"),
		session.WithRoutes(
			router.Route{Pattern: "/", Mode: router.MatchExact, Name: "home"},
			router.Route{Pattern: "/about", Mode: router.MatchPrefix, Name: "about"},
		),
	)

Defaults come from the environment - ENVIRONMENT, LOG_LEVEL, INITIAL_PATH,
ROUTER_TRACE - with a .env file loaded when present, courtesy of godotenv.
With no host supplied, the Session runs against a [history.MemoryHost].

[*Session.Close] detaches the history listener and refuses further navigation;
closing twice is a no-op, not an error.

*/
package session
