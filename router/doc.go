/*

Package router holds the core of a blaze routing session:
the store owning the current pathname, the navigator changing it,
and the matcher deciding which registered routes render for it.

The package defines a standardized data model - a [Route] -
for registering how pathnames map to the consumer's renderables.
A pattern and a [MatchMode] comprise a Route;
the Name field is the handle the UI layer maps to whatever it renders.
The package never renders anything itself.

A [Store] is the sole source of truth for which pathname is current.
Consumers subscribe with [*Store.Observe] rather than poll,
and the Store signals a change if and only if the pathname actually changed.

A [Navigator] is the single choke point for programmatic navigation.
Every link-like element funnels through [*Navigator.Follow] or [*Navigator.Navigate],
which push a host history entry and update the Store in that order,
so the host's reported pathname and the Store never diverge.

It is often the case that more than one Route matches a pathname:
a catch-all prefix route on "/" matches everything, by design.
[Routes.Match] reports every match in registration order rather than electing one.
Consumers wanting mutual exclusivity register most-specific first
and take [Routes.First].

*/
package router
