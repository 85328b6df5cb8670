/*

Package history defines the navigation capability a hosting environment provides to a routing session
and keeps a path store consistent with host-driven changes to it.

The package defines that capability through [Host]:
appending an entry to the host's history stack, reading the current entry's pathname,
and subscribing to changes the host makes on its own (say, a back or forward button).
The host's history stack itself stays opaque;
a routing session only ever appends to it or hears that it moved.

A [Listener] is the one subscription a routing session holds on a Host.
When the host moves its history pointer without the session's involvement,
the Listener reads the host's current pathname and writes it into the session's path store,
never pushing a new entry in response.
Attaching returns a [DetachHandle] whose Detach is idempotent,
so teardown can release the subscription without tracking whether it already has.

[MemoryHost] implements Host entirely in memory.
It backs tests, examples, and embedders without a browser-like environment,
and its Back and Forward methods play the part of the end user reaching for history buttons.

*/
package history
