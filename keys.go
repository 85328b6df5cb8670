package blaze

import "context"

type Key string

const (
	// currentPathKey stashes the Path a routing session currently renders.
	currentPathKey Key = "CurrentPathKey"

	// SessionIDKey stashes a unique UUID for each routing session.
	SessionIDKey Key = "SessionIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "blaze context key: " + string(k)
}

// NewCurrentPathContext adds the current Path to ctx, returning the resulting context.
// If a Path has already been added to ctx, p overwrites it.
//
// Embedders that thread a context.Context through their render tree can use this
// instead of passing the Path positionally.
func NewCurrentPathContext(ctx context.Context, p Path) context.Context {
	return context.WithValue(ctx, currentPathKey, p)
}

// CurrentPathFromContext retrieves the Path stashed in ctx.
// If not already set, it returns [RootPath].
func CurrentPathFromContext(ctx context.Context) Path {
	p, ok := ctx.Value(currentPathKey).(Path)
	if !ok {
		return RootPath
	}

	return p
}
