package blaze

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Implementing a new Enumerable or adding a new constant value ought to include updating
// consumers registering routes or configuring sessions with the same types and values.
type Enumerable interface {
	String() string
	Valid() error
}
