package router

import (
	"sync"

	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/history"
)

// A Store holds the one current [blaze.Path] of a routing session
// and signals observers when it changes.
//
// A Store has a single writer path at a time - the [Navigator] or the
// [history.Listener] feeding it - but serializes writes with a mutex
// so hosts running callbacks on other goroutines stay safe.
type Store struct {
	mu        sync.Mutex
	current   blaze.Path
	observers []storeObserver
	nextID    int
}

type storeObserver struct {
	id int
	fn func(blaze.Path)
}

// NewStore constructs a Store holding initial.
//
// A routing session seeds initial from its host's current pathname,
// so the Store answers correctly before any navigation occurs.
func NewStore(initial blaze.Path) *Store {
	return &Store{current: initial}
}

// CurrentPath returns the current pathname. CurrentPath never fails.
func (s *Store) CurrentPath() blaze.Path {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// SetCurrentPath replaces the current pathname with p,
// notifying observers in registration order if and only if p differs from the held value.
//
// Setting the same pathname twice is a no-op on the second call;
// no duplicate notification fires.
func (s *Store) SetCurrentPath(p blaze.Path) {
	s.mu.Lock()
	if s.current == p {
		s.mu.Unlock()
		return
	}

	s.current = p
	obs := make([]func(blaze.Path), 0, len(s.observers))
	for _, o := range s.observers {
		obs = append(obs, o.fn)
	}
	s.mu.Unlock()

	// NOTE: observers run outside the lock so one may read the Store.
	for _, fn := range obs {
		fn(p)
	}
}

// Observe registers fn to be called with each new current pathname.
//
// The returned handle cancels the registration; cancelling is idempotent
// and safe after the routing session tore down.
func (s *Store) Observe(fn func(blaze.Path)) *history.DetachHandle {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, storeObserver{id: id, fn: fn})
	s.mu.Unlock()

	return history.NewDetachHandle(func() {
		s.mu.Lock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	})
}
