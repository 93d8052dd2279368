// Package state implements the dashboard's state container: one normalized
// State struct, pure per-slice reducers, and a Store facade that applies
// dispatched actions atomically and fans them out to observers.
//
// # Transition model
//
// Every mutation goes through Dispatch. Reducers are pure functions
// (State, Action) -> State and never fail; invalid inputs reduce to the
// unchanged state. Observers (persistence, theme application) see each action
// only after the reducers have run, together with a snapshot of the resulting
// state, so persisted data always reflects the transition.
//
// # Thread safety
//
// Store is safe for concurrent use. Dispatch applies transitions atomically
// under a write lock; State returns a deep copy so callers can never mutate
// live collections.
package state

import (
	"sync"

	"github.com/AbhishekSharma9161/curio/internal/content"
)

// State is the root state shape, one slice per store.
type State struct {
	Content ContentState
	Prefs   Preferences
	Session SessionState
	UI      UIState
}

// Default returns the initial state used when nothing was persisted.
func Default() State {
	return State{
		Content: defaultContent(),
		Prefs:   DefaultPreferences(),
		Session: defaultSession(),
		UI:      defaultUI(),
	}
}

func reduce(s State, a Action) State {
	s.Content = reduceContent(s.Content, a)
	s.Prefs = reducePrefs(s.Prefs, a)
	s.Session = reduceSession(s.Session, a)
	s.UI = reduceUI(s.UI, a)
	return s
}

// clone deep-copies the slices so snapshots are isolated from live state.
func (s State) clone() State {
	s.Content.Feed = content.Clone(s.Content.Feed)
	s.Content.Trending = content.Clone(s.Content.Trending)
	s.Content.Favorites = content.Clone(s.Content.Favorites)
	s.Content.SearchResults = content.Clone(s.Content.SearchResults)

	if len(s.Prefs.Categories) > 0 {
		categories := make([]string, len(s.Prefs.Categories))
		copy(categories, s.Prefs.Categories)
		s.Prefs.Categories = categories
	}

	if s.Session.User != nil {
		u := *s.Session.User
		s.Session.User = &u
	}

	if len(s.UI.Notifications) > 0 {
		notifications := make([]Notification, len(s.UI.Notifications))
		copy(notifications, s.UI.Notifications)
		s.UI.Notifications = notifications
	}
	return s
}

// Observer receives every dispatched action after reducers have applied it,
// along with a snapshot of the resulting state. Observers must not dispatch
// from within Notify.
type Observer interface {
	Notify(action Action, s State)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(action Action, s State)

// Notify implements Observer.
func (f ObserverFunc) Notify(action Action, s State) { f(action, s) }

// Store coordinates state transitions. NOT an interface - concrete type.
type Store struct {
	mu        sync.RWMutex
	state     State
	observers []Observer
}

// New creates a Store with the given initial state.
func New(initial State) *Store {
	return &Store{state: initial}
}

// Attach registers an observer for subsequent transitions.
func (s *Store) Attach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Dispatch applies an action atomically and notifies observers with the
// post-transition snapshot. Dispatches are serialized; no transition
// interleaves with another mid-flight.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	snap := s.state.clone()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o.Notify(a, snap)
	}
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}
