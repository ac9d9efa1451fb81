package auth

import (
	"sync"
)

// SessionState is a point in time view of the session
type SessionState struct {
	User    *Identity
	Loading bool
}

// Authenticated returns true when a user is logged in
func (s SessionState) Authenticated() bool {
	return s.User != nil
}

// Subscriber is notified with the new state every time the session state changes
type Subscriber func(state SessionState)

// State holds the in-memory session state of the process.
// It is written by the Service (and by the implicit logout when a refresh fails)
// and read by anything that needs to react to authentication
type State struct {
	mu          sync.Mutex
	state       SessionState
	subscribers []*subscription
}

type subscription struct {
	fn Subscriber
}

// NewState creates a new session state which starts out loading with no user
func NewState() *State {
	return &State{state: SessionState{Loading: true}}
}

// Snapshot returns a copy of the current session state
func (s *State) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

// Subscribe registers fn to be called on every state change
// and returns a func that removes the subscription
func (s *State) Subscribe(fn Subscriber) func() {
	sub := &subscription{fn}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, existing := range s.subscribers {
			if existing == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Expire clears the user after the session credentials were lost
// without the user asking for it, e.g. when a token refresh fails
func (s *State) Expire() {
	s.update(func(state *SessionState) {
		state.User = nil
	})
}

func (s *State) setLoading(loading bool) {
	s.update(func(state *SessionState) {
		state.Loading = loading
	})
}

func (s *State) setUser(user *Identity) {
	s.update(func(state *SessionState) {
		if user == nil {
			state.User = nil
			return
		}
		u := *user
		state.User = &u
	})
}

// update applies fn and notifies subscribers outside of the lock
// so that they may read the state again
func (s *State) update(fn func(state *SessionState)) {
	s.mu.Lock()
	before := s.copyState()
	fn(&s.state)
	after := s.copyState()
	subscribers := make([]*subscription, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	if statesEqual(before, after) {
		return
	}
	for _, sub := range subscribers {
		sub.fn(after)
	}
}

func (s *State) copyState() SessionState {
	out := SessionState{Loading: s.state.Loading}
	if s.state.User != nil {
		u := *s.state.User
		out.User = &u
	}
	return out
}

func statesEqual(a, b SessionState) bool {
	if a.Loading != b.Loading {
		return false
	}
	if a.User == nil || b.User == nil {
		return a.User == nil && b.User == nil
	}
	return *a.User == *b.User
}
