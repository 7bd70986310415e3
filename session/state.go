package session

import (
	"strings"
	"sync"

	"github.com/claimready/claimready/client"
)

// AuthState is the snapshot every view reads instead of keeping its own
// copy of "am I logged in".
type AuthState struct {
	Authenticated bool
	User          *client.UserData
}

// DisplayName renders the best available human-readable name.
func (s AuthState) DisplayName() string {
	if s.User == nil {
		return ""
	}
	u := s.User
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Email != "":
		return strings.SplitN(u.Email, "@", 2)[0]
	}
	return "User"
}

// Initials renders up to two letters for an avatar.
func (s AuthState) Initials() string {
	if s.User == nil {
		return "U"
	}
	u := s.User
	switch {
	case u.FirstName != "" && u.LastName != "":
		return initial(u.FirstName) + initial(u.LastName)
	case u.FirstName != "":
		return initial(u.FirstName)
	case u.Email != "":
		return initial(u.Email)
	}
	return "U"
}

// initial is the upper-cased first rune of s. Names are not ASCII.
func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}

// IsPremium reports the user's entitlement flag.
func (s AuthState) IsPremium() bool {
	return s.User != nil && s.User.IsPremium
}

// State is the process-wide mutable auth state. It has one defined
// initialization point (Manager.hydrate) and one teardown
// (Manager.clearSession); everything else reads or subscribes.
type State struct {
	mu     sync.RWMutex
	cur    AuthState
	subs   map[int]func(AuthState)
	nextID int
}

// NewState creates an empty, unauthenticated State.
func NewState() *State {
	return &State{subs: make(map[int]func(AuthState))}
}

// Get returns the current snapshot.
func (s *State) Get() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Subscribe registers fn to run on every state change and returns a
// cancel function. fn is called synchronously with the new snapshot.
func (s *State) Subscribe(fn func(AuthState)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *State) set(st AuthState) {
	s.mu.Lock()
	s.cur = st
	subs := make([]func(AuthState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}

func (s *State) clear() {
	s.set(AuthState{})
}
