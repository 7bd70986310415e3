// Package session owns the client-side authentication lifecycle: the
// stored token and its expiry, activity tracking, silent renewal, and
// the forced-logout decisions. It is the single source of truth for
// "is the current user authenticated".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/claimready/claimready/client"
	"github.com/claimready/claimready/storage"
)

// Storage keys. Writes are whole-value replacements, so concurrent
// readers always observe a complete value.
const (
	keyToken  = "auth_token"
	keyExpiry = "token_expiry"
	keyUser   = "user_data"
)

const (
	// DefaultRefreshThreshold is how close to expiry a token must be
	// before the monitor attempts a silent renewal.
	DefaultRefreshThreshold = 15 * time.Minute
	// DefaultActivityTimeout is how long the user may be idle before
	// the monitor forces a logout, independent of token expiry.
	DefaultActivityTimeout = 30 * time.Minute
	// DefaultCheckInterval is how often the monitor re-evaluates the
	// session.
	DefaultCheckInterval = 5 * time.Minute
)

// Reason tags a redirect to the login screen so the UI can tell a
// forced expiry apart from a user-initiated logout.
type Reason string

const (
	ReasonLoggedOut Reason = "logged_out"
	ReasonExpired   Reason = "session_expired"
)

// Navigator is the navigation collaborator invoked on logout.
type Navigator interface {
	RedirectToLogin(reason Reason)
}

// ProfileAPI is the slice of the backend client the manager needs.
type ProfileAPI interface {
	Profile(ctx context.Context) (*client.ProfileResponse, error)
}

// Manager drives the session lifecycle against a persistent key-value
// store and the backend profile endpoint. All failure paths degrade to
// false/nil; the manager never returns an error from a validity check.
//
// The design privileges false negatives for logout over false
// positives: a possibly-stale session is kept alive rather than
// bouncing an actually-valid user to the login screen, because backend
// transient errors and permission errors must not masquerade as
// authentication failures.
type Manager struct {
	store  storage.Store
	api    ProfileAPI
	nav    Navigator
	state  *State
	logger *slog.Logger
	now    func() time.Time

	refreshThreshold time.Duration

	// Unix nanos of the last observed user interaction. Updated with a
	// single atomic store so activity events never block behind
	// anything.
	lastActivity atomic.Int64
}

// Option configures the Manager.
type Option func(*Manager)

// WithNavigator sets the navigation collaborator invoked on logout.
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) { m.nav = nav }
}

// WithLogger sets the structured logger for session lifecycle events.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithClock overrides the time source. Tests use this to advance time.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRefreshThreshold overrides the silent-renewal window.
func WithRefreshThreshold(d time.Duration) Option {
	return func(m *Manager) { m.refreshThreshold = d }
}

// NewManager creates a Manager over the given store and backend API.
// The global auth state is hydrated from the store once, here.
func NewManager(store storage.Store, api ProfileAPI, opts ...Option) *Manager {
	m := &Manager{
		store:            store,
		api:              api,
		state:            NewState(),
		refreshThreshold: DefaultRefreshThreshold,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	m.lastActivity.Store(m.now().UnixNano())
	m.hydrate()
	return m
}

// State returns the process-wide auth state shared by every view.
func (m *Manager) State() *State { return m.state }

// TokenSource returns a token lookup suitable for client.New. It reads
// the store on every call so a renewed token takes effect immediately.
func TokenSource(store storage.Store) func() (string, bool) {
	return func() (string, bool) {
		tok, err := store.Get(keyToken)
		if err != nil || tok == "" {
			return "", false
		}
		return tok, true
	}
}

// Login stores the token and its computed absolute expiry, marks the
// session authenticated, and optionally stores the user profile.
func (m *Manager) Login(token string, expiresIn time.Duration, user *client.UserData) {
	m.store.Set(keyToken, token)
	expiry := m.now().Add(expiresIn).UnixMilli()
	m.store.Set(keyExpiry, strconv.FormatInt(expiry, 10))
	if user != nil {
		if data, err := json.Marshal(user); err == nil {
			m.store.Set(keyUser, string(data))
		}
	}
	m.Touch()
	m.state.set(AuthState{Authenticated: true, User: user})
	m.logger.Info("session established", "expires_in", expiresIn.String())
}

// IsAuthenticated is a local-only validity check: token present and
// expiry (if stored) still in the future. A corrupted or passed expiry
// clears the stored session as a side effect, so calling twice yields
// the same cleared state.
func (m *Manager) IsAuthenticated() bool {
	if _, err := m.store.Get(keyToken); err != nil {
		return false
	}

	raw, err := m.store.Get(keyExpiry)
	if errors.Is(err, storage.ErrNotFound) {
		// A token without a known expiry is taken at face value.
		return true
	}
	if err != nil {
		return true
	}

	expiry, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.logger.Warn("stored token expiry is unreadable, clearing session")
		m.clearSession()
		return false
	}
	// An expiry at the current instant is already invalid.
	if m.now().UnixMilli() >= expiry {
		m.clearSession()
		return false
	}
	return true
}

// ValidateSession performs a round-trip to the profile endpoint and
// returns the user data, or nil when the session could not be
// validated. Only a 401 clears the stored session; a 403, 5xx, or
// connectivity failure preserves it and the caller decides what to do.
func (m *Manager) ValidateSession(ctx context.Context) *client.UserData {
	prof, err := m.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, client.ErrAuthInvalid) {
			m.logger.Info("backend rejected session token")
			m.clearSession()
		} else {
			m.logger.Debug("session validation inconclusive", "error", err)
		}
		return nil
	}
	m.setUser(prof.User)
	return &prof.User
}

// RequireAuth is the page-entry gate: local check, then backend
// validation, logging out (with the expired tag) when either fails.
func (m *Manager) RequireAuth(ctx context.Context) bool {
	if !m.IsAuthenticated() {
		m.expire()
		return false
	}
	if m.ValidateSession(ctx) == nil {
		m.expire()
		return false
	}
	return true
}

// NeedsRefresh reports whether the token is still valid but within the
// renewal window.
func (m *Manager) NeedsRefresh() bool {
	raw, err := m.store.Get(keyExpiry)
	if err != nil {
		return false
	}
	expiry, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}
	remaining := time.Duration(expiry-m.now().UnixMilli()) * time.Millisecond
	return remaining > 0 && remaining < m.refreshThreshold
}

// RefreshToken asks the profile endpoint for a rotated token and, when
// one is returned, re-runs Login with it. It reports whether a usable
// response was obtained.
func (m *Manager) RefreshToken(ctx context.Context) bool {
	prof, err := m.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, client.ErrAuthInvalid) {
			m.clearSession()
		}
		return false
	}
	if prof.Token != "" {
		m.Login(prof.Token, time.Duration(prof.ExpiresIn)*time.Second, &prof.User)
		m.logger.Info("session token renewed")
	} else {
		m.setUser(prof.User)
	}
	return true
}

// Logout clears the stored session and, when redirect is set, sends
// the user to the login screen with a plain logged-out tag.
func (m *Manager) Logout(redirect bool) {
	m.logger.Info("session logged out")
	m.clearSession()
	if redirect && m.nav != nil {
		m.nav.RedirectToLogin(ReasonLoggedOut)
	}
}

// expire is the forced-logout path used by RequireAuth and the
// monitor. The redirect carries the expired tag so the UI can show a
// session-expired notice.
func (m *Manager) expire() {
	m.logger.Info("session expired, forcing logout")
	m.clearSession()
	if m.nav != nil {
		m.nav.RedirectToLogin(ReasonExpired)
	}
}

// Touch records a user interaction. Fire-and-forget: a single atomic
// store, never blocked by pending network calls.
func (m *Manager) Touch() {
	m.lastActivity.Store(m.now().UnixNano())
}

// IdleFor returns how long the user has gone without an observed
// interaction.
func (m *Manager) IdleFor() time.Duration {
	return time.Duration(m.now().UnixNano() - m.lastActivity.Load())
}

func (m *Manager) clearSession() {
	m.store.Delete(keyToken)
	m.store.Delete(keyExpiry)
	m.store.Delete(keyUser)
	m.state.clear()
}

func (m *Manager) setUser(user client.UserData) {
	if data, err := json.Marshal(user); err == nil {
		m.store.Set(keyUser, string(data))
	}
	m.state.set(AuthState{Authenticated: true, User: &user})
}

// hydrate seeds the global auth state from the store at startup.
func (m *Manager) hydrate() {
	if _, err := m.store.Get(keyToken); err != nil {
		return
	}
	st := AuthState{Authenticated: true}
	if raw, err := m.store.Get(keyUser); err == nil {
		var user client.UserData
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			st.User = &user
		}
		// Unreadable cached user data is ignored, not fatal.
	}
	m.state.set(st)
}
