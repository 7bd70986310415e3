package session

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimready/claimready/storage/memory"
)

func TestMonitorIdleTimeout(t *testing.T) {
	store := memory.NewStore()
	clock := newFakeClock()
	nav := &recordingNavigator{}
	m := NewManager(store, nil, WithClock(clock.Now), WithNavigator(nav))
	m.Login("tok-1", 24*time.Hour, nil)

	mo := m.NewMonitor()

	// 31 minutes without any observed interaction.
	clock.Advance(31 * time.Minute)
	assert.True(t, mo.Check(t.Context()))

	assert.Equal(t, 1, nav.count(), "logout invoked exactly once")
	assert.Equal(t, ReasonExpired, nav.last())
	assert.False(t, hasToken(store))
}

func TestMonitorActivityResetsIdle(t *testing.T) {
	store := memory.NewStore()
	clock := newFakeClock()
	nav := &recordingNavigator{}
	m := NewManager(store, nil, WithClock(clock.Now), WithNavigator(nav))
	m.Login("tok-1", 24*time.Hour, nil)

	mo := m.NewMonitor()

	clock.Advance(29 * time.Minute)
	mo.Touch()
	clock.Advance(29 * time.Minute)

	assert.False(t, mo.Check(t.Context()))
	assert.Zero(t, nav.count())
	assert.True(t, m.IsAuthenticated())
}

func TestMonitorNoSessionForcesLogout(t *testing.T) {
	store := memory.NewStore()
	nav := &recordingNavigator{}
	m := NewManager(store, nil, WithNavigator(nav))

	mo := m.NewMonitor()
	assert.True(t, mo.Check(t.Context()))
	assert.Equal(t, 1, nav.count())
}

func TestMonitorRefreshPath(t *testing.T) {
	t.Run("SilentRenewal", func(t *testing.T) {
		store := memory.NewStore()
		clock := newFakeClock()
		nav := &recordingNavigator{}
		api := newBackend(t, store, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user":{"id":"u-1"},"token":"tok-2","expiresIn":7200}`))
		})
		m := NewManager(store, api, WithClock(clock.Now), WithNavigator(nav))
		m.Login("tok-1", time.Hour, nil)

		mo := m.NewMonitor()

		// Move inside the renewal window while staying active.
		clock.Advance(50 * time.Minute)
		mo.Touch()

		assert.False(t, mo.Check(t.Context()))
		tok, err := store.Get("auth_token")
		require.NoError(t, err)
		assert.Equal(t, "tok-2", tok)
		assert.Zero(t, nav.count())
	})

	t.Run("RenewalFailsValidationSucceeds", func(t *testing.T) {
		store := memory.NewStore()
		clock := newFakeClock()
		nav := &recordingNavigator{}
		calls := 0
		api := newBackend(t, store, func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"user":{"id":"u-1"}}`))
		})
		m := NewManager(store, api, WithClock(clock.Now), WithNavigator(nav))
		m.Login("tok-1", time.Hour, nil)

		mo := m.NewMonitor()
		clock.Advance(50 * time.Minute)
		mo.Touch()

		assert.False(t, mo.Check(t.Context()))
		assert.True(t, m.IsAuthenticated())
		assert.Zero(t, nav.count())
	})

	t.Run("BothFailWithAuthInvalid", func(t *testing.T) {
		store := memory.NewStore()
		clock := newFakeClock()
		nav := &recordingNavigator{}
		api := newBackend(t, store, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		m := NewManager(store, api, WithClock(clock.Now), WithNavigator(nav))
		m.Login("tok-1", time.Hour, nil)

		mo := m.NewMonitor()
		clock.Advance(50 * time.Minute)
		mo.Touch()

		assert.True(t, mo.Check(t.Context()))
		assert.Equal(t, 1, nav.count())
		assert.False(t, hasToken(store))
	})

	t.Run("BothFailTransientKeepsSession", func(t *testing.T) {
		store := memory.NewStore()
		clock := newFakeClock()
		nav := &recordingNavigator{}
		api := newBackend(t, store, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		m := NewManager(store, api, WithClock(clock.Now), WithNavigator(nav))
		m.Login("tok-1", time.Hour, nil)

		mo := m.NewMonitor()
		clock.Advance(50 * time.Minute)
		mo.Touch()

		assert.False(t, mo.Check(t.Context()), "a flaky backend must not force a logout")
		assert.True(t, m.IsAuthenticated())
		assert.Zero(t, nav.count())
	})
}

func TestMonitorLoop(t *testing.T) {
	t.Run("TickDrivesCheck", func(t *testing.T) {
		store := memory.NewStore()
		nav := &recordingNavigator{}
		m := NewManager(store, nil, WithNavigator(nav))
		// No session: the first tick forces a logout and the loop
		// stops itself.
		ticks := make(chan time.Time, 1)
		mo := m.NewMonitor(WithTicks(ticks))
		mo.Start()

		ticks <- time.Now()
		select {
		case <-mo.done:
		case <-time.After(2 * time.Second):
			t.Fatal("monitor did not stop after forced logout")
		}
		assert.Equal(t, 1, nav.count())

		// Stop after self-stop must not hang.
		mo.Stop()
	})

	t.Run("WakeDrivesCheck", func(t *testing.T) {
		store := memory.NewStore()
		nav := &recordingNavigator{}
		m := NewManager(store, nil, WithNavigator(nav))
		mo := m.NewMonitor(WithTicks(make(chan time.Time)))
		mo.Start()

		mo.Wake()
		select {
		case <-mo.done:
		case <-time.After(2 * time.Second):
			t.Fatal("wake did not trigger a check")
		}
		assert.Equal(t, 1, nav.count())
	})

	t.Run("StopIsCleanAndRepeatable", func(t *testing.T) {
		store := memory.NewStore()
		m := NewManager(store, nil)
		m.Login("tok-1", time.Hour, nil)

		mo := m.NewMonitor(WithTicks(make(chan time.Time)))
		mo.Start()
		mo.Stop()
		mo.Stop()

		select {
		case <-mo.done:
		default:
			t.Fatal("loop still running after Stop")
		}
	})

	t.Run("StopWithoutStart", func(t *testing.T) {
		store := memory.NewStore()
		m := NewManager(store, nil)
		mo := m.NewMonitor()
		mo.Stop() // must not block
	})

	t.Run("StartTwice", func(t *testing.T) {
		store := memory.NewStore()
		m := NewManager(store, nil)
		m.Login("tok-1", time.Hour, nil)
		mo := m.NewMonitor(WithTicks(make(chan time.Time)))
		mo.Start()
		mo.Start()
		mo.Stop()
	})
}

func TestMonitorWakeCoalesces(t *testing.T) {
	store := memory.NewStore()
	m := NewManager(store, nil)
	mo := m.NewMonitor()

	// Repeated wakes before the loop runs must not block the caller.
	for range 10 {
		mo.Wake()
	}
}
