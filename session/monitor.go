package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Monitor bundles the periodic session check, activity tracking, and
// the foreground-wake re-check into one handle with a single
// Start/Stop pair, so teardown is guaranteed at one call site no
// matter how many signals were registered.
type Monitor struct {
	mgr      *Manager
	interval time.Duration
	idle     time.Duration
	ticks    <-chan time.Time

	wake     chan struct{}
	stopCh   chan struct{}
	done     chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithInterval overrides the periodic check interval.
func WithInterval(d time.Duration) MonitorOption {
	return func(mo *Monitor) { mo.interval = d }
}

// WithIdleTimeout overrides the inactivity threshold. Zero disables
// idle-based logout.
func WithIdleTimeout(d time.Duration) MonitorOption {
	return func(mo *Monitor) { mo.idle = d }
}

// WithTicks replaces the internal ticker with a caller-driven channel.
// Tests use this to fire checks deterministically.
func WithTicks(ticks <-chan time.Time) MonitorOption {
	return func(mo *Monitor) { mo.ticks = ticks }
}

// NewMonitor creates a Monitor for this manager. It does nothing until
// Start is called.
func (m *Manager) NewMonitor(opts ...MonitorOption) *Monitor {
	mo := &Monitor{
		mgr:      m,
		interval: DefaultCheckInterval,
		idle:     DefaultActivityTimeout,
		wake:     make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(mo)
	}
	return mo
}

// Start launches the monitoring loop. Calling Start twice is a no-op.
func (mo *Monitor) Start() {
	if !mo.started.CompareAndSwap(false, true) {
		return
	}
	go mo.loop()
}

// Stop tears down the loop and waits for it to exit. Safe to call more
// than once, and safe after the monitor stopped itself on a forced
// logout.
func (mo *Monitor) Stop() {
	if !mo.started.Load() {
		return
	}
	mo.stopOnce.Do(func() { close(mo.stopCh) })
	<-mo.done
}

// Touch forwards a user-interaction event to the manager. It never
// blocks and never queues behind a pending check.
func (mo *Monitor) Touch() {
	mo.mgr.Touch()
}

// Wake requests an immediate re-check, covering the case where the
// periodic timer was suspended while the view was in the background.
// Coalesces with an already-pending wake.
func (mo *Monitor) Wake() {
	select {
	case mo.wake <- struct{}{}:
	default:
	}
}

func (mo *Monitor) loop() {
	defer close(mo.done)

	ticks := mo.ticks
	if ticks == nil {
		t := time.NewTicker(mo.interval)
		defer t.Stop()
		ticks = t.C
	}

	for {
		select {
		case <-mo.stopCh:
			return
		case <-ticks:
		case <-mo.wake:
		}
		// The periodic tick and a wake may race; Check is idempotent
		// so whichever fires first wins harmlessly.
		if mo.Check(context.Background()) {
			return
		}
	}
}

// Check runs one monitoring pass and reports whether it forced a
// logout (after which the loop stops, matching the interval being
// cleared in the original flow). Exported so a foreground-visibility
// handler can run it synchronously.
func (mo *Monitor) Check(ctx context.Context) bool {
	m := mo.mgr

	if !m.IsAuthenticated() {
		m.expire()
		return true
	}
	if mo.idle > 0 && m.IdleFor() >= mo.idle {
		m.logger.Info("user idle past threshold", "idle", m.IdleFor().String())
		m.expire()
		return true
	}
	if m.NeedsRefresh() {
		if m.RefreshToken(ctx) {
			return false
		}
		if m.ValidateSession(ctx) != nil {
			return false
		}
		// Both calls failed. Only an auth-invalid outcome has cleared
		// the store; a transient failure leaves the session alone.
		if !m.IsAuthenticated() {
			m.expire()
			return true
		}
	}
	return false
}
