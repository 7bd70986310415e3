// Package optimistic implements the apply-locally-then-persist pattern
// used by checklist and action-item toggles: the UI reflects a change
// with zero latency, the backend is updated behind it, and a failed
// persist rolls the local state back to the exact pre-change value.
package optimistic

import (
	"context"
	"errors"
	"sync"

	"github.com/claimready/claimready/client"
)

// ErrUnknownTarget is returned when a mutation names an entity the
// local collection doesn't hold.
var ErrUnknownTarget = errors.New("unknown mutation target")

// Status is the lifecycle of one optimistic run on a target.
type Status int

const (
	StatusPending Status = iota
	StatusCommitted
	StatusRolledBack
)

// ReadFunc returns the current local value for a target.
type ReadFunc[V any] func(id string) (V, bool)

// WriteFunc applies a value to local state. Called synchronously from
// Mutate before any network traffic, and again on rollback.
type WriteFunc[V any] func(id string, v V)

// PersistFunc stores the value remotely. A non-nil returned value is
// the server's canonical version and is merged into local state on
// commit.
type PersistFunc[V any] func(ctx context.Context, id string, v V) (*V, error)

// run tracks one optimistic episode on a single target. The rollback
// baseline is the value before the first optimistic write of the run,
// never an intermediate one.
type run[V any] struct {
	first    V
	latest   uint64
	inflight int
	status   Status
	resolved bool
}

// Coordinator applies optimistic mutations for one entity collection.
// Mutations on distinct targets are independent; a second mutation on
// the same target while one is pending joins the existing run and
// keeps its original snapshot.
type Coordinator[V any] struct {
	read    ReadFunc[V]
	write   WriteFunc[V]
	persist PersistFunc[V]

	// onAuthInvalid fires when a persist fails with ErrAuthInvalid, so
	// the session manager can invalidate before the error propagates.
	onAuthInvalid func()

	mu   sync.Mutex
	runs map[string]*run[V]
	seq  uint64
}

// Option configures a Coordinator.
type Option[V any] func(*Coordinator[V])

// WithAuthInvalidHandler registers the session-invalidation hook.
func WithAuthInvalidHandler[V any](fn func()) Option[V] {
	return func(c *Coordinator[V]) { c.onAuthInvalid = fn }
}

// New creates a Coordinator over the given local accessors and remote
// persist call.
func New[V any](read ReadFunc[V], write WriteFunc[V], persist PersistFunc[V], opts ...Option[V]) *Coordinator[V] {
	c := &Coordinator[V]{
		read:    read,
		write:   write,
		persist: persist,
		runs:    make(map[string]*run[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mutate applies desired to the target locally, persists it remotely,
// and reconciles. On failure the target is restored to the value it
// had before the first optimistic write of the current run and the
// error is returned so the caller can surface it.
func (c *Coordinator[V]) Mutate(ctx context.Context, id string, desired V) error {
	c.mu.Lock()
	r, ok := c.runs[id]
	if !ok || r.resolved {
		prev, exists := c.read(id)
		if !exists {
			c.mu.Unlock()
			return ErrUnknownTarget
		}
		r = &run[V]{first: prev, status: StatusPending}
		c.runs[id] = r
	}
	c.seq++
	gen := c.seq
	r.latest = gen
	r.inflight++
	c.write(id, desired)
	c.mu.Unlock()

	canonical, err := c.persist(ctx, id, desired)
	return c.settle(id, r, gen, desired, canonical, err)
}

// settle processes one persist result. A result whose run has already
// resolved is discarded: a newer mutation for the target completed (or
// rolled the run back) while this call was in flight.
func (c *Coordinator[V]) settle(id string, r *run[V], gen uint64, desired V, canonical *V, err error) error {
	authInvalid := err != nil && errors.Is(err, client.ErrAuthInvalid)

	c.mu.Lock()
	r.inflight--
	switch {
	case r.resolved:
		// Stale: drop the result, but a failed caller still hears
		// about its own failure.
	case err != nil:
		c.write(id, r.first)
		r.status = StatusRolledBack
		r.resolved = true
	case gen == r.latest:
		if canonical != nil {
			c.write(id, *canonical)
		}
		r.status = StatusCommitted
		r.resolved = true
	default:
		// Success for a superseded value: the newest call will decide
		// the run's outcome.
	}
	if r.resolved && r.inflight == 0 {
		delete(c.runs, id)
	}
	c.mu.Unlock()

	if authInvalid && c.onAuthInvalid != nil {
		c.onAuthInvalid()
	}
	return err
}

// Status reports the state of the current run on a target. ok is false
// when no run is tracked (never mutated, or the run finished and every
// in-flight call returned).
func (c *Coordinator[V]) Status(id string) (Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.runs[id]
	if !ok {
		return 0, false
	}
	return r.status, true
}
