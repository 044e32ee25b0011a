package observe

import (
	"sync"
	"sync/atomic"

	"github.com/verdant-ui/verdant/internal/metrics"
)

// Reaction is a registered computation that re-runs when any observed
// property it read during its most recent run changes.
//
// A reaction re-discovers its dependencies on every run: membership in
// registry entries from the previous run is dropped before the body
// executes, and reads during the body re-subscribe. Disposal drops all
// memberships and turns any still-queued runs into no-ops.
type Reaction struct {
	id   uint64
	body func()

	// entries are the registry slots joined during the most recent run.
	entries   []*entry
	entriesMu sync.Mutex

	disposed atomic.Bool
}

// Register creates a reaction and runs body once synchronously to
// discover its initial dependencies. The body re-runs in the deferred
// phase after any of those dependencies receives an effective write.
//
// Example:
//
//	r := observe.Register(func() {
//	    render(state.Get("count"))
//	})
//	defer r.Dispose()
func Register(body func()) *Reaction {
	r := &Reaction{
		id:   nextID(),
		body: body,
	}
	r.Invoke()
	return r
}

// RegisterFunc is Register returning just the disposer.
func RegisterFunc(body func()) (dispose func()) {
	r := Register(body)
	return r.Dispose
}

// ID returns the unique identifier for this reaction.
func (r *Reaction) ID() uint64 { return r.id }

// IsDisposed reports whether Dispose has been called.
func (r *Reaction) IsDisposed() bool { return r.disposed.Load() }

// Dispose prevents any future run of the reaction and removes it from
// every registry entry it is a member of. A run that is already queued
// still reaches the scheduler but does nothing. Dispose is idempotent.
func (r *Reaction) Dispose() {
	if r.disposed.Swap(true) {
		return
	}
	r.detachAll()
}

// Invoke runs the body now, under the tracking discipline, with fresh
// dependency discovery and panic isolation. The scheduler calls this
// for deferred runs; hosts may call it to force a synchronous one.
// Invoking a disposed reaction is a no-op.
func (r *Reaction) Invoke() {
	if r.disposed.Load() {
		return
	}

	// Dependencies from the previous run no longer count; reads during
	// this run re-subscribe.
	r.detachAll()

	prev := setActiveReaction(r)
	defer setActiveReaction(prev)
	defer func() {
		if v := recover(); v != nil {
			metrics.ReactionPanics.Inc()
			logger().Error("reaction panicked",
				"reaction", r.id,
				"panic", v)
		}
	}()

	metrics.ReactionRuns.Inc()
	r.body()
}

// joined records membership in a registry entry. Called by entries
// during subscribe.
func (r *Reaction) joined(e *entry) {
	r.entriesMu.Lock()
	defer r.entriesMu.Unlock()
	for _, existing := range r.entries {
		if existing == e {
			return
		}
	}
	r.entries = append(r.entries, e)
}

// detachAll removes this reaction from every registry entry it joined
// and clears the forward record.
func (r *Reaction) detachAll() {
	r.entriesMu.Lock()
	entries := r.entries
	r.entries = nil
	r.entriesMu.Unlock()

	for _, e := range entries {
		e.unsubscribe(r)
	}
}

// trackedEntries returns how many registry entries this reaction is
// currently a member of. Used by tests.
func (r *Reaction) trackedEntries() int {
	r.entriesMu.Lock()
	defer r.entriesMu.Unlock()
	return len(r.entries)
}
