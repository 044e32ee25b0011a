package observe

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine.
// Each goroutine has its own context so concurrent hosts cannot
// attribute reads to the wrong reaction.
type trackingContext struct {
	// active is the reaction currently executing on this goroutine.
	// When a property is read, it subscribes this reaction.
	// nil means no tracking (reads don't create subscriptions).
	active *Reaction
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the runtime stack header. Implementation detail; not
// exposed.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack starts with "goroutine <id> ".
	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current
// goroutine, creating it on first use.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// activeReaction returns the reaction currently tracking reads on this
// goroutine, or nil.
func activeReaction() *Reaction {
	return getTrackingContext().active
}

// setActiveReaction overwrites the active reaction and returns the
// previous one so callers can restore it. Every execution site pairs
// this with a deferred restore; that discipline is what makes nested
// synchronous registration safe.
func setActiveReaction(r *Reaction) *Reaction {
	ctx := getTrackingContext()
	old := ctx.active
	ctx.active = r
	return old
}

// Untracked runs fn with no active reaction, so property reads inside
// it do not create subscriptions.
//
// Example:
//
//	observe.Untracked(func() {
//	    total := state.Get("count")
//	    fmt.Println("current:", total)
//	})
func Untracked(fn func()) {
	old := setActiveReaction(nil)
	defer setActiveReaction(old)
	fn()
}
