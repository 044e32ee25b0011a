// Package observe provides the reactive core for Verdant.
//
// Plain records become observable by wrapping them, and reactions
// re-run automatically when a property they read changes:
//
//	state := observe.Wrap(map[string]any{"count": 0})
//	dispose := observe.RegisterFunc(func() {
//	    fmt.Println("count is", state.Get("count"))
//	})
//	state.Set("count", 1)
//	observe.Flush() // deferred phase: reaction re-runs
//
// # Dependency tracking
//
// Reading a property while a reaction is executing subscribes that
// reaction to the (object, property) pair. Tracking is automatic: a
// reaction depends on exactly what it read during its most recent run.
// The active reaction is per-goroutine state maintained with a
// save/overwrite/restore discipline, so registering a reaction inside
// another reaction's body is safe.
//
// # Scheduling
//
// A write to an observed property enqueues every current dependent
// once, in subscription order. The queue is deliberately not
// coalesced: two writes that both reach the same reaction produce two
// deferred runs. The host decides when the deferred phase happens by
// calling Flush; UI drivers flush after each event handler returns.
//
// # Failure isolation
//
// A panic inside a reaction body is recovered and logged at that
// reaction's execution site. It never propagates to the code that
// performed the triggering write and never prevents other queued
// reactions from running.
package observe
