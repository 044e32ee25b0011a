// Package component binds component functions to mount points.
//
// Mount renders a component function into a container and keeps the
// realized tree up to date: the render runs inside a reaction, so
// observable reads performed while building the description tree
// subscribe the instance, and effective writes re-render and patch it
// during the next deferred flush.
//
//	state := observe.Wrap(map[string]any{"count": 0})
//	inst := component.Mount(counter, body, component.WithName("counter"))
//	state.Set("count", 1)
//	observe.Flush() // re-render + patch
//	inst.Unmount()
//
// A render that panics is logged and dropped; the previously realized
// tree is left fully intact, never half-patched.
//
// BindText and BindAttr offer the direct-effect alternative: a
// reaction that edits an already realized handle in place, with no
// tree diff. They are an opt-in optimization layered on the same
// engine, not a separate rendering model.
package component
