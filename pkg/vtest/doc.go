// Package vtest provides testing helpers for Verdant components.
//
// It reduces boilerplate when testing components by mounting them into
// an in-memory document wired to the deferred scheduler, and by
// providing assertions over the serialized output.
//
// # Quick start
//
//	func TestCounter(t *testing.T) {
//	    state := observe.Wrap(map[string]any{"count": 0})
//	    h := vtest.Mount(t, func(vdom.Props) *vdom.VNode {
//	        return vdom.Div(vdom.Textf("count: %v", state.Get("count")))
//	    })
//	    vtest.ExpectContains(t, h, "count: 0")
//
//	    state.Set("count", 1)
//	    h.Flush()
//	    vtest.ExpectContains(t, h, "count: 1")
//	}
package vtest
