// Package vdom provides Verdant's node-description tree and the
// reconciler that realizes and patches it against platform nodes.
//
// # Core types
//
// VNode is a lightweight description of one prospective UI element:
// an element with a tag, a run of text, or an embedded component
// function. Props holds attributes, live properties, and event
// handlers. Descriptions are built with H or with the variadic element
// factories:
//
//	vdom.Div(vdom.Class("card"),
//	    vdom.H1(vdom.Text("Title")),
//	    vdom.Button(vdom.OnClick(handler), vdom.Text("Go")),
//	)
//
// # Realize and Patch
//
// Realize converts a description into a platform node via a
// dom.Document. Patch reconciles a previously realized tree against a
// fresh description, mutating realized nodes in place and transferring
// handles onto the new tree; only a type mismatch produces a new
// handle. Children reconcile positionally by index. The Key field is
// carried on descriptions but not consulted.
//
// The reconciler assumes structurally valid trees. A malformed
// description is a programming error, not a recoverable condition.
package vdom
