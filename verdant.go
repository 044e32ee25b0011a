// Package verdant provides the public API for the Verdant UI runtime.
//
// This is the recommended import for most applications:
//
//	import "github.com/verdant-ui/verdant"
//
// Usage:
//
//	state := verdant.Wrap(map[string]any{"count": 0})
//	inst := verdant.Mount(func(verdant.Props) *verdant.VNode {
//	    return verdant.H("div", nil, "count: ", state.Get("count"))
//	}, container)
//	state.Set("count", 1)
//	verdant.Flush()
//	inst.Unmount()
package verdant

import (
	"github.com/verdant-ui/verdant/pkg/component"
	"github.com/verdant-ui/verdant/pkg/dom"
	"github.com/verdant-ui/verdant/pkg/observe"
	"github.com/verdant-ui/verdant/pkg/vdom"
)

// =============================================================================
// Reactive engine (pkg/observe)
// =============================================================================

// Object is an observable record; see observe.Object.
type Object = observe.Object

// Watcher is a whole-object listener; see observe.Watcher.
type Watcher = observe.Watcher

// Wrap makes a plain record observable.
func Wrap(initial map[string]any) *Object {
	return observe.Wrap(initial)
}

// RegisterReaction runs body once to discover its dependencies and
// re-runs it in the deferred phase whenever one of them changes. The
// returned disposer stops future runs and releases all registry
// memberships.
func RegisterReaction(body func()) (dispose func()) {
	return observe.RegisterFunc(body)
}

// Untracked runs fn without dependency tracking.
func Untracked(fn func()) {
	observe.Untracked(fn)
}

// Flush drains the deferred reaction queue. UI drivers call this after
// each event handler; headless hosts call it at their own turn
// boundaries.
func Flush() {
	observe.Flush()
}

// =============================================================================
// Description tree (pkg/vdom)
// =============================================================================

// VNode is a description of one prospective UI element.
type VNode = vdom.VNode

// Props holds attributes, live properties, and event handlers.
type Props = vdom.Props

// Ref receives a realized handle via the "ref" prop.
type Ref = vdom.Ref

// H creates an element description; see vdom.H.
func H(tag string, props Props, children ...any) *VNode {
	return vdom.H(tag, props, children...)
}

// Text creates a text description.
func Text(content string) *VNode {
	return vdom.Text(content)
}

// Textf creates a formatted text description.
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}

// =============================================================================
// Mount lifecycle (pkg/component)
// =============================================================================

// Instance is a mounted component.
type Instance = component.Instance

// Mount renders fn into container; see component.Mount.
func Mount(fn vdom.Func, container dom.Node, opts ...component.Option) *Instance {
	return component.Mount(fn, container, opts...)
}
