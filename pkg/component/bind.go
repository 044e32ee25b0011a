package component

import (
	"github.com/verdant-ui/verdant/pkg/dom"
	"github.com/verdant-ui/verdant/pkg/observe"
)

// BindText keeps a realized node's text in sync with a computed
// string. The computation runs inside a reaction, so observable reads
// subscribe it; effective writes re-run it in the deferred flush and
// edit the handle directly, with no tree diff.
//
//	dispose := component.BindText(label, func() string {
//	    return fmt.Sprintf("%v items", state.Get("count"))
//	})
func BindText(n dom.Node, compute func() string) (dispose func()) {
	return observe.RegisterFunc(func() {
		n.SetText(compute())
	})
}

// BindAttr keeps a single attribute in sync with a computed string.
func BindAttr(n dom.Node, key string, compute func() string) (dispose func()) {
	return observe.RegisterFunc(func() {
		n.SetAttribute(key, compute())
	})
}

// BindProperty keeps a live node property in sync with a computed
// value.
func BindProperty(n dom.Node, key string, compute func() any) (dispose func()) {
	return observe.RegisterFunc(func() {
		n.SetProperty(key, compute())
	})
}
