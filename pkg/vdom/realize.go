package vdom

import (
	"github.com/verdant-ui/verdant/internal/metrics"
	"github.com/verdant-ui/verdant/pkg/dom"
)

// Realize converts a description into a platform node: the node is
// created, every prop applied, and children realized and appended in
// order. The handle is recorded on the description and returned.
//
// Component descriptions invoke their function once and realize its
// output; the component's handle is the handle of that output.
func Realize(doc dom.Document, v *VNode) dom.Node {
	metrics.Realizes.Inc()

	switch v.Kind {
	case KindText:
		n := doc.CreateTextNode(v.Text)
		v.node = n
		return n

	case KindComponent:
		v.Rendered = v.Fn(v.Props)
		if v.Rendered == nil {
			// A component rendering nothing still needs a handle to
			// hold its place in the parent.
			v.Rendered = Text("")
		}
		n := Realize(doc, v.Rendered)
		v.node = n
		return n

	default:
		n := doc.CreateElement(v.Tag)
		for key, value := range v.Props {
			applyProp(n, key, value)
		}
		for _, child := range v.Children {
			n.AppendChild(Realize(doc, child))
		}
		v.node = n
		return n
	}
}
