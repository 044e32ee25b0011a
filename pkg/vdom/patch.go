package vdom

import (
	"github.com/verdant-ui/verdant/internal/metrics"
	"github.com/verdant-ui/verdant/pkg/dom"
)

// Patch reconciles a previously realized description against a fresh
// one and returns the handle now backing next.
//
// When the two describe the same type of node, prev's handle is
// transferred onto next (never recreated) and the node is mutated in
// place: props are diffed per key family and children reconcile
// positionally. A type mismatch is the only case that produces a new
// handle; the fresh realization replaces the old node at its position
// when the old handle is attached.
//
// Both trees must be structurally valid; Patch performs no defensive
// repair.
func Patch(doc dom.Document, prev, next *VNode) dom.Node {
	if !sameType(prev, next) {
		return replace(doc, prev, next)
	}

	// Transfer the handle: a handle belongs to at most one live
	// description node.
	n := prev.node
	next.node = n
	prev.node = nil

	switch next.Kind {
	case KindText:
		if prev.Text != next.Text {
			n.SetText(next.Text)
			metrics.PatchOps.WithLabelValues("set_text").Inc()
		}
		return n

	case KindComponent:
		next.Rendered = next.Fn(next.Props)
		if next.Rendered == nil {
			next.Rendered = Text("")
		}
		out := Patch(doc, prev.Rendered, next.Rendered)
		next.node = out
		return out
	}

	patchProps(n, prev, next)
	patchChildren(doc, n, prev.Children, next.Children)
	return n
}

// replace realizes next fresh and substitutes it for prev's node at
// its position in the parent, when attached. The old handle is
// discarded.
func replace(doc dom.Document, prev, next *VNode) dom.Node {
	fresh := Realize(doc, next)
	if old := prev.node; old != nil {
		if parent := old.Parent(); parent != nil {
			parent.ReplaceChild(old, fresh)
		}
		prev.node = nil
	}
	metrics.PatchOps.WithLabelValues("replace").Inc()
	return fresh
}

// patchProps unsets props present only on the old map and reapplies
// props that were added or whose value differs.
func patchProps(n dom.Node, prev, next *VNode) {
	for key, old := range prev.Props {
		value, ok := next.Props[key]
		if !ok {
			removeProp(n, key, old)
			metrics.PatchOps.WithLabelValues("remove_prop").Inc()
			continue
		}
		if !propsEqual(old, value) {
			if key == "style" {
				// Entries from the old style map would otherwise linger.
				removeProp(n, key, old)
			}
			applyProp(n, key, value)
			metrics.PatchOps.WithLabelValues("set_prop").Inc()
		}
	}
	for key, value := range next.Props {
		if _, ok := prev.Props[key]; !ok {
			applyProp(n, key, value)
			metrics.PatchOps.WithLabelValues("set_prop").Inc()
		}
	}
}

// patchChildren reconciles children positionally by index. For the
// overlapping range: two text children update text in place, a
// text/non-text pair is replaced outright, and anything else recurses.
// New extras are realized and appended in order; old extras are
// removed from the highest index down.
func patchChildren(doc dom.Document, parent dom.Node, prev, next []*VNode) {
	overlap := len(prev)
	if len(next) < overlap {
		overlap = len(next)
	}

	for i := 0; i < overlap; i++ {
		pc, nc := prev[i], next[i]
		switch {
		case pc.Kind == KindText && nc.Kind == KindText:
			nc.node = pc.node
			pc.node = nil
			if pc.Text != nc.Text {
				nc.node.SetText(nc.Text)
				metrics.PatchOps.WithLabelValues("set_text").Inc()
			}
		case pc.Kind == KindText || nc.Kind == KindText:
			replace(doc, pc, nc)
		default:
			Patch(doc, pc, nc)
		}
	}

	for i := len(prev); i < len(next); i++ {
		parent.AppendChild(Realize(doc, next[i]))
		metrics.PatchOps.WithLabelValues("append").Inc()
	}

	// Highest index first, so earlier removals cannot shift later ones.
	for i := len(prev) - 1; i >= len(next); i-- {
		if old := prev[i].node; old != nil {
			parent.RemoveChild(old)
		}
		prev[i].node = nil
		metrics.PatchOps.WithLabelValues("remove").Inc()
	}
}
