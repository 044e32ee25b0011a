package vdom

import (
	"fmt"

	"github.com/verdant-ui/verdant/pkg/dom"
	"github.com/verdant-ui/verdant/pkg/dom/memdom"
)

// recDoc wraps memdom and records node creation and tree mutations so
// tests can assert on the exact operations the reconciler issues.
type recDoc struct {
	inner *memdom.Document
	ops   []string
	wrap  map[dom.Node]*recNode // inner node -> wrapper
}

func newRecDoc() *recDoc {
	return &recDoc{
		inner: memdom.New(),
		wrap:  map[dom.Node]*recNode{},
	}
}

func (d *recDoc) log(format string, args ...any) {
	d.ops = append(d.ops, fmt.Sprintf(format, args...))
}

func (d *recDoc) CreateElement(tag string) dom.Node {
	d.log("create %s", tag)
	n := &recNode{Node: d.inner.CreateElement(tag), d: d}
	d.wrap[n.Node] = n
	return n
}

func (d *recDoc) CreateTextNode(text string) dom.Node {
	d.log("createText %q", text)
	n := &recNode{Node: d.inner.CreateTextNode(text), d: d}
	d.wrap[n.Node] = n
	return n
}

// recNode forwards to the wrapped memdom node, unwrapping child
// arguments and logging tree mutations.
type recNode struct {
	dom.Node // inner memdom node
	d        *recDoc
}

func unwrap(n dom.Node) dom.Node {
	if r, ok := n.(*recNode); ok {
		return r.Node
	}
	return n
}

func label(n dom.Node) string {
	inner := unwrap(n)
	if inner.IsText() {
		return fmt.Sprintf("#%q", inner.Text())
	}
	return inner.Tag()
}

func (n *recNode) Document() dom.Document { return n.d }

func (n *recNode) Parent() dom.Node {
	p := n.Node.Parent()
	if p == nil {
		return nil
	}
	if w, ok := n.d.wrap[p]; ok {
		return w
	}
	return p
}

func (n *recNode) AppendChild(child dom.Node) {
	n.d.log("append %s -> %s", label(child), label(n))
	n.Node.AppendChild(unwrap(child))
}

func (n *recNode) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	n.d.log("insert %s before %s", label(child), label(ref))
	n.Node.InsertBefore(unwrap(child), unwrap(ref))
}

func (n *recNode) ReplaceChild(old, replacement dom.Node) {
	n.d.log("replace %s with %s", label(old), label(replacement))
	n.Node.ReplaceChild(unwrap(old), unwrap(replacement))
}

func (n *recNode) RemoveChild(child dom.Node) {
	n.d.log("remove %s", label(child))
	n.Node.RemoveChild(unwrap(child))
}

// mem returns the wrapped memdom node for direct inspection.
func (n *recNode) mem() *memdom.Node { return n.Node.(*memdom.Node) }
