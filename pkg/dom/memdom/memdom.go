package memdom

import (
	"sort"
	"strings"

	"github.com/verdant-ui/verdant/pkg/dom"
)

// Document is an in-memory dom.Document.
type Document struct {
	// AfterDispatch, when set, runs after every DispatchEvent handler
	// returns. Hosts set this to the scheduler's flush so that writes
	// made inside an event handler re-run reactions once the handler's
	// synchronous block completes.
	AfterDispatch func()
}

// New creates an empty in-memory document.
func New() *Document {
	return &Document{}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Node {
	return &Node{
		doc:       d,
		tag:       tag,
		attrs:     make(map[string]string),
		styles:    make(map[string]string),
		props:     make(map[string]any),
		listeners: make(map[string]dom.Handler),
	}
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Node{doc: d, isText: true, text: text}
}

// Node is an in-memory dom.Node.
type Node struct {
	doc    *Document
	tag    string
	isText bool
	text   string

	parent   *Node
	children []*Node

	attrs     map[string]string
	styles    map[string]string
	props     map[string]any
	listeners map[string]dom.Handler
}

// Document implements dom.Node.
func (n *Node) Document() dom.Document { return n.doc }

// Parent implements dom.Node.
func (n *Node) Parent() dom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Tag implements dom.Node.
func (n *Node) Tag() string { return n.tag }

// IsText implements dom.Node.
func (n *Node) IsText() bool { return n.isText }

// Text implements dom.Node.
func (n *Node) Text() string {
	if n.isText {
		return n.text
	}
	var buf strings.Builder
	for _, c := range n.children {
		buf.WriteString(c.Text())
	}
	return buf.String()
}

// SetText implements dom.Node. On an element it replaces all children
// with a single run of text.
func (n *Node) SetText(text string) {
	if n.isText {
		n.text = text
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	n.text = text
}

// AppendChild implements dom.Node.
func (n *Node) AppendChild(child dom.Node) {
	c := child.(*Node)
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// InsertBefore implements dom.Node. A nil ref appends.
func (n *Node) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	c := child.(*Node)
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	idx := n.indexOf(ref.(*Node))
	if idx < 0 {
		n.AppendChild(child)
		return
	}
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
}

// ReplaceChild implements dom.Node.
func (n *Node) ReplaceChild(old, replacement dom.Node) {
	idx := n.indexOf(old.(*Node))
	if idx < 0 {
		return
	}
	r := replacement.(*Node)
	if r.parent != nil {
		r.parent.RemoveChild(r)
	}
	n.children[idx].parent = nil
	n.children[idx] = r
	r.parent = n
}

// RemoveChild implements dom.Node.
func (n *Node) RemoveChild(child dom.Node) {
	idx := n.indexOf(child.(*Node))
	if idx < 0 {
		return
	}
	n.children[idx].parent = nil
	n.children = append(n.children[:idx], n.children[idx+1:]...)
}

// Remove implements dom.Node.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// ChildCount returns the number of children. Test helper.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child. Test helper.
func (n *Node) Child(i int) *Node { return n.children[i] }

// SetAttribute implements dom.Node.
func (n *Node) SetAttribute(key, value string) {
	if n.isText {
		return
	}
	if key == "style" {
		// A verbatim style string replaces per-entry declarations.
		n.styles = make(map[string]string)
	}
	n.attrs[key] = value
}

// RemoveAttribute implements dom.Node.
func (n *Node) RemoveAttribute(key string) {
	if n.isText {
		return
	}
	delete(n.attrs, key)
	if key == "style" {
		n.styles = make(map[string]string)
	}
}

// Attribute implements dom.Node.
func (n *Node) Attribute(key string) (string, bool) {
	if n.isText {
		return "", false
	}
	v, ok := n.attrs[key]
	return v, ok
}

// SetStyle implements dom.Node.
func (n *Node) SetStyle(property, value string) {
	if n.isText {
		return
	}
	delete(n.attrs, "style")
	n.styles[property] = value
}

// SetProperty implements dom.Node.
func (n *Node) SetProperty(key string, value any) {
	if n.isText {
		return
	}
	n.props[key] = value
}

// Property implements dom.Node.
func (n *Node) Property(key string) any {
	if n.isText {
		return nil
	}
	return n.props[key]
}

// SetEventListener implements dom.Node.
func (n *Node) SetEventListener(event string, handler dom.Handler) {
	if n.isText {
		return
	}
	n.listeners[event] = handler
}

// RemoveEventListener implements dom.Node.
func (n *Node) RemoveEventListener(event string) {
	if n.isText {
		return
	}
	delete(n.listeners, event)
}

// HasListener reports whether a handler is installed for event. Test helper.
func (n *Node) HasListener(event string) bool {
	_, ok := n.listeners[event]
	return ok
}

// DispatchEvent implements dom.Node. The handler runs synchronously;
// Document.AfterDispatch then runs, marking the end of the event turn.
func (n *Node) DispatchEvent(ev dom.Event) {
	if ev.Target == nil {
		ev.Target = n
	}
	if h, ok := n.listeners[ev.Type]; ok {
		h(ev)
	}
	if n.doc.AfterDispatch != nil {
		n.doc.AfterDispatch()
	}
}

// styleString renders per-entry style declarations in sorted order so
// serialized output is deterministic.
func (n *Node) styleString() string {
	if len(n.styles) == 0 {
		return ""
	}
	keys := make([]string, 0, len(n.styles))
	for k := range n.styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var buf strings.Builder
	for i, k := range keys {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(n.styles[k])
	}
	return buf.String()
}
