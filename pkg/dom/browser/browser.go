//go:build js && wasm

// Package browser implements the dom interfaces against the real
// browser DOM via syscall/js. It is compiled only for js/wasm.
package browser

import (
	"syscall/js"

	"github.com/verdant-ui/verdant/pkg/dom"
)

// Document wraps the global browser document.
type Document struct {
	value js.Value

	// AfterDispatch, when set, runs after each installed event handler
	// returns. Hosts set this to the scheduler's flush.
	AfterDispatch func()
}

// New returns the global browser document.
func New() *Document {
	return &Document{value: js.Global().Get("document")}
}

// Body returns the document body as a Node.
func (d *Document) Body() dom.Node {
	return &Node{doc: d, value: d.value.Get("body")}
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) dom.Node {
	v := d.value.Call("getElementById", id)
	if v.IsNull() {
		return nil
	}
	return &Node{doc: d, value: v}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Node {
	return &Node{doc: d, value: d.value.Call("createElement", tag)}
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Node{doc: d, isText: true, value: d.value.Call("createTextNode", text)}
}

// Node wraps one browser DOM node.
type Node struct {
	doc    *Document
	value  js.Value
	isText bool

	// listeners keeps installed js.Func wrappers so they can be
	// released when replaced or removed.
	listeners map[string]js.Func
}

// Document implements dom.Node.
func (n *Node) Document() dom.Document { return n.doc }

// JSValue returns the underlying js.Value.
func (n *Node) JSValue() js.Value { return n.value }

// Parent implements dom.Node.
func (n *Node) Parent() dom.Node {
	p := n.value.Get("parentNode")
	if p.IsNull() || p.IsUndefined() {
		return nil
	}
	return &Node{doc: n.doc, value: p}
}

// Tag implements dom.Node.
func (n *Node) Tag() string {
	if n.isText {
		return ""
	}
	tag := n.value.Get("tagName")
	if tag.IsUndefined() {
		return ""
	}
	return tag.String()
}

// IsText implements dom.Node.
func (n *Node) IsText() bool { return n.isText }

// Text implements dom.Node.
func (n *Node) Text() string {
	return n.value.Get("textContent").String()
}

// SetText implements dom.Node.
func (n *Node) SetText(text string) {
	n.value.Set("textContent", text)
}

// AppendChild implements dom.Node.
func (n *Node) AppendChild(child dom.Node) {
	n.value.Call("appendChild", child.(*Node).value)
}

// InsertBefore implements dom.Node.
func (n *Node) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	n.value.Call("insertBefore", child.(*Node).value, ref.(*Node).value)
}

// ReplaceChild implements dom.Node.
func (n *Node) ReplaceChild(old, replacement dom.Node) {
	n.value.Call("replaceChild", replacement.(*Node).value, old.(*Node).value)
}

// RemoveChild implements dom.Node.
func (n *Node) RemoveChild(child dom.Node) {
	n.value.Call("removeChild", child.(*Node).value)
}

// Remove implements dom.Node.
func (n *Node) Remove() {
	n.value.Call("remove")
}

// SetAttribute implements dom.Node.
func (n *Node) SetAttribute(key, value string) {
	n.value.Call("setAttribute", key, value)
}

// RemoveAttribute implements dom.Node.
func (n *Node) RemoveAttribute(key string) {
	n.value.Call("removeAttribute", key)
}

// Attribute implements dom.Node.
func (n *Node) Attribute(key string) (string, bool) {
	v := n.value.Call("getAttribute", key)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// SetStyle implements dom.Node.
func (n *Node) SetStyle(property, value string) {
	n.value.Get("style").Call("setProperty", property, value)
}

// SetProperty implements dom.Node.
func (n *Node) SetProperty(key string, value any) {
	n.value.Set(key, js.ValueOf(value))
}

// Property implements dom.Node.
func (n *Node) Property(key string) any {
	v := n.value.Get(key)
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return v.Float()
	case js.TypeBoolean:
		return v.Bool()
	default:
		return nil
	}
}

// SetEventListener implements dom.Node. The handler runs on the event
// loop goroutine; AfterDispatch runs once it returns, closing the
// event turn.
func (n *Node) SetEventListener(event string, handler dom.Handler) {
	n.RemoveEventListener(event)
	if n.listeners == nil {
		n.listeners = make(map[string]js.Func)
	}

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := dom.Event{Type: event, Target: n}
		if len(args) > 0 {
			target := args[0].Get("target")
			if !target.IsUndefined() && !target.IsNull() {
				value := target.Get("value")
				if value.Type() == js.TypeString {
					ev.Value = value.String()
				}
			}
		}
		handler(ev)
		if n.doc.AfterDispatch != nil {
			n.doc.AfterDispatch()
		}
		return nil
	})

	n.listeners[event] = fn
	n.value.Call("addEventListener", event, fn)
}

// RemoveEventListener implements dom.Node.
func (n *Node) RemoveEventListener(event string) {
	fn, ok := n.listeners[event]
	if !ok {
		return
	}
	n.value.Call("removeEventListener", event, fn)
	fn.Release()
	delete(n.listeners, event)
}

// DispatchEvent implements dom.Node by dispatching a synthetic browser
// event of the given type.
func (n *Node) DispatchEvent(ev dom.Event) {
	event := js.Global().Get("Event").New(ev.Type)
	n.value.Call("dispatchEvent", event)
}
