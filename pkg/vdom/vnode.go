package vdom

import (
	"reflect"

	"github.com/verdant-ui/verdant/pkg/dom"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain run of text
	KindComponent             // Embedded component function
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds attributes, live properties, and event handlers.
type Props map[string]any

// Func is a component function: it builds a fresh description tree
// from its props. It runs on every update of the instance rendering it.
type Func func(props Props) *VNode

// VNode is one description node.
type VNode struct {
	Kind     Kind
	Tag      string   // Element tag name (e.g. "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child descriptions, already normalized
	Key      string   // Identity key; carried, not consulted by Patch
	Text     string   // For KindText
	Fn       Func     // For KindComponent
	Rendered *VNode   // Fn's output tree once realized or patched

	// node is the realized platform handle. A handle is attached to at
	// most one live description node; Patch transfers it.
	node dom.Node
}

// Node returns the realized platform handle, or nil before Realize.
func (v *VNode) Node() dom.Node { return v.node }

// sameType reports whether prev and next describe the same kind of
// node: equal kinds, equal tags for elements, and the same component
// function for components.
func sameType(prev, next *VNode) bool {
	if prev.Kind != next.Kind {
		return false
	}
	switch prev.Kind {
	case KindElement:
		return prev.Tag == next.Tag
	case KindComponent:
		return fnPointer(prev.Fn) == fnPointer(next.Fn)
	default:
		return true
	}
}

func fnPointer(f Func) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}

// Ref exposes a current slot that receives the realized handle when a
// description carrying it in a "ref" prop is realized or patched, and
// is cleared when the prop is removed.
type Ref struct {
	Current dom.Node
}

// NewRef creates an empty Ref.
func NewRef() *Ref { return &Ref{} }

// Attr represents a single attribute passed to an element factory.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty reports whether this is an empty attribute.
func (a Attr) IsEmpty() bool { return a.Key == "" }
