package vdom

import (
	"fmt"
	"strconv"
)

// H creates an element description. Props may be nil. Children may be
// descriptions, strings, numbers, nil, booleans (skipped), component
// functions, or nested slices of any of these, flattened arbitrarily
// deep.
//
//	vdom.H("div", vdom.Props{"class": "row"},
//	    "total: ", 42,
//	    items, // []*VNode
//	)
func H(tag string, props Props, children ...any) *VNode {
	n := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props, len(props)),
	}
	for k, v := range props {
		if k == "key" {
			n.Key = keyString(v)
			continue
		}
		n.Props[k] = v
	}
	appendChildren(n, children)
	return n
}

// Text creates a text description.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf creates a formatted text description.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Component creates a description that embeds a component function.
// The function is invoked when the description is realized and on
// every patch of the enclosing tree.
func Component(fn Func, props Props) *VNode {
	return &VNode{Kind: KindComponent, Fn: fn, Props: props}
}

// appendChildren normalizes and appends child arguments to n.
// nil and bool children are skipped; strings and numbers become text.
func appendChildren(n *VNode, children []any) {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case bool:
			// Conditional rendering leftovers; never rendered.
			continue
		case *VNode:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					n.Children = append(n.Children, c)
				}
			}
		case []any:
			appendChildren(n, v)
		case string:
			n.Children = append(n.Children, Text(v))
		case int:
			n.Children = append(n.Children, Text(strconv.Itoa(v)))
		case int64:
			n.Children = append(n.Children, Text(strconv.FormatInt(v, 10)))
		case float64:
			n.Children = append(n.Children, Text(strconv.FormatFloat(v, 'f', -1, 64)))
		case float32:
			n.Children = append(n.Children, Text(strconv.FormatFloat(float64(v), 'f', -1, 32)))
		case Func:
			n.Children = append(n.Children, Component(v, nil))
		}
	}
}

func keyString(v any) string {
	switch k := v.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	default:
		return fmt.Sprintf("%v", v)
	}
}
