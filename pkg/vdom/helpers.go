package vdom

// If returns the node if condition is true, nil otherwise.
// H and El skip nil children, so this composes directly.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If with lazy evaluation: fn runs only when condition
// is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Map renders a description for each item of a slice.
//
//	vdom.Ul(vdom.Map(todos, func(t Todo) *vdom.VNode {
//	    return vdom.Li(vdom.Text(t.Title))
//	}))
func Map[T any](items []T, render func(T) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for _, item := range items {
		if n := render(item); n != nil {
			out = append(out, n)
		}
	}
	return out
}
