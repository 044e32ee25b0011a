package vdom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/verdant-ui/verdant/pkg/dom"
)

// applyProp applies one prop to a realized node, dispatching on key
// family: on<Event> installs a listener, class/className sets the
// class string, style takes a raw string or a per-entry map,
// value/checked are live properties, ref receives the handle, and
// everything else is a generic attribute with string coercion.
func applyProp(n dom.Node, key string, value any) {
	switch {
	case key == "key":
		// Consumed at construction; never applied.
	case isEventProp(key):
		if h := asHandler(value); h != nil {
			n.SetEventListener(eventName(key), h)
		}
	case key == "class" || key == "className":
		n.SetAttribute("class", propToString(value))
	case key == "style":
		switch s := value.(type) {
		case string:
			n.SetAttribute("style", s)
		case map[string]string:
			for k, v := range s {
				n.SetStyle(k, v)
			}
		}
	case key == "value" || key == "checked":
		n.SetProperty(key, value)
	case key == "ref":
		if r, ok := value.(*Ref); ok && r != nil {
			r.Current = n
		}
	default:
		n.SetAttribute(key, propToString(value))
	}
}

// removeProp is the inverse of applyProp for each key family.
// prev is the value being removed, needed for ref clearing.
func removeProp(n dom.Node, key string, prev any) {
	switch {
	case key == "key":
	case isEventProp(key):
		n.RemoveEventListener(eventName(key))
	case key == "class" || key == "className":
		n.RemoveAttribute("class")
	case key == "style":
		n.RemoveAttribute("style")
	case key == "value":
		n.SetProperty("value", "")
	case key == "checked":
		n.SetProperty("checked", false)
	case key == "ref":
		if r, ok := prev.(*Ref); ok && r != nil {
			r.Current = nil
		}
	default:
		n.RemoveAttribute(key)
	}
}

// isEventProp reports whether the key is an event handler prop.
// Case-insensitive on the prefix to catch onclick, OnClick, ONCLICK.
func isEventProp(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// eventName derives the event name by stripping the prefix and
// lower-casing: "onClick" becomes "click".
func eventName(key string) string {
	return strings.ToLower(key[2:])
}

func asHandler(value any) dom.Handler {
	switch h := value.(type) {
	case dom.Handler:
		return h
	case func(dom.Event):
		return h
	case func():
		return func(dom.Event) { h() }
	default:
		return nil
	}
}

// propsEqual compares two prop values. Handlers never compare equal
// unless both nil, so changed handlers are always reinstalled.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// propToString coerces a prop value to its attribute string.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
