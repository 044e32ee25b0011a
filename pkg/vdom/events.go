package vdom

import "github.com/verdant-ui/verdant/pkg/dom"

// On creates an event handler attribute for the given event name.
// The name is prefixed with "on" ("click" becomes "onclick").
func On(name string, handler dom.Handler) Attr {
	return Attr{Key: "on" + name, Value: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler dom.Handler) Attr { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler dom.Handler) Attr { return On("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler dom.Handler) Attr { return On("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler dom.Handler) Attr { return On("mouseup", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler dom.Handler) Attr { return On("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler dom.Handler) Attr { return On("mouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler dom.Handler) Attr { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler dom.Handler) Attr { return On("keyup", handler) }

// Form events

// OnInput handles input events (fired as the value changes).
func OnInput(handler dom.Handler) Attr { return On("input", handler) }

// OnChange handles change events (fired when the value is committed).
func OnChange(handler dom.Handler) Attr { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler dom.Handler) Attr { return On("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler dom.Handler) Attr { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler dom.Handler) Attr { return On("blur", handler) }
