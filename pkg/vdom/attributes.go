package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Style sets the style attribute from a raw declaration string.
func Style(style string) Attr { return attr("style", style) }

// StyleMap sets the style attribute from per-entry declarations.
func StyleMap(styles map[string]string) Attr { return attr("style", styles) }

// Key sets the identity key on the description node.
func Key(key string) Attr { return attr("key", key) }

// Value sets the live value property (inputs, selects, textareas).
func Value(value string) Attr { return attr("value", value) }

// Checked sets the live checked property.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Title sets the title attribute.
func Title(title string) Attr { return attr("title", title) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Data creates a data-* attribute.
// Example: Data("id", "123") renders data-id="123".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// UseRef attaches a Ref that receives the realized handle.
func UseRef(ref *Ref) Attr { return attr("ref", ref) }
