package dom

// Document creates platform nodes.
type Document interface {
	// CreateElement creates an element node for the given tag.
	CreateElement(tag string) Node

	// CreateTextNode creates a text node with the given content.
	CreateTextNode(text string) Node
}

// Node is a handle to one realized platform node.
//
// Tree mutations take other handles from the same Document; mixing
// handles from different Documents is a programming error.
type Node interface {
	// Document returns the Document that created this node.
	Document() Document

	// Parent returns the parent node, or nil if detached.
	Parent() Node

	// Tag returns the element tag, or "" for text nodes.
	Tag() string

	// IsText reports whether this is a text node.
	IsText() bool

	// Text returns the text content. For elements this is the
	// concatenated content of all descendant text nodes.
	Text() string

	// SetText replaces the text content. On an element node this
	// replaces all children with a single run of text.
	SetText(text string)

	AppendChild(child Node)
	InsertBefore(child, ref Node)
	ReplaceChild(old, replacement Node)
	RemoveChild(child Node)

	// Remove detaches this node from its parent, if any.
	Remove()

	// SetAttribute sets a string attribute. Setting "style" replaces
	// any per-entry style values previously applied via SetStyle.
	SetAttribute(key, value string)

	// RemoveAttribute removes an attribute. Removing "style" also
	// clears per-entry style values.
	RemoveAttribute(key string)

	// Attribute returns an attribute value and whether it is present.
	Attribute(key string) (string, bool)

	// SetStyle sets a single style declaration, e.g. ("color", "red").
	SetStyle(property, value string)

	// SetProperty sets a live node property such as "value" or
	// "checked". Live properties are distinct from attributes.
	SetProperty(key string, value any)

	// Property returns a live node property, or nil if unset.
	Property(key string) any

	// SetEventListener installs the handler for an event type,
	// replacing any previous handler for that type.
	SetEventListener(event string, handler Handler)

	// RemoveEventListener removes the handler for an event type.
	RemoveEventListener(event string)

	// DispatchEvent invokes the handler registered for ev.Type, if
	// any. The event's Target is set to this node when unset.
	DispatchEvent(ev Event)
}

// Handler is an event callback.
type Handler func(Event)

// Event is the payload delivered to a Handler.
type Event struct {
	// Type is the event name, e.g. "click" or "input".
	Type string

	// Target is the node the event was dispatched on.
	Target Node

	// Value carries the input value for form events, when available.
	Value string
}
