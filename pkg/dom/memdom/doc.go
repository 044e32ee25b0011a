// Package memdom is an in-memory implementation of the dom interfaces.
//
// It is the default platform for tests and headless hosts. Nodes keep
// attributes, live properties, style declarations, and one event
// handler per event type, and can serialize themselves to HTML for
// assertions:
//
//	doc := memdom.New()
//	root := doc.CreateElement("div")
//	root.SetAttribute("class", "card")
//	html := root.(*memdom.Node).OuterHTML()
//
// DispatchEvent runs the target's handler synchronously and then
// invokes Document.AfterDispatch, which hosts use to flush the
// deferred reaction queue at the event-turn boundary.
package memdom
