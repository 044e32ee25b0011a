package memdom

import (
	"testing"

	"github.com/verdant-ui/verdant/pkg/dom"
)

func TestTreeOperations(t *testing.T) {
	doc := New()
	parent := doc.CreateElement("ul").(*Node)
	a := doc.CreateElement("li")
	b := doc.CreateElement("li")
	c := doc.CreateElement("li")

	parent.AppendChild(a)
	parent.AppendChild(c)
	parent.InsertBefore(b, c)

	if parent.ChildCount() != 3 {
		t.Fatalf("expected 3 children, got %d", parent.ChildCount())
	}
	if parent.Child(1) != b.(*Node) {
		t.Error("InsertBefore placed child at wrong index")
	}
	if a.Parent() != parent {
		t.Error("child parent not set")
	}

	d := doc.CreateElement("li")
	parent.ReplaceChild(b, d)
	if parent.Child(1) != d.(*Node) {
		t.Error("ReplaceChild did not substitute in place")
	}
	if b.Parent() != nil {
		t.Error("replaced child still has a parent")
	}

	parent.RemoveChild(a)
	if parent.ChildCount() != 2 {
		t.Errorf("expected 2 children after removal, got %d", parent.ChildCount())
	}

	c.Remove()
	if parent.ChildCount() != 1 {
		t.Errorf("Remove did not detach: %d children", parent.ChildCount())
	}
}

func TestReappendMovesNode(t *testing.T) {
	doc := New()
	first := doc.CreateElement("div").(*Node)
	second := doc.CreateElement("div").(*Node)
	child := doc.CreateElement("span")

	first.AppendChild(child)
	second.AppendChild(child)

	if first.ChildCount() != 0 {
		t.Error("appending elsewhere should detach from the old parent")
	}
	if child.Parent() != second {
		t.Error("child not attached to the new parent")
	}
}

func TestTextContent(t *testing.T) {
	doc := New()
	el := doc.CreateElement("p").(*Node)
	el.AppendChild(doc.CreateTextNode("hello "))
	span := doc.CreateElement("span")
	span.AppendChild(doc.CreateTextNode("world"))
	el.AppendChild(span)

	if got := el.Text(); got != "hello world" {
		t.Errorf("Text() = %q", got)
	}

	el.SetText("flat")
	if el.ChildCount() != 0 {
		t.Error("SetText on an element should drop children")
	}
	if got := el.Text(); got != "flat" {
		t.Errorf("Text() after SetText = %q", got)
	}
}

func TestAttributesAndProperties(t *testing.T) {
	doc := New()
	input := doc.CreateElement("input").(*Node)

	input.SetAttribute("type", "text")
	if v, ok := input.Attribute("type"); !ok || v != "text" {
		t.Errorf("Attribute = %q/%v", v, ok)
	}

	input.RemoveAttribute("type")
	if _, ok := input.Attribute("type"); ok {
		t.Error("attribute survived removal")
	}

	input.SetProperty("value", "typed")
	if got := input.Property("value"); got != "typed" {
		t.Errorf("Property = %v", got)
	}
}

func TestStyleStringReplacesEntries(t *testing.T) {
	doc := New()
	el := doc.CreateElement("div").(*Node)

	el.SetStyle("color", "red")
	el.SetStyle("margin", "0")
	html := el.OuterHTML()
	if html != `<div style="color: red; margin: 0"></div>` {
		t.Errorf("OuterHTML = %s", html)
	}

	// A verbatim style string wins over per-entry declarations.
	el.SetAttribute("style", "display: none")
	if got := el.OuterHTML(); got != `<div style="display: none"></div>` {
		t.Errorf("OuterHTML after style attr = %s", got)
	}

	el.RemoveAttribute("style")
	if got := el.OuterHTML(); got != `<div></div>` {
		t.Errorf("OuterHTML after removal = %s", got)
	}
}

func TestDispatchEvent(t *testing.T) {
	doc := New()
	btn := doc.CreateElement("button").(*Node)

	var got dom.Event
	clicks := 0
	btn.SetEventListener("click", func(ev dom.Event) {
		got = ev
		clicks++
	})

	flushed := 0
	doc.AfterDispatch = func() { flushed++ }

	btn.DispatchEvent(dom.Event{Type: "click"})

	if clicks != 1 {
		t.Fatalf("expected 1 click, got %d", clicks)
	}
	if got.Target != btn {
		t.Error("event target not filled in")
	}
	if flushed != 1 {
		t.Errorf("AfterDispatch ran %d times, want 1", flushed)
	}

	// Replacing the handler keeps one listener per event type.
	btn.SetEventListener("click", func(dom.Event) {})
	btn.DispatchEvent(dom.Event{Type: "click"})
	if clicks != 1 {
		t.Error("old handler still installed after replacement")
	}

	btn.RemoveEventListener("click")
	if btn.HasListener("click") {
		t.Error("listener survived removal")
	}
}

func TestOuterHTMLEscaping(t *testing.T) {
	doc := New()
	el := doc.CreateElement("div").(*Node)
	el.SetAttribute("title", `a "quoted" <value>`)
	el.AppendChild(doc.CreateTextNode("<script>alert('x')</script> & more"))

	want := `<div title="a &quot;quoted&quot; &lt;value&gt;">&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt; &amp; more</div>`
	if got := el.OuterHTML(); got != want {
		t.Errorf("OuterHTML = %s\nwant      %s", got, want)
	}
}

func TestVoidElements(t *testing.T) {
	doc := New()
	img := doc.CreateElement("img").(*Node)
	img.SetAttribute("src", "a.png")

	if got := img.OuterHTML(); got != `<img src="a.png">` {
		t.Errorf("OuterHTML = %s", got)
	}
}
