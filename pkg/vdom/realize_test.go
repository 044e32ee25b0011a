package vdom

import (
	"testing"

	"github.com/verdant-ui/verdant/pkg/dom"
	"github.com/verdant-ui/verdant/pkg/dom/memdom"
)

func TestRealizeElementTree(t *testing.T) {
	doc := memdom.New()
	v := H("ul", nil,
		H("li", nil, "one"),
		H("li", nil, "two"),
	)

	n := Realize(doc, v).(*memdom.Node)
	if n.Tag() != "ul" {
		t.Fatalf("tag = %q, want ul", n.Tag())
	}
	if n.ChildCount() != 2 {
		t.Fatalf("child count = %d, want 2", n.ChildCount())
	}
	if got := n.Child(1).Text(); got != "two" {
		t.Errorf("second child text = %q, want %q", got, "two")
	}
	if v.Node() != dom.Node(n) {
		t.Error("description does not record its handle")
	}
	if v.Children[0].Node() == nil {
		t.Error("child description does not record its handle")
	}
}

func TestRealizePropFamilies(t *testing.T) {
	doc := memdom.New()
	clicks := 0
	ref := &Ref{}

	v := H("input", Props{
		"onClick":   func() { clicks++ },
		"className": "field",
		"style":     map[string]string{"color": "red"},
		"value":     "hello",
		"checked":   true,
		"ref":       ref,
		"data-row":  3,
	})
	n := Realize(doc, v).(*memdom.Node)

	if !n.HasListener("click") {
		t.Error("onClick did not install a click listener")
	}
	n.DispatchEvent(dom.Event{Type: "click"})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if got, _ := n.Attribute("class"); got != "field" {
		t.Errorf("class = %q, want %q", got, "field")
	}
	if got := n.Property("value"); got != "hello" {
		t.Errorf("value property = %v, want hello", got)
	}
	if got := n.Property("checked"); got != true {
		t.Errorf("checked property = %v, want true", got)
	}
	if ref.Current != dom.Node(n) {
		t.Error("ref did not receive the handle")
	}
	if got, _ := n.Attribute("data-row"); got != "3" {
		t.Errorf("data-row = %q, want coerced %q", got, "3")
	}
	if got, ok := n.Attribute("key"); ok {
		t.Errorf("key leaked as attribute %q", got)
	}
}

func TestRealizeStyleString(t *testing.T) {
	doc := memdom.New()
	n := Realize(doc, H("div", Props{"style": "color: blue"})).(*memdom.Node)
	if got, _ := n.Attribute("style"); got != "color: blue" {
		t.Errorf("style = %q, want %q", got, "color: blue")
	}
}

func TestRealizeComponent(t *testing.T) {
	doc := memdom.New()
	greet := func(props Props) *VNode {
		return H("p", nil, "hi "+props["who"].(string))
	}

	v := Component(greet, Props{"who": "ada"})
	n := Realize(doc, v).(*memdom.Node)
	if n.Tag() != "p" || n.Text() != "hi ada" {
		t.Errorf("rendered <%s>%q, want <p>%q", n.Tag(), n.Text(), "hi ada")
	}
	if v.Node() != v.Rendered.Node() {
		t.Error("component handle is not the rendered output's handle")
	}
}

func TestRealizeNilComponentOutput(t *testing.T) {
	doc := memdom.New()
	empty := func(Props) *VNode { return nil }

	n := Realize(doc, Component(empty, nil))
	if n == nil {
		t.Fatal("nil output must still produce a placeholder handle")
	}
	if !n.IsText() || n.Text() != "" {
		t.Errorf("placeholder = %v %q, want empty text node", n.IsText(), n.Text())
	}
}
