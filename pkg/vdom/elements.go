package vdom

// El creates an element description from variadic arguments.
// Arguments can be: Attr, []Attr, or anything H accepts as a child.
func El(tag string, args ...any) *VNode {
	n := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			setAttr(n, v)
		case []Attr:
			for _, a := range v {
				setAttr(n, a)
			}
		default:
			appendChildren(n, []any{arg})
		}
	}

	return n
}

func setAttr(n *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		n.Key = keyString(a.Value)
		return
	}
	n.Props[a.Key] = a.Value
}

// Structure

func Div(args ...any) *VNode     { return El("div", args...) }
func Span(args ...any) *VNode    { return El("span", args...) }
func P(args ...any) *VNode       { return El("p", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Header(args ...any) *VNode  { return El("header", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }
func Main(args ...any) *VNode    { return El("main", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }
func Article(args ...any) *VNode { return El("article", args...) }

// Headings

func H1(args ...any) *VNode { return El("h1", args...) }
func H2(args ...any) *VNode { return El("h2", args...) }
func H3(args ...any) *VNode { return El("h3", args...) }
func H4(args ...any) *VNode { return El("h4", args...) }

// Text-level

func A(args ...any) *VNode      { return El("a", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Em(args ...any) *VNode     { return El("em", args...) }
func Code(args ...any) *VNode   { return El("code", args...) }
func Pre(args ...any) *VNode    { return El("pre", args...) }
func Br(args ...any) *VNode     { return El("br", args...) }

// Lists

func Ul(args ...any) *VNode { return El("ul", args...) }
func Ol(args ...any) *VNode { return El("ol", args...) }
func Li(args ...any) *VNode { return El("li", args...) }

// Forms

func Form(args ...any) *VNode     { return El("form", args...) }
func Input(args ...any) *VNode    { return El("input", args...) }
func Button(args ...any) *VNode   { return El("button", args...) }
func Label(args ...any) *VNode    { return El("label", args...) }
func Select(args ...any) *VNode   { return El("select", args...) }
func Option(args ...any) *VNode   { return El("option", args...) }
func Textarea(args ...any) *VNode { return El("textarea", args...) }

// Media

func Img(args ...any) *VNode { return El("img", args...) }
