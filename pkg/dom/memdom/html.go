package memdom

import (
	"sort"
	"strings"
)

// voidElements cannot have children and render without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// OuterHTML serializes this node and its subtree.
func (n *Node) OuterHTML() string {
	var buf strings.Builder
	n.writeHTML(&buf)
	return buf.String()
}

// InnerHTML serializes this node's children.
func (n *Node) InnerHTML() string {
	var buf strings.Builder
	if n.isText {
		buf.WriteString(escapeHTML(n.text))
		return buf.String()
	}
	if n.text != "" {
		buf.WriteString(escapeHTML(n.text))
	}
	for _, c := range n.children {
		c.writeHTML(&buf)
	}
	return buf.String()
}

func (n *Node) writeHTML(buf *strings.Builder) {
	if n.isText {
		buf.WriteString(escapeHTML(n.text))
		return
	}

	buf.WriteByte('<')
	buf.WriteString(n.tag)

	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(n.attrs[k]))
		buf.WriteByte('"')
	}
	if style := n.styleString(); style != "" {
		buf.WriteString(` style="`)
		buf.WriteString(escapeAttr(style))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')

	if voidElements[n.tag] {
		return
	}

	if n.text != "" {
		buf.WriteString(escapeHTML(n.text))
	}
	for _, c := range n.children {
		c.writeHTML(buf)
	}

	buf.WriteString("</")
	buf.WriteString(n.tag)
	buf.WriteByte('>')
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes text for attribute values, additionally escaping
// whitespace that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
