package readability

import (
	"strings"

	"golang.org/x/net/html"
)

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func cloneAttrs(attrs []html.Attribute) []html.Attribute {
	if attrs == nil {
		return nil
	}
	out := make([]html.Attribute, len(attrs))
	copy(out, attrs)
	return out
}

// detach removes n from its parent, if it has one.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// replaceNode swaps old for newNode in old's parent, preserving old's
// surrounding siblings (and thus its "tail" text, which in this tree
// shape is just the following TextNode sibling).
func replaceNode(old, newNode *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(newNode, old)
	parent.RemoveChild(old)
}

// elementChildren returns n's element-type children in document order,
// mirroring lxml's getchildren() (which excludes text nodes).
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// leadingText returns the concatenation of n's text-node children that
// appear before its first element child — lxml's node.text.
func leadingText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// tailText returns the concatenation of text-node siblings immediately
// following n, stopping at the next element sibling — lxml's node.tail.
func tailText(n *html.Node) string {
	var b strings.Builder
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			break
		}
		if s.Type == html.TextNode {
			b.WriteString(s.Data)
		}
	}
	return b.String()
}

func hasDirectChildTag(n *html.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return true
		}
	}
	return false
}

func newElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func wrapInP(text string) *html.Node {
	p := newElement("p")
	p.AppendChild(textNode(text))
	return p
}

// cloneNode deep-copies n's tag, attributes and children. It deliberately
// does not touch n's siblings: the tail text of a node is positional
// (it lives in the parent's child list), so replaceNode carries it over
// for free when the clone takes n's place.
func cloneNode(n *html.Node) *html.Node {
	clone := &html.Node{Type: n.Type, Data: n.Data, Attr: cloneAttrs(n.Attr)}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneNode(c))
	}
	return clone
}

// spliceInto rewrites dst in place to match src's tag, attributes and
// children — used when a node being rewritten has no parent to swap
// under (the root body, in rare inputs).
func spliceInto(dst, src *html.Node) {
	dst.Data = src.Data
	dst.Attr = src.Attr
	for c := dst.FirstChild; c != nil; {
		next := c.NextSibling
		dst.RemoveChild(c)
		c = next
	}
	for c := src.FirstChild; c != nil; {
		next := c.NextSibling
		src.RemoveChild(c)
		dst.AppendChild(c)
		c = next
	}
}
