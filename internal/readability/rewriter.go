package readability

import (
	"strings"

	"golang.org/x/net/html"
)

// convertBRs rewrites any run of sibling <br> tags beneath n into
// paragraph breaks: a node with one or more direct <br> children is
// rebuilt so that each text fragment previously separated by a <br>
// becomes its own <p>, and non-br children are carried over as-is. The
// rewrite then recurses into the (possibly replaced) node's children.
func convertBRs(n *html.Node) *html.Node {
	if !hasDirectChildTag(n, "br") {
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			if c.Type == html.ElementNode {
				convertBRs(c)
			}
			c = next
		}
		return n
	}

	replacement := newElement(n.Data)
	replacement.Attr = cloneAttrs(n.Attr)

	if leading := leadingText(n); strings.TrimSpace(leading) != "" {
		replacement.AppendChild(wrapInP(leading))
	}

	for _, c := range elementChildren(n) {
		tail := tailText(c)
		if c.Data == "br" {
			if strings.TrimSpace(tail) != "" {
				replacement.AppendChild(wrapInP(tail))
			}
			continue
		}
		detach(c)
		replacement.AppendChild(c)
		if strings.TrimSpace(tail) != "" {
			replacement.AppendChild(wrapInP(tail))
		}
	}

	if trailing := tailText(n); strings.TrimSpace(trailing) != "" {
		replacement.AppendChild(wrapInP(trailing))
	}

	if n.Parent != nil {
		replaceNode(n, replacement)
	} else {
		spliceInto(n, replacement)
		replacement = n
	}

	for c := replacement.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			convertBRs(c)
		}
		c = next
	}
	return replacement
}

// paragraphizeText wraps every text fragment directly inside node (its
// own leading text, each child's tail, and its own tail) in a new <p>,
// keeping the original children attached in place. It returns the list
// of newly created <p> elements, which the caller folds into the
// scorable set in place of node itself.
func paragraphizeText(node *html.Node) []*html.Node {
	var created []*html.Node

	replacement := newElement(node.Data)
	replacement.Attr = cloneAttrs(node.Attr)

	if leading := leadingText(node); leading != "" {
		p := wrapInP(leading)
		replacement.AppendChild(p)
		created = append(created, p)
	}

	for _, c := range elementChildren(node) {
		tail := tailText(c)
		detach(c)
		replacement.AppendChild(c)
		if tail != "" {
			p := wrapInP(tail)
			replacement.AppendChild(p)
			created = append(created, p)
		}
	}

	if trailing := tailText(node); trailing != "" {
		p := wrapInP(trailing)
		replacement.AppendChild(p)
		created = append(created, p)
	}

	if node.Parent != nil {
		replaceNode(node, replacement)
	} else {
		spliceInto(node, replacement)
	}

	return created
}
