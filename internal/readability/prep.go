package readability

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/arnegard/readable/internal/charset"
	"github.com/arnegard/readable/internal/sanitize"
)

// prepDocument decodes the raw input to UTF-8, runs the external
// cleaner over it, parses it, synthesizes a <body> when the source lacks one, strips
// nodes hidden via inline style or the hidden attribute, tags the body
// with a sentinel id, and prunes body's siblings before handing off to
// convertBRs. Every controller pass starts here, fresh from raw bytes.
func prepDocument(raw []byte, contentType string, opts *Options) (*html.Node, error) {
	if len(raw) == 0 {
		return nil, ErrNoDocument
	}

	decoded := charset.DecodeToUTF8(raw, contentType)
	cleaned := sanitize.Clean(decoded)

	doc, err := html.Parse(strings.NewReader(cleaned))
	if err != nil {
		return nil, WrapError(err, ErrorTypeParse, "prepDocument", "failed to parse HTML")
	}

	body := htmlquery.FindOne(doc, "//body")
	if body == nil {
		body = synthesizeBody(doc)
	}

	if opts != nil && opts.MaxElemsToParse > 0 {
		if n := len(htmlquery.Find(body, ".//*")); n > opts.MaxElemsToParse {
			return nil, WrapError(
				fmt.Errorf("document has %d elements, exceeds limit of %d", n, opts.MaxElemsToParse),
				ErrorTypeParse, "prepDocument", "input too large",
			)
		}
	}

	if opts == nil || !opts.SkipVisibilityPrune {
		stripInvisible(body)
	}

	setAttr(body, "id", readableBodyID)
	pruneSiblings(body)

	return convertBRs(body), nil
}

// synthesizeBody builds a <body> wrapping every top-level child of
// <html> (or of the document root, if even that is missing), for input
// that is a bare fragment rather than a full document.
func synthesizeBody(doc *html.Node) *html.Node {
	root := htmlquery.FindOne(doc, "//html")
	if root == nil {
		root = doc
	}

	body := newElement("body")
	for _, c := range topLevelNodes(root) {
		detach(c)
		body.AppendChild(c)
	}
	root.AppendChild(body)
	return body
}

func topLevelNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// stripInvisible removes nodes hidden via an inline display:none style
// or the hidden attribute, using goquery's CSS-selector matching over
// the same node tree (no re-parse — NewDocumentFromNode wraps body
// in place).
func stripInvisible(body *html.Node) {
	doc := goquery.NewDocumentFromNode(body)
	doc.Find(`[style*="display:none"],[style*="display: none"],[hidden]`).Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})
}

// pruneSiblings removes every sibling of body within body's parent,
// leaving body as the sole surviving child.
func pruneSiblings(body *html.Node) {
	parent := body.Parent
	if parent == nil {
		return
	}
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		if c != body {
			detach(c)
		}
		c = next
	}
}
