package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	body := findFirst(doc, "body")
	if body == nil {
		t.Fatal("no body in parsed fragment")
	}
	return body
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestInnerTextOwnAndChildren(t *testing.T) {
	body := parseFragment(t, `<div id="d">hello <span>world</span> tail</div>`)
	div := findFirst(body, "div")
	assert.Equal(t, " hello  world  tail", InnerText(div, false))
}

func TestInnerTextIncludesNodeTail(t *testing.T) {
	body := parseFragment(t, `<div><p>first</p>after</div>`)
	p := findFirst(body, "p")
	// p's own call folds in its tail ("after"), per the reference quirk.
	assert.Equal(t, " first after", InnerText(p, false))
}

func TestInnerTextNormalize(t *testing.T) {
	body := parseFragment(t, `<p>a   b\t\tc</p>`)
	p := findFirst(body, "p")
	text := InnerText(p, true)
	assert.NotContains(t, text, "  ")
}

func TestLinkDensityNoLinks(t *testing.T) {
	body := parseFragment(t, `<p>just plain text here</p>`)
	p := findFirst(body, "p")
	assert.Equal(t, 0.0, linkDensity(p))
}

func TestLinkDensityAllLink(t *testing.T) {
	body := parseFragment(t, `<p><a href="#">all the text is a link</a></p>`)
	p := findFirst(body, "p")
	assert.InDelta(t, 1.0, linkDensity(p), 0.01)
}

func TestClassWeightPositiveAndNegative(t *testing.T) {
	body := parseFragment(t, `<div class="article-content">x</div><div class="sidebar-widget">y</div>`)
	pos := findFirst(body, "div")
	assert.Equal(t, 25, classWeight(pos, FlagAll))

	var neg *html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "div" && attr(c, "class") == "sidebar-widget" {
			neg = c
		}
	}
	assert.Equal(t, -25, classWeight(neg, FlagAll))
}

func TestClassWeightDisabledByFlag(t *testing.T) {
	body := parseFragment(t, `<div class="article-content">x</div>`)
	div := findFirst(body, "div")
	assert.Equal(t, 0, classWeight(div, FlagNone))
}

func TestCharCount(t *testing.T) {
	body := parseFragment(t, `<p>a, b, c, d</p>`)
	p := findFirst(body, "p")
	assert.Equal(t, 3, charCount(p, ","))
}
