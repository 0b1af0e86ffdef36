package readability

import (
	"fmt"
	"unicode/utf8"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// clean removes every descendant with the given tag name, except for
// object/embed elements that reference a known video host — the one
// exemption the reference cleaner makes to an otherwise unconditional
// strip.
func clean(node *html.Node, tag string) {
	isEmbed := tag == "object" || tag == "embed"
	for _, n := range htmlquery.Find(node, ".//"+tag) {
		if isEmbed && anyAttrMatchesVideo(n) {
			continue
		}
		detach(n)
	}
}

func anyAttrMatchesVideo(n *html.Node) bool {
	for _, a := range n.Attr {
		if rxVideos.MatchString(a.Val) {
			return true
		}
	}
	return false
}

// cleanConditionally removes descendants of the given tag that score
// negatively, or that look like boilerplate by a handful of structural
// ratios (image/paragraph count, link density, embedded video count).
// A no-op unless FlagCleanConditionally is set.
func cleanConditionally(node *html.Node, tag string, flags Flags, scores *scoreStore) {
	if flags&FlagCleanConditionally == 0 {
		return
	}

	for _, n := range htmlquery.Find(node, ".//"+tag) {
		if n == node {
			continue
		}

		weight := float64(classWeight(n, flags))
		score := 0.0
		if scores.isReadable(n) {
			score = scores.get(n)
		}
		if weight+score < 0 {
			detach(n)
			continue
		}

		if charCount(n, ",") >= 10 {
			continue
		}

		numP := len(htmlquery.Find(n, ".//p"))
		numImg := len(htmlquery.Find(n, ".//img"))
		numLi := len(htmlquery.Find(n, ".//li")) - 100
		numInput := len(htmlquery.Find(n, ".//input"))
		numEmbeds := 0
		for _, em := range htmlquery.Find(n, ".//embed") {
			if rxVideos.MatchString(attr(em, "src")) {
				numEmbeds++
			}
		}
		ld := linkDensity(n)
		contentLen := utf8.RuneCountInString(InnerText(n, true))

		remove := false
		switch {
		case numImg > numP:
			remove = true
		case numLi > numP && tag != "ul" && tag != "ol":
			remove = true
		case numInput > numP/3:
			remove = true
		case contentLen < 25 && (numImg == 0 || numImg > 2):
			remove = true
		case weight < 25 && ld > 0.2:
			remove = true
		case weight >= 25 && ld > 0.5:
			remove = true
		case (numEmbeds == 1 && contentLen < 75) || numEmbeds > 1:
			remove = true
		}
		if remove {
			detach(n)
		}
	}
}

// cleanHeaders strips h0 (never matches), h1 and h2 elements that carry
// negative class weight or excessive link density.
func cleanHeaders(node *html.Node, flags Flags) {
	for i := 0; i < 3; i++ {
		tag := fmt.Sprintf("h%d", i)
		for _, n := range htmlquery.Find(node, ".//"+tag) {
			if classWeight(n, flags) < 0 || linkDensity(n) > 0.33 {
				detach(n)
			}
		}
	}
}

// cleanStyles strips the style attribute from n and every descendant.
func cleanStyles(n *html.Node) {
	if n.Type == html.ElementNode {
		removeAttr(n, "style")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			cleanStyles(c)
		}
	}
}

// prepArticle runs the full cleanup dispatch over a freshly harvested
// content subtree: style stripping, conditional cleanup of forms,
// unconditional removal of non-video objects, iframes, every h1 and a
// lone h2, header cleanup, conditional cleanup of tables/lists/divs,
// and removal of paragraphs that carry text but no img/embed/object.
func prepArticle(content *html.Node, flags Flags, scores *scoreStore) {
	cleanStyles(content)
	cleanConditionally(content, "form", flags, scores)
	clean(content, "object")
	clean(content, "h1")
	if len(htmlquery.Find(content, ".//h2")) == 1 {
		clean(content, "h2")
	}
	clean(content, "iframe")
	cleanHeaders(content, flags)
	cleanConditionally(content, "table", flags, scores)
	cleanConditionally(content, "ul", flags, scores)
	cleanConditionally(content, "div", flags, scores)

	for _, p := range htmlquery.Find(content, ".//p") {
		numImg := len(htmlquery.Find(p, ".//img"))
		numEmbed := len(htmlquery.Find(p, ".//embed"))
		numObject := len(htmlquery.Find(p, ".//object"))
		// Reproduced faithfully from the reference: a media-free <p> is
		// dropped when it HAS inner text, not when it lacks it.
		if numImg == 0 && numEmbed == 0 && numObject == 0 && InnerText(p, false) != "" {
			detach(p)
		}
	}
}
