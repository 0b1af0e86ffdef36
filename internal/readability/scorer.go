package readability

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// initializeNode seeds n's score from a fixed per-tag table plus
// class/id weight, and records it in scores.
func initializeNode(n *html.Node, flags Flags, scores *scoreStore) {
	score := 0
	switch n.Data {
	case "div":
		score = 5
	case "pre", "td", "blockquote":
		score = 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		score = -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		score = -5
	}
	score += classWeight(n, flags)
	scores.set(n, float64(score))
}

var divToPTagsQuery = buildUnionQuery(divToPTags)

func buildUnionQuery(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = ".//" + t
	}
	return strings.Join(parts, "|")
}

func hasDescendantAmong(n *html.Node, query string) bool {
	return len(htmlquery.Find(n, query)) > 0
}

// selectScorable walks body's descendants, stripping unlikely
// candidates and collecting the set of nodes eligible for scoring:
// existing p/td/pre elements, and divs either retagged to p (when they
// hold no block-level descendant) or split into paragraphs around their
// existing block children. Removing a node rebuilds the traversal
// snapshot and steps the cursor back one, reproducing the reference
// NodeIter's visitation order exactly.
func selectScorable(body *html.Node, flags Flags, scores *scoreStore, logf func(string)) []*html.Node {
	var toScore []*html.Node
	nodes := htmlquery.Find(body, ".//*")
	idx := 0
	for idx < len(nodes) {
		n := nodes[idx]
		idx++

		if isUnlikely(n, flags) {
			if logf != nil {
				logf("removing unlikely candidate - " + describeNode(n))
			}
			detach(n)
			nodes = htmlquery.Find(body, ".//*")
			idx--
			continue
		}

		switch n.Data {
		case "p", "td", "pre":
			toScore = append(toScore, n)
		case "div":
			if !hasDescendantAmong(n, divToPTagsQuery) {
				newN := cloneNode(n)
				newN.Data = "p"
				replaceNode(n, newN)
				toScore = append(toScore, n, newN)
			} else {
				toScore = append(toScore, paragraphizeText(n)...)
			}
		}
	}
	return toScore
}

func describeNode(n *html.Node) string {
	id := attr(n, "id")
	class := attr(n, "class")
	return n.Data + "#" + id + "." + class
}

// scoreParas accumulates scores on the parent and grandparent of each
// scorable node with at least 25 characters of text, then hands the
// candidate set to selectTop.
func scoreParas(nodes []*html.Node, body *html.Node, flags Flags, scores *scoreStore) *html.Node {
	var candidates []*html.Node

	for _, n := range nodes {
		parent := n.Parent
		if parent == nil {
			continue
		}
		var grandparent *html.Node
		if parent.Parent != nil {
			grandparent = parent.Parent
		}

		text := InnerText(n, true)
		if utf8.RuneCountInString(text) < 25 {
			continue
		}

		if !scores.isReadable(parent) {
			initializeNode(parent, flags, scores)
			candidates = append(candidates, parent)
		}
		if grandparent != nil && !scores.isReadable(grandparent) {
			initializeNode(grandparent, flags, scores)
			candidates = append(candidates, grandparent)
		}

		contentScore := 1.0
		contentScore += float64(len(strings.Split(text, ",")))
		contentScore += math.Min(math.Floor(float64(utf8.RuneCountInString(text))/100.0), 3)

		scores.add(parent, contentScore)
		if grandparent != nil {
			scores.add(grandparent, contentScore/2.0)
		}
	}

	return selectTop(candidates, body, flags, scores)
}

// selectTop picks the highest-scoring candidate (after a link-density
// discount), synthesizes a wrapper when body itself would otherwise win,
// harvests qualifying siblings into a fresh content div, and runs
// prepArticle over the result.
func selectTop(candidates []*html.Node, body *html.Node, flags Flags, scores *scoreStore) *html.Node {
	var top *html.Node
	for _, n := range candidates {
		discounted := scores.get(n) * (1 - linkDensity(n))
		scores.set(n, discounted)
		if top == nil || discounted > scores.get(top) {
			top = n
		}
	}

	if top == nil || top.Data == "body" {
		newDiv := newElement("div")
		for _, c := range elementChildren(body) {
			detach(c)
			newDiv.AppendChild(c)
		}
		body.AppendChild(newDiv)
		initializeNode(newDiv, flags, scores)
		initializeNode(body, flags, scores)
		top = newDiv
	}

	threshold := math.Max(10, scores.get(top)*0.2)

	parent := top.Parent
	if parent == nil {
		parent = body
	}

	content := newElement("div")
	topClass := attr(top, "class")

	for _, n := range elementChildren(parent) {
		appendNode := n == top

		if !appendNode {
			bonus := 0.0
			if topClass != "" && attr(n, "class") == topClass {
				bonus = scores.get(top) * 0.2
			}
			if scores.isReadable(n) && scores.get(n)+bonus >= threshold {
				appendNode = true
			}
		}

		if !appendNode && n.Data == "p" {
			ld := linkDensity(n)
			text := InnerText(n, true)
			length := utf8.RuneCountInString(text)
			switch {
			case length > 80 && ld < 0.25:
				appendNode = true
			case length < 80 && ld == 0 && rxSentence.MatchString(text):
				appendNode = true
			}
		}

		if appendNode {
			if n.Data != "div" && n.Data != "p" {
				n.Data = "div"
			}
			detach(n)
			content.AppendChild(n)
		}
	}

	prepArticle(content, flags, scores)
	return content
}
