package readability

import (
	"strings"
	"unicode/utf8"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// InnerText concatenates, in document order, n's own text, the inner
// text of each child (recursively, each already carrying its own tail),
// and finally n's own tail — the text-node siblings that follow n before
// the next element sibling in n's parent. This matches the reference
// implementation's get_inner_text exactly, tail-inclusion quirk and all:
// the returned string for a node spans slightly past the node itself.
func InnerText(n *html.Node, normalize bool) string {
	text := innerTextRec(n)
	if normalize {
		text = rxNormalize.ReplaceAllString(text, " ")
	}
	return text
}

func innerTextRec(n *html.Node) string {
	var b strings.Builder
	sawElement := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			sawElement = true
			b.WriteString(innerTextRec(c))
		case html.TextNode:
			if !sawElement && c.Data != "" {
				b.WriteString(" ")
				b.WriteString(c.Data)
			}
		}
	}
	if tail := tailText(n); tail != "" {
		b.WriteString(" ")
		b.WriteString(tail)
	}
	return b.String()
}

// charCount counts the number of occurrences of sep in n's normalized
// inner text, equal to the reference's split-and-count-minus-one
// definition (an empty string yields 0).
func charCount(n *html.Node, sep string) int {
	text := InnerText(n, true)
	return strings.Count(text, sep)
}

// linkDensity is the fraction of n's inner text length contributed by
// its descendant anchors' inner text. Zero when n has no text at all.
func linkDensity(n *html.Node) float64 {
	text := InnerText(n, true)
	totalLen := utf8.RuneCountInString(text)
	if totalLen == 0 {
		return 0
	}
	linkLen := 0
	for _, a := range htmlquery.Find(n, ".//a") {
		linkLen += utf8.RuneCountInString(InnerText(a, true))
	}
	return float64(linkLen) / float64(totalLen)
}

// classWeight scores a node's class and id attributes against the
// positive/negative category regexes. Returns 0 unconditionally when
// FlagClassWeight is off.
func classWeight(n *html.Node, flags Flags) int {
	if flags&FlagClassWeight == 0 {
		return 0
	}
	weight := 0
	for _, val := range []string{attr(n, "class"), attr(n, "id")} {
		if val == "" {
			continue
		}
		if rxNegative.MatchString(val) {
			weight -= 25
		}
		if rxPositive.MatchString(val) {
			weight += 25
		}
	}
	return weight
}
