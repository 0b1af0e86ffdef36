// Package sanitize implements the "external cleaner" Document Prep runs
// ahead of the scoring pipeline: it strips script/style/comment/link/
// meta content from raw HTML before parse, while leaving every
// structural and content element the CORE's own clean/clean_conditionally
// stages still need to see (forms, iframes, tables, embeds) so those
// stages can make their own scored decisions about them.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// policy is built once and reused: bluemonday.Policy is safe for
// concurrent use after construction.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"html", "body", "article", "section", "main", "header", "footer", "nav", "aside",
		"div", "span", "p", "br", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "b", "em", "i", "u", "s", "small", "mark", "sub", "sup", "abbr", "cite", "q", "code", "kbd", "samp", "var",
		"ul", "ol", "li", "dl", "dt", "dd",
		"blockquote", "pre", "address",
		"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption", "colgroup", "col",
		"a", "img", "figure", "figcaption",
		"form", "input", "textarea", "select", "option", "button", "label", "fieldset", "legend",
		"iframe", "object", "embed", "param",
		"video", "audio", "source", "track",
		"time", "data",
	)

	p.AllowAttrs("class", "id", "style").Globally()
	p.AllowAttrs("href", "rel", "target").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height", "srcset", "sizes").OnElements("img")
	p.AllowAttrs("src", "width", "height").OnElements("iframe", "video", "audio", "source")
	p.AllowAttrs("data", "type", "width", "height").OnElements("object")
	p.AllowAttrs("src", "type", "width", "height").OnElements("embed")
	p.AllowAttrs("name", "value").OnElements("param", "input", "option", "button")
	p.AllowAttrs("type", "name", "value", "placeholder").OnElements("input", "textarea", "select", "button")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("cite").OnElements("blockquote", "q")
	p.AllowAttrs("datetime").OnElements("time")

	// script, style (the element), comments, link, meta, and processing
	// instructions are simply never added to the allow-list, so
	// bluemonday strips them along with their content.

	return p
}

// Clean strips disallowed markup from raw HTML text, ahead of parsing.
func Clean(htmlText string) string {
	return policy.Sanitize(htmlText)
}
