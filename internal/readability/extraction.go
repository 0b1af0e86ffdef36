package readability

import (
	"unicode/utf8"

	"golang.org/x/net/html"
)

// defaultMinContentLength is the character threshold the relaxation
// loop uses when Options.MinContentLength is unset.
const defaultMinContentLength = 250

// Options configures an extraction run.
type Options struct {
	// MinContentLength is the inner-text length (in runes) a pass's
	// result must reach before the controller stops relaxing flags.
	// Zero means defaultMinContentLength.
	MinContentLength int

	// MaxElemsToParse bounds the size of input the controller will
	// process; zero means unbounded. Carried over from the teacher's
	// tuning knobs for the same reason it has one: bound pathological
	// input before it reaches the scoring passes.
	MaxElemsToParse int

	// Logger receives single-line debug messages, already prefixed.
	// Defaults to a no-op.
	Logger func(string)

	// SkipVisibilityPrune disables the hidden-node strip in Document
	// Prep, for callers that want the scoring pipeline's own heuristics
	// to be the only filter.
	SkipVisibilityPrune bool
}

func (o *Options) minContentLength() int {
	if o == nil || o.MinContentLength <= 0 {
		return defaultMinContentLength
	}
	return o.MinContentLength
}

func (o *Options) logf(msg string) {
	if o == nil || o.Logger == nil {
		return
	}
	o.Logger("readable: " + msg)
}

// Extract runs the full extraction pipeline over raw input and returns
// the selected content subtree, rooted at a synthetic <div>.
func Extract(raw []byte, contentType string, opts *Options) (*html.Node, error) {
	return grabArticle(raw, contentType, opts)
}

// grabArticle is the Extraction Controller: it runs Document Prep,
// selection, and scoring with a full flag set, and relaxes one flag at
// a time — re-running Document Prep from the original bytes each
// pass — until either the result reaches MinContentLength or every
// flag has been relaxed.
func grabArticle(raw []byte, contentType string, opts *Options) (*html.Node, error) {
	if len(raw) == 0 {
		return nil, ErrNoDocument
	}

	queue := append([]Flags(nil), relaxationQueue...)
	flags := FlagAll
	minLen := opts.minContentLength()

	var content *html.Node
	for {
		clear := queue[0]
		queue = queue[1:]
		flags &^= clear

		body, err := prepDocument(raw, contentType, opts)
		if err != nil {
			return nil, WrapError(err, ErrorTypeExtraction, "grabArticle", "document prep failed")
		}

		scores := newScoreStore()
		toScore := selectScorable(body, flags, scores, opts.logf)
		content = scoreParas(toScore, body, flags, scores)

		if len(queue) == 0 {
			return content, nil
		}

		if utf8.RuneCountInString(InnerText(content, false)) >= minLen {
			return content, nil
		}
	}
}
