// Package readability implements the scoring-and-selection engine that
// turns a parsed HTML document into a single best-guess content subtree.
package readability

import "regexp"

// Flags control which heuristic passes of the pipeline are active for a
// given pass. The Extraction Controller starts with all of them set and
// clears one per retry.
type Flags uint8

const (
	FlagNone Flags = 0

	// FlagStripUnlikely enables removal of nodes classified as unlikely
	// candidates for article content.
	FlagStripUnlikely Flags = 1 << iota >> 1

	// FlagClassWeight enables class/id based score adjustment.
	FlagClassWeight

	// FlagCleanConditionally enables the conditional cleanup stage.
	FlagCleanConditionally
)

// FlagAll is the flag set the first pass of every extraction runs with.
const FlagAll = FlagStripUnlikely | FlagClassWeight | FlagCleanConditionally

// relaxationQueue is the order in which flags are cleared across retries.
// The leading FlagNone is load-bearing: it makes the first iteration a
// no-op clear, so the first pass runs with every flag on.
var relaxationQueue = []Flags{FlagNone, FlagStripUnlikely, FlagClassWeight, FlagCleanConditionally}

// Category regexes, matched case-insensitively against a node's class
// and id: isUnlikely matches the two joined by a space, classWeight
// matches each attribute separately. These are fixed constants, not
// configurable, and compiled once at package init.
var (
	rxUnlikely = regexp.MustCompile(`(?i)combx|comment|community|disqus|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter`)
	rxMaybe    = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)
	rxPositive = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`)
	rxNegative = regexp.MustCompile(`(?i)combx|comment|com-|contact|foot|footer|footnote|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget`)

	// rxVideos matches the handful of video embed hosts: clean() keeps
	// object/embed elements with such a URL in any attribute, and
	// cleanConditionally() counts <embed>s whose src matches it.
	rxVideos = regexp.MustCompile(`(?i)http://(www\.)?(youtube|vimeo)\.com`)

	// rxNormalize collapses runs of whitespace in inner_text output.
	rxNormalize = regexp.MustCompile(`\s{2,}`)

	// rxSentence matches a period followed by a space or the end of the
	// text, used by the
	// sibling-harvesting heuristic for short low-link-density paragraphs.
	rxSentence = regexp.MustCompile(`\.( |$)`)
)

// divToPTags is the set of descendant tags whose presence keeps a <div>
// from being retagged wholesale to a <p> during select_scorable.
var divToPTags = []string{"a", "blockquote", "dl", "div", "img", "ol", "p", "pre", "table", "ul"}

const readableBodyID = "readableBody"
