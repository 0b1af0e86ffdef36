package readable

import "time"

// Article is the extracted result of a single extraction run.
type Article struct {
	// Content is the serialized HTML of the selected content subtree.
	Content string `json:"content"`

	// TextContent is the subtree's normalized inner text.
	TextContent string `json:"text_content"`

	// Length is the rune length of TextContent.
	Length int `json:"length"`
}

// ExtractionOptions configures a single extraction run.
type ExtractionOptions struct {
	// MinContentLength overrides the relaxation loop's acceptance
	// threshold (inner-text rune count). Zero uses the pipeline's
	// built-in default of 250.
	MinContentLength int

	// MaxElemsToParse bounds how large a document Document Prep will
	// accept before returning an error, guarding against pathological
	// input. Zero means unbounded.
	MaxElemsToParse int

	// ContentType is an optional Content-Type header value consulted
	// for encoding detection ahead of chardet's statistical fallback.
	ContentType string

	// Logger receives single-line debug messages. Nil disables logging.
	Logger func(string)

	// Timeout bounds how long a single extraction run is allowed to
	// take before ExtractFromHTML gives up and returns an error.
	Timeout time.Duration
}

// DefaultOptions returns the options New uses when no Option overrides
// them: no content-length override, no element cap, silent, 30s timeout.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		Timeout: 30 * time.Second,
	}
}
