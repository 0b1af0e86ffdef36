// Package readable extracts the main content subtree from an HTML
// document using a fixed set of structural and text-density heuristics:
// candidate nodes are scored by text length, comma count, and class/id
// hints, unlikely boilerplate is stripped, and the highest-scoring
// region plus its qualifying siblings is returned as a pruned HTML
// fragment.
//
// Usage:
//
//	extractor := readable.New()
//	article, err := extractor.ExtractFromHTML(rawHTML, nil)
//	fmt.Println(article.Content)
package readable

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"golang.org/x/net/html"

	"github.com/arnegard/readable/internal/readability"
)

// Extractor extracts Articles from HTML input.
type Extractor interface {
	// ExtractFromHTML extracts article content from an HTML string.
	// options may be nil to use the extractor's defaults.
	ExtractFromHTML(htmlInput string, options *ExtractionOptions) (*Article, error)

	// ExtractFromReader reads r fully and extracts from its contents.
	ExtractFromReader(r io.Reader, options *ExtractionOptions) (*Article, error)
}

// Option configures an Extractor built with New.
type Option func(*ExtractionOptions)

// WithMinContentLength overrides the character threshold the relaxation
// loop uses to decide whether a pass's result is long enough to accept.
func WithMinContentLength(n int) Option {
	return func(o *ExtractionOptions) {
		o.MinContentLength = n
	}
}

// WithLogger sets the sink for single-line debug messages emitted
// during extraction. Pass nil to silence logging (the default).
func WithLogger(logger func(string)) Option {
	return func(o *ExtractionOptions) {
		o.Logger = logger
	}
}

// WithMaxElemsToParse bounds the number of elements Document Prep will
// process before giving up, guarding against pathological input.
func WithMaxElemsToParse(n int) Option {
	return func(o *ExtractionOptions) {
		o.MaxElemsToParse = n
	}
}

// WithTimeout sets the extraction timeout. Defaults to 30s.
func WithTimeout(timeout time.Duration) Option {
	return func(o *ExtractionOptions) {
		o.Timeout = timeout
	}
}

// WithContentType sets the Content-Type header value consulted for
// encoding detection before chardet's statistical fallback.
func WithContentType(contentType string) Option {
	return func(o *ExtractionOptions) {
		o.ContentType = contentType
	}
}

type articleExtractor struct {
	options ExtractionOptions
}

// ExtractFromHTML runs extraction in a goroutine and bounds it by the
// configured timeout, mirroring the reference extractor's timeout
// pattern since the underlying pipeline has no cancellation points of
// its own to hook a context into.
func (e *articleExtractor) ExtractFromHTML(htmlInput string, options *ExtractionOptions) (*Article, error) {
	if options == nil {
		options = &e.options
	}

	type result struct {
		article *Article
		err     error
	}
	resultCh := make(chan result, 1)

	go func() {
		article, err := extract(htmlInput, options)
		resultCh <- result{article, err}
	}()

	select {
	case r := <-resultCh:
		return r.article, r.err
	case <-time.After(options.Timeout):
		return nil, fmt.Errorf("readable: extraction timed out after %v", options.Timeout)
	}
}

func (e *articleExtractor) ExtractFromReader(r io.Reader, options *ExtractionOptions) (*Article, error) {
	if options == nil {
		options = &e.options
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("readable: reading input: %w", err)
	}
	return e.ExtractFromHTML(string(raw), options)
}

func extract(htmlInput string, options *ExtractionOptions) (*Article, error) {
	internalOpts := &readability.Options{
		MinContentLength: options.MinContentLength,
		MaxElemsToParse:  options.MaxElemsToParse,
		Logger:           options.Logger,
	}

	contentNode, err := readability.Extract([]byte(htmlInput), options.ContentType, internalOpts)
	if err != nil {
		return nil, err
	}

	return newArticle(contentNode), nil
}

func newArticle(content *html.Node) *Article {
	text := readability.InnerText(content, true)
	return &Article{
		Content:     renderHTML(content),
		TextContent: text,
		Length:      len([]rune(text)),
	}
}

func renderHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// New creates an Extractor configured with opts, falling back to
// DefaultOptions for anything not overridden.
func New(opts ...Option) Extractor {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &articleExtractor{options: options}
}
