package readability

import (
	"errors"
	"fmt"
)

// ErrorType categorizes a wrapped error by the pipeline stage that
// produced it, so callers can distinguish a decode failure from a
// parse failure without string-matching messages.
type ErrorType string

const (
	ErrorTypeCharset    ErrorType = "charset"
	ErrorTypeSanitize   ErrorType = "sanitize"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeExtraction ErrorType = "extraction"
)

// ErrNoDocument is returned when the input contains no bytes to parse.
var ErrNoDocument = errors.New("readability: empty document")

// WrappedError carries the pipeline stage and function name alongside
// the original error, mirroring the teacher's error-wrapping shape.
type WrappedError struct {
	Type     ErrorType
	Func     string
	Message  string
	Original error
}

func (e *WrappedError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("readability: %s: %s: %s: %v", e.Type, e.Func, e.Message, e.Original)
	}
	return fmt.Sprintf("readability: %s: %s: %s", e.Type, e.Func, e.Message)
}

func (e *WrappedError) Unwrap() error {
	return e.Original
}

// WrapError wraps err with stage/function context. Returns nil when err
// is nil, so call sites can wrap unconditionally.
func WrapError(err error, errType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	return &WrappedError{Type: errType, Func: funcName, Message: message, Original: err}
}
