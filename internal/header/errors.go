package header

import "fmt"

// Kind classifies why a header failed validation.
type Kind int

const (
	// StartDelimiterMissing means no start delimiter after the optional preamble.
	StartDelimiterMissing Kind = iota + 1
	// EndDelimiterMissing means the header has no closing delimiter.
	EndDelimiterMissing
	// UnexpectedEOF means the read window ended inside the header.
	UnexpectedEOF
	// MissingRequiredField means a required field was skipped.
	MissingRequiredField
	// FieldOutOfOrder means a known field appears before its schema position.
	FieldOutOfOrder
	// UnexpectedTrailingLines means extra lines follow the last field.
	UnexpectedTrailingLines
	// ExpectedContinuation means a multi-line block ended too early.
	ExpectedContinuation
	// MalformedMultiline means a block line does not match the expected text.
	MalformedMultiline
	// MissingBlankSeparator means the blank line after Author is absent.
	MissingBlankSeparator
	// LineFormatViolation means a line breaks the lexical or column layout.
	LineFormatViolation
	// FieldValidationFailure means a field's value failed its validator.
	FieldValidationFailure
)

var kindRules = map[Kind]string{
	StartDelimiterMissing:   "start-delimiter-missing",
	EndDelimiterMissing:     "end-delimiter-missing",
	UnexpectedEOF:           "unexpected-eof",
	MissingRequiredField:    "missing-required-field",
	FieldOutOfOrder:         "field-out-of-order",
	UnexpectedTrailingLines: "unexpected-trailing-lines",
	ExpectedContinuation:    "expected-continuation",
	MalformedMultiline:      "malformed-multiline",
	MissingBlankSeparator:   "missing-blank-separator",
	LineFormatViolation:     "line-format",
	FieldValidationFailure:  "field-validation",
}

// Rule returns the stable identifier used in reports and SARIF output.
func (k Kind) Rule() string {
	if r, ok := kindRules[k]; ok {
		return r
	}
	return fmt.Sprintf("kind-%d", int(k))
}

func (k Kind) String() string { return k.Rule() }

// Error is the single validation failure recorded for a file.
type Error struct {
	Kind  Kind
	File  string
	Line  int    // 1-based; 0 if the file had no lines at all
	Field string // schema field involved, if any
	Msg   string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: Line %d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

func errorf(kind Kind, file string, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, File: file, Line: line, Msg: fmt.Sprintf(format, args...)}
}
