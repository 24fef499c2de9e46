package tracab

import (
	"fmt"
	"strings"
)

// ParseError reports a TF05 document that could not be read or parsed.
// It covers a missing file, markup that is not well formed, and a root
// element other than TracabDocument.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parsing TF05 document: %v", e.Err)
	}
	return fmt.Sprintf("parsing TF05 document %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a required attribute or element that is absent or
// unusable on an otherwise well-formed document.
type SchemaError struct {
	Element string
	Field   string
	Reason  string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("bad %s on %s: %s", e.Field, e.Element, e.Reason)
	}
	return fmt.Sprintf("missing %s on %s", e.Field, e.Element)
}

// NotFoundError reports a selector that matched no entity. Resolution is
// all-or-nothing; there is no partial result to fall back to.
type NotFoundError struct {
	Entity   string
	Selector string
	Hint     string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found for selector %q", e.Entity, e.Selector)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// InvalidKindError reports a heatmap kind, side, or span outside its
// closed enumeration. Valid always lists the accepted values.
type InvalidKindError struct {
	Kind  string
	Valid []string
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid heatmap kind %q: must be one of (%s)", e.Kind, strings.Join(e.Valid, ", "))
}

// FormatError reports a heatmap string that does not decode into a grid.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "bad heatmap string: " + e.Reason }
