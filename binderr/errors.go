package binderr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the binding error kind enumerate
type Kind int

const (
	// KindMalformedInput indicates the document text was not well-formed XML
	KindMalformedInput Kind = iota
	// KindMissingAttribute indicates a required attribute was absent
	KindMissingAttribute
	// KindMissingText indicates required element text was absent or empty
	KindMissingText
	// KindMissingNode indicates a required element was absent
	KindMissingNode
	// KindNameMismatch indicates an element name differed from the
	// name declared by the schema
	KindNameMismatch
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed-input"
	case KindMissingAttribute:
		return "missing-attribute"
	case KindMissingText:
		return "missing-text"
	case KindMissingNode:
		return "missing-node"
	case KindNameMismatch:
		return "name-mismatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "malformed-input":
		*k = KindMalformedInput
	case "missing-attribute":
		*k = KindMissingAttribute
	case "missing-text":
		*k = KindMissingText
	case "missing-node":
		*k = KindMissingNode
	case "name-mismatch":
		*k = KindNameMismatch
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error represents a schema binding error.
//
// Name refers to the schema-declared attribute or element name for the
// missing-attribute and missing-node kinds. Expected and Actual are set
// only for the name-mismatch kind.
type Error struct {
	Kind     Kind   `json:"kind"`
	Name     string `json:"name,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Message  string `json:"message,omitempty"`

	cause error
}

func (e Error) Error() string {
	s := e.Kind.String()
	if e.Name != "" {
		s += " name:" + e.Name
	}
	if e.Expected != "" {
		s += " expected:" + e.Expected
	}
	if e.Actual != "" {
		s += " actual:" + e.Actual
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any. Only malformed-input
// errors typically carry one (the tree collaborator's parse error).
func (e Error) Unwrap() error { return e.cause }

// IsKind reports whether err is, or wraps, a binding Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// MalformedInput returns an error indicating the input text could not
// be parsed as XML
func MalformedInput(opts ...Option) *Error {
	e := &Error{Kind: KindMalformedInput}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingAttribute returns an error indicating the named required
// attribute was absent
func MissingAttribute(attributeName string, opts ...Option) *Error {
	e := &Error{Kind: KindMissingAttribute, Name: attributeName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingText returns an error indicating required element text was
// absent or empty
func MissingText(opts ...Option) *Error {
	e := &Error{Kind: KindMissingText}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingNode returns an error indicating the named required element
// was absent
func MissingNode(elementName string, opts ...Option) *Error {
	e := &Error{Kind: KindMissingNode, Name: elementName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NameMismatch returns an error indicating an element's name differed
// from the schema's declared name
func NameMismatch(expected, actual string, opts ...Option) *Error {
	e := &Error{Kind: KindNameMismatch, Expected: expected, Actual: actual}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
