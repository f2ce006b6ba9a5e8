package sdf

import (
	"fmt"
	"strings"
)

// Typed parse errors. All of them are returned as pointers and may be wrapped
// with element path information, use errors.As to inspect them.

// MissingFieldError reports absent required attribute, element or
// sub-element.
type MissingFieldError struct {
	Element string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing in <%s>", e.Field, e.Element)
}

// TypeConversionError reports value which is present but cannot be converted
// to the declared scalar type.
type TypeConversionError struct {
	Element string
	Field   string
	Value   string
	Type    string
	Err     error
}

func (e *TypeConversionError) Error() string {
	msg := fmt.Sprintf("value %q of field %q in <%s> is not a valid %s", e.Value, e.Field, e.Element, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeConversionError) Unwrap() error {
	return e.Err
}

// InvalidEnumValueError reports value outside of the accepted set. Accepted
// is kept for user facing diagnostics.
type InvalidEnumValueError struct {
	Element  string
	Field    string
	Value    string
	Accepted []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid value %q of field %q in <%s>, accepted values: [%s]",
		e.Value, e.Field, e.Element, strings.Join(e.Accepted, ", "))
}

// DuplicateElementError reports singleton sub-element which appears more
// than once under the same parent.
type DuplicateElementError struct {
	Element string
	Field   string
	Count   int
}

func (e *DuplicateElementError) Error() string {
	return fmt.Sprintf("element <%s> may appear at most once in <%s>, found %d", e.Field, e.Element, e.Count)
}

// UnexpectedElementError reports node whose tag does not match the tag
// expected by the caller.
type UnexpectedElementError struct {
	Expected string
	Found    string
}

func (e *UnexpectedElementError) Error() string {
	return fmt.Sprintf("unexpected element <%s>, expected <%s>", e.Found, e.Expected)
}

// MissingRequiredSequenceError reports sequence which must have at least
// one entry but has none.
type MissingRequiredSequenceError struct {
	Element string
	Field   string
}

func (e *MissingRequiredSequenceError) Error() string {
	return fmt.Sprintf("at least one <%s> is required in <%s>", e.Field, e.Element)
}

// UnionConflictError reports element with more than one alternative of a
// union populated (geometry shapes, physics engines, sensor blocks).
type UnionConflictError struct {
	Element  string
	Variants []string
}

func (e *UnionConflictError) Error() string {
	return fmt.Sprintf("<%s> must have at most one of its alternatives, found [%s]", e.Element, strings.Join(e.Variants, ", "))
}

// UnresolvedReferenceError reports joint parent or child name which does not
// match any link of the model.
type UnresolvedReferenceError struct {
	Model string
	Joint string
	Role  string // "parent" or "child"
	Link  string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("model %q: joint %q %s link %q does not exist", e.Model, e.Joint, e.Role, e.Link)
}
