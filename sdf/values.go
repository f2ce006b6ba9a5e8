package sdf

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Primitive readers pulling typed values out of attributes, element text and
// named sub-elements. Required variants fail on absence, optional variants
// return nil pointer. Presence is never conflated with zero value.

type scalar interface {
	string | int | float64 | bool
}

var boolNames = []string{"true", "false"}

// convert turns raw text into T. Numeric and string text is trimmed. Booleans
// are treated as enumeration of exactly "true" and "false".
func convert[T scalar](element, field, raw string) (T, error) {
	var v T
	raw = strings.TrimSpace(raw)
	switch out := any(&v).(type) {
	case *string:
		*out = raw
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return v, &TypeConversionError{Element: element, Field: field, Value: raw, Type: "int", Err: numErr(err)}
		}
		*out = n
	case *float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return v, &TypeConversionError{Element: element, Field: field, Value: raw, Type: "double", Err: numErr(err)}
		}
		*out = f
	case *bool:
		switch raw {
		case "true":
			*out = true
		case "false":
			*out = false
		default:
			return v, &InvalidEnumValueError{Element: element, Field: field, Value: raw, Accepted: boolNames}
		}
	}
	return v, nil
}

func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

// parseEnum validates raw value against accepted set, comparison is case
// sensitive.
func parseEnum[E ~string](element, field, raw string, accepted []string) (E, error) {
	raw = strings.TrimSpace(raw)
	if !slices.Contains(accepted, raw) {
		return "", &InvalidEnumValueError{Element: element, Field: field, Value: raw, Accepted: accepted}
	}
	return E(raw), nil
}

func lookupAttr(el *etree.Element, name string) (string, bool) {
	a := el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// lookupChild returns singleton sub-element or nil when there is none.
func lookupChild(el *etree.Element, name string) (*etree.Element, error) {
	children := el.SelectElements(name)
	switch len(children) {
	case 0:
		return nil, nil
	case 1:
		return children[0], nil
	default:
		return nil, &DuplicateElementError{Element: el.Tag, Field: name, Count: len(children)}
	}
}

// tolerate decides what to do with malformed optional value: in lenient mode
// it is logged and dropped, otherwise error is returned as is.
func (p *parser) tolerate(el *etree.Element, field string, err error) error {
	if err == nil || !p.lenient {
		return err
	}
	var (
		conv *TypeConversionError
		enum *InvalidEnumValueError
	)
	if errors.As(err, &conv) || errors.As(err, &enum) {
		p.log.Warn("Malformed optional value, ignoring", zap.String("element", el.Tag), zap.String("field", field), zap.Error(err))
		return nil
	}
	return err
}

func attrValue[T scalar](el *etree.Element, name string) (T, error) {
	raw, ok := lookupAttr(el, name)
	if !ok {
		var zero T
		return zero, &MissingFieldError{Element: el.Tag, Field: name}
	}
	return convert[T](el.Tag, name, raw)
}

func attrOpt[T scalar](p *parser, el *etree.Element, name string) (*T, error) {
	raw, ok := lookupAttr(el, name)
	if !ok {
		return nil, nil
	}
	v, err := convert[T](el.Tag, name, raw)
	if err != nil {
		return nil, p.tolerate(el, name, err)
	}
	return &v, nil
}

func textValue[T scalar](el *etree.Element) (T, error) {
	return convert[T](el.Tag, el.Tag, el.Text())
}

func childValue[T scalar](el *etree.Element, name string) (T, error) {
	var zero T
	child, err := lookupChild(el, name)
	if err != nil {
		return zero, err
	}
	if child == nil {
		return zero, &MissingFieldError{Element: el.Tag, Field: name}
	}
	return convert[T](el.Tag, name, child.Text())
}

func childOpt[T scalar](p *parser, el *etree.Element, name string) (*T, error) {
	child, err := lookupChild(el, name)
	if err != nil || child == nil {
		return nil, err
	}
	v, err := convert[T](el.Tag, name, child.Text())
	if err != nil {
		return nil, p.tolerate(el, name, err)
	}
	return &v, nil
}

func attrEnum[E ~string](el *etree.Element, name string, accepted []string) (E, error) {
	raw, ok := lookupAttr(el, name)
	if !ok {
		return "", &MissingFieldError{Element: el.Tag, Field: name}
	}
	return parseEnum[E](el.Tag, name, raw, accepted)
}

func attrEnumOpt[E ~string](p *parser, el *etree.Element, name string, accepted []string) (*E, error) {
	raw, ok := lookupAttr(el, name)
	if !ok {
		return nil, nil
	}
	v, err := parseEnum[E](el.Tag, name, raw, accepted)
	if err != nil {
		return nil, p.tolerate(el, name, err)
	}
	return &v, nil
}

func childEnum[E ~string](el *etree.Element, name string, accepted []string) (E, error) {
	child, err := lookupChild(el, name)
	if err != nil {
		return "", err
	}
	if child == nil {
		return "", &MissingFieldError{Element: el.Tag, Field: name}
	}
	return parseEnum[E](el.Tag, name, child.Text(), accepted)
}

func childEnumOpt[E ~string](p *parser, el *etree.Element, name string, accepted []string) (*E, error) {
	child, err := lookupChild(el, name)
	if err != nil || child == nil {
		return nil, err
	}
	v, err := parseEnum[E](el.Tag, name, child.Text(), accepted)
	if err != nil {
		return nil, p.tolerate(el, name, err)
	}
	return &v, nil
}

// childValues collects text of every sub-element with given name, for
// repeated string fields such as script uri or gripper links.
func childValues(el *etree.Element, name string) []string {
	var out []string
	for _, child := range el.SelectElements(name) {
		out = append(out, strings.TrimSpace(child.Text()))
	}
	return out
}

// joinNames renders alternatives of a choice for diagnostics.
func joinNames(names []string) string {
	return strings.Join(names, "|")
}
