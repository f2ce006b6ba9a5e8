package sdf

import (
	"fmt"

	"github.com/beevik/etree"
)

// node is implemented by every schema node type. Nodes are constructed empty
// and populated exactly once from a single element.
type node[T any] interface {
	*T
	parse(p *parser, el *etree.Element) error
}

// parseElement checks element tag and populates new node from it. Errors of
// named entities are prefixed with entity identity, so the final message
// reads as a path to the offending element.
func parseElement[T any, P node[T]](p *parser, el *etree.Element, tag string) (T, error) {
	var v T
	if el.Tag != tag {
		return v, &UnexpectedElementError{Expected: tag, Found: el.Tag}
	}
	if err := P(&v).parse(p, el); err != nil {
		if name, ok := lookupAttr(el, "name"); ok {
			return v, fmt.Errorf("%s %q: %w", el.Tag, name, err)
		}
		return v, err
	}
	return v, nil
}

// parseMany collects every direct child with given tag in document order.
func parseMany[T any, P node[T]](p *parser, parent *etree.Element, tag string, atLeastOne bool) ([]T, error) {
	children := parent.SelectElements(tag)
	if len(children) == 0 {
		if atLeastOne {
			return nil, &MissingRequiredSequenceError{Element: parent.Tag, Field: tag}
		}
		return nil, nil
	}
	out := make([]T, 0, len(children))
	for _, child := range children {
		v, err := parseElement[T, P](p, child, tag)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseOne requires exactly one child with given tag.
func parseOne[T any, P node[T]](p *parser, parent *etree.Element, tag string) (T, error) {
	var v T
	child, err := lookupChild(parent, tag)
	if err != nil {
		return v, err
	}
	if child == nil {
		return v, &MissingFieldError{Element: parent.Tag, Field: tag}
	}
	return parseElement[T, P](p, child, tag)
}

// parseOneOpt is parseOne returning nil when child is absent.
func parseOneOpt[T any, P node[T]](p *parser, parent *etree.Element, tag string) (*T, error) {
	child, err := lookupChild(parent, tag)
	if err != nil || child == nil {
		return nil, err
	}
	v, err := parseElement[T, P](p, child, tag)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// fields reads all fields of a single element remembering the first failure,
// so node parsers can be written as flat lists of field declarations. Once
// error is recorded every following read is skipped.
type fields struct {
	p   *parser
	el  *etree.Element
	err error
}

func (p *parser) fields(el *etree.Element) *fields {
	return &fields{p: p, el: el}
}

func (f *fields) done() error {
	return f.err
}

// check runs custom parsing step unless previous one already failed.
func (f *fields) check(fn func() error) {
	if f.err == nil {
		f.err = fn()
	}
}

func (f *fields) strings(name string, dst *[]string) {
	if f.err == nil {
		*dst = childValues(f.el, name)
	}
}

func store[T any](f *fields, dst *T, v T, err error) {
	if err != nil {
		f.err = err
		return
	}
	*dst = v
}

func attr[T scalar](f *fields, name string, dst *T) {
	if f.err == nil {
		v, err := attrValue[T](f.el, name)
		store(f, dst, v, err)
	}
}

func optAttr[T scalar](f *fields, name string, dst **T) {
	if f.err == nil {
		v, err := attrOpt[T](f.p, f.el, name)
		store(f, dst, v, err)
	}
}

func value[T scalar](f *fields, name string, dst *T) {
	if f.err == nil {
		v, err := childValue[T](f.el, name)
		store(f, dst, v, err)
	}
}

func optValue[T scalar](f *fields, name string, dst **T) {
	if f.err == nil {
		v, err := childOpt[T](f.p, f.el, name)
		store(f, dst, v, err)
	}
}

func enum[E ~string](f *fields, name string, accepted []string, dst *E) {
	if f.err == nil {
		v, err := childEnum[E](f.el, name, accepted)
		store(f, dst, v, err)
	}
}

func optEnum[E ~string](f *fields, name string, accepted []string, dst **E) {
	if f.err == nil {
		v, err := childEnumOpt[E](f.p, f.el, name, accepted)
		store(f, dst, v, err)
	}
}

func enumAttr[E ~string](f *fields, name string, accepted []string, dst *E) {
	if f.err == nil {
		v, err := attrEnum[E](f.el, name, accepted)
		store(f, dst, v, err)
	}
}

func optEnumAttr[E ~string](f *fields, name string, accepted []string, dst **E) {
	if f.err == nil {
		v, err := attrEnumOpt[E](f.p, f.el, name, accepted)
		store(f, dst, v, err)
	}
}

func one[T any, P node[T]](f *fields, tag string, dst *T) {
	if f.err == nil {
		v, err := parseOne[T, P](f.p, f.el, tag)
		store(f, dst, v, err)
	}
}

func maybe[T any, P node[T]](f *fields, tag string, dst **T) {
	if f.err == nil {
		v, err := parseOneOpt[T, P](f.p, f.el, tag)
		store(f, dst, v, err)
	}
}

func many[T any, P node[T]](f *fields, tag string, dst *[]T) {
	if f.err == nil {
		v, err := parseMany[T, P](f.p, f.el, tag, false)
		store(f, dst, v, err)
	}
}

// union inspects alternatives of a sum type and returns the single one which
// is present. Empty string is returned when none of them is; more than one is an
// error.
func union(el *etree.Element, alternatives ...string) (string, error) {
	var found []string
	for _, tag := range alternatives {
		if len(el.SelectElements(tag)) > 0 {
			found = append(found, tag)
		}
	}
	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", &UnionConflictError{Element: el.Tag, Variants: found}
	}
}
