package sdf

import (
	"fmt"
	"reflect"

	"sdfc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns readable tree of the parsed document. Every value which was
// present in the source is shown, absent optional values are omitted. It
// exists for manual inspection and is not valid SDF.
func (r *Root) String() string {
	if r == nil {
		return "<nil Root>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.Line(0, "SDF version=%q", r.Version)
	tw.fields(1, reflect.ValueOf(r).Elem(), "Version")
	return tw.String()
}

// String returns readable tree of a single model.
func (m *Model) String() string {
	if m == nil {
		return "<nil Model>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.node(0, "Model", reflect.ValueOf(m).Elem())
	return tw.String()
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

type kinded interface {
	Kind() string
}

// node dumps one value under label. Composite geometric values have compact
// textual form and are written on a single line, union members are labeled
// with the alternative they hold.
func (tw treeWriter) node(depth int, label string, v reflect.Value) {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		if k, ok := v.Interface().(kinded); ok {
			label = fmt.Sprintf("%s <%s>", label, k.Kind())
		}
		tw.node(depth, label, v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		tw.node(depth, label, v.Elem())
	case reflect.Slice:
		for i := range v.Len() {
			tw.node(depth, fmt.Sprintf("%s[%d]", label, i), v.Index(i))
		}
	case reflect.Struct:
		if v.Type().Implements(stringerType) {
			tw.Field(depth, label, v.Interface())
			return
		}
		if name := v.FieldByName("Name"); name.IsValid() && name.Kind() == reflect.String {
			tw.Line(depth, "%s name=%q", label, name.String())
			tw.fields(depth+1, v, "Name")
			return
		}
		tw.Line(depth, "%s", label)
		tw.fields(depth+1, v, "")
	default:
		tw.Field(depth, label, v.Interface())
	}
}

func (tw treeWriter) fields(depth int, v reflect.Value, skip string) {
	t := v.Type()
	for i := range t.NumField() {
		if name := t.Field(i).Name; name != skip {
			tw.node(depth, name, v.Field(i))
		}
	}
}
