package sdf

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParseElementTagMismatch(t *testing.T) {
	p := newTestParser(t)
	_, err := parseElement[Link](p, mustElement(t, `<joint name="j"/>`), "link")
	var unexpected *UnexpectedElementError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedElementError, got %v", err)
	}
	if unexpected.Expected != "link" || unexpected.Found != "joint" {
		t.Fatalf("unexpected details: %+v", unexpected)
	}
}

func TestParseElementPrefixesNamedEntities(t *testing.T) {
	p := newTestParser(t)
	el := mustElement(t, `<model name="robot">
		<link name="base">
			<collision name="shell"><geometry><sphere><radius>big</radius></sphere></geometry></collision>
		</link>
	</model>`)
	_, err := parseElement[Model](p, el, "model")
	if err == nil {
		t.Fatalf("expected error")
	}
	want := `model "robot": link "base": collision "shell": `
	if !strings.HasPrefix(err.Error(), want) {
		t.Fatalf("error %q does not start with %q", err, want)
	}
	var conv *TypeConversionError
	if !errors.As(err, &conv) || conv.Element != "sphere" || conv.Field != "radius" {
		t.Fatalf("expected wrapped TypeConversionError, got %v", err)
	}
}

func TestParseMany(t *testing.T) {
	p := newTestParser(t)
	el := mustElement(t, `<model name="m">
		<link name="a"/>
		<joint name="j" type="fixed"><parent>a</parent><child>b</child></joint>
		<link name="b"/>
		<link name="c"/>
	</model>`)

	links, err := parseMany[Link](p, el, "link", true)
	if err != nil {
		t.Fatalf("parseMany: %v", err)
	}
	var names []string
	for _, l := range links {
		names = append(names, l.Name)
	}
	if !slices.Equal(names, []string{"a", "b", "c"}) {
		t.Fatalf("document order lost: %v", names)
	}

	frames, err := parseMany[Frame](p, el, "frame", false)
	if err != nil || frames != nil {
		t.Fatalf("empty optional sequence: %v, %v", frames, err)
	}

	_, err = parseMany[Frame](p, el, "frame", true)
	var seq *MissingRequiredSequenceError
	if !errors.As(err, &seq) || seq.Field != "frame" || seq.Element != "model" {
		t.Fatalf("expected MissingRequiredSequenceError, got %v", err)
	}
}

func TestParseOne(t *testing.T) {
	p := newTestParser(t)

	_, err := parseOne[Geometry](p, mustElement(t, `<visual name="v"/>`), "geometry")
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "geometry" {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}

	_, err = parseOne[Pose](p, mustElement(t, `<link name="l"><pose>0 0 0 0 0 0</pose><pose>1 1 1 0 0 0</pose></link>`), "pose")
	var dup *DuplicateElementError
	if !errors.As(err, &dup) || dup.Field != "pose" || dup.Count != 2 {
		t.Fatalf("expected DuplicateElementError, got %v", err)
	}

	opt, err := parseOneOpt[Pose](p, mustElement(t, `<link name="l"/>`), "pose")
	if err != nil || opt != nil {
		t.Fatalf("absent optional: %v, %v", opt, err)
	}
	opt, err = parseOneOpt[Pose](p, mustElement(t, `<link name="l"><pose>1 0 0 0 0 0</pose></link>`), "pose")
	if err != nil || opt == nil || opt.Position.X != 1 {
		t.Fatalf("present optional: %v, %v", opt, err)
	}
}

func TestDuplicateSingletons(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "scalar",
			doc:   `<model name="m"><static>true</static><static>false</static></model>`,
			field: "static",
		},
		{
			name:  "node",
			doc:   `<model name="m"><link name="l"><inertial/><inertial/></link></model>`,
			field: "inertial",
		},
		{
			name:  "union member",
			doc:   `<model name="m"><link name="l"><collision name="c"><geometry><box><size>1 1 1</size></box><box><size>2 2 2</size></box></geometry></collision></link></model>`,
			field: "box",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseString(t, `<sdf version="1.6">`+tt.doc+`</sdf>`)
			var dup *DuplicateElementError
			if !errors.As(err, &dup) || dup.Field != tt.field {
				t.Fatalf("expected DuplicateElementError for %s, got %v", tt.field, err)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	el := mustElement(t, `<geometry><sphere/><box/></geometry>`)
	_, err := union(el, geometryKinds...)
	var conflict *UnionConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected UnionConflictError, got %v", err)
	}
	if !slices.Equal(conflict.Variants, []string{"box", "sphere"}) {
		t.Fatalf("variants: %v", conflict.Variants)
	}

	kind, err := union(mustElement(t, `<geometry/>`), geometryKinds...)
	if err != nil || kind != "" {
		t.Fatalf("empty union: %q, %v", kind, err)
	}
}

func TestFieldsStopAtFirstError(t *testing.T) {
	p := newTestParser(t)
	el := mustElement(t, `<limit><upper>1</upper><effort>x</effort></limit>`)
	var l AxisLimit
	err := l.parse(p, el)
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "lower" {
		t.Fatalf("expected first failure to win, got %v", err)
	}
	if l.Upper != 0 || l.Effort != nil {
		t.Fatalf("fields after failure must not be read: %+v", l)
	}
}
