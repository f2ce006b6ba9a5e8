package sdf

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func newTestParser(t *testing.T) *parser {
	t.Helper()
	return newParser([]Option{WithLogger(testLogger(t))})
}

func mustElement(t *testing.T, xml string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("read xml: %v", err)
	}
	if doc.Root() == nil {
		t.Fatalf("xml has no root element")
	}
	return doc.Root()
}

func parseString(t *testing.T, xml string, opts ...Option) (*Root, error) {
	t.Helper()
	return ParseReader(strings.NewReader(xml), append([]Option{WithLogger(testLogger(t))}, opts...)...)
}

func mustParse(t *testing.T, xml string, opts ...Option) *Root {
	t.Helper()
	root, err := parseString(t, xml, opts...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}
