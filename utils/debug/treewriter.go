package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented human readable dump of nested structures.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes single "label=value" line. Strings are quoted so empty and
// multi-line values stay visible, everything else uses its default format.
func (tw TreeWriter) Field(depth int, label string, value any) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteByte('=')
	switch v := value.(type) {
	case string:
		tw.w.WriteString(strconv.Quote(v))
	case float64:
		tw.w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case fmt.Stringer:
		tw.w.WriteString(v.String())
	default:
		fmt.Fprint(tw.w, v)
	}
	tw.w.WriteByte('\n')
}
