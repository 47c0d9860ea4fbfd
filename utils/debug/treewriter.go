package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TreeWriter renders indented trees for debug dumps. It keeps the current
// depth so nested structures can be written as they are walked.
type TreeWriter struct {
	w     *strings.Builder
	depth int
	unit  string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:    &strings.Builder{},
		unit: "  ",
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// WriteTo implements io.WriterTo.
func (tw *TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

// Depth returns current nesting level.
func (tw *TreeWriter) Depth() int {
	return tw.depth
}

// Enter writes a line and makes following lines its children.
func (tw *TreeWriter) Enter(format string, args ...any) {
	tw.Line(format, args...)
	tw.depth++
}

// Leave ends children of the last entered line. Unbalanced calls are
// tolerated so a broken tree still renders.
func (tw *TreeWriter) Leave() {
	if tw.depth > 0 {
		tw.depth--
	}
}

func (tw *TreeWriter) indent() {
	for range tw.depth {
		tw.w.WriteString(tw.unit)
	}
}

func (tw *TreeWriter) Line(format string, args ...any) {
	tw.indent()
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes a labelled value quoted so that whitespace stays visible.
func (tw *TreeWriter) TextBlock(label, value string) {
	tw.indent()
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
