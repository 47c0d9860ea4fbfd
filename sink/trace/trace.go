// Package trace records the event stream produced by the assembler. It is
// used to debug producers and to verify nesting in tests.
package trace

//go:generate go tool go-enum --names

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"mwc/assembler"
	"mwc/utils/debug"
)

// EventKind is the kind of a recorded sink call.
// ENUM(start, end, open, close, text, space, tab, lineBreak, field, object, graphicStyle, numberingStyle)
type EventKind int

// Event is one recorded sink call.
type Event struct {
	Kind  EventKind
	Scope assembler.Scope
	Props any
	Text  string
}

// String returns a compact form of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventKindOpen:
		return "+" + e.Scope.String()
	case EventKindClose:
		return "-" + e.Scope.String()
	case EventKindText:
		return "text(" + e.Text + ")"
	case EventKindField:
		return "field(" + e.Text + ")"
	case EventKindGraphicStyle, EventKindNumberingStyle:
		return e.Kind.String() + "(" + e.Text + ")"
	default:
		return e.Kind.String()
	}
}

// Recorder is an assembler.Sink keeping every call.
type Recorder struct {
	events    []Event
	graphics  map[string]assembler.GraphicStyle
	numbering map[string]assembler.CellFormat
}

var _ assembler.Sink = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{
		graphics:  make(map[string]assembler.GraphicStyle),
		numbering: make(map[string]assembler.CellFormat),
	}
}

func (r *Recorder) add(e Event) {
	r.events = append(r.events, e)
}

func (r *Recorder) StartDocument(meta assembler.Metadata) {
	r.add(Event{Kind: EventKindStart, Props: meta})
}

func (r *Recorder) EndDocument() {
	r.add(Event{Kind: EventKindEnd})
}

func (r *Recorder) Open(scope assembler.Scope, props any) {
	r.add(Event{Kind: EventKindOpen, Scope: scope, Props: props})
}

func (r *Recorder) Close(scope assembler.Scope) {
	r.add(Event{Kind: EventKindClose, Scope: scope})
}

func (r *Recorder) InsertText(text string) {
	r.add(Event{Kind: EventKindText, Text: text})
}

func (r *Recorder) InsertSpace() {
	r.add(Event{Kind: EventKindSpace})
}

func (r *Recorder) InsertTab() {
	r.add(Event{Kind: EventKindTab})
}

func (r *Recorder) InsertLineBreak() {
	r.add(Event{Kind: EventKindLineBreak})
}

func (r *Recorder) InsertField(f assembler.Field) {
	r.add(Event{Kind: EventKindField, Text: f.Kind.String(), Props: f})
}

func (r *Recorder) InsertBinaryObject(obj assembler.BinaryObject) {
	r.add(Event{Kind: EventKindObject, Text: obj.MimeType, Props: obj})
}

func (r *Recorder) DefineGraphicStyle(name string, style assembler.GraphicStyle) {
	r.graphics[name] = style
	r.add(Event{Kind: EventKindGraphicStyle, Text: name, Props: style})
}

func (r *Recorder) DefineNumberingStyle(name string, format assembler.CellFormat) {
	r.numbering[name] = format
	r.add(Event{Kind: EventKindNumberingStyle, Text: name, Props: format})
}

// Events returns recorded events.
func (r *Recorder) Events() []Event {
	return r.events
}

// Shape returns the compact form of every recorded event.
func (r *Recorder) Shape() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.String())
	}
	return out
}

// Count returns how many events of kind were recorded for scope. Scope is
// ignored for kinds other than open and close.
func (r *Recorder) Count(kind EventKind, scope assembler.Scope) int {
	n := 0
	for _, e := range r.events {
		if e.Kind != kind {
			continue
		}
		if (kind == EventKindOpen || kind == EventKindClose) && e.Scope != scope {
			continue
		}
		n++
	}
	return n
}

// Text returns all recorded text with spaces and tabs, paragraphs separated
// by new lines.
func (r *Recorder) Text() string {
	var b strings.Builder
	for _, e := range r.events {
		switch e.Kind {
		case EventKindText:
			b.WriteString(e.Text)
		case EventKindSpace:
			b.WriteByte(' ')
		case EventKindTab:
			b.WriteByte('\t')
		case EventKindLineBreak:
			b.WriteByte('\n')
		case EventKindClose:
			if e.Scope == assembler.ScopeParagraph || e.Scope == assembler.ScopeListElement {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

// Dump renders recorded events as an indented tree followed by the defined
// styles.
func (r *Recorder) Dump() string {
	tw := debug.NewTreeWriter()
	for _, e := range r.events {
		switch e.Kind {
		case EventKindStart:
			tw.Enter("document %s", formatProps(e.Props))
		case EventKindEnd:
			tw.Leave()
			tw.Line("end")
		case EventKindOpen:
			tw.Enter("%s %s", e.Scope, formatProps(e.Props))
		case EventKindClose:
			tw.Leave()
		case EventKindText:
			tw.TextBlock("text", e.Text)
		case EventKindObject:
			obj := e.Props.(assembler.BinaryObject)
			tw.Line("object %s %d bytes", obj.MimeType, len(obj.Data))
		case EventKindField:
			tw.Line("field %s", formatProps(e.Props))
		case EventKindGraphicStyle, EventKindNumberingStyle:
			tw.Line("define %s %s", e.Kind, e.Text)
		default:
			tw.Line("%s", e.Kind)
		}
	}

	if len(r.graphics) > 0 {
		tw.Enter("graphic styles")
		keys := make([]string, 0, len(r.graphics))
		for k := range r.graphics {
			keys = append(keys, k)
		}
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.Line("%s: %s", k, formatProps(r.graphics[k]))
		}
		tw.Leave()
	}
	if len(r.numbering) > 0 {
		tw.Enter("numbering styles")
		keys := make([]string, 0, len(r.numbering))
		for k := range r.numbering {
			keys = append(keys, k)
		}
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.Line("%s: %s", k, formatProps(r.numbering[k]))
		}
		tw.Leave()
	}
	return tw.String()
}

func formatProps(props any) string {
	switch v := props.(type) {
	case nil:
		return ""
	case assembler.Font:
		return fmt.Sprintf("%q %gpt%s", v.Name, v.Size, fontFlags(v))
	case assembler.PageSpanEvent:
		return fmt.Sprintf("pages=%d-%d size=%gx%g", v.FirstPage, v.FirstPage+v.Pages-1, v.Width, v.Height)
	case assembler.ParagraphEvent:
		s := fmt.Sprintf("justify=%s", v.Justify)
		if v.ListLevel > 0 {
			s += fmt.Sprintf(" list=%d/%d", v.ListID, v.ListLevel)
		}
		if v.PageBreakBefore {
			s += " page-break"
		}
		if v.ColumnBreakBefore {
			s += " column-break"
		}
		return s
	case assembler.BinaryObject:
		return fmt.Sprintf("%s %d bytes", v.MimeType, len(v.Data))
	case assembler.SheetCellEvent:
		s := v.Content.FormulaString()
		if s == "" && v.Content.HasValue {
			s = fmt.Sprintf("%g", v.Content.Value)
		}
		return strings.TrimSpace(fmt.Sprintf("%s %s", cellName(v.Column, v.Row), s))
	default:
		return fmt.Sprintf("%+v", v)
	}
}

func cellName(col, row int) string {
	return assembler.CellRef{Column: col, Row: row}.String()
}

func fontFlags(f assembler.Font) string {
	var flags []string
	for _, fl := range []struct {
		on   bool
		name string
	}{
		{f.Bold, "bold"},
		{f.Italic, "italic"},
		{f.Underline, "underline"},
		{f.Overline, "overline"},
		{f.StrikeOut, "strike"},
		{f.SmallCaps, "small-caps"},
		{f.Script != assembler.ScriptNormal, f.Script.String()},
	} {
		if fl.on {
			flags = append(flags, fl.name)
		}
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + strings.Join(flags, ",")
}
