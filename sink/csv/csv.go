// Package csv renders spreadsheet content of the assembler event stream as
// one CSV table per sheet.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"mwc/assembler"
)

// Table is the content of one sheet.
type Table struct {
	Name string
	Rows [][]string
}

// FileName returns a file system friendly name for the table, idx is used
// when the sheet has no usable name.
func (t *Table) FileName(idx int) string {
	name := slug.Make(t.Name)
	if name == "" {
		name = fmt.Sprintf("sheet-%d", idx+1)
	}
	return name + ".csv"
}

// Write writes the table in CSV format.
func (t *Table) Write(w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	if comma != 0 {
		cw.Comma = comma
	}
	width := 0
	for _, r := range t.Rows {
		width = max(width, len(r))
	}
	for _, r := range t.Rows {
		rec := make([]string, width)
		copy(rec, r)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("unable to write sheet %q: %w", t.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Writer is an assembler.Sink collecting sheets. Content outside of sheets
// is dropped.
type Writer struct {
	log    *zap.Logger
	tables []*Table

	cur     *Table
	depth   int // nested sheets are flattened into the enclosing cell
	repeat  int
	cell    *strings.Builder
	col     int
	content string
	inPara  bool
}

var _ assembler.Sink = (*Writer)(nil)

func New(log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{log: log.Named("csv")}
}

// Tables returns collected sheets in document order.
func (w *Writer) Tables() []*Table {
	return w.tables
}

func (w *Writer) StartDocument(assembler.Metadata) {}

func (w *Writer) EndDocument() {
	w.log.Debug("Sheets collected", zap.Int("count", len(w.tables)))
}

func (w *Writer) Open(scope assembler.Scope, props any) {
	switch scope {
	case assembler.ScopeSheet:
		w.depth++
		if w.depth > 1 {
			return
		}
		s, _ := props.(assembler.Sheet)
		w.cur = &Table{Name: s.Name}
		w.tables = append(w.tables, w.cur)
	case assembler.ScopeSheetRow:
		if w.depth != 1 {
			return
		}
		r, _ := props.(assembler.SheetRow)
		w.repeat = max(r.Repeat, 1)
		w.cur.Rows = append(w.cur.Rows, nil)
		w.col = 0
	case assembler.ScopeSheetCell:
		if w.depth != 1 {
			return
		}
		ev, _ := props.(assembler.SheetCellEvent)
		w.cell = &strings.Builder{}
		w.col = ev.Column
		w.content = ""
		switch {
		case ev.Content.HasValue:
			w.content = ev.Format.Format(ev.Content)
		case ev.Content.Text != "":
			w.content = ev.Content.Text
		}
		if f := ev.Content.FormulaString(); f != "" && !ev.Content.HasValue {
			w.content = f
		}
	case assembler.ScopeParagraph, assembler.ScopeListElement:
		if w.cell != nil && w.cell.Len() > 0 {
			w.cell.WriteByte('\n')
		}
		w.inPara = true
	}
}

func (w *Writer) Close(scope assembler.Scope) {
	switch scope {
	case assembler.ScopeSheet:
		w.depth--
		if w.depth == 0 {
			w.cur = nil
		}
	case assembler.ScopeSheetRow:
		if w.depth != 1 {
			return
		}
		last := w.cur.Rows[len(w.cur.Rows)-1]
		for range w.repeat - 1 {
			w.cur.Rows = append(w.cur.Rows, append([]string(nil), last...))
		}
	case assembler.ScopeSheetCell:
		if w.depth != 1 || w.cell == nil {
			return
		}
		text := w.cell.String()
		if text == "" {
			text = w.content
		}
		w.setCell(w.col, text)
		w.cell = nil
	case assembler.ScopeParagraph, assembler.ScopeListElement:
		w.inPara = false
	}
}

func (w *Writer) setCell(col int, text string) {
	rows := w.cur.Rows
	r := rows[len(rows)-1]
	for len(r) <= col {
		r = append(r, "")
	}
	r[col] = text
	rows[len(rows)-1] = r
}

func (w *Writer) write(s string) {
	if w.cell != nil && w.inPara {
		w.cell.WriteString(s)
	}
}

func (w *Writer) InsertText(text string) { w.write(text) }
func (w *Writer) InsertSpace()           { w.write(" ") }
func (w *Writer) InsertTab()             { w.write("\t") }
func (w *Writer) InsertLineBreak()       { w.write("\n") }

func (w *Writer) InsertField(f assembler.Field) {
	if f.Kind == assembler.FieldKindDatabase {
		w.write(f.Name)
	}
}

func (w *Writer) InsertBinaryObject(assembler.BinaryObject)         {}
func (w *Writer) DefineGraphicStyle(string, assembler.GraphicStyle) {}

func (w *Writer) DefineNumberingStyle(name string, f assembler.CellFormat) {
	w.log.Debug("Numbering style", zap.String("name", name), zap.Stringer("type", f.Type))
}
