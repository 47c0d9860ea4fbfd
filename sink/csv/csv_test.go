package csv

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"mwc/assembler"
)

func collect(t *testing.T, build func(l assembler.Listener)) []*Table {
	t.Helper()
	log := zaptest.NewLogger(t)
	w := New(log)
	a, err := assembler.New(assembler.FlavorSpreadsheet, w, []assembler.PageSpan{{Width: 612, Height: 792}}, log)
	if err != nil {
		t.Fatal(err)
	}
	build(a)
	if err := a.EndDocument(); err != nil {
		t.Fatal(err)
	}
	return w.Tables()
}

func TestSheetsToTables(t *testing.T) {
	tables := collect(t, func(l assembler.Listener) {
		l.InsertUnicodeString("dropped")
		l.OpenSheet(assembler.Sheet{Name: "Q1 Sales / East"})
		l.OpenSheetRow(assembler.SheetRow{})
		l.OpenSheetCell(assembler.SheetCell{}, assembler.CellContent{})
		l.InsertUnicodeString("item")
		l.OpenSheetCell(assembler.SheetCell{Column: 2}, assembler.CellContent{})
		l.InsertUnicodeString("total")
		l.CloseSheetRow()
		l.OpenSheetRow(assembler.SheetRow{Repeat: 2})
		l.OpenSheetCell(assembler.SheetCell{}, assembler.CellContent{Text: "pen"})
		l.OpenSheetCell(assembler.SheetCell{Column: 2, Format: assembler.CellFormat{Type: assembler.ValueTypeNumber, Digits: 2, Thousands: true}},
			assembler.CellContent{Value: 1500, HasValue: true})
		l.CloseSheet()
		l.OpenSheet(assembler.Sheet{})
		l.OpenSheetRow(assembler.SheetRow{})
		l.OpenSheetCell(assembler.SheetCell{}, assembler.CellContent{Formula: []assembler.FormulaInstruction{
			{Kind: assembler.FormulaCell, Refs: [2]assembler.CellRef{{Sheet: "Other", Column: 1}}},
		}})
	})

	if len(tables) != 2 {
		t.Fatalf("tables = %d, want 2", len(tables))
	}
	want := [][]string{
		{"item", "", "total"},
		{"pen", "", "1,500.00"},
		{"pen", "", "1,500.00"},
	}
	if diff := cmp.Diff(want, tables[0].Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"=Other.B1"}}, tables[1].Rows); diff != "" {
		t.Errorf("formula rows mismatch (-want +got):\n%s", diff)
	}
	if got := tables[0].FileName(0); got != "q1-sales-east.csv" {
		t.Errorf("FileName() = %q", got)
	}
	if got := tables[1].FileName(1); got != "sheet-2.csv" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestMultiParagraphCell(t *testing.T) {
	tables := collect(t, func(l assembler.Listener) {
		l.OpenSheet(assembler.Sheet{Name: "s"})
		l.OpenSheetRow(assembler.SheetRow{})
		l.OpenSheetCell(assembler.SheetCell{}, assembler.CellContent{})
		l.InsertUnicodeString("first")
		l.InsertEOL(false)
		l.InsertUnicodeString("second")
	})
	if got := tables[0].Rows[0][0]; got != "first\nsecond" {
		t.Errorf("cell = %q", got)
	}
}

func TestTableWrite(t *testing.T) {
	tbl := &Table{Name: "t", Rows: [][]string{{"a", "b,c"}, {"x"}}}
	var buf bytes.Buffer
	if err := tbl.Write(&buf, 0); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a,\"b,c\"\nx,\n"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}

	buf.Reset()
	if err := tbl.Write(&buf, ';'); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a;b,c\nx;\n"; got != want {
		t.Errorf("Write(';') = %q, want %q", got, want)
	}
}
