package assembler_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"mwc/assembler"
	"mwc/sink/trace"
)

var letter = assembler.PageSpan{Width: 612, Height: 792, MarginTop: 72, MarginBottom: 72, MarginLeft: 72, MarginRight: 72, PageCount: 1}

func newAssembler(t *testing.T, flavor assembler.Flavor, pages []assembler.PageSpan, opts ...func(*assembler.Options)) (*assembler.Assembler, *trace.Recorder) {
	t.Helper()
	if pages == nil {
		pages = []assembler.PageSpan{letter}
	}
	rec := trace.New()
	a, err := assembler.New(flavor, rec, pages, zaptest.NewLogger(t), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, rec
}

func finish(t *testing.T, a *assembler.Assembler, rec *trace.Recorder) {
	t.Helper()
	if err := a.EndDocument(); err != nil {
		t.Fatalf("EndDocument() error = %v", err)
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("Validate() error = %v\n%s", err, rec.Dump())
	}
}

// leaves returns content events only.
func leaves(rec *trace.Recorder) []string {
	var out []string
	for _, e := range rec.Events() {
		switch e.Kind {
		case trace.EventKindText, trace.EventKindSpace, trace.EventKindTab, trace.EventKindLineBreak, trace.EventKindField:
			out = append(out, e.String())
		}
	}
	return out
}

func opened(rec *trace.Recorder, scope assembler.Scope) []any {
	var out []any
	for _, e := range rec.Events() {
		if e.Kind == trace.EventKindOpen && e.Scope == scope {
			out = append(out, e.Props)
		}
	}
	return out
}

func textDoc(text string) assembler.SubDocument {
	return assembler.NewSubDocument(text, func(l assembler.Listener, _ assembler.SubDocumentKind) {
		l.InsertUnicodeString(text)
	})
}

func TestNew(t *testing.T) {
	rec := trace.New()
	log := zaptest.NewLogger(t)

	if _, err := assembler.New(assembler.FlavorText, rec, nil, log); !errors.Is(err, assembler.ErrNoPageSpan) {
		t.Errorf("New() without pages error = %v, want ErrNoPageSpan", err)
	}
	if _, err := assembler.New(assembler.Flavor(42), rec, []assembler.PageSpan{letter}, log); !errors.Is(err, assembler.ErrInvalidFlavor) {
		t.Errorf("New() with bad flavor error = %v, want ErrInvalidFlavor", err)
	}
	if _, err := assembler.New(assembler.FlavorText, nil, []assembler.PageSpan{letter}, log); err == nil {
		t.Error("New() without sink succeeded")
	}
	a, err := assembler.New(assembler.FlavorSpreadsheet, rec, []assembler.PageSpan{letter}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Flavor() != assembler.FlavorSpreadsheet {
		t.Errorf("Flavor() = %v", a.Flavor())
	}
}

func TestEmptyDocument(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorText, nil)
	finish(t, a, rec)

	want := []string{"start", "+pageSpan", "-pageSpan", "end"}
	if diff := cmp.Diff(want, rec.Shape()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	if err := a.EndDocument(); err != nil {
		t.Errorf("second EndDocument() error = %v", err)
	}
	if got := a.InsertUnicode('x'); got != assembler.ResultIgnored {
		t.Errorf("InsertUnicode() after end = %v, want ignored", got)
	}
	if len(rec.Events()) != len(want) {
		t.Errorf("events recorded after end: %v", rec.Shape())
	}
}

func TestTextBatching(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single space", text: "a b", want: []string{"text(a b)"}},
		{name: "double space", text: "a  b", want: []string{"text(a)", "space", "space", "text(b)"}},
		{name: "leading run", text: "   a", want: []string{"space", "space", "space", "text(a)"}},
		{name: "trailing single", text: "a ", want: []string{"text(a )"}},
		{name: "only spaces", text: "  ", want: []string{"space", "space"}},
		{name: "mixed", text: "a b  c d", want: []string{"text(a b)", "space", "space", "text(c d)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, rec := newAssembler(t, assembler.FlavorText, nil)
			if got := a.InsertUnicodeString(tt.text); got != assembler.ResultApplied {
				t.Fatalf("InsertUnicodeString() = %v", got)
			}
			finish(t, a, rec)
			if diff := cmp.Diff(tt.want, leaves(rec)); diff != "" {
				t.Errorf("leaves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetFont(t *testing.T) {
	bold := assembler.DefaultFont()
	bold.Bold = true

	t.Run("same font", func(t *testing.T) {
		a, rec := newAssembler(t, assembler.FlavorText, nil)
		a.SetFont(bold)
		a.InsertUnicode('x')
		a.SetFont(bold)
		a.InsertUnicode('y')
		finish(t, a, rec)

		if n := rec.Count(trace.EventKindOpen, assembler.ScopeSpan); n != 1 {
			t.Errorf("span opened %d times, want 1", n)
		}
		if diff := cmp.Diff([]string{"text(xy)"}, leaves(rec)); diff != "" {
			t.Errorf("leaves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("different font", func(t *testing.T) {
		a, rec := newAssembler(t, assembler.FlavorText, nil)
		a.InsertUnicode('x')
		a.SetFont(bold)
		a.InsertUnicode('y')
		finish(t, a, rec)

		want := []string{
			"start", "+pageSpan", "+section", "+paragraph",
			"+span", "text(x)", "-span",
			"+span", "text(y)", "-span",
			"-paragraph", "-section", "-pageSpan", "end",
		}
		if diff := cmp.Diff(want, rec.Shape()); diff != "" {
			t.Errorf("events mismatch (-want +got):\n%s", diff)
		}
		spans := opened(rec, assembler.ScopeSpan)
		if f := spans[1].(assembler.Font); !f.Bold {
			t.Errorf("second span font = %+v, want bold", f)
		}
	})
}

func TestInsertUnicodeControls(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorText, nil)

	if got := a.InsertUnicode(0xfffd); got != assembler.ResultIgnored {
		t.Errorf("InsertUnicode(U+FFFD) = %v, want ignored", got)
	}
	if got := a.InsertUnicode(0x01); got != assembler.ResultIgnored {
		t.Errorf("InsertUnicode(0x01) = %v, want ignored", got)
	}
	a.InsertUnicodeString("a\tb\nc")
	a.InsertChar(0x8e) // é in Mac Roman
	finish(t, a, rec)

	want := []string{"text(a)", "tab", "text(b)", "text(cé)"}
	if diff := cmp.Diff(want, leaves(rec)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	if n := rec.Count(trace.EventKindOpen, assembler.ScopeParagraph); n != 2 {
		t.Errorf("paragraphs = %d, want 2", n)
	}
}

func TestSoftEOLAndScriptReset(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorText, nil)
	f := assembler.DefaultFont()
	f.Script = assembler.ScriptSuperscript
	a.SetFont(f)
	a.InsertUnicode('a')
	a.InsertEOL(true)
	a.InsertUnicode('b')
	a.InsertEOL(false)

	if a.Font().Script != assembler.ScriptNormal {
		t.Errorf("script after hard EOL = %v, want normal", a.Font().Script)
	}
	finish(t, a, rec)

	if diff := cmp.Diff([]string{"text(a)", "lineBreak", "text(b)"}, leaves(rec)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
}

func TestDeferredTabs(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorText, nil)
	f := assembler.DefaultFont()
	f.Underline = true
	a.SetFont(f)

	a.InsertTab()
	a.InsertTab()
	if a.IsOpen(assembler.ScopeParagraph) {
		t.Fatal("tab without text opened a paragraph")
	}
	a.InsertUnicode('x')
	finish(t, a, rec)

	want := []string{
		"start", "+pageSpan", "+section", "+paragraph",
		"+span", "tab", "tab", "-span",
		"+span", "text(x)", "-span",
		"-paragraph", "-section", "-pageSpan", "end",
	}
	if diff := cmp.Diff(want, rec.Shape()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	spans := opened(rec, assembler.ScopeSpan)
	if spans[0].(assembler.Font).Underline {
		t.Error("tab span is underlined")
	}
	if !spans[1].(assembler.Font).Underline {
		t.Error("text span lost underline")
	}
}

func TestFields(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorText, nil)
	a.InsertUnicodeString("Page ")
	a.InsertField(assembler.Field{Kind: assembler.FieldKindPageNumber})
	if got := a.InsertField(assembler.Field{Kind: assembler.FieldKind(99)}); got != assembler.ResultIgnored {
		t.Errorf("InsertField(bad) = %v, want ignored", got)
	}
	finish(t, a, rec)

	if diff := cmp.Diff([]string{"text(Page )", "field(pageNumber)"}, leaves(rec)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
}

func TestSections(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorText, nil)

	if got := a.OpenSection(assembler.Section{Columns: 2}); got != assembler.ResultApplied {
		t.Fatalf("OpenSection() = %v", got)
	}
	a.InsertUnicode('a')
	a.SetSection(assembler.Section{Columns: 1})
	a.InsertUnicode('b')
	a.InsertEOL(false)
	a.InsertUnicode('c')
	if got := a.CloseSection(); got != assembler.ResultApplied {
		t.Errorf("CloseSection() = %v", got)
	}
	if got := a.CloseSection(); got != assembler.ResultIgnored {
		t.Errorf("second CloseSection() = %v, want ignored", got)
	}

	a.OpenTable(assembler.Table{})
	if got := a.OpenSection(assembler.Section{}); got != assembler.ResultIgnored {
		t.Errorf("OpenSection() in table = %v, want ignored", got)
	}
	finish(t, a, rec)

	sections := opened(rec, assembler.ScopeSection)
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3\n%s", len(sections), rec.Dump())
	}
	if sections[0].(assembler.Section).Columns != 2 || sections[1].(assembler.Section).Columns != 1 {
		t.Errorf("section columns = %v", sections)
	}
}

func TestSpreadsheetFlavor(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorSpreadsheet, nil)

	if a.CanWriteText() {
		t.Error("CanWriteText() outside of sheet = true")
	}
	if got := a.InsertUnicodeString("x"); got != assembler.ResultIgnored {
		t.Errorf("text outside of sheet = %v, want ignored", got)
	}
	if got := a.OpenSection(assembler.Section{}); got != assembler.ResultIgnored {
		t.Errorf("OpenSection() = %v, want ignored", got)
	}
	if got := a.OpenSheet(assembler.Sheet{Name: "Sheet1"}); got != assembler.ResultApplied {
		t.Fatalf("OpenSheet() = %v", got)
	}
	if got := a.OpenSheet(assembler.Sheet{Name: "Sheet2"}); got != assembler.ResultIgnored {
		t.Errorf("nested OpenSheet() = %v, want ignored", got)
	}
	a.OpenSheetRow(assembler.SheetRow{})
	a.OpenSheetCell(assembler.SheetCell{}, assembler.CellContent{Text: "x"})
	if !a.CanWriteText() {
		t.Error("CanWriteText() in cell = false")
	}
	a.InsertUnicodeString("x")
	finish(t, a, rec)

	want := []string{
		"start", "+pageSpan", "+sheet", "+sheetRow", "+sheetCell",
		"+paragraph", "+span", "text(x)", "-span", "-paragraph",
		"-sheetCell", "-sheetRow", "-sheet", "-pageSpan", "end",
	}
	if diff := cmp.Diff(want, rec.Shape()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	b, rec2 := newAssembler(t, assembler.FlavorText, nil)
	if got := b.OpenSheet(assembler.Sheet{}); got != assembler.ResultIgnored {
		t.Errorf("OpenSheet() in text flavor = %v, want ignored", got)
	}
	finish(t, b, rec2)
}

func TestNumberingStyles(t *testing.T) {
	a, rec := newAssembler(t, assembler.FlavorSpreadsheet, nil)
	money := assembler.CellFormat{Type: assembler.ValueTypeNumber, Digits: 2, Currency: "USD"}
	pct := assembler.CellFormat{Type: assembler.ValueTypeNumber, Percent: true}

	a.OpenSheet(assembler.Sheet{Name: "S"})
	a.OpenSheetRow(assembler.SheetRow{})
	a.OpenSheetCell(assembler.SheetCell{Column: 0, Format: money}, assembler.CellContent{Value: 1, HasValue: true})
	if got := a.OpenSheetCell(assembler.SheetCell{Column: 1, Format: money}, assembler.CellContent{}); got != assembler.ResultRepaired {
		t.Errorf("OpenSheetCell() over open cell = %v, want repaired", got)
	}
	a.OpenSheetCell(assembler.SheetCell{Column: 2, Format: pct}, assembler.CellContent{})
	a.OpenSheetCell(assembler.SheetCell{Column: 3}, assembler.CellContent{Text: "plain"})
	if got := a.OpenSheetRow(assembler.SheetRow{}); got != assembler.ResultRepaired {
		t.Errorf("OpenSheetRow() over open row = %v, want repaired", got)
	}
	finish(t, a, rec)

	if n := rec.Count(trace.EventKindNumberingStyle, 0); n != 2 {
		t.Errorf("numbering styles defined = %d, want 2", n)
	}

	shape := rec.Shape()
	for i, s := range shape {
		if s == "numberingStyle(N1)" || s == "numberingStyle(N2)" {
			if i+1 >= len(shape) || shape[i+1] != "+sheetCell" {
				t.Errorf("%s not followed by the cell it formats: %v", s, shape)
			}
		}
	}

	cells := opened(rec, assembler.ScopeSheetCell)
	names := []string{}
	for _, c := range cells {
		names = append(names, c.(assembler.SheetCellEvent).NumberingStyle)
	}
	if diff := cmp.Diff([]string{"N1", "N1", "N2", ""}, names); diff != "" {
		t.Errorf("numbering style names mismatch (-want +got):\n%s", diff)
	}
}

func TestMetadata(t *testing.T) {
	meta := assembler.Metadata{Title: "Report", Author: "A. Writer"}
	a, rec := newAssembler(t, assembler.FlavorText, nil, assembler.WithMetadata(assembler.Metadata{Title: "old"}))
	if got := a.SetDocumentMetadata(meta); got != assembler.ResultApplied {
		t.Errorf("SetDocumentMetadata() = %v", got)
	}
	if got := a.StartDocument(); got != assembler.ResultApplied {
		t.Errorf("StartDocument() = %v", got)
	}
	if got := a.StartDocument(); got != assembler.ResultIgnored {
		t.Errorf("second StartDocument() = %v, want ignored", got)
	}
	if got := a.SetDocumentMetadata(assembler.Metadata{}); got != assembler.ResultIgnored {
		t.Errorf("SetDocumentMetadata() after start = %v, want ignored", got)
	}
	finish(t, a, rec)

	if got := rec.Events()[0].Props.(assembler.Metadata); got != meta {
		t.Errorf("metadata = %+v, want %+v", got, meta)
	}
}
