package decode

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"

	"mwc/assembler"
	"mwc/sink/trace"
)

var letter = assembler.PageSpan{Width: 612, Height: 792, MarginTop: 72, MarginBottom: 72, MarginLeft: 72, MarginRight: 72, PageCount: 1}

func decode(t *testing.T, p Producer, src string, opts ...func(*assembler.Options)) *trace.Recorder {
	t.Helper()
	rec := trace.New()
	a, err := assembler.New(p.Flavor(), rec, []assembler.PageSpan{letter}, zaptest.NewLogger(t), opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Decode(context.Background(), strings.NewReader(src), a); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if err := a.EndDocument(); err != nil {
		t.Fatalf("EndDocument() error = %v", err)
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("Validate() error = %v\n%s", err, rec.Dump())
	}
	return rec
}

func opened[T any](rec *trace.Recorder, scope assembler.Scope) []T {
	var out []T
	for _, e := range rec.Events() {
		if e.Kind == trace.EventKindOpen && e.Scope == scope {
			if v, ok := e.Props.(T); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

func TestForFile(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		flavor assembler.Flavor
	}{
		{"a.txt", "*decode.Text", assembler.FlavorText},
		{"dir/b.MD", "*decode.Markdown", assembler.FlavorText},
		{"c.htm", "*decode.HTML", assembler.FlavorText},
		{"d.xhtml", "*decode.HTML", assembler.FlavorText},
		{"e.csv", "*decode.CSV", assembler.FlavorSpreadsheet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ForFile(tt.name, "")
			if err != nil {
				t.Fatal(err)
			}
			if got := typeName(p); got != tt.want {
				t.Errorf("ForFile() = %s, want %s", got, tt.want)
			}
			if p.Flavor() != tt.flavor {
				t.Errorf("Flavor() = %s, want %s", p.Flavor(), tt.flavor)
			}
			if !IsSupported(tt.name) {
				t.Error("IsSupported() = false")
			}
		})
	}

	if _, err := ForFile("f.pdf", ""); err == nil {
		t.Error("ForFile(pdf) succeeded")
	}
	if IsSupported("f.pdf") {
		t.Error("IsSupported(pdf) = true")
	}
}

func typeName(p Producer) string {
	switch p.(type) {
	case *Text:
		return "*decode.Text"
	case *Markdown:
		return "*decode.Markdown"
	case *HTML:
		return "*decode.HTML"
	case *CSV:
		return "*decode.CSV"
	}
	return "unknown"
}

func TestText(t *testing.T) {
	t.Run("control characters", func(t *testing.T) {
		rec := decode(t, &Text{}, "one\ttwo\r\nthree\n\nfour\ffive")
		if got, want := rec.Text(), "one\ttwo\nthree\n\nfour\nfive\n"; got != want {
			t.Errorf("Text() = %q, want %q", got, want)
		}
		if n := rec.Count(trace.EventKindOpen, assembler.ScopePageSpan); n != 2 {
			t.Errorf("page spans = %d, want 2", n)
		}
	})

	t.Run("legacy charmap", func(t *testing.T) {
		p := &Text{Charset: "windows-1251"}
		if p.Charmap() != charmap.Windows1251 {
			t.Fatalf("Charmap() = %v", p.Charmap())
		}
		rec := decode(t, p, "\xcf\xf0\xe8\r\n", assembler.WithCharmap(p.Charmap()))
		if got := rec.Text(); got != "При\n" {
			t.Errorf("Text() = %q", got)
		}
	})

	t.Run("utf-16 byte order mark", func(t *testing.T) {
		rec := decode(t, &Text{}, "\xff\xfeh\x00i\x00")
		if got := rec.Text(); got != "hi\n" {
			t.Errorf("Text() = %q", got)
		}
	})

	t.Run("not utf-8", func(t *testing.T) {
		rec := decode(t, &Text{}, "caf\xe9")
		if got := rec.Text(); got != "café\n" {
			t.Errorf("Text() = %q", got)
		}
	})

	t.Run("utf-8", func(t *testing.T) {
		rec := decode(t, &Text{Charset: "utf-8"}, "\ufeffnaïve")
		if got := rec.Text(); got != "naïve\n" {
			t.Errorf("Text() = %q", got)
		}
	})

	t.Run("unknown charset", func(t *testing.T) {
		p := &Text{Charset: "no-such-charset"}
		if p.Charmap() != nil {
			t.Error("Charmap() of unknown charset is not nil")
		}
		rec := trace.New()
		a, _ := assembler.New(assembler.FlavorText, rec, []assembler.PageSpan{letter}, zaptest.NewLogger(t))
		if err := p.Decode(context.Background(), strings.NewReader("x"), a); err == nil {
			t.Error("Decode() with unknown charset succeeded")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rec := trace.New()
		a, _ := assembler.New(assembler.FlavorText, rec, []assembler.PageSpan{letter}, zaptest.NewLogger(t))
		if err := (&Text{}).Decode(ctx, strings.NewReader("x"), a); err == nil {
			t.Error("Decode() with cancelled context succeeded")
		}
	})
}

const markdownSource = `# Title

Some *em* and **strong** and ~~gone~~ ` + "`code`" + ` [link](http://x "T").

1. one
2. two
   - nested

---

| A | B |
|---|--:|
| 1 | 2 |

Note[^1].

[^1]: The note.
`

func TestMarkdown(t *testing.T) {
	rec := decode(t, &Markdown{}, markdownSource)

	paras := opened[assembler.ParagraphEvent](rec, assembler.ScopeParagraph)
	if len(paras) == 0 || paras[0].OutlineLevel != 1 {
		t.Fatalf("first paragraph = %+v", paras)
	}

	var heading, italic, bold, strike, code bool
	for _, f := range opened[assembler.Font](rec, assembler.ScopeSpan) {
		switch {
		case f.Bold && f.Size == 24:
			heading = true
		case f.Italic:
			italic = true
		case f.Bold:
			bold = true
		case f.StrikeOut:
			strike = true
		case f.Name == "Courier New":
			code = true
		}
	}
	if !heading || !italic || !bold || !strike || !code {
		t.Errorf("fonts: heading %t italic %t bold %t strike %t code %t", heading, italic, bold, strike, code)
	}

	text := rec.Text()
	for _, want := range []string{"Title\n", "Some em and strong and gone code link.\n", "one\ntwo\nnested\n", "The note."} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q misses %q", text, want)
		}
	}

	links := opened[assembler.Link](rec, assembler.ScopeLink)
	if len(links) != 1 || links[0] != (assembler.Link{Target: "http://x", Title: "T"}) {
		t.Errorf("links = %+v", links)
	}

	ordered := opened[assembler.ListLevelEvent](rec, assembler.ScopeOrderedListLevel)
	if len(ordered) != 1 || ordered[0].StartValue != 1 || ordered[0].Definition.Label != "1." {
		t.Errorf("ordered levels = %+v", ordered)
	}
	if n := rec.Count(trace.EventKindOpen, assembler.ScopeUnorderedListLevel); n != 1 {
		t.Errorf("unordered levels = %d, want 1", n)
	}
	if n := rec.Count(trace.EventKindOpen, assembler.ScopeListElement); n != 3 {
		t.Errorf("list elements = %d, want 3", n)
	}

	if n := rec.Count(trace.EventKindOpen, assembler.ScopePageSpan); n != 2 {
		t.Errorf("page spans = %d, want 2", n)
	}

	rows := opened[assembler.Row](rec, assembler.ScopeTableRow)
	if len(rows) != 2 || !rows[0].Header || rows[1].Header {
		t.Errorf("rows = %+v", rows)
	}
	if n := rec.Count(trace.EventKindOpen, assembler.ScopeTableCell); n != 4 {
		t.Errorf("cells = %d, want 4", n)
	}
	right := false
	for _, p := range paras {
		right = right || p.Justify == assembler.JustificationRight
	}
	if !right {
		t.Error("right aligned column lost")
	}

	notes := opened[assembler.Note](rec, assembler.ScopeFootnote)
	if len(notes) != 1 || notes[0].Number != 1 {
		t.Errorf("footnotes = %+v", notes)
	}
}

func TestMarkdownCodeBlock(t *testing.T) {
	rec := decode(t, &Markdown{}, "> quoted\n\n```\nline 1\nline 2\n```\n")
	if got, want := rec.Text(), "quoted\nline 1\nline 2\n"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	paras := opened[assembler.ParagraphEvent](rec, assembler.ScopeParagraph)
	if len(paras) != 2 || paras[0].MarginLeft != quoteIndent || paras[1].MarginLeft != 0 {
		t.Errorf("paragraphs = %+v", paras)
	}
	if rec.Count(trace.EventKindLineBreak, 0) != 1 {
		t.Errorf("line breaks = %d, want 1", rec.Count(trace.EventKindLineBreak, 0))
	}
}

const htmlSource = `<html><head><title>x</title><style>p { color: red }</style></head><body>
<h2>Head</h2>
<p align="center">Hello   <b>bold</b> <i>it</i><br>next <a href="http://y">link</a></p>
<ul><li>a<ol start="4"><li>b</li></ol></li><li>c</li></ul>
<table border="1"><tr><th>H</th><td colspan="2">wide</td></tr></table>
<hr>
<pre>x	y
z</pre>
<p><img src="data:image/png;base64,iVBORw0KGgo=" alt="pic" width="16" height="16"></p>
</body></html>`

func TestHTML(t *testing.T) {
	rec := decode(t, &HTML{}, htmlSource)

	text := rec.Text()
	for _, want := range []string{"Head\n", "Hello bold it\nnext link\n", "a\nb\nc\n", "H\nwide\n", "x\ty\nz\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q misses %q", text, want)
		}
	}
	if strings.Contains(text, "color") {
		t.Error("style content leaked into text")
	}

	paras := opened[assembler.ParagraphEvent](rec, assembler.ScopeParagraph)
	if paras[0].OutlineLevel != 2 {
		t.Errorf("heading level = %d", paras[0].OutlineLevel)
	}
	if paras[1].Justify != assembler.JustificationCenter {
		t.Errorf("alignment = %s", paras[1].Justify)
	}

	ordered := opened[assembler.ListLevelEvent](rec, assembler.ScopeOrderedListLevel)
	if len(ordered) != 1 || ordered[0].Level != 2 || ordered[0].StartValue != 4 {
		t.Errorf("ordered levels = %+v", ordered)
	}

	cells := opened[assembler.Cell](rec, assembler.ScopeTableCell)
	if len(cells) != 2 || !cells[0].Borders || cells[1].ColumnSpan != 2 || cells[1].Column != 1 {
		t.Errorf("cells = %+v", cells)
	}
	tables := opened[assembler.Table](rec, assembler.ScopeTable)
	if len(tables) != 1 || len(tables[0].Columns) != 3 {
		t.Errorf("tables = %+v", tables)
	}

	if n := rec.Count(trace.EventKindOpen, assembler.ScopePageSpan); n != 2 {
		t.Errorf("page spans = %d, want 2", n)
	}
	if n := rec.Count(trace.EventKindObject, 0); n != 1 {
		t.Fatalf("objects = %d, want 1", n)
	}
	frames := opened[assembler.FrameEvent](rec, assembler.ScopeFrame)
	if len(frames) != 1 || frames[0].Width != 12 {
		t.Errorf("frames = %+v", frames)
	}
}

func TestHTMLCharset(t *testing.T) {
	src := `<html><head><meta charset="windows-1251"></head><body><p>` + "\xcf\xf0\xe8" + `</p></body></html>`
	rec := decode(t, &HTML{}, src)
	if got := rec.Text(); got != "При\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestHTMLStyles(t *testing.T) {
	src := `<html><head><style>
.note { font-style: italic }
p.warn { color: #f00; font-weight: 700 }
@media print { p { display: none } }
</style></head><body>
<p class="note" style="margin-left: 0.5in; text-align: right">quiet</p>
<p class="warn">loud</p>
<p><span style="text-decoration: underline; font-size: 16px">under</span></p>
</body></html>`
	rec := decode(t, &HTML{Log: zaptest.NewLogger(t)}, src)

	if got := rec.Text(); got != "quiet\nloud\nunder\n" {
		t.Errorf("Text() = %q", got)
	}
	paras := opened[assembler.ParagraphEvent](rec, assembler.ScopeParagraph)
	if len(paras) != 3 || paras[0].MarginLeft != 36 || paras[0].Justify != assembler.JustificationRight {
		t.Fatalf("paragraphs = %+v", paras)
	}

	var italic, loud, under bool
	for _, f := range opened[assembler.Font](rec, assembler.ScopeSpan) {
		italic = italic || f.Italic
		loud = loud || f.Bold && f.Color == assembler.RGB(255, 0, 0)
		under = under || f.Underline && f.Size == 12
	}
	if !italic || !loud || !under {
		t.Errorf("styled spans: italic=%v loud=%v under=%v", italic, loud, under)
	}
}

func TestCSV(t *testing.T) {
	src := "Item,Qty,Price\npen,2,\"1,234.50\"\n,,=B2*C2\n"
	rec := decode(t, &CSV{Name: "Stock", Header: true}, src)

	sheets := opened[assembler.Sheet](rec, assembler.ScopeSheet)
	if len(sheets) != 1 || sheets[0].Name != "Stock" || sheets[0].Columns[0].Repeat != 3 {
		t.Fatalf("sheets = %+v", sheets)
	}
	cells := opened[assembler.SheetCellEvent](rec, assembler.ScopeSheetCell)
	if len(cells) != 7 {
		t.Fatalf("cells = %d, want 7", len(cells))
	}
	for _, f := range opened[assembler.Font](rec, assembler.ScopeSpan) {
		if !f.Bold {
			t.Errorf("header font %+v is not bold", f)
		}
	}
	if got := rec.Text(); got != "Item\nQty\nPrice\n" {
		t.Errorf("Text() = %q", got)
	}

	price := cells[5]
	if price.Column != 2 || price.Row != 1 || price.Content.Value != 1234.5 || price.NumberingStyle == "" {
		t.Errorf("price cell = %+v", price)
	}
	total := cells[6]
	if total.Column != 2 || total.Content.FormulaString() != "=B2*C2" {
		t.Errorf("total cell = %+v", total)
	}
}

func TestTypedValue(t *testing.T) {
	tests := []struct {
		in    string
		typ   assembler.ValueType
		value float64
	}{
		{"TRUE", assembler.ValueTypeBoolean, 1},
		{"FALSE", assembler.ValueTypeBoolean, 0},
		{"42", assembler.ValueTypeNumber, 42},
		{"-3.25", assembler.ValueTypeNumber, -3.25},
		{"1,234.50", assembler.ValueTypeNumber, 1234.5},
		{"12.5%", assembler.ValueTypeNumber, 0.125},
		{"2024-03-01", assembler.ValueTypeDate, 45352},
		{"10:30", assembler.ValueTypeTime, 0.4375},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			content, format := typedValue(tt.in)
			if !content.HasValue || format.Type != tt.typ || content.Value != tt.value {
				t.Fatalf("typedValue() = %+v %+v", content, format)
			}
			if got := format.Format(content); got != tt.in {
				t.Errorf("Format() = %q, want %q", got, tt.in)
			}
		})
	}

	for _, in := range []string{"hello", "1.2.3", "12,34", "=foo bar"} {
		content, format := typedValue(in)
		if content.HasValue || format.Type != assembler.ValueTypeText || content.Text != in {
			t.Errorf("typedValue(%q) = %+v %+v, want text", in, content, format)
		}
	}
}

func TestParseFormula(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"B2*C2", "=B2*C2"},
		{"SUM($A$1:A4)/2", "=SUM($A$1:A4)/2"},
		{"if(A1>=10,\"big\",\"small\")", "=IF(A1>=10,\"big\",\"small\")"},
		{"LOG10(Z99) + 1.5", "=LOG10(Z99)+1.5"},
	}
	for _, tt := range tests {
		f := parseFormula(tt.in)
		if f == nil {
			t.Errorf("parseFormula(%q) = nil", tt.in)
			continue
		}
		if got := (assembler.CellContent{Formula: f}).FormulaString(); got != tt.want {
			t.Errorf("parseFormula(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"A1:", "\"open", "name", "a#b"} {
		if f := parseFormula(in); f != nil {
			t.Errorf("parseFormula(%q) = %v, want nil", in, f)
		}
	}
}
