package assembler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Color is a 24 bit RGB value.
type Color uint32

// Black is the zero Color.
const Black Color = 0

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Hex returns color in CSS notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// Font is the character formatting of a run of text. Fonts are compared by
// value: any difference between the pending and the applied font starts a new
// span.
type Font struct {
	Name       string
	Size       float64 // points
	Bold       bool
	Italic     bool
	Underline  bool
	Overline   bool
	StrikeOut  bool
	Outline    bool
	Shadow     bool
	SmallCaps  bool
	Script     Script
	Color      Color
	Background Color
	HasBack    bool
	Language   string
}

// DefaultFont is the font every fresh scope starts with.
func DefaultFont() Font {
	return Font{Name: "Times New Roman", Size: 12}
}

// HasDecorationLine reports whether text drawn with f carries a line.
func (f Font) HasDecorationLine() bool {
	return f.Underline || f.Overline || f.StrikeOut
}

func (f Font) withoutDecorationLines() Font {
	f.Underline, f.Overline, f.StrikeOut = false, false, false
	return f
}

// TabStop is a paragraph tab position.
type TabStop struct {
	Position float64 // points from the left margin
	Align    Justification
	Decimal  bool
	Leader   rune
}

// Paragraph holds paragraph formatting and the list membership of the
// paragraph. ListLevel 0 means the paragraph is not part of a list.
type Paragraph struct {
	Justify      Justification
	MarginLeft   float64
	MarginRight  float64
	TextIndent   float64
	SpaceBefore  float64
	SpaceAfter   float64
	LineSpacing  float64 // proportional, 0 means single
	OutlineLevel int     // heading level, 0 for body text
	Tabs         []TabStop

	ListLevel int
	ListID    int
	ListStart int // explicit start value of the list level, 0 if none
}

// Equal reports whether p and o describe the same formatting.
func (p Paragraph) Equal(o Paragraph) bool {
	return p.Justify == o.Justify &&
		p.MarginLeft == o.MarginLeft &&
		p.MarginRight == o.MarginRight &&
		p.TextIndent == o.TextIndent &&
		p.SpaceBefore == o.SpaceBefore &&
		p.SpaceAfter == o.SpaceAfter &&
		p.LineSpacing == o.LineSpacing &&
		p.OutlineLevel == o.OutlineLevel &&
		p.ListLevel == o.ListLevel &&
		p.ListID == o.ListID &&
		p.ListStart == o.ListStart &&
		slices.Equal(p.Tabs, o.Tabs)
}

// Section describes column layout of a part of the page.
type Section struct {
	Columns   int
	ColumnGap float64
	Separator bool
}

// HeaderFooter binds sub-document content to a page span template.
type HeaderFooter struct {
	Footer     bool
	Occurrence Occurrence
	Content    SubDocument
}

// PageSpan is a page template. A template covers PageCount consecutive pages
// (at least one) before the next template of the list takes over.
type PageSpan struct {
	Width          float64 // points
	Height         float64
	MarginTop      float64
	MarginBottom   float64
	MarginLeft     float64
	MarginRight    float64
	Landscape      bool
	PageCount      int
	HeadersFooters []HeaderFooter
}

func (p PageSpan) pages() int {
	return max(p.PageCount, 1)
}

// Metadata is the document level information sent with StartDocument.
type Metadata struct {
	ID       string
	Title    string
	Author   string
	Subject  string
	Keywords string
	Language string
	Created  time.Time
}

// Link is a hyperlink target.
type Link struct {
	Target string
	Title  string
}

// Note describes a footnote or an endnote. Number 0 requests automatic
// numbering from the document counters.
type Note struct {
	Kind   NoteKind
	Number int
	Label  string
}

// Field is a value computed by the consumer (page number, date...).
type Field struct {
	Kind   FieldKind
	Format string
	Name   string // database field name
}

// Position places a frame. Sizes are in points.
type Position struct {
	Anchor AnchorKind
	X      float64
	Y      float64
	Width  float64
	Height float64
	Page   int
}

// GraphicStyle is the frame decoration. Distinct styles are defined in the
// sink once and referred to by generated name.
type GraphicStyle struct {
	LineColor Color
	LineWidth float64
	FillColor Color
	Filled    bool
	Shadow    bool
	Rotation  int
}

// BinaryObject is an embedded picture or OLE payload.
type BinaryObject struct {
	Data     []byte
	MimeType string
	Alt      string
}

// Table lists column widths in points.
type Table struct {
	Columns []float64
}

// Row is a table row.
type Row struct {
	Height float64
	Header bool
}

// Cell is a table cell.
type Cell struct {
	Column        int
	Row           int
	ColumnSpan    int
	RowSpan       int
	Background    Color
	HasBackground bool
	Borders       bool
}

// SheetColumn is a run of identical spreadsheet columns.
type SheetColumn struct {
	Width  float64
	Repeat int
}

// Sheet opens a spreadsheet table.
type Sheet struct {
	Name    string
	Columns []SheetColumn
}

// SheetRow is a run of identical spreadsheet rows.
type SheetRow struct {
	Height float64
	Repeat int
}

// CellFormat is the numbering format of a spreadsheet cell. It is comparable
// so that equal formats share one numbering style.
type CellFormat struct {
	Type      ValueType
	Pattern   string
	Digits    int
	Thousands bool
	Percent   bool
	Currency  string
}

// IsBasic reports whether f needs no numbering style definition.
func (f CellFormat) IsBasic() bool {
	return (f.Type == ValueTypeUnknown || f.Type == ValueTypeText) && f == CellFormat{Type: f.Type}
}

// SheetCell is a spreadsheet cell.
type SheetCell struct {
	Column     int
	Row        int
	ColumnSpan int
	RowSpan    int
	Format     CellFormat
}

// CellRef points to a spreadsheet cell. Column and Row are zero based.
type CellRef struct {
	Sheet          string
	Column         int
	Row            int
	AbsoluteColumn bool
	AbsoluteRow    bool
}

func (r CellRef) String() string {
	var b strings.Builder
	if r.Sheet != "" {
		b.WriteString(r.Sheet)
		b.WriteByte('.')
	}
	if r.AbsoluteColumn {
		b.WriteByte('$')
	}
	b.WriteString(columnName(r.Column))
	if r.AbsoluteRow {
		b.WriteByte('$')
	}
	b.WriteString(strconv.Itoa(r.Row + 1))
	return b.String()
}

func columnName(col int) string {
	if col < 0 {
		col = 0
	}
	var buf []byte
	for col >= 0 {
		buf = append([]byte{byte('A' + col%26)}, buf...)
		col = col/26 - 1
	}
	return string(buf)
}

// FormulaKind tells how a FormulaInstruction is rendered.
type FormulaKind int

const (
	FormulaOperator FormulaKind = iota
	FormulaFunction
	FormulaCell
	FormulaCellRange
	FormulaNumber
	FormulaText
)

// FormulaInstruction is one token of a cell formula.
type FormulaInstruction struct {
	Kind  FormulaKind
	Text  string // operator, function name or text literal
	Value float64
	Refs  [2]CellRef
}

func (fi FormulaInstruction) String() string {
	switch fi.Kind {
	case FormulaCell:
		return fi.Refs[0].String()
	case FormulaCellRange:
		return fi.Refs[0].String() + ":" + fi.Refs[1].String()
	case FormulaNumber:
		return strconv.FormatFloat(fi.Value, 'g', -1, 64)
	case FormulaText:
		return strconv.Quote(fi.Text)
	default:
		return fi.Text
	}
}

// CellContent is the value payload of a spreadsheet cell.
type CellContent struct {
	Value    float64
	HasValue bool
	Text     string
	Formula  []FormulaInstruction
}

// FormulaString renders the formula as an expression starting with "=", or
// returns an empty string when the cell has no formula.
func (c CellContent) FormulaString() string {
	if len(c.Formula) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('=')
	for _, fi := range c.Formula {
		b.WriteString(fi.String())
	}
	return b.String()
}

// ListLevel describes one nesting level of a list.
type ListLevel struct {
	Ordered    bool
	StartValue int
	Label      string // bullet character or number format, e.g. "1." or "a)"
	Indent     float64
}

// List is a list descriptor; its ID is what paragraphs refer to.
type List struct {
	ID     int
	Levels []ListLevel
}

// Level returns the definition of level (1 based). Levels past the
// definition repeat the deepest one, an empty list is unordered.
func (l List) Level(level int) ListLevel {
	if len(l.Levels) == 0 {
		return ListLevel{Label: "•"}
	}
	idx := min(max(level, 1), len(l.Levels)) - 1
	return l.Levels[idx]
}

// ChartSeries is a named run of chart values.
type ChartSeries struct {
	Name   string
	Values []float64
}

// ChartTextZone is a text area of a chart (title, legend...) rendered as
// sub-document content.
type ChartTextZone struct {
	Name    string
	Content SubDocument
}

// Chart is a chart model.
type Chart struct {
	Kind      string
	Title     string
	Series    []ChartSeries
	TextZones []ChartTextZone
}
