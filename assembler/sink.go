package assembler

// Sink receives the well formed event stream. Every Open is eventually
// matched by a Close of the same scope and scopes nest strictly.
//
// Open props by scope:
//
//	ScopePageSpan                        PageSpanEvent
//	ScopeHeader, ScopeFooter             Occurrence
//	ScopeSection                         Section
//	ScopeParagraph, ScopeListElement     ParagraphEvent
//	ScopeOrderedListLevel, ...Unordered  ListLevelEvent
//	ScopeSpan                            Font
//	ScopeLink                            Link
//	ScopeFootnote, ScopeEndnote          Note
//	ScopeComment                         nil
//	ScopeFrame                           FrameEvent
//	ScopeTextBox                         nil or ChartTextZone
//	ScopeTable                           Table
//	ScopeTableRow                        Row
//	ScopeTableCell, ScopeCoveredTableCell Cell
//	ScopeSheet                           Sheet
//	ScopeSheetRow                        SheetRow
//	ScopeSheetCell                       SheetCellEvent
//	ScopeChart                           Chart
type Sink interface {
	StartDocument(meta Metadata)
	EndDocument()

	Open(scope Scope, props any)
	Close(scope Scope)

	InsertText(text string)
	InsertSpace()
	InsertTab()
	InsertLineBreak()
	InsertField(f Field)
	InsertBinaryObject(obj BinaryObject)

	DefineGraphicStyle(name string, style GraphicStyle)
	DefineNumberingStyle(name string, format CellFormat)
}

// PageSpanEvent opens a page span: the template and the pages it covers.
type PageSpanEvent struct {
	PageSpan
	FirstPage int // 1 based
	Pages     int
}

// ParagraphEvent opens a paragraph or a list element.
type ParagraphEvent struct {
	Paragraph
	PageBreakBefore   bool
	ColumnBreakBefore bool
	FirstInPageSpan   bool
}

// ListLevelEvent opens a list level. StartValue is non zero only the first
// time the level of a given list is opened.
type ListLevelEvent struct {
	ListID     int
	Level      int
	Definition ListLevel
	StartValue int
}

// FrameEvent opens a frame; StyleName refers to a DefineGraphicStyle call
// and is empty for the default style.
type FrameEvent struct {
	Position
	StyleName string
}

// SheetCellEvent opens a spreadsheet cell; NumberingStyle refers to a
// DefineNumberingStyle call and is empty for basic formats.
type SheetCellEvent struct {
	SheetCell
	Content        CellContent
	NumberingStyle string
}
