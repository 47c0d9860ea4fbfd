package assembler

// Listener is the vocabulary producers use to describe a document. Calls may
// arrive in any order; each reports what became of it.
type Listener interface {
	SetDocumentMetadata(meta Metadata) Result
	StartDocument() Result
	EndDocument() error

	// queries
	IsOpen(scope Scope) bool
	CanWriteText() bool
	Font() Font
	Paragraph() Paragraph
	CurrentPageSpan() (PageSpan, bool)

	// page layout
	OpenPageSpan(withHeaderFooter bool) Result
	ClosePageSpan() Result
	InsertHeader(occurrence Occurrence, sub SubDocument) Result
	InsertFooter(occurrence Occurrence, sub SubDocument) Result
	OpenSection(s Section) Result
	SetSection(s Section) Result
	CloseSection() Result
	InsertBreak(kind BreakKind) Result

	// text
	SetFont(f Font) Result
	SetParagraph(p Paragraph) Result
	DefineList(l List) Result
	InsertChar(b byte) Result
	InsertUnicode(r rune) Result
	InsertUnicodeString(s string) Result
	InsertTab() Result
	InsertEOL(soft bool) Result
	InsertField(f Field) Result
	OpenLink(l Link) Result
	CloseLink() Result

	// sub-documents and objects
	InsertNote(n Note, sub SubDocument) Result
	InsertComment(sub SubDocument) Result
	InsertTextBox(pos Position, sub SubDocument, style GraphicStyle) Result
	InsertPicture(pos Position, obj BinaryObject, style GraphicStyle) Result
	InsertChart(pos Position, chart Chart, style GraphicStyle) Result

	// tables
	OpenTable(t Table) Result
	OpenTableRow(r Row) Result
	OpenTableCell(c Cell) Result
	InsertCoveredTableCell(c Cell) Result
	InsertTableCell(c Cell, sub SubDocument) Result
	CloseTableCell() Result
	CloseTableRow() Result
	CloseTable() Result

	// sheets
	OpenSheet(s Sheet) Result
	OpenSheetRow(r SheetRow) Result
	OpenSheetCell(c SheetCell, content CellContent) Result
	InsertSheetCell(c SheetCell, content CellContent, sub SubDocument) Result
	CloseSheetCell() Result
	CloseSheetRow() Result
	CloseSheet() Result
}

// SubDocument is content rendered out of line: headers, notes, text boxes,
// cells. The assembler renders it by calling Send with itself as listener.
type SubDocument interface {
	// ID identifies the content; rendering the same ID while it is already
	// being rendered is refused.
	ID() string
	Send(l Listener, kind SubDocumentKind)
}

type subDocumentFunc struct {
	id   string
	send func(Listener, SubDocumentKind)
}

func (s subDocumentFunc) ID() string { return s.id }

func (s subDocumentFunc) Send(l Listener, kind SubDocumentKind) {
	if s.send != nil {
		s.send(l, kind)
	}
}

// NewSubDocument wraps a function into a SubDocument.
func NewSubDocument(id string, send func(l Listener, kind SubDocumentKind)) SubDocument {
	return subDocumentFunc{id: id, send: send}
}
