package assembler

//go:generate go tool go-enum --marshal --names

// Capability set of an assembler.
// ENUM(text, spreadsheet)
type Flavor int

// Structural containers of the output grammar as seen by a Sink.
// ENUM(pageSpan, header, footer, section, paragraph, orderedListLevel, unorderedListLevel, listElement, span, link, footnote, endnote, comment, frame, textBox, table, tableRow, tableCell, coveredTableCell, sheet, sheetRow, sheetCell, chart)
type Scope int

// Outcome of a producer-facing operation.
// ENUM(applied, ignored, repaired, refused, aborted)
type Result int

// ENUM(page, softPage, column)
type BreakKind int

// Context a sub-document is rendered in.
// ENUM(none, header, footer, note, comment, textBox, tableCell, sheetCell, chartZone)
type SubDocumentKind int

// ENUM(footnote, endnote)
type NoteKind int

// ENUM(pageNumber, pageCount, date, time, title, database)
type FieldKind int

// What a frame is anchored to.
// ENUM(page, paragraph, char, charBaseline)
type AnchorKind int

// Value type of a spreadsheet cell.
// ENUM(unknown, text, number, boolean, date, time)
type ValueType int

// ENUM(normal, superscript, subscript)
type Script int

// ENUM(left, right, center, full)
type Justification int

// Pages a header or a footer applies to.
// ENUM(all, odd, even, first)
type Occurrence int

// Opened reports whether the result means the requested construct is in place.
func (r Result) Opened() bool {
	return r == ResultApplied || r == ResultRepaired
}
