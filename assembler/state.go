package assembler

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// pushReason tells why a scope state was put on top of the stack.
type pushReason int

const (
	pushedForDocument pushReason = iota
	pushedForSubDocument
	pushedForLink
	pushedForTable
	pushedForSheet
)

type listLevelKey struct {
	list, level int
}

// documentState is shared by every scope state of one document.
type documentState struct {
	meta    Metadata
	started bool
	ended   bool
	fatal   error

	pages                []PageSpan
	spanIndex            int // template of the open page span
	spansOpened          int
	currentPage          int // zero based index of the page being filled
	pagesRemaining       int
	spanBreakDeferred    bool
	firstParagraphInSpan bool
	spanHasBody          bool

	footnotes int
	endnotes  int

	smallPictures      int
	smallPictureLimit  int
	smallPictureWarned bool

	subDocuments []string // ids being rendered, innermost last

	lists      map[int]List
	listStarts map[listLevelKey]bool

	numbering *styleRegistry[CellFormat]
	graphics  *styleRegistry[GraphicStyle]

	sheetOpened bool
	charmap     *charmap.Charmap
}

func newDocumentState(pages []PageSpan, opts *Options) *documentState {
	return &documentState{
		pages:             pages,
		smallPictureLimit: opts.SmallPictureLimit,
		lists:             make(map[int]List),
		listStarts:        make(map[listLevelKey]bool),
		numbering:         newStyleRegistry[CellFormat]("N"),
		graphics:          newStyleRegistry[GraphicStyle]("gr"),
		charmap:           opts.Charmap,
	}
}

// templateFor returns the index of the template covering page and the
// cumulative page count at the end of that template. Past the end of the
// list the last template keeps covering one page at a time.
func (ds *documentState) templateFor(page int) (int, int, bool) {
	end := 0
	for i, p := range ds.pages {
		end += p.pages()
		if page < end {
			return i, end, true
		}
	}
	return len(ds.pages) - 1, page + 1, false
}

// scopeState is the formatting and the open scopes of one level of nesting.
type scopeState struct {
	reason pushReason
	kind   SubDocumentKind

	font           Font
	paragraph      Paragraph
	section        Section
	sectionChanged bool

	pageSpanOpened    bool
	sectionOpened     bool
	frameOpened       bool
	paragraphOpened   bool
	listElementOpened bool
	spanOpened        bool
	tableOpened       bool
	tableRowOpened    bool
	tableCellOpened   bool
	sheetOpened       bool
	sheetRowOpened    bool
	sheetCellOpened   bool
	textBoxOpened     bool
	noteOpened        bool
	noteScope         Scope

	// headerFooter is the header or footer being rendered, inherited by
	// nested states.
	headerFooter SubDocumentKind

	listLevels []bool // ordered flag of every open level, outermost first
	listID     int

	pending textBuffer

	needPageBreak   bool
	needColumnBreak bool

	inLink             bool
	inSubDocument      bool
	suppressDecoration bool
}

func newScopeState(reason pushReason, font Font) *scopeState {
	return &scopeState{reason: reason, font: font}
}

func (s *scopeState) inHeaderFooter() bool {
	return s.headerFooter != SubDocumentKindNone
}

func (s *scopeState) inParagraph() bool {
	return s.paragraphOpened || s.listElementOpened
}

// styleRegistry hands out one generated name per distinct style value.
type styleRegistry[K comparable] struct {
	prefix string
	names  map[K]string
}

func newStyleRegistry[K comparable](prefix string) *styleRegistry[K] {
	return &styleRegistry[K]{prefix: prefix, names: make(map[K]string)}
}

// lookup returns the name of v, registering it when necessary. The second
// result is true when v was registered by this call.
func (r *styleRegistry[K]) lookup(v K) (string, bool) {
	if name, ok := r.names[v]; ok {
		return name, false
	}
	name := fmt.Sprintf("%s%d", r.prefix, len(r.names)+1)
	r.names[v] = name
	return name, true
}

func (r *styleRegistry[K]) len() int {
	return len(r.names)
}
