package assembler

import (
	"go.uber.org/zap"
)

// allowsSection reports whether sections may be opened in the current state.
func (a *Assembler) allowsSection() bool {
	ps := a.ps
	if a.flavor != FlavorText || ps.tableOpened || ps.sheetOpened {
		return false
	}
	return !ps.inSubDocument || ps.kind == SubDocumentKindTextBox
}

func (a *Assembler) openPageSpan(withHeaderFooter bool) bool {
	ps, ds := a.ps, a.ds
	if ps.pageSpanOpened {
		return true
	}
	if len(ds.pages) == 0 {
		a.fail(ErrNoPageSpan)
		return false
	}

	idx, end, ok := ds.templateFor(ds.currentPage)
	if !ok {
		a.log.Debug("Page templates exhausted, reusing last one", zap.Int("page", ds.currentPage+1))
	}
	span := ds.pages[idx]
	ds.spanIndex = idx
	ds.pagesRemaining = end - ds.currentPage - 1
	ds.spansOpened++
	ds.spanBreakDeferred = false
	ds.firstParagraphInSpan = true
	ds.spanHasBody = false

	a.sink.Open(ScopePageSpan, PageSpanEvent{PageSpan: span, FirstPage: ds.currentPage + 1, Pages: ds.pagesRemaining + 1})
	ps.pageSpanOpened = true

	if withHeaderFooter {
		for _, hf := range span.HeadersFooters {
			kind := SubDocumentKindHeader
			if hf.Footer {
				kind = SubDocumentKindFooter
			}
			a.insertHeaderFooter(kind, hf.Occurrence, hf.Content)
		}
	}
	return true
}

func (a *Assembler) closePageSpan() {
	if !a.ps.pageSpanOpened {
		return
	}
	a.closeSection()
	a.sink.Close(ScopePageSpan)
	a.ps.pageSpanOpened = false
	a.ds.spanBreakDeferred = false
}

// prepareBody makes sure the container of body level content is open: a
// section in the text flavor, the page span otherwise. Page span closes
// deferred by a page break inside a table happen here.
func (a *Assembler) prepareBody() bool {
	if a.ps.reason == pushedForDocument && a.ds.spanBreakDeferred {
		a.closePageSpan()
	}
	if a.allowsSection() {
		if a.ps.sectionChanged {
			a.closeSection()
		}
		return a.openSection()
	}
	if a.ps.pageSpanOpened || a.ps.inSubDocument {
		return true
	}
	if !a.openPageSpan(true) {
		return false
	}
	a.ds.spanHasBody = true
	return true
}

func (a *Assembler) openSection() bool {
	if a.ps.sectionOpened {
		return true
	}
	if !a.ps.pageSpanOpened && !a.openPageSpan(true) {
		return false
	}
	ps := a.ps
	a.sink.Open(ScopeSection, ps.section)
	ps.sectionOpened = true
	ps.sectionChanged = false
	if !ps.inSubDocument {
		a.ds.spanHasBody = true
	}
	return true
}

func (a *Assembler) closeSection() {
	if !a.ps.sectionOpened {
		return
	}
	a.closeParagraph()
	a.closeListLevels()
	a.sink.Close(ScopeSection)
	a.ps.sectionOpened = false
	a.ps.sectionChanged = false
}

// OpenPageSpan opens the page span for the running page.
func (a *Assembler) OpenPageSpan(withHeaderFooter bool) Result {
	if !a.ready() {
		return a.ignored("OpenPageSpan", "document is finished")
	}
	if a.ps.reason != pushedForDocument {
		return a.ignored("OpenPageSpan", "nested context")
	}
	if a.ps.pageSpanOpened {
		return a.ignored("OpenPageSpan", "page span already open")
	}
	if !a.openPageSpan(withHeaderFooter) {
		return a.ignored("OpenPageSpan", "page span could not be opened")
	}
	return ResultApplied
}

// ClosePageSpan closes the page span with everything it contains.
func (a *Assembler) ClosePageSpan() Result {
	if !a.ready() {
		return a.ignored("ClosePageSpan", "document is finished")
	}
	if a.ps.inSubDocument {
		return a.ignored("ClosePageSpan", "inside sub-document")
	}
	res := ResultApplied
	if a.ps.reason != pushedForDocument {
		a.unwindStructures()
		res = a.repaired("ClosePageSpan", "closing nested structures")
	}
	if !a.ps.pageSpanOpened {
		return a.ignored("ClosePageSpan", "page span is not open")
	}
	a.closePageSpan()
	return res
}

// CurrentPageSpan returns the template of the running page, opening the page
// span when necessary.
func (a *Assembler) CurrentPageSpan() (PageSpan, bool) {
	if !a.ready() {
		return PageSpan{}, false
	}
	if !a.ps.pageSpanOpened && !a.openPageSpan(true) {
		return PageSpan{}, false
	}
	return a.ds.pages[a.ds.spanIndex], true
}

// OpenSection opens a section with the given layout. When a section is
// already open the new layout replaces it before the next paragraph.
func (a *Assembler) OpenSection(s Section) Result {
	if !a.ready() {
		return a.ignored("OpenSection", "document is finished")
	}
	if !a.allowsSection() {
		return a.ignored("OpenSection", "sections are not allowed here")
	}
	if a.ps.sectionOpened {
		if s == a.ps.section && !a.ps.sectionChanged {
			return a.ignored("OpenSection", "section already open")
		}
		a.ps.section = s
		a.ps.sectionChanged = true
		return a.repaired("OpenSection", "reopening section")
	}
	a.ps.section = s
	if a.ps.reason == pushedForDocument && a.ds.spanBreakDeferred {
		a.closePageSpan()
	}
	if !a.openSection() {
		return a.ignored("OpenSection", "page span could not be opened")
	}
	return ResultApplied
}

// SetSection changes the pending section layout.
func (a *Assembler) SetSection(s Section) Result {
	if a.ps.section == s {
		return ResultApplied
	}
	a.ps.section = s
	if a.ps.sectionOpened {
		a.ps.sectionChanged = true
	}
	return ResultApplied
}

// CloseSection closes the open section.
func (a *Assembler) CloseSection() Result {
	if !a.ready() {
		return a.ignored("CloseSection", "document is finished")
	}
	if !a.allowsSection() {
		return a.ignored("CloseSection", "sections are not allowed here")
	}
	a.unwindStructures()
	if !a.ps.sectionOpened {
		return a.ignored("CloseSection", "section is not open")
	}
	a.closeSection()
	return ResultApplied
}

// InsertBreak ends the open paragraph and starts a new page or column.
func (a *Assembler) InsertBreak(kind BreakKind) Result {
	if !a.ready() {
		return a.ignored("InsertBreak", "document is finished")
	}
	if !kind.IsValid() {
		return a.ignored("InsertBreak", "unknown break")
	}
	if kind == BreakKindColumn {
		a.closeParagraph()
		a.ps.needColumnBreak = true
		return ResultApplied
	}
	if a.ps.inSubDocument {
		if kind == BreakKindPage {
			a.closeParagraph()
			a.ps.needPageBreak = true
		}
		return ResultApplied
	}

	if !a.ps.pageSpanOpened && !a.openPageSpan(true) {
		return a.ignored("InsertBreak", "page span could not be opened")
	}
	a.closeParagraph()

	ds := a.ds
	ds.currentPage++
	switch {
	case ds.pagesRemaining > 0:
		ds.pagesRemaining--
		if kind == BreakKindPage {
			a.ps.needPageBreak = true
		}
	case a.ps.reason != pushedForDocument:
		ds.spanBreakDeferred = true
	default:
		a.closePageSpan()
	}
	return ResultApplied
}

// InsertHeader adds header content to the page span. Only allowed before the
// page span received any body content.
func (a *Assembler) InsertHeader(occurrence Occurrence, sub SubDocument) Result {
	return a.insertHeaderFooter(SubDocumentKindHeader, occurrence, sub)
}

// InsertFooter adds footer content to the page span.
func (a *Assembler) InsertFooter(occurrence Occurrence, sub SubDocument) Result {
	return a.insertHeaderFooter(SubDocumentKindFooter, occurrence, sub)
}

func (a *Assembler) insertHeaderFooter(kind SubDocumentKind, occurrence Occurrence, sub SubDocument) Result {
	op := "InsertHeader"
	if kind == SubDocumentKindFooter {
		op = "InsertFooter"
	}
	if !a.ready() {
		return a.ignored(op, "document is finished")
	}
	ps := a.ps
	switch {
	case ps.reason != pushedForDocument:
		return a.ignored(op, "nested context")
	case !ps.pageSpanOpened:
		return a.ignored(op, "page span is not open")
	case a.ds.spanHasBody:
		return a.ignored(op, "page span already has content")
	case ps.inHeaderFooter():
		return a.ignored(op, "header or footer already open")
	}

	scope := ScopeHeader
	if kind == SubDocumentKindFooter {
		scope = ScopeFooter
	}
	a.sink.Open(scope, occurrence)
	ps.headerFooter = kind
	res := a.handleSubDocument(sub, kind)
	ps.headerFooter = SubDocumentKindNone
	a.sink.Close(scope)
	return res
}
