package assembler

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// ensureParagraph opens a paragraph, or a list element when the pending
// paragraph belongs to a list, together with every missing ancestor.
func (a *Assembler) ensureParagraph() bool {
	if a.ps.inParagraph() {
		return true
	}
	if !a.CanWriteText() || !a.prepareBody() {
		return false
	}
	a.changeList()

	ps, ds := a.ps, a.ds
	ev := ParagraphEvent{
		Paragraph:         ps.paragraph,
		PageBreakBefore:   ps.needPageBreak,
		ColumnBreakBefore: ps.needColumnBreak,
	}
	ps.needPageBreak, ps.needColumnBreak = false, false
	if !ps.inSubDocument && ds.firstParagraphInSpan {
		ds.firstParagraphInSpan = false
		ev.FirstInPageSpan = true
		ev.PageBreakBefore = false
	}

	if len(ps.listLevels) > 0 {
		a.sink.Open(ScopeListElement, ev)
		ps.listElementOpened = true
	} else {
		a.sink.Open(ScopeParagraph, ev)
		ps.paragraphOpened = true
	}
	return true
}

// closeParagraph closes links, span and the open paragraph or list element.
// List levels stay open.
func (a *Assembler) closeParagraph() {
	a.leaveLinks()
	ps := a.ps
	if !ps.inParagraph() {
		return
	}
	a.closeSpan()
	if ps.listElementOpened {
		a.sink.Close(ScopeListElement)
	} else {
		a.sink.Close(ScopeParagraph)
	}
	ps.paragraphOpened, ps.listElementOpened = false, false
}

func (a *Assembler) ensureSpan() bool {
	if a.ps.spanOpened {
		return true
	}
	if !a.ensureParagraph() {
		return false
	}
	ps := a.ps
	f := ps.font
	if ps.suppressDecoration {
		f = f.withoutDecorationLines()
	}
	a.sink.Open(ScopeSpan, f)
	ps.spanOpened = true
	return true
}

func (a *Assembler) closeSpan() {
	ps := a.ps
	if !ps.spanOpened {
		return
	}
	ps.pending.flush(a.sink)
	a.sink.Close(ScopeSpan)
	ps.spanOpened = false
}

func (a *Assembler) flushText() {
	a.ps.pending.flush(a.sink)
}

// flushDeferredTabs emits tabs requested before the paragraph existed. Tabs
// never carry underline, overline or strike-out.
func (a *Assembler) flushDeferredTabs() {
	ps := a.ps
	if ps.pending.tabs == 0 {
		return
	}
	suppress := ps.font.HasDecorationLine()
	if suppress {
		a.closeSpan()
		ps.suppressDecoration = true
	} else {
		a.flushText()
	}
	if a.ensureSpan() {
		for ; ps.pending.tabs > 0; ps.pending.tabs-- {
			a.sink.InsertTab()
		}
	}
	if suppress {
		a.closeSpan()
		ps.suppressDecoration = false
	}
}

// prepareText opens everything text needs and emits deferred tabs.
func (a *Assembler) prepareText() bool {
	if !a.ensureParagraph() {
		return false
	}
	a.flushDeferredTabs()
	return a.ensureSpan()
}

// SetFont changes the pending font. A different font ends the open span.
func (a *Assembler) SetFont(f Font) Result {
	if a.ps.font == f {
		return ResultApplied
	}
	a.closeSpan()
	a.ps.font = f
	return ResultApplied
}

// SetParagraph changes the formatting used for the next paragraph.
func (a *Assembler) SetParagraph(p Paragraph) Result {
	if a.ps.paragraph.Equal(p) {
		return ResultApplied
	}
	a.ps.paragraph = p
	return ResultApplied
}

// InsertChar inserts a byte in the legacy charset of the document.
func (a *Assembler) InsertChar(b byte) Result {
	return a.InsertUnicode(a.ds.charmap.DecodeByte(b))
}

// InsertUnicode inserts one character. Tab and line ends are routed to
// InsertTab and InsertEOL, other control characters are dropped.
func (a *Assembler) InsertUnicode(r rune) Result {
	switch {
	case r == utf8.RuneError:
		return a.ignored("InsertUnicode", "replacement character")
	case r == '\t':
		return a.InsertTab()
	case r == '\n' || r == '\r':
		return a.InsertEOL(false)
	case r < 0x20 || r == 0x7f:
		a.log.Debug("Control character dropped", zap.Int32("char", r))
		return ResultIgnored
	}
	if !a.ready() {
		return a.ignored("InsertUnicode", "document is finished")
	}
	if !a.CanWriteText() || !a.prepareText() {
		return a.ignored("InsertUnicode", "text is not allowed here")
	}
	a.ps.pending.appendRune(r)
	return ResultApplied
}

// InsertUnicodeString inserts every character of s.
func (a *Assembler) InsertUnicodeString(s string) Result {
	res := ResultIgnored
	for _, r := range s {
		if a.InsertUnicode(r) == ResultApplied {
			res = ResultApplied
		}
	}
	return res
}

// InsertTab inserts a tab. Without an open paragraph the tab waits for the
// next text.
func (a *Assembler) InsertTab() Result {
	if !a.ready() {
		return a.ignored("InsertTab", "document is finished")
	}
	if !a.CanWriteText() {
		return a.ignored("InsertTab", "text is not allowed here")
	}
	a.ps.pending.tabs++
	if a.ps.inParagraph() {
		a.flushDeferredTabs()
	}
	return ResultApplied
}

// InsertEOL ends a line. A soft end inserts a line break, a hard one ends
// the paragraph and resets the font script.
func (a *Assembler) InsertEOL(soft bool) Result {
	if !a.ready() {
		return a.ignored("InsertEOL", "document is finished")
	}
	if !a.CanWriteText() || !a.ensureParagraph() {
		return a.ignored("InsertEOL", "text is not allowed here")
	}
	a.flushDeferredTabs()
	if soft {
		if !a.ensureSpan() {
			return a.ignored("InsertEOL", "span could not be opened")
		}
		a.flushText()
		a.sink.InsertLineBreak()
		return ResultApplied
	}
	a.closeParagraph()
	a.ps.font.Script = ScriptNormal
	return ResultApplied
}

// InsertField inserts a field computed by the consumer.
func (a *Assembler) InsertField(f Field) Result {
	if !a.ready() {
		return a.ignored("InsertField", "document is finished")
	}
	if !f.Kind.IsValid() {
		return a.ignored("InsertField", "unknown field")
	}
	if !a.CanWriteText() || !a.prepareText() {
		return a.ignored("InsertField", "text is not allowed here")
	}
	a.flushText()
	a.sink.InsertField(f)
	return ResultApplied
}
