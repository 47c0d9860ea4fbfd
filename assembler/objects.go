package assembler

import (
	"go.uber.org/zap"
)

// OpenLink starts a hyperlink inside the current paragraph.
func (a *Assembler) OpenLink(l Link) Result {
	if !a.ready() {
		return a.ignored("OpenLink", "document is finished")
	}
	if a.ps.inLink {
		return a.ignored("OpenLink", "links do not nest")
	}
	if !a.CanWriteText() || !a.ensureParagraph() {
		return a.ignored("OpenLink", "text is not allowed here")
	}
	a.flushDeferredTabs()
	a.closeSpan()
	a.sink.Open(ScopeLink, l)

	clone := *a.ps
	clone.reason = pushedForLink
	clone.inLink = true
	clone.spanOpened = false
	clone.pending = textBuffer{}
	clone.listLevels = nil
	a.pushState(&clone)
	return ResultApplied
}

// CloseLink ends the open hyperlink.
func (a *Assembler) CloseLink() Result {
	if a.ps.reason != pushedForLink {
		return a.ignored("CloseLink", "link is not open")
	}
	a.closeLinkState()
	return ResultApplied
}

func (a *Assembler) closeLinkState() {
	a.closeSpan()
	a.sink.Close(ScopeLink)
	a.popState()
}

// InsertNote inserts a footnote or an endnote whose content comes from sub.
// Inside headers and footers the content is rendered in place instead.
func (a *Assembler) InsertNote(n Note, sub SubDocument) Result {
	if !a.ready() {
		return a.ignored("InsertNote", "document is finished")
	}
	if a.ps.noteOpened {
		return a.ignored("InsertNote", "notes do not nest")
	}
	if !n.Kind.IsValid() {
		return a.ignored("InsertNote", "unknown note kind")
	}
	if a.ps.inHeaderFooter() {
		if !a.CanWriteText() {
			return a.ignored("InsertNote", "text is not allowed here")
		}
		a.log.Debug("Note inside header or footer, rendering in place")
		a.closeListLevels()
		return a.renderNote(ScopeFootnote, sub)
	}
	if !a.CanWriteText() || !a.ensureParagraph() {
		return a.ignored("InsertNote", "text is not allowed here")
	}
	a.flushDeferredTabs()
	a.closeSpan()

	scope, counter := ScopeFootnote, &a.ds.footnotes
	if n.Kind == NoteKindEndnote {
		scope, counter = ScopeEndnote, &a.ds.endnotes
	}
	if n.Number > 0 {
		*counter = n.Number
	} else {
		*counter++
	}
	n.Number = *counter

	a.sink.Open(scope, n)
	res := a.renderNote(scope, sub)
	a.sink.Close(scope)
	return res
}

// InsertComment inserts an annotation whose content comes from sub.
func (a *Assembler) InsertComment(sub SubDocument) Result {
	if !a.ready() {
		return a.ignored("InsertComment", "document is finished")
	}
	if a.ps.noteOpened {
		return a.ignored("InsertComment", "comments are not allowed in notes")
	}
	if !a.CanWriteText() || !a.ensureParagraph() {
		return a.ignored("InsertComment", "text is not allowed here")
	}
	a.flushDeferredTabs()
	a.closeSpan()
	a.sink.Open(ScopeComment, nil)
	res := a.renderNote(ScopeComment, sub)
	a.sink.Close(ScopeComment)
	return res
}

func (a *Assembler) renderNote(scope Scope, sub SubDocument) Result {
	kind := SubDocumentKindNote
	if scope == ScopeComment {
		kind = SubDocumentKindComment
	}
	ps := a.ps
	ps.noteOpened, ps.noteScope = true, scope
	res := a.handleSubDocument(sub, kind)
	ps.noteOpened = false
	return res
}

// openFrame opens a frame anchored as pos requires.
func (a *Assembler) openFrame(op string, pos Position, style GraphicStyle) bool {
	ps := a.ps
	if ps.frameOpened {
		a.ignored(op, "frame already open")
		return false
	}
	if ps.tableOpened && !ps.tableCellOpened {
		a.ignored(op, "table cell is not open")
		return false
	}

	switch pos.Anchor {
	case AnchorKindPage:
		switch {
		case ps.inParagraph():
			a.flushDeferredTabs()
			a.closeSpan()
		case ps.reason == pushedForDocument:
			a.closeListLevels()
			if !a.prepareBody() {
				a.ignored(op, "body could not be opened")
				return false
			}
			a.ds.spanHasBody = true
		case ps.sheetOpened && !ps.sheetCellOpened:
			if ps.sheetRowOpened {
				a.ignored(op, "sheet cell is not open")
				return false
			}
		default:
			if !a.CanWriteText() || !a.ensureParagraph() {
				a.ignored(op, "frame is not allowed here")
				return false
			}
			a.closeSpan()
		}
	case AnchorKindParagraph:
		if !a.CanWriteText() || !a.ensureParagraph() {
			a.ignored(op, "frame is not allowed here")
			return false
		}
		a.flushDeferredTabs()
		a.closeSpan()
	case AnchorKindChar, AnchorKindCharBaseline:
		if !a.CanWriteText() || !a.prepareText() {
			a.ignored(op, "frame is not allowed here")
			return false
		}
		a.flushText()
	default:
		a.ignored(op, "unknown anchor")
		return false
	}

	ev := FrameEvent{Position: pos}
	if style != (GraphicStyle{}) {
		name, added := a.ds.graphics.lookup(style)
		if added {
			a.sink.DefineGraphicStyle(name, style)
		}
		ev.StyleName = name
	}
	a.sink.Open(ScopeFrame, ev)
	a.ps.frameOpened = true
	return true
}

func (a *Assembler) closeFrame() {
	if !a.ps.frameOpened {
		return
	}
	a.sink.Close(ScopeFrame)
	a.ps.frameOpened = false
}

// InsertPicture inserts an embedded object in a frame. Past the small
// picture limit, pictures no larger than 8x8 points are dropped.
func (a *Assembler) InsertPicture(pos Position, obj BinaryObject, style GraphicStyle) Result {
	if !a.ready() {
		return a.ignored("InsertPicture", "document is finished")
	}
	if len(obj.Data) == 0 {
		return a.ignored("InsertPicture", "empty object")
	}
	if pos.Width <= smallPictureSize && pos.Height <= smallPictureSize {
		ds := a.ds
		ds.smallPictures++
		if ds.smallPictures > ds.smallPictureLimit {
			if !ds.smallPictureWarned {
				ds.smallPictureWarned = true
				a.log.Warn("Too many small pictures, dropping the rest", zap.Int("limit", ds.smallPictureLimit))
			}
			return ResultIgnored
		}
	}
	if !a.openFrame("InsertPicture", pos, style) {
		return ResultIgnored
	}
	a.sink.InsertBinaryObject(obj)
	a.closeFrame()
	return ResultApplied
}

// InsertTextBox inserts a frame whose text comes from sub.
func (a *Assembler) InsertTextBox(pos Position, sub SubDocument, style GraphicStyle) Result {
	if !a.ready() {
		return a.ignored("InsertTextBox", "document is finished")
	}
	if !a.openFrame("InsertTextBox", pos, style) {
		return ResultIgnored
	}
	ps := a.ps
	a.sink.Open(ScopeTextBox, nil)
	ps.textBoxOpened = true
	res := a.handleSubDocument(sub, SubDocumentKindTextBox)
	ps.textBoxOpened = false
	a.sink.Close(ScopeTextBox)
	a.closeFrame()
	return res
}

// InsertChart inserts a chart in a frame; each chart text zone is rendered
// as a text box inside the chart.
func (a *Assembler) InsertChart(pos Position, chart Chart, style GraphicStyle) Result {
	if !a.ready() {
		return a.ignored("InsertChart", "document is finished")
	}
	if !a.openFrame("InsertChart", pos, style) {
		return ResultIgnored
	}
	ps := a.ps
	res := ResultApplied
	a.sink.Open(ScopeChart, chart)
	for _, zone := range chart.TextZones {
		a.sink.Open(ScopeTextBox, zone)
		ps.textBoxOpened = true
		if zr := a.handleSubDocument(zone.Content, SubDocumentKindChartZone); zr != ResultApplied && res == ResultApplied {
			res = zr
		}
		ps.textBoxOpened = false
		a.sink.Close(ScopeTextBox)
	}
	a.sink.Close(ScopeChart)
	a.closeFrame()
	return res
}
