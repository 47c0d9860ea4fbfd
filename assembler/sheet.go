package assembler

// OpenSheet starts a spreadsheet. Sheets never nest.
func (a *Assembler) OpenSheet(s Sheet) Result {
	if !a.ready() {
		return a.ignored("OpenSheet", "document is finished")
	}
	if a.flavor != FlavorSpreadsheet {
		return a.ignored("OpenSheet", "sheets need the spreadsheet flavor")
	}
	if a.ds.sheetOpened {
		return a.ignored("OpenSheet", "sheet already open")
	}
	if a.ps.tableOpened && !a.ps.tableCellOpened {
		return a.ignored("OpenSheet", "table cell is not open")
	}
	a.closeListLevels()
	if !a.prepareBody() {
		return a.ignored("OpenSheet", "body could not be opened")
	}
	if a.ps.reason == pushedForDocument {
		a.ds.spanHasBody = true
	}
	a.sink.Open(ScopeSheet, s)
	st := a.childState(pushedForSheet)
	st.sheetOpened = true
	a.pushState(st)
	a.ds.sheetOpened = true
	return ResultApplied
}

// OpenSheetRow starts a row, closing the previous one when necessary.
func (a *Assembler) OpenSheetRow(r SheetRow) Result {
	if !a.ready() {
		return a.ignored("OpenSheetRow", "document is finished")
	}
	a.leaveLinks()
	if !a.ps.sheetOpened {
		return a.ignored("OpenSheetRow", "sheet is not open")
	}
	res := ResultApplied
	if a.ps.sheetRowOpened {
		a.closeSheetRow()
		res = a.repaired("OpenSheetRow", "closing previous row")
	}
	a.sink.Open(ScopeSheetRow, r)
	a.ps.sheetRowOpened = true
	return res
}

// OpenSheetCell starts a cell. A format that needs a numbering style is
// defined in the sink before the cell is opened.
func (a *Assembler) OpenSheetCell(c SheetCell, content CellContent) Result {
	if !a.ready() {
		return a.ignored("OpenSheetCell", "document is finished")
	}
	a.leaveLinks()
	if !a.ps.sheetRowOpened {
		return a.ignored("OpenSheetCell", "row is not open")
	}
	res := ResultApplied
	if a.ps.sheetCellOpened {
		a.closeSheetCell()
		res = a.repaired("OpenSheetCell", "closing previous cell")
	}

	ev := SheetCellEvent{SheetCell: c, Content: content}
	if !c.Format.IsBasic() {
		name, added := a.ds.numbering.lookup(c.Format)
		if added {
			a.sink.DefineNumberingStyle(name, c.Format)
		}
		ev.NumberingStyle = name
	}
	a.sink.Open(ScopeSheetCell, ev)
	a.ps.sheetCellOpened = true
	return res
}

// InsertSheetCell emits a whole cell whose content comes from sub.
func (a *Assembler) InsertSheetCell(c SheetCell, content CellContent, sub SubDocument) Result {
	res := a.OpenSheetCell(c, content)
	if !res.Opened() {
		return res
	}
	if sr := a.handleSubDocument(sub, SubDocumentKindSheetCell); sr != ResultApplied {
		res = sr
	}
	a.CloseSheetCell()
	return res
}

// CloseSheetCell closes the open cell.
func (a *Assembler) CloseSheetCell() Result {
	a.leaveLinks()
	if !a.ps.sheetCellOpened {
		return a.ignored("CloseSheetCell", "cell is not open")
	}
	a.closeSheetCell()
	return ResultApplied
}

// CloseSheetRow closes the open row and its cell.
func (a *Assembler) CloseSheetRow() Result {
	a.leaveLinks()
	if !a.ps.sheetRowOpened {
		return a.ignored("CloseSheetRow", "row is not open")
	}
	a.closeSheetRow()
	return ResultApplied
}

// CloseSheet closes the sheet and restores the enclosing state.
func (a *Assembler) CloseSheet() Result {
	a.leaveLinks()
	if a.ps.reason != pushedForSheet {
		return a.ignored("CloseSheet", "sheet is not open")
	}
	a.closeSheetState()
	return ResultApplied
}

func (a *Assembler) closeSheetCell() {
	if !a.ps.sheetCellOpened {
		return
	}
	a.closeListLevels()
	a.ps.pending.tabs = 0
	a.sink.Close(ScopeSheetCell)
	a.ps.sheetCellOpened = false
}

func (a *Assembler) closeSheetRow() {
	if !a.ps.sheetRowOpened {
		return
	}
	a.closeSheetCell()
	a.sink.Close(ScopeSheetRow)
	a.ps.sheetRowOpened = false
}

func (a *Assembler) closeSheetState() {
	a.closeSheetRow()
	a.sink.Close(ScopeSheet)
	a.popState()
	a.ds.sheetOpened = false
}
