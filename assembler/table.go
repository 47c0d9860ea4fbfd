package assembler

// OpenTable starts a table. The open paragraph and list are closed and the
// table content gets its own scope state.
func (a *Assembler) OpenTable(t Table) Result {
	if !a.ready() {
		return a.ignored("OpenTable", "document is finished")
	}
	if !a.CanWriteText() {
		return a.ignored("OpenTable", "table is not allowed here")
	}
	a.closeListLevels()
	if !a.prepareBody() {
		return a.ignored("OpenTable", "body could not be opened")
	}
	a.sink.Open(ScopeTable, t)
	s := a.childState(pushedForTable)
	s.tableOpened = true
	a.pushState(s)
	return ResultApplied
}

// OpenTableRow starts a row, closing the previous one when necessary.
func (a *Assembler) OpenTableRow(r Row) Result {
	if !a.ready() {
		return a.ignored("OpenTableRow", "document is finished")
	}
	a.leaveLinks()
	if !a.ps.tableOpened {
		return a.ignored("OpenTableRow", "table is not open")
	}
	res := ResultApplied
	if a.ps.tableRowOpened {
		a.closeTableRow()
		res = a.repaired("OpenTableRow", "closing previous row")
	}
	a.sink.Open(ScopeTableRow, r)
	a.ps.tableRowOpened = true
	return res
}

// OpenTableCell starts a cell, closing the previous one when necessary.
func (a *Assembler) OpenTableCell(c Cell) Result {
	if !a.ready() {
		return a.ignored("OpenTableCell", "document is finished")
	}
	a.leaveLinks()
	if !a.ps.tableRowOpened {
		return a.ignored("OpenTableCell", "row is not open")
	}
	res := ResultApplied
	if a.ps.tableCellOpened {
		a.closeTableCell()
		res = a.repaired("OpenTableCell", "closing previous cell")
	}
	a.sink.Open(ScopeTableCell, c)
	a.ps.tableCellOpened = true
	return res
}

// InsertCoveredTableCell emits a cell hidden by a spanning neighbour.
func (a *Assembler) InsertCoveredTableCell(c Cell) Result {
	if !a.ready() {
		return a.ignored("InsertCoveredTableCell", "document is finished")
	}
	a.leaveLinks()
	if !a.ps.tableRowOpened {
		return a.ignored("InsertCoveredTableCell", "row is not open")
	}
	res := ResultApplied
	if a.ps.tableCellOpened {
		a.closeTableCell()
		res = a.repaired("InsertCoveredTableCell", "closing previous cell")
	}
	a.sink.Open(ScopeCoveredTableCell, c)
	a.sink.Close(ScopeCoveredTableCell)
	return res
}

// InsertTableCell emits a whole cell whose content comes from sub.
func (a *Assembler) InsertTableCell(c Cell, sub SubDocument) Result {
	res := a.OpenTableCell(c)
	if !res.Opened() {
		return res
	}
	if sr := a.handleSubDocument(sub, SubDocumentKindTableCell); sr != ResultApplied {
		res = sr
	}
	a.CloseTableCell()
	return res
}

// CloseTableCell closes the open cell.
func (a *Assembler) CloseTableCell() Result {
	a.leaveLinks()
	if !a.ps.tableCellOpened {
		return a.ignored("CloseTableCell", "cell is not open")
	}
	a.closeTableCell()
	return ResultApplied
}

// CloseTableRow closes the open row and its cell.
func (a *Assembler) CloseTableRow() Result {
	a.leaveLinks()
	if !a.ps.tableRowOpened {
		return a.ignored("CloseTableRow", "row is not open")
	}
	a.closeTableRow()
	return ResultApplied
}

// CloseTable closes the innermost table and restores the enclosing state.
func (a *Assembler) CloseTable() Result {
	a.leaveLinks()
	if a.ps.reason != pushedForTable {
		return a.ignored("CloseTable", "table is not open")
	}
	a.closeTableState()
	return ResultApplied
}

func (a *Assembler) leaveLinks() {
	for a.ps.reason == pushedForLink {
		a.closeLinkState()
	}
}

func (a *Assembler) closeTableCell() {
	if !a.ps.tableCellOpened {
		return
	}
	a.closeListLevels()
	a.ps.pending.tabs = 0
	a.sink.Close(ScopeTableCell)
	a.ps.tableCellOpened = false
}

func (a *Assembler) closeTableRow() {
	if !a.ps.tableRowOpened {
		return
	}
	a.closeTableCell()
	a.sink.Close(ScopeTableRow)
	a.ps.tableRowOpened = false
}

func (a *Assembler) closeTableState() {
	a.closeTableRow()
	a.sink.Close(ScopeTable)
	a.popState()
}
