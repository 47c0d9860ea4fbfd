package assembler

import (
	"go.uber.org/zap"
)

// DefineList registers a list descriptor. Redefining an id replaces the
// descriptor for levels opened afterwards.
func (a *Assembler) DefineList(l List) Result {
	if a.ds.ended {
		return a.ignored("DefineList", "document is finished")
	}
	if l.ID == 0 {
		return a.ignored("DefineList", "list id 0 is reserved")
	}
	a.ds.lists[l.ID] = l
	return ResultApplied
}

// changeList brings the open list levels in line with the pending paragraph.
// Levels are closed down to the requested depth, or entirely when the list
// changes, then missing levels are opened from the outermost one.
func (a *Assembler) changeList() {
	ps := a.ps
	level := max(ps.paragraph.ListLevel, 0)

	var list List
	if level > 0 {
		l, ok := a.ds.lists[ps.paragraph.ListID]
		if !ok {
			a.log.Debug("Unknown list, using plain paragraph", zap.Int("list", ps.paragraph.ListID))
			ps.paragraph.ListLevel = 0
			level = 0
		}
		list = l
	}

	keep := level
	if level > 0 && ps.listID != list.ID {
		keep = 0
	}
	for len(ps.listLevels) > keep {
		a.closeListLevel()
	}
	if level == 0 {
		return
	}

	ps.listID = list.ID
	for lvl := len(ps.listLevels) + 1; lvl <= level; lvl++ {
		def := list.Level(lvl)
		ev := ListLevelEvent{ListID: list.ID, Level: lvl, Definition: def}

		start := def.StartValue
		if lvl == level && ps.paragraph.ListStart > 0 {
			start = ps.paragraph.ListStart
		}
		key := listLevelKey{list: list.ID, level: lvl}
		if def.Ordered && start > 0 && !a.ds.listStarts[key] {
			ev.StartValue = start
			a.ds.listStarts[key] = true
		}

		if def.Ordered {
			a.sink.Open(ScopeOrderedListLevel, ev)
		} else {
			a.sink.Open(ScopeUnorderedListLevel, ev)
		}
		ps.listLevels = append(ps.listLevels, def.Ordered)
	}
}

func (a *Assembler) closeListLevel() {
	ps := a.ps
	n := len(ps.listLevels)
	if n == 0 {
		return
	}
	if ps.listLevels[n-1] {
		a.sink.Close(ScopeOrderedListLevel)
	} else {
		a.sink.Close(ScopeUnorderedListLevel)
	}
	ps.listLevels = ps.listLevels[:n-1]
}

// closeListLevels closes the paragraph and every open list level.
func (a *Assembler) closeListLevels() {
	a.closeParagraph()
	for len(a.ps.listLevels) > 0 {
		a.closeListLevel()
	}
	a.ps.listID = 0
}
