package trace

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"mwc/assembler"
)

var (
	paragraphParents = []assembler.Scope{
		assembler.ScopeSection, assembler.ScopeHeader, assembler.ScopeFooter, assembler.ScopeFootnote, assembler.ScopeEndnote,
		assembler.ScopeComment, assembler.ScopeTextBox, assembler.ScopeTableCell, assembler.ScopeSheetCell,
	}
	listLevelParents = append([]assembler.Scope{assembler.ScopeOrderedListLevel, assembler.ScopeUnorderedListLevel}, paragraphParents...)
	inlineParents    = []assembler.Scope{assembler.ScopeParagraph, assembler.ScopeListElement}

	allowedParents = map[assembler.Scope][]assembler.Scope{
		assembler.ScopeHeader:             {assembler.ScopePageSpan},
		assembler.ScopeFooter:             {assembler.ScopePageSpan},
		assembler.ScopeSection:            {assembler.ScopePageSpan, assembler.ScopeTextBox},
		assembler.ScopeParagraph:          paragraphParents,
		assembler.ScopeOrderedListLevel:   listLevelParents,
		assembler.ScopeUnorderedListLevel: listLevelParents,
		assembler.ScopeListElement:        {assembler.ScopeOrderedListLevel, assembler.ScopeUnorderedListLevel},
		assembler.ScopeSpan:               {assembler.ScopeParagraph, assembler.ScopeListElement, assembler.ScopeLink},
		assembler.ScopeLink:               inlineParents,
		assembler.ScopeFootnote:           {assembler.ScopeParagraph, assembler.ScopeListElement, assembler.ScopeLink},
		assembler.ScopeEndnote:            {assembler.ScopeParagraph, assembler.ScopeListElement, assembler.ScopeLink},
		assembler.ScopeComment:            {assembler.ScopeParagraph, assembler.ScopeListElement, assembler.ScopeLink},
		assembler.ScopeFrame: {
			assembler.ScopePageSpan, assembler.ScopeSection, assembler.ScopeParagraph, assembler.ScopeListElement,
			assembler.ScopeSpan, assembler.ScopeLink, assembler.ScopeSheet,
		},
		assembler.ScopeTextBox:          {assembler.ScopeFrame, assembler.ScopeChart},
		assembler.ScopeChart:            {assembler.ScopeFrame},
		assembler.ScopeTable:            paragraphParents,
		assembler.ScopeTableRow:         {assembler.ScopeTable},
		assembler.ScopeTableCell:        {assembler.ScopeTableRow},
		assembler.ScopeCoveredTableCell: {assembler.ScopeTableRow},
		assembler.ScopeSheet: {
			assembler.ScopePageSpan, assembler.ScopeHeader, assembler.ScopeFooter, assembler.ScopeFootnote, assembler.ScopeEndnote,
			assembler.ScopeComment, assembler.ScopeTextBox, assembler.ScopeTableCell,
		},
		assembler.ScopeSheetRow:  {assembler.ScopeSheet},
		assembler.ScopeSheetCell: {assembler.ScopeSheetRow},
	}
)

var errNotStarted = errors.New("document was not started")

// Validate checks that recorded events form one well nested document where
// every scope appears inside a parent that may hold it.
func (r *Recorder) Validate() (err error) {
	if len(r.events) == 0 || r.events[0].Kind != EventKindStart {
		return errNotStarted
	}

	var stack []assembler.Scope
	ended := false
	for i, e := range r.events[1:] {
		pos := i + 1
		if ended {
			return fmt.Errorf("event %d (%s) after document end", pos, e)
		}
		switch e.Kind {
		case EventKindStart:
			err = multierr.Append(err, fmt.Errorf("event %d: document started twice", pos))
		case EventKindEnd:
			if len(stack) > 0 {
				err = multierr.Append(err, fmt.Errorf("event %d: document ended with %v still open", pos, stack))
			}
			ended = true
		case EventKindOpen:
			if e2 := checkParent(e.Scope, stack); e2 != nil {
				err = multierr.Append(err, fmt.Errorf("event %d: %w", pos, e2))
			}
			stack = append(stack, e.Scope)
		case EventKindClose:
			if len(stack) == 0 {
				err = multierr.Append(err, fmt.Errorf("event %d: closing %s with nothing open", pos, e.Scope))
				continue
			}
			if top := stack[len(stack)-1]; top != e.Scope {
				err = multierr.Append(err, fmt.Errorf("event %d: closing %s while %s is open", pos, e.Scope, top))
			}
			stack = stack[:len(stack)-1]
		case EventKindText, EventKindSpace, EventKindTab, EventKindLineBreak, EventKindField:
			if len(stack) == 0 || stack[len(stack)-1] != assembler.ScopeSpan {
				err = multierr.Append(err, fmt.Errorf("event %d: %s outside of span", pos, e))
			}
		case EventKindObject:
			if len(stack) == 0 || stack[len(stack)-1] != assembler.ScopeFrame {
				err = multierr.Append(err, fmt.Errorf("event %d: object outside of frame", pos))
			}
		}
	}
	if !ended {
		err = multierr.Append(err, errors.New("document was not ended"))
	}
	return err
}

func checkParent(scope assembler.Scope, stack []assembler.Scope) error {
	if scope == assembler.ScopePageSpan {
		if len(stack) != 0 {
			return fmt.Errorf("page span opened inside %s", stack[len(stack)-1])
		}
		return nil
	}
	if len(stack) == 0 {
		return fmt.Errorf("%s opened outside of page span", scope)
	}
	parent := stack[len(stack)-1]
	for _, p := range allowedParents[scope] {
		if p == parent {
			return nil
		}
	}
	return fmt.Errorf("%s opened inside %s", scope, parent)
}
