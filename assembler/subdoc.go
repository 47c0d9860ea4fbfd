package assembler

import (
	"slices"

	"go.uber.org/zap"
)

// handleSubDocument renders sub in a fresh scope state. The enclosing state
// is restored afterwards whatever the content did, including panicking.
func (a *Assembler) handleSubDocument(sub SubDocument, kind SubDocumentKind) (res Result) {
	if !a.ready() {
		return a.ignored("SubDocument", "document is finished")
	}

	parent := a.ps
	s := newScopeState(pushedForSubDocument, a.defaultFont)
	s.kind = kind
	s.inSubDocument = true
	s.pageSpanOpened = true
	s.noteOpened = parent.noteOpened
	s.noteScope = parent.noteScope
	s.headerFooter = parent.headerFooter
	depth := len(a.stack)
	a.pushState(s)

	guarded := false
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("Sub-document content aborted", zap.Stringer("kind", kind), zap.Any("panic", r))
			res = ResultAborted
		}
		a.closeAll()
		if guarded {
			a.ds.subDocuments = a.ds.subDocuments[:len(a.ds.subDocuments)-1]
		}
		for len(a.stack) > depth {
			a.popState()
		}
	}()

	if sub == nil {
		return ResultApplied
	}
	id := sub.ID()
	if slices.Contains(a.ds.subDocuments, id) {
		a.log.Warn("Recursive sub-document refused", zap.String("id", id), zap.Stringer("kind", kind))
		a.InsertUnicode(' ')
		return ResultRefused
	}
	a.ds.subDocuments = append(a.ds.subDocuments, id)
	guarded = true

	sub.Send(a, kind)
	return ResultApplied
}
