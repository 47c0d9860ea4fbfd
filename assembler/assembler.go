// Package assembler turns a loosely ordered stream of document building
// calls into a strictly nested event stream for a Sink.
package assembler

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// DefaultSmallPictureLimit is the number of tiny pictures kept per document.
const DefaultSmallPictureLimit = 200

// smallPictureSize is the largest width and height, in points, of a picture
// counted against the small picture limit.
const smallPictureSize = 8

// ErrNoPageSpan is returned when an assembler is created without page
// templates.
var ErrNoPageSpan = errors.New("no page span template")

// Options tunes an Assembler.
type Options struct {
	SmallPictureLimit int
	Charmap           *charmap.Charmap
	DefaultFont       Font
	Metadata          Metadata
}

// WithSmallPictureLimit sets how many pictures no larger than 8x8 points
// are kept; the rest are dropped.
func WithSmallPictureLimit(limit int) func(*Options) {
	return func(o *Options) {
		o.SmallPictureLimit = limit
	}
}

// WithCharmap sets the charset used to decode InsertChar bytes.
func WithCharmap(cm *charmap.Charmap) func(*Options) {
	return func(o *Options) {
		if cm != nil {
			o.Charmap = cm
		}
	}
}

// WithDefaultFont sets the font fresh scopes start with.
func WithDefaultFont(f Font) func(*Options) {
	return func(o *Options) {
		o.DefaultFont = f
	}
}

// WithMetadata sets document metadata.
func WithMetadata(meta Metadata) func(*Options) {
	return func(o *Options) {
		o.Metadata = meta
	}
}

// Assembler implements Listener on top of a Sink.
type Assembler struct {
	flavor      Flavor
	sink        Sink
	log         *zap.Logger
	defaultFont Font

	ds    *documentState
	ps    *scopeState
	stack []*scopeState
}

var _ Listener = (*Assembler)(nil)

// New creates an assembler. pages lists page templates in document order
// and must not be empty.
func New(flavor Flavor, sink Sink, pages []PageSpan, log *zap.Logger, options ...func(*Options)) (*Assembler, error) {
	if !flavor.IsValid() {
		return nil, fmt.Errorf("unable to create assembler: %w", ErrInvalidFlavor)
	}
	if sink == nil {
		return nil, errors.New("unable to create assembler: sink is not set")
	}
	if len(pages) == 0 {
		return nil, ErrNoPageSpan
	}
	if log == nil {
		log = zap.NewNop()
	}

	opts := Options{
		SmallPictureLimit: DefaultSmallPictureLimit,
		Charmap:           charmap.Macintosh,
		DefaultFont:       DefaultFont(),
	}
	for _, o := range options {
		o(&opts)
	}

	a := &Assembler{
		flavor:      flavor,
		sink:        sink,
		log:         log.Named("assembler"),
		defaultFont: opts.DefaultFont,
		ds:          newDocumentState(pages, &opts),
	}
	a.ds.meta = opts.Metadata
	a.ps = newScopeState(pushedForDocument, a.defaultFont)
	return a, nil
}

// Flavor returns the capability set the assembler was created with.
func (a *Assembler) Flavor() Flavor {
	return a.flavor
}

func (a *Assembler) ignored(op, reason string) Result {
	a.log.Debug("Call ignored", zap.String("op", op), zap.String("reason", reason))
	return ResultIgnored
}

func (a *Assembler) repaired(op, what string) Result {
	a.log.Warn("Unexpected call, repairing", zap.String("op", op), zap.String("repair", what))
	return ResultRepaired
}

// ready starts the document on first use. It returns false once the
// document is finished or broken.
func (a *Assembler) ready() bool {
	if a.ds.fatal != nil || a.ds.ended {
		return false
	}
	if !a.ds.started {
		a.ds.started = true
		a.sink.StartDocument(a.ds.meta)
	}
	return true
}

func (a *Assembler) fail(err error) {
	if a.ds.fatal == nil {
		a.log.Error("Document assembly failed", zap.Error(err))
		a.ds.fatal = err
	}
}

func (a *Assembler) pushState(s *scopeState) {
	a.stack = append(a.stack, a.ps)
	a.ps = s
}

func (a *Assembler) popState() {
	n := len(a.stack)
	if n == 0 {
		return
	}
	a.ps, a.stack = a.stack[n-1], a.stack[:n-1]
}

// childState starts a state for content nested in the current one.
func (a *Assembler) childState(reason pushReason) *scopeState {
	parent := a.ps
	s := newScopeState(reason, a.defaultFont)
	s.kind = parent.kind
	s.pageSpanOpened = parent.pageSpanOpened
	s.sectionOpened = parent.sectionOpened
	s.inSubDocument = parent.inSubDocument
	s.noteOpened = parent.noteOpened
	s.noteScope = parent.noteScope
	s.headerFooter = parent.headerFooter
	return s
}

// unwindStructures closes links, tables and sheets stacked above the current
// document or sub-document state.
func (a *Assembler) unwindStructures() {
	for {
		switch a.ps.reason {
		case pushedForLink:
			a.closeLinkState()
		case pushedForTable:
			a.closeTableState()
		case pushedForSheet:
			a.closeSheetState()
		default:
			return
		}
	}
}

// closeAll closes every scope opened by the current document or
// sub-document state, innermost first.
func (a *Assembler) closeAll() {
	a.unwindStructures()
	a.closeParagraph()
	a.closeListLevels()
	a.ps.pending.tabs = 0
	a.closeSection()
	if a.ps.reason == pushedForDocument {
		a.closePageSpan()
	}
}

// SetDocumentMetadata replaces metadata sent with StartDocument.
func (a *Assembler) SetDocumentMetadata(meta Metadata) Result {
	if a.ds.started {
		return a.ignored("SetDocumentMetadata", "document already started")
	}
	a.ds.meta = meta
	return ResultApplied
}

// StartDocument starts the document explicitly. Any other call starts it
// implicitly.
func (a *Assembler) StartDocument() Result {
	if a.ds.started {
		return a.ignored("StartDocument", "document already started")
	}
	if !a.ready() {
		return a.ignored("StartDocument", "document is finished")
	}
	return ResultApplied
}

// EndDocument closes every open scope and finishes the document. It returns
// the fatal error, if any, that stopped assembly.
func (a *Assembler) EndDocument() error {
	if a.ds.ended {
		a.ignored("EndDocument", "document already ended")
		return a.ds.fatal
	}
	if a.ps.inSubDocument {
		a.ignored("EndDocument", "inside sub-document")
		return nil
	}
	if !a.ds.started {
		a.ds.started = true
		a.sink.StartDocument(a.ds.meta)
	}
	a.unwindStructures()
	if a.ds.fatal == nil && a.ds.spansOpened == 0 {
		a.openPageSpan(true)
	}
	a.closeAll()
	a.sink.EndDocument()
	a.ds.ended = true
	return a.ds.fatal
}

// IsOpen reports whether scope is open in the current context.
func (a *Assembler) IsOpen(scope Scope) bool {
	ps := a.ps
	switch scope {
	case ScopePageSpan:
		return ps.pageSpanOpened
	case ScopeHeader:
		return ps.headerFooter == SubDocumentKindHeader
	case ScopeFooter:
		return ps.headerFooter == SubDocumentKindFooter
	case ScopeSection:
		return ps.sectionOpened
	case ScopeParagraph:
		return ps.paragraphOpened
	case ScopeListElement:
		return ps.listElementOpened
	case ScopeOrderedListLevel, ScopeUnorderedListLevel:
		for _, ordered := range ps.listLevels {
			if ordered == (scope == ScopeOrderedListLevel) {
				return true
			}
		}
		return false
	case ScopeSpan:
		return ps.spanOpened
	case ScopeLink:
		return ps.inLink
	case ScopeFootnote, ScopeEndnote, ScopeComment:
		return ps.noteOpened && ps.noteScope == scope
	case ScopeFrame:
		return ps.frameOpened
	case ScopeTextBox:
		return ps.textBoxOpened || ps.kind == SubDocumentKindTextBox || ps.kind == SubDocumentKindChartZone
	case ScopeChart:
		return ps.kind == SubDocumentKindChartZone
	case ScopeTable:
		return ps.tableOpened
	case ScopeTableRow:
		return ps.tableRowOpened
	case ScopeTableCell:
		return ps.tableCellOpened
	case ScopeSheet:
		return ps.sheetOpened
	case ScopeSheetRow:
		return ps.sheetRowOpened
	case ScopeSheetCell:
		return ps.sheetCellOpened
	}
	return false
}

// CanWriteText reports whether text may be inserted in the current context.
func (a *Assembler) CanWriteText() bool {
	if a.ds.fatal != nil || a.ds.ended {
		return false
	}
	ps := a.ps
	switch {
	case ps.tableOpened && !ps.tableCellOpened:
		return false
	case ps.sheetOpened && !ps.sheetCellOpened:
		return false
	case a.flavor == FlavorSpreadsheet:
		return ps.inSubDocument || ps.tableCellOpened || ps.sheetCellOpened
	}
	return true
}

// Font returns the pending font.
func (a *Assembler) Font() Font {
	return a.ps.font
}

// Paragraph returns the pending paragraph formatting.
func (a *Assembler) Paragraph() Paragraph {
	return a.ps.paragraph
}
