// Package xhtml renders the assembler event stream as a single XHTML
// document.
package xhtml

import (
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"mwc/assembler"
)

// Options controls rendering.
type Options struct {
	// Stylesheet is appended to the generated style element.
	Stylesheet string
	// PageGeometry renders page span size and margins.
	PageGeometry bool
	// Generator is written to the generator meta element when not empty.
	Generator string
}

// Writer is an assembler.Sink building an XHTML document.
type Writer struct {
	log  *zap.Logger
	opts Options

	doc   *etree.Document
	body  *etree.Element
	style *etree.Element
	notes *etree.Element // detached until the document ends
	stack []*etree.Element
	// original tags of block elements rendered as span
	blocks map[*etree.Element]string

	meta      assembler.Metadata
	page      int
	noteSeq   int
	graphics  map[string]assembler.GraphicStyle
	numbering map[string]assembler.CellFormat
}

var _ assembler.Sink = (*Writer)(nil)

func New(opts Options, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{
		log:       log.Named("xhtml"),
		opts:      opts,
		graphics:  make(map[string]assembler.GraphicStyle),
		numbering: make(map[string]assembler.CellFormat),
	}
}

// Document returns the document built so far, nil before StartDocument.
func (w *Writer) Document() *etree.Document {
	return w.doc
}

// WriteTo writes the document.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if w.doc == nil {
		return 0, fmt.Errorf("unable to write xhtml: document was not started")
	}
	return w.doc.WriteTo(out)
}

func (w *Writer) top() *etree.Element {
	return w.stack[len(w.stack)-1]
}

func (w *Writer) push(e *etree.Element) {
	w.stack = append(w.stack, e)
}

func (w *Writer) StartDocument(meta assembler.Metadata) {
	w.meta = meta

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")
	if meta.Language != "" {
		html.CreateAttr("xml:lang", meta.Language)
		html.CreateAttr("lang", meta.Language)
	}

	head := html.CreateElement("head")
	m := head.CreateElement("meta")
	m.CreateAttr("http-equiv", "Content-Type")
	m.CreateAttr("content", "text/html; charset=utf-8")
	for _, kv := range [][2]string{
		{"author", meta.Author},
		{"description", meta.Subject},
		{"keywords", meta.Keywords},
		{"generator", w.opts.Generator},
		{"identifier", meta.ID},
	} {
		if kv[1] == "" {
			continue
		}
		m := head.CreateElement("meta")
		m.CreateAttr("name", kv[0])
		m.CreateAttr("content", kv[1])
	}
	head.CreateElement("title").SetText(meta.Title)
	w.style = head.CreateElement("style")
	w.style.CreateAttr("type", "text/css")

	w.doc = doc
	w.body = html.CreateElement("body")
	w.notes = etree.NewElement("div")
	w.notes.CreateAttr("class", "notes")
	w.stack = []*etree.Element{w.body}
	w.blocks = make(map[*etree.Element]string)
}

func (w *Writer) EndDocument() {
	if w.doc == nil {
		return
	}
	if len(w.stack) != 1 {
		w.log.Warn("Document ended with open elements", zap.Int("open", len(w.stack)-1))
	}
	if len(w.notes.ChildElements()) > 0 {
		w.body.AddChild(w.notes)
	}

	var css strings.Builder
	css.WriteString(baseStylesheet)
	for _, name := range sortedKeys(w.graphics) {
		css.WriteString(graphicRule(name, w.graphics[name]))
	}
	for _, name := range sortedKeys(w.numbering) {
		css.WriteString(numberingRule(name, w.numbering[name]))
	}
	css.WriteString(w.opts.Stylesheet)
	w.style.SetText(css.String())
	w.stack = w.stack[:0]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

func (w *Writer) Open(scope assembler.Scope, props any) {
	if len(w.stack) == 0 {
		w.log.Warn("Element opened outside of document", zap.Stringer("scope", scope))
		return
	}
	parent := w.top()
	var e *etree.Element

	switch scope {
	case assembler.ScopePageSpan:
		ev, _ := props.(assembler.PageSpanEvent)
		w.page = ev.FirstPage
		e = w.newElement(parent, "div", "page-span")
		e.CreateAttr("data-first-page", strconv.Itoa(ev.FirstPage))
		e.CreateAttr("data-pages", strconv.Itoa(ev.Pages))
		if w.opts.PageGeometry {
			setStyle(e, pageStyle(ev.PageSpan))
		}
	case assembler.ScopeHeader, assembler.ScopeFooter:
		occ, _ := props.(assembler.Occurrence)
		e = w.newElement(parent, "div", scope.String())
		e.CreateAttr("data-occurrence", occ.String())
	case assembler.ScopeSection:
		s, _ := props.(assembler.Section)
		e = w.newElement(parent, "div", "section")
		setStyle(e, sectionStyle(s))
	case assembler.ScopeParagraph:
		ev, _ := props.(assembler.ParagraphEvent)
		tag := "p"
		if ev.OutlineLevel > 0 {
			tag = "h" + strconv.Itoa(min(ev.OutlineLevel, 6))
		}
		e = w.create(parent, tag)
		setStyle(e, paragraphStyle(ev))
	case assembler.ScopeOrderedListLevel, assembler.ScopeUnorderedListLevel:
		ev, _ := props.(assembler.ListLevelEvent)
		e = w.openList(parent, scope == assembler.ScopeOrderedListLevel, ev)
	case assembler.ScopeListElement:
		ev, _ := props.(assembler.ParagraphEvent)
		e = w.create(parent, "li")
		setStyle(e, paragraphStyle(ev))
	case assembler.ScopeSpan:
		f, _ := props.(assembler.Font)
		e = parent.CreateElement("span")
		setStyle(e, fontStyle(f))
		if f.Language != "" {
			e.CreateAttr("lang", f.Language)
		}
	case assembler.ScopeLink:
		l, _ := props.(assembler.Link)
		e = parent.CreateElement("a")
		e.CreateAttr("href", l.Target)
		if l.Title != "" {
			e.CreateAttr("title", l.Title)
		}
	case assembler.ScopeFootnote, assembler.ScopeEndnote:
		n, _ := props.(assembler.Note)
		label := n.Label
		if label == "" {
			label = strconv.Itoa(n.Number)
		}
		e = w.openNote(parent, scope.String(), label)
	case assembler.ScopeComment:
		e = w.openNote(parent, "comment", "*")
	case assembler.ScopeFrame:
		ev, _ := props.(assembler.FrameEvent)
		tag := "div"
		if inPhrasing(parent) || ev.Anchor == assembler.AnchorKindChar || ev.Anchor == assembler.AnchorKindCharBaseline {
			tag = "span"
		}
		class := "frame"
		if ev.StyleName != "" {
			class += " " + ev.StyleName
		}
		e = w.newElement(parent, tag, class)
		setStyle(e, frameStyle(ev.Position))
	case assembler.ScopeTextBox:
		e = w.newElement(parent, "div", "text-box")
		if zone, ok := props.(assembler.ChartTextZone); ok && zone.Name != "" {
			e.CreateAttr("data-zone", zone.Name)
		}
	case assembler.ScopeChart:
		c, _ := props.(assembler.Chart)
		e = w.openChart(parent, c)
	case assembler.ScopeTable:
		t, _ := props.(assembler.Table)
		e = w.create(parent, "table")
		if len(t.Columns) > 0 {
			cg := w.create(e, "colgroup")
			for _, width := range t.Columns {
				setStyle(w.create(cg, "col"), fmt.Sprintf("width: %gpt", width))
			}
		}
	case assembler.ScopeTableRow:
		r, _ := props.(assembler.Row)
		e = w.create(parent, "tr")
		if r.Height > 0 {
			setStyle(e, fmt.Sprintf("height: %gpt", r.Height))
		}
	case assembler.ScopeTableCell:
		c, _ := props.(assembler.Cell)
		e = w.openCell(parent, c)
	case assembler.ScopeCoveredTableCell:
		// covered cells are part of the spanning cell
		e = etree.NewElement("td")
	case assembler.ScopeSheet:
		s, _ := props.(assembler.Sheet)
		e = w.newElement(parent, "table", "sheet")
		if s.Name != "" {
			e.CreateAttr("title", s.Name)
			w.create(e, "caption").SetText(s.Name)
		}
	case assembler.ScopeSheetRow:
		r, _ := props.(assembler.SheetRow)
		e = w.create(parent, "tr")
		if r.Repeat > 1 {
			e.CreateAttr("data-repeat", strconv.Itoa(r.Repeat))
		}
	case assembler.ScopeSheetCell:
		ev, _ := props.(assembler.SheetCellEvent)
		e = w.openSheetCell(parent, ev)
	default:
		w.log.Warn("Unknown scope", zap.Stringer("scope", scope))
		e = etree.NewElement("div")
	}
	w.push(e)
}

func (w *Writer) Close(scope assembler.Scope) {
	if len(w.stack) <= 1 {
		w.log.Warn("Unbalanced close", zap.Stringer("scope", scope))
		return
	}
	e := w.top()
	w.stack = w.stack[:len(w.stack)-1]

	if scope == assembler.ScopeSheetCell && e.SelectAttr("data-value") != nil && len(e.ChildElements()) == 0 && e.Text() == "" {
		e.SetText(e.SelectAttrValue("data-value", ""))
	}
}

func (w *Writer) newElement(parent *etree.Element, tag, class string) *etree.Element {
	e := w.create(parent, tag)
	e.CreateAttr("class", class)
	return e
}

// setStyle appends style to the style attribute of e.
func setStyle(e *etree.Element, style string) {
	if style == "" {
		return
	}
	if old := e.SelectAttrValue("style", ""); old != "" {
		style = old + "; " + style
	}
	e.CreateAttr("style", style)
}

// blockDisplay holds the display a block element keeps when it has to be
// rendered as span inside phrasing content.
var blockDisplay = map[string]string{
	"div": "block", "p": "block", "aside": "block",
	"h1": "block", "h2": "block", "h3": "block", "h4": "block", "h5": "block", "h6": "block",
	"ul": "block", "ol": "block", "li": "list-item",
	"table": "table", "caption": "table-caption", "colgroup": "table-column-group", "col": "table-column",
	"tr": "table-row", "td": "table-cell", "th": "table-cell",
}

func inPhrasing(e *etree.Element) bool {
	for ; e != nil; e = e.Parent() {
		switch e.Tag {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "span", "a":
			return true
		}
	}
	return false
}

// create adds a tag element to parent. Frames and text boxes anchored in
// paragraphs put their content inside phrasing elements, where block
// elements are not allowed: those become span with the same display.
func (w *Writer) create(parent *etree.Element, tag string) *etree.Element {
	display, ok := blockDisplay[tag]
	if !ok || !inPhrasing(parent) {
		return parent.CreateElement(tag)
	}
	e := parent.CreateElement("span")
	setStyle(e, "display: "+display)
	w.blocks[e] = tag
	return e
}

// tagOf returns the tag e stands for.
func (w *Writer) tagOf(e *etree.Element) string {
	if tag, ok := w.blocks[e]; ok {
		return tag
	}
	return e.Tag
}

// openList nests a list inside the last item of an enclosing list so the
// result stays valid XHTML.
func (w *Writer) openList(parent *etree.Element, ordered bool, ev assembler.ListLevelEvent) *etree.Element {
	if tag := w.tagOf(parent); tag == "ol" || tag == "ul" {
		var item *etree.Element
		for _, c := range parent.ChildElements() {
			if w.tagOf(c) == "li" {
				item = c
			}
		}
		if item == nil {
			item = w.create(parent, "li")
			setStyle(item, "list-style: none")
		}
		parent = item
	}
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	e := w.create(parent, tag)
	if ordered && ev.StartValue > 0 {
		e.CreateAttr("start", strconv.Itoa(ev.StartValue))
	}
	if ev.Definition.Indent > 0 {
		setStyle(e, fmt.Sprintf("margin-left: %gpt", ev.Definition.Indent))
	}
	return e
}

// openNote writes the reference mark in parent and returns the note body,
// kept at the end of the document.
func (w *Writer) openNote(parent *etree.Element, class, label string) *etree.Element {
	w.noteSeq++
	id := fmt.Sprintf("note-%d", w.noteSeq)
	ref := fmt.Sprintf("noteref-%d", w.noteSeq)

	a := w.newElement(parent, "a", "noteref")
	a.CreateAttr("id", ref)
	a.CreateAttr("href", "#"+id)
	a.CreateText(label)

	aside := w.newElement(w.notes, "aside", class)
	aside.CreateAttr("id", id)
	back := w.newElement(aside, "a", "backlink")
	back.CreateAttr("href", "#"+ref)
	back.CreateText(label)
	return aside
}

func (w *Writer) openChart(parent *etree.Element, c assembler.Chart) *etree.Element {
	e := w.newElement(parent, "div", "chart")
	if c.Kind != "" {
		e.CreateAttr("data-kind", c.Kind)
	}
	if c.Title != "" {
		e.CreateAttr("title", c.Title)
	}
	if len(c.Series) == 0 {
		return e
	}
	t := w.newElement(e, "table", "chart-data")
	for _, s := range c.Series {
		tr := w.create(t, "tr")
		w.create(tr, "th").SetText(s.Name)
		for _, v := range s.Values {
			w.create(tr, "td").SetText(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return e
}

func (w *Writer) openCell(parent *etree.Element, c assembler.Cell) *etree.Element {
	e := w.create(parent, "td")
	if c.ColumnSpan > 1 {
		e.CreateAttr("colspan", strconv.Itoa(c.ColumnSpan))
	}
	if c.RowSpan > 1 {
		e.CreateAttr("rowspan", strconv.Itoa(c.RowSpan))
	}
	if c.Borders {
		e.CreateAttr("class", "bordered")
	}
	if c.HasBackground {
		setStyle(e, "background-color: "+c.Background.Hex())
	}
	return e
}

func (w *Writer) openSheetCell(parent *etree.Element, ev assembler.SheetCellEvent) *etree.Element {
	e := w.create(parent, "td")
	if ev.ColumnSpan > 1 {
		e.CreateAttr("colspan", strconv.Itoa(ev.ColumnSpan))
	}
	if ev.RowSpan > 1 {
		e.CreateAttr("rowspan", strconv.Itoa(ev.RowSpan))
	}
	class := ""
	switch {
	case ev.NumberingStyle != "":
		class = ev.NumberingStyle
	case ev.Content.HasValue:
		class = "number"
	}
	if class != "" {
		e.CreateAttr("class", class)
	}
	if f := ev.Content.FormulaString(); f != "" {
		e.CreateAttr("data-formula", f)
	}
	if ev.Content.HasValue || ev.Content.Text != "" {
		e.CreateAttr("data-value", ev.Format.Format(ev.Content))
	}
	return e
}

// appendText adds text to the last text node of e or creates one.
func appendText(e *etree.Element, text string) {
	if n := len(e.Child); n > 0 {
		if cd, ok := e.Child[n-1].(*etree.CharData); ok {
			cd.Data += text
			return
		}
	}
	e.CreateText(text)
}

func (w *Writer) InsertText(text string) {
	if len(w.stack) > 0 {
		appendText(w.top(), text)
	}
}

func (w *Writer) InsertSpace() {
	if len(w.stack) > 0 {
		appendText(w.top(), " ")
	}
}

func (w *Writer) InsertTab() {
	if len(w.stack) > 0 {
		w.newElement(w.top(), "span", "tab").CreateText("\t")
	}
}

func (w *Writer) InsertLineBreak() {
	if len(w.stack) > 0 {
		w.top().CreateElement("br")
	}
}

func (w *Writer) InsertField(f assembler.Field) {
	if len(w.stack) == 0 {
		return
	}
	e := w.newElement(w.top(), "span", "field")
	e.CreateAttr("data-field", f.Kind.String())

	var text string
	switch f.Kind {
	case assembler.FieldKindPageNumber:
		text = strconv.Itoa(max(w.page, 1))
	case assembler.FieldKindPageCount:
		text = "#"
	case assembler.FieldKindDate, assembler.FieldKindTime:
		layout := f.Format
		if layout == "" {
			layout = "2006-01-02"
			if f.Kind == assembler.FieldKindTime {
				layout = "15:04"
			}
		}
		if !w.meta.Created.IsZero() {
			text = w.meta.Created.Format(layout)
		}
	case assembler.FieldKindTitle:
		text = w.meta.Title
	case assembler.FieldKindDatabase:
		text = f.Name
	}
	e.CreateText(text)
}

func (w *Writer) InsertBinaryObject(obj assembler.BinaryObject) {
	if len(w.stack) == 0 {
		return
	}
	mime := obj.MimeType
	if mime == "" {
		if kind, err := filetype.Match(obj.Data); err == nil && kind != filetype.Unknown {
			mime = kind.MIME.Value
		} else {
			mime = "application/octet-stream"
		}
	}
	src := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(obj.Data)

	if strings.HasPrefix(mime, "image/") {
		img := w.top().CreateElement("img")
		img.CreateAttr("src", src)
		img.CreateAttr("alt", obj.Alt)
		return
	}
	e := w.top().CreateElement("object")
	e.CreateAttr("data", src)
	e.CreateAttr("type", mime)
	if obj.Alt != "" {
		e.CreateText(obj.Alt)
	}
}

func (w *Writer) DefineGraphicStyle(name string, style assembler.GraphicStyle) {
	w.graphics[name] = style
}

func (w *Writer) DefineNumberingStyle(name string, format assembler.CellFormat) {
	w.numbering[name] = format
}
