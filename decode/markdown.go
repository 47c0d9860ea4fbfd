package decode

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"mwc/assembler"
)

// headingSizes are font sizes of heading levels 1 to 6.
var headingSizes = [...]float64{24, 18, 14, 12, 11, 10}

const (
	monospace   = "Courier New"
	quoteIndent = 36
	columnWidth = 96
)

// Markdown reads CommonMark with GitHub tables, strikethrough and footnotes.
type Markdown struct{}

func (m *Markdown) Flavor() assembler.Flavor {
	return assembler.FlavorText
}

func (m *Markdown) Decode(ctx context.Context, r io.Reader, l assembler.Listener) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read markdown: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote))
	doc := md.Parser().Parse(text.NewReader(src))

	shared := &mdShared{src: src, footnotes: make(map[int]*east.Footnote)}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if fn, ok := n.(*east.Footnote); ok && entering {
			shared.footnotes[fn.Index] = fn
		}
		return ast.WalkContinue, nil
	})

	w := &mdWalker{mdShared: shared, l: l, font: l.Font()}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.block(n)
	}
	return nil
}

// mdShared is common to the document and its footnote sub-documents.
type mdShared struct {
	src       []byte
	footnotes map[int]*east.Footnote
	lists     int
}

// mdWalker sends goldmark nodes to one listener.
type mdWalker struct {
	*mdShared
	l    assembler.Listener
	font assembler.Font
	para assembler.Paragraph

	listID    int
	listLevel int
	listStart int
}

func (w *mdWalker) withFont(change func(f *assembler.Font), inner func()) {
	saved := w.font
	change(&w.font)
	w.l.SetFont(w.font)
	inner()
	w.font = saved
	w.l.SetFont(w.font)
}

// startParagraph sets the formatting of the paragraph about to be written.
func (w *mdWalker) startParagraph(p assembler.Paragraph) {
	p.ListID, p.ListLevel = w.listID, w.listLevel
	if w.listStart > 0 {
		p.ListStart = w.listStart
		w.listStart = 0
	}
	w.l.SetParagraph(p)
}

func (w *mdWalker) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		p := w.para
		p.OutlineLevel = n.Level
		w.startParagraph(p)
		w.withFont(func(f *assembler.Font) {
			f.Bold = true
			f.Size = headingSizes[min(max(n.Level, 1), len(headingSizes))-1]
		}, func() { w.inlines(n) })
		w.l.InsertEOL(false)

	case *ast.Paragraph, *ast.TextBlock:
		w.startParagraph(w.para)
		w.inlines(n)
		w.l.InsertEOL(false)

	case *ast.ThematicBreak:
		w.l.InsertBreak(assembler.BreakKindPage)

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		w.startParagraph(w.para)
		w.withFont(func(f *assembler.Font) { f.Name = monospace }, func() {
			lines := n.Lines()
			for i := range lines.Len() {
				line := lines.At(i)
				if i > 0 {
					w.l.InsertEOL(true)
				}
				w.l.InsertUnicodeString(trimEOL(string(line.Value(w.src))))
			}
		})
		w.l.InsertEOL(false)

	case *ast.Blockquote:
		saved := w.para
		w.para.MarginLeft += quoteIndent
		w.children(n)
		w.para = saved

	case *ast.List:
		w.list(n)

	case *east.Table:
		w.table(n)

	case *ast.HTMLBlock, *east.FootnoteList:
		// raw markup and footnote bodies are not part of the flow

	default:
		w.children(n)
	}
}

func (w *mdWalker) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.block(c)
	}
}

// list sends list items as paragraphs of a list level. Every top level list
// gets its own descriptor; the first list found at each depth decides the
// level definition.
func (w *mdWalker) list(n *ast.List) {
	savedID, savedLevel, savedStart := w.listID, w.listLevel, w.listStart
	if w.listLevel == 0 {
		w.lists++
		w.listID = w.lists
		w.l.DefineList(assembler.List{ID: w.listID, Levels: listLevels(n)})
	}
	w.listLevel++
	if n.IsOrdered() {
		w.listStart = max(n.Start, 1)
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		if item.FirstChild() == nil {
			w.startParagraph(w.para)
			w.l.InsertEOL(false)
			continue
		}
		w.children(item)
	}
	w.listID, w.listLevel, w.listStart = savedID, savedLevel, savedStart
}

func listLevels(top *ast.List) []assembler.ListLevel {
	var levels []assembler.ListLevel
	var visit func(n ast.Node, depth int)
	visit = func(n ast.Node, depth int) {
		if l, ok := n.(*ast.List); ok {
			if depth == len(levels) {
				lvl := assembler.ListLevel{Ordered: l.IsOrdered(), Indent: float64(depth+1) * quoteIndent}
				if l.IsOrdered() {
					lvl.StartValue = max(l.Start, 1)
					lvl.Label = "1" + string(l.Marker)
				} else {
					lvl.Label = "•"
				}
				levels = append(levels, lvl)
			}
			depth++
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c, depth)
		}
	}
	visit(top, 0)
	return levels
}

var alignments = map[east.Alignment]assembler.Justification{
	east.AlignLeft:   assembler.JustificationLeft,
	east.AlignRight:  assembler.JustificationRight,
	east.AlignCenter: assembler.JustificationCenter,
}

func (w *mdWalker) table(n *east.Table) {
	cols := make([]float64, len(n.Alignments))
	for i := range cols {
		cols[i] = columnWidth
	}
	w.l.OpenTable(assembler.Table{Columns: cols})
	row := 0
	for r := n.FirstChild(); r != nil; r = r.NextSibling() {
		_, header := r.(*east.TableHeader)
		w.l.OpenTableRow(assembler.Row{Header: header})
		col := 0
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cell, ok := c.(*east.TableCell)
			if !ok {
				continue
			}
			w.l.OpenTableCell(assembler.Cell{Column: col, Row: row, Borders: true})
			w.l.SetParagraph(assembler.Paragraph{Justify: alignments[cell.Alignment]})
			if header {
				w.withFont(func(f *assembler.Font) { f.Bold = true }, func() { w.inlines(cell) })
			} else {
				w.inlines(cell)
			}
			w.l.CloseTableCell()
			col++
		}
		w.l.CloseTableRow()
		row++
	}
	w.l.CloseTable()
}

func (w *mdWalker) inlines(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.inline(c)
	}
}

func (w *mdWalker) inline(n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		w.l.InsertUnicodeString(string(n.Segment.Value(w.src)))
		switch {
		case n.HardLineBreak():
			w.l.InsertEOL(true)
		case n.SoftLineBreak():
			w.l.InsertUnicode(' ')
		}

	case *ast.String:
		w.l.InsertUnicodeString(string(n.Value))

	case *ast.Emphasis:
		w.withFont(func(f *assembler.Font) {
			if n.Level >= 2 {
				f.Bold = true
			} else {
				f.Italic = true
			}
		}, func() { w.inlines(n) })

	case *east.Strikethrough:
		w.withFont(func(f *assembler.Font) { f.StrikeOut = true }, func() { w.inlines(n) })

	case *ast.CodeSpan:
		w.withFont(func(f *assembler.Font) { f.Name = monospace }, func() { w.inlines(n) })

	case *ast.Link:
		w.l.OpenLink(assembler.Link{Target: string(n.Destination), Title: string(n.Title)})
		w.inlines(n)
		w.l.CloseLink()

	case *ast.AutoLink:
		url := string(n.URL(w.src))
		if n.AutoLinkType == ast.AutoLinkEmail {
			url = "mailto:" + url
		}
		w.l.OpenLink(assembler.Link{Target: url})
		w.l.InsertUnicodeString(string(n.Label(w.src)))
		w.l.CloseLink()

	case *ast.Image:
		// pictures are referenced, not embedded; keep the description
		w.inlines(n)

	case *east.TaskCheckBox:
		if n.IsChecked {
			w.l.InsertUnicodeString("☑ ")
		} else {
			w.l.InsertUnicodeString("☐ ")
		}

	case *east.FootnoteLink:
		w.footnote(n.Index)

	case *ast.RawHTML, *east.FootnoteBacklink:

	default:
		w.inlines(n)
	}
}

func (w *mdWalker) footnote(index int) {
	fn, ok := w.footnotes[index]
	if !ok {
		return
	}
	sub := assembler.NewSubDocument("footnote-"+strconv.Itoa(index), func(l assembler.Listener, _ assembler.SubDocumentKind) {
		nw := &mdWalker{mdShared: w.mdShared, l: l, font: l.Font()}
		nw.children(fn)
	})
	w.l.InsertNote(assembler.Note{Kind: assembler.NoteKindFootnote, Number: index}, sub)
}

func trimEOL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
