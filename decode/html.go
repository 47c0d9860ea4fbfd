package decode

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"

	"mwc/assembler"
	"mwc/css"
)

// HTML reads (X)HTML body content. Character set is taken from the byte
// order mark or the meta declaration of the page. Style elements of the
// page and style attributes are applied to paragraphs and fonts.
type HTML struct {
	Log *zap.Logger
}

func (h *HTML) Flavor() assembler.Flavor {
	return assembler.FlavorText
}

func (h *HTML) Decode(ctx context.Context, r io.Reader, l assembler.Listener) error {
	ur, err := charset.NewReader(r, "text/html")
	if err != nil {
		return fmt.Errorf("unable to detect html charset: %w", err)
	}
	doc, err := html.Parse(ur)
	if err != nil {
		return fmt.Errorf("unable to parse html: %w", err)
	}

	body := findElement(doc, atom.Body)
	if body == nil {
		body = doc
	}
	styles := css.NewParser(h.Log)
	w := &htmlWalker{ctx: ctx, l: l, font: l.Font(), styles: styles, sheet: pageStyles(doc, styles, h.Log)}
	w.children(body)
	w.endBlock()
	return ctx.Err()
}

// pageStyles parses content of all style elements of the page.
func pageStyles(doc *html.Node, p *css.Parser, log *zap.Logger) *css.Stylesheet {
	var sb strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
					sb.WriteByte('\n')
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	if sb.Len() == 0 {
		return nil
	}
	sheet := p.Parse([]byte(sb.String()))
	if len(sheet.Warnings) > 0 && log != nil {
		log.Debug("Page styles were partially ignored", zap.Strings("warnings", sheet.Warnings))
	}
	return sheet
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

type htmlWalker struct {
	ctx  context.Context
	l    assembler.Listener
	font assembler.Font
	para assembler.Paragraph

	styles *css.Parser
	sheet  *css.Stylesheet

	open  bool // paragraph has content
	space bool // collapsed white space is pending
	pre   int

	lists     int
	listID    int
	listLevel int
	listStart int
}

// beginText makes sure text goes into a paragraph with the current
// formatting.
func (w *htmlWalker) beginText() {
	if w.open {
		if w.space {
			w.l.InsertUnicode(' ')
		}
		w.space = false
		return
	}
	p := w.para
	p.ListID, p.ListLevel = w.listID, w.listLevel
	if w.listStart > 0 {
		p.ListStart = w.listStart
		w.listStart = 0
	}
	w.l.SetParagraph(p)
	w.open = true
	w.space = false
}

func (w *htmlWalker) endBlock() {
	if w.open {
		w.l.InsertEOL(false)
	}
	w.open = false
	w.space = false
}

func (w *htmlWalker) withFont(change func(f *assembler.Font), inner func()) {
	saved := w.font
	change(&w.font)
	w.l.SetFont(w.font)
	inner()
	w.font = saved
	w.l.SetFont(w.font)
}

func (w *htmlWalker) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if w.ctx.Err() != nil {
			return
		}
		w.node(c)
	}
}

func (w *htmlWalker) text(s string) {
	if w.pre > 0 {
		for i, line := range strings.Split(s, "\n") {
			if i > 0 {
				w.beginText()
				w.l.InsertEOL(true)
			}
			if line != "" {
				w.beginText()
				for _, r := range line {
					if r == '\t' {
						w.l.InsertTab()
					} else {
						w.l.InsertUnicode(r)
					}
				}
			}
		}
		return
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			w.space = true
			continue
		}
		w.beginText()
		w.l.InsertUnicode(r)
	}
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3, atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

func (w *htmlWalker) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	props := w.style(n)
	if _, heading := headingLevels[n.DataAtom]; !heading && hasFontProperties(props) {
		w.withFont(func(f *assembler.Font) { applyFont(f, props) }, func() { w.element(n, props) })
		return
	}
	w.element(n, props)
}

func (w *htmlWalker) element(n *html.Node, props map[string]css.Value) {
	if lvl, ok := headingLevels[n.DataAtom]; ok {
		w.endBlock()
		saved := w.para
		w.para.OutlineLevel = lvl
		w.blockFormat(n, props, w.para.Justify)
		w.withFont(func(f *assembler.Font) {
			f.Bold = true
			f.Size = headingSizes[lvl-1]
			applyFont(f, props)
		}, func() { w.children(n) })
		w.endBlock()
		w.para = saved
		return
	}

	switch n.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Template, atom.Noscript:

	case atom.P, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.Main, atom.Nav, atom.Aside, atom.Address, atom.Figure, atom.Figcaption,
		atom.Dl, atom.Dt, atom.Dd, atom.Center:
		w.endBlock()
		saved := w.para
		def := w.para.Justify
		if n.DataAtom == atom.Center {
			def = assembler.JustificationCenter
		}
		w.blockFormat(n, props, def)
		w.children(n)
		w.endBlock()
		w.para = saved

	case atom.Blockquote:
		w.endBlock()
		saved := w.para
		w.para.MarginLeft += quoteIndent
		w.blockFormat(n, props, w.para.Justify)
		w.children(n)
		w.endBlock()
		w.para = saved

	case atom.Pre:
		w.endBlock()
		w.pre++
		w.withFont(func(f *assembler.Font) { f.Name = monospace }, func() { w.children(n) })
		w.pre--
		w.endBlock()

	case atom.Br:
		w.space = false
		w.beginText()
		w.l.InsertEOL(true)

	case atom.Hr:
		w.endBlock()
		w.l.InsertBreak(assembler.BreakKindPage)

	case atom.B, atom.Strong:
		w.withFont(func(f *assembler.Font) { f.Bold = true }, func() { w.children(n) })
	case atom.I, atom.Em, atom.Cite, atom.Var, atom.Dfn:
		w.withFont(func(f *assembler.Font) { f.Italic = true }, func() { w.children(n) })
	case atom.U, atom.Ins:
		w.withFont(func(f *assembler.Font) { f.Underline = true }, func() { w.children(n) })
	case atom.S, atom.Strike, atom.Del:
		w.withFont(func(f *assembler.Font) { f.StrikeOut = true }, func() { w.children(n) })
	case atom.Sup:
		w.withFont(func(f *assembler.Font) { f.Script = assembler.ScriptSuperscript }, func() { w.children(n) })
	case atom.Sub:
		w.withFont(func(f *assembler.Font) { f.Script = assembler.ScriptSubscript }, func() { w.children(n) })
	case atom.Code, atom.Tt, atom.Kbd, atom.Samp:
		w.withFont(func(f *assembler.Font) { f.Name = monospace }, func() { w.children(n) })

	case atom.A:
		href := attr(n, "href")
		if href == "" {
			w.children(n)
			return
		}
		w.beginText()
		w.l.OpenLink(assembler.Link{Target: href, Title: attr(n, "title")})
		w.children(n)
		w.l.CloseLink()

	case atom.Img:
		w.image(n)

	case atom.Ul, atom.Ol:
		w.list(n)

	case atom.Li:
		w.endBlock()
		w.children(n)
		w.endBlock()

	case atom.Table:
		w.table(n)

	default:
		w.children(n)
	}
}

// style returns properties of the page styles matching n overridden by
// its style attribute.
func (w *htmlWalker) style(n *html.Node) map[string]css.Value {
	props := w.sheet.Match(n.Data, strings.Fields(attr(n, "class")))
	inline := w.styles.ParseInline(attr(n, "style"))
	if len(props) == 0 {
		return inline
	}
	maps.Copy(props, inline)
	return props
}

// blockFormat sets alignment from the align attribute or text-align and
// adds margins of a block element to the current paragraph.
func (w *htmlWalker) blockFormat(n *html.Node, props map[string]css.Value, def assembler.Justification) {
	value := strings.ToLower(attr(n, "align"))
	if v, ok := props["text-align"]; ok {
		value = v.Keyword
	}
	w.para.Justify = justification(value, def)

	if pt, ok := length(props, "margin-left", w.font.Size); ok {
		w.para.MarginLeft += pt
	}
	if pt, ok := length(props, "margin-right", w.font.Size); ok {
		w.para.MarginRight += pt
	}
	if pt, ok := length(props, "text-indent", w.font.Size); ok {
		w.para.TextIndent = pt
	}
	if pt, ok := length(props, "margin-top", w.font.Size); ok {
		w.para.SpaceBefore = pt
	}
	if pt, ok := length(props, "margin-bottom", w.font.Size); ok {
		w.para.SpaceAfter = pt
	}
}

func length(props map[string]css.Value, name string, base float64) (float64, bool) {
	v, ok := props[name]
	if !ok {
		return 0, false
	}
	return v.Points(base)
}

func justification(value string, def assembler.Justification) assembler.Justification {
	switch value {
	case "left", "start":
		return assembler.JustificationLeft
	case "right", "end":
		return assembler.JustificationRight
	case "center":
		return assembler.JustificationCenter
	case "justify":
		return assembler.JustificationFull
	}
	return def
}

var fontProperties = []string{
	"font-weight", "font-style", "font-size", "font-family", "font-variant",
	"text-decoration", "text-decoration-line", "color", "background-color", "vertical-align",
}

func hasFontProperties(props map[string]css.Value) bool {
	for _, name := range fontProperties {
		if _, ok := props[name]; ok {
			return true
		}
	}
	return false
}

// applyFont changes f according to the font related properties.
func applyFont(f *assembler.Font, props map[string]css.Value) {
	if v, ok := props["font-weight"]; ok {
		switch {
		case v.Keyword == "bold" || v.Keyword == "bolder":
			f.Bold = true
		case v.Keyword == "normal" || v.Keyword == "lighter":
			f.Bold = false
		case v.IsNumeric():
			f.Bold = v.Value >= 600
		}
	}
	if v, ok := props["font-style"]; ok {
		f.Italic = v.Keyword == "italic" || v.Keyword == "oblique"
	}
	if v, ok := props["font-variant"]; ok {
		f.SmallCaps = v.Keyword == "small-caps"
	}
	if v, ok := props["font-size"]; ok {
		if pt, ok := v.Points(f.Size); ok && pt > 0 {
			f.Size = pt
		}
	}
	if v, ok := props["font-family"]; ok {
		if name := css.FirstFamily(v); name != "" {
			f.Name = name
		}
	}
	for _, name := range []string{"text-decoration", "text-decoration-line"} {
		v, ok := props[name]
		if !ok {
			continue
		}
		raw := strings.ToLower(v.Raw)
		if raw == "none" {
			f.Underline, f.Overline, f.StrikeOut = false, false, false
			continue
		}
		f.Underline = f.Underline || strings.Contains(raw, "underline")
		f.Overline = f.Overline || strings.Contains(raw, "overline")
		f.StrikeOut = f.StrikeOut || strings.Contains(raw, "line-through")
	}
	if v, ok := props["color"]; ok {
		if c, ok := v.RGB(); ok {
			f.Color = assembler.Color(c)
		}
	}
	if v, ok := props["background-color"]; ok {
		if c, ok := v.RGB(); ok {
			f.Background, f.HasBack = assembler.Color(c), true
		}
	}
	if v, ok := props["vertical-align"]; ok {
		switch v.Keyword {
		case "super":
			f.Script = assembler.ScriptSuperscript
		case "sub":
			f.Script = assembler.ScriptSubscript
		case "baseline":
			f.Script = assembler.ScriptNormal
		}
	}
}

func (w *htmlWalker) image(n *html.Node) {
	src, alt := attr(n, "src"), attr(n, "alt")
	mime, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ";base64,")
	if !strings.HasPrefix(src, "data:") || !ok {
		if alt != "" {
			w.text(alt)
		}
		return
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		w.text(alt)
		return
	}
	width, _ := strconv.ParseFloat(attr(n, "width"), 64)
	height, _ := strconv.ParseFloat(attr(n, "height"), 64)
	w.beginText()
	w.l.InsertPicture(assembler.Position{Anchor: assembler.AnchorKindChar, Width: width * 0.75, Height: height * 0.75},
		assembler.BinaryObject{Data: data, MimeType: mime, Alt: alt},
		assembler.GraphicStyle{})
}

func (w *htmlWalker) list(n *html.Node) {
	w.endBlock()
	savedID, savedLevel, savedStart := w.listID, w.listLevel, w.listStart
	if w.listLevel == 0 {
		w.lists++
		w.listID = w.lists
		w.l.DefineList(assembler.List{ID: w.listID, Levels: htmlListLevels(n)})
	}
	w.listLevel++
	w.listStart = 0
	if n.DataAtom == atom.Ol {
		w.listStart = 1
		if s, err := strconv.Atoi(attr(n, "start")); err == nil {
			w.listStart = s
		}
	}
	w.children(n)
	w.endBlock()
	w.listID, w.listLevel, w.listStart = savedID, savedLevel, savedStart
}

func htmlListLevels(top *html.Node) []assembler.ListLevel {
	var levels []assembler.ListLevel
	var visit func(n *html.Node, depth int)
	visit = func(n *html.Node, depth int) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol) {
			if depth == len(levels) {
				lvl := assembler.ListLevel{Ordered: n.DataAtom == atom.Ol, Indent: float64(depth+1) * quoteIndent, Label: "•"}
				if lvl.Ordered {
					lvl.StartValue = 1
					lvl.Label = "1."
				}
				levels = append(levels, lvl)
			}
			depth++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c, depth)
		}
	}
	visit(top, 0)
	return levels
}

// rows returns table rows including the ones grouped in thead, tbody and
// tfoot.
func rows(table *html.Node) []*html.Node {
	var out []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			out = append(out, c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			out = append(out, rows(c)...)
		}
	}
	return out
}

func cells(tr *html.Node) []*html.Node {
	var out []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			out = append(out, c)
		}
	}
	return out
}

func span(n *html.Node, key string) int {
	v, err := strconv.Atoi(attr(n, key))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

func (w *htmlWalker) table(n *html.Node) {
	w.endBlock()
	trs := rows(n)
	width := 0
	for _, tr := range trs {
		cols := 0
		for _, td := range cells(tr) {
			cols += span(td, "colspan")
		}
		width = max(width, cols)
	}
	columns := make([]float64, width)
	for i := range columns {
		columns[i] = columnWidth
	}

	saved := w.para
	savedList, savedLevel := w.listID, w.listLevel
	w.listID, w.listLevel = 0, 0

	w.l.OpenTable(assembler.Table{Columns: columns})
	for r, tr := range trs {
		w.l.OpenTableRow(assembler.Row{})
		col := 0
		for _, td := range cells(tr) {
			cell := assembler.Cell{
				Column:     col,
				Row:        r,
				ColumnSpan: span(td, "colspan"),
				RowSpan:    span(td, "rowspan"),
				Borders:    attr(n, "border") != "" && attr(n, "border") != "0",
			}
			w.l.OpenTableCell(cell)
			props := w.style(td)
			w.para = assembler.Paragraph{}
			w.blockFormat(td, props, assembler.JustificationLeft)
			if td.DataAtom == atom.Th || hasFontProperties(props) {
				w.withFont(func(f *assembler.Font) {
					f.Bold = f.Bold || td.DataAtom == atom.Th
					applyFont(f, props)
				}, func() { w.children(td) })
			} else {
				w.children(td)
			}
			w.endBlock()
			w.l.CloseTableCell()
			col += cell.ColumnSpan
		}
		w.l.CloseTableRow()
	}
	w.l.CloseTable()

	w.para = saved
	w.listID, w.listLevel = savedList, savedLevel
}
