package xhtml

import (
	"fmt"
	"strings"

	"mwc/assembler"
)

const baseStylesheet = `body { font-family: serif; }
.page-span { margin: 1em 0; }
.header, .footer { color: #555; font-size: smaller; }
.tab { white-space: pre; }
.frame { border: none; }
.text-box { overflow: hidden; }
table { border-collapse: collapse; }
td.bordered { border: 1px solid #000; }
.notes { border-top: 1px solid #888; margin-top: 2em; }
a.noteref { vertical-align: super; font-size: smaller; }
td.number { text-align: right; }
`

// declarations collects CSS declarations in a stable order.
type declarations []string

func (d *declarations) add(prop, format string, args ...any) {
	*d = append(*d, prop+": "+fmt.Sprintf(format, args...))
}

func (d declarations) String() string {
	return strings.Join(d, "; ")
}

func fontStyle(f assembler.Font) string {
	var d declarations
	if f.Name != "" {
		d.add("font-family", "%q", f.Name)
	}
	if f.Size > 0 {
		d.add("font-size", "%gpt", f.Size)
	}
	if f.Bold {
		d.add("font-weight", "bold")
	}
	if f.Italic {
		d.add("font-style", "italic")
	}
	var lines []string
	if f.Underline {
		lines = append(lines, "underline")
	}
	if f.Overline {
		lines = append(lines, "overline")
	}
	if f.StrikeOut {
		lines = append(lines, "line-through")
	}
	if len(lines) > 0 {
		d.add("text-decoration", "%s", strings.Join(lines, " "))
	}
	if f.SmallCaps {
		d.add("font-variant", "small-caps")
	}
	switch f.Script {
	case assembler.ScriptSuperscript:
		d.add("vertical-align", "super")
	case assembler.ScriptSubscript:
		d.add("vertical-align", "sub")
	}
	if f.Shadow {
		d.add("text-shadow", "1px 1px 1px #888")
	}
	if f.Outline {
		d.add("-webkit-text-stroke", "1px")
	}
	if f.Color != assembler.Black {
		d.add("color", "%s", f.Color.Hex())
	}
	if f.HasBack {
		d.add("background-color", "%s", f.Background.Hex())
	}
	return d.String()
}

var justification = map[assembler.Justification]string{
	assembler.JustificationLeft:   "left",
	assembler.JustificationRight:  "right",
	assembler.JustificationCenter: "center",
	assembler.JustificationFull:   "justify",
}

func paragraphStyle(ev assembler.ParagraphEvent) string {
	var d declarations
	if ev.Justify != assembler.JustificationLeft {
		d.add("text-align", "%s", justification[ev.Justify])
	}
	if ev.MarginLeft != 0 {
		d.add("margin-left", "%gpt", ev.MarginLeft)
	}
	if ev.MarginRight != 0 {
		d.add("margin-right", "%gpt", ev.MarginRight)
	}
	if ev.TextIndent != 0 {
		d.add("text-indent", "%gpt", ev.TextIndent)
	}
	if ev.SpaceBefore != 0 {
		d.add("margin-top", "%gpt", ev.SpaceBefore)
	}
	if ev.SpaceAfter != 0 {
		d.add("margin-bottom", "%gpt", ev.SpaceAfter)
	}
	if ev.LineSpacing > 0 {
		d.add("line-height", "%g", ev.LineSpacing)
	}
	if ev.PageBreakBefore {
		d.add("page-break-before", "always")
	}
	if ev.ColumnBreakBefore {
		d.add("break-before", "column")
	}
	return d.String()
}

func sectionStyle(s assembler.Section) string {
	var d declarations
	if s.Columns > 1 {
		d.add("column-count", "%d", s.Columns)
		if s.ColumnGap > 0 {
			d.add("column-gap", "%gpt", s.ColumnGap)
		}
		if s.Separator {
			d.add("column-rule", "1px solid #000")
		}
	}
	return d.String()
}

func pageStyle(p assembler.PageSpan) string {
	var d declarations
	w, h := p.Width, p.Height
	if p.Landscape && w < h {
		w, h = h, w
	}
	if w > 0 {
		d.add("width", "%gpt", w-p.MarginLeft-p.MarginRight)
	}
	if h > 0 {
		d.add("min-height", "%gpt", h-p.MarginTop-p.MarginBottom)
	}
	d.add("padding", "%gpt %gpt %gpt %gpt", p.MarginTop, p.MarginRight, p.MarginBottom, p.MarginLeft)
	return d.String()
}

func frameStyle(pos assembler.Position) string {
	var d declarations
	if pos.Anchor == assembler.AnchorKindPage {
		d.add("position", "absolute")
		d.add("left", "%gpt", pos.X)
		d.add("top", "%gpt", pos.Y)
	} else {
		d.add("display", "inline-block")
	}
	if pos.Width > 0 {
		d.add("width", "%gpt", pos.Width)
	}
	if pos.Height > 0 {
		d.add("height", "%gpt", pos.Height)
	}
	return d.String()
}

func graphicRule(name string, gs assembler.GraphicStyle) string {
	var d declarations
	if gs.LineWidth > 0 {
		d.add("border", "%gpt solid %s", gs.LineWidth, gs.LineColor.Hex())
	}
	if gs.Filled {
		d.add("background-color", "%s", gs.FillColor.Hex())
	}
	if gs.Shadow {
		d.add("box-shadow", "2pt 2pt 2pt #888")
	}
	if gs.Rotation != 0 {
		d.add("transform", "rotate(%ddeg)", gs.Rotation)
	}
	return fmt.Sprintf(".%s { %s }\n", name, d)
}

func numberingRule(name string, f assembler.CellFormat) string {
	align := "right"
	if f.Type == assembler.ValueTypeText || f.Type == assembler.ValueTypeBoolean {
		align = "center"
	}
	return fmt.Sprintf(".%s { text-align: %s }\n", name, align)
}
