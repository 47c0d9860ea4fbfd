package css_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"mwc/css"
)

func TestParser_Parse(t *testing.T) {
	src := `
/* comment */
@import url("other.css");
@font-face { font-family: "Body"; src: url(body.ttf) }
p { text-indent: 1em; margin: 0 }
h1, h2 { font-weight: bold }
.note { font-style: italic }
p.warn { color: #f00 }
div > p { color: blue }
a:hover { color: red }
@media print { p { display: none } }
td { text-align: center }
`
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(src))

	var got []string
	for _, r := range sheet.Rules {
		got = append(got, r.Selector.Raw)
	}
	want := []string{"p", "h1", "h2", ".note", "p.warn", "td"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selectors mismatch (-want +got):\n%s", diff)
	}
	if len(sheet.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2", sheet.Warnings)
	}

	indent := sheet.Rules[0].Properties["text-indent"]
	if indent.Value != 1 || indent.Unit != "em" {
		t.Errorf("text-indent = %+v", indent)
	}
	if sheet.Rules[2].Properties["font-weight"].Keyword != "bold" {
		t.Errorf("h2 rule = %+v", sheet.Rules[2])
	}
	if sel := sheet.Rules[4].Selector; sel.Element != "p" || sel.Class != "warn" {
		t.Errorf("selector = %+v", sel)
	}
}

func TestParser_ParseInline(t *testing.T) {
	p := css.NewParser(nil)

	props := p.ParseInline(`Font-Family: "Open Sans", serif; font-size: 150%;;color:rgb(0, 128, 255)`)
	if got := css.FirstFamily(props["font-family"]); got != "Open Sans" {
		t.Errorf("family = %q", got)
	}
	size := props["font-size"]
	if size.Value != 150 || size.Unit != "%" {
		t.Errorf("font-size = %+v", size)
	}
	if c, ok := props["color"].RGB(); !ok || c != 0x0080ff {
		t.Errorf("color = %06x, %v", c, ok)
	}

	if props := p.ParseInline("   "); props != nil {
		t.Errorf("blank style = %v", props)
	}
}

func TestStylesheet_Match(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`
p.warn { color: red }
.warn { color: green; font-weight: bold }
p { color: black; text-align: left }
`))

	got := sheet.Match("p", []string{"intro", "warn"})
	if got["color"].Keyword != "red" {
		t.Errorf("color = %+v, want red", got["color"])
	}
	if got["font-weight"].Keyword != "bold" || got["text-align"].Keyword != "left" {
		t.Errorf("match = %+v", got)
	}

	if got := sheet.Match("div", nil); got != nil {
		t.Errorf("div matched %v", got)
	}
	var empty *css.Stylesheet
	if got := empty.Match("p", nil); got != nil {
		t.Errorf("nil sheet matched %v", got)
	}
}

func TestValue_Points(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12pt", 12, true},
		{"16px", 12, true},
		{"1in", 72, true},
		{"2.54cm", 72, true},
		{"2em", 20, true},
		{"50%", 5, true},
		{"0", 0, true},
		{"1pc", 12, true},
		{"3vw", 0, false},
		{"auto", 0, false},
	}

	p := css.NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := p.ParseInline("x: " + tt.in)["x"]
			got, ok := v.Points(10)
			if ok != tt.ok || (ok && (got < tt.want-1e-9 || got > tt.want+1e-9)) {
				t.Errorf("Points(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValue_RGB(t *testing.T) {
	tests := []struct {
		raw  string
		want uint32
		ok   bool
	}{
		{"#fff", 0xffffff, true},
		{"#1A2b3C", 0x1a2b3c, true},
		{"Navy", 0x000080, true},
		{"rgb(300, -1, 16)", 0xff0010, true},
		{"#12345", 0, false},
		{"transparent", 0, false},
		{"rgb(1, 2)", 0, false},
	}
	for _, tt := range tests {
		got, ok := css.Value{Raw: tt.raw}.RGB()
		if got != tt.want || ok != tt.ok {
			t.Errorf("RGB(%q) = %06x, %v; want %06x, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
