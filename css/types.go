package css

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // original value text, e.g. "1.2em", "bold", "#ff0000"
	Value   float64 // numeric value if applicable
	Unit    string  // "em", "px", "%", "pt", etc.
	Keyword string  // lower cased keyword or unquoted string
}

// IsNumeric returns true if the value has a numeric component, including
// explicit zero like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Keyword != "" || v.Raw == "" {
		return false
	}
	c := rune(v.Raw[0])
	return unicode.IsDigit(c) || c == '.' || c == '-' || c == '+'
}

// IsKeyword returns true if the value is a keyword.
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Points converts a length to points. Relative units (em, %) are resolved
// against base which is the current font size.
func (v Value) Points(base float64) (float64, bool) {
	if !v.IsNumeric() {
		return 0, false
	}
	switch v.Unit {
	case "pt", "":
		return v.Value, true
	case "px":
		return v.Value * 0.75, true
	case "in":
		return v.Value * 72, true
	case "cm":
		return v.Value * 72 / 2.54, true
	case "mm":
		return v.Value * 72 / 25.4, true
	case "pc":
		return v.Value * 12, true
	case "em", "rem":
		return v.Value * base, true
	case "%":
		return v.Value * base / 100, true
	}
	return 0, false
}

var namedColors = map[string]uint32{
	"black":   0x000000,
	"white":   0xffffff,
	"red":     0xff0000,
	"green":   0x008000,
	"lime":    0x00ff00,
	"blue":    0x0000ff,
	"yellow":  0xffff00,
	"cyan":    0x00ffff,
	"aqua":    0x00ffff,
	"magenta": 0xff00ff,
	"fuchsia": 0xff00ff,
	"gray":    0x808080,
	"grey":    0x808080,
	"silver":  0xc0c0c0,
	"maroon":  0x800000,
	"olive":   0x808000,
	"navy":    0x000080,
	"purple":  0x800080,
	"teal":    0x008080,
	"orange":  0xffa500,
}

// RGB returns the 24 bit color of a "#rgb", "#rrggbb", "rgb(r, g, b)" or
// named color value.
func (v Value) RGB() (uint32, bool) {
	s := strings.ToLower(strings.TrimSpace(v.Raw))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return 0, false
		}
		c, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		return uint32(c), true
	}
	if args, ok := strings.CutPrefix(s, "rgb("); ok {
		parts := strings.Split(strings.TrimSuffix(args, ")"), ",")
		if len(parts) != 3 {
			return 0, false
		}
		var c uint32
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return 0, false
			}
			c = c<<8 | uint32(min(max(n, 0), 255))
		}
		return c, true
	}
	return 0, false
}

// Selector is a simple selector: element, class or element.class.
type Selector struct {
	Raw     string
	Element string
	Class   string
}

// IsSimple reports whether the selector could be understood.
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

func (s Selector) specificity() int {
	n := 0
	if s.Element != "" {
		n++
	}
	if s.Class != "" {
		n += 10
	}
	return n
}

func (s Selector) matches(element string, classes []string) bool {
	if s.Element != "" && !strings.EqualFold(s.Element, element) {
		return false
	}
	return s.Class == "" || slices.Contains(classes, s.Class)
}

// Rule is a CSS rule with a single selector.
type Rule struct {
	Selector   Selector
	Properties map[string]Value
}

// Stylesheet holds parsed rules in source order.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// Match returns the properties which apply to an element with the given
// classes. Rules are applied by ascending specificity, later rules win on
// equal specificity.
func (s *Stylesheet) Match(element string, classes []string) map[string]Value {
	if s == nil {
		return nil
	}
	var matched []Rule
	for _, r := range s.Rules {
		if r.Selector.matches(element, classes) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	slices.SortStableFunc(matched, func(a, b Rule) int {
		return a.Selector.specificity() - b.Selector.specificity()
	})
	props := make(map[string]Value)
	for _, r := range matched {
		for k, v := range r.Properties {
			props[k] = v
		}
	}
	return props
}
