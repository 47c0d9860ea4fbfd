package decode

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"mwc/assembler"
)

// CSV reads a comma separated table into a single sheet. Cell values are
// typed (numbers, percents, booleans, dates and times), cells starting with
// "=" are formulas.
type CSV struct {
	Name   string // sheet name
	Comma  rune
	Header bool // first record is a header row
}

func (c *CSV) Flavor() assembler.Flavor {
	return assembler.FlavorSpreadsheet
}

const sheetColumnWidth = 72

func (c *CSV) Decode(ctx context.Context, r io.Reader, l assembler.Listener) error {
	ur, err := charset.NewReader(r, "text/csv")
	if err != nil {
		return fmt.Errorf("unable to detect csv charset: %w", err)
	}
	cr := csv.NewReader(ur)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if c.Comma != 0 {
		cr.Comma = c.Comma
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("unable to parse csv: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		records = append(records, rec)
	}

	width := 0
	for _, rec := range records {
		width = max(width, len(rec))
	}
	name := c.Name
	if name == "" {
		name = "Sheet1"
	}
	l.OpenSheet(assembler.Sheet{Name: name, Columns: []assembler.SheetColumn{{Width: sheetColumnWidth, Repeat: width}}})
	for row, rec := range records {
		l.OpenSheetRow(assembler.SheetRow{})
		for col, field := range rec {
			if field == "" {
				continue
			}
			cell := assembler.SheetCell{Column: col, Row: row}
			if c.Header && row == 0 {
				l.OpenSheetCell(cell, assembler.CellContent{})
				bold := l.Font()
				bold.Bold = true
				l.SetFont(bold)
				l.InsertUnicodeString(field)
				l.CloseSheetCell()
				continue
			}
			content, format := typedValue(field)
			cell.Format = format
			l.OpenSheetCell(cell, content)
			l.CloseSheetCell()
		}
		l.CloseSheetRow()
	}
	l.CloseSheet()
	return nil
}

var (
	decimalPattern  = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})+|\d+)(\.(\d+))?$`)
	percentPattern  = regexp.MustCompile(`^(-?\d+(\.(\d+))?)%$`)
	dateLayouts     = []string{"2006-01-02", "2006-01-02 15:04:05", "2006-01-02T15:04:05Z07:00"}
	timeLayouts     = []string{"15:04:05", "15:04"}
	cellRefPattern  = regexp.MustCompile(`^(\$?)([A-Z]{1,3})(\$?)([0-9]+)`)
	identPattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*`)
	numberLiteralRe = regexp.MustCompile(`^[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?`)
)

// typedValue guesses the type of a field.
func typedValue(s string) (assembler.CellContent, assembler.CellFormat) {
	text := assembler.CellContent{Text: s}
	switch strings.ToUpper(s) {
	case "TRUE":
		return assembler.CellContent{Value: 1, HasValue: true, Text: s}, assembler.CellFormat{Type: assembler.ValueTypeBoolean}
	case "FALSE":
		return assembler.CellContent{Value: 0, HasValue: true, Text: s}, assembler.CellFormat{Type: assembler.ValueTypeBoolean}
	}

	if strings.HasPrefix(s, "=") && len(s) > 1 {
		if f := parseFormula(s[1:]); f != nil {
			return assembler.CellContent{Text: s, Formula: f}, assembler.CellFormat{}
		}
		return text, assembler.CellFormat{Type: assembler.ValueTypeText}
	}

	if m := decimalPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err == nil {
			return assembler.CellContent{Value: v, HasValue: true, Text: s},
				assembler.CellFormat{Type: assembler.ValueTypeNumber, Digits: len(m[4]), Thousands: m[2] != ""}
		}
	}
	if m := percentPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return assembler.CellContent{Value: v / 100, HasValue: true, Text: s},
				assembler.CellFormat{Type: assembler.ValueTypeNumber, Digits: len(m[3]), Percent: true}
		}
	}
	for i, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			format := assembler.CellFormat{Type: assembler.ValueTypeDate}
			if i > 0 {
				format.Pattern = "2006-01-02 15:04:05"
			}
			return assembler.CellContent{Value: assembler.DateValue(t), HasValue: true, Text: s}, format
		}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
			return assembler.CellContent{Value: float64(secs) / 86400, HasValue: true, Text: s},
				assembler.CellFormat{Type: assembler.ValueTypeTime, Pattern: layout}
		}
	}
	return text, assembler.CellFormat{Type: assembler.ValueTypeText}
}

// parseFormula splits a formula expression into instructions. It returns nil
// when the expression has tokens it does not know.
func parseFormula(expr string) []assembler.FormulaInstruction {
	var out []assembler.FormulaInstruction
	s := expr
	for len(s) > 0 {
		switch c := s[0]; {
		case c == ' ':
			s = s[1:]

		case c == '"':
			end := strings.IndexByte(s[1:], '"')
			if end < 0 {
				return nil
			}
			out = append(out, assembler.FormulaInstruction{Kind: assembler.FormulaText, Text: s[1 : end+1]})
			s = s[end+2:]

		case c >= '0' && c <= '9' || c == '.':
			lit := numberLiteralRe.FindString(s)
			v, err := strconv.ParseFloat(lit, 64)
			if lit == "" || err != nil {
				return nil
			}
			out = append(out, assembler.FormulaInstruction{Kind: assembler.FormulaNumber, Value: v})
			s = s[len(lit):]

		case c == '$' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z':
			if ref, n, ok := cellRef(s); ok {
				s = s[n:]
				if strings.HasPrefix(s, ":") {
					if to, n, ok := cellRef(s[1:]); ok {
						out = append(out, assembler.FormulaInstruction{Kind: assembler.FormulaCellRange, Refs: [2]assembler.CellRef{ref, to}})
						s = s[1+n:]
						continue
					}
					return nil
				}
				out = append(out, assembler.FormulaInstruction{Kind: assembler.FormulaCell, Refs: [2]assembler.CellRef{ref}})
				continue
			}
			name := identPattern.FindString(s)
			if name == "" || !strings.HasPrefix(s[len(name):], "(") {
				return nil
			}
			out = append(out, assembler.FormulaInstruction{Kind: assembler.FormulaFunction, Text: strings.ToUpper(name) + "("})
			s = s[len(name)+1:]

		case strings.IndexByte("+-*/^&=<>(),;:%", c) >= 0:
			op := string(c)
			if len(s) > 1 && (s[:2] == "<=" || s[:2] == ">=" || s[:2] == "<>") {
				op = s[:2]
			}
			out = append(out, assembler.FormulaInstruction{Kind: assembler.FormulaOperator, Text: op})
			s = s[len(op):]

		default:
			return nil
		}
	}
	return out
}

// cellRef parses a reference like B3 or $B$3 at the start of s. A
// reference directly followed by an identifier character is a name.
func cellRef(s string) (assembler.CellRef, int, bool) {
	m := cellRefPattern.FindStringSubmatch(s)
	if m == nil {
		return assembler.CellRef{}, 0, false
	}
	if rest := s[len(m[0]):]; rest != "" && (identPattern.MatchString(rest) || rest[0] >= '0' && rest[0] <= '9' || rest[0] == '(') {
		return assembler.CellRef{}, 0, false
	}
	col := 0
	for _, l := range m[2] {
		col = col*26 + int(l-'A') + 1
	}
	row, err := strconv.Atoi(m[4])
	if err != nil || row < 1 {
		return assembler.CellRef{}, 0, false
	}
	return assembler.CellRef{
		Column:         col - 1,
		Row:            row - 1,
		AbsoluteColumn: m[1] != "",
		AbsoluteRow:    m[3] != "",
	}, len(m[0]), true
}
