package assembler

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// spreadsheetEpoch is day zero of spreadsheet date values.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DateValue converts t to a spreadsheet date value.
func DateValue(t time.Time) float64 {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return math.Round(day.Sub(spreadsheetEpoch).Hours()/24) + float64(secs)/86400
}

// Format renders the value of c as the format requires. Text cells and cells
// without a value render their text.
func (f CellFormat) Format(c CellContent) string {
	if !c.HasValue {
		return c.Text
	}
	v := c.Value
	switch f.Type {
	case ValueTypeBoolean:
		if v != 0 {
			return "TRUE"
		}
		return "FALSE"
	case ValueTypeDate:
		layout := f.Pattern
		if layout == "" {
			layout = "2006-01-02"
		}
		return valueTime(v).Format(layout)
	case ValueTypeTime:
		layout := f.Pattern
		if layout == "" {
			layout = "15:04:05"
		}
		return valueTime(v - math.Floor(v)).Format(layout)
	case ValueTypeText:
		if c.Text != "" {
			return c.Text
		}
	}

	if f.Percent {
		v *= 100
	}
	digits := -1
	if f.Digits > 0 || f.Type == ValueTypeNumber && (f.Currency != "" || f.Percent) {
		digits = f.Digits
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', digits, 64)
	if f.Thousands {
		s = groupThousands(s)
	}
	if f.Currency != "" {
		s = f.Currency + " " + s
	}
	if f.Percent {
		s += "%"
	}
	if v < 0 {
		s = "-" + s
	}
	return s
}

func valueTime(v float64) time.Time {
	return spreadsheetEpoch.Add(time.Duration(math.Round(v*86400)) * time.Second)
}

func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
