package config

// Specification of requested output type.
// ENUM(xhtml, csv, trace)
type OutputFmt int

// Ext returns the output file extension. Spreadsheets written as csv get one
// file per sheet, the extension then applies to each of them.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtXhtml:
		return ".xhtml"
	case OutputFmtCsv:
		return ".csv"
	case OutputFmtTrace:
		return ".trace.txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
