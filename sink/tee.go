// Package sink holds helpers shared by assembler sinks. The sinks themselves
// live in subpackages.
package sink

import (
	"mwc/assembler"
)

type tee []assembler.Sink

// Tee duplicates the event stream to every sink in order.
func Tee(sinks ...assembler.Sink) assembler.Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return tee(sinks)
}

func (t tee) StartDocument(meta assembler.Metadata) {
	for _, s := range t {
		s.StartDocument(meta)
	}
}

func (t tee) EndDocument() {
	for _, s := range t {
		s.EndDocument()
	}
}

func (t tee) Open(scope assembler.Scope, props any) {
	for _, s := range t {
		s.Open(scope, props)
	}
}

func (t tee) Close(scope assembler.Scope) {
	for _, s := range t {
		s.Close(scope)
	}
}

func (t tee) InsertText(text string) {
	for _, s := range t {
		s.InsertText(text)
	}
}

func (t tee) InsertSpace() {
	for _, s := range t {
		s.InsertSpace()
	}
}

func (t tee) InsertTab() {
	for _, s := range t {
		s.InsertTab()
	}
}

func (t tee) InsertLineBreak() {
	for _, s := range t {
		s.InsertLineBreak()
	}
}

func (t tee) InsertField(f assembler.Field) {
	for _, s := range t {
		s.InsertField(f)
	}
}

func (t tee) InsertBinaryObject(obj assembler.BinaryObject) {
	for _, s := range t {
		s.InsertBinaryObject(obj)
	}
}

func (t tee) DefineGraphicStyle(name string, style assembler.GraphicStyle) {
	for _, s := range t {
		s.DefineGraphicStyle(name, style)
	}
}

func (t tee) DefineNumberingStyle(name string, format assembler.CellFormat) {
	for _, s := range t {
		s.DefineNumberingStyle(name, format)
	}
}
