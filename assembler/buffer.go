package assembler

import "unicode/utf8"

// textBuffer accumulates characters of the open span and the tabs requested
// before a paragraph could be opened.
type textBuffer struct {
	text []byte
	tabs int
}

func (b *textBuffer) appendRune(r rune) {
	b.text = utf8.AppendRune(b.text, r)
}

func (b *textBuffer) empty() bool {
	return len(b.text) == 0
}

// flush hands buffered text to sink and empties the buffer.
func (b *textBuffer) flush(sink Sink) {
	if len(b.text) == 0 {
		return
	}
	emitText(sink, string(b.text))
	b.text = b.text[:0]
}

// emitText sends s turning every run of two or more spaces into one space
// primitive per character. Single spaces stay inside the text.
func emitText(sink Sink, s string) {
	start := 0
	for i := 0; i < len(s); {
		if s[i] != ' ' {
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == ' ' {
			j++
		}
		if j-i < 2 {
			i = j
			continue
		}
		if i > start {
			sink.InsertText(s[start:i])
		}
		for range j - i {
			sink.InsertSpace()
		}
		start, i = j, j
	}
	if start < len(s) {
		sink.InsertText(s[start:])
	}
}
