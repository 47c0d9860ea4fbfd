package decode

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"mwc/assembler"
)

// Text reads plain text. Tab, line ends (a CR LF pair is one line end) and
// form feed (page break) are the only control characters with meaning.
//
// When Charset names a single byte charmap the bytes are sent with
// InsertChar and the listener has to be created with the same charmap. Other
// charsets are converted to Unicode first, an empty Charset is detected from
// the byte order mark or the content.
type Text struct {
	Charset string
}

func (t *Text) Flavor() assembler.Flavor {
	return assembler.FlavorText
}

// Charmap returns the single byte charmap of the source or nil when text is
// sent as Unicode.
func (t *Text) Charmap() *charmap.Charmap {
	if t.Charset == "" {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(t.Charset)
	if err != nil || enc == nil {
		return nil
	}
	cm, _ := enc.(*charmap.Charmap)
	return cm
}

func (t *Text) encoding(data []byte) (encoding.Encoding, error) {
	if t.Charset != "" {
		enc, err := ianaindex.IANA.Encoding(t.Charset)
		if err != nil {
			return nil, fmt.Errorf("unable to use charset %q: %w", t.Charset, err)
		}
		if enc == nil {
			return nil, fmt.Errorf("charset %q is not supported", t.Charset)
		}
		return enc, nil
	}
	enc, _, _ := charset.DetermineEncoding(data, "text/plain")
	return enc, nil
}

func (t *Text) Decode(ctx context.Context, r io.Reader, l assembler.Listener) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read text: %w", err)
	}

	if cm := t.Charmap(); cm != nil {
		return sendBytes(ctx, data, l)
	}

	enc, err := t.encoding(data)
	if err != nil {
		return err
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return fmt.Errorf("unable to decode text: %w", err)
	}
	return sendRunes(ctx, strings.TrimPrefix(string(decoded), "\ufeff"), l)
}

// checkEvery is how many source bytes are sent between cancellation checks.
const checkEvery = 4096

func sendBytes(ctx context.Context, data []byte, l assembler.Listener) error {
	var cr bool
	for i, b := range data {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if !sendControl(rune(b), cr, l) {
			l.InsertChar(b)
		}
		cr = b == '\r'
	}
	return nil
}

func sendRunes(ctx context.Context, s string, l assembler.Listener) error {
	var cr bool
	for i, c := range s {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if !sendControl(c, cr, l) {
			l.InsertUnicode(c)
		}
		cr = c == '\r'
	}
	return nil
}

// sendControl handles c when it is a meaningful control character. afterCR
// tells whether the previous character was a carriage return.
func sendControl(c rune, afterCR bool, l assembler.Listener) bool {
	switch c {
	case '\n':
		if !afterCR {
			l.InsertEOL(false)
		}
	case '\r':
		l.InsertEOL(false)
	case '\t':
		l.InsertTab()
	case '\f':
		l.InsertBreak(assembler.BreakKindPage)
	default:
		return false
	}
	return true
}
