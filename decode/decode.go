// Package decode contains producers: readers of source formats which
// describe documents through assembler.Listener calls.
package decode

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"mwc/assembler"
)

// Producer drives a listener with the content of a source document.
type Producer interface {
	// Flavor is the capability set the listener must be created with.
	Flavor() assembler.Flavor
	Decode(ctx context.Context, r io.Reader, l assembler.Listener) error
}

// Extensions lists supported source file extensions.
var Extensions = []string{".txt", ".text", ".md", ".markdown", ".html", ".htm", ".xhtml", ".csv"}

// ForFile returns the producer for the file name extension. charset is only
// used by plain text sources.
func ForFile(name, charset string) (Producer, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".txt", ".text":
		return &Text{Charset: charset}, nil
	case ".md", ".markdown":
		return &Markdown{}, nil
	case ".html", ".htm", ".xhtml":
		return &HTML{}, nil
	case ".csv":
		return &CSV{}, nil
	}
	return nil, fmt.Errorf("unsupported file extension %q", ext)
}

// IsSupported reports whether ForFile knows the name extension.
func IsSupported(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}
