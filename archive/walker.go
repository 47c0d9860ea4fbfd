// Package archive walks documents stored in zip archives.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
)

// Entry is a regular file inside an archive.
type Entry struct {
	Archive string // path of the archive on disk
	Name    string // name inside the archive, always UTF-8
	File    *zip.File
}

// Open opens entry content.
func (e Entry) Open() (io.ReadCloser, error) {
	return e.File.Open()
}

// WalkFunc is called for every matching entry. If an error is returned,
// processing stops.
type WalkFunc func(e Entry) error

// Walk calls walkFn for every file in the archive whose name starts with
// prefix. Names without the UTF-8 flag are decoded with names when it is not
// nil. Entries with absolute paths or ".." components are skipped.
func Walk(ctx context.Context, archive, prefix string, names encoding.Encoding, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return fmt.Errorf("unable to open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			continue
		}
		name := f.Name
		if f.NonUTF8 && names != nil {
			if n, err := names.NewDecoder().String(name); err == nil {
				name = n
			}
		}
		if !isSafePath(name) || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(Entry{Archive: archive, Name: name, File: f}); err != nil {
			return err
		}
	}
	return nil
}

// IsArchive reports whether the file content is a zip archive.
func IsArchive(fname string) (bool, error) {
	f, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// 262 bytes is enough for any filetype matcher
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
