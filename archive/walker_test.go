package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"
)

type zipEntry struct {
	name    string
	content string
	nonUTF8 bool
}

func makeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate, NonUTF8: e.nonUTF8})
		if err != nil {
			t.Fatalf("create %s: %v", e.name, err)
		}
		if _, err := io.WriteString(fw, e.content); err != nil {
			t.Fatalf("write %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

func walkNames(t *testing.T, archive, prefix string) []string {
	t.Helper()
	var names []string
	err := Walk(context.Background(), archive, prefix, nil, func(e Entry) error {
		if e.Archive != archive {
			t.Errorf("Archive = %s, want %s", e.Archive, archive)
		}
		names = append(names, e.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return names
}

func TestWalk(t *testing.T) {
	archive := makeZip(t, []zipEntry{
		{name: "docs/readme.txt", content: "readme"},
		{name: "docs/guide.md", content: "guide"},
		{name: "docs/"},
		{name: "sheets/q1.csv", content: "a,b"},
		{name: "../escape.txt", content: "bad"},
		{name: "docs/../../escape.txt", content: "bad"},
		{name: "/abs.txt", content: "bad"},
		{name: "Docs/upper.txt", content: "case"},
	})

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"docs/readme.txt", "docs/guide.md", "sheets/q1.csv", "Docs/upper.txt"}},
		{"docs/", []string{"docs/readme.txt", "docs/guide.md"}},
		{"sheets/q1.csv", []string{"sheets/q1.csv"}},
		{"nothing/", nil},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, walkNames(t, archive, tt.prefix)); diff != "" {
				t.Errorf("visited mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkContent(t *testing.T) {
	archive := makeZip(t, []zipEntry{{name: "a.txt", content: "hello"}})
	err := Walk(context.Background(), archive, "", nil, func(e Entry) error {
		rc, err := e.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if string(data) != "hello" {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
}

func TestWalkNonUTF8Names(t *testing.T) {
	encoded, err := charmap.CodePage866.NewEncoder().String("отчет.txt")
	if err != nil {
		t.Fatal(err)
	}
	archive := makeZip(t, []zipEntry{{name: encoded, content: "x", nonUTF8: true}})

	var got []string
	err = Walk(context.Background(), archive, "", charmap.CodePage866, func(e Entry) error {
		got = append(got, e.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if diff := cmp.Diff([]string{"отчет.txt"}, got); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkStops(t *testing.T) {
	archive := makeZip(t, []zipEntry{{name: "a.txt"}, {name: "b.txt"}, {name: "c.txt"}})

	stop := errors.New("stop")
	var count int
	err := Walk(context.Background(), archive, "", nil, func(e Entry) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || count != 2 {
		t.Errorf("Walk() = %v after %d entries, want stop after 2", err, count)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Walk(ctx, archive, "", nil, func(e Entry) error {
		t.Error("walkFn called with cancelled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Walk() with cancelled context = %v", err)
	}
}

func TestWalkInvalidArchive(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(name, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(context.Background(), name, "", nil, func(Entry) error { return nil }); err == nil {
		t.Error("expected error for invalid archive")
	}
}

func TestIsArchive(t *testing.T) {
	archive := makeZip(t, []zipEntry{{name: "a.txt", content: "a"}})
	if ok, err := IsArchive(archive); err != nil || !ok {
		t.Errorf("IsArchive(zip) = %v, %v", ok, err)
	}

	text := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(text, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}
	if ok, err := IsArchive(text); err != nil || ok {
		t.Errorf("IsArchive(text) = %v, %v", ok, err)
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if ok, err := IsArchive(empty); err != nil || ok {
		t.Errorf("IsArchive(empty) = %v, %v", ok, err)
	}

	if _, err := IsArchive(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for absent file")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		safe bool
	}{
		{"a/b.txt", true},
		{"a..b.txt", true},
		{"../a.txt", false},
		{"a/../../b", false},
		{`a\..\b`, false},
		{"/etc/passwd", false},
		{`\windows`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.safe {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.safe)
		}
	}
}
