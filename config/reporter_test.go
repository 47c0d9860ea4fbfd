package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport(t *testing.T) {
	tmpDir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	logFile := filepath.Join(tmpDir, "final.log")
	if err := os.WriteFile(logFile, []byte("early"), 0644); err != nil {
		t.Fatal(err)
	}
	source := filepath.Join(tmpDir, "doc.txt")
	if err := os.WriteFile(source, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("final.log", logFile)
	if err := r.StoreCopy("sources/doc.txt", source); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	r.StoreData("trace/doc.txt", []byte("first"))
	r.StoreData("trace/doc.txt", []byte("second"))
	r.Store("missing.log", filepath.Join(tmpDir, "absent.log"))

	// Store captures the final state, StoreCopy the state at the call
	if err := os.WriteFile(logFile, []byte("late"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(source, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}
	temps := append([]string(nil), r.temps...)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if got := files["final.log"]; got != "late" {
		t.Errorf("final.log = %q, want %q", got, "late")
	}
	if got := files["sources/doc.txt"]; got != "original" {
		t.Errorf("sources/doc.txt = %q, want %q", got, "original")
	}
	if got := files["trace/doc.txt"]; got != "first" {
		t.Errorf("trace/doc.txt = %q, want %q", got, "first")
	}
	var versioned int
	for name, data := range files {
		if strings.HasPrefix(name, "trace/doc.txt-") && data == "second" {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned trace entry, got %d", versioned)
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file should not be archived")
	}
	if !strings.Contains(files["MANIFEST"], "trace/doc.txt\t<data>") {
		t.Errorf("MANIFEST does not list data entry:\n%s", files["MANIFEST"])
	}

	for _, dir := range temps {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("temporary copy %s was not removed", dir)
		}
	}
}

func TestReportStoreOverwritePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a.log", "/tmp/one")
	r.Store("a.log", "/tmp/one")

	defer func() {
		if recover() == nil {
			t.Error("expected panic when storing a different path under the same name")
		}
	}()
	r.Store("a.log", "/tmp/two")
}

func TestReportStoreCopyErrors(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.StoreCopy("x", filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for absent file")
	}
	if err := r.StoreCopy("x", t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}

func TestReportNil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report = %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report = %v", err)
	}
	empty := &Report{entries: make(map[string]entry)}
	if err := empty.Close(); err != nil {
		t.Errorf("Close without file = %v", err)
	}
}
