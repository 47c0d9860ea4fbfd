package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	doc := cfg.Document
	if doc.Page.Width != 612 || doc.Page.Height != 792 {
		t.Errorf("default page = %vx%v, want 612x792", doc.Page.Width, doc.Page.Height)
	}
	if doc.SmallPictureLimit != 200 {
		t.Errorf("SmallPictureLimit = %d, want 200", doc.SmallPictureLimit)
	}
	if doc.DefaultFont.Name == "" || doc.DefaultFont.Size <= 0 {
		t.Errorf("default font is not set: %+v", doc.DefaultFont)
	}
	if doc.CSV.CommaRune() != ',' || !doc.CSV.Header {
		t.Errorf("csv defaults = %+v", doc.CSV)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "mwc.log") {
		t.Errorf("file log destination = %q", cfg.Logging.FileLogger.Destination)
	}
	if strings.Contains(cfg.Logging.FileLogger.Destination, "{{") {
		t.Errorf("file log destination was not expanded: %q", cfg.Logging.FileLogger.Destination)
	}
	if cfg.Reporting.Destination == "" {
		t.Error("report destination is empty")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, `version: 1
document:
  source_charset: windows-1251
  small_picture_limit: 3
  file_name_transliterate: true
  page:
    width: 595
    height: 842
    landscape: true
  csv:
    comma: ";"
    header: false
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(tmpDir, "logs", "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(tmpDir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	doc := cfg.Document
	if doc.SourceCharset != "windows-1251" {
		t.Errorf("SourceCharset = %q", doc.SourceCharset)
	}
	if doc.SmallPictureLimit != 3 || !doc.FileNameTransliterate {
		t.Errorf("document = %+v", doc)
	}
	if doc.Page.Width != 595 || doc.Page.Height != 842 || !doc.Page.Landscape {
		t.Errorf("page = %+v", doc.Page)
	}
	// values absent from the file keep their defaults
	if doc.Page.MarginTop != 72 {
		t.Errorf("MarginTop = %v, want default 72", doc.Page.MarginTop)
	}
	if doc.Metadata.Language != "en" {
		t.Errorf("Language = %q, want default en", doc.Metadata.Language)
	}
	if doc.CSV.CommaRune() != ';' || doc.CSV.Header {
		t.Errorf("csv = %+v", doc.CSV)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("file log mode = %q", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ndocument:\n  page: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"unknown nested field", "version: 1\ndocument:\n  images: {}\n"},
		{"wrong version", "version: 2\n"},
		{"negative picture limit", "version: 1\ndocument:\n  small_picture_limit: -1\n"},
		{"zero page width", "version: 1\ndocument:\n  page:\n    width: 0\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"long comma", "version: 1\ndocument:\n  csv:\n    comma: \"::\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("absent file", func(t *testing.T) {
		if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
			t.Error("expected error for nonexistent file")
		}
	})
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Document.SourceCharset = "koi8-r"
	cfg.Document.Page.Landscape = true

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	back, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if back.Document.SourceCharset != "koi8-r" || !back.Document.Page.Landscape {
		t.Errorf("dumped document = %+v", back.Document)
	}
}

func TestCommaRune(t *testing.T) {
	tests := []struct {
		comma string
		want  rune
	}{
		{",", ','},
		{";", ';'},
		{"\t", '\t'},
		{"", ','},
	}
	for _, tt := range tests {
		c := CSVConfig{Comma: tt.comma}
		if got := c.CommaRune(); got != tt.want {
			t.Errorf("CommaRune(%q) = %q, want %q", tt.comma, got, tt.want)
		}
	}
}

func TestOutputFmt(t *testing.T) {
	tests := []struct {
		name string
		fmt  OutputFmt
		ext  string
	}{
		{"xhtml", OutputFmtXhtml, ".xhtml"},
		{"csv", OutputFmtCsv, ".csv"},
		{"trace", OutputFmtTrace, ".trace.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseOutputFmt(tt.name)
			if err != nil || f != tt.fmt {
				t.Fatalf("ParseOutputFmt(%q) = %v, %v", tt.name, f, err)
			}
			if f.String() != tt.name {
				t.Errorf("String() = %q", f.String())
			}
			if f.Ext() != tt.ext {
				t.Errorf("Ext() = %q, want %q", f.Ext(), tt.ext)
			}
		})
	}

	if _, err := ParseOutputFmt("epub"); !errors.Is(err, ErrInvalidOutputFmt) {
		t.Errorf("ParseOutputFmt(epub) error = %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Ext() of invalid format should panic")
		}
	}()
	_ = OutputFmt(42).Ext()
}
