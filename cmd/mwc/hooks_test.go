package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"mwc/config"
	"mwc/misc"
)

func TestPrepareReport(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Reporting.Destination = filepath.Join(dir, "report.zip")

	cfgFile := filepath.Join(dir, "my.yaml")
	if err := os.WriteFile(cfgFile, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rpt, err := prepareReport(cfg, cfgFile)
	if err != nil {
		t.Fatalf("prepareReport() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	arc, err := zip.OpenReader(cfg.Reporting.Destination)
	if err != nil {
		t.Fatal(err)
	}
	defer arc.Close()
	names := map[string]bool{}
	for _, f := range arc.File {
		names[f.Name] = true
	}
	for _, want := range []string{"config/my.yaml", "config/actual.yaml"} {
		if !names[want] {
			t.Errorf("report misses %s, has %v", want, names)
		}
	}

	if _, err := prepareReport(cfg, filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("expected error for absent configuration file")
	}
}

func TestRemoveEmptyPanicLog(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "mwc.log")
	panicLog := filepath.Join(dir, misc.GetAppName()+"-panic.log")

	if err := os.WriteFile(panicLog, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := removeEmptyPanicLog(dest); err != nil {
		t.Fatalf("removeEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); !os.IsNotExist(err) {
		t.Error("empty panic log was not removed")
	}

	if err := os.WriteFile(panicLog, []byte("goroutine 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := removeEmptyPanicLog(dest); err != nil {
		t.Fatalf("removeEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); err != nil {
		t.Error("non empty panic log was removed")
	}

	if err := removeEmptyPanicLog(""); err != nil {
		t.Errorf("removeEmptyPanicLog(\"\") error = %v", err)
	}
}
