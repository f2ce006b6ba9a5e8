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
	r, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer r.Close()

	out := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(dir, "robot.sdf")
	if err := os.WriteFile(src, []byte("<sdf/>"), 0644); err != nil {
		t.Fatal(err)
	}
	models := filepath.Join(dir, "models")
	if err := os.MkdirAll(filepath.Join(models, "rover"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(models, "rover", "model.sdf"), []byte("<sdf/>"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("source.sdf", src)
	r.StoreData("robot.txt", []byte("SDF version=\"1.6\"\n"))
	if err := r.StoreCopy("models", models); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := r.StoreCopy("models", models); err != nil {
		t.Fatalf("second StoreCopy() error = %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	files := readArchive(t, conf.Destination)
	if files["source.sdf"] != "<sdf/>" {
		t.Errorf("source.sdf = %q", files["source.sdf"])
	}
	if !strings.HasPrefix(files["robot.txt"], "SDF version") {
		t.Errorf("robot.txt = %q", files["robot.txt"])
	}
	if _, ok := files["models/rover/model.sdf"]; !ok {
		t.Errorf("copied directory is missing from report: %v", files)
	}
	if !strings.Contains(files["MANIFEST"], "source.sdf") {
		t.Errorf("MANIFEST does not list entries: %q", files["MANIFEST"])
	}
	copies := 0
	for name := range files {
		if strings.HasSuffix(name, "/rover/model.sdf") {
			copies++
		}
	}
	if copies != 2 {
		t.Errorf("expected 2 versioned copies, got %d", copies)
	}
}

func TestReport_StoreCopyRemovesTemporaryCopy(t *testing.T) {
	dir := t.TempDir()
	r, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "a.sdf")
	if err := os.WriteFile(src, []byte("<sdf/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("a.sdf", src); err != nil {
		t.Fatal(err)
	}
	copied := r.entries["a.sdf"].actual
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(copied); !os.IsNotExist(err) {
		t.Errorf("temporary copy %s still exists", copied)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("original file must stay: %v", err)
	}
}

func TestReport_DuplicateNamesPanic(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("plan.yaml", []byte("a"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate entry")
		}
	}()
	r.StoreData("plan.yaml", []byte("b"))
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
