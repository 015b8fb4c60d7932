package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	arc, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer arc.Close()

	out := make(map[string]string)
	for _, f := range arc.File {
		r, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	logName := filepath.Join(dir, "final.log")
	if err := os.WriteFile(logName, []byte("log"), 0644); err != nil {
		t.Fatalf("failed to write log: %v", err)
	}
	page := filepath.Join(dir, "page-001.png")
	if err := os.WriteFile(page, []byte("first"), 0644); err != nil {
		t.Fatalf("failed to write page: %v", err)
	}

	r.Store("final.log", logName)
	r.StoreData("layout/page-001.txt", []byte("VStack"))
	if err := r.StoreCopy("pages/page-001.png", page); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// page is rendered again, report keeps both versions
	if err := os.WriteFile(page, []byte("second"), 0644); err != nil {
		t.Fatalf("failed to write page: %v", err)
	}
	if err := r.StoreCopy("pages/page-001.png", page); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := r.StoreCopy("pages", dir); err == nil {
		t.Error("StoreCopy() of directory succeeded")
	}
	if err := r.StoreCopy("missing", filepath.Join(dir, "missing.png")); err == nil {
		t.Error("StoreCopy() of missing file succeeded")
	}
	scratch := r.scratch

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["final.log"] != "log" || files["layout/page-001.txt"] != "VStack" || files["pages/page-001.png"] != "first" {
		t.Errorf("unexpected report content: %v", files)
	}
	var versions []string
	for name, content := range files {
		if strings.HasPrefix(name, "pages/page-001.png") {
			versions = append(versions, content)
		}
	}
	slices.Sort(versions)
	if diff := cmp.Diff([]string{"first", "second"}, versions); diff != "" {
		t.Errorf("page versions mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(files["MANIFEST"], "layout/page-001.txt\t<6 bytes>") {
		t.Errorf("MANIFEST does not list stored data:\n%s", files["MANIFEST"])
	}

	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Errorf("snapshots in %s were not removed", scratch)
	}
	if _, err := os.Stat(page); err != nil {
		t.Errorf("stored file should not be removed: %v", err)
	}
}

func TestReportStoreOverwrite(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "/tmp/a")
	r.Store("a", "/tmp/a")

	defer func() {
		if recover() == nil {
			t.Error("overwriting report entry did not panic")
		}
	}()
	r.Store("a", "/tmp/b")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	r.Store("ignored", "/tmp")
	r.StoreData("ignored", nil)
	if r.Name() != "" {
		t.Errorf("Name() of nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
