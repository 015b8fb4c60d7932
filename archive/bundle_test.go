package archive

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func createZip(t *testing.T, files map[string]string, dirs ...string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "bundle.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, d := range dirs {
		h := &zip.FileHeader{Name: d}
		h.SetMode(os.ModeDir | 0755)
		if _, err := w.CreateHeader(h); err != nil {
			t.Fatalf("Failed to create directory %s: %v", d, err)
		}
	}
	for n, content := range files {
		fw, err := w.Create(n)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", n, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", n, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return name
}

func TestWalk(t *testing.T) {
	arc := createZip(t, map[string]string{
		"img/a.png":     "a",
		"img/b.png":     "b",
		"img/sub/c.svg": "c",
		"Img/d.png":     "d",
		"cover.jpg":     "e",
	}, "img/")

	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "img/", want: []string{"img/a.png", "img/b.png", "img/sub/c.svg"}},
		{prefix: "img/sub/", want: []string{"img/sub/c.svg"}},
		{prefix: "", want: []string{"Img/d.png", "cover.jpg", "img/a.png", "img/b.png", "img/sub/c.svg"}},
		{prefix: "nothing/"},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			var visited []string
			err := Walk(arc, tt.prefix, func(archive string, f *zip.File) error {
				if archive != arc {
					t.Errorf("archive = %s, want %s", archive, arc)
				}
				visited = append(visited, f.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			slices.Sort(visited)
			if !slices.Equal(visited, tt.want) {
				t.Errorf("Walk() visited %v, want %v", visited, tt.want)
			}
		})
	}

	stop := errors.New("stop")
	var visited int
	if err := Walk(arc, "", func(string, *zip.File) error { visited++; return stop }); !errors.Is(err, stop) || visited != 1 {
		t.Errorf("Walk() = %v after %d files, want %v after 1", err, visited, stop)
	}
}

func TestWalkErrors(t *testing.T) {
	if err := Walk("/nonexistent/file.zip", "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("Walk() of nonexistent archive succeeded")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.zip")
	if err := os.WriteFile(invalid, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("Failed to create invalid zip: %v", err)
	}
	if err := Walk(invalid, "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("Walk() of invalid archive succeeded")
	}

	unsafe := createZip(t, map[string]string{"../evil.png": "x"})
	if err := Walk(unsafe, "", func(string, *zip.File) error { return nil }); !errors.Is(err, ErrUnsafePath) && !errors.Is(err, zip.ErrInsecurePath) {
		t.Errorf("Walk() error = %v, want %v", err, ErrUnsafePath)
	}
}

func TestReadFile(t *testing.T) {
	arc := createZip(t, map[string]string{
		"img/a.png":  "first",
		"img/a.png2": "second",
	})

	for _, name := range []string{"img/a.png", "./img/a.png", filepath.Join("img", "a.png")} {
		data, err := ReadFile(arc, name)
		if err != nil {
			t.Fatalf("ReadFile(%q) error = %v", name, err)
		}
		if string(data) != "first" {
			t.Errorf("ReadFile(%q) = %q, want %q", name, data, "first")
		}
	}
	if _, err := ReadFile(arc, "img/b.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want %v", err, fs.ErrNotExist)
	}
	if _, err := ReadFile(arc, "../a.png"); !errors.Is(err, ErrUnsafePath) {
		t.Errorf("ReadFile() error = %v, want %v", err, ErrUnsafePath)
	}
}

func TestIsArchive(t *testing.T) {
	for name, want := range map[string]bool{
		"images.zip": true,
		"IMAGES.ZIP": true,
		"images":     false,
		"a.zip/b":    false,
	} {
		if got := IsArchive(name); got != want {
			t.Errorf("IsArchive(%q) = %v, want %v", name, got, want)
		}
	}
}
