package images

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/image/font"

	"pagelay/layout"
)

func pngData(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

const testSVG = `<svg viewBox="0 0 100 50" xmlns="http://www.w3.org/2000/svg">
  <rect x="10" y="10" width="80" height="30" fill="black"/>
</svg>`

func TestFileProviderLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "blue.png"), pngData(t, 8, 6, color.NRGBA{B: 255, A: 255}), 0644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}

	p := NewFileProvider(dir, WithLogger(zaptest.NewLogger(t)))
	p.Add("red.png", pngData(t, 40, 20, color.NRGBA{R: 255, A: 255}))
	p.Add("text", []byte("plain text is not an image"))
	p.Add("drawing.svg", []byte(testSVG))

	tests := []struct {
		name   string
		source string
		want   image.Point
		err    error
	}{
		{name: "in memory", source: "red.png", want: image.Pt(40, 20)},
		{name: "file", source: "blue.png", want: image.Pt(8, 6)},
		{name: "svg", source: "drawing.svg", want: image.Pt(100, 50)},
		{name: "unsupported", source: "text", err: ErrUnsupported},
		{name: "missing", source: "missing.png", err: os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := p.Load(tt.source)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Load() error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := img.Bounds().Size(); got != tt.want {
				t.Errorf("Load() size = %v, want %v", got, tt.want)
			}
			again, err := p.Load(tt.source)
			if err != nil || again != img {
				t.Errorf("second Load() = %v, %v, want cached image", again, err)
			}
		})
	}
}

func TestFileProviderArchive(t *testing.T) {
	name := filepath.Join(t.TempDir(), "images.zip")
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, err := w.Create("img/green.png")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := fw.Write(pngData(t, 12, 7, color.NRGBA{G: 255, A: 255})); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}

	p := NewFileProvider(name, WithLogger(zaptest.NewLogger(t)))
	img, err := p.Load("img/green.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(12, 7) {
		t.Errorf("Load() size = %v, want 12x7", got)
	}
	if _, err := p.Load("img/red.png"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestFileProviderPlaceholder(t *testing.T) {
	p := NewFileProvider(t.TempDir(), WithPlaceholder(true), WithLogger(zaptest.NewLogger(t)))
	img, err := p.Load("missing.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(64, 64) {
		t.Errorf("placeholder size = %v, want 64x64", got)
	}
}

func TestFileProviderResize(t *testing.T) {
	p := NewFileProvider("")
	p.Add("red.png", pngData(t, 40, 20, color.NRGBA{R: 255, A: 255}))
	p.Add("drawing.svg", []byte(testSVG))

	for _, name := range []string{"red.png", "drawing.svg"} {
		t.Run(name, func(t *testing.T) {
			img, err := p.Load(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			scaled := p.Resize(img, 200, 100)
			if got := scaled.Bounds().Size(); got != image.Pt(200, 100) {
				t.Errorf("Resize() size = %v, want 200x100", got)
			}
			if again := p.Resize(img, 200, 100); again != scaled {
				t.Error("Resize() did not return cached image")
			}
			if same := p.Resize(img, img.Bounds().Dx(), img.Bounds().Dy()); same != img {
				t.Error("Resize() to the same size returned new image")
			}
		})
	}
}

func TestImageResolve(t *testing.T) {
	p := NewFileProvider("")
	p.Add("img", pngData(t, 40, 20, color.White))
	img, err := New(p, "img")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		img  Image
		c    layout.Constraints
		want layout.Size
		err  bool
	}{
		{name: "expand", img: img, c: layout.Size{Width: 100, Height: 100}.Loose(), want: layout.Size{Width: 100, Height: 50}},
		{name: "expand infinite width", img: img, c: layout.Constraints{MaxWidth: layout.Inf, MaxHeight: 30}, want: layout.Size{Width: 60, Height: 30}},
		{name: "expand infinite", img: img, c: layout.Size{Width: layout.Inf, Height: layout.Inf}.Loose(), err: true},
		{name: "stretched", img: img.Stretched(), c: layout.Size{Width: 100, Height: 100}.Loose(), want: layout.Size{Width: 100, Height: 100}},
		{name: "stretched infinite", img: img.Stretched(), c: layout.Constraints{MaxWidth: 100, MaxHeight: layout.Inf}, err: true},
		{name: "natural", img: img.Natural(), c: layout.Size{Width: 100, Height: 100}.Loose(), want: layout.Size{Width: 40, Height: 20}},
		{name: "natural raised", img: img.Natural(), c: layout.Constraints{MinWidth: 80, MaxWidth: 100, MaxHeight: 100}, want: layout.Size{Width: 80, Height: 40}},
		{name: "natural raised by height", img: img.Natural(), c: layout.Constraints{MaxWidth: 200, MinHeight: 30, MaxHeight: 100}, want: layout.Size{Width: 60, Height: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.img.Resolve(tt.c)
			if tt.err {
				if err == nil {
					t.Fatalf("Resolve() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := (Image{Source: "empty"}).Resolve(layout.Size{Width: 10, Height: 10}.Loose()); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("empty image error = %v, want %v", err, ErrInvalidSize)
	}
}

type imageRecorder struct {
	at   []image.Point
	size []image.Point
}

func (r *imageRecorder) FillRect(float64, float64, float64, float64, color.Color) {}

func (r *imageRecorder) Line(float64, float64, float64, float64, float64, color.Color) {}

func (r *imageRecorder) Text(string, float64, float64, font.Face, color.Color) {}

func (r *imageRecorder) Image(img image.Image, x, y float64) {
	r.at = append(r.at, image.Pt(int(x), int(y)))
	r.size = append(r.size, img.Bounds().Size())
}

func TestImageLayout(t *testing.T) {
	p := NewFileProvider("")
	p.Add("img", pngData(t, 40, 20, color.White))
	img, err := New(p, "img")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := layout.NewEnv(zaptest.NewLogger(t), 0)
	doc := layout.VStack(layout.NewBox(10, 10), layout.Pad(5, 0, 0, 0).With(img))
	l, err := env.PageContext().Layout(doc, layout.Size{Width: 105, Height: 100}.Loose())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Size != (layout.Size{Width: 105, Height: 60}) {
		t.Errorf("size = %v, want 105x60", l.Size)
	}

	var rec imageRecorder
	if err := layout.Draw(l, &rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.at) != 1 || rec.at[0] != image.Pt(5, 10) || rec.size[0] != image.Pt(100, 50) {
		t.Errorf("drawn images at %v with sizes %v, want one 100x50 at (5,10)", rec.at, rec.size)
	}

	if _, err := New(p, "missing"); err == nil {
		t.Error("New() with missing image succeeded")
	}
}
