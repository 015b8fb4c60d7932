// Package text provides fonts, text metrics and text leaf nodes.
package text

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	// BuiltinName is the fixed size bitmap font which requires no font data.
	BuiltinName = "builtin"
	// DefaultName is the bundled Go proportional font family.
	DefaultName = "go"
	MonoName    = "gomono"
)

var ErrFontNotFound = errors.New("font not found")

// bundled font families indexed by style: regular, bold, italic, bold italic.
var bundled = map[string][4][]byte{
	DefaultName: {goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF},
	MonoName:    {gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF},
}

var styleSuffixes = [4][]string{
	{"-Regular", "", "Regular"},
	{"-Bold", "Bold", "bd"},
	{"-Italic", "Italic", "i"},
	{"-BoldItalic", "BoldItalic", "bi"},
}

type fontKey struct {
	name         string
	size         float64
	bold, italic bool
}

func (k fontKey) style() int {
	s := 0
	if k.bold {
		s |= 1
	}
	if k.italic {
		s |= 2
	}
	return s
}

// Fonts loads and caches font faces. Faces are shared, so the same Font is
// returned for the same name, size and style.
type Fonts struct {
	log  *zap.Logger
	dirs []string
	dpi  float64

	mu     sync.Mutex
	faces  map[fontKey]*Font
	parsed map[string]*opentype.Font
}

// NewFonts returns font cache looking for non bundled fonts in dirs.
func NewFonts(log *zap.Logger, dpi float64, dirs ...string) *Fonts {
	if log == nil {
		log = zap.NewNop()
	}
	if dpi <= 0 {
		dpi = 72
	}
	return &Fonts{
		log:    log,
		dirs:   dirs,
		dpi:    dpi,
		faces:  make(map[fontKey]*Font),
		parsed: make(map[string]*opentype.Font),
	}
}

// Font is a loaded font face with its identity.
type Font struct {
	Name   string
	Size   float64
	Bold   bool
	Italic bool
	Face   font.Face

	fonts *Fonts
}

func (f *Font) String() string {
	var style []string
	if f.Bold {
		style = append(style, "bold")
	}
	if f.Italic {
		style = append(style, "italic")
	}
	if len(style) == 0 {
		return fmt.Sprintf("%s %gpt", f.Name, f.Size)
	}
	return fmt.Sprintf("%s %gpt %s", f.Name, f.Size, strings.Join(style, " "))
}

// Variant returns the same font family in a different size and style.
func (f *Font) Variant(size float64, bold, italic bool) (*Font, error) {
	return f.fonts.Load(f.Name, size, bold, italic)
}

func (f *Font) Sized(size float64) (*Font, error) {
	return f.Variant(size, f.Bold, f.Italic)
}

func (f *Font) Bolder() (*Font, error) {
	return f.Variant(f.Size, true, f.Italic)
}

// Builtin returns bitmap font which is always available, its size is fixed.
func (fs *Fonts) Builtin() *Font {
	f, _ := fs.Load(BuiltinName, 13, false, false)
	return f
}

// Load returns font face for the family name. Bundled families and builtin
// font are always available, other names are looked up as font files in
// configured directories.
func (fs *Fonts) Load(name string, size float64, bold, italic bool) (*Font, error) {
	if name == "" {
		name = DefaultName
	}
	key := fontKey{name: name, size: size, bold: bold, italic: italic}
	if name == BuiltinName {
		key = fontKey{name: name, size: 13}
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if f, ok := fs.faces[key]; ok {
		return f, nil
	}

	var face font.Face
	if key.name == BuiltinName {
		face = basicfont.Face7x13
	} else {
		otf, err := fs.parse(key)
		if err != nil {
			return nil, err
		}
		if face, err = opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: fs.dpi, Hinting: font.HintingFull}); err != nil {
			return nil, fmt.Errorf("unable to create face for font %q: %w", name, err)
		}
	}
	f := &Font{Name: key.name, Size: key.size, Bold: key.bold, Italic: key.italic, Face: face, fonts: fs}
	fs.faces[key] = f
	fs.log.Debug("Font loaded", zap.Stringer("font", f))
	return f, nil
}

func (fs *Fonts) parse(key fontKey) (*opentype.Font, error) {
	id := fmt.Sprintf("%s/%d", key.name, key.style())
	if otf, ok := fs.parsed[id]; ok {
		return otf, nil
	}

	data, err := fs.fontData(key)
	if err != nil {
		return nil, err
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse font %q: %w", key.name, err)
	}
	fs.parsed[id] = otf
	return otf, nil
}

func (fs *Fonts) fontData(key fontKey) ([]byte, error) {
	if family, ok := bundled[key.name]; ok {
		return family[key.style()], nil
	}
	for _, dir := range fs.dirs {
		for _, suffix := range styleSuffixes[key.style()] {
			for _, ext := range []string{".ttf", ".otf"} {
				path := filepath.Join(dir, key.name+suffix+ext)
				data, err := os.ReadFile(path)
				if err == nil {
					fs.log.Debug("Font file found", zap.String("path", path))
					return data, nil
				}
				if !errors.Is(err, os.ErrNotExist) {
					return nil, fmt.Errorf("unable to read font file: %w", err)
				}
			}
		}
	}
	return nil, fmt.Errorf("%w: %q (bold=%t, italic=%t)", ErrFontNotFound, key.name, key.bold, key.italic)
}
