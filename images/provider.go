// Package images loads image resources for document trees and provides the
// Image leaf node.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"pagelay/archive"
	"pagelay/utils/images"
)

var ErrUnsupported = errors.New("unsupported image format")

// Provider loads images by name and scales them to the laid out size.
type Provider interface {
	Load(name string) (image.Image, error)
	Resize(img image.Image, width, height int) image.Image
}

// brokenSVG is drawn instead of images which cannot be decoded when
// placeholders are enabled.
const brokenSVG = `<svg viewBox="0 0 64 64" xmlns="http://www.w3.org/2000/svg">
  <rect x="2" y="2" width="60" height="60" fill="none" stroke="gray" stroke-width="2"/>
  <path d="M2 2 L62 62 M62 2 L2 62" stroke="gray" stroke-width="2"/>
</svg>`

// svgImage keeps source of the rasterized drawing so it could be rasterized
// again at the requested size instead of being resampled.
type svgImage struct {
	image.Image
	data []byte
}

type scaledKey struct {
	src  image.Image
	w, h int
}

// FileProvider reads images from registered in-memory sources or from files
// relative to its base directory, which could also be a zip archive. Decoded
// and scaled images are cached, the cache is safe for concurrent use.
type FileProvider struct {
	dir         string
	placeholder bool
	log         *zap.Logger

	mu      sync.Mutex
	sources map[string][]byte
	decoded map[string]image.Image
	scaled  map[scaledKey]image.Image
}

type Option func(*FileProvider)

// WithPlaceholder substitutes images which cannot be read with placeholder
// drawing instead of failing.
func WithPlaceholder(enable bool) Option {
	return func(p *FileProvider) {
		p.placeholder = enable
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(p *FileProvider) {
		if log != nil {
			p.log = log
		}
	}
}

func NewFileProvider(dir string, opts ...Option) *FileProvider {
	p := &FileProvider{
		dir:     dir,
		log:     zap.NewNop(),
		sources: make(map[string][]byte),
		decoded: make(map[string]image.Image),
		scaled:  make(map[scaledKey]image.Image),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add registers in-memory image data under name, it takes precedence over
// files with the same name.
func (p *FileProvider) Add(name string, data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sources[name] = data
	delete(p.decoded, name)
}

func (p *FileProvider) Load(name string) (image.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if img, ok := p.decoded[name]; ok {
		return img, nil
	}

	img, err := p.read(name)
	if err != nil {
		if !p.placeholder {
			return nil, err
		}
		p.log.Warn("Unable to load image, using placeholder", zap.String("name", name), zap.Error(err))
		img, err = decode([]byte(brokenSVG))
		if err != nil {
			return nil, err
		}
	}
	p.decoded[name] = img
	return img, nil
}

func (p *FileProvider) read(name string) (image.Image, error) {
	data, ok := p.sources[name]
	if !ok {
		var err error
		switch {
		case filepath.IsAbs(name) || p.dir == "":
			data, err = os.ReadFile(name)
		case archive.IsArchive(p.dir):
			data, err = archive.ReadFile(p.dir, name)
		default:
			data, err = os.ReadFile(filepath.Join(p.dir, name))
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read image %q: %w", name, err)
		}
	}
	img, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("image %q: %w", name, err)
	}
	p.log.Debug("Image loaded", zap.String("name", name),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return img, nil
}

// Resize scales img to exactly width x height. SVG drawings are rasterized
// again at the target size.
func (p *FileProvider) Resize(img image.Image, width, height int) image.Image {
	width, height = max(width, 1), max(height, 1)
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}

	key := scaledKey{src: img, w: width, h: height}
	cacheable := reflect.TypeOf(img).Comparable()
	if cacheable {
		p.mu.Lock()
		scaled, ok := p.scaled[key]
		p.mu.Unlock()
		if ok {
			return scaled
		}
	}

	var scaled image.Image
	if s, ok := img.(*svgImage); ok {
		raster, err := images.RasterizeSVGToImage(images.ScaleSVGStrokeWidth(s.data, strokeFactor(b, width, height)), width, height)
		if err == nil {
			scaled = imaging.Resize(raster, width, height, imaging.Lanczos)
		} else {
			p.log.Warn("Unable to rasterize svg, resampling", zap.Error(err))
		}
	}
	if scaled == nil {
		scaled = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	if cacheable {
		p.mu.Lock()
		p.scaled[key] = scaled
		p.mu.Unlock()
	}
	return scaled
}

// strokeFactor keeps strokes of scaled up drawings visible.
func strokeFactor(b image.Rectangle, width, height int) float64 {
	if b.Dx() == 0 || b.Dy() == 0 {
		return 1
	}
	f := min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	if f <= 2 {
		return 1
	}
	return f / 2
}

func decode(data []byte) (image.Image, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect image type: %w", err)
	}
	if kind == filetype.Unknown {
		if isSVG(data) {
			img, err := images.RasterizeSVGToImage(data, 0, 0)
			if err != nil {
				return nil, err
			}
			return &svgImage{Image: img, data: data}, nil
		}
		return nil, ErrUnsupported
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind.MIME.Value)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", kind.MIME.Value, err)
	}
	return img, nil
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg"))
}
