package images

import (
	"errors"
	"fmt"
	"image"
	"math"

	"pagelay/layout"
)

var ErrInvalidSize = errors.New("image size must be positive")

// Image is a leaf node drawing raster image scaled to the laid out size.
//
// By default image expands to the available space keeping aspect ratio.
// Stretched images take all available space, natural images keep their size
// unless constraints require them to be bigger.
type Image struct {
	Source   string
	Expand   bool
	Preserve bool

	img      image.Image
	provider Provider
}

// New loads image immediately, so broken sources are reported while building
// the document.
func New(p Provider, name string) (Image, error) {
	img, err := p.Load(name)
	if err != nil {
		return Image{}, err
	}
	return Image{Source: name, Expand: true, Preserve: true, img: img, provider: p}, nil
}

// Stretched returns image which ignores aspect ratio and fills all space.
func (i Image) Stretched() Image {
	i.Expand, i.Preserve = true, false
	return i
}

// Natural returns image which keeps its size.
func (i Image) Natural() Image {
	i.Expand = false
	return i
}

func (i Image) Name() string {
	return "Image(" + i.Source + ")"
}

func (Image) Children() []layout.Node {
	return nil
}

// IntrinsicSize returns size of the loaded image in pixels.
func (i Image) IntrinsicSize() layout.Size {
	if i.img == nil {
		return layout.Size{}
	}
	b := i.img.Bounds()
	return layout.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Resolve computes size of the image for constraints.
func (i Image) Resolve(c layout.Constraints) (layout.Size, error) {
	s := i.IntrinsicSize()
	if s.Width <= 0 || s.Height <= 0 {
		return layout.Size{}, fmt.Errorf("%s: %w: %v", i.Name(), ErrInvalidSize, s)
	}
	switch {
	case i.Expand && i.Preserve:
		scale := math.Min(c.MaxWidth/s.Width, c.MaxHeight/s.Height)
		if math.IsInf(scale, 1) {
			return layout.Size{}, fmt.Errorf("%s: unable to expand into %v: %w", i.Name(), c, layout.ErrInvalidConstraints)
		}
		return s.Mul(layout.Size{Width: scale, Height: scale}), nil
	case i.Expand:
		if c.IsInfinite() {
			return layout.Size{}, fmt.Errorf("%s: unable to stretch into %v: %w", i.Name(), c, layout.ErrInvalidConstraints)
		}
		return c.MaxSize(), nil
	default:
		scale := max(c.MinWidth/s.Width, c.MinHeight/s.Height, 1)
		return s.Mul(layout.Size{Width: scale, Height: scale}), nil
	}
}

func (i Image) Layout(_ *layout.Context, c layout.Constraints) (*layout.Layout, error) {
	size, err := i.Resolve(c)
	if err != nil {
		return nil, err
	}
	return &layout.Layout{Size: size, Cached: i.scaled(size)}, nil
}

func (i Image) scaled(s layout.Size) image.Image {
	return i.provider.Resize(i.img, int(s.Width), int(s.Height))
}

func (i Image) Draw(cv layout.Canvas, x, y float64, l *layout.Layout) error {
	img, ok := l.Cached.(image.Image)
	if !ok {
		img = i.scaled(l.Size)
	}
	cv.Image(img, math.Trunc(x), math.Trunc(y))
	return nil
}
