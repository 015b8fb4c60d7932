// Package render turns laid out pages into images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"pagelay/config"
	"pagelay/layout"
	imgutil "pagelay/utils/images"
)

type Renderer struct {
	cfg        config.RenderConfig
	background color.Color
	log        *zap.Logger
}

func New(cfg *config.RenderConfig, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("unable to use background: %w", err)
	}
	if !cfg.Format.IsValid() {
		return nil, fmt.Errorf("%w: %d", config.ErrInvalidImageFmt, cfg.Format)
	}
	return &Renderer{cfg: *cfg, background: bg, log: log}, nil
}

// Page draws layout on a page of the given size.
func (r *Renderer) Page(size layout.Size, l *layout.Layout) (image.Image, error) {
	if size.IsInfinite() || size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("unable to render page of size %v", size)
	}
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))

	dc := gg.NewContext(w, h)
	dc.SetColor(r.background)
	dc.Clear()
	if err := layout.Draw(l, NewCanvas(dc)); err != nil {
		return nil, fmt.Errorf("unable to render page: %w", err)
	}

	var img image.Image = dc.Image()
	if r.cfg.Grayscale {
		img = imgutil.ToGray(img)
	}
	r.log.Debug("Page rendered", zap.Int("width", w), zap.Int("height", h), zap.Bool("grayscale", r.cfg.Grayscale))
	return img, nil
}

// Document draws layout which was not paginated on an image of its own size.
func (r *Renderer) Document(l *layout.Layout) (image.Image, error) {
	return r.Page(l.Size, l)
}

func (r *Renderer) Encode(w io.Writer, img image.Image) error {
	switch r.cfg.Format {
	case config.ImageFmtJpeg:
		if err := imgutil.WriteJPEG(w, img, r.cfg.JPEGQuality, r.cfg.DPI); err != nil {
			return fmt.Errorf("unable to encode jpeg: %w", err)
		}
	default:
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			return fmt.Errorf("unable to encode png: %w", err)
		}
	}
	return nil
}

// Ext returns file extension for encoded images.
func (r *Renderer) Ext() string {
	return r.cfg.Format.Ext()
}
