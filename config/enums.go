package config

import (
	"errors"
	"fmt"
	"strings"
)

// Specification of page image format.
// ENUM(png, jpeg)
type ImageFmt int

const (
	ImageFmtPng ImageFmt = iota
	ImageFmtJpeg
)

var ErrInvalidImageFmt = errors.New("not a valid ImageFmt")

var imageFmtNames = []string{"png", "jpeg"}

// ImageFmtNames returns list of possible string values of ImageFmt.
func ImageFmtNames() []string {
	return append([]string(nil), imageFmtNames...)
}

func (f ImageFmt) String() string {
	if f.IsValid() {
		return imageFmtNames[f]
	}
	return fmt.Sprintf("ImageFmt(%d)", f)
}

func (f ImageFmt) IsValid() bool {
	return f >= 0 && int(f) < len(imageFmtNames)
}

// ParseImageFmt converts string to ImageFmt, "jpg" is accepted as well.
func ParseImageFmt(name string) (ImageFmt, error) {
	switch strings.ToLower(name) {
	case "png":
		return ImageFmtPng, nil
	case "jpeg", "jpg":
		return ImageFmtJpeg, nil
	}
	return ImageFmt(0), fmt.Errorf("%s is %w", name, ErrInvalidImageFmt)
}

func (f ImageFmt) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%d is %w", f, ErrInvalidImageFmt)
	}
	return []byte(f.String()), nil
}

func (f *ImageFmt) UnmarshalText(text []byte) error {
	v, err := ParseImageFmt(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f ImageFmt) Ext() string {
	switch f {
	case ImageFmtPng:
		return ".png"
	case ImageFmtJpeg:
		return ".jpg"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
