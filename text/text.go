package text

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"pagelay/layout"
)

// DefaultSpacing is added between lines of multi-line text.
const DefaultSpacing = 2

var ErrNoFace = errors.New("text has no font face")

// Metrics measures text without drawing it.
type Metrics interface {
	Measure(s string, face font.Face, spacing float64) layout.Size
}

// FaceMetrics measures text with font face advances and vertical metrics.
type FaceMetrics struct{}

func (FaceMetrics) Measure(s string, face font.Face, spacing float64) layout.Size {
	lines := Lines(s)
	var width float64
	for _, line := range lines {
		width = max(width, toFloat(font.MeasureString(face, line)))
	}
	n := float64(len(lines))
	return layout.Size{Width: width, Height: LineHeight(face)*n + spacing*(n-1)}
}

// Lines splits text into lines, empty text is a single empty line.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// LineHeight is the distance between baselines of adjacent lines without
// spacing.
func LineHeight(face font.Face) float64 {
	m := face.Metrics()
	return toFloat(m.Ascent + m.Descent)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Text is a leaf node with non wrapping, possibly multi-line text.
type Text struct {
	Text    string
	Font    *Font
	Color   color.Color
	Spacing float64

	metrics Metrics
}

// New returns black text with default line spacing.
func New(s string, f *Font) Text {
	return Text{Text: s, Font: f, Color: color.Black, Spacing: DefaultSpacing, metrics: FaceMetrics{}}
}

func (t Text) Colored(c color.Color) Text {
	t.Color = c
	return t
}

func (t Text) Spaced(spacing float64) Text {
	t.Spacing = spacing
	return t
}

// Measured replaces text metrics oracle.
func (t Text) Measured(m Metrics) Text {
	t.metrics = m
	return t
}

func (t Text) String() string {
	return t.Text
}

func (t Text) Children() []layout.Node {
	return nil
}

func (t Text) Layout(ctx *layout.Context, _ layout.Constraints) (*layout.Layout, error) {
	if t.Font == nil || t.Font.Face == nil {
		return nil, fmt.Errorf("%s: %q: %w", ctx.Path(), t.Text, ErrNoFace)
	}
	m := t.metrics
	if m == nil {
		m = FaceMetrics{}
	}
	return &layout.Layout{Size: m.Measure(t.Text, t.Font.Face, t.Spacing)}, nil
}

func (t Text) Draw(cv layout.Canvas, x, y float64, _ *layout.Layout) error {
	if t.Font == nil || t.Font.Face == nil {
		return fmt.Errorf("%q: %w", t.Text, ErrNoFace)
	}
	face := t.Font.Face
	ascent := toFloat(face.Metrics().Ascent)
	step := LineHeight(face) + t.Spacing
	c := t.Color
	if c == nil {
		c = color.Black
	}
	for i, line := range Lines(t.Text) {
		if line == "" {
			continue
		}
		cv.Text(line, x, y+ascent+float64(i)*step, face, c)
	}
	return nil
}
