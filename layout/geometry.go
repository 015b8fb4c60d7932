package layout

import (
	"fmt"
	"math"
)

// Inf is the "fill available space" marker for sizes and the unbounded maximum
// for constraints.
var Inf = math.Inf(1)

// Size is a width/height pair, either component may be Inf.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%sx%s", dim(s.Width), dim(s.Height))
}

func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Max returns component-wise maximum.
func (s Size) Max(o Size) Size {
	return Size{Width: math.Max(s.Width, o.Width), Height: math.Max(s.Height, o.Height)}
}

// Mul multiplies component-wise, used with axis masks (1, 0) and (0, 1).
func (s Size) Mul(o Size) Size {
	return Size{Width: s.Width * o.Width, Height: s.Height * o.Height}
}

func (s Size) IsInfinite() bool {
	return math.IsInf(s.Width, 1) || math.IsInf(s.Height, 1)
}

// Strict returns constraints allowing exactly this size.
func (s Size) Strict() Constraints {
	return Constraints{MinWidth: s.Width, MaxWidth: s.Width, MinHeight: s.Height, MaxHeight: s.Height}
}

// Loose returns constraints allowing anything from zero up to this size.
func (s Size) Loose() Constraints {
	return Constraints{MaxWidth: s.Width, MaxHeight: s.Height}
}

// FitLayouts returns the smallest size covering every layout's size.
func FitLayouts(layouts []*Layout) Size {
	var s Size
	for _, l := range layouts {
		s = s.Max(l.Size)
	}
	return s
}

// Constraints bound a node size, both ends inclusive.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// NewConstraints returns validated constraints.
func NewConstraints(minWidth, maxWidth, minHeight, maxHeight float64) (Constraints, error) {
	c := Constraints{MinWidth: minWidth, MaxWidth: maxWidth, MinHeight: minHeight, MaxHeight: maxHeight}
	if !c.Valid() {
		return Constraints{}, fmt.Errorf("%w: %s", ErrInvalidConstraints, c)
	}
	return c, nil
}

func (c Constraints) String() string {
	return fmt.Sprintf("[%s..%s, %s..%s]", dim(c.MinWidth), dim(c.MaxWidth), dim(c.MinHeight), dim(c.MaxHeight))
}

// Valid reports whether minimums are not negative and do not exceed maximums.
// NaN values are never valid.
func (c Constraints) Valid() bool {
	return c.MinWidth >= 0 && c.MinHeight >= 0 && c.MinWidth <= c.MaxWidth && c.MinHeight <= c.MaxHeight
}

func (c Constraints) IsInfinite() bool {
	return math.IsInf(c.MaxWidth, 1) || math.IsInf(c.MaxHeight, 1)
}

func (c Constraints) MinSize() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}

func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Fits reports whether size is within both bounds.
func (c Constraints) Fits(s Size) bool {
	return !c.TooSmall(s) && !c.TooBig(s)
}

func (c Constraints) TooSmall(s Size) bool {
	return s.Width < c.MinWidth || s.Height < c.MinHeight
}

func (c Constraints) TooBig(s Size) bool {
	return s.Width > c.MaxWidth || s.Height > c.MaxHeight
}

// Overflows reports overflow to the right (width) and down (height).
func (c Constraints) Overflows(s Size) (right, down bool) {
	return s.Width > c.MaxWidth, s.Height > c.MaxHeight
}

// Clamp returns size forced into the constraints.
func (c Constraints) Clamp(s Size) Size {
	return Size{
		Width:  math.Min(math.Max(s.Width, c.MinWidth), c.MaxWidth),
		Height: math.Min(math.Max(s.Height, c.MinHeight), c.MaxHeight),
	}
}

// WithMin raises the minimum to at least s, maximums are kept.
func (c Constraints) WithMin(s Size) Constraints {
	c.MinWidth = math.Max(c.MinWidth, s.Width)
	c.MinHeight = math.Max(c.MinHeight, s.Height)
	return c
}

// ShrinkBy lowers maximums, minimums are clipped so they never exceed the new
// maximums. Shrinking an infinite maximum leaves it infinite.
func (c Constraints) ShrinkBy(width, height float64) Constraints {
	c.MaxWidth -= width
	c.MaxHeight -= height
	c.MinWidth = math.Max(0, math.Min(c.MinWidth, c.MaxWidth))
	c.MinHeight = math.Max(0, math.Min(c.MinHeight, c.MaxHeight))
	return c
}

// ExtendRight returns size stretched to the maximum width.
func (c Constraints) ExtendRight(s Size) Size {
	return Size{Width: c.MaxWidth, Height: s.Height}
}

// ExtendDown returns size stretched to the maximum height.
func (c Constraints) ExtendDown(s Size) Size {
	return Size{Width: s.Width, Height: c.MaxHeight}
}

func dim(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%g", v)
}
