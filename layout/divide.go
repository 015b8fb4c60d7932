package layout

import (
	"fmt"
	"math"
)

// Divide splits available space along one axis into segments, one child per
// segment. Inf segments share what is left after fixed ones equally.
type Divide struct {
	composite
	direction Size
	sizes     []float64
}

// HDivide creates columns of the given widths.
func HDivide(sizes ...float64) Divide {
	return Divide{direction: horizontal, sizes: sizes}
}

// VDivide creates rows of the given heights.
func VDivide(sizes ...float64) Divide {
	return Divide{direction: vertical, sizes: sizes}
}

func (d Divide) Name() string {
	if d.direction == horizontal {
		return "HDivide"
	}
	return "VDivide"
}

func (d Divide) With(children ...Node) Node {
	d.set(children)
	return d
}

// Segments returns resolved segment sizes for the available axis length.
func (d Divide) Segments(avail float64) []float64 {
	var (
		fixed    float64
		infinite int
	)
	for _, s := range d.sizes {
		if math.IsInf(s, 1) {
			infinite++
			continue
		}
		fixed += s
	}
	var share float64
	if infinite > 0 {
		share = max(0, (avail-fixed)/float64(infinite))
	}
	out := make([]float64, len(d.sizes))
	for i, s := range d.sizes {
		if math.IsInf(s, 1) {
			s = share
		}
		out[i] = s
	}
	return out
}

func (d Divide) Layout(ctx *Context, c Constraints) (*Layout, error) {
	if len(d.sizes) == 0 || len(d.children) != len(d.sizes) {
		return nil, fmt.Errorf("%s: %w: %d children for %d divisions", ctx.Path(), ErrChildCount, len(d.children), len(d.sizes))
	}
	ctx.DisableSplit()

	hor := d.direction == horizontal
	avail := c.MaxHeight
	if hor {
		avail = c.MaxWidth
	}

	var (
		pos     float64
		layouts = make([]*Layout, 0, len(d.children))
	)
	for i, seg := range d.Segments(avail) {
		var (
			x, y float64
			cell = c.MaxSize()
		)
		if hor {
			x, cell.Width = pos, seg
		} else {
			y, cell.Height = pos, seg
		}
		l, err := ctx.LayoutAt(d.children[i], cell.Loose(), x, y)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
		pos += seg
	}

	size := Size{Width: c.MaxWidth, Height: pos}
	if hor {
		size = Size{Width: pos, Height: c.MaxHeight}
	}
	return &Layout{Size: size, Children: layouts}, nil
}
