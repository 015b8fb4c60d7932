package layout

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Edges is a set of rectangle sides.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	EdgesNone Edges = 0
	EdgesAll        = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft
)

// OutlineStyle describes outline decoration. Nil colors are not drawn, zero
// border width means 1.
type OutlineStyle struct {
	Fill        color.Color
	BorderColor color.Color
	BorderWidth float64
	// Hide lists borders which are not drawn.
	Hide Edges
}

// DefaultOutlineStyle is a thin gray frame without fill.
var DefaultOutlineStyle = OutlineStyle{BorderColor: colornames.Gray, BorderWidth: 1}

// Outline draws decoration behind its child and takes the child size. When the
// child splits, the part on the current page loses its bottom border and the
// continuation loses its top border.
type Outline struct {
	composite
	Style OutlineStyle
}

func NewOutline(style OutlineStyle) Outline {
	return Outline{Style: style}
}

func (o Outline) With(children ...Node) Node {
	o.set(children)
	return o
}

func (o Outline) hide(e Edges) Outline {
	o.Style.Hide |= e
	return o
}

func (o Outline) Layout(ctx *Context, c Constraints) (*Layout, error) {
	switch len(o.children) {
	case 0:
		return &Layout{Size: c.MinSize()}, nil
	case 1:
	default:
		return nil, fmt.Errorf("%s: %w: %d, at most one is expected", ctx.Path(), ErrChildCount, len(o.children))
	}
	l, err := ctx.Layout(o.children[0], c)
	if err != nil {
		return nil, err
	}
	res := &Layout{Size: l.Size, Children: []*Layout{l}}
	if l.Leftover != nil {
		res.Override = o.hide(EdgeBottom).With(l.DrawNode())
		res.Leftover = o.hide(EdgeTop).With(l.Leftover)
	}
	return res, nil
}

func (o Outline) Draw(cv Canvas, x, y float64, l *Layout) error {
	w, h := l.Size.Width, l.Size.Height
	if w <= 0 || h <= 0 {
		return nil
	}
	if o.Style.Fill != nil {
		cv.FillRect(x, y, w, h, o.Style.Fill)
	}
	if o.Style.BorderColor == nil {
		return nil
	}
	bw := o.Style.BorderWidth
	if bw <= 0 {
		bw = 1
	}
	right, bottom := x+w-1, y+h-1
	for _, side := range []struct {
		edge           Edges
		x1, y1, x2, y2 float64
	}{
		{EdgeTop, x, y, right, y},
		{EdgeRight, right, y, right, bottom},
		{EdgeLeft, x, y, x, bottom},
		{EdgeBottom, x, bottom, right, bottom},
	} {
		if o.Style.Hide&side.edge == 0 {
			cv.Line(side.x1, side.y1, side.x2, side.y2, bw, o.Style.BorderColor)
		}
	}
	return nil
}
