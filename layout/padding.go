package layout

import "fmt"

// Padding surrounds its child with insets. Top inset is not repeated for the
// continuation of a split child.
type Padding struct {
	composite
	Left, Top, Right, Bottom float64
}

func Pad(left, top, right, bottom float64) Padding {
	return Padding{Left: left, Top: top, Right: right, Bottom: bottom}
}

func PadAll(v float64) Padding {
	return Pad(v, v, v, v)
}

// PadXY pads horizontally by x and vertically by y.
func PadXY(x, y float64) Padding {
	return Pad(x, y, x, y)
}

func (p Padding) With(children ...Node) Node {
	p.set(children)
	return p
}

func (p Padding) Layout(ctx *Context, c Constraints) (*Layout, error) {
	switch len(p.children) {
	case 0:
		return &Layout{Size: c.MinSize()}, nil
	case 1:
	default:
		return nil, fmt.Errorf("%s: %w: %d, at most one is expected", ctx.Path(), ErrChildCount, len(p.children))
	}

	hor := p.Left + p.Right
	if c.MaxWidth < hor {
		return nil, newOverflow(CrossAxis, ctx, p, Size{Width: hor}, c)
	}
	if c.MaxHeight < p.Top {
		return nil, newOverflow(Axis, ctx, p, Size{Width: hor, Height: p.Top}, c)
	}

	l, err := ctx.LayoutAt(p.children[0], c.ShrinkBy(hor, p.Top+p.Bottom), p.Left, p.Top)
	if err != nil {
		return nil, err
	}

	res := &Layout{Children: []*Layout{l}}
	if l.Leftover != nil {
		res.Size = Size{Width: l.Size.Width + hor, Height: c.MaxHeight}
		rest := p
		rest.Top = 0
		res.Leftover = rest.With(l.Leftover)
	} else {
		res.Size = Size{Width: l.Size.Width + hor, Height: l.Size.Height + p.Top + p.Bottom}
	}
	return res, nil
}
