package layout

import (
	"fmt"
	"math"
)

// OffsetFunc positions child of the given size inside available space and
// returns child offset and resulting node size.
type OffsetFunc func(avail, child Size) (x, y float64, size Size)

// Aligned positions its single child inside the available space.
type Aligned struct {
	composite
	name      string
	offset    OffsetFunc
	splitting bool
}

// Align returns positioning node. Only splittable nodes continue leftover of
// their child, others report axis overflow instead.
func Align(name string, offset OffsetFunc, splittable bool) Aligned {
	return Aligned{name: name, offset: offset, splitting: splittable}
}

func Right() Aligned {
	return Align("Right", func(avail, child Size) (float64, float64, Size) {
		return avail.Width - child.Width, 0, Size{Width: avail.Width, Height: child.Height}
	}, true)
}

func HCenter() Aligned {
	return Align("HCenter", func(avail, child Size) (float64, float64, Size) {
		return (avail.Width - child.Width) / 2, 0, Size{Width: avail.Width, Height: child.Height}
	}, true)
}

func Center() Aligned {
	return Align("Center", func(avail, child Size) (float64, float64, Size) {
		return (avail.Width - child.Width) / 2, (avail.Height - child.Height) / 2, avail
	}, false)
}

func Bottom() Aligned {
	return Align("Bottom", func(avail, child Size) (float64, float64, Size) {
		return 0, avail.Height - child.Height, Size{Width: child.Width, Height: avail.Height}
	}, false)
}

func VCenter() Aligned {
	return Align("VCenter", func(avail, child Size) (float64, float64, Size) {
		return 0, (avail.Height - child.Height) / 2, Size{Width: child.Width, Height: avail.Height}
	}, false)
}

func (a Aligned) Name() string {
	return a.name
}

func (a Aligned) With(children ...Node) Node {
	a.set(children)
	return a
}

func (a Aligned) Layout(ctx *Context, c Constraints) (*Layout, error) {
	if len(a.children) != 1 {
		return nil, fmt.Errorf("%s: %w: %d, exactly one is expected", ctx.Path(), ErrChildCount, len(a.children))
	}
	child := a.children[0]

	measured, err := ctx.Layout(child, c)
	if err != nil {
		return nil, err
	}
	if measured.Leftover != nil && !(a.splitting && ctx.CanSplit()) {
		return nil, newOverflow(Axis, ctx, a, measured.Size, c)
	}

	// Nothing to align against along unbounded axis.
	avail := c.MaxSize()
	if math.IsInf(avail.Width, 1) {
		avail.Width = measured.Size.Width
	}
	if math.IsInf(avail.Height, 1) {
		avail.Height = measured.Size.Height
	}
	x, y, size := a.offset(avail, measured.Size)

	l, err := ctx.LayoutAt(child, Constraints{
		MinWidth:  math.Min(c.MinWidth, size.Width),
		MaxWidth:  size.Width,
		MinHeight: math.Min(c.MinHeight, size.Height),
		MaxHeight: size.Height,
	}, x, y)
	if err != nil {
		return nil, err
	}
	res := &Layout{Size: size, Children: []*Layout{l}}
	if l.Leftover != nil {
		res.Leftover = a.With(l.Leftover)
	}
	return res, nil
}
