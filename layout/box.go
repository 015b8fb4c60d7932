package layout

import (
	"fmt"
	"math"
)

// Box has fixed dimensions, Inf dimension takes all available space.
type Box struct {
	composite
	Width, Height float64
}

func NewBox(width, height float64) Box {
	return Box{Width: width, Height: height}
}

// Expand returns box filling all available space.
func Expand() Box {
	return Box{Width: Inf, Height: Inf}
}

func (b Box) With(children ...Node) Node {
	b.set(children)
	return b
}

func (b Box) Layout(ctx *Context, c Constraints) (*Layout, error) {
	if len(b.children) > 1 {
		return nil, fmt.Errorf("%s: %w: %d, at most one is expected", ctx.Path(), ErrChildCount, len(b.children))
	}
	size := Size{Width: b.Width, Height: b.Height}
	if math.IsInf(size.Width, 1) {
		size.Width = c.MaxWidth
	}
	if math.IsInf(size.Height, 1) {
		size.Height = c.MaxHeight
	}
	inner := Constraints{
		MinWidth:  math.Min(c.MinWidth, size.Width),
		MaxWidth:  size.Width,
		MinHeight: math.Min(c.MinHeight, size.Height),
		MaxHeight: size.Height,
	}
	res := &Layout{Size: size}
	for _, n := range b.children {
		l, err := ctx.Layout(n, inner)
		if err != nil {
			return nil, err
		}
		res.Children = append(res.Children, l)
		if l.Leftover != nil {
			res.Leftover = b.With(l.Leftover)
		}
	}
	return res, nil
}

// MinSize raises minimal constraints of its single child.
type MinSize struct {
	composite
	Width, Height float64
}

// EnsureSize makes sure child is at least width x height.
func EnsureSize(width, height float64) MinSize {
	return MinSize{Width: width, Height: height}
}

func (m MinSize) With(children ...Node) Node {
	m.set(children)
	return m
}

func (m MinSize) Layout(ctx *Context, c Constraints) (*Layout, error) {
	return layoutSingle(ctx, m, c.WithMin(Size{Width: m.Width, Height: m.Height}))
}

// Layers places all children at the same origin with the same constraints.
type Layers struct {
	composite
}

func NewLayers(children ...Node) Layers {
	var l Layers
	l.set(children)
	return l
}

func (ls Layers) With(children ...Node) Node {
	ls.set(children)
	return ls
}

func (ls Layers) Layout(ctx *Context, c Constraints) (*Layout, error) {
	layouts := make([]*Layout, 0, len(ls.children))
	var leftovers []Node
	for _, n := range ls.children {
		l, err := ctx.Layout(n, c)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
		if l.Leftover != nil {
			leftovers = append(leftovers, l.Leftover)
		}
	}
	res := &Layout{Size: FitLayouts(layouts), Children: layouts}
	if len(leftovers) > 0 {
		res.Leftover = ls.With(leftovers...)
	}
	return res, nil
}
