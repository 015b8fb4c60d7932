package paging

import (
	"fmt"
	"slices"

	"pagelay/layout"
)

type pageBreak struct{}

// PageBreak moves the rest of the enclosing splittable stack to the next
// page. It is ignored where splitting is not allowed.
func PageBreak() layout.Node {
	return pageBreak{}
}

func (pageBreak) Name() string { return "PageBreak" }

func (pageBreak) Children() []layout.Node { return nil }

func (pageBreak) Draw(layout.Canvas, float64, float64, *layout.Layout) error { return nil }

func (pageBreak) Layout(ctx *layout.Context, _ layout.Constraints) (*layout.Layout, error) {
	if !ctx.CanSplit() {
		return &layout.Layout{}, nil
	}
	return &layout.Layout{Leftover: layout.Empty()}, nil
}

type noBreak struct {
	children []layout.Node
}

// NoBreak keeps its child on a single page: when it does not fit, the child
// is moved to the next page as a whole.
func NoBreak() layout.Container {
	return noBreak{}
}

func (noBreak) Name() string { return "NoBreak" }

func (n noBreak) Children() []layout.Node { return n.children }

func (n noBreak) With(children ...layout.Node) layout.Node {
	n.children = slices.Clone(children)
	return n
}

func (noBreak) Draw(layout.Canvas, float64, float64, *layout.Layout) error { return nil }

func (n noBreak) Layout(ctx *layout.Context, c layout.Constraints) (*layout.Layout, error) {
	ctx.DisableSplit()
	switch len(n.children) {
	case 0:
		return &layout.Layout{Size: c.MinSize()}, nil
	case 1:
	default:
		return nil, fmt.Errorf("%s: %w: %d, at most one is expected", ctx.Path(), layout.ErrChildCount, len(n.children))
	}
	l, err := ctx.Layout(n.children[0], c)
	if err != nil {
		return nil, err
	}
	return &layout.Layout{Size: l.Size, Children: []*layout.Layout{l}}, nil
}

type measurement struct {
	report func(x, y float64, s layout.Size)
}

// ContentMeasurement takes all available space and reports its position and
// size.
func ContentMeasurement(report func(x, y float64, s layout.Size)) layout.Node {
	return measurement{report: report}
}

func (measurement) Name() string { return "ContentMeasurement" }

func (measurement) Children() []layout.Node { return nil }

func (measurement) Draw(layout.Canvas, float64, float64, *layout.Layout) error { return nil }

func (m measurement) Layout(ctx *layout.Context, c layout.Constraints) (*layout.Layout, error) {
	size := c.MaxSize()
	m.report(ctx.X(), ctx.Y(), size)
	return &layout.Layout{Size: size}, nil
}

type preLaidOut struct {
	l *layout.Layout
}

// PreLaidOut returns node which yields already computed layout. Stored node
// is drawn in its place.
func PreLaidOut(l *layout.Layout) layout.Node {
	return preLaidOut{l: l}
}

func (preLaidOut) Name() string { return "PreLaidOut" }

func (preLaidOut) Children() []layout.Node { return nil }

func (preLaidOut) Draw(layout.Canvas, float64, float64, *layout.Layout) error { return nil }

func (p preLaidOut) Layout(*layout.Context, layout.Constraints) (*layout.Layout, error) {
	out := *p.l
	if out.Override == nil {
		out.Override = p.l.Node
	}
	return &out, nil
}

// PageNode lays out its content as a page of fixed size, the part of content
// which does not fit is dropped.
type PageNode struct {
	Size    layout.Size
	content layout.Node
}

func NewPageNode(size layout.Size, content layout.Node) PageNode {
	return PageNode{Size: size, content: content}
}

func (PageNode) Name() string { return "Page" }

func (p PageNode) Children() []layout.Node {
	if p.content == nil {
		return nil
	}
	return []layout.Node{p.content}
}

func (p PageNode) With(children ...layout.Node) layout.Node {
	p.content = nil
	if len(children) > 0 {
		p.content = children[0]
	}
	return p
}

func (PageNode) Draw(layout.Canvas, float64, float64, *layout.Layout) error { return nil }

func (p PageNode) Layout(ctx *layout.Context, _ layout.Constraints) (*layout.Layout, error) {
	res := &layout.Layout{Size: p.Size}
	if p.content == nil {
		return res, nil
	}
	l, err := ctx.Detached().Layout(p.content, p.Size.Loose())
	if err != nil {
		return nil, err
	}
	res.Children = []*layout.Layout{l.StripLeftover()}
	return res, nil
}
