// Package layout implements constraint based layout of node trees and the
// overflow/leftover protocol used to split laid out content across pages.
package layout

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"strings"

	"golang.org/x/image/font"
)

// Node is an immutable element of a document tree.
//
// Layout computes the node size for given constraints, positions children
// through ctx and may return a leftover - the part of the node which did not
// fit and has to be continued elsewhere (next page). Draw is called before
// children are drawn with absolute position of the node.
type Node interface {
	Layout(ctx *Context, c Constraints) (*Layout, error)
	Draw(cv Canvas, x, y float64, l *Layout) error
	Children() []Node
}

// Container is a node which accepts children. With returns a copy of the node
// with children replaced, all other state is shared.
type Container interface {
	Node
	With(children ...Node) Node
}

// Named nodes provide their own name for diagnostics.
type Named interface {
	Name() string
}

// Canvas is a drawing backend.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	// Text draws single line of text with baseline at y.
	Text(s string, x, y float64, face font.Face, c color.Color)
	Image(img image.Image, x, y float64)
}

// Layout is the result of a node evaluation.
type Layout struct {
	// Node, X and Y are filled by Context, X and Y are absolute.
	Node     Node
	X, Y     float64
	Size     Size
	Children []*Layout
	// Override is drawn instead of Node when set.
	Override Node
	// Leftover is the part of the node to be continued on the next page.
	Leftover Node
	// Cached holds node specific data computed during layout.
	Cached any
}

// DrawNode returns node which should be used for drawing this layout.
func (l *Layout) DrawNode() Node {
	if l.Override != nil {
		return l.Override
	}
	return l.Node
}

// StripLeftover returns deep copy of the layout tree without leftovers.
func (l *Layout) StripLeftover() *Layout {
	out := *l
	out.Leftover = nil
	if len(l.Children) > 0 {
		out.Children = make([]*Layout, len(l.Children))
		for i, ch := range l.Children {
			out.Children[i] = ch.StripLeftover()
		}
	}
	return &out
}

func (l *Layout) hasChildLeftover() bool {
	return slices.ContainsFunc(l.Children, func(ch *Layout) bool { return ch.Leftover != nil })
}

// NodeName returns short type name of the node.
func NodeName(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if nn, ok := n.(Named); ok {
		return nn.Name()
	}
	name := fmt.Sprintf("%T", n)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}

// Attach replaces children of n. Leaf nodes accept no children.
func Attach(n Node, children ...Node) (Node, error) {
	c, ok := n.(Container)
	if !ok {
		if len(children) > 0 {
			return nil, fmt.Errorf("%s: %w", NodeName(n), ErrLeafChildren)
		}
		return n, nil
	}
	return c.With(children...), nil
}

// composite keeps children of container nodes.
type composite struct {
	children []Node
}

func (c composite) Children() []Node {
	return c.children
}

func (composite) Draw(Canvas, float64, float64, *Layout) error {
	return nil
}

func (c *composite) set(children []Node) {
	c.children = slices.Clone(children)
}

type leaf struct{}

func (leaf) Children() []Node {
	return nil
}

func (leaf) Draw(Canvas, float64, float64, *Layout) error {
	return nil
}

// layoutSingle is the default behavior for nodes with at most one child: the
// child gets the same constraints and defines the size. Child leftover is
// continued through self.
func layoutSingle(ctx *Context, self Container, c Constraints) (*Layout, error) {
	children := self.Children()
	switch len(children) {
	case 0:
		return &Layout{Size: c.MinSize()}, nil
	case 1:
	default:
		return nil, fmt.Errorf("%s: %w: %d, at most one is expected", ctx.Path(), ErrChildCount, len(children))
	}
	child, err := ctx.Layout(children[0], c)
	if err != nil {
		return nil, err
	}
	res := &Layout{Size: child.Size, Children: []*Layout{child}}
	if child.Leftover != nil {
		res.Leftover = self.With(child.Leftover)
	}
	return res, nil
}

// Empty returns leaf node of the minimal allowed size.
func Empty() Node {
	return empty{}
}

type empty struct{ leaf }

func (empty) Layout(_ *Context, c Constraints) (*Layout, error) {
	return &Layout{Size: c.MinSize()}, nil
}

func (empty) Name() string { return "Empty" }
