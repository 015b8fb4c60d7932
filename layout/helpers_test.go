package layout

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/image/font"
)

func pageLayout(t *testing.T, n Node, c Constraints) (*Layout, error) {
	t.Helper()
	env := NewEnv(zaptest.NewLogger(t), 0)
	env.Debug = true
	return env.PageContext().Layout(n, c)
}

func mustPageLayout(t *testing.T, n Node, c Constraints) *Layout {
	t.Helper()
	l, err := pageLayout(t, n, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return l
}

func loose(w, h float64) Constraints {
	return Size{Width: w, Height: h}.Loose()
}

func boxes(n int, w, h float64) []Node {
	out := make([]Node, n)
	for i := range out {
		out[i] = NewBox(w, h)
	}
	return out
}

// leaves returns laid out boxes without children.
func leaves(l *Layout) []*Layout {
	var out []*Layout
	for ch := range Walk(l) {
		if _, ok := ch.Node.(Box); ok && len(ch.Children) == 0 {
			out = append(out, ch)
		}
	}
	return out
}

type recorder struct {
	rects, lines, texts, images int
	ops                         []string
}

func (r *recorder) FillRect(x, y, w, h float64, _ color.Color) {
	r.rects++
	r.ops = append(r.ops, fmt.Sprintf("rect <%g,%g> %gx%g", x, y, w, h))
}

func (r *recorder) Line(x1, y1, x2, y2, _ float64, _ color.Color) {
	r.lines++
	r.ops = append(r.ops, fmt.Sprintf("line <%g,%g>-<%g,%g>", x1, y1, x2, y2))
}

func (r *recorder) Text(s string, x, y float64, _ font.Face, _ color.Color) {
	r.texts++
	r.ops = append(r.ops, fmt.Sprintf("text %q <%g,%g>", s, x, y))
}

func (r *recorder) Image(_ image.Image, x, y float64) {
	r.images++
	r.ops = append(r.ops, fmt.Sprintf("image <%g,%g>", x, y))
}

// splitter always returns leftover.
type splitter struct{}

func (splitter) Layout(*Context, Constraints) (*Layout, error) {
	return &Layout{Leftover: Empty()}, nil
}

func (splitter) Draw(Canvas, float64, float64, *Layout) error { return nil }

func (splitter) Children() []Node { return nil }

// dropper loses leftover of its child.
type dropper struct {
	child Node
}

func (d dropper) Layout(ctx *Context, c Constraints) (*Layout, error) {
	l, err := ctx.Layout(d.child, c)
	if err != nil {
		return nil, err
	}
	return &Layout{Size: l.Size, Children: []*Layout{l}}, nil
}

func (dropper) Draw(Canvas, float64, float64, *Layout) error { return nil }

func (d dropper) Children() []Node { return []Node{d.child} }
