package layout

import (
	"fmt"
	"iter"
)

// Walk iterates over the layout tree in pre-order, parents before children
// and children in order.
func Walk(root *Layout) iter.Seq[*Layout] {
	return func(yield func(*Layout) bool) {
		walk(root, yield)
	}
}

func walk(l *Layout, yield func(*Layout) bool) bool {
	if !yield(l) {
		return false
	}
	for _, ch := range l.Children {
		if !walk(ch, yield) {
			return false
		}
	}
	return true
}

// Draw renders the layout tree on canvas. Every layout is drawn with its
// DrawNode before its children.
func Draw(root *Layout, cv Canvas) error {
	for l := range Walk(root) {
		n := l.DrawNode()
		if err := n.Draw(cv, l.X, l.Y, l); err != nil {
			return fmt.Errorf("unable to draw %s at <%g,%g>: %w", NodeName(n), l.X, l.Y, err)
		}
	}
	return nil
}
