package layout

import "errors"

// Flow places children left to right wrapping to the next row when a child
// does not fit horizontally. Flow does not split.
type Flow struct {
	composite
}

func NewFlow(children ...Node) Flow {
	var f Flow
	f.set(children)
	return f
}

func (f Flow) With(children ...Node) Node {
	f.set(children)
	return f
}

func (f Flow) Layout(ctx *Context, c Constraints) (*Layout, error) {
	ctx.DisableSplit()

	var (
		layouts  = make([]*Layout, 0, len(f.children))
		maxWidth float64
		rowY     float64
		next     int
	)
	for next < len(f.children) {
		var rowWidth, rowHeight float64
		row := Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight - rowY}
		for next < len(f.children) {
			l, err := ctx.LayoutAt(f.children[next], row, rowWidth, rowY)
			if err != nil {
				var oe *OverflowError
				if !errors.As(err, &oe) {
					return nil, err
				}
				wide := oe.Kind == CrossAxis || oe.Size.Width > oe.Constraints.MaxWidth
				switch {
				case wide && rowWidth > 0:
					// wrap to the next row
				case wide:
					// does not fit even into an empty row
					return nil, newOverflow(CrossAxis, ctx, f, oe.Size, oe.Constraints)
				default:
					// rows do not split, let ancestors move the whole flow
					return nil, newOverflow(Axis, ctx, f, oe.Size, oe.Constraints)
				}
				break
			}
			layouts = append(layouts, l)
			row = row.ShrinkBy(l.Size.Width, 0)
			rowWidth += l.Size.Width
			rowHeight = max(rowHeight, l.Size.Height)
			next++
		}
		maxWidth = max(maxWidth, rowWidth)
		rowY += rowHeight
	}
	return &Layout{Size: Size{Width: maxWidth, Height: rowY}, Children: layouts}, nil
}
