package layout

var (
	vertical   = Size{Width: 0, Height: 1}
	horizontal = Size{Width: 1, Height: 0}
)

// Stack places children one after another along its direction.
//
// Vertical stack is the main splitting container: when a child does not fit
// vertically the remaining children become leftover. Horizontal stack never
// splits, its content can only be moved to the next page as a whole.
type Stack struct {
	composite
	direction Size
}

func VStack(children ...Node) Stack {
	s := Stack{direction: vertical}
	s.set(children)
	return s
}

func HStack(children ...Node) Stack {
	s := Stack{direction: horizontal}
	s.set(children)
	return s
}

func (s Stack) Name() string {
	if s.direction == horizontal {
		return "HStack"
	}
	return "VStack"
}

func (s Stack) With(children ...Node) Node {
	s.set(children)
	return s
}

func (s Stack) Layout(ctx *Context, c Constraints) (*Layout, error) {
	if s.direction == horizontal {
		ctx.DisableSplit()
	}

	var (
		x, y     float64
		maxSize  Size
		layouts  = make([]*Layout, 0, len(s.children))
		leftover Node
		left     = c
	)
	for i, n := range s.children {
		l, err := ctx.LayoutAt(n, left, x, y)
		if err != nil {
			if !IsAxisOverflow(err) || !ctx.CanSplit() {
				return nil, err
			}
			leftover = s.With(s.children[i:]...)
			break
		}
		layouts = append(layouts, l)

		if l.Leftover != nil {
			rest := make([]Node, 0, len(s.children)-i)
			rest = append(rest, l.Leftover)
			rest = append(rest, s.children[i+1:]...)
			leftover = s.With(rest...)
			break
		}

		step := l.Size.Mul(s.direction)
		maxSize = maxSize.Max(l.Size)
		x += step.Width
		y += step.Height
		left = left.ShrinkBy(step.Width, step.Height)
	}

	size := Size{Width: x, Height: maxSize.Height}
	if s.direction == vertical {
		size = Size{Width: maxSize.Width, Height: y}
	}
	if leftover != nil {
		size = c.ExtendDown(size)
	}
	return &Layout{Size: size, Children: layouts, Leftover: leftover}, nil
}
