package layout

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Env is shared by all node contexts of a single layout pass.
type Env struct {
	Log       *zap.Logger
	Debug     bool
	PageIndex int
}

// NewEnv returns environment for a page layout pass. Nil logger is allowed.
func NewEnv(log *zap.Logger, pageIndex int) *Env {
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{Log: log, PageIndex: pageIndex}
}

// PageContext returns root context which allows splitting.
func (e *Env) PageContext() *Context {
	return &Context{env: e, canSplit: true}
}

// ContainerContext returns root context which forbids splitting.
func (e *Env) ContainerContext() *Context {
	return &Context{env: e}
}

// Context is the state of a single node evaluation. It is cloned for every
// child, so narrowing CanSplit only affects the node subtree.
type Context struct {
	env      *Env
	canSplit bool
	x, y     float64

	// diagnostics only
	node   Node
	parent *Context
}

func (ctx *Context) Env() *Env {
	return ctx.env
}

// X returns absolute horizontal offset of the current node.
func (ctx *Context) X() float64 {
	return ctx.x
}

// Y returns absolute vertical offset of the current node.
func (ctx *Context) Y() float64 {
	return ctx.y
}

func (ctx *Context) PageIndex() int {
	return ctx.env.PageIndex
}

// CanSplit reports whether the current node may return leftover.
func (ctx *Context) CanSplit() bool {
	return ctx.canSplit
}

// DisableSplit forbids splitting for the current node and its subtree.
func (ctx *Context) DisableSplit() {
	ctx.canSplit = false
}

// Detached returns context at the same position which allows splitting
// regardless of the current node. Leftovers produced under it must not be
// returned to the caller.
func (ctx *Context) Detached() *Context {
	c := *ctx
	c.canSplit = true
	return &c
}

// Path returns readable chain of nodes from the root to the current one, like
// "Page #0 > VStack > Padding".
func (ctx *Context) Path() string {
	var chain []string
	for c := ctx; c != nil; c = c.parent {
		if c.node == nil {
			chain = append(chain, fmt.Sprintf("Page #%d", ctx.env.PageIndex))
			continue
		}
		chain = append(chain, NodeName(c.node))
	}
	var sb strings.Builder
	for i := len(chain) - 1; i >= 0; i-- {
		sb.WriteString(chain[i])
		if i > 0 {
			sb.WriteString(" > ")
		}
	}
	return sb.String()
}

// Layout evaluates child node at the current node position.
func (ctx *Context) Layout(n Node, c Constraints) (*Layout, error) {
	return ctx.LayoutAt(n, c, 0, 0)
}

// LayoutAt evaluates child node at offset relative to the current node and
// enforces the layout contract on its result.
func (ctx *Context) LayoutAt(n Node, c Constraints, x, y float64) (*Layout, error) {
	child := &Context{
		env:      ctx.env,
		canSplit: ctx.canSplit,
		x:        ctx.x + x,
		y:        ctx.y + y,
		node:     n,
		parent:   ctx,
	}

	debug := ctx.env.Debug
	if debug {
		ctx.env.Log.Debug("Layout", zap.String("path", child.Path()),
			zap.Float64("x", child.x), zap.Float64("y", child.y), zap.Stringer("constraints", c))
	}

	l, err := n.Layout(child, c)
	if err != nil {
		return nil, err
	}

	if debug {
		ctx.env.Log.Debug("Layout done", zap.String("path", child.Path()),
			zap.Bool("split", child.canSplit), zap.Stringer("constraints", c), zap.Stringer("size", l.Size),
			zap.Bool("override", l.Override != nil), zap.Bool("leftover", l.Leftover != nil))
	}

	if c.TooSmall(l.Size) {
		l.Size = l.Size.Max(c.MinSize())
	}
	if c.TooBig(l.Size) {
		// overflow down is always recoverable, even when width overflows too
		right, down := c.Overflows(l.Size)
		if down {
			return nil, newOverflow(Axis, child, n, l.Size, c)
		}
		if right {
			return nil, newOverflow(CrossAxis, child, n, l.Size, c)
		}
	}

	if l.Leftover == nil {
		if l.hasChildLeftover() {
			return nil, fmt.Errorf("%s: %w", child.Path(), ErrUnhandledLeftover)
		}
	} else if !ctx.canSplit {
		return nil, fmt.Errorf("%s: %w", child.Path(), ErrSplitForbidden)
	}

	l.Node = n
	l.X, l.Y = child.x, child.y
	return l, nil
}
