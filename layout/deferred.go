package layout

import (
	"errors"
	"fmt"
	"reflect"
)

// Deferred is a placeholder leaf which is replaced by a real node once a
// resolution context becomes available.
type Deferred struct {
	leaf
	build func(any) (Node, error)
}

// Defer returns placeholder resolved by build when materialized with context
// of type C.
func Defer[C any](build func(C) (Node, error)) Deferred {
	return Deferred{build: func(v any) (Node, error) {
		c, ok := v.(C)
		if !ok {
			return nil, fmt.Errorf("%w: got %T, want %v", ErrDeferredContext, v, reflect.TypeFor[C]())
		}
		return build(c)
	}}
}

func (Deferred) Layout(ctx *Context, _ Constraints) (*Layout, error) {
	return nil, fmt.Errorf("%s: %w", ctx.Path(), ErrDeferred)
}

func (Deferred) Draw(Canvas, float64, float64, *Layout) error {
	return ErrDeferred
}

// Materialize replaces every placeholder in the tree with the node built for
// ctx. Builders are invoked in depth-first pre-order, so counters advanced by
// builders follow document order.
func Materialize[C any](ctx C, n Node) (Node, error) {
	for {
		d, ok := n.(Deferred)
		if !ok {
			break
		}
		if d.build == nil {
			return nil, errors.New("deferred node without builder")
		}
		var err error
		if n, err = d.build(ctx); err != nil {
			return nil, fmt.Errorf("unable to materialize deferred node: %w", err)
		}
		if n == nil {
			return nil, errors.New("deferred builder returned nil node")
		}
	}

	c, ok := n.(Container)
	if !ok || len(c.Children()) == 0 {
		return n, nil
	}
	children := make([]Node, len(c.Children()))
	for i, ch := range c.Children() {
		m, err := Materialize(ctx, ch)
		if err != nil {
			return nil, err
		}
		children[i] = m
	}
	return c.With(children...), nil
}
