package layout

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConstraints = errors.New("invalid constraints")
	// ErrUnhandledLeftover is returned when a node drops leftovers of its children.
	ErrUnhandledLeftover = errors.New("node does not handle children leftover")
	// ErrSplitForbidden is returned when a node splits although it was asked not to.
	ErrSplitForbidden = errors.New("node was asked not to split, splits anyway")
	ErrLeafChildren   = errors.New("can not add children nodes to the leaf node")
	ErrChildCount     = errors.New("unexpected number of children")
	// ErrDeferred is returned from layout or draw of a placeholder which was
	// not materialized.
	ErrDeferred        = errors.New("deferred node must be materialized first")
	ErrDeferredContext = errors.New("deferred node materialized with unexpected context")
)

// OverflowKind tells which way a node did not fit.
type OverflowKind int

const (
	// Axis overflow happens along the splitting axis (height) and may be
	// recovered by a splitting ancestor.
	Axis OverflowKind = iota
	// CrossAxis overflow (width) is always fatal.
	CrossAxis
)

func (k OverflowKind) String() string {
	if k == CrossAxis {
		return "cross-axis"
	}
	return "axis"
}

// OverflowError reports node which could not fit into its constraints.
type OverflowError struct {
	Kind        OverflowKind
	Node        Node
	Size        Size
	Constraints Constraints
	Path        string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s overflow, %s (%s) does not fit into %s", e.Path, e.Kind, NodeName(e.Node), e.Size, e.Constraints)
}

func newOverflow(kind OverflowKind, ctx *Context, n Node, s Size, c Constraints) *OverflowError {
	return &OverflowError{Kind: kind, Node: n, Size: s, Constraints: c, Path: ctx.Path()}
}

// IsAxisOverflow reports whether err carries a recoverable axis overflow.
func IsAxisOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe) && oe.Kind == Axis
}

func IsCrossAxisOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe) && oe.Kind == CrossAxis
}
