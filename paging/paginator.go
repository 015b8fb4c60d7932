// Package paging drives layout of documents page after page using the
// leftover of every page as the content of the next one.
package paging

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"

	"go.uber.org/zap"

	"pagelay/layout"
)

// DefaultMaxPages limits number of pages produced by a single run.
const DefaultMaxPages = 1000

var (
	ErrMeasurement  = errors.New("page structure does not place content")
	ErrNoProgress   = errors.New("no progress on consecutive pages")
	ErrTooManyPages = errors.New("too many pages")
)

// Page is a single laid out page.
type Page struct {
	Index  int
	Size   layout.Size
	Layout *layout.Layout
}

// PageFunc builds page around the laid out content. Query is nil while page
// structure is being measured.
type PageFunc func(content layout.Node, q *layout.Query) layout.Node

// Window is the area of the page where content is placed.
type Window struct {
	X, Y float64
	Size layout.Size
}

func (w Window) String() string {
	return fmt.Sprintf("%v at <%g,%g>", w.Size, w.X, w.Y)
}

// Paginator splits documents into pages. Pages are produced strictly one
// after another, the same paginator could be used for several documents.
type Paginator struct {
	log      *zap.Logger
	debug    bool
	maxPages int
}

type Option func(*Paginator)

func WithLogger(log *zap.Logger) Option {
	return func(p *Paginator) {
		if log != nil {
			p.log = log
		}
	}
}

// WithDebug enables tracing of every node layout.
func WithDebug(debug bool) Option {
	return func(p *Paginator) {
		p.debug = debug
	}
}

// WithMaxPages sets page limit, 0 means no limit.
func WithMaxPages(n int) Option {
	return func(p *Paginator) {
		p.maxPages = max(n, 0)
	}
}

func New(opts ...Option) *Paginator {
	p := &Paginator{log: zap.NewNop(), maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Paginator) env(index int) *layout.Env {
	env := layout.NewEnv(p.log, index)
	env.Debug = p.debug
	return env
}

// Pages lays out document on pages of the same size until nothing is left.
func (p *Paginator) Pages(ctx context.Context, doc layout.Node, size layout.Size) iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		var g guard
		for index := 0; doc != nil; index++ {
			if err := p.check(ctx, index); err != nil {
				yield(nil, err)
				return
			}
			l, err := p.env(index).PageContext().Layout(doc, size.Loose())
			if err != nil {
				yield(nil, fmt.Errorf("unable to layout page %d: %w", index, err))
				return
			}
			if err := g.track(index, l); err != nil {
				yield(nil, err)
				return
			}
			p.log.Debug("Page laid out", zap.Int("page", index), zap.Stringer("size", l.Size), zap.Bool("continued", l.Leftover != nil))
			if !yield(&Page{Index: index, Size: size, Layout: l}, nil) {
				return
			}
			doc = l.Leftover
		}
	}
}

// Document lays out content inside of the page structure. Structure is
// measured once to find the content window, then for every page content is
// laid out inside the window and structure is built around it with query
// over the page content.
func (p *Paginator) Document(ctx context.Context, content layout.Node, size layout.Size, structure PageFunc) iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		w, err := p.Measure(size, structure)
		if err != nil {
			yield(nil, err)
			return
		}
		p.log.Debug("Content window measured", zap.Stringer("window", w))

		var g guard
		for index := 0; content != nil; index++ {
			if err := p.check(ctx, index); err != nil {
				yield(nil, err)
				return
			}
			env := p.env(index)
			cl, err := env.PageContext().LayoutAt(content, w.Size.Loose(), w.X, w.Y)
			if err != nil {
				yield(nil, fmt.Errorf("unable to layout content of page %d: %w", index, err))
				return
			}
			if err := g.track(index, cl); err != nil {
				yield(nil, err)
				return
			}

			page := structure(PreLaidOut(cl.StripLeftover()), layout.NewQuery(cl, index))
			pl, err := env.PageContext().Layout(page, size.Loose())
			if err != nil {
				yield(nil, fmt.Errorf("unable to layout structure of page %d: %w", index, err))
				return
			}
			if pl.Leftover != nil {
				p.log.Warn("Page structure does not fit on page, dropping the rest", zap.Int("page", index))
				pl = pl.StripLeftover()
			}
			p.log.Debug("Page laid out", zap.Int("page", index), zap.Bool("continued", cl.Leftover != nil))
			if !yield(&Page{Index: index, Size: size, Layout: pl}, nil) {
				return
			}
			content = cl.Leftover
		}
	}
}

// Measure finds content window of the page structure. Structure is laid out
// with splitting disabled.
func (p *Paginator) Measure(size layout.Size, structure PageFunc) (Window, error) {
	var (
		w        Window
		measured bool
	)
	probe := ContentMeasurement(func(x, y float64, s layout.Size) {
		w, measured = Window{X: x, Y: y, Size: s}, true
	})
	if _, err := p.env(0).ContainerContext().Layout(structure(probe, nil), size.Loose()); err != nil {
		return Window{}, fmt.Errorf("unable to measure page structure: %w", err)
	}
	if !measured {
		return Window{}, ErrMeasurement
	}
	if w.Size.IsInfinite() || w.Size.Width <= 0 || w.Size.Height <= 0 {
		return Window{}, fmt.Errorf("%w: content window %v", ErrMeasurement, w)
	}
	return w, nil
}

func (p *Paginator) check(ctx context.Context, index int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("pagination interrupted at page %d: %w", index, err)
	}
	if p.maxPages > 0 && index >= p.maxPages {
		return fmt.Errorf("%w: more than %d", ErrTooManyPages, p.maxPages)
	}
	return nil
}

// Split returns document pages as nodes. Every page node lays out its part
// of the document on a page of its own.
func (p *Paginator) Split(ctx context.Context, doc layout.Node, size layout.Size) ([]PageNode, error) {
	var nodes []PageNode
	for page, err := range p.Pages(ctx, doc, size) {
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, NewPageNode(size, page.Layout.Node))
	}
	return nodes, nil
}

// Collect gathers all pages, on error pages produced so far are returned.
func Collect(seq iter.Seq2[*Page, error]) ([]*Page, error) {
	var pages []*Page
	for page, err := range seq {
		if err != nil {
			return pages, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// guard detects pages which do not consume any content. Single such page is
// allowed (forced break at the top of the page), the next one is an error.
type guard struct {
	stalled bool
}

func (g *guard) track(index int, l *layout.Layout) error {
	if l.Leftover == nil || progress(l) {
		g.stalled = false
		return nil
	}
	if g.stalled {
		return fmt.Errorf("page %d: %w", index, ErrNoProgress)
	}
	g.stalled = true
	return nil
}

// progress reports whether some content was placed completely or split
// with part of it placed. Containers which placed no children made no
// progress whatever size they report, only leaves splitting themselves count.
func progress(l *layout.Layout) bool {
	if l.Leftover == nil {
		return true
	}
	if len(l.Children) == 0 {
		if _, ok := l.Node.(layout.Container); ok {
			return false
		}
		return l.Size.Height > 0 && !math.IsInf(l.Size.Height, 1)
	}
	for _, ch := range l.Children {
		if progress(ch) {
			return true
		}
	}
	return false
}
