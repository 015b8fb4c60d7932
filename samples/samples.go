package samples

import (
	"context"
	"fmt"
	"slices"

	"pagelay/images"
	"pagelay/layout"
	"pagelay/numbering"
	"pagelay/paging"
	"pagelay/text"
)

// Resources are what sample documents are built from.
type Resources struct {
	Fonts     *text.Fonts
	Style     *Style
	Images    images.Provider
	Paginator *paging.Paginator
	Title     string
	Numbering []numbering.Style
	// Vignette is image name drawn at the end of kitchen sink.
	Vignette string
}

// Document is a ready to paginate sample.
type Document struct {
	Content layout.Node
	// Structure is nil for plain pagination.
	Structure paging.PageFunc
	// Size is zero when configured page size should be used.
	Size layout.Size
}

type builder func(ctx context.Context, r *Resources) (*Document, error)

var registry = map[string]builder{
	"kitchen-sink": func(_ context.Context, r *Resources) (*Document, error) {
		doc, err := r.Style.KitchenSink(NewCtx(r.Numbering...), r.Title, r.Images, r.Vignette)
		if err != nil {
			return nil, err
		}
		return &Document{Content: doc, Structure: r.Style.PageStructure(r.Title)}, nil
	},
	"paging": func(ctx context.Context, r *Resources) (*Document, error) {
		doc, err := r.Style.Thumbnails(ctx, r.Paginator, SplitExamples()...)
		if err != nil {
			return nil, err
		}
		return &Document{Content: doc, Size: layout.Size{Width: 800, Height: 1200}}, nil
	},
	"simple": func(_ context.Context, r *Resources) (*Document, error) {
		return &Document{
			Content:   SimpleContent(),
			Structure: SimpleStructure(r.Fonts.Builtin()),
			Size:      layout.Size{Width: 300, Height: 450},
		}, nil
	},
}

// Names returns known sample names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build returns sample document by name.
func Build(ctx context.Context, name string, r *Resources) (*Document, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q, known samples are %v", name, Names())
	}
	if r.Style == nil || r.Paginator == nil || r.Fonts == nil {
		return nil, fmt.Errorf("sample %q: resources are not prepared", name)
	}
	doc, err := b(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", name, err)
	}
	return doc, nil
}
