package samples

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"pagelay/images"
	"pagelay/layout"
	"pagelay/numbering"
	"pagelay/paging"
	"pagelay/text"
)

const vignetteSVG = `<svg viewBox="0 0 240 20" xmlns="http://www.w3.org/2000/svg"><path d="M0 10 H240" stroke="black" stroke-width="2"/></svg>`

func newResources(t *testing.T) *Resources {
	t.Helper()
	log := zaptest.NewLogger(t)
	fonts := text.NewFonts(log, 72)
	st, err := NewStyle(fonts, text.DefaultName, 14)
	if err != nil {
		t.Fatalf("NewStyle() error = %v", err)
	}
	p := images.NewFileProvider("", images.WithLogger(log))
	p.Add("vignette", []byte(vignetteSVG))
	return &Resources{
		Fonts:     fonts,
		Style:     st,
		Images:    p,
		Paginator: paging.New(paging.WithLogger(log)),
		Title:     "pagelay",
		Numbering: []numbering.Style{numbering.Arabic, numbering.Alpha, numbering.RomanLower},
		Vignette:  "vignette",
	}
}

func texts(l *layout.Layout) []string {
	var out []string
	for ch := range layout.Walk(l) {
		if t, ok := ch.DrawNode().(text.Text); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

func TestKitchenSink(t *testing.T) {
	r := newResources(t)
	doc, err := Build(context.Background(), "kitchen-sink", r)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	pages, err := paging.Collect(r.Paginator.Document(context.Background(), doc.Content, layout.Size{Width: 1050, Height: 1485}, doc.Structure))
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if len(pages) < 3 {
		t.Fatalf("Document() = %d pages, want at least 3", len(pages))
	}

	var headings []any
	for _, page := range pages {
		q := layout.NewQuery(page.Layout, page.Index)
		headings = append(headings, q.Values(HeadingTag)...)

		for l := range layout.Walk(page.Layout) {
			if _, ok := l.DrawNode().(layout.Deferred); ok {
				t.Errorf("page %d: deferred node was not materialized", page.Index)
			}
		}
	}
	want := []any{"1. Basics", "2. Alignment", "3. Stacking", "4. Regular flow", "5. Layers", "6. Divisions", "7. Document is code", "8. Paging"}
	if diff := cmp.Diff(want, headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}

	first := texts(pages[0].Layout)
	if n := len(slices.DeleteFunc(slices.Clone(first), func(s string) bool { return s != "1. Basics" })); n != 2 {
		t.Errorf("page 0 has %d texts %q, want heading and header", n, "1. Basics")
	}
	if !slices.Contains(first, "Page 1") {
		t.Errorf("page 0 misses footer: %q", first)
	}

	var all []string
	for _, page := range pages {
		all = append(all, texts(page.Layout)...)
	}
	for _, s := range []string{"Figure 1. ", "Figure 2. ", "Figure 1", "Figure 2"} {
		if !slices.Contains(all, s) {
			t.Errorf("document misses %q", s)
		}
	}

	last := layout.NewQuery(pages[len(pages)-1].Layout, len(pages)-1)
	if _, _, ok := layout.FindNode[images.Image](last); !ok {
		t.Error("last page misses vignette")
	}
}

func TestKitchenSinkErrors(t *testing.T) {
	r := newResources(t)

	ctx := NewCtx()
	if _, err := ctx.Anchors.Add("alignments", 0); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := r.Style.KitchenSink(ctx, "x", nil, ""); !errors.Is(err, numbering.ErrDuplicateAnchor) {
		t.Errorf("KitchenSink() error = %v, want %v", err, numbering.ErrDuplicateAnchor)
	}

	if _, err := layout.Materialize(NewCtx(), r.Style.FigureRef("nowhere")); !errors.Is(err, numbering.ErrUnknownAnchor) {
		t.Errorf("Materialize() error = %v, want %v", err, numbering.ErrUnknownAnchor)
	}

	if _, err := r.Style.KitchenSink(NewCtx(), "x", r.Images, "missing"); err == nil {
		t.Error("KitchenSink() with missing vignette succeeded")
	}
}

func TestHeadingsNumbering(t *testing.T) {
	st := newResources(t).Style
	doc, err := layout.Materialize(NewCtx(numbering.Arabic, numbering.Alpha, numbering.RomanLower), layout.Node(layout.VStack(
		st.H2("one"), st.H3("one.one"), st.H4("deep"), st.H3("one.two"), st.H2("two"),
	)))
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	l, err := layout.NewEnv(zaptest.NewLogger(t), 0).PageContext().Layout(doc, layout.Size{Width: 500, Height: 1000}.Loose())
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	want := []string{"1. one", "1.a. one.one", "1.a.i. deep", "1.b. one.two", "2. two"}
	if diff := cmp.Diff(want, texts(l)); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestThumbnails(t *testing.T) {
	r := newResources(t)
	doc, err := Build(context.Background(), "paging", r)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Structure != nil {
		t.Error("paging sample should not have page structure")
	}
	pages, err := paging.Collect(r.Paginator.Pages(context.Background(), doc.Content, doc.Size))
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Pages() = %d pages, want 1", len(pages))
	}

	var thumbs int
	for l := range layout.Walk(pages[0].Layout) {
		if _, ok := l.Node.(paging.PageNode); ok {
			thumbs++
			if l.Size != (layout.Size{Width: 150, Height: 170}) {
				t.Errorf("thumbnail size = %v, want 150x170", l.Size)
			}
		}
	}
	if thumbs != 8 {
		t.Errorf("thumbnails = %d, want 8", thumbs)
	}
}

func TestSimple(t *testing.T) {
	r := newResources(t)
	doc, err := Build(context.Background(), "simple", r)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	pages, err := paging.Collect(r.Paginator.Document(context.Background(), doc.Content, doc.Size, doc.Structure))
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("Document() = %d pages, want 3", len(pages))
	}
	if !slices.Contains(texts(pages[2].Layout), "Page 3") {
		t.Errorf("last page misses page number: %q", texts(pages[2].Layout))
	}
}

func TestBuildErrors(t *testing.T) {
	if diff := cmp.Diff([]string{"kitchen-sink", "paging", "simple"}, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if _, err := Build(context.Background(), "nothing", newResources(t)); err == nil {
		t.Error("Build() of unknown sample succeeded")
	}
	if _, err := Build(context.Background(), "simple", &Resources{}); err == nil {
		t.Error("Build() without resources succeeded")
	}
}
