package samples

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"pagelay/images"
	"pagelay/layout"
	"pagelay/paging"
	"pagelay/text"
)

var pageStripe = color.RGBA{R: 230, G: 230, B: 240, A: 255}

// PageStructure surrounds content with margins, a stripe with the document
// title, a header showing the first heading of the page and page number.
func (s *Style) PageStructure(title string) paging.PageFunc {
	return func(content layout.Node, q *layout.Query) layout.Node {
		background := layout.Right().With(
			layout.Pad(0, 12, 44, 0).With(
				layout.NewLayers(
					Filled(pageStripe).With(layout.NewBox(80, layout.Inf)),
					layout.Pad(2, 0, 2, 0).With(text.New(title, s.Heading).Colored(colornames.White)),
				),
			),
		)

		var heading, number string
		if q != nil {
			if v, ok := q.First(HeadingTag); ok {
				heading = fmt.Sprint(v)
			}
			number = fmt.Sprintf("Page %d", q.PageIndex()+1)
		}
		header := layout.Right().With(layout.Bottom().With(layout.Pad(0, 0, 20, 10).With(s.P(heading))))
		footer := layout.HCenter().With(s.P(number))

		return layout.NewLayers(
			background,
			layout.VDivide(100, layout.Inf, 50).With(
				layout.Expand().With(header),
				layout.HDivide(100, layout.Inf, 100).With(layout.Expand(), content, layout.Expand()),
				layout.Expand().With(footer),
			),
		)
	}
}

func (s *Style) tableLike(rows ...[]layout.Node) layout.Node {
	heights := make([]float64, len(rows))
	out := make([]layout.Node, len(rows))
	for i, row := range rows {
		widths := make([]float64, len(row))
		cells := make([]layout.Node, len(row))
		for j, n := range row {
			widths[j] = layout.Inf
			cells[j] = layout.Pad(1, 1, 0, 0).With(
				layout.NewOutline(layout.OutlineStyle{BorderColor: colornames.Gray}).With(
					layout.Expand().With(layout.PadAll(4).With(n)),
				),
			)
		}
		heights[i] = 80
		out[i] = layout.HDivide(widths...).With(cells...)
	}
	return layout.VDivide(heights...).With(out...)
}

func cycle(n int, items ...layout.Node) []layout.Node {
	out := make([]layout.Node, n)
	for i := range out {
		out[i] = items[i%len(items)]
	}
	return out
}

func each(align func() layout.Aligned, nodes []layout.Node) []layout.Node {
	out := make([]layout.Node, len(nodes))
	for i, n := range nodes {
		out[i] = align().With(n)
	}
	return out
}

// KitchenSink builds and materializes a document which uses every node
// kind. Vignette is drawn at the end of the document when provider is set.
func (s *Style) KitchenSink(ctx *Ctx, title string, p images.Provider, vignette string) (layout.Node, error) {
	alignments, err := s.Figure(ctx, "alignments", s.P("Child alignment options"))
	if err != nil {
		return nil, err
	}
	layers, err := s.Figure(ctx, "layers", s.P("Simple layering example"))
	if err != nil {
		return nil, err
	}
	code, hl := s.Code, func(str string) layout.Node { return Highlight(s.Code(str)) }

	doc := []layout.Node{
		s.H1(title),
		layout.Right().With(s.P(`"Kitchen sink" example`)),

		s.H2("Basics"),
		s.Txt(
			s.P("Every node usually shrinks to the smallest size "),
			s.P("that can fit all the children, except "),
			code("Expand()"),
			s.P(" node, which will expand as much as its "),
			s.P("parent allows. "),
			Br(),
			s.P("Boundaries of elements are highlighted "),
			Highlight(s.P("like this")),
			s.P(" for understanding"),
		),

		s.H2("Alignment"),
		s.P("There are various node wrappers that align node within parent."),
		s.P("This is done purely by moving the wrapped node layout to appropriate location."),
		s.P("Helpers are composable so vertical and horizontal can be combined."),
		Br(),
		layout.Pad(100, 0, 100, 0).With(
			layout.VStack(
				s.tableLike(
					[]layout.Node{
						hl("n"),
						layout.HCenter().With(hl("HCenter(n)")),
						layout.Right().With(hl("Right(n)")),
					},
					[]layout.Node{
						layout.VCenter().With(hl("VCenter(n)")),
						layout.Center().With(hl("Center(n)")),
						layout.VCenter().With(Highlight(layout.Right().With(hl("VCenter(Right(n))")))),
					},
					[]layout.Node{
						layout.Bottom().With(hl("Bottom(n)")),
						layout.HCenter().With(Highlight(layout.Bottom().With(hl("HCenter(Bottom(n))")))),
						layout.Bottom().With(Highlight(layout.Right().With(hl("Bottom(Right(n))")))),
					},
				),
				alignments,
			),
		),

		s.H2("Stacking"),
		s.H3("Vertical VStack(HCenter(...))"),
		Highlight(layout.VStack(each(layout.HCenter, cycle(3,
			Filled(colornames.Yellow).With(layout.NewBox(200, 40).With(s.P("1"))),
			Filled(colornames.Lightblue).With(layout.NewBox(layout.Inf, 20).With(s.P("infinite width will expand whole stack"))),
			Filled(colornames.Red).With(layout.NewBox(30, 33).With(s.P("2"))),
		))...)),
		s.H3("Horizontal HStack(VCenter(...))"),
		layout.NewBox(layout.Inf, 200).With(
			Highlight(layout.HStack(each(layout.VCenter, []layout.Node{
				Filled(colornames.Yellow).With(layout.NewBox(40, 70).With(s.P("1"))),
				Filled(colornames.Red).With(layout.NewBox(30, 32).With(s.P("2"))),
				Filled(colornames.Cyan).With(layout.NewBox(50, 50).With(s.P("3"))),
			})...)),
		),

		s.H2("Regular flow"),
		s.P(`Places element after element, wrapping to the next "new line"`),
		Highlight(layout.NewFlow(cycle(15,
			Filled(colornames.Lightgreen).With(layout.NewBox(123, 15)),
			Filled(colornames.Yellow).With(layout.NewBox(80, 33)),
			Filled(colornames.Lightblue).With(layout.NewBox(200, 24)),
			Filled(colornames.Pink).With(layout.NewBox(123, 27)),
			Filled(colornames.Cyan).With(layout.NewBox(140, 5)),
		)...)),

		s.H2("Layers"),
		s.Txt(
			code("Layers"),
			s.P(" are drawn on top of one another. "),
			s.P("The size of "),
			code("Layers(...)"),
			s.P(" is the biggest size that can fit all the children"),
		),
		layers,
		Highlight(layout.NewLayers(
			Filled(colornames.Lightgreen).With(layout.NewBox(200, 100).With(s.P("first layer"))),
			layout.Pad(10, 10, 0, 0).With(Filled(colornames.Pink).With(layout.NewBox(130, 100).With(s.P("second layer")))),
		)),
		paging.PageBreak(),

		s.H2("Divisions"),
		s.Txt(
			s.P("With "), code("HDivide"), s.P(" or "), code("VDivide"),
			s.P(" you can divide free space like this: "),
			code("HDivide(Inf, 100, Inf, 200).With("), s.P("children"), code(")"),
			s.P(". Infinite elements will be given the same size "),
			s.P("to fill the whole space. "),
			s.P("You can nest division elements like this: "),
			code("VDivide(30, 60, 20).With(HDivide(...).With(...), ...)"),
			s.P(" here is the example:"),
		),
		Highlight(layout.VDivide(30, 60, 20).With(
			layout.HDivide(layout.Inf, 100, layout.Inf, 200).With(
				framed(layout.Center().With(code("Inf"))),
				framed(layout.Center().With(s.P("100"))),
				framed(layout.Center().With(code("Inf"))),
				framed(layout.Center().With(s.P("200"))),
			),
			layout.HDivide(100, 200).With(
				framed(layout.Center().With(s.P("100"))),
				framed(layout.Center().With(s.P("200"))),
			),
			layout.HDivide(layout.Inf).With(
				framed(layout.Center().With(code("Inf"))),
			),
		)),

		s.H2("Document is code"),
		s.P("Documents are ordinary Go values built by code, there are helpers for common tasks"),
		s.H3("Deferred layout with Defer(...)"),
		s.Txt(
			s.P("Place "), code("Defer(func(ctx) ...)"),
			s.P(" in the layout to defer some calculations. "),
			s.P("You can materialize all of the deferred nodes in the tree by using "),
			code("Materialize(ctx, doc)"),
		),
		Br(),
		s.P("Use cases are:"),
		s.H4("Automatic headers numbering"),
		s.Txt(
			s.P("You don't need deferred nodes for that, but "),
			s.P("by using "), code("numbering.Sections"),
			s.P(" and deferred nodes you can avoid typing "),
			code(`H2(ctx, "A header")`),
			s.P(" instead of just "),
			code(`H2("A header")`),
		),
		s.H4("Automatic figure numbering and referencing"),
		s.Txt(
			s.P("For example, alignment options are on "),
			s.FigureRef("alignments"),
			s.P(" and simple layers example is "),
			s.FigureRef("layers"),
		),
		paging.PageBreak(),

		s.H2("Paging"),
		s.Txt(
			s.P("There is a paging support with "),
			s.P("page structure "),
			s.P("(content that is present on every page). "),
			s.P("The content window size is calculated "),
			s.P("automatically based on the page structure. "),
			code("Document(...)"),
			s.P(" gets "),
			code("PageFunc"),
			s.P(" which receives page content "),
			s.P("and returns full page node. "),
			s.P("Each page content is laid out"),
			s.P(" and passed to "),
			code("PageFunc"),
			s.P(" which can use laid out content to "),
			s.P("insert header that changes depending "),
			s.P("on headings present on the current page."),
		),
	}

	if p != nil && len(vignette) > 0 {
		img, err := images.New(p, vignette)
		if err != nil {
			return nil, fmt.Errorf("unable to use vignette: %w", err)
		}
		doc = append(doc, layout.Pad(0, 20, 0, 0).With(layout.HCenter().With(layout.NewBox(240, 20).With(img))))
	}

	materialized, err := layout.Materialize(ctx, layout.Node(layout.VStack(doc...)))
	if err != nil {
		return nil, fmt.Errorf("unable to materialize kitchen sink: %w", err)
	}
	return materialized, nil
}

func framed(n layout.Node) layout.Node {
	return layout.NewOutline(layout.DefaultOutlineStyle).With(layout.Expand().With(n))
}
