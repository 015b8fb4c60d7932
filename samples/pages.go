package samples

import (
	"context"
	"fmt"

	"golang.org/x/image/colornames"

	"pagelay/layout"
	"pagelay/paging"
	"pagelay/text"
)

func stackItem(border float64) layout.Node {
	return layout.PadAll(1).With(
		layout.NewOutline(layout.OutlineStyle{BorderColor: colornames.Blue, BorderWidth: border}).With(layout.NewBox(120, 30)))
}

// SplitExample is a document split into pages of the small size.
type SplitExample struct {
	Name string
	Doc  layout.Node
	Size layout.Size
}

// SplitExamples show how stacks, outlines and NoBreak behave on page
// boundary.
func SplitExamples() []SplitExample {
	small := layout.Size{Width: 150, Height: 170}
	return []SplitExample{
		{Name: "VStack", Size: small, Doc: layout.VStack(cycle(8, stackItem(2))...)},
		{Name: "nested VStack", Size: small, Doc: layout.VStack(
			layout.VStack(cycle(3, stackItem(2))...),
			layout.VStack(cycle(3, stackItem(1))...),
		)},
		{Name: "nested VStack with NoBreak", Size: small, Doc: layout.VStack(
			layout.VStack(cycle(3, stackItem(2))...),
			paging.NoBreak().With(layout.PadAll(2).With(layout.VStack(cycle(3, stackItem(1))...))),
		)},
		{Name: "Outline", Size: small, Doc: layout.NewOutline(layout.OutlineStyle{BorderColor: colornames.Black, BorderWidth: 3}).With(
			layout.VStack(cycle(7, layout.Pad(4, 2, 4, 2).With(stackItem(2)))...),
		)},
	}
}

func nicePage(page layout.Node) layout.Node {
	return layout.PadAll(2).With(
		layout.NewOutline(layout.OutlineStyle{BorderColor: colornames.Black, Hide: layout.EdgeTop | layout.EdgeLeft}).With(
			layout.PadAll(1).With(
				layout.NewOutline(layout.OutlineStyle{BorderColor: colornames.Darkgray, Fill: colornames.White}).With(
					layout.PadAll(2).With(page),
				),
			),
		),
	)
}

// Thumbnails splits every example into pages and shows them side by side.
func (s *Style) Thumbnails(ctx context.Context, p *paging.Paginator, examples ...SplitExample) (layout.Node, error) {
	columns := make([]layout.Node, 0, len(examples))
	for _, ex := range examples {
		pages, err := p.Split(ctx, layout.HCenter().With(ex.Doc), ex.Size)
		if err != nil {
			return nil, fmt.Errorf("unable to split %s: %w", ex.Name, err)
		}
		thumbs := make([]layout.Node, len(pages))
		for i, page := range pages {
			thumbs[i] = layout.PadAll(5).With(nicePage(page))
		}
		columns = append(columns, layout.PadAll(5).With(
			layout.VStack(
				s.P(ex.Name),
				Filled(colornames.Lightgray).With(layout.PadAll(6).With(layout.VStack(thumbs...))),
			),
		))
	}
	return layout.NewFlow(columns...), nil
}

// SimpleStructure is a page with a title line above content and page
// number below.
func SimpleStructure(f *text.Font) paging.PageFunc {
	return func(content layout.Node, q *layout.Query) layout.Node {
		number := "Page"
		if q != nil {
			number = fmt.Sprintf("Page %d", q.PageIndex()+1)
		}
		line := layout.OutlineStyle{BorderColor: colornames.Black}
		above, below := line, line
		above.Hide = layout.EdgeTop | layout.EdgeLeft | layout.EdgeRight
		below.Hide = layout.EdgeBottom | layout.EdgeLeft | layout.EdgeRight
		return layout.VDivide(35, layout.Inf, 30).With(
			layout.NewOutline(above).With(layout.Expand().With(
				layout.Center().With(text.New("Simple page layout example", f)),
			)),
			layout.Pad(50, 0, 0, 0).With(layout.NewBox(200, layout.Inf).With(content)),
			layout.NewOutline(below).With(layout.Expand().With(text.New(number, f))),
		)
	}
}

// SimpleContent is a stack of boxes taller than a single page.
func SimpleContent() layout.Node {
	item := layout.PadAll(1).With(
		layout.NewOutline(layout.OutlineStyle{BorderColor: colornames.Blue, BorderWidth: 2}).With(layout.NewBox(150, 73)))
	return layout.VStack(cycle(11, item)...)
}
