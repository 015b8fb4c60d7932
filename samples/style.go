// Package samples has documents which show what layout engine is capable of.
package samples

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"pagelay/layout"
	"pagelay/numbering"
	"pagelay/text"
)

// Style is a set of fonts and colors shared by sample documents.
type Style struct {
	Text    *text.Font
	Bold    *text.Font
	Italic  *text.Font
	Mono    *text.Font
	Title   *text.Font
	Heading *text.Font
	Color   color.Color
}

// NewStyle loads all faces from family name with the base size.
func NewStyle(fonts *text.Fonts, name string, size float64) (*Style, error) {
	base, err := fonts.Load(name, size, false, false)
	if err != nil {
		return nil, fmt.Errorf("unable to load base font: %w", err)
	}
	s := &Style{Text: base, Color: colornames.Black}
	for _, v := range []struct {
		dst          **text.Font
		size         float64
		bold, italic bool
	}{
		{&s.Bold, size, true, false},
		{&s.Italic, size, false, true},
		{&s.Title, size * 12 / 7, false, false},
		{&s.Heading, size * 9 / 7, false, false},
	} {
		if *v.dst, err = base.Variant(v.size, v.bold, v.italic); err != nil {
			return nil, fmt.Errorf("unable to load font variant: %w", err)
		}
	}
	if s.Mono, err = fonts.Load(text.MonoName, size, true, false); err != nil {
		return nil, fmt.Errorf("unable to load mono font: %w", err)
	}
	return s, nil
}

// Ctx is materialization context of sample documents.
type Ctx struct {
	Sections *numbering.Sections
	Anchors  *numbering.Anchors
}

func NewCtx(styles ...numbering.Style) *Ctx {
	return &Ctx{Sections: numbering.NewSections(styles...), Anchors: numbering.NewAnchors()}
}

func (s *Style) P(str string) layout.Node {
	return text.New(str, s.Text).Colored(s.Color)
}

func (s *Style) PBold(str string) layout.Node {
	return text.New(str, s.Bold).Colored(s.Color)
}

func (s *Style) Code(str string) layout.Node {
	return text.New(str, s.Mono).Colored(s.Color)
}

func (s *Style) Em(str string) layout.Node {
	return text.New(str, s.Italic).Colored(s.Color)
}

// Txt places parts one after another wrapping them as needed.
func (s *Style) Txt(parts ...layout.Node) layout.Node {
	return layout.NewFlow(parts...)
}

// Br ends current row of Txt.
func Br() layout.Node {
	return layout.NewBox(layout.Inf, 1)
}

func Underline(c color.Color, width float64) layout.Outline {
	return layout.NewOutline(layout.OutlineStyle{
		BorderColor: c,
		BorderWidth: width,
		Hide:        layout.EdgeTop | layout.EdgeLeft | layout.EdgeRight,
	})
}

// Highlight frames node to show its size.
func Highlight(n layout.Node) layout.Node {
	return layout.NewOutline(layout.OutlineStyle{BorderColor: colornames.Lightblue, BorderWidth: 1}).With(n)
}

// Filled returns outline with background and no border.
func Filled(c color.Color) layout.Outline {
	return layout.NewOutline(layout.OutlineStyle{Fill: c})
}

func (s *Style) H1(str string) layout.Node {
	return text.New(str, s.Title).Colored(s.Color).Spaced(5)
}

// HeadingTag marks second level headings, its value is the numbered title.
const HeadingTag = "h2"

// H2 is numbered and tagged when document is materialized.
func (s *Style) H2(title string) layout.Node {
	return layout.Defer(func(ctx *Ctx) (layout.Node, error) {
		n, err := ctx.Sections.Next(2)
		if err != nil {
			return nil, fmt.Errorf("heading %q: %w", title, err)
		}
		heading := n + ". " + title
		return layout.WithTag(HeadingTag, heading,
			layout.Pad(0, 16, 0, 4).With(
				Underline(colornames.Gray, 1).With(text.New(heading, s.Heading).Colored(s.Color)),
			)), nil
	})
}

func (s *Style) H3(title string) layout.Node {
	return layout.Pad(0, 10, 0, 4).With(
		Underline(colornames.Gray, 2).With(
			layout.Defer(func(ctx *Ctx) (layout.Node, error) {
				n, err := ctx.Sections.Next(3)
				if err != nil {
					return nil, fmt.Errorf("heading %q: %w", title, err)
				}
				return s.Txt(s.P(n + ". " + title)), nil
			}),
		))
}

func (s *Style) H4(title string) layout.Node {
	return layout.Pad(0, 8, 0, 2).With(
		Underline(colornames.Gray, 1).With(
			layout.Defer(func(ctx *Ctx) (layout.Node, error) {
				n, err := ctx.Sections.Next(4)
				if err != nil {
					return nil, fmt.Errorf("heading %q: %w", title, err)
				}
				return s.Em(n + ". " + title), nil
			}),
		))
}

// Figure registers anchor with the next figure number and returns caption.
func (s *Style) Figure(ctx *Ctx, name string, caption layout.Node) (layout.Node, error) {
	n, err := ctx.Anchors.Add(name, ctx.Anchors.Len()+1)
	if err != nil {
		return nil, err
	}
	return layout.Pad(0, 10, 0, 2).With(s.Txt(s.PBold(fmt.Sprintf("Figure %v. ", n)), caption)), nil
}

// FigureRef is resolved when document is materialized, so figures could be
// referenced before they are defined.
func (s *Style) FigureRef(name string) layout.Node {
	return Underline(colornames.Blue, 1).With(
		layout.Defer(func(ctx *Ctx) (layout.Node, error) {
			n, err := ctx.Anchors.Get(name)
			if err != nil {
				return nil, err
			}
			return s.PBold(fmt.Sprintf("Figure %v", n)), nil
		}),
	)
}
