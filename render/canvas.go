package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas draws layouts with gg. Coordinates are pixels, lines are drawn
// through pixel centers so 1px borders stay crisp.
type Canvas struct {
	dc *gg.Context
}

func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	var off float64
	if math.Mod(math.Round(width), 2) == 1 {
		off = 0.5
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCapSquare()
	c.dc.DrawLine(x1+off, y1+off, x2+off, y2+off)
	c.dc.Stroke()
}

func (c *Canvas) Text(s string, x, y float64, face font.Face, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

func (c *Canvas) Image(img image.Image, x, y float64) {
	c.dc.DrawImage(img, int(x), int(y))
}
