package graphics

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TestIcon is a white square placeholder with a one pixel frame and two
// centered text lines: the pixel size and a label, usually the file format.
type TestIcon struct {
	Size  int
	Color color.Color // frame and text
	Label string
	Font  FontSource
}

func NewTestIcon() *TestIcon {
	t := &TestIcon{}
	t.SetDefault()
	return t
}

func (t *TestIcon) SetDefault() {
	t.Size = 64
	t.Color = color.Black
	t.Label = "WEBP"
	t.Font = FontSource{}
}

// Metrics are the proportional text sizes of a test icon, in pixels.
type Metrics struct {
	SizeFont    int // first line
	LabelFont   int // second line
	LineSpacing int
}

func MetricsFor(size int) Metrics {
	return Metrics{
		SizeFont:    int(float64(size) / 3.5),
		LabelFont:   int(float64(size) / 6),
		LineSpacing: int(float64(size) / 20),
	}
}

func (t *TestIcon) validate() error {
	if t.Size <= 0 {
		return fmt.Errorf("size must be greater than 0")
	}
	if t.Color == nil {
		return fmt.Errorf("color must be set")
	}
	return nil
}

func (t *TestIcon) Render() (image.Image, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	size := float64(t.Size)
	m := MetricsFor(t.Size)
	sizeText := strconv.Itoa(t.Size)

	c := gg.NewContext(t.Size, t.Size)
	c.SetColor(color.White)
	c.Clear()

	// frame: four one pixel strips so the ring stays unantialiased
	c.SetColor(t.Color)
	c.DrawRectangle(0, 0, size, 1)
	c.DrawRectangle(0, size-1, size, 1)
	c.DrawRectangle(0, 0, 1, size)
	c.DrawRectangle(size-1, 0, 1, size)
	c.Fill()

	sizeFace, _ := t.Font.Face(float64(m.SizeFont))
	labelFace, _ := t.Font.Face(float64(m.LabelFont))
	sizeBounds, _ := font.BoundString(sizeFace, sizeText)
	labelBounds, _ := font.BoundString(labelFace, t.Label)

	first, second := layoutTextPair(t.Size, m.LineSpacing, sizeBounds, labelBounds)

	c.SetFontFace(sizeFace)
	c.DrawString(sizeText, first.X, first.Y)
	if t.Label != "" {
		c.SetFontFace(labelFace)
		c.DrawString(t.Label, second.X, second.Y)
	}

	return c.Image(), nil
}

// textOrigin is the baseline origin passed to gg.Context.DrawString.
type textOrigin struct {
	X, Y float64
}

// layoutTextPair centers two lines of ink as a block of height
// h1 + spacing + h2, centering each line horizontally on its own width.
func layoutTextPair(size, spacing int, first, second fixed.Rectangle26_6) (textOrigin, textOrigin) {
	s := float64(size)
	w1, h1 := fixedSize(first)
	w2, h2 := fixedSize(second)

	startY := (s - (h1 + h2 + float64(spacing))) / 2

	a := textOrigin{
		X: (s-w1)/2 - fixedToFloat(first.Min.X),
		Y: startY - fixedToFloat(first.Min.Y),
	}
	b := textOrigin{
		X: (s-w2)/2 - fixedToFloat(second.Min.X),
		Y: startY + h1 + float64(spacing) - fixedToFloat(second.Min.Y),
	}
	return a, b
}

func fixedSize(r fixed.Rectangle26_6) (w, h float64) {
	return fixedToFloat(r.Max.X - r.Min.X), fixedToFloat(r.Max.Y - r.Min.Y)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
