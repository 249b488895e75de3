package graphics

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// RenderSVG writes the vector form of the icon. Text is emitted as <text>
// elements anchored at the middle, so the exact glyph placement is left to
// the viewer.
func (t *TestIcon) RenderSVG(w io.Writer) error {
	if err := t.validate(); err != nil {
		return err
	}

	size := t.Size
	half := float64(size) / 2
	m := MetricsFor(size)
	stroke := colorToHex(t.Color)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))
	canvas.Rect(0, 0, size, size, `fill="white"`)

	// the stroke straddles the path, so shift it half a pixel inwards
	canvas.Gtransform("translate(0.5,0.5)")
	canvas.Rect(0, 0, size-1, size-1, `fill="none"`, fmt.Sprintf(`stroke="%s"`, stroke), `stroke-width="1"`)
	canvas.Gend()

	sizeY := half - float64(m.LabelFont)/2 - float64(m.LineSpacing)
	labelY := half + float64(m.SizeFont)/2 + float64(m.LineSpacing)
	writeText(canvas, half, sizeY, m.SizeFont, stroke, strconv.Itoa(size))
	writeText(canvas, half, labelY, m.LabelFont, stroke, t.Label)
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

func colorToHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// writeText emits a middle-anchored <text> element. svgo's Text only takes
// integer coordinates, and the centered lines often sit on half pixels.
func writeText(canvas *svg.SVG, x, y float64, fontSize int, fill, text string) {
	fmt.Fprintf(canvas.Writer,
		`<text x="%s" y="%s" font-family="Arial, sans-serif" font-size="%d" fill="%s" text-anchor="middle" dominant-baseline="middle">`,
		formatCoord(x), formatCoord(y), fontSize, fill)
	xml.EscapeText(canvas.Writer, []byte(text))
	fmt.Fprintln(canvas.Writer, `</text>`)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
