package canvas

import (
	"fmt"
	"image/color"
	"io"

	"github.com/rough-gfx/rough"
)

// WriteSVG writes the drawables as a standalone SVG document.
func WriteSVG(w io.Writer, width, height float64, drawables ...*rough.Drawable) error {
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		width, height, width, height); err != nil {
		return err
	}
	for _, d := range drawables {
		for _, p := range d.ToPaths() {
			if _, err := fmt.Fprintf(w,
				"  <path d=\"%s\" stroke=\"%s\" stroke-width=\"%g\" fill=\"%s\"/>\n",
				p.D, svgColor(p.Stroke), p.StrokeWidth, svgColor(p.Fill)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

func svgColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nrgba.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", nrgba.R, nrgba.G, nrgba.B, float64(nrgba.A)/255)
}
