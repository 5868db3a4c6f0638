package canvas

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rough-gfx/rough"
)

func TestDrawStrokesPixels(t *testing.T) {
	dc := gg.NewContext(100, 100)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	gen := rough.NewGenerator(nil)
	Draw(dc, gen.Rectangle(20, 20, 60, 60, nil))

	img := dc.Image()
	touched := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0xf000 || g < 0xf000 || b < 0xf000 {
				touched++
			}
		}
	}
	assert.Greater(t, touched, 50, "expected the stroke to darken pixels")
}

func TestDrawFill(t *testing.T) {
	dc := gg.NewContext(100, 100)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	o := rough.NewOptions()
	o.Stroke = nil
	o.Fill = color.NRGBA{R: 0xff, A: 0xff}
	o.FillStyle = rough.FillSolid
	gen := rough.NewGenerator(o)
	Draw(dc, gen.Rectangle(10, 10, 80, 80, nil))

	// The center of a solid-filled square must be red.
	r, g, _, _ := dc.Image().At(50, 50).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x4000))
}

func TestDrawPDF(t *testing.T) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: 200, Ht: 200},
	})
	pdf.AddPage()

	gen := rough.NewGenerator(nil)
	DrawPDF(pdf, gen.Circle(100, 100, 80, nil))

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	require.NotZero(t, buf.Len())
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"), "output is not a PDF")
}

func TestWriteSVG(t *testing.T) {
	gen := rough.NewGenerator(nil)
	d := gen.Line(0, 0, 50, 50, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, 100, 100, d))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, `stroke="#000000"`)
	assert.Contains(t, out, "</svg>")
}

func TestWriteSVGFillColors(t *testing.T) {
	o := rough.NewOptions()
	o.Fill = color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	o.FillStyle = rough.FillSolid
	gen := rough.NewGenerator(o)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, 100, 100, gen.Rectangle(10, 10, 50, 50, nil)))
	assert.Contains(t, buf.String(), `fill="#123456"`)
}
