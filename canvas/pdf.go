package canvas

import (
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"github.com/rough-gfx/rough"
)

// DrawPDF renders the drawable onto the current page of a gofpdf
// document. Coordinates are used as-is, so the caller picks the unit when
// creating the document.
func DrawPDF(pdf *gofpdf.Fpdf, d *rough.Drawable) {
	o := d.Options
	if o == nil {
		o = rough.NewOptions()
	}
	for _, set := range d.Sets {
		switch set.Kind {
		case rough.StrokePath:
			if o.Stroke == nil {
				continue
			}
			setDrawColor(pdf, o.Stroke)
			pdf.SetLineWidth(o.StrokeWidth)
			if len(o.StrokeLineDash) > 0 {
				pdf.SetDashPattern(o.StrokeLineDash, o.StrokeLineDashOffset)
			}
			tracePDF(pdf, set.Ops)
			pdf.DrawPath("D")
			if len(o.StrokeLineDash) > 0 {
				pdf.SetDashPattern(nil, 0)
			}
		case rough.FillPath:
			if o.Fill == nil {
				continue
			}
			setFillColor(pdf, o.Fill)
			tracePDF(pdf, set.Ops)
			pdf.DrawPath("F")
		case rough.FillSketch:
			if o.Fill == nil {
				continue
			}
			setDrawColor(pdf, o.Fill)
			pdf.SetLineWidth(fillWeight(o))
			if len(o.FillLineDash) > 0 {
				pdf.SetDashPattern(o.FillLineDash, o.FillLineDashOffset)
			}
			tracePDF(pdf, set.Ops)
			pdf.DrawPath("D")
			if len(o.FillLineDash) > 0 {
				pdf.SetDashPattern(nil, 0)
			}
		}
	}
}

func tracePDF(pdf *gofpdf.Fpdf, ops []rough.Op) {
	for _, op := range ops {
		data := op.Data
		switch op.Kind {
		case rough.OpMove:
			pdf.MoveTo(data[0], data[1])
		case rough.OpLineTo:
			pdf.LineTo(data[0], data[1])
		case rough.OpCubicTo:
			pdf.CurveBezierCubicTo(data[0], data[1], data[2], data[3], data[4], data[5])
		}
	}
}

func setDrawColor(pdf *gofpdf.Fpdf, c color.Color) {
	r, g, b := rgb(c)
	pdf.SetDrawColor(r, g, b)
}

func setFillColor(pdf *gofpdf.Fpdf, c color.Color) {
	r, g, b := rgb(c)
	pdf.SetFillColor(r, g, b)
}

func rgb(c color.Color) (int, int, int) {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nrgba.R), int(nrgba.G), int(nrgba.B)
}
