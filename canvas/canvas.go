// Package canvas replays rough op lists onto concrete drawing surfaces:
// fogleman/gg raster contexts, gofpdf PDF pages, and SVG documents.
package canvas

import (
	"github.com/fogleman/gg"

	"github.com/rough-gfx/rough"
)

// Draw renders the drawable onto a gg context. Stroke sets are stroked
// with the stroke color and width, fill sets are filled with the fill
// color, and sketch fills are stroked with the fill color at the resolved
// fill weight.
func Draw(dc *gg.Context, d *rough.Drawable) {
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
			trace(dc, set.Ops)
			dc.SetColor(o.Stroke)
			dc.SetLineWidth(o.StrokeWidth)
			applyLineStyle(dc, o)
			if len(o.StrokeLineDash) > 0 {
				dc.SetDash(o.StrokeLineDash...)
			}
			dc.Stroke()
			dc.SetDash()
		case rough.FillPath:
			if o.Fill == nil {
				continue
			}
			trace(dc, set.Ops)
			dc.SetColor(o.Fill)
			// Shapes assembled from several subpaths or overlapping
			// spline passes fill correctly only with the even-odd
			// rule.
			switch d.Shape {
			case "curve", "polygon", "path":
				dc.SetFillRule(gg.FillRuleEvenOdd)
			default:
				dc.SetFillRule(gg.FillRuleWinding)
			}
			dc.Fill()
		case rough.FillSketch:
			if o.Fill == nil {
				continue
			}
			trace(dc, set.Ops)
			dc.SetColor(o.Fill)
			dc.SetLineWidth(fillWeight(o))
			applyLineStyle(dc, o)
			if len(o.FillLineDash) > 0 {
				dc.SetDash(o.FillLineDash...)
			}
			dc.Stroke()
			dc.SetDash()
		}
	}
}

func trace(dc *gg.Context, ops []rough.Op) {
	for _, op := range ops {
		data := op.Data
		switch op.Kind {
		case rough.OpMove:
			dc.MoveTo(data[0], data[1])
		case rough.OpLineTo:
			dc.LineTo(data[0], data[1])
		case rough.OpCubicTo:
			dc.CubicTo(data[0], data[1], data[2], data[3], data[4], data[5])
		}
	}
}

func applyLineStyle(dc *gg.Context, o *rough.Options) {
	switch o.LineCap {
	case rough.CapRound:
		dc.SetLineCap(gg.LineCapRound)
	case rough.CapSquare:
		dc.SetLineCap(gg.LineCapSquare)
	default:
		dc.SetLineCap(gg.LineCapButt)
	}
	switch o.LineJoin {
	case rough.JoinBevel:
		dc.SetLineJoin(gg.LineJoinBevel)
	default:
		dc.SetLineJoin(gg.LineJoinRound)
	}
}

func fillWeight(o *rough.Options) float64 {
	if o.FillWeight < 0 {
		return o.StrokeWidth / 2
	}
	return o.FillWeight
}
