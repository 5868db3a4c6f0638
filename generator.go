package rough

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// PathInfo describes one SVG path element of a rendered Drawable.
type PathInfo struct {
	D           string
	Stroke      color.Color // nil means no stroke
	StrokeWidth float64
	Fill        color.Color // nil means no fill
}

// Generator builds Drawables. The zero value is not usable; use
// NewGenerator. Methods take per-call options that override the
// generator's defaults when non-nil.
type Generator struct {
	defaults *Options
}

// NewGenerator returns a generator with the given default options, or
// NewOptions() when o is nil.
func NewGenerator(o *Options) *Generator {
	if o == nil {
		o = NewOptions()
	}
	return &Generator{defaults: o}
}

func (g *Generator) opts(o *Options) *Options {
	if o == nil {
		o = g.defaults
	}
	return o.clone()
}

func (g *Generator) newDrawable(shape string, sets []OpSet, o *Options) *Drawable {
	return &Drawable{Shape: shape, Options: o, Sets: sets}
}

// Line draws a sketchy line between two points.
func (g *Generator) Line(x1, y1, x2, y2 float64, options *Options) *Drawable {
	o := g.opts(options)
	return g.newDrawable("line", []OpSet{lineOps(x1, y1, x2, y2, o)}, o)
}

// Rectangle draws a rectangle with the top-left corner at (x, y).
func (g *Generator) Rectangle(x, y, width, height float64, options *Options) *Drawable {
	o := g.opts(options)
	var sets []OpSet
	outline := rectangleOps(x, y, width, height, o)
	if o.Fill != nil {
		points := []Point{
			{x, y},
			{x + width, y},
			{x + width, y + height},
			{x, y + height},
		}
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygonOps([][]Point{points}, o))
		} else {
			sets = append(sets, patternFillPolygons([][]Point{points}, o))
		}
	}
	if o.Stroke != nil {
		sets = append(sets, outline)
	}
	return g.newDrawable("rectangle", sets, o)
}

// Ellipse draws an ellipse centered at (x, y).
func (g *Generator) Ellipse(x, y, width, height float64, options *Options) *Drawable {
	return g.ellipse("ellipse", x, y, width, height, options)
}

// Circle draws a circle of the given diameter centered at (x, y).
func (g *Generator) Circle(x, y, diameter float64, options *Options) *Drawable {
	return g.ellipse("circle", x, y, diameter, diameter, options)
}

func (g *Generator) ellipse(shape string, x, y, width, height float64, options *Options) *Drawable {
	o := g.opts(options)
	var sets []OpSet
	params := generateEllipseParams(width, height, o)
	outline, corePoints := ellipseWithParams(x, y, o, params)
	if o.Fill != nil {
		if o.FillStyle == FillSolid {
			// A second sketch pass retagged as the fill shape.
			shapeSet, _ := ellipseWithParams(x, y, o, params)
			shapeSet.Kind = FillPath
			sets = append(sets, shapeSet)
		} else {
			sets = append(sets, patternFillPolygons([][]Point{corePoints}, o))
		}
	}
	if o.Stroke != nil {
		sets = append(sets, outline)
	}
	sets = g.withSize(sets, params)
	return g.newDrawable(shape, sets, o)
}

func (g *Generator) withSize(sets []OpSet, params ellipseParams) []OpSet {
	for i := range sets {
		sets[i].Size = &Point{X: params.rx * 2, Y: params.ry * 2}
	}
	return sets
}

// LinearPath draws an open polyline through the points.
func (g *Generator) LinearPath(points []Point, options *Options) *Drawable {
	o := g.opts(options)
	return g.newDrawable("linearPath", []OpSet{linearPathOps(points, false, o)}, o)
}

// Polygon draws a closed, optionally filled polygon.
func (g *Generator) Polygon(points []Point, options *Options) *Drawable {
	o := g.opts(options)
	var sets []OpSet
	outline := linearPathOps(points, true, o)
	if o.Fill != nil {
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygonOps([][]Point{points}, o))
		} else {
			sets = append(sets, patternFillPolygons([][]Point{points}, o))
		}
	}
	if o.Stroke != nil {
		sets = append(sets, outline)
	}
	return g.newDrawable("polygon", sets, o)
}

// Arc draws an elliptical arc from start to stop (radians) on the ellipse
// centered at (x, y). A closed arc is joined to the center and can be
// filled.
func (g *Generator) Arc(x, y, width, height, start, stop float64, closed bool, options *Options) *Drawable {
	o := g.opts(options)
	var sets []OpSet
	outline := arcOps(x, y, width, height, start, stop, closed, true, o)
	if closed && o.Fill != nil {
		if o.FillStyle == FillSolid {
			fo := o.clone()
			fo.DisableMultiStroke = true
			shapeSet := arcOps(x, y, width, height, start, stop, true, false, fo)
			shapeSet.Kind = FillPath
			sets = append(sets, shapeSet)
		} else {
			sets = append(sets, patternFillArcOps(x, y, width, height, start, stop, o))
		}
	}
	if o.Stroke != nil {
		sets = append(sets, outline)
	}
	return g.newDrawable("arc", sets, o)
}

// BezierQuadratic draws a quadratic Bézier segment.
func (g *Generator) BezierQuadratic(q QuadBez, options *Options) *Drawable {
	o := g.opts(options)
	var sets []OpSet
	outline := bezierQuadraticOps(q, o)
	if o.Fill != nil {
		c := q.Raise()
		sets = append(sets, g.bezierFill(c, o))
	}
	if o.Stroke != nil {
		sets = append(sets, outline)
	}
	return g.newDrawable("bezierQuadratic", sets, o)
}

// BezierCubic draws a cubic Bézier segment.
func (g *Generator) BezierCubic(c CubicBez, options *Options) *Drawable {
	o := g.opts(options)
	var sets []OpSet
	outline := bezierCubicOps(c, o)
	if o.Fill != nil {
		sets = append(sets, g.bezierFill(c, o))
	}
	if o.Stroke != nil {
		sets = append(sets, outline)
	}
	return g.newDrawable("bezierCubic", sets, o)
}

func (g *Generator) bezierFill(c CubicBez, o *Options) OpSet {
	crv := []Point{c.P0, c.P1, c.P2, c.P3}
	polyPoints := PointsOnBezierCurves(crv, 10, 1+o.Roughness/2)
	if o.FillStyle == FillSolid {
		return solidFillPolygonOps([][]Point{polyPoints}, o)
	}
	return patternFillPolygons([][]Point{polyPoints}, o)
}

// Curve draws a smooth curve through the points. With three or more
// points and a fill, the fill polygon is derived by fitting and sampling
// the curve.
func (g *Generator) Curve(points []Point, options *Options) *Drawable {
	o := g.opts(options)
	var sets []OpSet
	outline := sketchCurve(points, o)
	if o.Fill != nil && len(points) >= 3 {
		if bcurve, ok := CurveToBezier(points, 0); ok {
			polyPoints := PointsOnBezierCurves(bcurve, 10, 1+o.Roughness/2)
			if o.FillStyle == FillSolid {
				sets = append(sets, solidFillPolygonOps([][]Point{polyPoints}, o))
			} else {
				sets = append(sets, patternFillPolygons([][]Point{polyPoints}, o))
			}
		}
	}
	if o.Stroke != nil {
		sets = append(sets, outline)
	}
	return g.newDrawable("curve", sets, o)
}

// Path sketches an SVG path-data string. With Simplification below 1 the
// stroke is drawn from simplified sample points instead of the path
// segments themselves.
func (g *Generator) Path(d string, options *Options) (*Drawable, error) {
	o := g.opts(options)
	var sets []OpSet
	d = strings.TrimSpace(d)
	if d == "" {
		return g.newDrawable("path", sets, o), nil
	}

	simplified := o.Simplification < 1
	distance := (1 + o.Roughness) / 2
	if simplified {
		distance = 4 - 4*o.Simplification
	}
	pointSets, err := PointsOnSVGPath(d, 1, distance)
	if err != nil {
		return nil, err
	}

	if o.Fill != nil {
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygonOps(pointSets, o))
		} else {
			sets = append(sets, patternFillPolygons(pointSets, o))
		}
	}
	if o.Stroke != nil {
		if simplified {
			for _, set := range pointSets {
				sets = append(sets, linearPathOps(set, false, o))
			}
		} else {
			stroke, err := svgPathOps(d, o)
			if err != nil {
				return nil, err
			}
			sets = append(sets, stroke)
		}
	}
	return g.newDrawable("path", sets, o), nil
}

// ToPaths resolves the drawable into SVG path elements with their paint
// attributes.
func (d *Drawable) ToPaths() []PathInfo {
	o := d.Options
	if o == nil {
		o = NewOptions()
	}
	var paths []PathInfo
	for _, set := range d.Sets {
		switch set.Kind {
		case StrokePath:
			paths = append(paths, PathInfo{
				D:           opsToPath(set, o.FixedDecimalPlaceDigits),
				Stroke:      o.Stroke,
				StrokeWidth: o.StrokeWidth,
			})
		case FillPath:
			paths = append(paths, PathInfo{
				D:    opsToPath(set, o.FixedDecimalPlaceDigits),
				Fill: o.Fill,
			})
		case FillSketch:
			fweight := o.FillWeight
			if fweight < 0 {
				fweight = o.StrokeWidth / 2
			}
			paths = append(paths, PathInfo{
				D:           opsToPath(set, o.FixedDecimalPlaceDigits),
				Stroke:      o.Fill,
				StrokeWidth: fweight,
			})
		}
	}
	return paths
}

// opsToPath serializes an op set as SVG path data, rounding coordinates
// to fixedDecimals places when non-negative.
func opsToPath(set OpSet, fixedDecimals int) string {
	var b strings.Builder
	round := func(v float64) float64 {
		if fixedDecimals < 0 {
			return v
		}
		p := math.Pow(10, float64(fixedDecimals))
		return math.Round(v*p) / p
	}
	for _, op := range set.Ops {
		data := op.Data
		switch op.Kind {
		case OpMove:
			fmt.Fprintf(&b, "M%g %g ", round(data[0]), round(data[1]))
		case OpCubicTo:
			fmt.Fprintf(&b, "C%g %g, %g %g, %g %g ",
				round(data[0]), round(data[1]),
				round(data[2]), round(data[3]),
				round(data[4]), round(data[5]))
		case OpLineTo:
			fmt.Fprintf(&b, "L%g %g ", round(data[0]), round(data[1]))
		}
	}
	return strings.TrimSpace(b.String())
}
