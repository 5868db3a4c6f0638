package rough

import (
	"fmt"
	"math"

	"github.com/rough-gfx/rough/pathdata"
)

// The functions in this file turn geometry into Op lists. They draw their
// randomness in a fixed order (x before y, jitter before displacement) so
// that a given seed always yields the same operations.

func offsetRange(min, max float64, o *Options, roughnessGain float64) float64 {
	return o.Roughness * roughnessGain * (o.random()*(max-min) + min)
}

func offsetOpt(x float64, o *Options, roughnessGain float64) float64 {
	return offsetRange(-x, x, o, roughnessGain)
}

func sketchLine(x1, y1, x2, y2 float64, o *Options, move, overlay bool) []Op {
	lengthSq := (x1-x2)*(x1-x2) + (y1-y2)*(y1-y2)
	length := math.Sqrt(lengthSq)

	var roughnessGain float64
	switch {
	case length < 200:
		roughnessGain = 1
	case length > 500:
		roughnessGain = 0.4
	default:
		roughnessGain = -0.0016668*length + 1.233334
	}

	offset := o.MaxRandomnessOffset
	if offset*offset*100 > lengthSq {
		offset = length / 10
	}
	halfOffset := offset / 2
	divergePoint := 0.2 + o.random()*0.2

	midDispX := o.Bowing * o.MaxRandomnessOffset * (y2 - y1) / 200
	midDispY := o.Bowing * o.MaxRandomnessOffset * (x1 - x2) / 200
	midDispX = offsetOpt(midDispX, o, roughnessGain)
	midDispY = offsetOpt(midDispY, o, roughnessGain)

	randomHalf := func() float64 { return offsetOpt(halfOffset, o, roughnessGain) }
	randomFull := func() float64 { return offsetOpt(offset, o, roughnessGain) }

	var ops []Op
	if move {
		if overlay {
			mx, my := x1, y1
			if !o.PreserveVertices {
				mx += randomHalf()
				my += randomHalf()
			}
			ops = append(ops, Op{OpMove, []float64{mx, my}})
		} else {
			mx, my := x1, y1
			if !o.PreserveVertices {
				mx += randomFull()
				my += randomFull()
			}
			ops = append(ops, Op{OpMove, []float64{mx, my}})
		}
	}
	if overlay {
		ex, ey := x2, y2
		if !o.PreserveVertices {
			ex += randomHalf()
			ey += randomHalf()
		}
		ops = append(ops, Op{OpCubicTo, []float64{
			midDispX + x1 + (x2-x1)*divergePoint + randomHalf(),
			midDispY + y1 + (y2-y1)*divergePoint + randomHalf(),
			midDispX + x1 + 2*(x2-x1)*divergePoint + randomHalf(),
			midDispY + y1 + 2*(y2-y1)*divergePoint + randomHalf(),
			ex, ey,
		}})
	} else {
		ex, ey := x2, y2
		if !o.PreserveVertices {
			ex += randomFull()
			ey += randomFull()
		}
		ops = append(ops, Op{OpCubicTo, []float64{
			midDispX + x1 + (x2-x1)*divergePoint + randomFull(),
			midDispY + y1 + (y2-y1)*divergePoint + randomFull(),
			midDispX + x1 + 2*(x2-x1)*divergePoint + randomFull(),
			midDispY + y1 + 2*(y2-y1)*divergePoint + randomFull(),
			ex, ey,
		}})
	}
	return ops
}

// doubleLine draws the line twice, the second pass with half jitter, for
// the characteristic doubled pencil stroke.
func doubleLine(x1, y1, x2, y2 float64, o *Options, filling bool) []Op {
	singleStroke := o.DisableMultiStroke
	if filling {
		singleStroke = o.DisableMultiStrokeFill
	}
	ops := sketchLine(x1, y1, x2, y2, o, true, false)
	if singleStroke {
		return ops
	}
	return append(ops, sketchLine(x1, y1, x2, y2, o, true, true)...)
}

func lineOps(x1, y1, x2, y2 float64, o *Options) OpSet {
	return OpSet{Kind: StrokePath, Ops: doubleLine(x1, y1, x2, y2, o, false)}
}

func linearPathOps(points []Point, close bool, o *Options) OpSet {
	switch len(points) {
	case 0, 1:
		return OpSet{Kind: StrokePath}
	case 2:
		return lineOps(points[0].X, points[0].Y, points[1].X, points[1].Y, o)
	}
	var ops []Op
	for i := 0; i < len(points)-1; i++ {
		ops = append(ops, doubleLine(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, o, false)...)
	}
	if close {
		last := points[len(points)-1]
		ops = append(ops, doubleLine(last.X, last.Y, points[0].X, points[0].Y, o, false)...)
	}
	return OpSet{Kind: StrokePath, Ops: ops}
}

func polygonOps(points []Point, o *Options) OpSet {
	return linearPathOps(points, true, o)
}

func rectangleOps(x, y, width, height float64, o *Options) OpSet {
	points := []Point{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	}
	return polygonOps(points, o)
}

// sketchCurve draws a curve through the points in two jittered passes, the
// second slightly wider and on a shifted seed.
func sketchCurve(points []Point, o *Options) OpSet {
	ops := curveWithOffset(points, 1*(1+o.Roughness*0.2), o)
	if !o.DisableMultiStroke {
		ops = append(ops, curveWithOffset(points, 1.5*(1+o.Roughness*0.22), o.cloneAlterSeed())...)
	}
	return OpSet{Kind: StrokePath, Ops: ops}
}

func curveWithOffset(points []Point, offset float64, o *Options) []Op {
	if len(points) == 0 {
		return nil
	}
	jitter := func(pt Point) Point {
		return Point{X: pt.X + offsetOpt(offset, o, 1), Y: pt.Y + offsetOpt(offset, o, 1)}
	}
	ps := make([]Point, 0, len(points)+2)
	ps = append(ps, jitter(points[0]), jitter(points[0]))
	for i := 1; i < len(points); i++ {
		ps = append(ps, jitter(points[i]))
		if i == len(points)-1 {
			ps = append(ps, jitter(points[i]))
		}
	}
	return curveOps(ps, nil, o)
}

// curveOps emits the Catmull-Rom spline through points. The first and last
// points act as phantom controls and are not interpolated. closePoint, if
// non-nil, appends a jittered closing line.
func curveOps(points []Point, closePoint *Point, o *Options) []Op {
	var ops []Op
	switch {
	case len(points) > 3:
		s := 1 - o.CurveTightness
		ops = append(ops, Op{OpMove, []float64{points[1].X, points[1].Y}})
		for i := 1; i+2 < len(points); i++ {
			cur := points[i]
			b1 := Point{
				X: cur.X + (s*points[i+1].X-s*points[i-1].X)/6,
				Y: cur.Y + (s*points[i+1].Y-s*points[i-1].Y)/6,
			}
			b2 := Point{
				X: points[i+1].X + (s*points[i].X-s*points[i+2].X)/6,
				Y: points[i+1].Y + (s*points[i].Y-s*points[i+2].Y)/6,
			}
			ops = append(ops, Op{OpCubicTo, []float64{b1.X, b1.Y, b2.X, b2.Y, points[i+1].X, points[i+1].Y}})
		}
		if closePoint != nil {
			ro := o.MaxRandomnessOffset
			ops = append(ops, Op{OpLineTo, []float64{closePoint.X + offsetOpt(ro, o, 1), closePoint.Y + offsetOpt(ro, o, 1)}})
		}
	case len(points) == 3:
		ops = append(ops,
			Op{OpMove, []float64{points[1].X, points[1].Y}},
			Op{OpCubicTo, []float64{points[1].X, points[1].Y, points[2].X, points[2].Y, points[2].X, points[2].Y}},
		)
	case len(points) == 2:
		ops = append(ops, doubleLine(points[0].X, points[0].Y, points[1].X, points[1].Y, o, false)...)
	}
	return ops
}

type ellipseParams struct {
	rx        float64
	ry        float64
	increment float64
}

func generateEllipseParams(width, height float64, o *Options) ellipseParams {
	psq := math.Sqrt(math.Pi * 2 * math.Sqrt((math.Pow(width/2, 2)+math.Pow(height/2, 2))/2))
	stepCount := math.Ceil(math.Max(o.CurveStepCount, o.CurveStepCount/math.Sqrt(200)*psq))
	increment := math.Pi * 2 / stepCount
	rx := math.Abs(width / 2)
	ry := math.Abs(height / 2)
	curveFitRandomness := 1 - o.CurveFitting
	rx += offsetOpt(rx*curveFitRandomness, o, 1)
	ry += offsetOpt(ry*curveFitRandomness, o, 1)
	return ellipseParams{rx: rx, ry: ry, increment: increment}
}

func ellipseWithParams(x, y float64, o *Options, params ellipseParams) (OpSet, []Point) {
	overlap := params.increment * offsetRange(0.1, offsetRange(0.4, 1, o, 1), o, 1)
	ap1, cp1 := computeEllipsePoints(params.increment, x, y, params.rx, params.ry, 1, overlap, o)
	ops := curveOps(ap1, nil, o)
	if !o.DisableMultiStroke && o.Roughness != 0 {
		ap2, _ := computeEllipsePoints(params.increment, x, y, params.rx, params.ry, 1.5, 0, o)
		ops = append(ops, curveOps(ap2, nil, o)...)
	}
	return OpSet{Kind: StrokePath, Ops: ops}, cp1
}

// computeEllipsePoints walks the ellipse at the given angular increment.
// It returns the jittered spline inputs and the clean core points the fill
// engine uses. With roughness 0 the walk is exact and four times denser.
func computeEllipsePoints(increment, cx, cy, rx, ry, offset, overlap float64, o *Options) (allPoints, corePoints []Point) {
	if o.Roughness == 0 {
		increment /= 4
		allPoints = append(allPoints, Point{cx + rx*math.Cos(-increment), cy + ry*math.Sin(-increment)})
		for angle := 0.0; angle <= math.Pi*2; angle += increment {
			p := Point{cx + rx*math.Cos(angle), cy + ry*math.Sin(angle)}
			corePoints = append(corePoints, p)
			allPoints = append(allPoints, p)
		}
		allPoints = append(allPoints,
			Point{cx + rx, cy},
			Point{cx + rx*math.Cos(increment), cy + ry*math.Sin(increment)},
		)
		return allPoints, corePoints
	}

	radOffset := offsetOpt(0.5, o, 1) - math.Pi/2
	allPoints = append(allPoints, Point{
		offsetOpt(offset, o, 1) + cx + 0.9*rx*math.Cos(radOffset-increment),
		offsetOpt(offset, o, 1) + cy + 0.9*ry*math.Sin(radOffset-increment),
	})
	endAngle := math.Pi*2 + radOffset - 0.01
	for angle := radOffset; angle < endAngle; angle += increment {
		p := Point{
			offsetOpt(offset, o, 1) + cx + rx*math.Cos(angle),
			offsetOpt(offset, o, 1) + cy + ry*math.Sin(angle),
		}
		corePoints = append(corePoints, p)
		allPoints = append(allPoints, p)
	}
	allPoints = append(allPoints,
		Point{
			offsetOpt(offset, o, 1) + cx + rx*math.Cos(radOffset+math.Pi*2+overlap*0.5),
			offsetOpt(offset, o, 1) + cy + ry*math.Sin(radOffset+math.Pi*2+overlap*0.5),
		},
		Point{
			offsetOpt(offset, o, 1) + cx + 0.98*rx*math.Cos(radOffset+overlap),
			offsetOpt(offset, o, 1) + cy + 0.98*ry*math.Sin(radOffset+overlap),
		},
		Point{
			offsetOpt(offset, o, 1) + cx + 0.9*rx*math.Cos(radOffset+overlap*0.5),
			offsetOpt(offset, o, 1) + cy + 0.9*ry*math.Sin(radOffset+overlap*0.5),
		},
	)
	return allPoints, corePoints
}

func ellipseOps(x, y, width, height float64, o *Options) (OpSet, []Point) {
	params := generateEllipseParams(width, height, o)
	return ellipseWithParams(x, y, o, params)
}

func arcOps(x, y, width, height, start, stop float64, closed, roughClosure bool, o *Options) OpSet {
	cx, cy := x, y
	rx := math.Abs(width / 2)
	ry := math.Abs(height / 2)
	rx += offsetOpt(rx*0.01, o, 1)
	ry += offsetOpt(ry*0.01, o, 1)

	strt, stp := start, stop
	for strt < 0 {
		strt += math.Pi * 2
		stp += math.Pi * 2
	}
	if stp-strt > math.Pi*2 {
		strt = 0
		stp = math.Pi * 2
	}
	ellipseInc := math.Pi * 2 / o.CurveStepCount
	arcInc := math.Min(ellipseInc/2, (stp-strt)/2)

	ops := sketchArc(arcInc, cx, cy, rx, ry, strt, stp, 1, o)
	if !o.DisableMultiStroke {
		ops = append(ops, sketchArc(arcInc, cx, cy, rx, ry, strt, stp, 1.5, o)...)
	}
	if closed {
		if roughClosure {
			ops = append(ops, doubleLine(cx, cy, cx+rx*math.Cos(strt), cy+ry*math.Sin(strt), o, false)...)
			ops = append(ops, doubleLine(cx, cy, cx+rx*math.Cos(stp), cy+ry*math.Sin(stp), o, false)...)
		} else {
			ops = append(ops,
				Op{OpLineTo, []float64{cx, cy}},
				Op{OpLineTo, []float64{cx + rx*math.Cos(strt), cy + ry*math.Sin(strt)}},
			)
		}
	}
	return OpSet{Kind: StrokePath, Ops: ops}
}

func sketchArc(increment, cx, cy, rx, ry, strt, stp, offset float64, o *Options) []Op {
	radOffset := strt + offsetOpt(0.1, o, 1)
	points := []Point{{
		offsetOpt(offset, o, 1) + cx + 0.9*rx*math.Cos(radOffset-increment),
		offsetOpt(offset, o, 1) + cy + 0.9*ry*math.Sin(radOffset-increment),
	}}
	for angle := radOffset; angle <= stp; angle += increment {
		points = append(points, Point{
			offsetOpt(offset, o, 1) + cx + rx*math.Cos(angle),
			offsetOpt(offset, o, 1) + cy + ry*math.Sin(angle),
		})
	}
	end := Point{cx + rx*math.Cos(stp), cy + ry*math.Sin(stp)}
	points = append(points, end, end)
	return curveOps(points, nil, o)
}

// bezierTo sketches one cubic segment from current, with one or two
// jittered iterations depending on the multi-stroke setting.
func bezierTo(cp1x, cp1y, cp2x, cp2y, x, y float64, current Point, o *Options) []Op {
	ros := [2]float64{o.MaxRandomnessOffset, o.MaxRandomnessOffset + 0.3}
	iterations := 2
	if o.DisableMultiStroke {
		iterations = 1
	}
	var ops []Op
	for i := 0; i < iterations; i++ {
		if i == 0 {
			ops = append(ops, Op{OpMove, []float64{current.X, current.Y}})
		} else {
			mx, my := current.X, current.Y
			if !o.PreserveVertices {
				mx += offsetOpt(ros[0], o, 1)
				my += offsetOpt(ros[0], o, 1)
			}
			ops = append(ops, Op{OpMove, []float64{mx, my}})
		}
		ex, ey := x, y
		if !o.PreserveVertices {
			ex = x + offsetOpt(ros[i], o, 1)
			ey = y + offsetOpt(ros[i], o, 1)
		}
		ops = append(ops, Op{OpCubicTo, []float64{
			cp1x + offsetOpt(ros[i], o, 1),
			cp1y + offsetOpt(ros[i], o, 1),
			cp2x + offsetOpt(ros[i], o, 1),
			cp2y + offsetOpt(ros[i], o, 1),
			ex, ey,
		}})
	}
	return ops
}

func bezierCubicOps(c CubicBez, o *Options) OpSet {
	return OpSet{Kind: StrokePath, Ops: bezierTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y, c.P0, o)}
}

func bezierQuadraticOps(q QuadBez, o *Options) OpSet {
	return bezierCubicOps(q.Raise(), o)
}

func solidFillPolygonOps(polygons [][]Point, o *Options) OpSet {
	var ops []Op
	for _, points := range polygons {
		if len(points) <= 2 {
			continue
		}
		offset := o.MaxRandomnessOffset
		ops = append(ops, Op{OpMove, []float64{
			points[0].X + offsetOpt(offset, o, 1),
			points[0].Y + offsetOpt(offset, o, 1),
		}})
		for i := 1; i < len(points); i++ {
			ops = append(ops, Op{OpLineTo, []float64{
				points[i].X + offsetOpt(offset, o, 1),
				points[i].Y + offsetOpt(offset, o, 1),
			}})
		}
	}
	return OpSet{Kind: FillPath, Ops: ops}
}

func patternFillArcOps(x, y, width, height, start, stop float64, o *Options) OpSet {
	cx, cy := x, y
	rx := math.Abs(width / 2)
	ry := math.Abs(height / 2)
	rx += offsetOpt(rx*0.01, o, 1)
	ry += offsetOpt(ry*0.01, o, 1)

	strt, stp := start, stop
	for strt < 0 {
		strt += math.Pi * 2
		stp += math.Pi * 2
	}
	if stp-strt > math.Pi*2 {
		strt = 0
		stp = math.Pi * 2
	}
	increment := (stp - strt) / o.CurveStepCount
	var points []Point
	for angle := strt; angle <= stp; angle += increment {
		points = append(points, Point{cx + rx*math.Cos(angle), cy + ry*math.Sin(angle)})
	}
	points = append(points,
		Point{cx + rx*math.Cos(stp), cy + ry*math.Sin(stp)},
		Point{cx, cy},
	)
	return patternFillPolygons([][]Point{points}, o)
}

// svgPathOps sketches a path-data string. The path is normalized to
// absolute M/L/C/Z segments first; anything the normalizer cannot reduce
// is reported as an error.
func svgPathOps(d string, o *Options) (OpSet, error) {
	segments, err := pathdata.Parse(d)
	if err != nil {
		return OpSet{}, fmt.Errorf("parsing path %q: %w", d, err)
	}
	normalized := pathdata.Normalize(pathdata.Absolutize(segments))

	var ops []Op
	var first, current Point
	for _, seg := range normalized {
		switch seg.Cmd {
		case 'M':
			ro := o.MaxRandomnessOffset
			mx, my := seg.Args[0], seg.Args[1]
			if !o.PreserveVertices {
				mx += offsetOpt(ro, o, 1)
				my += offsetOpt(ro, o, 1)
			}
			ops = append(ops, Op{OpMove, []float64{mx, my}})
			current = Point{seg.Args[0], seg.Args[1]}
			first = current
		case 'L':
			ops = append(ops, doubleLine(current.X, current.Y, seg.Args[0], seg.Args[1], o, false)...)
			current = Point{seg.Args[0], seg.Args[1]}
		case 'C':
			ops = append(ops, bezierTo(seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3], seg.Args[4], seg.Args[5], current, o)...)
			current = Point{seg.Args[4], seg.Args[5]}
		case 'Z':
			ops = append(ops, doubleLine(current.X, current.Y, first.X, first.Y, o, false)...)
			current = first
		default:
			return OpSet{}, fmt.Errorf("unexpected segment %q after normalization", string(seg.Cmd))
		}
	}
	return OpSet{Kind: StrokePath, Ops: ops, Path: d}, nil
}
