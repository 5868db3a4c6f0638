package rough

import "math"

// patternFillPolygons turns polygons into a FillSketch op set in the
// style o.FillStyle selects. Solid fills never reach this dispatch; they
// are built directly with solidFillPolygonOps.
func patternFillPolygons(polygons [][]Point, o *Options) OpSet {
	switch o.FillStyle {
	case FillDots:
		return dotsFill(polygons, o)
	case FillDashed:
		return dashedFill(polygons, o)
	case FillZigzag:
		return zigzagFill(polygons, o)
	case FillZigzagLine:
		return zigzagLineFill(polygons, o)
	case FillCrossHatch:
		return crossHatchFill(polygons, o)
	default:
		return hachureFill(polygons, o)
	}
}

func fillLinesOps(lines []Line, o *Options) []Op {
	var ops []Op
	for _, l := range lines {
		ops = append(ops, doubleLine(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, o, true)...)
	}
	return ops
}

func hachureFill(polygons [][]Point, o *Options) OpSet {
	lines := PolygonHachureLines(polygons, o)
	return OpSet{Kind: FillSketch, Ops: fillLinesOps(lines, o)}
}

func crossHatchFill(polygons [][]Point, o *Options) OpSet {
	lines := PolygonHachureLines(polygons, o)
	o2 := o.clone()
	o2.HachureAngle += 90
	lines = append(lines, PolygonHachureLines(polygons, o2)...)
	return OpSet{Kind: FillSketch, Ops: fillLinesOps(lines, o)}
}

func zigzagFill(polygons [][]Point, o *Options) OpSet {
	gap := o.HachureGap
	if gap < 0 {
		gap = o.StrokeWidth * 4
	}
	gap = math.Max(gap, 0.1)
	o2 := o.clone()
	o2.HachureGap = gap
	lines := PolygonHachureLines(polygons, o2)

	zigzagAngle := o.HachureAngle * math.Pi / 180
	dgx := gap * 0.5 * math.Cos(zigzagAngle)
	dgy := gap * 0.5 * math.Sin(zigzagAngle)

	var zigzagLines []Line
	for _, l := range lines {
		if l.Length() == 0 {
			continue
		}
		zigzagLines = append(zigzagLines,
			Line{Point{l.P0.X - dgx, l.P0.Y + dgy}, l.P1},
			Line{Point{l.P0.X + dgx, l.P0.Y - dgy}, l.P1},
		)
	}
	return OpSet{Kind: FillSketch, Ops: fillLinesOps(zigzagLines, o)}
}

func zigzagLineFill(polygons [][]Point, o *Options) OpSet {
	gap := o.HachureGap
	if gap < 0 {
		gap = o.StrokeWidth * 4
	}
	zo := o.ZigzagOffset
	if zo < 0 {
		zo = gap
	}
	o2 := o.clone()
	o2.HachureGap = gap + zo
	lines := PolygonHachureLines(polygons, o2)

	var ops []Op
	for _, l := range lines {
		length := l.Length()
		count := int(math.Floor(length / (2 * zo)))
		p1, p2 := l.P0, l.P1
		if p1.X > p2.X {
			p1, p2 = p2, p1
		}
		alpha := math.Atan((p2.Y - p1.Y) / (p2.X - p1.X))
		dz := math.Sqrt(2 * zo * zo)
		for i := 0; i < count; i++ {
			lstart := float64(i) * 2 * zo
			lend := float64(i+1) * 2 * zo
			start := Point{p1.X + lstart*math.Cos(alpha), p1.Y + lstart*math.Sin(alpha)}
			end := Point{p1.X + lend*math.Cos(alpha), p1.Y + lend*math.Sin(alpha)}
			middle := Point{start.X + dz*math.Cos(alpha+math.Pi/4), start.Y + dz*math.Sin(alpha+math.Pi/4)}
			ops = append(ops, doubleLine(start.X, start.Y, middle.X, middle.Y, o, false)...)
			ops = append(ops, doubleLine(middle.X, middle.Y, end.X, end.Y, o, false)...)
		}
	}
	return OpSet{Kind: FillSketch, Ops: ops}
}

func dotsFill(polygons [][]Point, o *Options) OpSet {
	// Dots ignore the hachure angle; the scan stays horizontal.
	o2 := o.clone()
	o2.HachureAngle = 0
	lines := PolygonHachureLines(polygons, o2)
	return dotsOnLines(lines, o)
}

func dotsOnLines(lines []Line, o *Options) OpSet {
	gap := o.HachureGap
	if gap < 0 {
		gap = o.StrokeWidth * 4
	}
	gap = math.Max(gap, 0.1)
	fweight := o.FillWeight
	if fweight < 0 {
		fweight = o.StrokeWidth / 2
	}
	ro := gap / 4

	var ops []Op
	for _, l := range lines {
		length := l.Length()
		count := int(math.Ceil(length/gap)) - 1
		if count < 0 {
			count = 0
		}
		offset := length - float64(count)*gap
		x := (l.P0.X+l.P1.X)/2 - gap/4
		minY := math.Min(l.P0.Y, l.P1.Y)
		for i := 0; i < count; i++ {
			y := minY + offset + float64(i)*gap
			cx := x - ro + o.random()*2*ro
			cy := y - ro + o.random()*2*ro
			set, _ := ellipseOps(cx, cy, fweight, fweight, o)
			ops = append(ops, set.Ops...)
		}
	}
	return OpSet{Kind: FillSketch, Ops: ops}
}

func dashedFill(polygons [][]Point, o *Options) OpSet {
	lines := PolygonHachureLines(polygons, o)
	return OpSet{Kind: FillSketch, Ops: dashedLines(lines, o)}
}

func dashedLines(lines []Line, o *Options) []Op {
	fallbackGap := o.HachureGap
	if fallbackGap < 0 {
		fallbackGap = o.StrokeWidth * 4
	}
	offset := o.DashOffset
	if offset < 0 {
		offset = fallbackGap
	}
	gap := o.DashGap
	if gap < 0 {
		gap = fallbackGap
	}

	var ops []Op
	for _, l := range lines {
		length := l.Length()
		count := int(math.Floor(length / (offset + gap)))
		startOffset := (length + gap - float64(count)*(offset+gap)) / 2
		p1, p2 := l.P0, l.P1
		if p1.X > p2.X {
			p1, p2 = p2, p1
		}
		alpha := math.Atan((p2.Y - p1.Y) / (p2.X - p1.X))
		for i := 0; i < count; i++ {
			lstart := float64(i) * (offset + gap)
			lend := lstart + offset
			start := Point{
				p1.X + lstart*math.Cos(alpha) + startOffset*math.Cos(alpha),
				p1.Y + lstart*math.Sin(alpha) + startOffset*math.Sin(alpha),
			}
			end := Point{
				p1.X + lend*math.Cos(alpha) + startOffset*math.Cos(alpha),
				p1.Y + lend*math.Sin(alpha) + startOffset*math.Sin(alpha),
			}
			ops = append(ops, doubleLine(start.X, start.Y, end.X, end.Y, o, false)...)
		}
	}
	return ops
}
