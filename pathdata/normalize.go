package pathdata

import "math"

// Normalize reduces absolutized segments to M, L, C and Z only. Shorthand
// curves are expanded with control-point reflection, quadratics are
// raised to cubics, and arcs are converted to cubic approximations of at
// most a quarter turn each.
func Normalize(segments []Segment) []Segment {
	var out []Segment
	var cx, cy, subX, subY float64
	var lastCmd byte
	var lastCtlX, lastCtlY float64

	for _, seg := range segments {
		switch seg.Cmd {
		case 'M':
			cx, cy = seg.Args[0], seg.Args[1]
			subX, subY = cx, cy
			out = append(out, Segment{'M', []float64{cx, cy}})
		case 'L':
			cx, cy = seg.Args[0], seg.Args[1]
			out = append(out, Segment{'L', []float64{cx, cy}})
		case 'H':
			cx = seg.Args[0]
			out = append(out, Segment{'L', []float64{cx, cy}})
		case 'V':
			cy = seg.Args[0]
			out = append(out, Segment{'L', []float64{cx, cy}})
		case 'C':
			cx, cy = seg.Args[4], seg.Args[5]
			lastCtlX, lastCtlY = seg.Args[2], seg.Args[3]
			out = append(out, Segment{'C', append([]float64(nil), seg.Args...)})
		case 'S':
			cp1x, cp1y := cx, cy
			if lastCmd == 'C' || lastCmd == 'S' {
				cp1x = 2*cx - lastCtlX
				cp1y = 2*cy - lastCtlY
			}
			args := []float64{cp1x, cp1y, seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3]}
			cx, cy = args[4], args[5]
			lastCtlX, lastCtlY = args[2], args[3]
			out = append(out, Segment{'C', args})
		case 'Q':
			q1x, q1y := seg.Args[0], seg.Args[1]
			ex, ey := seg.Args[2], seg.Args[3]
			out = append(out, raiseQuad(cx, cy, q1x, q1y, ex, ey))
			lastCtlX, lastCtlY = q1x, q1y
			cx, cy = ex, ey
		case 'T':
			q1x, q1y := cx, cy
			if lastCmd == 'Q' || lastCmd == 'T' {
				q1x = 2*cx - lastCtlX
				q1y = 2*cy - lastCtlY
			}
			ex, ey := seg.Args[0], seg.Args[1]
			out = append(out, raiseQuad(cx, cy, q1x, q1y, ex, ey))
			lastCtlX, lastCtlY = q1x, q1y
			cx, cy = ex, ey
		case 'A':
			curves := arcToCubics(cx, cy, seg.Args)
			out = append(out, curves...)
			if n := len(curves); n > 0 {
				last := curves[n-1].Args
				cx, cy = last[4], last[5]
			} else {
				cx, cy = seg.Args[5], seg.Args[6]
			}
		case 'Z':
			cx, cy = subX, subY
			out = append(out, Segment{Cmd: 'Z'})
		}
		lastCmd = seg.Cmd
	}
	return out
}

func raiseQuad(x0, y0, qx, qy, x1, y1 float64) Segment {
	return Segment{'C', []float64{
		x0 + 2.0/3.0*(qx-x0), y0 + 2.0/3.0*(qy-y0),
		x1 + 2.0/3.0*(qx-x1), y1 + 2.0/3.0*(qy-y1),
		x1, y1,
	}}
}

// arcToCubics converts one elliptical arc segment (SVG endpoint
// parameterization) to cubic curves, each spanning at most π/2.
func arcToCubics(x1, y1 float64, args []float64) []Segment {
	rx, ry := math.Abs(args[0]), math.Abs(args[1])
	phi := args[2] * math.Pi / 180
	largeArc := args[3] != 0
	sweep := args[4] != 0
	x2, y2 := args[5], args[6]

	if x1 == x2 && y1 == y2 {
		return nil
	}
	if rx == 0 || ry == 0 {
		return []Segment{{'L', []float64{x2, y2}}}
	}

	sinPhi, cosPhi := math.Sincos(phi)

	// Endpoint to center conversion per the SVG arc implementation
	// notes.
	dx := (x1 - x2) / 2
	dy := (y1 - y2) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	radicand := num / den
	if radicand < 0 {
		radicand = 0
	}
	coeff := math.Sqrt(radicand)
	if largeArc == sweep {
		coeff = -coeff
	}
	cxp := coeff * rx * y1p / ry
	cyp := -coeff * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta := theta2 - theta1
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n == 0 {
		n = 1
	}
	step := delta / float64(n)
	// Control-point distance for a cubic approximating a step-sized
	// elliptical arc.
	k := 4.0 / 3.0 * math.Tan(step/4)

	pointAt := func(theta float64) (x, y, dxdt, dydt float64) {
		sinT, cosT := math.Sincos(theta)
		x = cx + rx*cosT*cosPhi - ry*sinT*sinPhi
		y = cy + rx*cosT*sinPhi + ry*sinT*cosPhi
		dxdt = -rx*sinT*cosPhi - ry*cosT*sinPhi
		dydt = -rx*sinT*sinPhi + ry*cosT*cosPhi
		return x, y, dxdt, dydt
	}

	out := make([]Segment, 0, n)
	theta := theta1
	px, py, pdx, pdy := pointAt(theta)
	for i := 0; i < n; i++ {
		next := theta + step
		ex, ey, edx, edy := pointAt(next)
		out = append(out, Segment{'C', []float64{
			px + k*pdx, py + k*pdy,
			ex - k*edx, ey - k*edy,
			ex, ey,
		}})
		theta = next
		px, py, pdx, pdy = ex, ey, edx, edy
	}
	// Land exactly on the endpoint regardless of rounding.
	last := out[len(out)-1].Args
	last[4], last[5] = x2, y2
	return out
}
