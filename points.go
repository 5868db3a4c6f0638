package rough

import "math"

// maxSplitDepth bounds the adaptive subdivision in pointsOnSegment. A
// segment with NaN or otherwise degenerate control points never satisfies
// the flatness test, so recursion has to terminate on depth alone.
const maxSplitDepth = 24

// DistanceToSegmentSquared returns the squared distance from p to the line
// segment between v and w. A zero-length segment degenerates to the
// distance to v.
func DistanceToSegmentSquared(p, v, w Point) float64 {
	l2 := v.DistanceSquared(w)
	if l2 == 0 {
		return p.DistanceSquared(v)
	}
	t := ((p.X-v.X)*(w.X-v.X) + (p.Y-v.Y)*(w.Y-v.Y)) / l2
	t = math.Max(0, math.Min(1, t))
	return p.DistanceSquared(v.Lerp(w, t))
}

// Flatness estimates how far the cubic segment points[offset:offset+4]
// deviates from the straight line between its endpoints. The estimate is
// an upper bound on sixteen times the squared distance; it only has to be
// monotonic in the true flatness for the subdivision to converge.
func Flatness(points []Point, offset int) float64 {
	p1 := points[offset]
	p2 := points[offset+1]
	p3 := points[offset+2]
	p4 := points[offset+3]

	ux := 3*p2.X - 2*p1.X - p4.X
	uy := 3*p2.Y - 2*p1.Y - p4.Y
	vx := 3*p3.X - 2*p4.X - p1.X
	vy := 3*p3.Y - 2*p4.Y - p1.Y

	ux *= ux
	uy *= uy
	vx *= vx
	vy *= vy
	if ux < vx {
		ux = vx
	}
	if uy < vy {
		uy = vy
	}
	return ux + uy
}

func pointsOnSegment(points []Point, offset int, tolerance float64, depth int, out []Point) []Point {
	if depth < maxSplitDepth && Flatness(points, offset) >= tolerance {
		c := CubicBez{points[offset], points[offset+1], points[offset+2], points[offset+3]}
		left, right := c.Subdivide()
		out = pointsOnSegment([]Point{left.P0, left.P1, left.P2, left.P3}, 0, tolerance, depth+1, out)
		out = pointsOnSegment([]Point{right.P0, right.P1, right.P2, right.P3}, 0, tolerance, depth+1, out)
		return out
	}
	p0 := points[offset]
	if len(out) == 0 || out[len(out)-1].Distance(p0) > 1 {
		out = append(out, p0)
	}
	out = append(out, points[offset+3])
	return out
}

// PointsOnBezierCurves flattens a chain of cubic Bézier segments into a
// polyline. The chain shares endpoints, so its length is 3n+1 for n
// segments; trailing points that don't complete a segment are ignored.
// Smaller tolerances yield more points. If distance is positive the result
// is additionally simplified with it as the epsilon.
func PointsOnBezierCurves(points []Point, tolerance, distance float64) []Point {
	var out []Point
	for offset := 0; offset+3 < len(points); offset += 3 {
		out = pointsOnSegment(points, offset, tolerance, 0, out)
	}
	if distance > 0 {
		return Simplify(out, distance)
	}
	return out
}

// Simplify reduces a polyline with the Ramer-Douglas-Peucker algorithm.
// The endpoints always survive.
func Simplify(points []Point, distance float64) []Point {
	if len(points) == 0 {
		return nil
	}
	return simplifyPoints(points, 0, len(points), distance, nil)
}

func simplifyPoints(points []Point, start, end int, epsilon float64, out []Point) []Point {
	s := points[start]
	e := points[end-1]
	maxDistSq := 0.0
	maxIdx := start + 1
	for i := start + 1; i < end-1; i++ {
		distSq := DistanceToSegmentSquared(points[i], s, e)
		if distSq > maxDistSq {
			maxDistSq = distSq
			maxIdx = i
		}
	}
	if math.Sqrt(maxDistSq) > epsilon {
		out = simplifyPoints(points, start, maxIdx+1, epsilon, out)
		out = simplifyPoints(points, maxIdx, end, epsilon, out)
		return out
	}
	if len(out) == 0 {
		out = append(out, s)
	}
	out = append(out, e)
	return out
}

// CurveToBezier fits a chain of cubic Bézier segments through the given
// points, Catmull-Rom style. tightness 0 gives the classic rounding;
// tightness 1 degenerates to straight lines. The second return value is
// false when fewer than three points are given.
func CurveToBezier(points []Point, tightness float64) ([]Point, bool) {
	if len(points) < 3 {
		return nil, false
	}
	if len(points) == 3 {
		// Promote to four knots by doubling the last point, then fit
		// as usual.
		points = []Point{points[0], points[1], points[2], points[2]}
	}

	padded := make([]Point, 0, len(points)+2)
	padded = append(padded, points[0], points[0])
	padded = append(padded, points[1:]...)
	padded = append(padded, points[len(points)-1])

	s := 1 - tightness
	out := []Point{padded[0]}
	for i := 1; i+2 < len(padded); i++ {
		cur := padded[i]
		out = append(out,
			Point{
				X: cur.X + (s*padded[i+1].X-s*padded[i-1].X)/6,
				Y: cur.Y + (s*padded[i+1].Y-s*padded[i-1].Y)/6,
			},
			Point{
				X: padded[i+1].X + (s*padded[i].X-s*padded[i+2].X)/6,
				Y: padded[i+1].Y + (s*padded[i].Y-s*padded[i+2].Y)/6,
			},
			padded[i+1],
		)
	}
	return out, true
}
