package rough

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Raise raises the quadratic segment to an equivalent cubic one.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// Subdivide splits the segment at t = 0.5 into two halves that together
// trace the same curve.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	q1 := c.P0.Midpoint(c.P1)
	q2 := c.P1.Midpoint(c.P2)
	q3 := c.P2.Midpoint(c.P3)
	r1 := q1.Midpoint(q2)
	r2 := q2.Midpoint(q3)
	m := r1.Midpoint(r2)
	return CubicBez{c.P0, q1, r1, m}, CubicBez{m, r2, q3, c.P3}
}
