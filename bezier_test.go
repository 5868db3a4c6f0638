package rough

import "testing"

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(30, 60), Pt(60, 0)}
	c := q.Raise()
	if c.P0 != q.P0 || c.P3 != q.P2 {
		t.Errorf("raise moved the endpoints: %v, %v", c.P0, c.P3)
	}
	if !approxEqual(c.P1, Pt(20, 40)) {
		t.Errorf("P1 = %v, want (20, 40)", c.P1)
	}
	if !approxEqual(c.P2, Pt(40, 40)) {
		t.Errorf("P2 = %v, want (40, 40)", c.P2)
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 40), Pt(50, 40), Pt(60, 0)}
	left, right := c.Subdivide()
	if left.P0 != c.P0 {
		t.Errorf("left start = %v, want %v", left.P0, c.P0)
	}
	if right.P3 != c.P3 {
		t.Errorf("right end = %v, want %v", right.P3, c.P3)
	}
	if left.P3 != right.P0 {
		t.Errorf("halves do not join: %v vs %v", left.P3, right.P0)
	}
	// The join is the de Casteljau evaluation at t = 0.5.
	want := Pt(30, 30)
	if !approxEqual(left.P3, want) {
		t.Errorf("midpoint = %v, want %v", left.P3, want)
	}
}
