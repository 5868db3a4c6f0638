package rough

// Line is a line segment between two points.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Rotate rotates both endpoints by degrees around center.
func (l Line) Rotate(center Point, degrees float64) Line {
	return Line{
		P0: l.P0.Rotate(center, degrees),
		P1: l.P1.Rotate(center, degrees),
	}
}

func rotateLines(lines []Line, center Point, degrees float64) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = l.Rotate(center, degrees)
	}
	return out
}
