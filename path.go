package rough

import (
	"fmt"

	"github.com/rough-gfx/rough/pathdata"
)

// PointsOnSVGPath samples an SVG path-data string into polyline point
// sets, one per subpath. Curved segments are flattened with tolerance; if
// distance is positive each set is additionally simplified with it as the
// epsilon and empty sets are dropped. The fill engine consumes these sets
// as polygons.
func PointsOnSVGPath(d string, tolerance, distance float64) ([][]Point, error) {
	segments, err := pathdata.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("parsing path %q: %w", d, err)
	}
	normalized := pathdata.Normalize(pathdata.Absolutize(segments))

	var sets [][]Point
	var current []Point
	var pending []Point
	var start Point

	flushCurve := func() {
		if len(pending) >= 4 {
			current = append(current, PointsOnBezierCurves(pending, tolerance, 0)...)
		}
		pending = nil
	}
	flushSet := func() {
		flushCurve()
		if len(current) > 0 {
			sets = append(sets, current)
			current = nil
		}
	}

	for _, seg := range normalized {
		switch seg.Cmd {
		case 'M':
			flushSet()
			start = Point{seg.Args[0], seg.Args[1]}
			current = append(current, start)
		case 'L':
			flushCurve()
			current = append(current, Point{seg.Args[0], seg.Args[1]})
		case 'C':
			if len(pending) == 0 {
				last := start
				if len(current) > 0 {
					last = current[len(current)-1]
				}
				pending = append(pending, last)
			}
			pending = append(pending,
				Point{seg.Args[0], seg.Args[1]},
				Point{seg.Args[2], seg.Args[3]},
				Point{seg.Args[4], seg.Args[5]},
			)
		case 'Z':
			flushCurve()
			current = append(current, start)
		default:
			return nil, fmt.Errorf("unexpected segment %q after normalization", string(seg.Cmd))
		}
	}
	flushSet()

	if distance <= 0 {
		return sets, nil
	}
	out := make([][]Point, 0, len(sets))
	for _, set := range sets {
		if simplified := Simplify(set, distance); len(simplified) > 0 {
			out = append(out, simplified)
		}
	}
	return out, nil
}
