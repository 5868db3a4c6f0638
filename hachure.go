package rough

import (
	"math"
	"sort"
)

type edgeEntry struct {
	ymin   float64
	ymax   float64
	x      float64
	islope float64
}

// PolygonHachureLines computes the hatch lines covering a set of polygons
// at the hachure angle and gap from o. All patterned fill styles are built
// on these lines. The input polygons are not modified.
func PolygonHachureLines(polygons [][]Point, o *Options) []Line {
	angle := o.HachureAngle + 90
	gap := o.HachureGap
	if gap < 0 {
		gap = o.StrokeWidth * 4
	}
	gap = math.Max(gap, 0.1)

	rotationCenter := Point{}
	if angle != 0 {
		rotated := make([][]Point, len(polygons))
		for i, polygon := range polygons {
			rotated[i] = rotatePoints(polygon, rotationCenter, angle)
		}
		polygons = rotated
	}
	lines := straightHachureLines(polygons, gap)
	if angle != 0 {
		lines = rotateLines(lines, rotationCenter, -angle)
	}
	return lines
}

// straightHachureLines sweeps horizontal scanlines spaced gap apart over
// the polygons, pairing active edges even-odd.
func straightHachureLines(polygons [][]Point, gap float64) []Line {
	var rings [][]Point
	for _, polygon := range polygons {
		vertices := make([]Point, len(polygon))
		copy(vertices, polygon)
		if len(vertices) > 0 && vertices[0] != vertices[len(vertices)-1] {
			vertices = append(vertices, vertices[0])
		}
		if len(vertices) > 2 {
			rings = append(rings, vertices)
		}
	}

	gap = math.Max(gap, 0.1)
	var edges []edgeEntry
	for _, vertices := range rings {
		for i := 0; i < len(vertices)-1; i++ {
			p1 := vertices[i]
			p2 := vertices[i+1]
			if p1.Y == p2.Y {
				continue
			}
			ymin := math.Min(p1.Y, p2.Y)
			x := p1.X
			if ymin != p1.Y {
				x = p2.X
			}
			edges = append(edges, edgeEntry{
				ymin:   ymin,
				ymax:   math.Max(p1.Y, p2.Y),
				x:      x,
				islope: (p2.X - p1.X) / (p2.Y - p1.Y),
			})
		}
	}
	if len(edges) == 0 {
		return nil
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.ymin != b.ymin {
			return a.ymin < b.ymin
		}
		if a.x != b.x {
			return a.x < b.x
		}
		return a.ymax < b.ymax
	})

	var lines []Line
	var active []*edgeEntry
	y := edges[0].ymin
	for len(active) > 0 || len(edges) > 0 {
		if len(edges) > 0 {
			ix := -1
			for i := range edges {
				if edges[i].ymin > y {
					break
				}
				ix = i
			}
			for i := 0; i <= ix; i++ {
				edge := edges[i]
				active = append(active, &edge)
			}
			edges = edges[ix+1:]
		}
		filtered := active[:0]
		for _, e := range active {
			if e.ymax > y {
				filtered = append(filtered, e)
			}
		}
		active = filtered
		sort.Slice(active, func(i, j int) bool {
			return active[i].x < active[j].x
		})
		if len(active) > 1 {
			for i := 0; i+1 < len(active); i += 2 {
				lines = append(lines, Line{
					P0: Point{active[i].x, y},
					P1: Point{active[i+1].x, y},
				})
			}
		}
		y += gap
		for _, e := range active {
			e.x += gap * e.islope
		}
	}
	return lines
}
