package pathdata

// Absolutize converts all segments to absolute coordinates. The returned
// segments use upper-case commands only.
func Absolutize(segments []Segment) []Segment {
	var cx, cy, subX, subY float64
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		switch seg.Cmd {
		case 'M':
			cx, cy = seg.Args[0], seg.Args[1]
			subX, subY = cx, cy
			out = append(out, Segment{'M', []float64{cx, cy}})
		case 'm':
			cx += seg.Args[0]
			cy += seg.Args[1]
			subX, subY = cx, cy
			out = append(out, Segment{'M', []float64{cx, cy}})
		case 'L':
			cx, cy = seg.Args[0], seg.Args[1]
			out = append(out, Segment{'L', []float64{cx, cy}})
		case 'l':
			cx += seg.Args[0]
			cy += seg.Args[1]
			out = append(out, Segment{'L', []float64{cx, cy}})
		case 'H':
			cx = seg.Args[0]
			out = append(out, Segment{'H', []float64{cx}})
		case 'h':
			cx += seg.Args[0]
			out = append(out, Segment{'H', []float64{cx}})
		case 'V':
			cy = seg.Args[0]
			out = append(out, Segment{'V', []float64{cy}})
		case 'v':
			cy += seg.Args[0]
			out = append(out, Segment{'V', []float64{cy}})
		case 'C':
			cx, cy = seg.Args[4], seg.Args[5]
			out = append(out, Segment{'C', append([]float64(nil), seg.Args...)})
		case 'c':
			abs := []float64{
				seg.Args[0] + cx, seg.Args[1] + cy,
				seg.Args[2] + cx, seg.Args[3] + cy,
				seg.Args[4] + cx, seg.Args[5] + cy,
			}
			cx, cy = abs[4], abs[5]
			out = append(out, Segment{'C', abs})
		case 'S':
			cx, cy = seg.Args[2], seg.Args[3]
			out = append(out, Segment{'S', append([]float64(nil), seg.Args...)})
		case 's':
			abs := []float64{
				seg.Args[0] + cx, seg.Args[1] + cy,
				seg.Args[2] + cx, seg.Args[3] + cy,
			}
			cx, cy = abs[2], abs[3]
			out = append(out, Segment{'S', abs})
		case 'Q':
			cx, cy = seg.Args[2], seg.Args[3]
			out = append(out, Segment{'Q', append([]float64(nil), seg.Args...)})
		case 'q':
			abs := []float64{
				seg.Args[0] + cx, seg.Args[1] + cy,
				seg.Args[2] + cx, seg.Args[3] + cy,
			}
			cx, cy = abs[2], abs[3]
			out = append(out, Segment{'Q', abs})
		case 'T':
			cx, cy = seg.Args[0], seg.Args[1]
			out = append(out, Segment{'T', []float64{cx, cy}})
		case 't':
			cx += seg.Args[0]
			cy += seg.Args[1]
			out = append(out, Segment{'T', []float64{cx, cy}})
		case 'A':
			cx, cy = seg.Args[5], seg.Args[6]
			out = append(out, Segment{'A', append([]float64(nil), seg.Args...)})
		case 'a':
			abs := []float64{
				seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3], seg.Args[4],
				seg.Args[5] + cx, seg.Args[6] + cy,
			}
			cx, cy = abs[5], abs[6]
			out = append(out, Segment{'A', abs})
		case 'Z', 'z':
			cx, cy = subX, subY
			out = append(out, Segment{Cmd: 'Z'})
		}
	}
	return out
}
