package rough

// OpKind identifies a single drawing instruction.
type OpKind uint8

const (
	// OpMove moves the pen. Data holds x, y.
	OpMove OpKind = iota
	// OpLineTo draws a straight line. Data holds x, y.
	OpLineTo
	// OpCubicTo draws a cubic Bézier curve. Data holds cp1x, cp1y, cp2x,
	// cp2y, x, y.
	OpCubicTo
)

func (k OpKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpLineTo:
		return "lineTo"
	case OpCubicTo:
		return "bcurveTo"
	default:
		return "unknown"
	}
}

// Op is one drawing instruction with its flat coordinate payload.
type Op struct {
	Kind OpKind
	Data []float64
}

// OpSetKind says how an operation list is meant to be rendered.
type OpSetKind uint8

const (
	// StrokePath is stroked with the stroke color and width.
	StrokePath OpSetKind = iota
	// FillPath is filled with the fill color.
	FillPath
	// FillSketch is stroked with the fill color at the fill weight; it
	// carries the hatch lines of patterned fills.
	FillSketch
)

func (k OpSetKind) String() string {
	switch k {
	case StrokePath:
		return "path"
	case FillPath:
		return "fillPath"
	case FillSketch:
		return "fillSketch"
	default:
		return "unknown"
	}
}

// OpSet is a renderable list of operations.
type OpSet struct {
	Kind OpSetKind
	Ops  []Op

	// Size is set for ellipse-derived sets and records the sketched
	// radii.
	Size *Point
	// Path is the source path data for sets built from an SVG path.
	Path string
}

// Drawable is the result of a Generator call: a shape tag, a snapshot of
// the options it was drawn with, and its operation sets. Fill sets precede
// stroke sets so strokes render on top.
type Drawable struct {
	Shape   string
	Options *Options
	Sets    []OpSet
}
