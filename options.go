package rough

import (
	"image/color"
	"math/rand"
	"slices"
)

// FillStyle selects how closed shapes are filled.
type FillStyle uint8

const (
	// FillHachure fills with parallel sketchy lines.
	FillHachure FillStyle = iota
	// FillSolid fills with a jittered solid polygon.
	FillSolid
	// FillZigzag fills with connected zigzag lines.
	FillZigzag
	// FillCrossHatch fills with two hachure passes 90° apart.
	FillCrossHatch
	// FillDots fills with small sketched dots.
	FillDots
	// FillDashed fills with dashed hachure lines.
	FillDashed
	// FillZigzagLine fills hachure lines drawn as tight zigzags.
	FillZigzagLine
)

func (s FillStyle) String() string {
	switch s {
	case FillHachure:
		return "hachure"
	case FillSolid:
		return "solid"
	case FillZigzag:
		return "zigzag"
	case FillCrossHatch:
		return "cross-hatch"
	case FillDots:
		return "dots"
	case FillDashed:
		return "dashed"
	case FillZigzagLine:
		return "zigzag-line"
	default:
		return "unknown"
	}
}

// LineCap is the stroke cap style adapters should use.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the stroke join style adapters should use.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Options control the look of generated shapes. The zero value is not
// usable; start from NewOptions and change fields from there.
//
// Several numeric fields treat negative values as "unset": FillWeight
// falls back to half the stroke width, HachureGap to four times the
// stroke width, DashOffset and DashGap to the hachure gap, ZigzagOffset
// to the hachure gap, and FixedDecimalPlaceDigits disables rounding.
type Options struct {
	// MaxRandomnessOffset is the largest jitter, in coordinate units,
	// applied to any single point.
	MaxRandomnessOffset float64
	// Roughness scales all jitter. 0 draws clean shapes, 1 is the
	// default sketchiness, values much above 3 dissolve the shape.
	Roughness float64
	// Bowing scales how far line midpoints bow away from the straight
	// connection.
	Bowing float64

	Stroke      color.Color
	StrokeWidth float64

	// CurveFitting is the fraction of the ideal radius ellipse points
	// are allowed to wander from. 1 fits exactly, 0.95 is the default.
	CurveFitting   float64
	CurveTightness float64
	CurveStepCount float64

	// Fill enables filling when non-nil.
	Fill       color.Color
	FillStyle  FillStyle
	FillWeight float64

	HachureAngle float64
	HachureGap   float64

	// Simplification below 1 reduces the point count of sketched SVG
	// paths to that fraction.
	Simplification float64

	DashOffset   float64
	DashGap      float64
	ZigzagOffset float64

	// Seed makes output reproducible. 0 picks a random seed.
	Seed uint64

	StrokeLineDash       []float64
	StrokeLineDashOffset float64
	FillLineDash         []float64
	FillLineDashOffset   float64

	DisableMultiStroke     bool
	DisableMultiStrokeFill bool
	PreserveVertices       bool

	// FixedDecimalPlaceDigits rounds path-data output to that many
	// decimals when non-negative.
	FixedDecimalPlaceDigits int

	LineCap  LineCap
	LineJoin LineJoin

	rng minstd
}

// NewOptions returns options with the default style.
func NewOptions() *Options {
	return &Options{
		MaxRandomnessOffset:     2,
		Roughness:               1,
		Bowing:                  2,
		Stroke:                  color.Black,
		StrokeWidth:             1,
		CurveFitting:            0.95,
		CurveTightness:          0,
		CurveStepCount:          9,
		FillStyle:               FillHachure,
		FillWeight:              -1,
		HachureAngle:            -41,
		HachureGap:              -1,
		Simplification:          1,
		DashOffset:              -1,
		DashGap:                 -1,
		ZigzagOffset:            -1,
		Seed:                    345,
		FixedDecimalPlaceDigits: -1,
	}
}

// clone copies the options including the position of the jitter stream.
func (o *Options) clone() *Options {
	c := *o
	c.StrokeLineDash = slices.Clone(o.StrokeLineDash)
	c.FillLineDash = slices.Clone(o.FillLineDash)
	return &c
}

// cloneAlterSeed clones with the seed advanced by one. If the stream is
// already materialized the clone continues it; the altered seed only
// matters for copies that have not drawn yet.
func (o *Options) cloneAlterSeed() *Options {
	c := o.clone()
	c.Seed = o.Seed + 1
	return c
}

// minstd is the Lehmer/MINSTD generator rough.js uses, kept as a plain
// word of state so options values clone their stream position.
type minstd uint64

// random returns the next jitter sample in [0, 1). The stream is seeded
// lazily so that cloned options replay the same sequence.
func (o *Options) random() float64 {
	if o.rng == 0 {
		seed := o.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		state := seed % 2147483647
		if state == 0 {
			state = 1
		}
		o.rng = minstd(state)
	}
	o.rng = o.rng * 48271 % 2147483647
	return float64(o.rng) / 2147483647
}
