package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"github.com/rough-gfx/rough"
)

// scene is the top-level TOML document.
type scene struct {
	Width      float64      `toml:"width"`
	Height     float64      `toml:"height"`
	Background string       `toml:"background"`
	Options    shapeOptions `toml:"options"`
	Shapes     []sceneShape `toml:"shape"`
}

// shapeOptions is the subset of rough.Options exposed to scene files.
// Pointer fields distinguish "not set" from zero so per-shape tables can
// override only the keys they mention.
type shapeOptions struct {
	Roughness          *float64 `toml:"roughness"`
	Bowing             *float64 `toml:"bowing"`
	Stroke             *string  `toml:"stroke"`
	StrokeWidth        *float64 `toml:"stroke_width"`
	Fill               *string  `toml:"fill"`
	FillStyle          *string  `toml:"fill_style"`
	FillWeight         *float64 `toml:"fill_weight"`
	HachureAngle       *float64 `toml:"hachure_angle"`
	HachureGap         *float64 `toml:"hachure_gap"`
	CurveStepCount     *float64 `toml:"curve_step_count"`
	Simplification     *float64 `toml:"simplification"`
	Seed               *uint64  `toml:"seed"`
	DisableMultiStroke *bool    `toml:"disable_multi_stroke"`
	PreserveVertices   *bool    `toml:"preserve_vertices"`
}

type sceneShape struct {
	Kind     string       `toml:"kind"`
	X        float64      `toml:"x"`
	Y        float64      `toml:"y"`
	X2       float64      `toml:"x2"`
	Y2       float64      `toml:"y2"`
	Width    float64      `toml:"width"`
	Height   float64      `toml:"height"`
	Diameter float64      `toml:"diameter"`
	Start    float64      `toml:"start"`
	Stop     float64      `toml:"stop"`
	Closed   bool         `toml:"closed"`
	D        string       `toml:"d"`
	Points   [][]float64  `toml:"points"`
	Options  shapeOptions `toml:"options"`
}

func loadScene(path string) (*scene, error) {
	var s scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decoding scene %s: %w", path, err)
	}
	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 600
	}
	return &s, nil
}

func (so *shapeOptions) apply(o *rough.Options) error {
	if so.Roughness != nil {
		o.Roughness = *so.Roughness
	}
	if so.Bowing != nil {
		o.Bowing = *so.Bowing
	}
	if so.Stroke != nil {
		c, err := parseColor(*so.Stroke)
		if err != nil {
			return err
		}
		o.Stroke = c
	}
	if so.StrokeWidth != nil {
		o.StrokeWidth = *so.StrokeWidth
	}
	if so.Fill != nil {
		c, err := parseColor(*so.Fill)
		if err != nil {
			return err
		}
		o.Fill = c
	}
	if so.FillStyle != nil {
		style, err := parseFillStyle(*so.FillStyle)
		if err != nil {
			return err
		}
		o.FillStyle = style
	}
	if so.FillWeight != nil {
		o.FillWeight = *so.FillWeight
	}
	if so.HachureAngle != nil {
		o.HachureAngle = *so.HachureAngle
	}
	if so.HachureGap != nil {
		o.HachureGap = *so.HachureGap
	}
	if so.CurveStepCount != nil {
		o.CurveStepCount = *so.CurveStepCount
	}
	if so.Simplification != nil {
		o.Simplification = *so.Simplification
	}
	if so.Seed != nil {
		o.Seed = *so.Seed
	}
	if so.DisableMultiStroke != nil {
		o.DisableMultiStroke = *so.DisableMultiStroke
	}
	if so.PreserveVertices != nil {
		o.PreserveVertices = *so.PreserveVertices
	}
	return nil
}

func (s *sceneShape) drawable(gen *rough.Generator, base *rough.Options) (*rough.Drawable, error) {
	o := *base
	if err := s.Options.apply(&o); err != nil {
		return nil, fmt.Errorf("shape %q: %w", s.Kind, err)
	}
	switch s.Kind {
	case "line":
		return gen.Line(s.X, s.Y, s.X2, s.Y2, &o), nil
	case "rectangle":
		return gen.Rectangle(s.X, s.Y, s.Width, s.Height, &o), nil
	case "ellipse":
		return gen.Ellipse(s.X, s.Y, s.Width, s.Height, &o), nil
	case "circle":
		return gen.Circle(s.X, s.Y, s.Diameter, &o), nil
	case "arc":
		return gen.Arc(s.X, s.Y, s.Width, s.Height, s.Start, s.Stop, s.Closed, &o), nil
	case "polygon":
		return gen.Polygon(toPoints(s.Points), &o), nil
	case "linearPath":
		return gen.LinearPath(toPoints(s.Points), &o), nil
	case "curve":
		return gen.Curve(toPoints(s.Points), &o), nil
	case "path":
		return gen.Path(s.D, &o)
	default:
		return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
	}
}

func toPoints(raw [][]float64) []rough.Point {
	points := make([]rough.Point, 0, len(raw))
	for _, p := range raw {
		if len(p) >= 2 {
			points = append(points, rough.Pt(p[0], p[1]))
		}
	}
	return points
}

func parseFillStyle(name string) (rough.FillStyle, error) {
	switch name {
	case "hachure", "":
		return rough.FillHachure, nil
	case "solid":
		return rough.FillSolid, nil
	case "zigzag":
		return rough.FillZigzag, nil
	case "cross-hatch":
		return rough.FillCrossHatch, nil
	case "dots":
		return rough.FillDots, nil
	case "dashed":
		return rough.FillDashed, nil
	case "zigzag-line":
		return rough.FillZigzagLine, nil
	}
	return rough.FillHachure, fmt.Errorf("unknown fill style %q", name)
}

// parseColor accepts SVG color names, #rgb/#rrggbb hex, and "none".
func parseColor(name string) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return nil, nil
	}
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

func parseHexColor(s string) (color.Color, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
