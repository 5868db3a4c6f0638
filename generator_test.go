package rough

import (
	"image/color"
	"strings"
	"testing"
)

func TestGeneratorLine(t *testing.T) {
	gen := NewGenerator(nil)
	d := gen.Line(0, 0, 100, 50, nil)
	if d.Shape != "line" {
		t.Errorf("shape = %q, want %q", d.Shape, "line")
	}
	if len(d.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(d.Sets))
	}
	if d.Sets[0].Kind != StrokePath {
		t.Errorf("kind = %v, want %v", d.Sets[0].Kind, StrokePath)
	}
}

func TestFillPrecedesStroke(t *testing.T) {
	o := NewOptions()
	o.Fill = color.NRGBA{R: 0xff, A: 0xff}
	gen := NewGenerator(o)
	d := gen.Rectangle(0, 0, 100, 100, nil)
	if len(d.Sets) != 2 {
		t.Fatalf("got %d sets, want 2", len(d.Sets))
	}
	if d.Sets[0].Kind != FillSketch {
		t.Errorf("first set = %v, want %v", d.Sets[0].Kind, FillSketch)
	}
	if d.Sets[1].Kind != StrokePath {
		t.Errorf("second set = %v, want %v", d.Sets[1].Kind, StrokePath)
	}
}

func TestSolidFillRectangle(t *testing.T) {
	o := NewOptions()
	o.Fill = color.NRGBA{B: 0xff, A: 0xff}
	o.FillStyle = FillSolid
	gen := NewGenerator(o)
	d := gen.Rectangle(0, 0, 100, 100, nil)
	if d.Sets[0].Kind != FillPath {
		t.Fatalf("first set = %v, want %v", d.Sets[0].Kind, FillPath)
	}
	if got := len(d.Sets[0].Ops); got != 4 {
		t.Errorf("solid fill has %d ops, want 4", got)
	}
}

func TestCircleShape(t *testing.T) {
	gen := NewGenerator(nil)
	d := gen.Circle(10, 10, 40, nil)
	if d.Shape != "circle" {
		t.Errorf("shape = %q, want %q", d.Shape, "circle")
	}
	if d.Sets[0].Size == nil {
		t.Error("circle set has no size")
	}
}

func TestNoStroke(t *testing.T) {
	o := NewOptions()
	o.Stroke = nil
	o.Fill = color.NRGBA{G: 0x80, A: 0xff}
	gen := NewGenerator(o)
	d := gen.Polygon([]Point{{0, 0}, {50, 0}, {25, 40}}, nil)
	if len(d.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(d.Sets))
	}
	if d.Sets[0].Kind != FillSketch {
		t.Errorf("set = %v, want %v", d.Sets[0].Kind, FillSketch)
	}
}

func TestArcFilledWhenClosed(t *testing.T) {
	o := NewOptions()
	o.Fill = color.NRGBA{R: 0x80, A: 0xff}
	gen := NewGenerator(o)

	open := gen.Arc(0, 0, 100, 100, 0, 2, false, nil)
	if len(open.Sets) != 1 {
		t.Errorf("open arc has %d sets, want 1", len(open.Sets))
	}
	closed := gen.Arc(0, 0, 100, 100, 0, 2, true, nil)
	if len(closed.Sets) != 2 {
		t.Fatalf("closed arc has %d sets, want 2", len(closed.Sets))
	}
	if closed.Sets[0].Kind != FillSketch {
		t.Errorf("closed arc fill = %v, want %v", closed.Sets[0].Kind, FillSketch)
	}
}

func TestCurveFill(t *testing.T) {
	o := NewOptions()
	o.Fill = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	gen := NewGenerator(o)
	d := gen.Curve([]Point{{0, 0}, {50, 80}, {120, 30}, {200, 110}}, nil)
	if len(d.Sets) != 2 {
		t.Fatalf("got %d sets, want 2", len(d.Sets))
	}
	if d.Sets[0].Kind != FillSketch {
		t.Errorf("fill set = %v, want %v", d.Sets[0].Kind, FillSketch)
	}
}

func TestBezierFillSampleDistance(t *testing.T) {
	o := NewOptions()
	o.Roughness = 0
	o.Stroke = nil
	o.Fill = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	o.FillStyle = FillSolid
	gen := NewGenerator(o)

	c := CubicBez{Pt(0, 0), Pt(60, 120), Pt(180, 120), Pt(240, 0)}
	d := gen.BezierCubic(c, nil)
	if len(d.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(d.Sets))
	}

	// With roughness 0 the fill vertices carry no jitter, so they must
	// equal the curve samples at the roughness-derived epsilon.
	want := PointsOnBezierCurves([]Point{c.P0, c.P1, c.P2, c.P3}, 10, 1+o.Roughness/2)
	ops := d.Sets[0].Ops
	if len(ops) != len(want) {
		t.Fatalf("fill has %d vertices, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if got := Pt(op.Data[0], op.Data[1]); got != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestCurveFillSampleDistance(t *testing.T) {
	o := NewOptions()
	o.Roughness = 0
	o.Stroke = nil
	o.Fill = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	o.FillStyle = FillSolid
	gen := NewGenerator(o)

	points := []Point{{0, 0}, {50, 80}, {120, 30}, {200, 110}}
	d := gen.Curve(points, nil)
	if len(d.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(d.Sets))
	}

	bcurve, ok := CurveToBezier(points, 0)
	if !ok {
		t.Fatal("CurveToBezier returned not ok")
	}
	want := PointsOnBezierCurves(bcurve, 10, 1+o.Roughness/2)
	ops := d.Sets[0].Ops
	if len(ops) != len(want) {
		t.Fatalf("fill has %d vertices, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if got := Pt(op.Data[0], op.Data[1]); got != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestPath(t *testing.T) {
	gen := NewGenerator(nil)
	d, err := gen.Path("M0 0 L50 0 L50 50 Z", nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.Shape != "path" {
		t.Errorf("shape = %q, want %q", d.Shape, "path")
	}
	if len(d.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(d.Sets))
	}
	if d.Sets[0].Path == "" {
		t.Error("source path not recorded")
	}
}

func TestPathError(t *testing.T) {
	gen := NewGenerator(nil)
	if _, err := gen.Path("M0 0 #oops", nil); err == nil {
		t.Error("expected parse error")
	}
}

func TestPathSimplified(t *testing.T) {
	o := NewOptions()
	o.Simplification = 0.5
	gen := NewGenerator(o)
	d, err := gen.Path("M0 0 C20 40 60 40 80 0 L80 40 L0 40 Z", nil)
	if err != nil {
		t.Fatal(err)
	}
	// Simplified paths are stroked from sample points, which never carry
	// the source path string.
	for _, set := range d.Sets {
		if set.Path != "" {
			t.Error("simplified stroke recorded a source path")
		}
	}
}

func TestToPaths(t *testing.T) {
	gen := NewGenerator(nil)
	d := gen.Line(0, 0, 100, 0, nil)
	paths := d.ToPaths()
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	p := paths[0]
	if p.Stroke != color.Black {
		t.Errorf("stroke = %v, want black", p.Stroke)
	}
	if p.StrokeWidth != 1 {
		t.Errorf("stroke width = %v, want 1", p.StrokeWidth)
	}
	if p.Fill != nil {
		t.Errorf("fill = %v, want nil", p.Fill)
	}
	if !strings.HasPrefix(p.D, "M") {
		t.Errorf("path data %q does not start with a move", p.D)
	}
}

func TestToPathsFillSketch(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	o := NewOptions()
	o.Fill = red
	gen := NewGenerator(o)
	paths := gen.Rectangle(0, 0, 50, 50, nil).ToPaths()
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	sketch := paths[0]
	if sketch.Stroke != red {
		t.Errorf("sketch stroke = %v, want fill color", sketch.Stroke)
	}
	if sketch.StrokeWidth != 0.5 {
		t.Errorf("sketch width = %v, want strokeWidth/2", sketch.StrokeWidth)
	}
	if sketch.Fill != nil {
		t.Errorf("sketch fill = %v, want nil", sketch.Fill)
	}
}

func TestOpsToPathFixedDecimals(t *testing.T) {
	set := OpSet{Kind: StrokePath, Ops: []Op{
		{OpMove, []float64{1.23456, 2}},
		{OpLineTo, []float64{3.987654, 4.5}},
	}}
	got := opsToPath(set, 2)
	want := "M1.23 2 L3.99 4.5"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
