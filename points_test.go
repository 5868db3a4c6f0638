package rough

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func approxEqual(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestDistanceToSegmentSquared(t *testing.T) {
	got := DistanceToSegmentSquared(Pt(0, 1), Pt(-1, 0), Pt(1, 0))
	if got != 1 {
		t.Errorf("got %v, want 1", got)
	}

	// Zero-length segment degenerates to point distance.
	got = DistanceToSegmentSquared(Pt(3, 4), Pt(0, 0), Pt(0, 0))
	if got != 25 {
		t.Errorf("degenerate segment: got %v, want 25", got)
	}

	// Projection beyond the segment end clamps to the endpoint.
	got = DistanceToSegmentSquared(Pt(2, 1), Pt(0, 0), Pt(1, 0))
	if got != 2 {
		t.Errorf("clamped projection: got %v, want 2", got)
	}
}

func TestFlatness(t *testing.T) {
	points := []Point{{0, 1}, {1, 3}, {2, 3}, {3, 4}}
	if got := Flatness(points, 0); got != 9 {
		t.Errorf("got %v, want 9", got)
	}
}

func TestFlatnessScaling(t *testing.T) {
	points := []Point{{0, 1}, {1, 3}, {2, 3}, {3, 4}}
	base := Flatness(points, 0)
	for _, k := range []float64{2, 4, 10} {
		scaled := make([]Point, len(points))
		for i, p := range points {
			scaled[i] = Pt(p.X*k, p.Y*k)
		}
		got := Flatness(scaled, 0)
		want := base * k * k
		if math.Abs(got-want) > 1e-9*want {
			t.Errorf("scale %v: got %v, want %v", k, got, want)
		}
	}
}

func TestPointsOnBezierCurves(t *testing.T) {
	curve := []Point{{70, 240}, {145, 60}, {275, 90}, {300, 230}}
	points := PointsOnBezierCurves(curve, 0.7, 0)

	if len(points) != 33 {
		t.Errorf("got %d points, want 33", len(points))
	}
	if points[0] != curve[0] {
		t.Errorf("first point %v, want %v", points[0], curve[0])
	}
	if points[len(points)-1] != curve[3] {
		t.Errorf("last point %v, want %v", points[len(points)-1], curve[3])
	}

	// Coarser tolerance yields fewer points.
	coarse := PointsOnBezierCurves(curve, 10, 0)
	if len(coarse) >= len(points) {
		t.Errorf("tolerance 10 gave %d points, tolerance 0.7 gave %d", len(coarse), len(points))
	}
}

func TestPointsOnBezierCurvesFlatSegment(t *testing.T) {
	// A segment that is already a straight line flattens to its
	// endpoints.
	curve := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	points := PointsOnBezierCurves(curve, 0.1, 0)
	want := []Point{{0, 0}, {3, 0}}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
}

func TestSimplify(t *testing.T) {
	points := []Point{{0, 0}, {1, 0.01}, {2, 0}, {3, 0.02}, {4, 0}}
	got := Simplify(points, 0.1)
	want := []Point{{0, 0}, {4, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected simplification (-want +got):\n%s", diff)
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	curve := []Point{{70, 240}, {145, 60}, {275, 90}, {300, 230}}
	points := PointsOnBezierCurves(curve, 0.2, 0)

	once := Simplify(points, 1.5)
	twice := Simplify(once, 1.5)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("simplify not idempotent (-once +twice):\n%s", diff)
	}
	if once[0] != points[0] || once[len(once)-1] != points[len(points)-1] {
		t.Error("simplify did not preserve endpoints")
	}
}

func TestCurveToBezier(t *testing.T) {
	points := []Point{{20, 240}, {95, 69}, {225, 90}, {250, 180}, {290, 220}, {380, 80}}
	got, ok := CurveToBezier(points, 0)
	if !ok {
		t.Fatal("CurveToBezier returned not ok")
	}
	if len(got) != 16 {
		t.Fatalf("got %d points, want 16", len(got))
	}
	if !approxEqual(got[1], Pt(32.5, 211.5)) {
		t.Errorf("got[1] = %v, want (32.5, 211.5)", got[1])
	}
	if !approxEqual(got[2], Pt(60.833333333333336, 94)) {
		t.Errorf("got[2] = %v, want (60.8333..., 94)", got[2])
	}
	// Every third point interpolates the input.
	for i, p := range points {
		if got[i*3] != p {
			t.Errorf("got[%d] = %v, want %v", i*3, got[i*3], p)
		}
	}
}

func TestCurveToBezierSmallInputs(t *testing.T) {
	if _, ok := CurveToBezier([]Point{{0, 0}, {1, 1}}, 0); ok {
		t.Error("expected not ok for 2 points")
	}

	// Three knots are promoted by doubling the last point and fitted
	// like any other input, not passed through as control points.
	got, ok := CurveToBezier([]Point{{0, 0}, {1, 1}, {2, 0}}, 0)
	if !ok {
		t.Fatal("expected ok for 3 points")
	}
	want := []Point{
		{0, 0},
		{1.0 / 6.0, 1.0 / 6.0},
		{2.0 / 3.0, 1},
		{1, 1},
		{4.0 / 3.0, 1},
		{11.0 / 6.0, 1.0 / 6.0},
		{2, 0},
		{13.0 / 6.0, -1.0 / 6.0},
		{2, 0},
		{2, 0},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected chain (-want +got):\n%s", diff)
	}
	promoted, ok := CurveToBezier([]Point{{0, 0}, {1, 1}, {2, 0}, {2, 0}}, 0)
	if !ok {
		t.Fatal("expected ok for promoted input")
	}
	if diff := cmp.Diff(promoted, got); diff != "" {
		t.Errorf("3-point fit differs from its promoted form (-promoted +got):\n%s", diff)
	}
}

func TestSimplifyZeroEpsilon(t *testing.T) {
	// With epsilon 0 every point off the chord survives, exercising
	// the recursion on interior index ranges.
	points := []Point{{0, 0}, {1, 2}, {2, 3}, {3, 2}, {4, 0}}
	got := Simplify(points, 0)
	if diff := cmp.Diff(points, got); diff != "" {
		t.Errorf("unexpected simplification (-want +got):\n%s", diff)
	}
}
