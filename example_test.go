package rough_test

import (
	"fmt"

	"github.com/rough-gfx/rough"
)

func ExampleGenerator_Line() {
	gen := rough.NewGenerator(nil)
	d := gen.Line(0, 0, 100, 0, nil)
	fmt.Println(d.Shape, len(d.Sets), d.Sets[0].Kind, len(d.Sets[0].Ops))
	// Output: line 1 path 4
}

func ExampleGenerator_Rectangle() {
	o := rough.NewOptions()
	o.Roughness = 0
	o.PreserveVertices = true
	gen := rough.NewGenerator(o)
	d := gen.Rectangle(10, 10, 20, 20, nil)
	for _, set := range d.Sets {
		fmt.Println(set.Kind, len(set.Ops))
	}
	// Output: path 16
}

func ExamplePointsOnBezierCurves() {
	curve := []rough.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	points := rough.PointsOnBezierCurves(curve, 0.1, 0)
	fmt.Println(points)
	// Output: [(0, 0) (3, 0)]
}
