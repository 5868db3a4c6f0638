// Package rough generates hand-drawn looking ("sketchy") vector graphics
// from geometric primitives. It was designed for applications that want the
// informal look of a whiteboard or pencil sketch while keeping resolution
// independence.
//
// # Rough
//
// This package is a manual, idiomatic Go implementation of the algorithms
// popularized by [rough.js] and its ports. Shapes are not drawn directly;
// instead every primitive is turned into an abstract list of path
// operations that a thin adapter replays against a concrete surface. See
// the canvas subpackage for adapters targeting raster images, PDF pages,
// and SVG documents.
//
// # Generating shapes
//
// [Generator] is the entry point. Its methods take plain coordinates or
// [Point] slices together with [Options] and return a [Drawable]:
//
//	gen := rough.NewGenerator(nil)
//	d := gen.Rectangle(10, 10, 80, 40, nil)
//
// A Drawable holds up to three [OpSet] values: an optional fill set
// followed by the stroke set. Fill sets come first so that strokes render
// on top. OpSet values are immutable once produced and consist of [Op]
// drawing instructions (move, line, cubic Bézier).
//
// # Randomness and determinism
//
// The sketchy look comes from bounded pseudo-random jitter applied to
// every coordinate. The jitter stream is seeded from [Options].Seed and
// materialized lazily on first use; two draw calls with the same geometry
// and the same options value produce bit-identical operation lists. The
// stream is owned by the options value, never global.
//
// # Curve sampling
//
// The package also exposes the curve utilities the fill engine is built
// on: adaptive flattening of cubic Bézier chains ([PointsOnBezierCurves]),
// Ramer–Douglas–Peucker simplification ([Simplify]), and the inverse
// operation of fitting a Bézier chain through points ([CurveToBezier]).
//
// # Filling
//
// Closed shapes can be filled with one of seven styles selected by
// [FillStyle]: solid, hachure, cross-hatch, zigzag, zigzag-line, dots, and
// dashed. All patterned styles derive from a single scanline computation,
// [PolygonHachureLines], which rotates the polygons so the hatch direction
// becomes horizontal, sweeps an active-edge table, and rotates the
// resulting lines back.
//
// [rough.js]: https://roughjs.com
package rough
