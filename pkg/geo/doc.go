// Package geo provides immutable 3D points, vectors and unit-vectors, and the
// transformations that act on them: general affine transforms, frames of
// reference and projections.
//
// Matrices are column-major (see math3d.Matrix). A transformation is applied
// to any entity with Map; Compose chains transformations so that the first
// argument is applied first:
//
//	t := geo.Compose(geo.FromRotationX(math.Pi/2), geo.FromTranslation(10, 0, 0))
//	p := geo.Map(t, geo.NewPoint(0, 0, 1)) // rotate, then translate: (10, -1, 0)
//
// A Frame's direct matrix maps global coordinates to frame-local
// coordinates; its inverse matrix maps frame-local coordinates back to
// global ones.
//
// All values are immutable and safe for concurrent use.
package geo
