package geo

import (
	"fmt"
	"math"

	"github.com/taigrr/geopro/pkg/math3d"
)

// Point is a location in 3D space. Its homogeneous coordinates always have w == 1.
type Point struct {
	c math3d.HCoords
}

// NewPoint creates a new Point.
func NewPoint(x, y, z float64) Point {
	return Point{math3d.H(x, y, z, 1)}
}

// NewPointW creates a Point from homogeneous coordinates, dividing x, y and z by w.
// A zero w is a point at infinity and yields infinite or NaN coordinates.
func NewPointW(x, y, z, w float64) Point {
	return PointFromHCoords(math3d.H(x, y, z, w))
}

// PointFromHCoords creates a Point from homogeneous coordinates, performing
// the perspective division.
func PointFromHCoords(c math3d.HCoords) Point {
	return Point{c.PerspectiveDivide()}
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return NewPoint(0, 0, 0)
}

// X returns the x coordinate.
func (p Point) X() float64 { return p.c[0] }

// Y returns the y coordinate.
func (p Point) Y() float64 { return p.c[1] }

// Z returns the z coordinate.
func (p Point) Z() float64 { return p.c[2] }

// Coordinates returns the homogeneous coordinates (x, y, z, 1).
func (p Point) Coordinates() math3d.HCoords { return p.c }

// Map returns M·p, divided by the resulting w.
func (p Point) Map(m GeoMatrix) Point {
	return PointFromHCoords(math3d.MulPoint(m.DirectMatrix(), p.c))
}

// Add returns the point moved by v.
func (p Point) Add(v Vector) Point {
	return Point{p.c.Add(v.c)}
}

// Adds returns the point moved by every vector in vs.
func (p Point) Adds(vs ...Vector) Point {
	for _, v := range vs {
		p = p.Add(v)
	}
	return p
}

// Along returns start + dir·t.
func Along(t float64, dir UnitVector, start Point) Point {
	return start.Add(dir.Scale(t))
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return VectorFromPoints(p, q).Length()
}

// Equals reports whether p and q are in the same location within tolerance.
func (p Point) Equals(q Point) bool {
	return p.c.Equal(q.c)
}

// NotEquals is the negation of Equals.
func (p Point) NotEquals(q Point) bool {
	return !p.Equals(q)
}

// IsFinite reports whether every coordinate is finite. Points mapped onto
// the eye plane of a perspective projection are not.
func (p Point) IsFinite() bool {
	for _, v := range p.c[:3] {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g, %g)", p.c[0], p.c[1], p.c[2])
}
