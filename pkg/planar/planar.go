// Package planar converts between geo transformations of the XY plane and
// the 2D affine matrices of seehuhn.de/go/geom.
package planar

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/taigrr/geopro/pkg/geo"
	"github.com/taigrr/geopro/pkg/math3d"
)

var (
	// ErrNotPlanar is returned when a transformation moves points of the XY
	// plane out of it, or is not affine.
	ErrNotPlanar = errors.New("transformation does not keep the XY plane")

	// ErrSingular is returned for a 2D matrix without an inverse.
	ErrSingular = errors.New("singular 2D matrix")
)

// Plane selects the two coordinates kept by Projected.
type Plane int

// The principal planes.
const (
	XY Plane = iota
	XZ
	YZ
)

func (p Plane) String() string {
	switch p {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case YZ:
		return "YZ"
	}
	return fmt.Sprintf("Plane(%d)", int(p))
}

// FromTransformXY restricts g to the XY plane. The result maps (x, y) to the
// x and y of g applied to (x, y, 0).
func FromTransformXY(g geo.GeoMatrix) (matrix.Matrix, error) {
	m := g.DirectMatrix()
	if !m.IsAffine() ||
		math.Abs(m.At(2, 0)) > math3d.Tolerance ||
		math.Abs(m.At(2, 1)) > math3d.Tolerance ||
		math.Abs(m.At(2, 3)) > math3d.Tolerance {
		return matrix.Matrix{}, ErrNotPlanar
	}
	return matrix.Matrix{
		m.At(0, 0), m.At(1, 0),
		m.At(0, 1), m.At(1, 1),
		m.At(0, 3), m.At(1, 3),
	}, nil
}

// ToTransform lifts a 2D matrix to a transformation that acts on x and y
// and leaves z unchanged.
func ToTransform(a matrix.Matrix) (geo.Transform, error) {
	if a[0]*a[3]-a[1]*a[2] == 0 {
		return geo.Transform{}, fmt.Errorf("matrix %v: %w", a, ErrSingular)
	}
	return geo.FromMatrices(lift(a), lift(a.Inv()))
}

func lift(a matrix.Matrix) math3d.Matrix {
	return math3d.Matrix{
		{a[0], a[1], 0, 0},
		{a[2], a[3], 0, 0},
		{0, 0, 1, 0},
		{a[4], a[5], 0, 1},
	}
}

// PointXY drops the z coordinate.
func PointXY(p geo.Point) vec.Vec2 {
	return vec.Vec2{X: p.X(), Y: p.Y()}
}

// Lift returns the point (v.X, v.Y, 0).
func Lift(v vec.Vec2) geo.Point {
	return geo.NewPoint(v.X, v.Y, 0)
}

// Projected applies pr to every point and keeps the two coordinates of plane.
func Projected(pr geo.Project, pts []geo.Point, plane Plane) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range geo.MapAll(pr, pts) {
		switch plane {
		case XZ:
			out[i] = vec.Vec2{X: p.X(), Y: p.Z()}
		case YZ:
			out[i] = vec.Vec2{X: p.Y(), Y: p.Z()}
		default:
			out[i] = vec.Vec2{X: p.X(), Y: p.Y()}
		}
	}
	return out
}
