package geo

import (
	"fmt"
	"math"

	"github.com/taigrr/geopro/pkg/math3d"
)

// Vector is a free displacement in 3D space. Its homogeneous coordinates
// always have w == 0, so translations leave it unchanged.
type Vector struct {
	c math3d.HCoords
}

// NewVector creates a new Vector.
func NewVector(x, y, z float64) Vector {
	return Vector{math3d.H(x, y, z, 0)}
}

// VectorFromHCoords creates a Vector from the xyz part of c.
func VectorFromHCoords(c math3d.HCoords) Vector {
	return NewVector(c[0], c[1], c[2])
}

// VectorFromPoints returns the displacement p1 - p2.
func VectorFromPoints(p1, p2 Point) Vector {
	return NewVector(p1.c[0]-p2.c[0], p1.c[1]-p2.c[1], p1.c[2]-p2.c[2])
}

// AddVectors returns the sum of vs, or the zero vector if vs is empty.
func AddVectors(vs ...Vector) Vector {
	sum := NewVector(0, 0, 0)
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum
}

// X returns the x component.
func (v Vector) X() float64 { return v.c[0] }

// Y returns the y component.
func (v Vector) Y() float64 { return v.c[1] }

// Z returns the z component.
func (v Vector) Z() float64 { return v.c[2] }

// Coordinates returns the homogeneous coordinates (x, y, z, 0).
func (v Vector) Coordinates() math3d.HCoords { return v.c }

// Length returns |v|.
func (v Vector) Length() float64 { return v.c.Len3() }

// Map returns M·v. Translations have no effect on vectors.
func (v Vector) Map(m GeoMatrix) Vector {
	return Vector{math3d.MulVector(m.DirectMatrix(), v.c)}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.c.Add(w.c)}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.c.Sub(w.c)}
}

// Scale returns v·s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.c.Scale(s)}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return v.Scale(-1)
}

// Cross returns v × w (right-hand rule).
func (v Vector) Cross(w Vector) Vector {
	return Vector{v.c.Cross3(w.c)}
}

// Dot returns v · w.
func (v Vector) Dot(w Vector) float64 {
	return v.c.Dot3(w.c)
}

// AngleBetween returns the angle between v and w in radians, in [0, π].
// It is NaN if either vector has zero length.
func (v Vector) AngleBetween(w Vector) float64 {
	return math.Acos(clampUnit(v.Dot(w) / (v.Length() * w.Length())))
}

// Parallel reports whether v and w point in the same or in opposite
// directions. Zero vectors are not parallel to anything.
func (v Vector) Parallel(w Vector) bool {
	u1, err := UnitVectorFromVector(v)
	if err != nil {
		return false
	}
	u2, err := UnitVectorFromVector(w)
	if err != nil {
		return false
	}
	return u1.Parallel(u2)
}

// Equals reports whether v and w are equal within tolerance.
func (v Vector) Equals(w Vector) bool {
	return v.c.Equal(w.c)
}

// NotEquals is the negation of Equals.
func (v Vector) NotEquals(w Vector) bool {
	return !v.Equals(w)
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g, %g)", v.c[0], v.c[1], v.c[2])
}

// clampUnit keeps rounding noise from pushing a cosine outside [-1, 1].
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
