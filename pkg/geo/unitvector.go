package geo

import (
	"fmt"
	"math"

	"github.com/taigrr/geopro/pkg/math3d"
)

// UnitVector is a direction in 3D space. Its length is always 1.
// The zero value reads as AxisX.
type UnitVector struct {
	c math3d.HCoords
}

// NewUnitVector creates the unit-vector pointing along (x, y, z).
func NewUnitVector(x, y, z float64) (UnitVector, error) {
	return normalize(math3d.H(x, y, z, 0))
}

// MustUnitVector is like NewUnitVector but panics on a zero-length input.
// It is meant for literals known to be valid.
func MustUnitVector(x, y, z float64) UnitVector {
	u, err := NewUnitVector(x, y, z)
	if err != nil {
		panic(err)
	}
	return u
}

// UnitVectorFromVector returns the direction of v.
func UnitVectorFromVector(v Vector) (UnitVector, error) {
	return normalize(v.c)
}

// UnitVectorFromPoints returns the direction from p2 to p1.
func UnitVectorFromPoints(p1, p2 Point) (UnitVector, error) {
	return UnitVectorFromVector(VectorFromPoints(p1, p2))
}

// AxisX, AxisY and AxisZ are the global axes.
var (
	AxisX = UnitVector{math3d.H(1, 0, 0, 0)}
	AxisY = UnitVector{math3d.H(0, 1, 0, 0)}
	AxisZ = UnitVector{math3d.H(0, 0, 1, 0)}
)

// coords returns the stored coordinates, with the zero value standing for AxisX.
func (u UnitVector) coords() math3d.HCoords {
	if u.c == (math3d.HCoords{}) {
		return AxisX.c
	}
	return u.c
}

func normalize(c math3d.HCoords) (UnitVector, error) {
	l := c.Len3()
	if l == 0 || math.IsNaN(l) {
		return UnitVector{}, fmt.Errorf("normalize %v: %w", c, ErrZeroLength)
	}
	return UnitVector{math3d.H(c[0]/l, c[1]/l, c[2]/l, 0)}, nil
}

// X returns the x component.
func (u UnitVector) X() float64 { return u.coords()[0] }

// Y returns the y component.
func (u UnitVector) Y() float64 { return u.coords()[1] }

// Z returns the z component.
func (u UnitVector) Z() float64 { return u.coords()[2] }

// Coordinates returns the homogeneous coordinates (x, y, z, 0).
func (u UnitVector) Coordinates() math3d.HCoords { return u.coords() }

// Length is always 1.
func (u UnitVector) Length() float64 { return 1 }

// Vector returns u as a plain Vector.
func (u UnitVector) Vector() Vector { return Vector{u.coords()} }

// Scale returns a vector along u of length s.
func (u UnitVector) Scale(s float64) Vector {
	return Vector{u.coords().Scale(s)}
}

// Negate returns the opposite direction.
func (u UnitVector) Negate() UnitVector {
	return UnitVector{u.coords().Scale(-1)}
}

// Map returns M·u, renormalized so that scaling transforms keep it a unit-vector.
//
// Map panics if M sends u to the zero vector (for instance an orthographic
// projection along u): such a result has no direction.
func (u UnitVector) Map(m GeoMatrix) UnitVector {
	r, err := normalize(math3d.MulVector(m.DirectMatrix(), u.coords()))
	if err != nil {
		panic(fmt.Sprintf("geo: map unit-vector: %v", err))
	}
	return r
}

// Cross returns u × w (right-hand rule). The result is a unit-vector only
// when u and w are orthogonal, so a Vector is returned.
func (u UnitVector) Cross(w UnitVector) Vector {
	return Vector{u.coords().Cross3(w.coords())}
}

// Dot returns u · w, the cosine of the angle between them.
func (u UnitVector) Dot(w UnitVector) float64 {
	return u.coords().Dot3(w.coords())
}

// AngleBetween returns the angle between u and w in radians, in [0, π].
func (u UnitVector) AngleBetween(w UnitVector) float64 {
	return math.Acos(clampUnit(u.Dot(w)))
}

// Parallel reports whether u and w point in the same or opposite direction.
func (u UnitVector) Parallel(w UnitVector) bool {
	return u.coords().Cross3(w.coords()).Len3() < math3d.Tolerance
}

// Equals reports whether u and w are equal within tolerance.
func (u UnitVector) Equals(w UnitVector) bool {
	return u.coords().Equal(w.coords())
}

// NotEquals is the negation of Equals.
func (u UnitVector) NotEquals(w UnitVector) bool {
	return !u.Equals(w)
}

func (u UnitVector) String() string {
	c := u.coords()
	return fmt.Sprintf("UnitVector(%g, %g, %g)", c[0], c[1], c[2])
}
