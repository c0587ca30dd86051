package geo

import (
	"fmt"
	"math"

	"github.com/taigrr/geopro/pkg/math3d"
)

// GeoMatrix is anything that can be applied to a point or a vector.
type GeoMatrix interface {
	// DirectMatrix returns the matrix applied by Map.
	DirectMatrix() math3d.Matrix
}

// Invertible is a GeoMatrix that also carries its exact inverse.
type Invertible interface {
	GeoMatrix
	InverseMatrix() math3d.Matrix
}

// Transform is an invertible affine transformation. It holds the direct
// matrix together with its inverse; every constructor builds the inverse in
// closed form, so no general matrix inversion is ever performed.
//
// The zero value is not valid; use NewTransform for the identity.
type Transform struct {
	direct  math3d.Matrix
	inverse math3d.Matrix
}

// NewTransform returns the identity transformation.
func NewTransform() Transform {
	return Transform{direct: math3d.Identity(), inverse: math3d.Identity()}
}

// transformFromMatrices pairs a matrix with its already known inverse.
func transformFromMatrices(direct, inverse math3d.Matrix) Transform {
	return Transform{direct: direct, inverse: inverse}
}

// FromMatrices pairs a direct matrix with an inverse computed elsewhere.
// The pair must multiply to the identity within math3d.Tolerance.
func FromMatrices(direct, inverse math3d.Matrix) (Transform, error) {
	if !math3d.Equal(math3d.Mul(direct, inverse), math3d.Identity()) {
		return Transform{}, fmt.Errorf("direct %v, inverse %v: %w", direct, inverse, ErrNotInverse)
	}
	return transformFromMatrices(direct, inverse), nil
}

// AsTransform returns the matrices of t as a Transform.
func AsTransform(t Invertible) Transform {
	return transformFromMatrices(t.DirectMatrix(), t.InverseMatrix())
}

// DirectMatrix returns the matrix applied by Map.
func (t Transform) DirectMatrix() math3d.Matrix { return t.direct }

// InverseMatrix returns the inverse of DirectMatrix.
func (t Transform) InverseMatrix() math3d.Matrix { return t.inverse }

// Direct returns the element (row, col) of the direct matrix.
// Indices outside [0, 3] panic.
func (t Transform) Direct(row, col int) float64 { return t.direct.At(row, col) }

// Inverse returns the element (row, col) of the inverse matrix.
// Indices outside [0, 3] panic.
func (t Transform) Inverse(row, col int) float64 { return t.inverse.At(row, col) }

// Inverte returns the inverse transformation. The matrices are swapped, not recomputed.
func (t Transform) Inverte() Transform {
	return transformFromMatrices(t.inverse, t.direct)
}

// ByInverting returns the inverse of t.
func ByInverting(t Invertible) Transform {
	return transformFromMatrices(t.InverseMatrix(), t.DirectMatrix())
}

// ComposeWith returns the transformation that applies t first, then other:
// direct = other·t, inverse = t⁻¹·other⁻¹.
func (t Transform) ComposeWith(other Invertible) Transform {
	return transformFromMatrices(
		math3d.Mul(other.DirectMatrix(), t.direct),
		math3d.Mul(t.inverse, other.InverseMatrix()),
	)
}

// IsIdentity reports whether t leaves every entity unchanged, within tolerance.
func (t Transform) IsIdentity() bool {
	return math3d.Equal(t.direct, math3d.Identity())
}

// FromTranslation returns a translation by (tx, ty, tz).
func FromTranslation(tx, ty, tz float64) Transform {
	return transformFromMatrices(
		math3d.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{tx, ty, tz, 1},
		},
		math3d.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{-tx, -ty, -tz, 1},
		},
	)
}

// FromTranslationVector returns a translation by v.
func FromTranslationVector(v Vector) Transform {
	return FromTranslation(v.X(), v.Y(), v.Z())
}

// rotation pairs a pure rotation matrix with its transpose.
func rotation(m math3d.Matrix) Transform {
	return transformFromMatrices(m, m.Transpose())
}

// FromRotationX returns a rotation of a radians around the X axis.
// A positive angle turns Y toward Z.
func FromRotationX(a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	return rotation(math3d.Matrix{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	})
}

// FromRotationY returns a rotation of a radians around the Y axis.
// A positive angle turns Z toward X.
func FromRotationY(a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	return rotation(math3d.Matrix{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// FromRotationZ returns a rotation of a radians around the Z axis.
// A positive angle turns X toward Y.
func FromRotationZ(a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	return rotation(math3d.Matrix{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// FromRotation returns a rotation of a radians around axis, following the
// right-hand rule.
func FromRotation(axis UnitVector, a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	t := 1 - c
	x, y, z := axis.X(), axis.Y(), axis.Z()

	return rotation(math3d.Matrix{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	})
}

// FromScale returns a scaling by (sx, sy, sz) along the global axes.
// A zero factor has no inverse and is rejected.
func FromScale(sx, sy, sz float64) (Transform, error) {
	if sx == 0 || sy == 0 || sz == 0 {
		return Transform{}, fmt.Errorf("scale (%g, %g, %g): %w", sx, sy, sz, ErrSingularScale)
	}
	return transformFromMatrices(
		math3d.Matrix{
			{sx, 0, 0, 0},
			{0, sy, 0, 0},
			{0, 0, sz, 0},
			{0, 0, 0, 1},
		},
		math3d.Matrix{
			{1 / sx, 0, 0, 0},
			{0, 1 / sy, 0, 0},
			{0, 0, 1 / sz, 0},
			{0, 0, 0, 1},
		},
	), nil
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform%v", t.direct)
}
