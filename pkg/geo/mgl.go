package geo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/taigrr/geopro/pkg/math3d"
)

// MatrixFromMat4 converts a mathgl matrix. Both are column-major.
func MatrixFromMat4(m mgl64.Mat4) math3d.Matrix {
	var r math3d.Matrix
	for col := range 4 {
		for row := range 4 {
			r[col][row] = m[col*4+row]
		}
	}
	return r
}

// Mat4FromMatrix converts to a mathgl matrix.
func Mat4FromMatrix(m math3d.Matrix) mgl64.Mat4 {
	var r mgl64.Mat4
	for col := range 4 {
		for row := range 4 {
			r[col*4+row] = m[col][row]
		}
	}
	return r
}

// Mat4 returns the direct matrix as a mathgl matrix.
func (t Transform) Mat4() mgl64.Mat4 { return Mat4FromMatrix(t.direct) }

// InverseMat4 returns the inverse matrix as a mathgl matrix.
func (t Transform) InverseMat4() mgl64.Mat4 { return Mat4FromMatrix(t.inverse) }

// FromQuaternion returns the rotation described by q. q is normalized
// first; the inverse is built from the transposed rotation.
func FromQuaternion(q mgl64.Quat) Transform {
	return rotation(MatrixFromMat4(q.Normalize().Mat4()))
}

// FromTRS returns the transformation that scales by s, rotates by q and then
// translates by tr, the order used by glTF nodes and most scene graphs.
// The inverse is S⁻¹·Rᵀ·T⁻¹.
func FromTRS(tr Vector, q mgl64.Quat, s Vector) (Transform, error) {
	scale, err := FromScale(s.X(), s.Y(), s.Z())
	if err != nil {
		return Transform{}, err
	}
	return Compose(scale, FromQuaternion(q), FromTranslationVector(tr)), nil
}

// FromMat4 decomposes m into translation, rotation and scale and rebuilds it
// with closed-form inverses. A mirroring matrix decomposes with a negative X
// scale. Matrices with shear or a projective row return ErrNotDecomposable.
//
// The rebuilt matrix must match m within math3d.Tolerance scaled by the
// largest component of m, so float32 matrices read from files with large
// scales or translations are accepted.
func FromMat4(m mgl64.Mat4) (Transform, error) {
	mat := MatrixFromMat4(m)
	if !mat.IsAffine() {
		return Transform{}, fmt.Errorf("projective matrix: %w", ErrNotDecomposable)
	}

	sx, sy, sz := mgl64.Extract3DScale(m)
	if sx == 0 || sy == 0 || sz == 0 {
		return Transform{}, fmt.Errorf("zero scale: %w", ErrNotDecomposable)
	}
	if m.Mat3().Det() < 0 {
		sx = -sx
	}

	rot := m
	for row := range 3 {
		rot[0*4+row] /= sx
		rot[1*4+row] /= sy
		rot[2*4+row] /= sz
	}
	rot[12], rot[13], rot[14] = 0, 0, 0

	t, err := FromTRS(
		VectorFromHCoords(mat.Translation()),
		mgl64.Mat4ToQuat(rot),
		NewVector(sx, sy, sz),
	)
	if err != nil {
		return Transform{}, err
	}
	tol := math3d.Tolerance * max(1, mat.MaxAbs())
	if !math3d.EqualWithin(t.direct, mat, tol) {
		return Transform{}, fmt.Errorf("shear: %w", ErrNotDecomposable)
	}
	return t, nil
}
