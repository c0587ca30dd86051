package math3d

import "math"

// Matrix is a 4x4 matrix stored as four columns, m[col][row].
// This matches OpenGL conventions for easier reasoning about transforms.
//
// For an affine transform:
// | Xx Yx Zx Tx |   X,Y,Z = columns 0..2 (rotation/scale)
// | Xy Yy Zy Ty |   T = column 3 (translation)
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Matrix [4]HCoords

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0}, // col 0
		{0, 1, 0, 0}, // col 1
		{0, 0, 1, 0}, // col 2
		{0, 0, 0, 1}, // col 3
	}
}

// FromColumns builds a matrix from its four columns.
func FromColumns(c0, c1, c2, c3 HCoords) Matrix {
	return Matrix{c0, c1, c2, c3}
}

// Mul returns the product a · b: column j of the result is a applied to
// column j of b. Used as a transform, the result applies b first, then a.
func Mul(a, b Matrix) Matrix {
	var m Matrix
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[k][row] * b[col][k]
			}
			m[col][row] = sum
		}
	}
	return m
}

// Mul is the method form of Mul(a, b).
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Matrix) Mul(b Matrix) Matrix {
	return Mul(a, b)
}

// MulPoint applies m to v and keeps the resulting w, so that a projective
// matrix can be followed by a perspective division.
func MulPoint(m Matrix, v HCoords) HCoords {
	var r HCoords
	for row := range 4 {
		r[row] = m[0][row]*v[0] + m[1][row]*v[1] + m[2][row]*v[2] + m[3][row]*v[3]
	}
	return r
}

// MulVector applies m to v as a direction: the result always has w == 0.
func MulVector(m Matrix, v HCoords) HCoords {
	r := MulPoint(m, v)
	r[3] = 0
	return r
}

// InvertAffineOrthogonal inverts a matrix whose linear part is orthonormal
// (a rotation, possibly with a translation). The linear block is transposed
// and the translation becomes -Rᵀ·t.
//
// It must not be used for matrices that scale or shear.
func InvertAffineOrthogonal(m Matrix) Matrix {
	var inv Matrix
	for col := range 3 {
		for row := range 3 {
			inv[col][row] = m[row][col]
		}
	}
	t := m[3]
	for row := range 3 {
		inv[3][row] = -(m[row][0]*t[0] + m[row][1]*t[1] + m[row][2]*t[2])
	}
	inv[3][3] = 1
	return inv
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	for col := range 4 {
		for row := range 4 {
			t[col][row] = m[row][col]
		}
	}
	return t
}

// At returns the element at (row, col). Indices outside [0, 3] panic.
func (m Matrix) At(row, col int) float64 {
	return m[col][row]
}

// Translation extracts the translation component as a vector (w == 0).
func (m Matrix) Translation() HCoords {
	return HCoords{m[3][0], m[3][1], m[3][2], 0}
}

// IsAffine reports whether the bottom row is (0, 0, 0, 1) within Tolerance.
func (m Matrix) IsAffine() bool {
	return math.Abs(m[0][3]) < Tolerance &&
		math.Abs(m[1][3]) < Tolerance &&
		math.Abs(m[2][3]) < Tolerance &&
		math.Abs(m[3][3]-1) < Tolerance
}

// Equal reports whether every component pair of a and b differs by less
// than Tolerance.
func Equal(a, b Matrix) bool {
	return EqualWithin(a, b, Tolerance)
}

// EqualWithin reports whether every component pair differs by less than tol.
func EqualWithin(a, b Matrix, tol float64) bool {
	for col := range 4 {
		if !a[col].EqualWithin(b[col], tol) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute component of m.
func (m Matrix) MaxAbs() float64 {
	var r float64
	for _, col := range m {
		for _, v := range col {
			r = max(r, math.Abs(v))
		}
	}
	return r
}
