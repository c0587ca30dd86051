// Package math3d provides the homogeneous-coordinate primitives behind geopro:
// 4-component tuples and column-major 4x4 matrices.
package math3d

import "math"

// Tolerance is the absolute difference under which two components are
// considered equal. Every equality check in geopro uses it.
const Tolerance = 1e-5

// HCoords holds homogeneous coordinates (x, y, z, w).
// Points carry w == 1, vectors and unit-vectors carry w == 0.
type HCoords [4]float64

// H creates new homogeneous coordinates.
func H(x, y, z, w float64) HCoords {
	return HCoords{x, y, z, w}
}

// X returns the first component.
func (c HCoords) X() float64 { return c[0] }

// Y returns the second component.
func (c HCoords) Y() float64 { return c[1] }

// Z returns the third component.
func (c HCoords) Z() float64 { return c[2] }

// W returns the homogeneous component.
func (c HCoords) W() float64 { return c[3] }

// Add returns the component-wise sum c + b.
func (c HCoords) Add(b HCoords) HCoords {
	return HCoords{c[0] + b[0], c[1] + b[1], c[2] + b[2], c[3] + b[3]}
}

// Sub returns the component-wise difference c - b.
func (c HCoords) Sub(b HCoords) HCoords {
	return HCoords{c[0] - b[0], c[1] - b[1], c[2] - b[2], c[3] - b[3]}
}

// Scale multiplies x, y and z by s. W is left untouched.
func (c HCoords) Scale(s float64) HCoords {
	return HCoords{c[0] * s, c[1] * s, c[2] * s, c[3]}
}

// Dot3 returns the dot product of the xyz parts.
func (c HCoords) Dot3(b HCoords) float64 {
	return c[0]*b[0] + c[1]*b[1] + c[2]*b[2]
}

// Cross3 returns the cross product of the xyz parts, with w set to 0.
func (c HCoords) Cross3(b HCoords) HCoords {
	return HCoords{
		c[1]*b[2] - c[2]*b[1],
		c[2]*b[0] - c[0]*b[2],
		c[0]*b[1] - c[1]*b[0],
		0,
	}
}

// Len3 returns the Euclidean length of the xyz part.
func (c HCoords) Len3() float64 {
	return math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
}

// PerspectiveDivide returns the coordinates divided by w, with w set to 1.
// A zero w yields infinities; callers that may hit the eye plane must check W first.
func (c HCoords) PerspectiveDivide() HCoords {
	if c[3] == 1 {
		return c
	}
	return HCoords{c[0] / c[3], c[1] / c[3], c[2] / c[3], 1}
}

// Equal reports whether every component of c and b differs by less than Tolerance.
func (c HCoords) Equal(b HCoords) bool {
	return c.EqualWithin(b, Tolerance)
}

// EqualWithin reports whether every component of c and b differs by less than tol.
func (c HCoords) EqualWithin(b HCoords, tol float64) bool {
	for i := range 4 {
		if math.Abs(c[i]-b[i]) >= tol {
			return false
		}
	}
	return true
}
