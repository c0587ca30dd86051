package geo

import (
	"fmt"

	"github.com/taigrr/geopro/pkg/math3d"
)

// Frame is a frame of reference: an origin and three orthonormal axes
// i, j, k forming a right-handed basis.
//
// DirectMatrix maps global coordinates to frame-local coordinates, so
// Map(f, p) expresses the global point p in the frame. InverseMatrix maps
// frame-local coordinates to global ones; its columns are i, j, k and the
// origin.
type Frame struct {
	direct  math3d.Matrix
	inverse math3d.Matrix
}

// NewFrame returns the global frame: origin at (0, 0, 0), axes along X, Y, Z.
func NewFrame() Frame {
	return Frame{direct: math3d.Identity(), inverse: math3d.Identity()}
}

func frameFromMatrices(direct, inverse math3d.Matrix) Frame {
	return Frame{direct: direct, inverse: inverse}
}

// From2Vectors builds a frame through origin o. The first vector gives the
// frame's Z direction; the second lies in the frame's XZ plane, on the side
// of positive X. Neither needs to be unit length or orthogonal to the other,
// but they must be non-zero and not parallel.
func From2Vectors(o Point, v1, v2 Vector) (Frame, error) {
	k, err := UnitVectorFromVector(v1)
	if err != nil {
		return Frame{}, fmt.Errorf("frame z axis: %w", ErrDegenerateBasis)
	}
	x, err := UnitVectorFromVector(v2)
	if err != nil {
		return Frame{}, fmt.Errorf("frame x direction: %w", ErrDegenerateBasis)
	}
	if k.Parallel(x) {
		return Frame{}, fmt.Errorf("frame axes %v and %v are parallel: %w", v1, v2, ErrDegenerateBasis)
	}

	j, err := UnitVectorFromVector(k.Cross(x))
	if err != nil {
		return Frame{}, fmt.Errorf("frame y axis: %w", ErrDegenerateBasis)
	}
	i, err := UnitVectorFromVector(j.Cross(k))
	if err != nil {
		return Frame{}, fmt.Errorf("frame x axis: %w", ErrDegenerateBasis)
	}

	toGlobal := math3d.FromColumns(i.coords(), j.coords(), k.coords(), o.c)
	return frameFromMatrices(math3d.InvertAffineOrthogonal(toGlobal), toGlobal), nil
}

// DirectMatrix returns the matrix mapping global to frame-local coordinates.
func (f Frame) DirectMatrix() math3d.Matrix { return f.direct }

// InverseMatrix returns the matrix mapping frame-local to global coordinates.
func (f Frame) InverseMatrix() math3d.Matrix { return f.inverse }

// Direct returns the element (row, col) of the direct matrix.
// Indices outside [0, 3] panic.
func (f Frame) Direct(row, col int) float64 { return f.direct.At(row, col) }

// Inverse returns the element (row, col) of the inverse matrix.
// Indices outside [0, 3] panic.
func (f Frame) Inverse(row, col int) float64 { return f.inverse.At(row, col) }

// I returns the frame's X axis in global coordinates.
func (f Frame) I() Vector { return VectorFromHCoords(f.inverse[0]) }

// J returns the frame's Y axis in global coordinates.
func (f Frame) J() Vector { return VectorFromHCoords(f.inverse[1]) }

// K returns the frame's Z axis in global coordinates.
func (f Frame) K() Vector { return VectorFromHCoords(f.inverse[2]) }

// Origin returns the frame's origin in global coordinates.
func (f Frame) Origin() Point { return PointFromHCoords(f.inverse[3]) }

// Inverte returns the frame whose direct matrix maps frame-local
// coordinates to global ones.
func (f Frame) Inverte() Frame {
	return frameFromMatrices(f.inverse, f.direct)
}

// ComposeWith follows the same rule as Transform.ComposeWith: the result
// maps global coordinates to f's local coordinates, then applies other.
func (f Frame) ComposeWith(other Invertible) Frame {
	return frameFromMatrices(
		math3d.Mul(other.DirectMatrix(), f.direct),
		math3d.Mul(f.inverse, other.InverseMatrix()),
	)
}

// Relocate moves the frame itself by t, expressed in global coordinates:
// the new origin is t applied to the old origin, and likewise for the axes.
func (f Frame) Relocate(t Invertible) Frame {
	return frameFromMatrices(
		math3d.Mul(f.direct, t.InverseMatrix()),
		math3d.Mul(t.DirectMatrix(), f.inverse),
	)
}

// ToLocal expresses the global point p in the frame.
func (f Frame) ToLocal(p Point) Point {
	return p.Map(f)
}

// ToGlobal converts the frame-local point p to global coordinates.
func (f Frame) ToGlobal(p Point) Point {
	return p.Map(f.Inverte())
}

// Transform returns the frame's matrices as a plain Transform.
func (f Frame) Transform() Transform {
	return transformFromMatrices(f.direct, f.inverse)
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame(origin %v, i %v, j %v, k %v)", f.Origin(), f.I(), f.J(), f.K())
}
