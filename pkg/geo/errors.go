package geo

import "errors"

var (
	// ErrZeroLength is returned when a direction is requested from a
	// zero-length vector.
	ErrZeroLength = errors.New("zero-length vector has no direction")

	// ErrDegenerateBasis is returned when two vectors cannot span a frame
	// because one is zero or they are parallel.
	ErrDegenerateBasis = errors.New("degenerate basis")

	// ErrSingularScale is returned when a scale factor is zero.
	ErrSingularScale = errors.New("scale factor is zero")

	// ErrNotDecomposable is returned when a matrix is not a composition of
	// translation, rotation and axis-aligned scale.
	ErrNotDecomposable = errors.New("matrix is not translation-rotation-scale")

	// ErrNotInverse is returned when two matrices given as a pair do not
	// multiply to the identity.
	ErrNotInverse = errors.New("matrices are not inverses of each other")
)
