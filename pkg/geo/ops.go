package geo

// Transformable is implemented by Point, Vector and UnitVector: each knows
// how to apply a matrix to itself and returns a value of its own kind.
type Transformable[T any] interface {
	Map(m GeoMatrix) T
}

// Map applies m to e.
func Map[T Transformable[T]](m GeoMatrix, e T) T {
	return e.Map(m)
}

// Mapper returns Map with the transformation fixed, ready to be applied to
// many entities or chained with other functions.
func Mapper[T Transformable[T]](m GeoMatrix) func(T) T {
	return func(e T) T {
		return e.Map(m)
	}
}

// MapAll applies m to every entity in es and returns the results in a new slice.
func MapAll[T Transformable[T]](m GeoMatrix, es []T) []T {
	out := make([]T, len(es))
	for i, e := range es {
		out[i] = e.Map(m)
	}
	return out
}

// Compose chains transformations left to right: the first argument is
// applied first. With no arguments it returns the identity; with one it
// returns that transformation's matrices unchanged.
func Compose(ts ...Invertible) Transform {
	if len(ts) == 0 {
		return NewTransform()
	}
	acc := AsTransform(ts[0])
	for _, t := range ts[1:] {
		acc = acc.ComposeWith(t)
	}
	return acc
}

// Relative converts e, given in f's local coordinates, to global coordinates.
func Relative[T Transformable[T]](f Frame, e T) T {
	return e.Map(f.Inverte())
}
