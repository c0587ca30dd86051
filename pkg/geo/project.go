package geo

import (
	"math"

	"github.com/taigrr/geopro/pkg/math3d"
)

const (
	// DefaultFOV is the field of view used by NewProject when none is given (60 degrees).
	DefaultFOV = math.Pi / 3

	// DefaultViewDistance is the distance of the projection plane from the eye.
	DefaultViewDistance = 1.0
)

// Project is a projection onto one of the principal planes. Projections are
// generally not invertible, so only the direct matrix is kept.
//
// A perspective projection puts the eye at the origin and looks along the
// positive depth axis; mapped points land on the plane depth = d, with the
// kept axes scaled so that the field of view spans [-1, 1].
//
// An orthographic projection sends vectors along its dropped axis to zero.
// Mapping such a UnitVector panics, as it has no direction left; map the
// corresponding Vector instead.
type Project struct {
	direct math3d.Matrix
	fov    float64
	dist   float64
}

// FovScale returns 1 / (d·tan(fov/2)), the factor that maps the half-width of
// the field of view at distance d to 1.
func FovScale(d, fov float64) float64 {
	return 1 / (d * math.Tan(fov/2))
}

// NewProject returns a perspective projection on the XY plane at distance
// DefaultViewDistance. A zero fov selects DefaultFOV.
func NewProject(fov float64) Project {
	if fov == 0 {
		fov = DefaultFOV
	}
	return FromPerspectiveOnXY(DefaultViewDistance, fov)
}

// FromOrthographicOnXY projects along Z onto the XY plane.
func FromOrthographicOnXY(d, fov float64) Project {
	s := FovScale(d, fov)
	return Project{
		direct: math3d.Matrix{
			{s, 0, 0, 0},
			{0, s, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 1},
		},
		fov:  fov,
		dist: d,
	}
}

// FromOrthographicOnXZ projects along Y onto the XZ plane.
func FromOrthographicOnXZ(d, fov float64) Project {
	s := FovScale(d, fov)
	return Project{
		direct: math3d.Matrix{
			{s, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, s, 0},
			{0, 0, 0, 1},
		},
		fov:  fov,
		dist: d,
	}
}

// FromOrthographicOnYZ projects along X onto the YZ plane.
func FromOrthographicOnYZ(d, fov float64) Project {
	s := FovScale(d, fov)
	return Project{
		direct: math3d.Matrix{
			{0, 0, 0, 0},
			{0, s, 0, 0},
			{0, 0, s, 0},
			{0, 0, 0, 1},
		},
		fov:  fov,
		dist: d,
	}
}

// FromPerspectiveOnXY projects through the origin onto the plane z = d.
func FromPerspectiveOnXY(d, fov float64) Project {
	s := FovScale(d, fov)
	return Project{
		direct: math3d.Matrix{
			{s, 0, 0, 0},
			{0, s, 0, 0},
			{0, 0, 1, 1 / d},
			{0, 0, 0, 0},
		},
		fov:  fov,
		dist: d,
	}
}

// FromPerspectiveOnXZ projects through the origin onto the plane y = d.
func FromPerspectiveOnXZ(d, fov float64) Project {
	s := FovScale(d, fov)
	return Project{
		direct: math3d.Matrix{
			{s, 0, 0, 0},
			{0, 1, 0, 1 / d},
			{0, 0, s, 0},
			{0, 0, 0, 0},
		},
		fov:  fov,
		dist: d,
	}
}

// FromPerspectiveOnYZ projects through the origin onto the plane x = d.
func FromPerspectiveOnYZ(d, fov float64) Project {
	s := FovScale(d, fov)
	return Project{
		direct: math3d.Matrix{
			{1, 0, 0, 1 / d},
			{0, s, 0, 0},
			{0, 0, s, 0},
			{0, 0, 0, 0},
		},
		fov:  fov,
		dist: d,
	}
}

// DirectMatrix returns the projection matrix.
func (p Project) DirectMatrix() math3d.Matrix { return p.direct }

// Direct returns the element (row, col) of the projection matrix.
// Indices outside [0, 3] panic.
func (p Project) Direct(row, col int) float64 { return p.direct.At(row, col) }

// FOV returns the field of view the projection was built with, in radians.
func (p Project) FOV() float64 { return p.fov }

// ViewDistance returns the distance of the projection plane.
func (p Project) ViewDistance() float64 { return p.dist }

// ComposeWith returns the projection followed by g: direct = g·p.
func (p Project) ComposeWith(g GeoMatrix) Project {
	p.direct = math3d.Mul(g.DirectMatrix(), p.direct)
	return p
}

// After returns g followed by the projection: direct = p·g. This is how a
// view frame is put in front of a projection.
func (p Project) After(g GeoMatrix) Project {
	p.direct = math3d.Mul(p.direct, g.DirectMatrix())
	return p
}
