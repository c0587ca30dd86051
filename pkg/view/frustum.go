package view

import (
	"github.com/taigrr/geopro/pkg/geo"
	"github.com/taigrr/geopro/pkg/math3d"
)

// Plane is the set of points p with Normal·p + D = 0.
type Plane struct {
	Normal geo.Vector
	D      float64
}

// Normalize scales the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Length()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(pt geo.Point) float64 {
	return p.Normal.Dot(geo.VectorFromPoints(pt, geo.Origin())) + p.D
}

// Frustum is the visible volume of a camera.
// Each plane's normal points inward.
type Frustum struct {
	Planes [6]Plane
}

// Frustum plane indices, named after the image coordinate each one bounds.
const (
	FrustumMinX = iota
	FrustumMaxX
	FrustumMinY
	FrustumMaxY
	FrustumNear
	FrustumFar
)

// sidePlanes extracts the four side planes from a world-to-image matrix whose
// visible region is |x| <= w and |y| <= w (Gribb/Hartmann).
func sidePlanes(m math3d.Matrix) [4]Plane {
	row := func(r int) math3d.HCoords {
		return math3d.H(m[0][r], m[1][r], m[2][r], m[3][r])
	}
	plane := func(c math3d.HCoords) Plane {
		return Plane{Normal: geo.NewVector(c.X(), c.Y(), c.Z()), D: c.W()}
	}
	x, y, w := row(0), row(1), row(3)
	return [4]Plane{
		plane(w.Add(x)),
		plane(w.Sub(x)),
		plane(w.Add(y)),
		plane(w.Sub(y)),
	}
}

// Frustum returns the camera's visible volume in world coordinates.
func (c *Camera) Frustum() (Frustum, error) {
	s, err := c.screen(1, 1)
	if err != nil {
		return Frustum{}, err
	}

	// Fold the aspect ratio into X so the side planes bound |x| <= w.
	squeeze, err := geo.FromScale(1/s.aspect, 1, 1)
	if err != nil {
		return Frustum{}, err
	}

	var f Frustum
	sides := sidePlanes(s.proj.ComposeWith(squeeze).DirectMatrix())
	copy(f.Planes[:4], sides[:])

	k := s.frame.K()
	o := geo.VectorFromPoints(s.frame.Origin(), geo.Origin())
	f.Planes[FrustumNear] = Plane{Normal: k, D: -k.Dot(o) - s.near}
	f.Planes[FrustumFar] = Plane{Normal: k.Negate(), D: k.Dot(o) + s.far}

	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	return f, nil
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min geo.Point
	Max geo.Point
}

// NewBox creates a box from its min and max corners.
func NewBox(lo, hi geo.Point) Box {
	return Box{Min: lo, Max: hi}
}

// Center returns the center of the box.
func (b Box) Center() geo.Point {
	return b.Min.Add(b.Size().Scale(0.5))
}

// Size returns the dimensions of the box.
func (b Box) Size() geo.Vector {
	return geo.VectorFromPoints(b.Max, b.Min)
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]geo.Point {
	var c [8]geo.Point
	for i := range c {
		x, y, z := b.Min.X(), b.Min.Y(), b.Min.Z()
		if i&1 != 0 {
			x = b.Max.X()
		}
		if i&2 != 0 {
			y = b.Max.Y()
		}
		if i&4 != 0 {
			z = b.Max.Z()
		}
		c[i] = geo.NewPoint(x, y, z)
	}
	return c
}

// Transform returns the box bounding all eight corners after g.
func (b Box) Transform(g geo.GeoMatrix) Box {
	corners := b.Corners()
	first := corners[0].Map(g)
	lo := [3]float64{first.X(), first.Y(), first.Z()}
	hi := lo
	for _, c := range corners[1:] {
		p := c.Map(g)
		for i, v := range [3]float64{p.X(), p.Y(), p.Z()} {
			lo[i] = min(lo[i], v)
			hi[i] = max(hi[i], v)
		}
	}
	return Box{Min: geo.NewPoint(lo[0], lo[1], lo[2]), Max: geo.NewPoint(hi[0], hi[1], hi[2])}
}

// ContainsPoint reports whether p lies inside the box or on its surface.
func (b Box) ContainsPoint(p geo.Point) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// ContainsPoint reports whether p is inside the frustum.
func (f Frustum) ContainsPoint(p geo.Point) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox reports whether any part of the box may be visible. It tests
// the corner furthest along each plane normal.
func (f Frustum) IntersectsBox(b Box) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(corner(b, plane.Normal, true)) < 0 {
			return false
		}
	}
	return true
}

// ContainsBox reports whether the whole box is inside the frustum.
func (f Frustum) ContainsBox(b Box) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(corner(b, plane.Normal, false)) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(center geo.Point, radius float64) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

// corner picks the box corner furthest along n, or nearest when far is false.
func corner(b Box, n geo.Vector, far bool) geo.Point {
	pick := func(positive bool, lo, hi float64) float64 {
		if positive == far {
			return hi
		}
		return lo
	}
	return geo.NewPoint(
		pick(n.X() >= 0, b.Min.X(), b.Max.X()),
		pick(n.Y() >= 0, b.Min.Y(), b.Max.Y()),
		pick(n.Z() >= 0, b.Min.Z(), b.Max.Z()),
	)
}
