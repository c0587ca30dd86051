// Package view places a perspective camera in a scene and maps world points
// to screen coordinates.
package view

import (
	"fmt"
	"math"

	"github.com/taigrr/geopro/pkg/geo"
)

// Camera looks from Position toward Target. The eye frame has +Z toward the
// target and +Y toward Up, so its X axis points to the viewer's left.
type Camera struct {
	Position geo.Point
	Target   geo.Point
	Up       geo.Vector

	// Projection parameters
	FOV          float64 // Vertical field of view in radians
	AspectRatio  float64 // Width / Height
	ViewDistance float64 // Distance of the projection plane
	Near         float64 // Nearest visible depth
	Far          float64 // Farthest visible depth
}

// NewCamera creates a camera ten units above the origin, looking down at it.
func NewCamera() *Camera {
	return &Camera{
		Position:     geo.NewPoint(0, 10, 0),
		Target:       geo.Origin(),
		Up:           geo.NewVector(0, 0, -1),
		FOV:          geo.DefaultFOV,
		AspectRatio:  16.0 / 9.0,
		ViewDistance: geo.DefaultViewDistance,
		Near:         0.1,
		Far:          1000,
	}
}

// SetPosition moves the eye, keeping the target.
func (c *Camera) SetPosition(p geo.Point) {
	c.Position = p
}

// LookAt sets the point the camera looks at.
func (c *Camera) LookAt(target geo.Point) {
	c.Target = target
}

// SetUp sets the direction that appears upward on screen.
func (c *Camera) SetUp(up geo.Vector) {
	c.Up = up
}

// SetFOV sets the vertical field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
}

// SetClipPlanes sets the near and far visible depths.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
}

// Forward returns the viewing direction.
func (c *Camera) Forward() geo.Vector {
	return geo.VectorFromPoints(c.Target, c.Position)
}

// Frame returns the eye frame. Its direct matrix maps world coordinates to
// eye coordinates. It fails when the target coincides with the eye or Up is
// parallel to the viewing direction.
func (c *Camera) Frame() (geo.Frame, error) {
	forward := c.Forward()
	f, err := geo.From2Vectors(c.Position, forward, c.Up.Cross(forward))
	if err != nil {
		return geo.Frame{}, fmt.Errorf("camera frame: %w", err)
	}
	return f, nil
}

// Projection returns the world-to-image projection: the eye frame followed
// by a perspective projection on the eye's XY plane.
func (c *Camera) Projection() (geo.Project, error) {
	f, err := c.Frame()
	if err != nil {
		return geo.Project{}, err
	}
	return geo.FromPerspectiveOnXY(c.ViewDistance, c.FOV).After(f), nil
}

// MoveForward moves eye and target along the viewing direction.
func (c *Camera) MoveForward(distance float64) error {
	dir, err := geo.UnitVectorFromVector(c.Forward())
	if err != nil {
		return fmt.Errorf("move forward: %w", err)
	}
	c.translate(dir.Scale(distance))
	return nil
}

// MoveUp moves eye and target along Up.
func (c *Camera) MoveUp(distance float64) error {
	dir, err := geo.UnitVectorFromVector(c.Up)
	if err != nil {
		return fmt.Errorf("move up: %w", err)
	}
	c.translate(dir.Scale(distance))
	return nil
}

func (c *Camera) translate(v geo.Vector) {
	c.Position = c.Position.Add(v)
	c.Target = c.Target.Add(v)
}

// Orbit turns the eye around the target by angle radians about Up.
func (c *Camera) Orbit(angle float64) error {
	axis, err := geo.UnitVectorFromVector(c.Up)
	if err != nil {
		return fmt.Errorf("orbit: %w", err)
	}
	toTarget := geo.VectorFromPoints(c.Target, geo.Origin())
	c.Position = geo.Map(geo.Compose(
		geo.FromTranslationVector(toTarget.Negate()),
		geo.FromRotation(axis, angle),
		geo.FromTranslationVector(toTarget),
	), c.Position)
	return nil
}

// screen maps world points to pixels for one camera pose.
type screen struct {
	frame     geo.Frame
	proj      geo.Project
	aspect    float64
	near, far float64
	w, h      float64
}

func (c *Camera) screen(width, height int) (screen, error) {
	f, err := c.Frame()
	if err != nil {
		return screen{}, err
	}
	aspect := c.AspectRatio
	if aspect == 0 {
		aspect = 1
	}
	return screen{
		frame:  f,
		proj:   geo.FromPerspectiveOnXY(c.ViewDistance, c.FOV).After(f),
		aspect: aspect,
		near:   c.Near,
		far:    c.Far,
		w:      float64(width),
		h:      float64(height),
	}, nil
}

func (s screen) project(p geo.Point) (x, y, depth float64, visible bool) {
	depth = s.frame.ToLocal(p).Z()
	if depth < s.near || depth > s.far {
		return 0, 0, 0, false
	}

	img := geo.Map(s.proj, p)
	ndcX, ndcY := img.X()/s.aspect, img.Y()
	if math.Abs(ndcX) > 1 || math.Abs(ndcY) > 1 {
		return 0, 0, 0, false
	}

	// Eye X points left, so screen X runs against it. Screen Y grows downward.
	x = (1 - ndcX) * 0.5 * s.w
	y = (1 - ndcY) * 0.5 * s.h
	return x, y, depth, true
}

// WorldToScreen maps a world point to pixel coordinates. depth is the
// distance along the viewing direction. Points outside the view, and every
// point when the camera is degenerate, are reported as not visible.
func (c *Camera) WorldToScreen(p geo.Point, width, height int) (x, y, depth float64, visible bool) {
	s, err := c.screen(width, height)
	if err != nil {
		return 0, 0, 0, false
	}
	return s.project(p)
}

// ScreenPoint is a projected point.
type ScreenPoint struct {
	X, Y    float64
	Depth   float64
	Visible bool
}

// WorldToScreenAll maps many points with a single camera pose.
func (c *Camera) WorldToScreenAll(pts []geo.Point, width, height int) ([]ScreenPoint, error) {
	s, err := c.screen(width, height)
	if err != nil {
		return nil, err
	}
	out := make([]ScreenPoint, len(pts))
	for i, p := range pts {
		x, y, d, ok := s.project(p)
		out[i] = ScreenPoint{X: x, Y: y, Depth: d, Visible: ok}
	}
	return out, nil
}
