// Package motion animates a pose with damped springs and exposes it as a
// geo.Transform.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/geopro/pkg/geo"
	"github.com/taigrr/geopro/pkg/math3d"
)

const (
	// DefaultFrequency is the spring's angular frequency: moderate speed.
	DefaultFrequency = 4.0
	// DefaultDamping is critical damping: no overshoot.
	DefaultDamping = 1.0
)

// Axis is one animated coordinate. It either coasts on a decaying velocity
// after an impulse or settles on a target.
type Axis struct {
	Position float64
	Velocity float64 // per frame while coasting, per second while settling

	decay    harmonica.Spring
	settle   harmonica.Spring
	velAccel float64 // internal spring velocity (for animating Velocity toward 0)
	target   float64
	seeking  bool
}

// NewAxis creates an axis at rest at 0, updated fps times per second.
func NewAxis(fps int) Axis {
	return Axis{
		decay:  harmonica.NewSpring(harmonica.FPS(fps), DefaultFrequency, DefaultDamping),
		settle: harmonica.NewSpring(harmonica.FPS(fps), DefaultFrequency, DefaultDamping),
	}
}

// ApplyImpulse adds to the velocity and stops any settling.
func (a *Axis) ApplyImpulse(v float64) {
	if a.seeking {
		a.seeking = false
		a.Velocity = 0
	}
	a.Velocity += v
}

// SetTarget makes the axis settle on target.
func (a *Axis) SetTarget(target float64) {
	if !a.seeking {
		a.Velocity = 0
		a.velAccel = 0
	}
	a.target = target
	a.seeking = true
}

// Update advances the axis by one frame.
func (a *Axis) Update() {
	if a.seeking {
		a.Position, a.Velocity = a.settle.Update(a.Position, a.Velocity, a.target)
		if math.Abs(a.Position-a.target) < math3d.Tolerance && math.Abs(a.Velocity) < math3d.Tolerance {
			a.Position, a.Velocity = a.target, 0
			a.seeking = false
		}
		return
	}

	a.Position += a.Velocity
	// Use spring to animate velocity toward 0 (smooth deceleration)
	a.Velocity, a.velAccel = a.decay.Update(a.Velocity, a.velAccel, 0)
}

// Settled reports whether the axis has come to rest.
func (a *Axis) Settled() bool {
	return !a.seeking && math.Abs(a.Velocity) < math3d.Tolerance
}

// Pose is a rotation (pitch, yaw, roll in radians) and a translation, each
// coordinate driven by its own spring.
type Pose struct {
	Pitch, Yaw, Roll Axis
	X, Y, Z          Axis
	fps              int
}

// NewPose creates a pose at rest at the identity.
func NewPose(fps int) *Pose {
	p := &Pose{fps: fps}
	p.Reset()
	return p
}

func (p *Pose) axes() [6]*Axis {
	return [6]*Axis{&p.Pitch, &p.Yaw, &p.Roll, &p.X, &p.Y, &p.Z}
}

// ApplyImpulse spins the pose. The angles are added per frame and decay.
func (p *Pose) ApplyImpulse(pitch, yaw, roll float64) {
	p.Pitch.ApplyImpulse(pitch)
	p.Yaw.ApplyImpulse(yaw)
	p.Roll.ApplyImpulse(roll)
}

// Push moves the pose. The offset is added per frame and decays.
func (p *Pose) Push(v geo.Vector) {
	p.X.ApplyImpulse(v.X())
	p.Y.ApplyImpulse(v.Y())
	p.Z.ApplyImpulse(v.Z())
}

// SetTarget makes the pose settle on the given angles and translation.
func (p *Pose) SetTarget(pitch, yaw, roll float64, offset geo.Vector) {
	for i, v := range [6]float64{pitch, yaw, roll, offset.X(), offset.Y(), offset.Z()} {
		p.axes()[i].SetTarget(v)
	}
}

// Update advances every axis by one frame.
func (p *Pose) Update() {
	for _, a := range p.axes() {
		a.Update()
	}
}

// Settled reports whether every axis has come to rest.
func (p *Pose) Settled() bool {
	for _, a := range p.axes() {
		if !a.Settled() {
			return false
		}
	}
	return true
}

// Reset returns the pose to the identity, at rest.
func (p *Pose) Reset() {
	for _, a := range p.axes() {
		*a = NewAxis(p.fps)
	}
}

// Transform returns the current pose: roll around Z first, then yaw around
// Y, then pitch around X, then the translation.
func (p *Pose) Transform() geo.Transform {
	return geo.Compose(
		geo.FromRotationZ(p.Roll.Position),
		geo.FromRotationY(p.Yaw.Position),
		geo.FromRotationX(p.Pitch.Position),
		geo.FromTranslation(p.X.Position, p.Y.Position, p.Z.Position),
	)
}
