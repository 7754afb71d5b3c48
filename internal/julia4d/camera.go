package julia4d

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a pinhole camera. Angle is the horizontal field of view in degrees.
type Camera struct {
	Location, LookAt, Sky Vector3
	Angle                 Real
	Aspect                Real // width / height

	forward, right, up Vector3
	halfW, halfH       Real
}

// NewCamera derives the view basis; aspect <= 0 means 1.
func NewCamera(location, lookAt, sky Vector3, angleDeg, aspect Real) (*Camera, error) {
	if angleDeg <= 0 || angleDeg >= 180 {
		return nil, errors.New("camera angle must be in (0, 180) degrees")
	}
	if aspect <= 0 {
		aspect = 1
	}
	fwd := lookAt.Sub(location)
	if fwd.Len() == 0 {
		return nil, errors.New("camera location and look_at coincide")
	}
	fwd = fwd.Normalize()
	right := sky.Cross(fwd)
	if right.Len() < 1e-12 {
		return nil, errors.New("camera sky is parallel to the view direction")
	}
	right = right.Normalize()
	c := &Camera{
		Location: location,
		LookAt:   lookAt,
		Sky:      sky,
		Angle:    angleDeg,
		Aspect:   aspect,
		forward:  fwd,
		right:    right,
		up:       fwd.Cross(right),
		halfW:    math.Tan(mgl64.DegToRad(angleDeg) / 2),
	}
	c.halfH = c.halfW / aspect
	return c, nil
}

// Ray returns the unit ray through the image plane at (u, v) in
// [-0.5, 0.5]², u growing right and v growing up.
func (c *Camera) Ray(u, v Real) Ray {
	d := c.forward.Add(c.right.Mul(2 * u * c.halfW)).Add(c.up.Mul(2 * v * c.halfH))
	return Ray{Origin: c.Location, Direction: d.Normalize()}
}
