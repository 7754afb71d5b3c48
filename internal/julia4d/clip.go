package julia4d

// Clip is a volume used to reject hits. Any Object with an Inside test can
// serve, a Fractal included.
type Clip interface {
	Inside(p Vector3, td *ThreadData) bool
}

// PointInClip reports whether p lies inside every clip volume.
func PointInClip(p Vector3, clips []Clip, td *ThreadData) bool {
	for _, c := range clips {
		if !c.Inside(p, td) {
			return false
		}
	}
	return true
}

// ClipSphere keeps the ball around Center.
type ClipSphere struct {
	Center   Vector3
	Radius   Real
	Inverted bool
}

func (c *ClipSphere) Inside(p Vector3, _ *ThreadData) bool {
	d := p.Sub(c.Center)
	return (d.Dot(d) <= c.Radius*c.Radius) != c.Inverted
}

// ClipPlane keeps the half-space Normal·p <= Offset.
type ClipPlane struct {
	Normal   Vector3
	Offset   Real
	Inverted bool
}

func (c *ClipPlane) Inside(p Vector3, _ *ThreadData) bool {
	return (c.Normal.Dot(p) <= c.Offset) != c.Inverted
}
