package julia4d

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine object-to-world map kept together with its inverse.
type Transform struct {
	M   mgl64.Mat4 // object -> world
	Inv mgl64.Mat4 // world -> object
}

// NewTransform returns the identity.
func NewTransform() *Transform {
	return &Transform{M: mgl64.Ident4(), Inv: mgl64.Ident4()}
}

// Translation moves objects by v.
func Translation(v Vector3) *Transform {
	return &Transform{
		M:   mgl64.Translate3D(v[0], v[1], v[2]),
		Inv: mgl64.Translate3D(-v[0], -v[1], -v[2]),
	}
}

// Scaling treats a zero component as 1.
func Scaling(v Vector3) *Transform {
	for i := range v {
		if v[i] == 0 {
			v[i] = 1
		}
	}
	return &Transform{
		M:   mgl64.Scale3D(v[0], v[1], v[2]),
		Inv: mgl64.Scale3D(1/v[0], 1/v[1], 1/v[2]),
	}
}

// Rotation rotates around X, then Y, then Z, angles in degrees.
func Rotation(deg Vector3) *Transform {
	m := mgl64.HomogRotate3DZ(mgl64.DegToRad(deg[2])).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(deg[1]))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(deg[0])))
	return &Transform{M: m, Inv: m.Transpose()}
}

// FromMatrix wraps an arbitrary affine matrix; it must be invertible.
func FromMatrix(m mgl64.Mat4) (*Transform, error) {
	det := m.Det()
	if mgl64.FloatEqual(det, 0) || math.IsNaN(det) {
		return nil, errors.New("transform matrix is singular")
	}
	return &Transform{M: m, Inv: m.Inv()}, nil
}

// Compose appends o after t.
func (t *Transform) Compose(o *Transform) {
	t.M = o.M.Mul4(t.M)
	t.Inv = t.Inv.Mul4(o.Inv)
}

// Copy returns an independent copy; nil stays nil.
func (t *Transform) Copy() *Transform {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (t *Transform) TransformPoint(p Vector3) Vector3 {
	return t.M.Mul4x1(p.Vec4(1)).Vec3()
}

func (t *Transform) TransformDirection(d Vector3) Vector3 {
	return t.M.Mul4x1(d.Vec4(0)).Vec3()
}

// TransformNormal uses the inverse transpose; the result is not normalized.
func (t *Transform) TransformNormal(n Vector3) Vector3 {
	return t.Inv.Transpose().Mul4x1(n.Vec4(0)).Vec3()
}

func (t *Transform) InverseTransformPoint(p Vector3) Vector3 {
	return t.Inv.Mul4x1(p.Vec4(1)).Vec3()
}

func (t *Transform) InverseTransformDirection(d Vector3) Vector3 {
	return t.Inv.Mul4x1(d.Vec4(0)).Vec3()
}
