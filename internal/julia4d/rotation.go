package julia4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rot4 holds angles in radians for rotations in the six coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

func (r Rot4) zero() bool {
	return r.XY == 0 && r.XZ == 0 && r.XW == 0 && r.YZ == 0 && r.YW == 0 && r.ZW == 0
}

// rotPlane turns axis i towards axis j by a.
func rotPlane(i, j int, a Real) mgl64.Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := mgl64.Ident4()
	M.Set(i, i, c)
	M.Set(i, j, -s)
	M.Set(j, i, s)
	M.Set(j, j, c)
	return M
}

// Compose rotation from angles.
func rotFromAngles(r Rot4) mgl64.Mat4 {
	R := mgl64.Ident4()
	R = rotPlane(2, 3, r.ZW).Mul4(R)
	R = rotPlane(1, 3, r.YW).Mul4(R)
	R = rotPlane(1, 2, r.YZ).Mul4(R)
	R = rotPlane(0, 3, r.XW).Mul4(R)
	R = rotPlane(0, 2, r.XZ).Mul4(R)
	R = rotPlane(0, 1, r.XY).Mul4(R)
	return R
}

// RotateSlice turns a slicing hyperplane normal by r. The hyperplane offset
// is unchanged, so the slice still passes at the same distance from the origin.
func RotateSlice(normal Vector4, r Rot4) Vector4 {
	if r.zero() {
		return normal
	}
	return fromVec4(rotFromAngles(r).Mul4x1(normal.vec4()))
}
