package julia4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Real = float64

// Vector3 is an object/world space point or direction.
type Vector3 = mgl64.Vec3

// Vector4 is a 4D value: a quaternion or hypercomplex number, a Julia
// parameter or a slicing hyperplane normal.
type Vector4 struct {
	X, Y, Z, W Real
}

// Vector functions
func (a Vector4) Add(b Vector4) Vector4 { return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (v Vector4) Mul(s Real) Vector4    { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the dot product between two 4D vectors.
func (a Vector4) Dot(b Vector4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Norm2 is the squared Euclidean norm, the quantity compared to the exit value.
func (v Vector4) Norm2() Real { return v.Dot(v) }

// Len returns the Euclidean length of the vector.
func (v Vector4) Len() Real { return math.Sqrt(v.Dot(v)) }

func (v Vector4) finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

func (v Vector4) vec4() mgl64.Vec4 { return mgl64.Vec4{v.X, v.Y, v.Z, v.W} }

func fromVec4(v mgl64.Vec4) Vector4 { return Vector4{v[0], v[1], v[2], v[3]} }

// safeNormal normalizes n, falling back to +Z for zero or non-finite input.
func safeNormal(n Vector3) Vector3 {
	l := n.Len()
	if l == 0 || !isFinite(l) {
		return Vector3{0, 0, 1}
	}
	return n.Mul(1 / l)
}
