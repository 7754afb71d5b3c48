package julia4d

import (
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

func fromQuat(q quat.Number) Vector4 {
	return Vector4{q.Real, q.Imag, q.Jmag, q.Kmag}
}

func TestQuaternionPowers(t *testing.T) {
	v := Vector4{0.3, -0.2, 0.25, 0.1}
	q := toQuat(v)
	sq := fromQuat(quat.Mul(q, q))
	if got := qSqr(v); !near4(got, sq, 1e-15) {
		t.Fatalf("qSqr = %+v, want %+v", got, sq)
	}
	cu := fromQuat(quat.Mul(quat.Mul(q, q), q))
	if got := qCube(v); !near4(got, cu, 1e-15) {
		t.Fatalf("qCube = %+v, want %+v", got, cu)
	}
	if qDot(q, q) != v.Norm2() {
		t.Fatal("qDot mismatch")
	}
}

func TestQuaternionTangents(t *testing.T) {
	z := toQuat(Vector4{0.3, -0.2, 0.25, 0.1})
	tn := toQuat(Vector4{0.1, 0.4, -0.3, 0.2})
	const h = 1e-6
	zp, zm := quat.Add(z, quat.Scale(h, tn)), quat.Sub(z, quat.Scale(h, tn))
	fd := quat.Scale(1/(2*h), quat.Sub(quat.Mul(zp, zp), quat.Mul(zm, zm)))
	if got := qSqrTangent(z, tn); quat.Abs(quat.Sub(got, fd)) > 1e-8 {
		t.Fatalf("square tangent %v, finite difference %v", got, fd)
	}
	cube := func(q quat.Number) quat.Number { return quat.Mul(quat.Mul(q, q), q) }
	fd = quat.Scale(1/(2*h), quat.Sub(cube(zp), cube(zm)))
	if got := qCubeTangent(z, tn); quat.Abs(quat.Sub(got, fd)) > 1e-8 {
		t.Fatalf("cube tangent %v, finite difference %v", got, fd)
	}
}
