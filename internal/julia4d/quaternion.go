package julia4d

import "gonum.org/v1/gonum/num/quat"

func toQuat(v Vector4) quat.Number {
	return quat.Number{Real: v.X, Imag: v.Y, Jmag: v.Z, Kmag: v.W}
}

func qDot(a, b quat.Number) Real {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// qSqr is q² for q = (x, v): (x² - |v|², 2xv).
func qSqr(q Vector4) Vector4 {
	d := q.Y*q.Y + q.Z*q.Z + q.W*q.W
	x2 := 2 * q.X
	return Vector4{q.X*q.X - d, x2 * q.Y, x2 * q.Z, x2 * q.W}
}

// qCube is q³ for q = (x, v): (x(x² - 3|v|²), v(3x² - |v|²)).
func qCube(q Vector4) Vector4 {
	d := q.Y*q.Y + q.Z*q.Z + q.W*q.W
	x2 := q.X * q.X
	tmp := 3*x2 - d
	return Vector4{q.X * (x2 - 3*d), q.Y * tmp, q.Z * tmp, q.W * tmp}
}

// qSqrTangent pushes a tangent t through q -> q²: z t + t z.
func qSqrTangent(z, t quat.Number) quat.Number {
	return quat.Add(quat.Mul(z, t), quat.Mul(t, z))
}

// qCubeTangent pushes a tangent t through q -> q³: t z z + z t z + z z t.
func qCubeTangent(z, t quat.Number) quat.Number {
	zz := quat.Mul(z, z)
	return quat.Add(quat.Add(quat.Mul(t, zz), quat.Mul(quat.Mul(z, t), z)), quat.Mul(zz, t))
}
