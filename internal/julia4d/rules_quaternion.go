package julia4d

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// juliaRules: q -> q² + c over the quaternions.
type juliaRules struct{ sphereBound }

// z3Rules: q -> q³ + c over the quaternions.
type z3Rules struct{ sphereBound }

func (juliaRules) step(z Vector4, f *FractalSpec) (Vector4, bool) { return qSqr(z).Add(f.Julia), true }
func (z3Rules) step(z Vector4, f *FractalSpec) (Vector4, bool)    { return qCube(z).Add(f.Julia), true }

func (r juliaRules) Iterate(p Vector3, f *FractalSpec, o *Orbit) bool {
	inside, _, _ := iterate(r, p, f, o)
	return inside
}

func (r z3Rules) Iterate(p Vector3, f *FractalSpec, o *Orbit) bool {
	inside, _, _ := iterate(r, p, f, o)
	return inside
}

func (r juliaRules) IterateDist(p, _ Vector3, f *FractalSpec, o *Orbit) (bool, Real) {
	return quaternionDist(r, p, f, o, 1.0/2.0)
}

func (r z3Rules) IterateDist(p, _ Vector3, f *FractalSpec, o *Orbit) (bool, Real) {
	return quaternionDist(r, p, f, o, 1.0/3.0)
}

func (r juliaRules) CalcNormal(o *Orbit, n int, f *FractalSpec) Vector3 {
	return safeNormal(r.gradient(o, n, f))
}

func (r z3Rules) CalcNormal(o *Orbit, n int, f *FractalSpec) Vector3 {
	return safeNormal(r.gradient(o, n, f))
}

func (juliaRules) gradient(o *Orbit, n int, f *FractalSpec) Vector3 {
	return quaternionGradient(o, n, f, qSqrTangent)
}

func (z3Rules) gradient(o *Orbit, n int, f *FractalSpec) Vector3 {
	return quaternionGradient(o, n, f, qCubeTangent)
}

// quaternionDist estimates the distance to the set from an escaped orbit:
// pow^(k+1) · sqrt(N / |z0·z1·…·zk|²) · ln N, k being the escape index and N
// the escaped squared norm.
func quaternionDist(m mapper, p Vector3, f *FractalSpec, o *Orbit, pow Real) (bool, Real) {
	inside, norm, last := iterate(m, p, f, o)
	if inside {
		return true, f.Precision
	}
	d := toQuat(o.At(0))
	scale := pow
	for j := 1; j <= last; j++ {
		d = quat.Mul(d, toQuat(o.At(j)))
		scale *= pow
	}
	dd := qDot(d, d)
	if dd == 0 || !isFinite(dd) {
		return false, f.Precision
	}
	dist := scale * math.Sqrt(norm/dd) * math.Log(norm)
	if !isFinite(dist) {
		return false, f.Precision
	}
	return false, dist
}

// quaternionGradient pushes the three slice tangents through n steps of the
// map (quaternion products do not commute, so push keeps the factor order of
// the forward map) and dots them with z_n.
func quaternionGradient(o *Orbit, n int, f *FractalSpec, push func(z, t quat.Number) quat.Number) Vector3 {
	n = clampIterations(o, n)
	st := f.sliceTangents()
	t := [3]quat.Number{toQuat(st[0]), toQuat(st[1]), toQuat(st[2])}
	for i := 1; i <= n; i++ {
		z := toQuat(o.At(i - 1))
		for k := range t {
			t[k] = push(z, t[k])
		}
		rescaleTangents(&t)
	}
	zn := toQuat(o.At(n))
	return Vector3{qDot(t[0], zn), qDot(t[1], zn), qDot(t[2], zn)}
}

// rescaleTangents keeps long orbits away from overflow; only the direction of
// the final gradient matters there.
func rescaleTangents(t *[3]quat.Number) {
	m := 0.0
	for k := range t {
		if a := quat.Abs(t[k]); a > m {
			m = a
		}
	}
	if m > tangentLimit && isFinite(m) {
		for k := range t {
			t[k] = quat.Scale(1/m, t[k])
		}
	}
}
