package julia4d

import "math"

// Rules is the per-algebra behaviour of a fractal, resolved once by
// NewFractal. Implementations are stateless and shared between copies and
// goroutines; all mutable state lives in the caller's Orbit.
type Rules interface {
	// Bound clips an object-space ray (unit direction) to the bounding sphere.
	Bound(r Ray, f *FractalSpec) (tMin, tMax Real, ok bool)
	// Iterate reports whether p stays bounded for f.Iterations steps,
	// recording the orbit.
	Iterate(p Vector3, f *FractalSpec, o *Orbit) bool
	// IterateDist is Iterate plus a safe marching step along dir. Bounded
	// points return f.Precision.
	IterateDist(p, dir Vector3, f *FractalSpec, o *Orbit) (bool, Real)
	// CalcNormal returns the unit surface normal from the first n+1 iterates
	// of o (clamped to the iterates actually produced).
	CalcNormal(o *Orbit, n int, f *FractalSpec) Vector3
}

// mapper is one application of z -> f(z) + c. ok is false at a singularity
// of the map, which ends the orbit as bounded.
type mapper interface {
	step(z Vector4, f *FractalSpec) (next Vector4, ok bool)
}

// gradienter exposes the unnormalized gradient of ½|z_n|² with respect to
// the 3D sample point.
type gradienter interface {
	gradient(o *Orbit, n int, f *FractalSpec) Vector3
}

// lift reconstructs w from the slicing hyperplane.
func (f *FractalSpec) lift(p Vector3) Vector4 {
	w := (f.SliceDist - f.Slice.X*p[0] - f.Slice.Y*p[1] - f.Slice.Z*p[2]) / f.Slice.W
	return Vector4{p[0], p[1], p[2], w}
}

// sliceTangents are the 4D images of the unit x, y and z steps in the slice.
func (f *FractalSpec) sliceTangents() [3]Vector4 {
	k := -1 / f.Slice.W
	return [3]Vector4{
		{1, 0, 0, f.Slice.X * k},
		{0, 1, 0, f.Slice.Y * k},
		{0, 0, 1, f.Slice.Z * k},
	}
}

// project pulls a 4D gradient back to the slice.
func (f *FractalSpec) project(g Vector4) Vector3 {
	t := f.sliceTangents()
	return Vector3{g.Dot(t[0]), g.Dot(t[1]), g.Dot(t[2])}
}

// iterate is the escape-time loop shared by all rules. On escape it returns
// the escaped squared norm and its orbit index.
func iterate(m mapper, p Vector3, f *FractalSpec, o *Orbit) (inside bool, norm Real, last int) {
	z := f.lift(p)
	o.set(0, z)
	for i := 1; i <= f.Iterations; i++ {
		norm = z.Norm2()
		if norm > f.ExitValue {
			return false, norm, i - 1
		}
		next, ok := m.step(z, f)
		if !ok {
			return true, norm, i - 1
		}
		z = next
		o.set(i, z)
	}
	return true, z.Norm2(), f.Iterations
}

func clampIterations(o *Orbit, n int) int {
	if n > o.Last() {
		n = o.Last()
	}
	if n < 0 {
		n = 0
	}
	return n
}

type sphereBound struct{}

// Bound intersects the ray with the bounding sphere (Center, RadiusSq).
func (sphereBound) Bound(r Ray, f *FractalSpec) (tMin, tMax Real, ok bool) {
	return intersectSphere(r, f.Center, f.RadiusSq)
}

// intersectSphere expects a unit direction. It fails when the sphere lies
// entirely behind the origin.
func intersectSphere(r Ray, center Vector3, radiusSq Real) (t0, t1 Real, ok bool) {
	oc := center.Sub(r.Origin)
	ocSq := oc.Dot(oc)
	tClosest := oc.Dot(r.Direction)
	if ocSq >= radiusSq && tClosest < epsSphere {
		return 0, 0, false
	}
	halfSq := radiusSq - ocSq + tClosest*tClosest
	if halfSq < epsSphere {
		return 0, 0, false
	}
	half := math.Sqrt(halfSq)
	return tClosest - half, tClosest + half, true
}
