package julia4d

// hcMapper is a hypercomplex map with its derivative f'(z). Hypercomplex
// multiplication commutes, so the chain rule is a plain product of
// derivatives.
type hcMapper interface {
	mapper
	deriv(z Vector4, f *FractalSpec) Vector4
}

// hcSqrRules: z -> z² + c.
type hcSqrRules struct{ sphereBound }

// hcCubeRules: z -> z³ + c.
type hcCubeRules struct{ sphereBound }

// hcReciprocalRules: z -> 1/z + c.
type hcReciprocalRules struct{ sphereBound }

// hcFuncRules: z -> fn(z) + c, fn applied to each duplex half.
type hcFuncRules struct {
	sphereBound
	fn FnID
}

func (hcSqrRules) step(z Vector4, f *FractalSpec) (Vector4, bool) {
	return hSqr(z).Add(f.Julia), true
}

func (hcSqrRules) deriv(z Vector4, _ *FractalSpec) Vector4 { return z.Mul(2) }

func (hcCubeRules) step(z Vector4, f *FractalSpec) (Vector4, bool) {
	d := toDuplex(z)
	return d.mul(d).mul(d).vec().Add(f.Julia), true
}

func (hcCubeRules) deriv(z Vector4, _ *FractalSpec) Vector4 { return hSqr(z).Mul(3) }

func (hcReciprocalRules) step(z Vector4, f *FractalSpec) (Vector4, bool) {
	r, ok := hReciprocal(z)
	if !ok {
		return z, false
	}
	return r.Add(f.Julia), true
}

// d(1/z) = -1/z²
func (hcReciprocalRules) deriv(z Vector4, _ *FractalSpec) Vector4 {
	r, ok := hReciprocal(z)
	if !ok {
		return Vector4{}
	}
	return hSqr(r).Mul(-1)
}

func (r hcFuncRules) step(z Vector4, f *FractalSpec) (Vector4, bool) {
	v := hFunc(r.fn, z, f.Exponent)
	if !v.finite() {
		return z, false
	}
	return v.Add(f.Julia), true
}

func (r hcFuncRules) deriv(z Vector4, f *FractalSpec) Vector4 {
	return hFuncDeriv(r.fn, z, f.Exponent).vec()
}

func (r hcSqrRules) Iterate(p Vector3, f *FractalSpec, o *Orbit) bool { return hcIterate(r, p, f, o) }
func (r hcCubeRules) Iterate(p Vector3, f *FractalSpec, o *Orbit) bool {
	return hcIterate(r, p, f, o)
}
func (r hcReciprocalRules) Iterate(p Vector3, f *FractalSpec, o *Orbit) bool {
	return hcIterate(r, p, f, o)
}
func (r hcFuncRules) Iterate(p Vector3, f *FractalSpec, o *Orbit) bool { return hcIterate(r, p, f, o) }

func (r hcSqrRules) IterateDist(p, dir Vector3, f *FractalSpec, o *Orbit) (bool, Real) {
	return hypercomplexDist(r, p, dir, f, o)
}
func (r hcCubeRules) IterateDist(p, dir Vector3, f *FractalSpec, o *Orbit) (bool, Real) {
	return hypercomplexDist(r, p, dir, f, o)
}
func (r hcReciprocalRules) IterateDist(p, dir Vector3, f *FractalSpec, o *Orbit) (bool, Real) {
	return hypercomplexDist(r, p, dir, f, o)
}
func (r hcFuncRules) IterateDist(p, dir Vector3, f *FractalSpec, o *Orbit) (bool, Real) {
	return hypercomplexDist(r, p, dir, f, o)
}

func (r hcSqrRules) CalcNormal(o *Orbit, n int, f *FractalSpec) Vector3 {
	return safeNormal(hypercomplexGradient(r, o, n, f))
}
func (r hcCubeRules) CalcNormal(o *Orbit, n int, f *FractalSpec) Vector3 {
	return safeNormal(hypercomplexGradient(r, o, n, f))
}
func (r hcReciprocalRules) CalcNormal(o *Orbit, n int, f *FractalSpec) Vector3 {
	return safeNormal(hypercomplexGradient(r, o, n, f))
}
func (r hcFuncRules) CalcNormal(o *Orbit, n int, f *FractalSpec) Vector3 {
	return safeNormal(hypercomplexGradient(r, o, n, f))
}

func (r hcSqrRules) gradient(o *Orbit, n int, f *FractalSpec) Vector3 {
	return hypercomplexGradient(r, o, n, f)
}
func (r hcCubeRules) gradient(o *Orbit, n int, f *FractalSpec) Vector3 {
	return hypercomplexGradient(r, o, n, f)
}
func (r hcReciprocalRules) gradient(o *Orbit, n int, f *FractalSpec) Vector3 {
	return hypercomplexGradient(r, o, n, f)
}
func (r hcFuncRules) gradient(o *Orbit, n int, f *FractalSpec) Vector3 {
	return hypercomplexGradient(r, o, n, f)
}

func hcIterate(m mapper, p Vector3, f *FractalSpec, o *Orbit) bool {
	inside, _, _ := iterate(m, p, f, o)
	return inside
}

// hypercomplexGradient accumulates D = f'(z_{n-1})···f'(z_0) and returns
// D's transposed multiplication matrix applied to z_n, pulled back to the
// slice.
func hypercomplexGradient(m hcMapper, o *Orbit, n int, f *FractalSpec) Vector3 {
	n = clampIterations(o, n)
	d := Vector4{1, 0, 0, 0}
	for j := 0; j < n; j++ {
		d = hMul(m.deriv(o.At(j), f), d)
	}
	return f.project(hTransposeMul(d, o.At(n)))
}

// hypercomplexDist takes one Newton step on the escaped squared norm along
// dir, accepted only inside (Precision, 30·Precision] scaled by the slope.
func hypercomplexDist(m hcMapper, p, dir Vector3, f *FractalSpec, o *Orbit) (bool, Real) {
	inside, norm, last := iterate(m, p, f, o)
	if inside {
		return true, f.Precision
	}
	g := hypercomplexGradient(m, o, last, f)
	step := g.Dot(dir)
	if step < -hypercomplexTolerance && isFinite(step) {
		step = -2 * step
		if norm > f.Precision*step && norm < 30*f.Precision*step {
			return false, norm / step
		}
	}
	return false, f.Precision
}
