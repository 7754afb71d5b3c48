package julia4d

import (
	"math"
	"testing"
)

var testJulia = Vector4{-0.2, 0.6, 0.2, 0.2}

// newTestFractal builds an untransformed fractal or fails the test.
func newTestFractal(t *testing.T, alg Algebra, m MapKind, fn FnID, c Vector4) *Fractal {
	t.Helper()
	s := DefaultFractalSpec()
	s.Algebra, s.Map, s.Fn, s.Julia = alg, m, fn, c
	f, err := NewFractal(s)
	if err != nil {
		t.Fatalf("NewFractal: %v", err)
	}
	return f
}

// halfNormAfter is ½|z_n|² of the raw map, the scalar the gradients differentiate.
func halfNormAfter(m mapper, f *FractalSpec, p Vector3, n int) Real {
	z := f.lift(p)
	for i := 0; i < n; i++ {
		z, _ = m.step(z, f)
	}
	return z.Norm2() / 2
}

func TestEscapeIndex(t *testing.T) {
	f := newTestFractal(t, Quaternion, Square, 0, testJulia)
	if math.Abs(f.ExitValue-2.8656) > 1e-4 {
		t.Fatalf("exit value %.6g", f.ExitValue)
	}
	o := NewOrbit(f.Iterations)
	inside, norm, last := iterate(f.rules.(mapper), Vector3{1.5, 0, 0}, &f.FractalSpec, o)
	if inside {
		t.Fatal("(1.5,0,0) should escape")
	}
	if last != 1 || o.Last() != 1 {
		t.Fatalf("escape index %d (orbit last %d), want 1", last, o.Last())
	}
	if math.Abs(norm-4.6425) > 1e-9 || norm <= f.ExitValue {
		t.Fatalf("escaped norm %.12g", norm)
	}
}

func TestIterateBoundedAndIdempotent(t *testing.T) {
	f := newTestFractal(t, Quaternion, Square, 0, Vector4{-0.5, 0, 0, 0})
	o := NewOrbit(2000)
	for _, p := range []Vector3{{}, {0.1, 0.1, 0}} {
		if !f.rules.Iterate(p, &f.FractalSpec, o) {
			t.Fatalf("%v should be inside", p)
		}
		if o.Last() != f.Iterations {
			t.Fatalf("bounded orbit should have %d iterates, got %d", f.Iterations, o.Last())
		}
	}
	long := f.FractalSpec
	long.Iterations = 2000
	if !f.rules.Iterate(Vector3{}, &long, o) {
		t.Fatal("origin should stay bounded for 2000 iterations")
	}

	p := Vector3{0.3, -0.2, 0.25}
	first := f.rules.Iterate(p, &f.FractalSpec, o)
	firstLast := o.Last()
	for i := 0; i < 3; i++ {
		if f.rules.Iterate(p, &f.FractalSpec, o) != first || o.Last() != firstLast {
			t.Fatal("Iterate is not deterministic")
		}
	}
}

func TestIterateDist(t *testing.T) {
	f := newTestFractal(t, Quaternion, Square, 0, testJulia)
	o := NewOrbit(f.Iterations)
	inside, d := f.rules.IterateDist(Vector3{1.5, 0, 0}, Vector3{0, 0, 1}, &f.FractalSpec, o)
	if inside || math.Abs(d-0.2559) > 1e-3 {
		t.Fatalf("IterateDist = %v, %.6g; want false, 0.2559", inside, d)
	}

	g := newTestFractal(t, Quaternion, Square, 0, Vector4{-0.5, 0, 0, 0})
	inside, d = g.rules.IterateDist(Vector3{}, Vector3{0, 0, 1}, &g.FractalSpec, o)
	if !inside || d != g.Precision {
		t.Fatalf("IterateDist = %v, %.6g; want true, %g", inside, d, g.Precision)
	}

	h := newTestFractal(t, Hypercomplex, Square, 0, testJulia)
	inside, d = h.rules.IterateDist(Vector3{3, 0, 0}, Vector3{-1, 0, 0}, &h.FractalSpec, o)
	if inside || d < h.Precision || !isFinite(d) {
		t.Fatalf("hypercomplex IterateDist = %v, %.6g", inside, d)
	}
}

func TestGradientsMatchFiniteDifference(t *testing.T) {
	type variant struct {
		name string
		alg  Algebra
		m    MapKind
		fn   FnID
	}
	variants := []variant{
		{"quaternion sqr", Quaternion, Square, 0},
		{"quaternion cube", Quaternion, Cube, 0},
		{"hypercomplex sqr", Hypercomplex, Square, 0},
		{"hypercomplex cube", Hypercomplex, Cube, 0},
		{"hypercomplex reciprocal", Hypercomplex, Reciprocal, 0},
	}
	for fn := FnID(0); fn < numFns; fn++ {
		variants = append(variants, variant{"hypercomplex " + fn.String(), Hypercomplex, Function, fn})
	}

	const n = 3
	const h = 1e-6
	p := Vector3{0.3, -0.2, 0.25}
	for _, v := range variants {
		spec := FractalSpec{
			Julia:      testJulia,
			Slice:      Vector4{0.2, 0.1, -0.3, 1},
			SliceDist:  0.1,
			ExitValue:  1e30,
			Iterations: n,
			Algebra:    v.alg,
			Map:        v.m,
			Fn:         v.fn,
		}
		if v.m == Function {
			spec.Julia = Vector4{0.1, 0.05, -0.05, 0.02}
			spec.Exponent = complex(2.5, 0.5)
		}
		rules, err := newRules(&spec)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		o := NewOrbit(n)
		rules.Iterate(p, &spec, o)
		if o.Last() != n {
			t.Fatalf("%s: orbit stopped at %d", v.name, o.Last())
		}
		g := rules.(gradienter).gradient(o, n, &spec)

		m := rules.(mapper)
		var fd Vector3
		for k := 0; k < 3; k++ {
			dp := Vector3{}
			dp[k] = h
			fd[k] = (halfNormAfter(m, &spec, p.Add(dp), n) - halfNormAfter(m, &spec, p.Sub(dp), n)) / (2 * h)
		}
		if diff := g.Sub(fd).Len(); diff > 1e-5*math.Max(1, g.Len()) {
			t.Fatalf("%s: gradient %v, finite difference %v", v.name, g, fd)
		}
		nrm := rules.CalcNormal(o, n, &spec)
		if math.Abs(nrm.Len()-1) > 1e-12 || nrm.Dot(g) <= 0 {
			t.Fatalf("%s: CalcNormal %v not along gradient %v", v.name, nrm, g)
		}
	}
}

func TestCalcNormalClampsIndex(t *testing.T) {
	f := newTestFractal(t, Quaternion, Square, 0, testJulia)
	o := NewOrbit(f.Iterations)
	f.rules.Iterate(Vector3{1.5, 0, 0}, &f.FractalSpec, o)
	a := f.rules.CalcNormal(o, o.Last(), &f.FractalSpec)
	b := f.rules.CalcNormal(o, 1000, &f.FractalSpec)
	if a != b {
		t.Fatalf("out of range index not clamped: %v vs %v", a, b)
	}
}

func TestReciprocalSingularity(t *testing.T) {
	f := newTestFractal(t, Hypercomplex, Reciprocal, 0, Vector4{-0.083, 0, -0.83, -0.025})
	o := NewOrbit(f.Iterations)
	if !f.rules.Iterate(Vector3{}, &f.FractalSpec, o) {
		t.Fatal("singular step should count as bounded")
	}
	if o.Last() != 0 {
		t.Fatalf("orbit should stop at the singular point, last = %d", o.Last())
	}
	if n := f.rules.CalcNormal(o, o.Last(), &f.FractalSpec); n != (Vector3{0, 0, 1}) {
		t.Fatalf("degenerate normal = %v, want +Z", n)
	}
}

func TestLnAtOriginIsBounded(t *testing.T) {
	f := newTestFractal(t, Hypercomplex, Function, FnLn, Vector4{})
	o := NewOrbit(f.Iterations)
	if !f.rules.Iterate(Vector3{}, &f.FractalSpec, o) {
		t.Fatal("ln(0) should end the orbit as bounded")
	}
}

func TestPwrTwoMatchesSquare(t *testing.T) {
	sq := newTestFractal(t, Hypercomplex, Square, 0, testJulia)
	s := DefaultFractalSpec()
	s.Algebra, s.Map, s.Fn, s.Julia, s.Exponent = Hypercomplex, Function, FnPwr, testJulia, 2
	pw, err := NewFractal(s)
	if err != nil {
		t.Fatal(err)
	}
	o1, o2 := NewOrbit(sq.Iterations), NewOrbit(pw.Iterations)
	for _, p := range []Vector3{{0.1, 0.2, -0.3}, {0.3, -0.2, 0.25}, {}} {
		in1 := sq.rules.Iterate(p, &sq.FractalSpec, o1)
		in2 := pw.rules.Iterate(p, &pw.FractalSpec, o2)
		if in1 != in2 || o1.Last() != o2.Last() {
			t.Fatalf("%v: sqr (%v, %d) vs pwr2 (%v, %d)", p, in1, o1.Last(), in2, o2.Last())
		}
		for i := 0; i <= 5 && i <= o1.Last(); i++ {
			if !near4(o1.At(i), o2.At(i), 1e-12) {
				t.Fatalf("%v: iterate %d differs: %+v vs %+v", p, i, o1.At(i), o2.At(i))
			}
		}
	}
}

func TestBound(t *testing.T) {
	f := newTestFractal(t, Quaternion, Square, 0, testJulia)
	t0, t1, ok := f.rules.Bound(Ray{Origin: Vector3{0, 0, -5}, Direction: Vector3{0, 0, 1}}, &f.FractalSpec)
	if !ok || math.Abs(t0-(5-f.Radius)) > 1e-9 || math.Abs(t1-(5+f.Radius)) > 1e-9 {
		t.Fatalf("Bound = %g, %g, %v", t0, t1, ok)
	}
	if _, _, ok := f.rules.Bound(Ray{Origin: Vector3{5, 5, -5}, Direction: Vector3{0, 0, 1}}, &f.FractalSpec); ok {
		t.Fatal("ray beside the sphere should miss")
	}
	if _, _, ok := f.rules.Bound(Ray{Origin: Vector3{0, 0, -5}, Direction: Vector3{0, 0, -1}}, &f.FractalSpec); ok {
		t.Fatal("sphere behind the origin should miss")
	}
	// from inside the sphere the entry is behind the origin
	t0, t1, ok = f.rules.Bound(Ray{Direction: Vector3{1, 0, 0}}, &f.FractalSpec)
	if !ok || t0 >= 0 || t1 <= 0 {
		t.Fatalf("inside Bound = %g, %g, %v", t0, t1, ok)
	}
}

func TestSliceLift(t *testing.T) {
	s := FractalSpec{Slice: Vector4{0.2, 0.1, -0.3, 1}, SliceDist: 0.1}
	p := Vector3{0.3, -0.2, 0.25}
	z := s.lift(p)
	if d := s.Slice.Dot(z); math.Abs(d-s.SliceDist) > 1e-15 {
		t.Fatalf("lifted point off the slice: %g", d)
	}
	for _, tg := range s.sliceTangents() {
		if math.Abs(s.Slice.Dot(tg)) > 1e-15 {
			t.Fatalf("tangent %+v leaves the slice", tg)
		}
	}
}
