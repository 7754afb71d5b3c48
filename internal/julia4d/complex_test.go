package julia4d

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestDerivComplexMatchesFiniteDifference(t *testing.T) {
	z := complex(0.3, 0.4)
	e := complex(2.5, 0.5)
	const h = 1e-6
	for fn := FnID(0); fn < numFns; fn++ {
		fd := (EvalComplex(fn, z+h, e) - EvalComplex(fn, z-h, e)) / (2 * h)
		d := DerivComplex(fn, z, e)
		if diff := cmplx.Abs(fd - d); diff > 1e-6*math.Max(1, cmplx.Abs(d)) {
			t.Fatalf("%s: derivative %v, finite difference %v (diff %.3g)", fn, d, fd, diff)
		}
	}
}

func TestEvalComplexAgainstCmplx(t *testing.T) {
	z := complex(0.3, 0.4)
	want := map[FnID]complex128{
		FnExp:  cmplx.Exp(z),
		FnLn:   cmplx.Log(z),
		FnSin:  cmplx.Sin(z),
		FnCos:  cmplx.Cos(z),
		FnTan:  cmplx.Tan(z),
		FnSinh: cmplx.Sinh(z),
		FnCosh: cmplx.Cosh(z),
		FnTanh: cmplx.Tanh(z),
		FnATan: cmplx.Atan(z),
	}
	for fn, w := range want {
		if got := EvalComplex(fn, z, 0); cmplx.Abs(got-w) > 1e-12 {
			t.Fatalf("%s(%v) = %v, want %v", fn, z, got, w)
		}
	}
}

func TestComplexGuards(t *testing.T) {
	if got := EvalComplex(FnPwr, 0, complex(2.5, 0.5)); got != 0 {
		t.Fatalf("pwr(0) = %v, want 0", got)
	}
	if got := EvalComplex(FnTan, complex(math.Pi/2, 0), 0); cmplx.IsNaN(got) || cmplx.IsInf(got) {
		t.Fatalf("tan(pi/2) not finite: %v", got)
	}
	if got := EvalComplex(FnATanh, 1, 0); got != 0 {
		t.Fatalf("atanh(1) = %v, want 0", got)
	}
	if got := DerivComplex(FnLn, 0, 0); got != 0 {
		t.Fatalf("ln'(0) = %v, want 0", got)
	}
	// pwr with an integer exponent is the plain power
	z := complex(0.3, 0.4)
	if got := EvalComplex(FnPwr, z, 2); cmplx.Abs(got-z*z) > 1e-14 {
		t.Fatalf("pwr(z, 2) = %v, want %v", got, z*z)
	}
}

func TestParseFn(t *testing.T) {
	for fn := FnID(0); fn < numFns; fn++ {
		got, err := ParseFn(fn.String())
		if err != nil || got != fn {
			t.Fatalf("ParseFn(%q) = %v, %v", fn.String(), got, err)
		}
	}
	if got, err := ParseFn("  ASinh "); err != nil || got != FnASinh {
		t.Fatalf("ParseFn is not case insensitive: %v, %v", got, err)
	}
	if _, err := ParseFn("sqrt"); err == nil {
		t.Fatal("expected error for unknown function")
	}
	if numFns.Valid() {
		t.Fatal("numFns must not be valid")
	}
}
