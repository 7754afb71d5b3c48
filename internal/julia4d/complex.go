package julia4d

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// FnID names an analytic complex function used by the hypercomplex
// generalized-function rule.
type FnID uint8

const (
	FnExp FnID = iota
	FnLn
	FnSin
	FnASin
	FnCos
	FnACos
	FnTan
	FnATan
	FnSinh
	FnASinh
	FnCosh
	FnACosh
	FnTanh
	FnATanh
	FnPwr
	numFns
)

type complexFn struct {
	name  string
	eval  func(z, e complex128) complex128
	deriv func(z, e complex128) complex128
}

// complexFns is indexed by FnID.
var complexFns = [numFns]complexFn{
	FnExp:   {"exp", cExp, cExp},
	FnLn:    {"ln", cLn, func(z, _ complex128) complex128 { return cdiv(1, z) }},
	FnSin:   {"sin", cSin, cCos},
	FnASin:  {"asin", cASin, func(z, _ complex128) complex128 { return cdiv(1, cmplx.Sqrt(1-z*z)) }},
	FnCos:   {"cos", cCos, func(z, e complex128) complex128 { return -cSin(z, e) }},
	FnACos:  {"acos", cACos, func(z, _ complex128) complex128 { return cdiv(-1i, cmplx.Sqrt(z*z-1)) }},
	FnTan:   {"tan", cTan, cTanDeriv},
	FnATan:  {"atan", cATan, func(z, _ complex128) complex128 { return cdiv(1, 1+z*z) }},
	FnSinh:  {"sinh", cSinh, cCosh},
	FnASinh: {"asinh", cASinh, func(z, _ complex128) complex128 { return cdiv(1, cmplx.Sqrt(z*z+1)) }},
	FnCosh:  {"cosh", cCosh, cSinh},
	FnACosh: {"acosh", cACosh, func(z, _ complex128) complex128 { return cdiv(1, cmplx.Sqrt(z*z-1)) }},
	FnTanh:  {"tanh", cTanh, cTanhDeriv},
	FnATanh: {"atanh", cATanh, func(z, _ complex128) complex128 { return cdiv(1, 1-z*z) }},
	FnPwr:   {"pwr", cPwr, cPwrDeriv},
}

func (f FnID) Valid() bool { return f < numFns }

func (f FnID) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FnID(%d)", uint8(f))
	}
	return complexFns[f].name
}

// ParseFn maps a function name ("exp", "ASinh", ...) to its FnID.
func ParseFn(name string) (FnID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range complexFns {
		if complexFns[i].name == n {
			return FnID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown complex function %q", name)
}

// EvalComplex applies fn to z; e is only read by FnPwr.
func EvalComplex(fn FnID, z, e complex128) complex128 {
	return complexFns[fn].eval(z, e)
}

// DerivComplex is d/dz of EvalComplex on the same branch.
func DerivComplex(fn FnID, z, e complex128) complex128 {
	return complexFns[fn].deriv(z, e)
}

// cdiv returns 0 for a zero-modulus divisor.
func cdiv(a, b complex128) complex128 {
	if real(b) == 0 && imag(b) == 0 {
		return 0
	}
	return a / b
}

func cExp(z, _ complex128) complex128 {
	ex := math.Exp(real(z))
	return complex(ex*math.Cos(imag(z)), ex*math.Sin(imag(z)))
}

func cLn(z, _ complex128) complex128 {
	return complex(math.Log(cmplx.Abs(z)), math.Atan2(imag(z), real(z)))
}

func cSin(z, _ complex128) complex128 {
	x, y := real(z), imag(z)
	return complex(math.Sin(x)*math.Cosh(y), math.Cos(x)*math.Sinh(y))
}

func cCos(z, _ complex128) complex128 {
	x, y := real(z), imag(z)
	return complex(math.Cos(x)*math.Cosh(y), -math.Sin(x)*math.Sinh(y))
}

func cSinh(z, _ complex128) complex128 {
	x, y := real(z), imag(z)
	return complex(math.Sinh(x)*math.Cos(y), math.Cosh(x)*math.Sin(y))
}

func cCosh(z, _ complex128) complex128 {
	x, y := real(z), imag(z)
	return complex(math.Cosh(x)*math.Cos(y), math.Sinh(x)*math.Sin(y))
}

func cTan(z, _ complex128) complex128 {
	x, y := 2*real(z), 2*imag(z)
	den := math.Cos(x) + math.Cosh(y)
	if den == 0 {
		return 0
	}
	return complex(math.Sin(x)/den, math.Sinh(y)/den)
}

func cTanh(z, _ complex128) complex128 {
	x, y := 2*real(z), 2*imag(z)
	den := math.Cosh(x) + math.Cos(y)
	if den == 0 {
		return 0
	}
	return complex(math.Sinh(x)/den, math.Sin(y)/den)
}

// tan' z = 1/cos² z
func cTanDeriv(z, e complex128) complex128 {
	c := cCos(z, e)
	return cdiv(1, c*c)
}

// tanh' z = 1/cosh² z
func cTanhDeriv(z, e complex128) complex128 {
	c := cCosh(z, e)
	return cdiv(1, c*c)
}

// asin z = -i ln(iz + sqrt(1 - z²))
func cASin(z, e complex128) complex128 {
	return -1i * cLn(1i*z+cmplx.Sqrt(1-z*z), e)
}

// acos z = -i ln(z + sqrt(z² - 1))
func cACos(z, e complex128) complex128 {
	return -1i * cLn(z+cmplx.Sqrt(z*z-1), e)
}

// asinh z = ln(z + sqrt(z² + 1))
func cASinh(z, e complex128) complex128 {
	return cLn(z+cmplx.Sqrt(z*z+1), e)
}

// acosh z = ln(z + sqrt(z² - 1))
func cACosh(z, e complex128) complex128 {
	return cLn(z+cmplx.Sqrt(z*z-1), e)
}

// atanh z = ½ ln((1+z)/(1-z))
func cATanh(z, e complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case x == 0:
		return complex(0, math.Atan(y))
	case math.Abs(x) == 1 && y == 0:
		return 0
	case math.Abs(x) < 1 && y == 0:
		return complex(math.Log((1+x)/(1-x))/2, 0)
	}
	return 0.5 * cLn(cdiv(1+z, 1-z), e)
}

// atan z = (i/2) ln((1-iz)/(1+iz))
func cATan(z, e complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case x == 0 && y == 0:
		return 0
	case y == 0:
		return complex(math.Atan(x), 0)
	case x == 0:
		return 1i * cATanh(complex(y, 0), e)
	}
	iz := 1i * z
	return 0.5i * cLn(cdiv(1-iz, 1+iz), e)
}

// cPwr is a^b = exp(b ln a) with Pwr(0, b) = 0.
func cPwr(a, b complex128) complex128 {
	if a == 0 {
		return 0
	}
	t := cLn(a, 0) * b
	if real(t) < -690 {
		return 0
	}
	return cExp(t, 0)
}

// d/da a^b = b a^b / a
func cPwrDeriv(a, b complex128) complex128 {
	return cdiv(b*cPwr(a, b), a)
}
