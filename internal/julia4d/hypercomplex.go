package julia4d

// Hypercomplex numbers split into two ordinary complex numbers (duplex form):
//
//	(x,y,z,w) -> a = (x-w) + i(y+z), b = (x+w) + i(y-z)
//
// Products, powers and analytic functions act on a and b independently.
type duplex struct {
	a, b complex128
}

func toDuplex(v Vector4) duplex {
	return duplex{
		a: complex(v.X-v.W, v.Y+v.Z),
		b: complex(v.X+v.W, v.Y-v.Z),
	}
}

func (d duplex) vec() Vector4 {
	return Vector4{
		X: 0.5 * (real(d.a) + real(d.b)),
		Y: 0.5 * (imag(d.a) + imag(d.b)),
		Z: 0.5 * (imag(d.a) - imag(d.b)),
		W: 0.5 * (real(d.b) - real(d.a)),
	}
}

func (d duplex) mul(e duplex) duplex { return duplex{d.a * e.a, d.b * e.b} }

// hMul is the hypercomplex product in component form.
func hMul(p, q Vector4) Vector4 {
	return Vector4{
		X: p.X*q.X - p.Y*q.Y - p.Z*q.Z + p.W*q.W,
		Y: p.Y*q.X + p.X*q.Y - p.W*q.Z - p.Z*q.W,
		Z: p.Z*q.X - p.W*q.Y + p.X*q.Z - p.Y*q.W,
		W: p.W*q.X + p.Z*q.Y + p.Y*q.Z + p.X*q.W,
	}
}

func hSqr(v Vector4) Vector4 {
	return Vector4{
		X: v.X*v.X - v.Y*v.Y - v.Z*v.Z + v.W*v.W,
		Y: 2 * (v.X*v.Y - v.Z*v.W),
		Z: 2 * (v.Z*v.X - v.W*v.Y),
		W: 2 * (v.W*v.X + v.Z*v.Y),
	}
}

// hReciprocal is 1/v; ok is false when the determinant vanishes, i.e. when
// either duplex half is zero.
func hReciprocal(v Vector4) (r Vector4, ok bool) {
	x, y, z, w := v.X, v.Y, v.Z, v.W
	det := (sqr(x-w) + sqr(y+z)) * (sqr(x+w) + sqr(y-z))
	if det == 0 {
		return Vector4{}, false
	}
	mod := x*x + y*y + z*z + w*w
	xtMinusYz := x*w - y*z
	return Vector4{
		X: (x*mod - 2*w*xtMinusYz) / det,
		Y: (-y*mod - 2*z*xtMinusYz) / det,
		Z: (-z*mod - 2*y*xtMinusYz) / det,
		W: (w*mod - 2*x*xtMinusYz) / det,
	}, true
}

// hFunc applies a complex function to both duplex halves.
func hFunc(fn FnID, v Vector4, exp complex128) Vector4 {
	d := toDuplex(v)
	return duplex{EvalComplex(fn, d.a, exp), EvalComplex(fn, d.b, exp)}.vec()
}

func hFuncDeriv(fn FnID, v Vector4, exp complex128) duplex {
	d := toDuplex(v)
	return duplex{DerivComplex(fn, d.a, exp), DerivComplex(fn, d.b, exp)}
}

// hTransposeMul returns Mᵀ·n where M is the 4×4 real matrix of left
// multiplication by d.
func hTransposeMul(d Vector4, n Vector4) Vector4 {
	x, y, z, w := d.X, d.Y, d.Z, d.W
	return Vector4{
		X: x*n.X + y*n.Y + z*n.Z + w*n.W,
		Y: -y*n.X + x*n.Y - w*n.Z + z*n.W,
		Z: -z*n.X - w*n.Y + x*n.Z + y*n.W,
		W: w*n.X - z*n.Y - y*n.Z + x*n.W,
	}
}
