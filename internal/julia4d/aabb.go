package julia4d

import "math"

// BBox is an axis-aligned world-space box.
type BBox struct {
	Min, Max Vector3
}

func (b BBox) Center() Vector3 { return b.Min.Add(b.Max).Mul(0.5) }

func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Vector3{math.Min(b.Min[0], o.Min[0]), math.Min(b.Min[1], o.Min[1]), math.Min(b.Min[2], o.Min[2])},
		Max: Vector3{math.Max(b.Max[0], o.Max[0]), math.Max(b.Max[1], o.Max[1]), math.Max(b.Max[2], o.Max[2])},
	}
}

// transformed bounds the eight transformed corners of b.
func (b BBox) transformed(t *Transform) BBox {
	if t == nil {
		return b
	}
	out := BBox{
		Min: Vector3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Vector3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		p := t.TransformPoint(c)
		out = out.Union(BBox{Min: p, Max: p})
	}
	return out
}

type rayRecips struct {
	inv [3]Real
	par [3]bool // parallel flags (|D| < eps)
}

func computeRayRecips(d Vector3) rayRecips {
	const eps = 1e-18
	rr := rayRecips{}
	for i := 0; i < 3; i++ {
		if x := d[i]; x > eps || x < -eps {
			rr.inv[i] = 1 / x
		} else {
			rr.par[i] = true
		}
	}
	return rr
}

// rayAABB is the slab test. It returns the entry distance, which is negative
// when O is inside the box.
func rayAABB(O Vector3, b BBox, rr rayRecips) (bool, Real) {
	tmin, tmax := -1e300, 1e300
	for i := 0; i < 3; i++ {
		if rr.par[i] {
			if O[i] < b.Min[i] || O[i] > b.Max[i] {
				return false, 0
			}
			continue
		}
		t1 := (b.Min[i] - O[i]) * rr.inv[i]
		t2 := (b.Max[i] - O[i]) * rr.inv[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}
	if tmax < 0 || tmin > tmax {
		return false, 0
	}
	return true, tmin
}
