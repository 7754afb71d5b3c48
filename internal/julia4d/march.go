package julia4d

import (
	"iter"
	"math"
)

// AllIntersections pushes the crossings of r onto stack. A fractal that is
// not a CSG child stops at the first accepted crossing.
func (f *Fractal) AllIntersections(r Ray, stack *IStack, td *ThreadData) bool {
	found := false
	f.march(r, td, func(hit Intersection) bool {
		stack.Push(hit)
		found = true
		return true
	})
	return found
}

// Intersections yields the crossings of r front to back.
func (f *Fractal) Intersections(r Ray, td *ThreadData) iter.Seq[Intersection] {
	return func(yield func(Intersection) bool) {
		f.march(r, td, yield)
	}
}

// march bounds r by the sphere, steps along it by the distance estimate until
// the inside/outside classification flips, bisects the bracket down to
// fractalTolerance and emits the crossing. Depths are in units of
// r.Direction.
func (f *Fractal) march(r Ray, td *ThreadData, emit func(Intersection) bool) {
	td.Stats.RayTests++
	spec := &f.FractalSpec
	rules := f.rules
	o := td.Orbit(spec.Iterations)

	origin, dir := r.Origin, r.Direction
	if f.trans != nil {
		origin = f.trans.InverseTransformPoint(origin)
		dir = f.trans.InverseTransformDirection(dir)
	}
	l := dir.Len()
	if l == 0 || !isFinite(l) {
		return
	}
	lenInv := 1 / l
	dir = dir.Mul(lenInv)

	depth, depthMax, ok := rules.Bound(Ray{Origin: origin, Direction: dir}, spec)
	if !ok || depthMax < fractalTolerance {
		if Debug {
			logRay("bound", Miss, r, Vector3{}, 0)
		}
		return
	}
	depth = math.Max(depth, fractalTolerance)

	found := false
	defer func() {
		if found {
			td.Stats.RaySuccesses++
		}
	}()

	next := origin.Add(dir.Mul(depth))
	cur, dist := rules.IterateDist(next, dir, spec, o)
	if cur {
		if Debug {
			logRay("start", StartInside, r, next, depth*lenInv)
		}
		next = next.Add(dir.Mul(2 * fractalTolerance))
		depth += 2 * fractalTolerance
		if depth > depthMax {
			return
		}
		cur, dist = rules.IterateDist(next, dir, spec, o)
	}

	for depth < depthMax {
		var (
			ipoint     Vector3
			nextInside bool
			distNext   Real
			depthNext  Real
		)
		for {
			dist = math.Max(dist, spec.Precision)
			depth += dist
			if depth > depthMax {
				if Debug && !found {
					logRay("march", Miss, r, Vector3{}, depthMax*lenInv)
				}
				return
			}
			ipoint = next
			next = next.Add(dir.Mul(dist))
			nextInside, distNext = rules.IterateDist(next, dir, spec, o)
			if nextInside != cur {
				depthNext = depth
				depth -= dist
				break
			}
			dist = distNext
		}

		var moved Real
		var last bool
		ipoint, dist, moved, last = bisect(rules, spec, o, ipoint, dir, dist, cur)
		depth += moved

		// The reported point is always the inside end of the bracket, with
		// its orbit in the buffer.
		if !cur {
			ipoint = ipoint.Add(dir.Mul(dist))
			depth += dist
			rules.Iterate(ipoint, spec, o)
		} else if last != cur {
			rules.Iterate(ipoint, spec, o)
		}

		point := ipoint
		normal := rules.CalcNormal(o, o.Last(), spec)
		if f.trans != nil {
			point = f.trans.TransformPoint(point)
		}
		normal = f.worldNormal(normal)

		if len(f.clip) == 0 || PointInClip(point, f.clip, td) {
			found = true
			if Debug {
				logRay("march", Hit, r, point, depth*lenInv)
			}
			if !emit(Intersection{Depth: depth * lenInv, Point: point, Normal: normal, Object: f}) || !f.child {
				return
			}
		} else {
			td.Stats.Clipped++
			if Debug {
				logRay("march", Clipped, r, point, depth*lenInv)
			}
		}

		// resume from the far end of the bracket
		dist = distNext
		cur = nextInside
		depth = depthNext
	}
}

// bisect halves the bracket [p, p+dist·dir], whose near end classifies as
// cur and far end does not, until it is no wider than fractalTolerance.
// It returns the new near end, the final width, how far the near end moved
// and the classification of the last probe (whose orbit is in o).
func bisect(rules Rules, spec *FractalSpec, o *Orbit, p, dir Vector3, dist Real, cur bool) (Vector3, Real, Real, bool) {
	moved := 0.0
	last := cur
	for dist > fractalTolerance {
		dist *= 0.5
		mid := p.Add(dir.Mul(dist))
		last = rules.Iterate(mid, spec, o)
		if last == cur {
			p = mid
			moved += dist
		}
	}
	return p, dist, moved, last
}
