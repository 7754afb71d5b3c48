package julia4d

import "math"

var inf = math.Inf(1)

// firstHit is the shallowest crossing of r with o.
func firstHit(o Object, r Ray, td *ThreadData) (Intersection, bool) {
	for h := range o.Intersections(r, td) {
		return h, true
	}
	return Intersection{}, false
}

func nearestHit(scene *Scene, r Ray, td *ThreadData, tMax Real) (Intersection, bool) {
	best := Intersection{}
	okAny := false
	bestT := tMax
	if !isFinite(bestT) {
		bestT = 1e300
	}
	rr := computeRayRecips(r.Direction)
	for _, o := range scene.Objects {
		if ok, tNear := rayAABB(r.Origin, o.BBox(), rr); !ok || tNear > bestT {
			continue
		}
		if h, ok := firstHit(o, r, td); ok && h.Depth > 0 && h.Depth < bestT {
			bestT, best, okAny = h.Depth, h, true
		}
	}
	return best, okAny
}
