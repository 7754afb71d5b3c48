package julia4d

// Scene is a flat list of traceable objects.
type Scene struct {
	Objects []Object
}

// NewScene builds a scene from objs in order.
func NewScene(objs ...Object) *Scene {
	s := &Scene{}
	for _, o := range objs {
		s.Add(o)
	}
	return s
}

func (s *Scene) Add(o Object) {
	s.Objects = append(s.Objects, o)
	bvhCache.Delete(s)
	DebugLog("Scene: added object #%d, bbox=%+v", len(s.Objects)-1, o.BBox())
}

// MaxIterations is the orbit capacity a worker needs for this scene.
func (s *Scene) MaxIterations() int {
	n := 0
	for _, o := range s.Objects {
		n = imax(n, o.MaxIterations())
	}
	return n
}

// NewThreadData returns worker scratch sized for the scene.
func (s *Scene) NewThreadData() *ThreadData { return NewThreadData(s.MaxIterations()) }

// NearestHit returns the closest crossing of r in front of its origin.
func (s *Scene) NearestHit(r Ray, td *ThreadData) (Intersection, bool) {
	useBVH := AlwaysBVH || len(s.Objects) >= AABBBVHFromNObjects
	if NeverBVH || !useBVH {
		return nearestHit(s, r, td, inf)
	}
	DebugLogOnce("nearest hits use the BVH for %d objects", len(s.Objects))
	return NearestHitFunc(s, r, td, inf)
}

// Inside reports whether p is inside any object.
func (s *Scene) Inside(p Vector3, td *ThreadData) bool {
	for _, o := range s.Objects {
		if o.Inside(p, td) {
			return true
		}
	}
	return false
}
