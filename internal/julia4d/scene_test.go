package julia4d

import (
	"math"
	"testing"
)

func rowScene(t *testing.T, xs []Real) *Scene {
	t.Helper()
	s := NewScene()
	for _, x := range xs {
		f := newTestFractal(t, Quaternion, Square, 0, testJulia)
		f.Translate(Vector3{x, 0, 0})
		s.Add(f)
	}
	return s
}

func withBVH(always, never bool, fn func()) {
	a, n := AlwaysBVH, NeverBVH
	AlwaysBVH, NeverBVH = always, never
	defer func() { AlwaysBVH, NeverBVH = a, n }()
	fn()
}

func TestNearestHitBVHMatchesLinear(t *testing.T) {
	xs := []Real{-10, -6, -2, 2, 6, 10}
	s := rowScene(t, xs)
	td := s.NewThreadData()
	for i, x := range xs {
		r := Ray{Origin: Vector3{x, 0, -5}, Direction: Vector3{0, 0, 1}}
		var lin, bvh Intersection
		var okL, okB bool
		withBVH(false, true, func() { lin, okL = s.NearestHit(r, td) })
		withBVH(true, false, func() { bvh, okB = s.NearestHit(r, td) })
		if !okL || !okB {
			t.Fatalf("ray %d: linear %v, bvh %v", i, okL, okB)
		}
		if lin.Object != s.Objects[i] || bvh.Object != s.Objects[i] {
			t.Fatalf("ray %d hit the wrong object", i)
		}
		if lin.Depth != bvh.Depth || math.Abs(lin.Depth-4.07897) > 1e-4 {
			t.Fatalf("ray %d: linear %.9g, bvh %.9g", i, lin.Depth, bvh.Depth)
		}
	}
	miss := Ray{Origin: Vector3{100, 0, -5}, Direction: Vector3{0, 0, 1}}
	withBVH(true, false, func() {
		if _, ok := s.NearestHit(miss, td); ok {
			t.Fatal("BVH reported a hit for a ray outside every box")
		}
	})
}

func TestNearestHitPicksClosest(t *testing.T) {
	s := NewScene()
	for _, z := range []Real{6, 0, 3} {
		f := newTestFractal(t, Quaternion, Square, 0, testJulia)
		f.Translate(Vector3{0, 0, z})
		s.Add(f)
	}
	td := s.NewThreadData()
	for _, always := range []bool{false, true} {
		withBVH(always, false, func() {
			h, ok := s.NearestHit(zRay, td)
			if !ok || h.Object != s.Objects[1] {
				t.Fatalf("always=%v: nearest hit %+v", always, h)
			}
		})
	}
}

func TestSceneAddInvalidatesBVH(t *testing.T) {
	s := rowScene(t, []Real{-6, -2, 2, 6})
	td := s.NewThreadData()
	r := Ray{Origin: Vector3{20, 0, -5}, Direction: Vector3{0, 0, 1}}
	if _, ok := s.NearestHit(r, td); ok {
		t.Fatal("unexpected hit")
	}
	f := newTestFractal(t, Quaternion, Square, 0, testJulia)
	f.Translate(Vector3{20, 0, 0})
	s.Add(f)
	if h, ok := s.NearestHit(r, td); !ok || h.Object != Object(f) {
		t.Fatal("object added after the BVH was built is not traced")
	}
}

func TestSceneInsideAndIterations(t *testing.T) {
	a := newTestFractal(t, Quaternion, Square, 0, Vector4{-0.5, 0, 0, 0})
	s := DefaultFractalSpec()
	s.Iterations = 50
	b, err := NewFractal(s)
	if err != nil {
		t.Fatal(err)
	}
	b.Translate(Vector3{10, 0, 0})
	sc := NewScene(a, b)
	if sc.MaxIterations() != 50 {
		t.Fatalf("MaxIterations = %d", sc.MaxIterations())
	}
	td := sc.NewThreadData()
	if !sc.Inside(Vector3{}, td) || sc.Inside(Vector3{5, 0, 0}, td) {
		t.Fatal("scene Inside misclassified")
	}
	if len(NewScene().Objects) != 0 {
		t.Fatal("empty scene")
	}
	if _, ok := NewScene().NearestHit(zRay, NewThreadData(1)); ok {
		t.Fatal("empty scene hit")
	}
}
