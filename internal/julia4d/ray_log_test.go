package julia4d

import "testing"

func TestRayLogCache(t *testing.T) {
	resetRayLog()
	defer resetRayLog()
	logRay("foo", Hit, Ray{}, Vector3{}, 1)
	logRay("foo", Miss, Ray{}, Vector3{}, 2)
	logRay("bar", Clipped, Ray{}, Vector3{}, 3)
	if len(cache.rays["foo"]) != 2 || len(cache.rays["bar"]) != 1 {
		t.Fatalf("unexpected cache sizes: %+v", cache.rays)
	}
	if cache.rays["bar"][0].Category != Clipped || cache.rays["foo"][1].Depth != 2 {
		t.Fatalf("unexpected entries: %+v", cache.rays)
	}
	raysStats()
}

func TestCategoryString(t *testing.T) {
	want := map[Category]string{Hit: "hit", Miss: "miss", Clipped: "clipped", StartInside: "start_inside", 99: "unknown"}
	for c, s := range want {
		if c.String() != s {
			t.Fatalf("%d: %q, want %q", c, c.String(), s)
		}
	}
}

func TestMarchLogsRaysInDebug(t *testing.T) {
	Debug = true
	resetRayLog()
	defer func() {
		Debug = false
		resetRayLog()
	}()
	f := newTestFractal(t, Quaternion, Square, 0, testJulia)
	td := NewThreadData(f.MaxIterations())
	firstHit(f, zRay, td)
	firstHit(f, Ray{Origin: Vector3{5, 5, -5}, Direction: Vector3{0, 0, 1}}, td)
	if len(cache.rays["march"]) != 1 || cache.rays["march"][0].Category != Hit {
		t.Fatalf("march log %+v", cache.rays["march"])
	}
	if len(cache.rays["bound"]) != 1 || cache.rays["bound"][0].Category != Miss {
		t.Fatalf("bound log %+v", cache.rays["bound"])
	}
}
