package julia4d

import "iter"

// Object is the contract the scene layer traces against.
type Object interface {
	// AllIntersections pushes every accepted crossing of r onto stack and
	// reports whether there was one.
	AllIntersections(r Ray, stack *IStack, td *ThreadData) bool
	// Intersections yields the same crossings lazily, front to back.
	Intersections(r Ray, td *ThreadData) iter.Seq[Intersection]
	Inside(p Vector3, td *ThreadData) bool
	Normal(hit Intersection, td *ThreadData) Vector3
	Translate(v Vector3)
	Rotate(deg Vector3)
	Scale(v Vector3)
	Transform(t *Transform)
	ComputeBBox()
	BBox() BBox
	Copy() Object
	MaxIterations() int
}
