package julia4d

import (
	"sort"
	"sync"
)

type bvhLeaf struct {
	box BBox
	obj Object
}

type AABBNode struct {
	box      BBox
	left     *AABBNode
	right    *AABBNode
	leafObjs []bvhLeaf // non-nil ⇒ leaf
}

// BVH cache keyed by *Scene; Scene.Add drops the entry.
var bvhCache sync.Map // map[*Scene]*AABBNode

func getOrBuildBVH(s *Scene) *AABBNode {
	if v, ok := bvhCache.Load(s); ok {
		return v.(*AABBNode)
	}
	objs := make([]bvhLeaf, 0, len(s.Objects))
	for _, o := range s.Objects {
		if o == nil {
			continue
		}
		objs = append(objs, bvhLeaf{box: o.BBox(), obj: o})
	}
	var root *AABBNode
	if len(objs) > 0 {
		root = buildBVHRec(objs, 0)
	}
	bvhCache.Store(s, root)
	DebugLog("BVH built for %d objects, root=%+v", len(objs), bvhBox(root))
	return root
}

func bvhBox(n *AABBNode) BBox {
	if n == nil {
		return BBox{}
	}
	return n.box
}

func buildBVHRec(objs []bvhLeaf, depth int) *AABBNode {
	n := len(objs)
	if n == 0 {
		return nil
	}
	box := objs[0].box
	for i := 1; i < n; i++ {
		box = box.Union(objs[i].box)
	}
	if n <= AABBBVHMaxLeafSize {
		return &AABBNode{box: box, leafObjs: objs}
	}

	// Centroid spread picks the split axis.
	c0 := objs[0].box.Center()
	cb := BBox{Min: c0, Max: c0}
	for i := 1; i < n; i++ {
		c := objs[i].box.Center()
		cb = cb.Union(BBox{Min: c, Max: c})
	}
	spread := cb.Max.Sub(cb.Min)
	axis := longestAxis(spread)

	// If all centroids coincide (degenerate), fall back to longest box extent axis.
	if spread[axis] <= 1e-18 {
		axis = longestAxis(box.Max.Sub(box.Min))
	}

	// Sort by chosen centroid axis, split at median
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].box.Center()[axis] < objs[j].box.Center()[axis]
	})
	mid := n / 2
	return &AABBNode{
		box:   box,
		left:  buildBVHRec(objs[:mid], depth+1),
		right: buildBVHRec(objs[mid:], depth+1),
	}
}

func longestAxis(v Vector3) int {
	axis := 0
	if v[1] > v[axis] {
		axis = 1
	}
	if v[2] > v[axis] {
		axis = 2
	}
	return axis
}

// Nearest-hit traversal (iterative, stack-based). Prunes by current best depth.
func traverseNearest(root *AABBNode, r Ray, td *ThreadData, tMax Real) (Intersection, bool) {
	if root == nil {
		return Intersection{}, false
	}
	bestT := tMax
	var best Intersection
	found := false
	rr := computeRayRecips(r.Direction)

	type entry struct {
		n    *AABBNode
		tmin Real
	}
	ok, t0 := rayAABB(r.Origin, root.box, rr)
	if !ok {
		return Intersection{}, false
	}
	stack := []entry{{n: root, tmin: t0}}
	for len(stack) > 0 {
		// pop
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.tmin > bestT {
			continue
		}

		if e.n.leafObjs != nil {
			for i := range e.n.leafObjs {
				if h, ok := firstHit(e.n.leafObjs[i].obj, r, td); ok && h.Depth > 0 && h.Depth < bestT {
					bestT, best, found = h.Depth, h, true
				}
			}
			continue
		}

		// order children near→far (push far first so near is processed next)
		var lOK, rOK bool
		var lT, rT Real
		if e.n.left != nil {
			lOK, lT = rayAABB(r.Origin, e.n.left.box, rr)
			lOK = lOK && lT <= bestT
		}
		if e.n.right != nil {
			rOK, rT = rayAABB(r.Origin, e.n.right.box, rr)
			rOK = rOK && rT <= bestT
		}
		if lOK && rOK {
			if lT < rT {
				stack = append(stack, entry{e.n.right, rT}, entry{e.n.left, lT})
			} else {
				stack = append(stack, entry{e.n.left, lT}, entry{e.n.right, rT})
			}
		} else if lOK {
			stack = append(stack, entry{e.n.left, lT})
		} else if rOK {
			stack = append(stack, entry{e.n.right, rT})
		}
	}
	return best, found
}
