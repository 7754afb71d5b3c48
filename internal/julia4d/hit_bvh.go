package julia4d

// nearestHitBVH returns the closest positive depth hit among all scene objects.
// It uses the BVH (AABB tree). tMax can be +Inf to search everything.
func nearestHitBVH(scene *Scene, r Ray, td *ThreadData, tMax Real) (Intersection, bool) {
	root := getOrBuildBVH(scene)
	if root == nil {
		return Intersection{}, false
	}
	return traverseNearest(root, r, td, tMax)
}
