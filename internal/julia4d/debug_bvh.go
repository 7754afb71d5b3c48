package julia4d

import (
	"fmt"
	"io"
	"strings"
)

// DumpAABBBVH writes the scene's BVH with one tab of indentation per level,
// building it if needed. Every node line carries its subtree counts and box.
func DumpAABBBVH(w io.Writer, scene *Scene) bool {
	root := getOrBuildBVH(scene)
	if root == nil {
		fmt.Fprintln(w, "[BVH] <empty>")
		return false
	}
	memo := make(map[*AABBNode]bvhCounts, 2*len(scene.Objects))
	totals := bvhCount(root, memo)
	fmt.Fprintf(w, "[BVH] root: nodes=%d leaves=%d objs=%d\n", totals.nodes, totals.leaves, totals.objs)
	bvhPrint(w, root, 0, memo)
	return true
}

type bvhCounts struct {
	nodes  int
	leaves int
	objs   int
}

func bvhCount(n *AABBNode, memo map[*AABBNode]bvhCounts) bvhCounts {
	if n == nil {
		return bvhCounts{}
	}
	if c, ok := memo[n]; ok {
		return c
	}
	if n.leafObjs != nil {
		c := bvhCounts{nodes: 1, leaves: 1, objs: len(n.leafObjs)}
		memo[n] = c
		return c
	}
	lc := bvhCount(n.left, memo)
	rc := bvhCount(n.right, memo)
	c := bvhCounts{
		nodes:  1 + lc.nodes + rc.nodes,
		leaves: lc.leaves + rc.leaves,
		objs:   lc.objs + rc.objs,
	}
	memo[n] = c
	return c
}

func bvhPrint(w io.Writer, n *AABBNode, depth int, memo map[*AABBNode]bvhCounts) {
	if n == nil {
		return
	}
	ind := strings.Repeat("\t", depth)
	b := n.box
	if n.leafObjs != nil {
		fmt.Fprintf(w, "%sLEAF  objs=%d | min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)\n",
			ind, len(n.leafObjs), b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
		return
	}
	c := memo[n]
	fmt.Fprintf(w, "%sNODE  nodes=%d leaves=%d objs=%d | min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)\n",
		ind, c.nodes, c.leaves, c.objs, b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	bvhPrint(w, n.left, depth+1, memo)
	bvhPrint(w, n.right, depth+1, memo)
}
