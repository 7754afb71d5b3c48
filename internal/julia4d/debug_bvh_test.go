package julia4d

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpAABBBVH(t *testing.T) {
	var buf bytes.Buffer
	if DumpAABBBVH(&buf, NewScene()) {
		t.Fatal("empty scene has no BVH")
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Fatalf("dump %q", buf.String())
	}

	buf.Reset()
	s := rowScene(t, []Real{-10, -6, -2, 2, 6})
	if !DumpAABBBVH(&buf, s) {
		t.Fatal("dump failed")
	}
	out := buf.String()
	// median splits: 5 -> 2 | 3, 3 -> 1 | 2
	if !strings.HasPrefix(out, "[BVH] root: nodes=5 leaves=3 objs=5\n") {
		t.Fatalf("dump:\n%s", out)
	}
	if strings.Count(out, "LEAF") != 3 || strings.Count(out, "NODE") != 2 {
		t.Fatalf("dump:\n%s", out)
	}
}
