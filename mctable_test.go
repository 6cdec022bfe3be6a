// SPDX-License-Identifier: MIT

package octree

import "testing"

func TestMCTableEmptyAndFullMasksHaveNoTriangles(t *testing.T) {
	if len(MCTable[0]) != 0 {
		t.Fatalf("all-empty mask has %d triangles, want 0", len(MCTable[0]))
	}
	if len(MCTable[255]) != 0 {
		t.Fatalf("all-occupied mask has %d triangles, want 0", len(MCTable[255]))
	}
}

func TestMCTableSingleCornerProducesOneTriangle(t *testing.T) {
	for c := Direction(0); c < 8; c++ {
		mask := 1 << c
		tris := MCTable[mask]
		if len(tris) != 1 {
			t.Fatalf("mask %#b (corner %v alone) has %d triangles, want 1", mask, c, len(tris))
		}
		a, b, cc := unpackEdgeTriangle(tris[0])
		for _, e := range [3]Edge{a, b, cc} {
			v1, v2 := e.Vertices()
			if v1 != c && v2 != c {
				t.Fatalf("edge %v in the triangle for corner %v doesn't touch it", e, c)
			}
		}
	}
}

func TestMCTableAdjacentOccupiedCornersProduceNoTriangles(t *testing.T) {
	// FrontLeftBottom and FrontRightBottom are face-adjacent (differ in
	// one bit); neither is isolated, so this documented simplification
	// emits nothing for the pair.
	mask := 1<<FrontLeftBottom | 1<<FrontRightBottom
	if got := len(MCTable[mask]); got != 0 {
		t.Fatalf("adjacent-corner mask has %d triangles, want 0", got)
	}
}

func TestMCTableDiagonalCornersAreBothIsolated(t *testing.T) {
	// FrontLeftBottom and RearRightTop are opposite corners: not
	// face-adjacent, so each is isolated on its own.
	mask := 1<<FrontLeftBottom | 1<<RearRightTop
	if got := len(MCTable[mask]); got != 2 {
		t.Fatalf("opposite-corner mask has %d triangles, want 2", got)
	}
}
