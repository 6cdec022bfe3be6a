// SPDX-License-Identifier: MIT

package octree

import "testing"

func TestBuildMeshEmptyChunkHasNoGeometry(t *testing.T) {
	c := NewChunk(testVoxel(0))
	mesh := BuildMesh(NewGrid(c, 2))
	if len(mesh.Vertices) != 0 || len(mesh.Indices) != 0 {
		t.Fatalf("empty chunk produced %d vertices, %d indices", len(mesh.Vertices), len(mesh.Indices))
	}
}

func TestBuildMeshFullChunkHasNoGeometry(t *testing.T) {
	c := NewChunk(testVoxel(1))
	mesh := BuildMesh(NewGrid(c, 2))
	if len(mesh.Vertices) != 0 || len(mesh.Indices) != 0 {
		t.Fatalf("fully occupied chunk produced %d vertices, %d indices", len(mesh.Vertices), len(mesh.Indices))
	}
}

func TestBuildMeshIsolatedCornerProducesOneTriangle(t *testing.T) {
	c := NewChunk(testVoxel(0))
	// A single occupied leaf at the chunk's FrontLeftBottom octant, deep
	// enough to land on exactly one grid corner at lod 1.
	c.Set(PathFromDirections(FrontLeftBottom), 1)
	mesh := BuildMesh(NewGrid(c, 1))
	if len(mesh.Indices) != 3 {
		t.Fatalf("len(Indices) = %d, want 3 (one triangle)", len(mesh.Indices))
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("len(Vertices) = %d, want 3", len(mesh.Vertices))
	}
	for _, v := range mesh.Vertices {
		if v.X < 0 || v.X > 1 || v.Y < 0 || v.Y > 1 || v.Z < 0 || v.Z > 1 {
			t.Fatalf("vertex %+v outside normalized [0,1]^3", v)
		}
	}
}

func TestMeshChunkPanicsOnMissingChunk(t *testing.T) {
	w := NewWorld[testVoxel]()
	defer func() {
		if recover() == nil {
			t.Fatal("MeshChunk on a missing chunk did not panic")
		}
	}()
	MeshChunk(w, ChunkCoordinates{X: 1}, 2)
}

func TestMeshChunkMeshesPresentChunk(t *testing.T) {
	w := NewWorld[testVoxel]()
	c := NewChunk(testVoxel(0))
	c.Set(PathFromDirections(FrontLeftBottom), 1)
	w.SetChunk(ChunkCoordinates{}, c)
	mesh := MeshChunk(w, ChunkCoordinates{}, 1)
	if len(mesh.Indices) == 0 {
		t.Fatal("expected some geometry from a chunk with an isolated occupied octant")
	}
}
