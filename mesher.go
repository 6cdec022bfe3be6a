// SPDX-License-Identifier: MIT

package octree

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Vertex is one mesh vertex in a grid's normalized [0,1]^3 space.
type Vertex struct {
	X, Y, Z float32
}

// Mesh is a triangle soup: every three consecutive Indices name one
// triangle's vertices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// BuildMesh runs marching cubes over g, turning each 2x2x2 neighborhood
// [Grid.IterGrouped] yields into zero or more triangles via [MCTable].
func BuildMesh[T VoxelData](g *Grid[T]) Mesh {
	var mesh Mesh
	size := float32(g.Size())
	for cell := range g.IterGrouped {
		mask := cellOccupancyMask(cell)
		for _, tri := range MCTable[mask] {
			e1, e2, e3 := unpackEdgeTriangle(tri)
			for _, e := range [3]Edge{e1, e2, e3} {
				mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
				mesh.Vertices = append(mesh.Vertices, edgeMidpoint(cell, e, size))
			}
		}
	}
	return mesh
}

// MeshChunk densifies the chunk at coords to lod and meshes it. It
// panics if the world has no chunk there: a caller that hasn't built or
// loaded the chunk yet has nothing to mesh, and there is no sensible
// empty-mesh fallback that wouldn't silently hide that mistake.
func MeshChunk[T VoxelData](w *World[T], coords ChunkCoordinates, lod int) Mesh {
	chunk, ok := w.GetChunk(coords)
	if !ok {
		panic(fmt.Sprintf("octree: no chunk at %v to mesh", coords))
	}
	return BuildMesh(NewGrid(chunk, lod))
}

// cellOccupancyMask composes the 8-bit corner-occupancy index MCTable
// is keyed on, using a bitset to track which of the cell's 8 fixed
// corner positions are occupied.
func cellOccupancyMask[T VoxelData](cell GridCell[T]) int {
	occupied := bitset.New(8)
	for d := Direction(0); d < 8; d++ {
		if !cell.Corners.Get(d).IsEmpty() {
			occupied.Set(uint(d))
		}
	}
	mask := 0
	for i, ok := occupied.NextSet(0); ok; i, ok = occupied.NextSet(i + 1) {
		mask |= 1 << i
	}
	return mask
}

func edgeMidpoint[T VoxelData](cell GridCell[T], e Edge, size float32) Vertex {
	a, b := e.Vertices()
	ax, ay, az := a.Breakdown()
	bx, by, bz := b.Breakdown()
	x := float32(cell.X) + (float32(ax)+float32(bx))/2
	y := float32(cell.Y) + (float32(ay)+float32(by))/2
	z := float32(cell.Z) + (float32(az)+float32(bz))/2
	return Vertex{X: x / size, Y: y / size, Z: z / size}
}
