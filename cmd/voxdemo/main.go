// SPDX-License-Identifier: MIT

// Command voxdemo builds a small world of chunks around the origin from
// a sphere-shaped oracle, meshes one of them, and reports progress the
// way a long-running build pass would.
package main

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/lmars/octovoxel"
)

type density uint8

func (d density) IsEmpty() bool { return d == 0 }

const chunkSpan = 16.0 // world units per chunk side

func sphereOracle(radius float64) octree.Oracle[density] {
	return func(coords octree.ChunkCoordinates, bounds octree.Bounds) octree.Isosurface[density] {
		// translate the bounds' fixed-point local cube into world units
		// centered on the chunk, then classify it against the sphere.
		minCorner, maxCorner := worldExtent(coords, bounds)

		// nearest and farthest distance from the sphere's center (the
		// origin) to any point of the box, per axis
		var nearSq, farSq float64
		for _, r := range [3][2]float64{{minCorner.x, maxCorner.x}, {minCorner.y, maxCorner.y}, {minCorner.z, maxCorner.z}} {
			near := math.Max(0, math.Max(r[0], -r[1]))
			far := math.Max(math.Abs(r[0]), math.Abs(r[1]))
			nearSq += near * near
			farSq += far * far
		}
		minDist := math.Sqrt(nearSq)
		maxDist := math.Sqrt(farSq)

		switch {
		case maxDist <= radius:
			return octree.Uniform(density(1))
		case minDist > radius:
			return octree.Uniform(density(0))
		default:
			return octree.Surface[density]()
		}
	}
}

type point struct{ x, y, z float64 }

// worldExtent returns the corners of bounds in world units, treating
// each chunk as a chunkSpan-wide cube centered on the origin for the
// chunk at ChunkCoordinates{0,0,0}, and offset by chunkSpan per axis
// for every other chunk.
func worldExtent(coords octree.ChunkCoordinates, bounds octree.Bounds) (min, max point) {
	origin := point{
		x: float64(coords.X)*chunkSpan - chunkSpan/2,
		y: float64(coords.Y)*chunkSpan - chunkSpan/2,
		z: float64(coords.Z)*chunkSpan - chunkSpan/2,
	}
	scale := chunkSpan / float64(octree.MaxWidth)
	min = point{
		x: origin.x + float64(bounds.X)*scale,
		y: origin.y + float64(bounds.Y)*scale,
		z: origin.z + float64(bounds.Z)*scale,
	}
	max = point{
		x: min.x + float64(bounds.Width)*scale,
		y: min.y + float64(bounds.Width)*scale,
		z: min.z + float64(bounds.Width)*scale,
	}
	return min, max
}

func main() {
	log.SetFlags(log.Lmicroseconds)

	builder := octree.NewWorldBuilder(sphereOracle(6), octree.Options{MaxDepth: 6})
	world := octree.NewWorld[density]()

	ts := time.Now()
	var mu sync.Mutex
	var wg sync.WaitGroup
	for x := int64(-1); x <= 1; x++ {
		for y := int64(-1); y <= 1; y++ {
			for z := int64(-1); z <= 1; z++ {
				coords := octree.ChunkCoordinates{X: x, Y: y, Z: z}
				wg.Add(1)
				go func() {
					defer wg.Done()
					chunk := builder.Build(coords)
					mu.Lock()
					world.SetChunk(coords, chunk)
					mu.Unlock()
				}()
			}
		}
	}
	wg.Wait()
	log.Printf("built %d chunks in %v", world.Len(), time.Since(ts))

	center := octree.ChunkCoordinates{}
	for {
		ts := time.Now()
		mesh := octree.MeshChunk(world, center, 5)
		log.Printf("meshed chunk %v: %d vertices, %d triangles, took %v",
			center, len(mesh.Vertices), len(mesh.Indices)/3, time.Since(ts))
		time.Sleep(time.Second)
	}
}
