// SPDX-License-Identifier: MIT

// Package octree provides a sparse hierarchical voxel store for an
// infinite world decomposed into fixed-size chunks.
//
// Each chunk is an adaptive octree: a recursive [Node] holds eight
// per-octant values and, for octants that aren't uniform, a child node.
// Setting a value collapses any child whose own eight values have become
// equal, keeping the tree as shallow as the data allows.
//
// [Chunk] owns one [Node] rooted at the unit cube and exposes it through
// [Chunk.Get]/[Chunk.Set] and through [Chunk.Leaves], a depth-first
// walk over every octant that carries a single representative value.
// [IndexPath] packs the root-to-leaf descent that names an octant into a
// single machine word, and [Bounds] ties that descent to a fixed-point
// [0,1)^3 coordinate system.
//
// [WorldBuilder] materializes chunks on demand from a caller-supplied
// isosurface oracle, and [Grid] densifies a chunk into a regular 3-D
// array for [BuildMesh] to turn into a triangle mesh via marching cubes.
//
// The store is single-threaded and synchronous: no operation here
// blocks, suspends, or retries. Chunk does no locking, and nothing in
// its types stops a Set from running while [Chunk.Leaves] walks the same
// Chunk; such concurrent use is a data race.
package octree
