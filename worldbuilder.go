// SPDX-License-Identifier: MIT

package octree

// Isosurface is the answer a [WorldBuilder]'s oracle gives for one
// region of space: either the region is Uniform and holds a single
// value throughout, or it contains a Surface and must be subdivided
// further to resolve.
type Isosurface[T VoxelData] struct {
	value     T
	isSurface bool
}

// Uniform reports a region that holds v throughout, with no further
// subdivision needed.
func Uniform[T VoxelData](v T) Isosurface[T] {
	return Isosurface[T]{value: v}
}

// Surface reports a region that straddles a boundary and must be split
// into octants to resolve further.
func Surface[T VoxelData]() Isosurface[T] {
	return Isosurface[T]{isSurface: true}
}

// Oracle answers what occupies a region of a chunk. It is called once
// per octant as [WorldBuilder.Build] subdivides, always with bounds
// local to the unit cube of the chunk at coords, never the world's
// global coordinate space.
type Oracle[T VoxelData] func(coords ChunkCoordinates, bounds Bounds) Isosurface[T]

// WorldBuilder materializes chunks on demand by repeatedly querying an
// Oracle and subdividing wherever it reports a Surface.
type WorldBuilder[T VoxelData] struct {
	Oracle  Oracle[T]
	Options Options
}

// NewWorldBuilder returns a WorldBuilder driven by oracle.
func NewWorldBuilder[T VoxelData](oracle Oracle[T], opts Options) *WorldBuilder[T] {
	return &WorldBuilder[T]{Oracle: oracle, Options: opts}
}

// Build materializes the chunk at coords by querying the oracle
// starting from the whole unit cube and subdividing wherever it reports
// a Surface.
func (b *WorldBuilder[T]) Build(coords ChunkCoordinates) *Chunk[T] {
	return &Chunk[T]{root: b.buildNode(coords, Root(), 0)}
}

func (b *WorldBuilder[T]) buildNode(coords ChunkCoordinates, bounds Bounds, depth int) *Node[T] {
	iso := b.Oracle(coords, bounds)
	if !iso.isSurface {
		return NewNodeAll(iso.value)
	}
	if depth >= b.Options.maxDepth() {
		var zero T
		return NewNodeAll(zero)
	}

	n := &Node[T]{}
	for d := Direction(0); d < 8; d++ {
		child := b.buildNode(coords, bounds.Half(d), depth+1)
		if child.IsUniform() {
			n.data.Set(d, child.Data(FrontLeftBottom))
		} else {
			n.children.Set(d, child)
		}
	}
	return n
}
