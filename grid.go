// SPDX-License-Identifier: MIT

package octree

// Grid is a dense, 2^lod-per-side cube sampled out of a [Chunk] at a
// fixed level of detail. Unlike the sparse octree it's built from, every
// cell of a Grid is stored explicitly, trading memory for the flat,
// random-access layout a mesher needs.
type Grid[T comparable] struct {
	lod  int
	size int
	data []T
}

// NewGrid densifies c into a grid of side 2^lod.
func NewGrid[T comparable](c *Chunk[T], lod int) *Grid[T] {
	size := 1 << lod
	g := &Grid[T]{lod: lod, size: size, data: make([]T, size*size*size)}
	if lod == 0 {
		g.set(0, 0, 0, sampleAnyLeaf(c.root))
		return g
	}
	g.fillNode(c.root, 0, 0, 0, size/2)
	return g
}

// Lod returns the grid's level of detail.
func (g *Grid[T]) Lod() int { return g.lod }

// Size returns the grid's side length, 2^Lod().
func (g *Grid[T]) Size() int { return g.size }

func (g *Grid[T]) index(x, y, z int) int {
	return int(uint64(z) | uint64(y)<<g.lod | uint64(x)<<(2*g.lod))
}

// Get returns the value at cell (x, y, z).
func (g *Grid[T]) Get(x, y, z int) T {
	return g.data[g.index(x, y, z)]
}

func (g *Grid[T]) set(x, y, z int, v T) {
	g.data[g.index(x, y, z)] = v
}

// fillNode writes node's eight octants into the cube of side 2*blockSize
// anchored at (x0,y0,z0): each octant fills a blockSize-sided sub-block.
//
// Descending into a present child, or flood-filling a sub-block wider
// than one cell, positions the octant with [Direction.Breakdown] (the
// same is-max-x/y/z-consistent bit order [Bounds.Half] uses, so an
// octant always lands where its Bounds says it should). Writing a
// single finest-resolution cell directly from a Node's own data is the
// one exception: original_source/src/grid.rs's base case positions
// those eight values with Direction::breakdown(), whose bit assignment
// is reversed from its own is_max_x/y/z (direction.rs:36-90) — an
// inconsistency baked into that base case that spec.md §8 Scenario S5
// pins literally ((0,0,1) <- direction 1, not (1,0,0)). gridBaseCorner
// reproduces that reversed order for exactly this one placement.
func (g *Grid[T]) fillNode(node *Node[T], x0, y0, z0, blockSize int) {
	for d := Direction(0); d < 8; d++ {
		child := node.Child(d)

		if blockSize == 1 {
			cx, cy, cz := gridBaseCorner(d)
			x, y, z := x0+cx, y0+cy, z0+cz
			if child != nil {
				g.set(x, y, z, sampleAnyLeaf(child))
			} else {
				g.set(x, y, z, node.Data(d))
			}
			continue
		}

		ox, oy, oz := d.Breakdown()
		bx := x0 + int(ox)*blockSize
		by := y0 + int(oy)*blockSize
		bz := z0 + int(oz)*blockSize

		if child != nil {
			g.fillNode(child, bx, by, bz, blockSize/2)
		} else {
			g.fillBlock(bx, by, bz, blockSize, node.Data(d))
		}
	}
}

// gridBaseCorner returns the corner offset for octant d within a
// finest-resolution 2x2x2 grid block: bit 0 selects z, bit 1 selects y,
// bit 2 selects x, the reverse of [Direction.Breakdown]'s bit order.
// See [Grid.fillNode] for why this one spot departs from that order.
func gridBaseCorner(d Direction) (x, y, z int) {
	v := uint8(d)
	return int(v >> 2), int((v >> 1) & 1), int(v & 1)
}

func (g *Grid[T]) fillBlock(x0, y0, z0, size int, v T) {
	for x := x0; x < x0+size; x++ {
		for y := y0; y < y0+size; y++ {
			for z := z0; z < z0+size; z++ {
				g.set(x, y, z, v)
			}
		}
	}
}

// sampleAnyLeaf descends always via the same octant until it reaches a
// leaf, used when a grid's resolution runs out before the octree does.
func sampleAnyLeaf[T comparable](n *Node[T]) T {
	for {
		if child := n.Child(FrontLeftBottom); child != nil {
			n = child
			continue
		}
		return n.Data(FrontLeftBottom)
	}
}

// Iter yields every cell of the grid together with its coordinates, in
// ascending x, then y, then z order.
func (g *Grid[T]) Iter(yield func(x, y, z int, v T) bool) {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			for z := 0; z < g.size; z++ {
				if !yield(x, y, z, g.Get(x, y, z)) {
					return
				}
			}
		}
	}
}

// GridCell is one grouped 2x2x2 neighborhood of grid cells, indexed by
// [Direction]: corner d of the cell is the grid cell offset by d's
// (x,y,z) breakdown from (X,Y,Z).
type GridCell[T comparable] struct {
	X, Y, Z int
	Corners DirectionMapper[T]
}

// IterGrouped yields one GridCell per unit cube of the grid, skipping
// the final layer along each axis since it has no "+1" neighbor to pair
// with. A grid of size 1 (lod 0) yields nothing.
func (g *Grid[T]) IterGrouped(yield func(GridCell[T]) bool) {
	if g.size < 2 {
		return
	}
	for x := 0; x < g.size-1; x++ {
		for y := 0; y < g.size-1; y++ {
			for z := 0; z < g.size-1; z++ {
				cell := GridCell[T]{X: x, Y: y, Z: z}
				for d := Direction(0); d < 8; d++ {
					dx, dy, dz := d.Breakdown()
					cell.Corners.Set(d, g.Get(x+int(dx), y+int(dy), z+int(dz)))
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}
