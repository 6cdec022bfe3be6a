// SPDX-License-Identifier: MIT

package octree

import "fmt"

// MaxWidth is the width, in fixed-point units, of the root Bounds: the
// whole [0,1)^3 unit cube.
const MaxWidth uint32 = 1 << 31

// Bounds is an axis-aligned cube in a fixed-point [0,1)^3 coordinate
// system: X, Y, Z are the cube's minimum corner and Width is its side
// length, both counted in units of 1/2^31. Width is always a power of
// two, so every Bounds reachable by [Bounds.Half]/[Bounds.Merge] is
// exact: there is no rounding error to accumulate across levels.
type Bounds struct {
	X, Y, Z uint32
	Width   uint32
}

// Root returns the Bounds of the entire unit cube.
func Root() Bounds {
	return Bounds{Width: MaxWidth}
}

// BoundsFromPath composes the Bounds reached by walking p root-to-leaf,
// halving the unit cube along each direction in turn.
func BoundsFromPath(p IndexPath) Bounds {
	b := Root()
	for d := range p.Directions {
		b = b.Half(d)
	}
	return b
}

// Half returns the sub-cube of b selected by descending into octant d.
func (b Bounds) Half(d Direction) Bounds {
	half := b.Width / 2
	x, y, z := d.Breakdown()
	return Bounds{
		X:     b.X + uint32(x)*half,
		Y:     b.Y + uint32(y)*half,
		Z:     b.Z + uint32(z)*half,
		Width: half,
	}
}

// Merge is the inverse of [Bounds.Half]: it returns the parent cube that
// descending into octant d would have produced b from.
func (b Bounds) Merge(d Direction) Bounds {
	x, y, z := d.Breakdown()
	return Bounds{
		X:     b.X - uint32(x)*b.Width,
		Y:     b.Y - uint32(y)*b.Width,
		Z:     b.Z - uint32(z)*b.Width,
		Width: b.Width * 2,
	}
}

// BoundsFromDiscreteGrid converts a cube given in the coordinates of a
// gridSize-per-side integer grid into fixed-point Bounds, scaling every
// field by MaxWidth/gridSize. It round-trips exactly with
// [Bounds.DiscreteGrid] called with the same gridSize, since every scale
// factor this store ever uses is a power of two.
func BoundsFromDiscreteGrid(x, y, z, width, gridSize uint32) Bounds {
	scale := MaxWidth / gridSize
	return Bounds{
		X:     x * scale,
		Y:     y * scale,
		Z:     z * scale,
		Width: width * scale,
	}
}

// DiscreteGrid converts b into the coordinates of a gridSize-per-side
// integer grid, the inverse of [BoundsFromDiscreteGrid].
func (b Bounds) DiscreteGrid(gridSize uint32) (x, y, z, width uint32) {
	scale := MaxWidth / gridSize
	return b.X / scale, b.Y / scale, b.Z / scale, b.Width / scale
}

// Relation classifies how one Bounds relates to another.
type Relation uint8

const (
	// Disjoint means the two cubes share no volume.
	Disjoint Relation = iota
	// Contain means the receiver fully encloses the other cube.
	// Relation is not symmetric: a.Relate(b) == Contain does not imply
	// b.Relate(a) == Contain.
	Contain
	// Intersect means the cubes overlap without one containing the
	// other.
	Intersect
)

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case Contain:
		return "Contain"
	case Intersect:
		return "Intersect"
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}

// Relate classifies how b relates to other: whether b contains other,
// merely intersects it, or they are disjoint.
func (b Bounds) Relate(other Bounds) Relation {
	if !b.overlapsAxis(other) {
		return Disjoint
	}
	if b.X <= other.X && other.X+other.Width <= b.X+b.Width &&
		b.Y <= other.Y && other.Y+other.Width <= b.Y+b.Width &&
		b.Z <= other.Z && other.Z+other.Width <= b.Z+b.Width {
		return Contain
	}
	return Intersect
}

func (b Bounds) overlapsAxis(other Bounds) bool {
	return b.X < other.X+other.Width && other.X < b.X+b.Width &&
		b.Y < other.Y+other.Width && other.Y < b.Y+b.Width &&
		b.Z < other.Z+other.Width && other.Z < b.Z+b.Width
}

// Center returns the fixed-point coordinates of b's midpoint.
func (b Bounds) Center() (x, y, z uint32) {
	half := b.Width / 2
	return b.X + half, b.Y + half, b.Z + half
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(%d,%d,%d)[%d]", b.X, b.Y, b.Z, b.Width)
}
