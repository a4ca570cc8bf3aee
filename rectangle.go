package atlaspack

import "fmt"

// Rectangle is an axis-aligned placed region: a top-left position, a
// Dimension in its stored (possibly rotated) orientation, and whether it
// was rotated 90 degrees to get there.
type Rectangle struct {
	X       uint32
	Y       uint32
	Size    Dimension
	Flipped bool
}

// Left returns the x coordinate of the left edge.
func (r Rectangle) Left() uint32 { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rectangle) Top() uint32 { return r.Y }

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() uint32 { return r.X + r.Size.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() uint32 { return r.Y + r.Size.H }

// Original returns the Dimension of this rectangle before any rotation was
// applied: (h, w) when Flipped, else (w, h).
func (r Rectangle) Original() Dimension {
	if r.Flipped {
		return Dimension{W: r.Size.H, H: r.Size.W}
	}
	return r.Size
}

// String returns a compact representation for debugging.
func (r Rectangle) String() string {
	return fmt.Sprintf("<%d,%d %s flipped=%v>", r.X, r.Y, r.Size, r.Flipped)
}

// Placement pairs a caller-assigned input index with the Rectangle it was
// ultimately placed at.
type Placement struct {
	Index uint32
	Rect  Rectangle
}

// vim: ts=4
