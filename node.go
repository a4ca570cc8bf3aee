package atlaspack

// node is one node of a guillotine partition tree. A node is a leaf iff
// both children are nil. Once split, a node never becomes a leaf again
// within a single packing run (the only exception is a whole-Bin resize,
// which discards the tree and builds a fresh one).
type node struct {
	id       *uint32
	bounds   Rectangle
	child1   *node
	child2   *node
}

// newRootNode creates the root node of a fresh partition tree covering
// [0, size.W) x [0, size.H).
func newRootNode(size Dimension) *node {
	return &node{bounds: Rectangle{X: 0, Y: 0, Size: size}}
}

func nodeFromBounds(l, t, r, b uint32) *node {
	return &node{bounds: Rectangle{X: l, Y: t, Size: Dimension{W: r - l, H: b - t}}}
}

// insert places a rectangle of dimension dim identified by id somewhere
// under this node, returning the Rectangle it was placed at (including its
// flip flag) and true on success. See spec §4.B.
func (n *node) insert(dim Dimension, id uint32, flippingAllowed bool) (Rectangle, bool) {
	if n.child1 != nil {
		if rect, ok := n.child1.insert(dim, id, flippingAllowed); ok {
			return rect, true
		}
	}
	if n.child2 != nil {
		return n.child2.insert(dim, id, flippingAllowed)
	}

	// Leaf. Already occupied?
	if n.id != nil {
		return Rectangle{}, false
	}

	switch fit := Fits(n.bounds.Size, dim); fit {
	case FitNo:
		return Rectangle{}, false
	case FitExact, FitExactFlipped:
		if fit.Flipped() && !flippingAllowed {
			return Rectangle{}, false
		}
		n.id = &id
		n.bounds.Flipped = fit.Flipped()
		return n.bounds, true
	case FitYes, FitYesFlipped:
		if fit.Flipped() && !flippingAllowed {
			return Rectangle{}, false
		}
		n.bounds.Flipped = fit.Flipped()
	}

	// Split. (w, h) is the placed rectangle's dimension in this node's
	// current orientation.
	w, h := dim.W, dim.H
	if n.bounds.Flipped {
		w, h = dim.H, dim.W
	}

	b := n.bounds
	if b.Size.W-w > b.Size.H-h {
		// Vertical cut at l+w: ties (equal slack) go to horizontal below.
		n.child1 = nodeFromBounds(b.Left(), b.Top(), b.Left()+w, b.Bottom())
		n.child2 = nodeFromBounds(b.Left()+w, b.Top(), b.Right(), b.Bottom())
	} else {
		// Horizontal cut at t+h.
		n.child1 = nodeFromBounds(b.Left(), b.Top(), b.Right(), b.Top()+h)
		n.child2 = nodeFromBounds(b.Left(), b.Top()+h, b.Right(), b.Bottom())
	}

	return n.child1.insert(dim, id, flippingAllowed)
}

// vim: ts=4
