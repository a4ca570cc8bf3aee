package atlaspack

// Bin is one atlas: its current size, the ordered list of placements it
// holds, and the guillotine partition tree backing those placements.
type Bin struct {
	Size       Dimension
	Placements []Placement

	root *node
	// lastRejected short-circuits Insert for rectangles that are strictly
	// larger than one this Bin just refused, avoiding a full tree walk.
	lastRejected Dimension
}

// NewBin creates an empty Bin of the given size. Panics if either axis is
// zero, mirroring the teacher's algorithmBase.Reset guard against
// degenerate extents.
func NewBin(size Dimension) *Bin {
	if size.W == 0 || size.H == 0 {
		panic("atlaspack: bin size must be at least 1x1")
	}
	return &Bin{
		Size:         size,
		root:         newRootNode(size),
		lastRejected: size,
	}
}

// Insert attempts to place dim (identified by id) somewhere in the Bin.
// Returns true on success.
func (b *Bin) Insert(dim Dimension, id uint32, flippingAllowed bool) bool {
	switch fit := Fits(b.lastRejected, dim); fit {
	case FitNo:
		return false
	case FitYes, FitExact, FitYesFlipped, FitExactFlipped:
		if fit.Flipped() && !flippingAllowed {
			return false
		}
	}

	rect, ok := b.root.insert(dim, id, flippingAllowed)
	if !ok {
		b.lastRejected = dim
		return false
	}
	b.Placements = append(b.Placements, Placement{Index: id, Rect: rect})
	return true
}

// Resize re-seats every existing placement into a fresh root node of
// newSize (clamped to at least 1 on each axis), using each placement's
// original (non-flipped) dimension — the new root may choose a different
// flip. If any re-insertion fails the Bin is left unchanged and false is
// returned; this can happen even when newSize is strictly larger, because
// greedy re-insertion order is not monotone in bin size.
func (b *Bin) Resize(newSize Dimension, flippingAllowed bool) bool {
	if newSize.W < 1 {
		newSize.W = 1
	}
	if newSize.H < 1 {
		newSize.H = 1
	}

	freshRoot := newRootNode(newSize)
	placements := make([]Placement, 0, len(b.Placements))
	for _, p := range b.Placements {
		rect, ok := freshRoot.insert(p.Rect.Original(), p.Index, flippingAllowed)
		if !ok {
			return false
		}
		placements = append(placements, Placement{Index: p.Index, Rect: rect})
	}

	b.root = freshRoot
	b.Placements = placements
	b.Size = newSize
	b.lastRejected = newSize
	return true
}

// vim: ts=4
