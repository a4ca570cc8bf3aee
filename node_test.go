package atlaspack

import "testing"

func TestNodeInsertExact(t *testing.T) {
	n := newRootNode(Dimension{10, 10})
	rect, ok := n.insert(Dimension{10, 10}, 0, false)
	if !ok {
		t.Fatal("expected insert to succeed")
	}
	if rect.X != 0 || rect.Y != 0 || rect.Size != (Dimension{10, 10}) || rect.Flipped {
		t.Errorf("unexpected rect: %+v", rect)
	}
}

func TestNodeInsertSideBySide(t *testing.T) {
	n := newRootNode(Dimension{10, 10})
	r1, ok := n.insert(Dimension{6, 10}, 0, false)
	if !ok {
		t.Fatal("expected first insert to succeed")
	}
	if r1.X != 0 || r1.Y != 0 || r1.Size != (Dimension{6, 10}) {
		t.Errorf("rect1 = %+v", r1)
	}

	r2, ok := n.insert(Dimension{4, 10}, 1, false)
	if !ok {
		t.Fatal("expected second insert to succeed")
	}
	if r2.X != 6 || r2.Y != 0 || r2.Size != (Dimension{4, 10}) {
		t.Errorf("rect2 = %+v", r2)
	}
}

func TestNodeInsertOverflowRejected(t *testing.T) {
	n := newRootNode(Dimension{10, 10})
	if _, ok := n.insert(Dimension{10, 10}, 0, false); !ok {
		t.Fatal("expected first insert to succeed")
	}
	if _, ok := n.insert(Dimension{1, 1}, 1, false); ok {
		t.Fatal("expected second insert into full node to fail")
	}
}

func TestNodeInsertForcedFlip(t *testing.T) {
	n := newRootNode(Dimension{3, 10})
	rect, ok := n.insert(Dimension{10, 3}, 0, true)
	if !ok {
		t.Fatal("expected flip insert to succeed")
	}
	if !rect.Flipped {
		t.Fatal("expected rect to be flipped")
	}
	if rect.Size != (Dimension{3, 10}) {
		t.Errorf("rect size = %v, want 3x10", rect.Size)
	}
	if rect.Original() != (Dimension{10, 3}) {
		t.Errorf("original = %v, want 10x3", rect.Original())
	}
}

func TestNodeInsertFlipDisallowedRejects(t *testing.T) {
	n := newRootNode(Dimension{3, 10})
	if _, ok := n.insert(Dimension{10, 3}, 0, false); ok {
		t.Fatal("expected insert requiring a flip to fail when flipping is disallowed")
	}
}

// TestNodeSlackTieBreak exercises the §4.B tie-break: when the vertical and
// horizontal leftover are equal, the split goes horizontal, leaving a
// residual strip wide enough for a second, differently-shaped rectangle.
func TestNodeSlackTieBreak(t *testing.T) {
	n := newRootNode(Dimension{10, 10})
	if _, ok := n.insert(Dimension{5, 5}, 0, false); !ok {
		t.Fatal("expected first insert to succeed")
	}
	// Horizontal split means the node below the 5x5 spans the full width.
	if _, ok := n.insert(Dimension{10, 5}, 1, false); !ok {
		t.Fatal("expected 10x5 to fit the residual strip under the horizontal split")
	}
}

// vim: ts=4
