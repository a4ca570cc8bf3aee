package atlaspack

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// PackInput pairs an input Dimension with the caller's original index.
type PackInput struct {
	Dim Dimension
	ID  uint32
}

// PackResult is the outcome of packing with one heuristic: every input
// rectangle placed into one of Bins, in the order those Bins were opened.
type PackResult struct {
	Bins      []*Bin
	Heuristic Heuristic
}

// Pack assigns every rectangle in rectangles a position (and optional
// rotation) inside one or more bins, once per heuristic in options.
// Heuristics, returning one PackResult per heuristic. See spec §4.E.
func Pack(rectangles []Dimension, options *Options) ([]PackResult, error) {
	if len(options.Heuristics) == 0 {
		return nil, ErrNoHeuristics
	}

	binSize := options.BinSize()
	for _, r := range rectangles {
		switch fit := Fits(binSize, r); fit {
		case FitNo:
			return nil, ErrPieceTooBig
		case FitYesFlipped, FitExactFlipped:
			if !options.Flipping {
				return nil, ErrPieceTooBig
			}
		}
	}

	inputs := make([]PackInput, len(rectangles))
	for i, dim := range rectangles {
		inputs[i] = PackInput{Dim: dim, ID: uint32(i)}
	}

	results := make([]PackResult, len(options.Heuristics))
	var g errgroup.Group
	for i, h := range options.Heuristics {
		i, h := i, h
		g.Go(func() error {
			cloned := slices.Clone(inputs)
			slices.SortFunc(cloned, h.less)
			results[i] = PackResult{
				Bins:      packSorted(cloned, options),
				Heuristic: h,
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; all failure modes are validated above

	return results, nil
}

// packSorted runs the single-heuristic packing loop of spec §4.E over an
// already-sorted input list.
func packSorted(inputs []PackInput, options *Options) []*Bin {
	insert := insertFixed
	if options.AtlasCompactSteps > 0 {
		insert = insertIncremental
	}

	bins := []*Bin{newBin(options)}
	for _, in := range inputs {
		placed := false
		for _, bin := range bins {
			if insert(bin, in.Dim, in.ID, options) {
				placed = true
				break
			}
		}
		if !placed {
			b := newBin(options)
			// Guaranteed to succeed: validation above rejected anything
			// that can't fit an empty bin of options.BinSize, and the
			// incremental policy grows an empty bin up to that size.
			insert(b, in.Dim, in.ID, options)
			bins = append(bins, b)
		}
	}
	return bins
}

// newBin opens a bin at the starting size dictated by the growth policy:
// the full configured size under the fixed policy, or a fraction of it
// under the incremental one.
func newBin(options *Options) *Bin {
	if options.AtlasCompactSteps == 0 {
		return NewBin(options.BinSize())
	}
	divisor := uint32(options.AtlasCompactSteps) + 1
	start := Dimension{
		W: divSide(options.BinWidth, divisor),
		H: divSide(options.BinHeight, divisor),
	}
	return NewBin(start)
}

func divSide(val, divisor uint32) uint32 {
	v := val / divisor
	if v < 1 {
		return 1
	}
	return v
}

func insertFixed(bin *Bin, dim Dimension, id uint32, options *Options) bool {
	return bin.Insert(dim, id, options.Flipping)
}

// insertIncremental implements the grow-or-fit policy of spec §4.E: retry
// insertion, growing the bin by one increment per axis on each failure,
// until the bin reaches options.BinSize on both axes. A resize that fails
// (possible even when strictly enlarging, per Bin.Resize) is treated as
// "give up on this bin" rather than retried at the same clamped size —
// resolving the open question in spec §9 as option (a).
func insertIncremental(bin *Bin, dim Dimension, id uint32, options *Options) bool {
	divisor := uint32(options.AtlasCompactSteps) + 1
	inc := Dimension{
		W: divSide(options.BinWidth, divisor),
		H: divSide(options.BinHeight, divisor),
	}

	for !bin.Insert(dim, id, options.Flipping) {
		if bin.Size.W >= options.BinWidth && bin.Size.H >= options.BinHeight {
			return false
		}
		grown := Dimension{
			W: min(bin.Size.W+inc.W, options.BinWidth),
			H: min(bin.Size.H+inc.H, options.BinHeight),
		}
		if !bin.Resize(grown, options.Flipping) {
			return false
		}
	}
	return true
}

// vim: ts=4
