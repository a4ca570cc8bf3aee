package atlaspack

import "github.com/creasty/defaults"

// DefaultBinSide is the default width/height of a bin when Options is
// populated via NewOptions, matching spec's documented default of 512x512.
const DefaultBinSide = 512

// Options configures a call to Pack. Zero-valued fields are not
// automatically defaulted by Pack itself — construct Options via
// NewOptions (or apply defaults.Set yourself) to get spec-documented
// defaults.
type Options struct {
	// BinWidth and BinHeight are the maximum extents of a bin.
	BinWidth  uint32 `default:"512"`
	BinHeight uint32 `default:"512"`
	// AtlasCompactSteps selects the growth policy: 0 means bins start and
	// stay at (BinWidth, BinHeight); >0 means bins start smaller and grow
	// toward that ceiling over this many increments.
	AtlasCompactSteps uint8 `default:"0"`
	// Flipping allows 90 degree rotation of input rectangles.
	Flipping bool `default:"false"`
	// Trim is a hint for the rendering collaborator; it does not affect
	// packing results.
	Trim bool `default:"false"`
	// Heuristics is the set of orderings to run in parallel. Defaults to
	// AllHeuristics() when constructed via NewOptions.
	Heuristics []Heuristic
}

// BinSize returns the configured maximum bin extents as a Dimension.
func (o *Options) BinSize() Dimension {
	return Dimension{W: o.BinWidth, H: o.BinHeight}
}

// NewOptions returns an Options populated with spec-documented defaults:
// a 512x512 bin, no compaction steps, flipping and trim disabled, and all
// seven heuristics selected.
func NewOptions() *Options {
	o := &Options{}
	_ = defaults.Set(o)
	o.Heuristics = AllHeuristics()
	return o
}

// vim: ts=4
