package atlaspack

import "errors"

// These sentinel errors are returned by Pack for the two configuration/input
// failures the core surfaces eagerly, before any packing work starts. See
// spec §7.
var (
	// ErrNoHeuristics is returned when Options.Heuristics is empty.
	ErrNoHeuristics = errors.New("atlaspack: no heuristics supplied")
	// ErrPieceTooBig is returned when an input rectangle does not fit
	// Options.BinSize(), either in any orientation or only rotated while
	// Options.Flipping is false.
	ErrPieceTooBig = errors.New("atlaspack: some pieces do not fit bin size")
)

// vim: ts=4
