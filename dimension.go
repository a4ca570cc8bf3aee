package atlaspack

import "fmt"

// Dimension is an immutable width/height pair. Both fields are expected to
// be at least 1 for any Dimension that is actually packed.
type Dimension struct {
	W uint32
	H uint32
}

// NewDimension creates a Dimension with the given width and height.
func NewDimension(w, h uint32) Dimension {
	return Dimension{W: w, H: h}
}

// String returns a compact representation, e.g. "64x32".
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.W, d.H)
}

// Area returns w*h.
func (d Dimension) Area() uint64 {
	return uint64(d.W) * uint64(d.H)
}

// Fit is the outcome of testing whether an inner Dimension fits inside an
// outer one. The flipped-ness of a Yes/Exact result indicates the inner
// dimension had to be rotated 90 degrees to fit.
type Fit uint8

const (
	// FitNo means neither orientation fits.
	FitNo Fit = iota
	// FitYes means the dimension fits without rotation, with slack on at
	// least one axis.
	FitYes
	// FitYesFlipped means the dimension does not fit unrotated, but fits
	// when rotated 90 degrees.
	FitYesFlipped
	// FitExact means the dimension matches both axes exactly.
	FitExact
	// FitExactFlipped means the dimension matches exactly once rotated.
	FitExactFlipped
)

// Flipped reports whether this Fit requires a 90 degree rotation.
func (f Fit) Flipped() bool {
	return f == FitYesFlipped || f == FitExactFlipped
}

// Fits reports how (and whether) inner fits inside outer, preferring
// non-flipped outcomes over flipped ones, and exact outcomes over loose
// ones. See spec §4.A for the exact evaluation order.
func Fits(outer, inner Dimension) Fit {
	switch {
	case outer.W == inner.W && outer.H == inner.H:
		return FitExact
	case outer.H == inner.W && outer.W == inner.H:
		return FitExactFlipped
	case outer.W >= inner.W && outer.H >= inner.H:
		return FitYes
	case outer.H >= inner.W && outer.W >= inner.H:
		return FitYesFlipped
	default:
		return FitNo
	}
}

// vim: ts=4
