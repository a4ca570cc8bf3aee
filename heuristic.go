package atlaspack

import "cmp"

// Heuristic is a total ordering applied to the input rectangles before
// packing. Each heuristic sorts descending on its key: largest first.
type Heuristic uint8

const (
	// HeuristicArea sorts by width*height, descending.
	HeuristicArea Heuristic = iota
	// HeuristicPerimeter sorts by width+height, descending.
	HeuristicPerimeter
	// HeuristicSide sorts by max(width, height), descending.
	HeuristicSide
	// HeuristicWidth sorts by width, descending.
	HeuristicWidth
	// HeuristicHeight sorts by height, descending.
	HeuristicHeight
	// HeuristicSquarenessArea sorts by (min/max side ratio) * area,
	// descending. NaN comparisons collapse to "equal".
	HeuristicSquarenessArea
	// HeuristicSquarenessPerimeter sorts by (min/max side ratio) *
	// perimeter, descending. NaN comparisons collapse to "equal".
	HeuristicSquarenessPerimeter
)

// String returns the heuristic's canonical lowercase name, as used for
// --heuristics CLI values and PackResult reporting.
func (h Heuristic) String() string {
	switch h {
	case HeuristicArea:
		return "area"
	case HeuristicPerimeter:
		return "perimeter"
	case HeuristicSide:
		return "side"
	case HeuristicWidth:
		return "width"
	case HeuristicHeight:
		return "height"
	case HeuristicSquarenessArea:
		return "squareness_area"
	case HeuristicSquarenessPerimeter:
		return "squareness_perimeter"
	default:
		return "unknown"
	}
}

// AllHeuristics returns the canonical set of all seven heuristics, the
// default Options.Heuristics value.
func AllHeuristics() []Heuristic {
	return []Heuristic{
		HeuristicArea,
		HeuristicPerimeter,
		HeuristicSide,
		HeuristicWidth,
		HeuristicHeight,
		HeuristicSquarenessArea,
		HeuristicSquarenessPerimeter,
	}
}

// ParseHeuristic maps a canonical name (as returned by String) back to a
// Heuristic, for CLI/config parsing.
func ParseHeuristic(name string) (Heuristic, bool) {
	for _, h := range AllHeuristics() {
		if h.String() == name {
			return h, true
		}
	}
	return 0, false
}

func squareness(d Dimension) float64 {
	if d.W < d.H {
		return float64(d.W) / float64(d.H)
	}
	return float64(d.H) / float64(d.W)
}

// less reports the sort order between a and b under this heuristic, in the
// form expected by slices.SortFunc: negative if a sorts first.
func (h Heuristic) less(a, b PackInput) int {
	switch h {
	case HeuristicArea:
		return cmp.Compare(b.Dim.Area(), a.Dim.Area())
	case HeuristicPerimeter:
		return cmp.Compare(int(b.Dim.W)+int(b.Dim.H), int(a.Dim.W)+int(a.Dim.H))
	case HeuristicSide:
		return cmp.Compare(max(b.Dim.W, b.Dim.H), max(a.Dim.W, a.Dim.H))
	case HeuristicWidth:
		return cmp.Compare(b.Dim.W, a.Dim.W)
	case HeuristicHeight:
		return cmp.Compare(b.Dim.H, a.Dim.H)
	case HeuristicSquarenessArea:
		return floatCompareEqualOnNaN(squareness(b.Dim)*float64(b.Dim.Area()), squareness(a.Dim)*float64(a.Dim.Area()))
	case HeuristicSquarenessPerimeter:
		bp := float64(b.Dim.W) + float64(b.Dim.H)
		ap := float64(a.Dim.W) + float64(a.Dim.H)
		return floatCompareEqualOnNaN(squareness(b.Dim)*bp, squareness(a.Dim)*ap)
	default:
		return 0
	}
}

// floatCompareEqualOnNaN behaves like cmp.Compare but treats any comparison
// involving NaN as equal, per spec §4.D.
func floatCompareEqualOnNaN(x, y float64) int {
	if x != x || y != y { // NaN check without importing math
		return 0
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// vim: ts=4
