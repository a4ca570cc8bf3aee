package atlaspack

import "testing"

func TestFits(t *testing.T) {
	tests := []struct {
		name        string
		outer, inner Dimension
		want        Fit
	}{
		{"exact", Dimension{10, 10}, Dimension{10, 10}, FitExact},
		{"exact flipped", Dimension{3, 10}, Dimension{10, 3}, FitExactFlipped},
		{"loose", Dimension{10, 10}, Dimension{4, 4}, FitYes},
		{"loose flipped only", Dimension{10, 3}, Dimension{2, 9}, FitYesFlipped},
		{"no fit", Dimension{5, 5}, Dimension{6, 6}, FitNo},
		{"prefers non-flipped over flipped", Dimension{4, 4}, Dimension{4, 4}, FitExact},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fits(tc.outer, tc.inner); got != tc.want {
				t.Errorf("Fits(%v, %v) = %v, want %v", tc.outer, tc.inner, got, tc.want)
			}
		})
	}
}

func TestFitsRoundTrip(t *testing.T) {
	dims := []Dimension{{1, 1}, {5, 5}, {3, 7}, {7, 3}, {12, 4}}
	for _, a := range dims {
		for _, b := range dims {
			fit := Fits(a, b)
			isExact := fit == FitExact || fit == FitExactFlipped
			setsEqual := (a.W == b.W && a.H == b.H) || (a.W == b.H && a.H == b.W)
			if isExact != setsEqual {
				t.Errorf("Fits(%v, %v) exactness=%v, want %v", a, b, isExact, setsEqual)
			}
		}
	}
}

// vim: ts=4
