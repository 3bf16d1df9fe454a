package dof

import (
	"math"
	"slices"
	"testing"
)

func TestHyperfocal(t *testing.T) {
	got := Hyperfocal(0.105, 2.0, 0.000015)
	if math.Abs(got-367.5) > 1e-9 {
		t.Errorf("Hyperfocal(105mm, f/2, 15um) = %v, want 367.5", got)
	}
}

func TestHyperfocal_ExceedsFocalLength(t *testing.T) {
	for _, focal := range []float64{0.012, 0.035, 0.05, 0.105, 0.3, 0.8} {
		for _, stop := range FStops() {
			for _, coc := range []float64{0.000005, 0.000015, 0.00003} {
				if h := Hyperfocal(focal, stop, coc); h <= focal {
					t.Errorf("Hyperfocal(%v, %v, %v) = %v, not above focal length", focal, stop, coc, h)
				}
			}
		}
	}
}

func TestIntervals(t *testing.T) {
	const (
		h    = 367.5
		dMin = 1.0
		n    = 20
	)
	got := slices.Collect(Intervals(h, dMin, n))

	if len(got) != n {
		t.Fatalf("len = %d, want %d", len(got), n)
	}
	if got[0] != dMin {
		t.Errorf("first = %v, want %v", got[0], dMin)
	}
	ratio := got[1] / got[0]
	for i, s := range got {
		if s < dMin || s >= h {
			t.Errorf("sample %d = %v outside [%v, %v)", i, s, dMin, h)
		}
		if i == 0 {
			continue
		}
		if s <= got[i-1] {
			t.Errorf("sample %d = %v not above %v", i, s, got[i-1])
		}
		if r := s / got[i-1]; math.Abs(r-ratio) > 1e-9 {
			t.Errorf("ratio at %d = %v, want %v", i, r, ratio)
		}
	}
	if want := math.Pow(h/dMin, 1.0/n); math.Abs(ratio-want) > 1e-12 {
		t.Errorf("ratio = %v, want %v", ratio, want)
	}
}

func TestIntervals_Restartable(t *testing.T) {
	seq := Intervals(50, 0.5, 7)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second range = %v, want %v", second, first)
	}
}

func TestIntervals_EdgeCases(t *testing.T) {
	if got := slices.Collect(Intervals(10, 1, 0)); len(got) != 0 {
		t.Errorf("n=0 yielded %v", got)
	}
	if got := slices.Collect(Intervals(10, 1, -3)); len(got) != 0 {
		t.Errorf("n<0 yielded %v", got)
	}
	if got := slices.Collect(Intervals(0.5, 1, 20)); !slices.Equal(got, []float64{1}) {
		t.Errorf("degenerate range yielded %v, want [1]", got)
	}
	if got := slices.Collect(Intervals(10, 1, 1)); !slices.Equal(got, []float64{1}) {
		t.Errorf("n=1 yielded %v, want [1]", got)
	}
}

func TestIntervals_StopsEarly(t *testing.T) {
	var seen int
	for range Intervals(100, 1, 20) {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("seen = %d, want 3", seen)
	}
}
