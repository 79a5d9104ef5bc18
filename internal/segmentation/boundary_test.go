package segmentation

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func noisySims(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	sims := make([]float64, n)
	for i := range sims {
		sims[i] = 0.5 + 0.4*r.Float64()
	}
	return sims
}

func TestDropScores(t *testing.T) {
	got := DropScores([]float64{0.8, 0.4, 0.8})

	if len(got) != 3 {
		t.Fatalf("DropScores() got %d drops, want 3", len(got))
	}
	if got[0].Index != 1 || got[0].Drop != 0 {
		t.Errorf("drop[0] = %+v, want index 1, drop 0", got[0])
	}
	if got[1].Index != 2 || math.Abs(got[1].Drop-0.4) > 1e-9 {
		t.Errorf("drop[1] = %+v, want index 2, drop 0.4", got[1])
	}
	// avg = 0.9*0.8 + 0.1*0.4 = 0.76
	if math.Abs(got[2].Drop-(0.76-0.8)) > 1e-9 {
		t.Errorf("drop[2] = %+v, want drop -0.04", got[2])
	}
	if DropScores(nil) != nil {
		t.Error("DropScores(nil) should be nil")
	}
}

func TestElbowBoundariesTooFewDrops(t *testing.T) {
	for _, sims := range [][]float64{nil, {0.5}, {0.5, 0.1}} {
		if got, _ := ElbowBoundaries(sims, DefaultElbowOptions()); len(got) != 0 {
			t.Errorf("ElbowBoundaries(%v) = %v, want none", sims, got)
		}
	}
}

func TestElbowBoundariesValidity(t *testing.T) {
	opts := DefaultElbowOptions()

	for seed := int64(1); seed <= 20; seed++ {
		n := 200
		sims := noisySims(n-1, seed)
		got, report := ElbowBoundaries(sims, opts)

		if len(got) < opts.MinParagraphs-1 || len(got) > opts.MaxParagraphs-1 {
			t.Errorf("seed %d: %d boundaries, want %d..%d", seed, len(got), opts.MinParagraphs-1, opts.MaxParagraphs-1)
		}
		if report.Count < opts.MinParagraphs-1 || report.Count > opts.MaxParagraphs-1 {
			t.Errorf("seed %d: report count %d out of bounds", seed, report.Count)
		}
		for i, b := range got {
			if b < 1 || b > n-1 {
				t.Errorf("seed %d: boundary %d outside [1, %d]", seed, b, n-1)
			}
			if i > 0 && b-got[i-1] < opts.MinGap {
				t.Errorf("seed %d: boundaries %d and %d closer than %d", seed, got[i-1], b, opts.MinGap)
			}
		}
	}
}

func TestElbowBoundariesTwoShifts(t *testing.T) {
	sims := make([]float64, 199)
	for i := range sims {
		sims[i] = 0.8 + 0.02*math.Sin(float64(i)*1.7)
	}
	sims[59] = 0.1
	sims[139] = 0.1

	got, _ := ElbowBoundaries(sims, DefaultElbowOptions())

	has := func(target int) bool {
		for _, b := range got {
			if b >= target-1 && b <= target+1 {
				return true
			}
		}
		return false
	}
	if !has(60) || !has(140) {
		t.Errorf("ElbowBoundaries() = %v, want boundaries at 60 and 140", got)
	}
}

func TestElbowStatisticalOverride(t *testing.T) {
	// Uniform large drops: no elbow cliff, but many drops clear the threshold
	sims := make([]float64, 0, 400)
	for i := 0; i < 200; i++ {
		sims = append(sims, 0.9, 0.2)
	}
	_, report := ElbowBoundaries(sims, ElbowOptions{MinGap: 1, MinParagraphs: 5, MaxParagraphs: 12})

	if report.Significant <= report.Elbow {
		t.Fatalf("report = %+v, want significant count above the elbow", report)
	}
	if report.Count != 11 {
		t.Errorf("report.Count = %d, want clamp to 11", report.Count)
	}
}

func TestSortByDropStable(t *testing.T) {
	drops := []Drop{{Index: 1, Drop: 0.1}, {Index: 2, Drop: 0.3}, {Index: 3, Drop: 0.1}, {Index: 4, Drop: 0.3}}
	got := sortByDrop(drops)

	var order []int
	for _, d := range got {
		order = append(order, d.Index)
	}
	if !reflect.DeepEqual(order, []int{2, 4, 1, 3}) {
		t.Errorf("sortByDrop() order = %v, want [2 4 1 3]", order)
	}
}

func TestTopBoundaries(t *testing.T) {
	sims := make([]float64, 99)
	for i := range sims {
		sims[i] = 0.8
	}
	sims[19], sims[49], sims[79] = 0.1, 0.2, 0.3

	if got := TopBoundaries(sims, 4, 10); !reflect.DeepEqual(got, []int{20, 50, 80}) {
		t.Errorf("TopBoundaries() = %v, want [20 50 80]", got)
	}
	if got := TopBoundaries(sims, 1, 10); got != nil {
		t.Errorf("TopBoundaries(target 1) = %v, want none", got)
	}
}

func TestRatioBoundaries(t *testing.T) {
	sims := []float64{0.8, 0.8, 0.3, 0.8, 0.3, 0.8, 0.8, 0.8, 0.8, 0.2}

	// 3 is accepted; 5 is within the gap; 10 is far enough
	if got := RatioBoundaries(sims, 0.65, 5); !reflect.DeepEqual(got, []int{3, 10}) {
		t.Errorf("RatioBoundaries() = %v, want [3 10]", got)
	}
	if got := RatioBoundaries(nil, 0.65, 5); got != nil {
		t.Errorf("RatioBoundaries(nil) = %v, want none", got)
	}
}
