package segmentation

import (
	"math"
	"sort"
)

// Drop scores a candidate boundary: how far the similarity at Index fell
// below the running average of the similarities before it.
type Drop struct {
	Index      int
	Drop       float64
	Similarity float64
}

// ElbowOptions bounds the elbow search.
type ElbowOptions struct {
	MinGap        int
	MinParagraphs int
	MaxParagraphs int
}

// DefaultElbowOptions returns min gap 15 with 5 to 12 paragraphs.
func DefaultElbowOptions() ElbowOptions {
	return ElbowOptions{MinGap: 15, MinParagraphs: 5, MaxParagraphs: 12}
}

// ElbowReport describes how the boundary count was chosen.
type ElbowReport struct {
	Count       int
	Elbow       int
	Significant int
}

// DropScores computes a drop score for every boundary candidate in sentence
// order, against an exponential running average seeded with sim[0].
func DropScores(sim []float64) []Drop {
	if len(sim) == 0 {
		return nil
	}

	drops := make([]Drop, len(sim))
	avg := sim[0]
	for i, s := range sim {
		drops[i] = Drop{Index: i + 1, Drop: avg - s, Similarity: s}
		avg = 0.9*avg + 0.1*s
	}
	return drops
}

// sortByDrop returns the drops ordered largest first; ties keep sentence order.
func sortByDrop(drops []Drop) []Drop {
	sorted := make([]Drop, len(drops))
	copy(sorted, drops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Drop > sorted[j].Drop
	})
	return sorted
}

// ElbowBoundaries picks boundaries by locating the largest gap between
// consecutive ranked drop scores, cross-checked against a mean + std/2
// threshold. The result is sorted ascending.
func ElbowBoundaries(sim []float64, opts ElbowOptions) ([]int, ElbowReport) {
	sorted := sortByDrop(DropScores(sim))
	if len(sorted) < 3 {
		return nil, ElbowReport{}
	}

	lo, hi := opts.MinParagraphs-1, opts.MaxParagraphs-1

	elbow := lo
	bestDiff := 0.0
	for i := 0; i < len(sorted)-1; i++ {
		if i < lo || i >= hi {
			continue
		}
		if diff := sorted[i].Drop - sorted[i+1].Drop; diff > bestDiff {
			bestDiff = diff
			elbow = i + 1
		}
	}

	mean, std := meanStd(sorted)
	threshold := mean + 0.5*std
	significant := 0
	for _, d := range sorted {
		if d.Drop > threshold {
			significant++
		}
	}

	// The statistical count may exceed the elbow window; the clamp bounds it.
	count := min(max(elbow, significant), hi)
	count = max(count, lo)

	boundaries := selectSpaced(sorted, count, opts.MinGap)
	return boundaries, ElbowReport{Count: count, Elbow: elbow, Significant: significant}
}

// TopBoundaries selects the target-1 largest drops that respect minGap.
func TopBoundaries(sim []float64, target, minGap int) []int {
	if len(sim) == 0 || target < 2 {
		return nil
	}
	return selectSpaced(sortByDrop(DropScores(sim)), target-1, minGap)
}

// RatioBoundaries marks a boundary wherever similarity falls below
// dropRatio times the running average, at least minGap after the last one.
func RatioBoundaries(sim []float64, dropRatio float64, minGap int) []int {
	if len(sim) == 0 {
		return nil
	}

	var boundaries []int
	avg := sim[0]
	last := -minGap
	for i, s := range sim {
		if s < avg*dropRatio && i+1-last >= minGap {
			boundaries = append(boundaries, i+1)
			last = i + 1
		}
		avg = 0.8*avg + 0.2*s
	}
	return boundaries
}

// selectSpaced greedily accepts drops in ranked order, rejecting any index
// closer than minGap to an accepted one, until count are accepted.
func selectSpaced(sorted []Drop, count, minGap int) []int {
	var accepted []int
	for _, d := range sorted {
		if len(accepted) >= count {
			break
		}
		valid := true
		for _, existing := range accepted {
			if abs(d.Index-existing) < minGap {
				valid = false
				break
			}
		}
		if valid {
			accepted = append(accepted, d.Index)
		}
	}
	sort.Ints(accepted)
	return accepted
}

// meanStd returns the mean and population standard deviation of the drops.
func meanStd(drops []Drop) (float64, float64) {
	var sum float64
	for _, d := range drops {
		sum += d.Drop
	}
	mean := sum / float64(len(drops))

	var sq float64
	for _, d := range drops {
		sq += (d.Drop - mean) * (d.Drop - mean)
	}
	return mean, math.Sqrt(sq / float64(len(drops)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
