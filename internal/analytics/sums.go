package analytics

import (
	"slices"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"gonum.org/v1/gonum/stat"
)

// SumBucket counts draws whose sum falls in [RangeStart, RangeEnd).
type SumBucket struct {
	RangeStart int `json:"range_start"`
	RangeEnd   int `json:"range_end"`
	Count      int `json:"count"`
}

// SumStats describes the distribution of per-draw number sums.
type SumStats struct {
	Buckets         []SumBucket `json:"buckets"`
	Average         float64     `json:"average"`
	StdDev          float64     `json:"std_dev"`
	Min             int         `json:"min"`
	Max             int         `json:"max"`
	RecommendedLow  int         `json:"recommended_low"`
	RecommendedHigh int         `json:"recommended_high"`
}

// ComputeSumDistribution buckets draw sums into roughly ten equal ranges and
// reports the 20th-80th percentile band as the recommended range.
func ComputeSumDistribution(h draw.History) SumStats {
	if len(h) == 0 {
		return SumStats{Buckets: []SumBucket{}}
	}

	sums := make([]int, len(h))
	values := make([]float64, len(h))
	for i, d := range h {
		sums[i] = d.Sum()
		values[i] = float64(sums[i])
	}
	slices.Sort(sums)

	minSum, maxSum := sums[0], sums[len(sums)-1]
	size := max(1, (maxSum-minSum)/10)

	counts := make(map[int]int)
	for _, s := range sums {
		counts[(s-minSum)/size*size+minSum]++
	}
	buckets := make([]SumBucket, 0, len(counts))
	for start, c := range counts {
		buckets = append(buckets, SumBucket{RangeStart: start, RangeEnd: start + size, Count: c})
	}
	slices.SortFunc(buckets, func(a, b SumBucket) int { return a.RangeStart - b.RangeStart })

	n := len(sums)
	return SumStats{
		Buckets:         buckets,
		Average:         round2(stat.Mean(values, nil)),
		StdDev:          round2(stat.PopStdDev(values, nil)),
		Min:             minSum,
		Max:             maxSum,
		RecommendedLow:  sums[n*2/10],
		RecommendedHigh: sums[n*8/10],
	}
}
