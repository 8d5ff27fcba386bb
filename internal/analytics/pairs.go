package analytics

import (
	"cmp"
	"slices"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

// TopPairs is how many pairs ComputePairs reports.
const TopPairs = 20

// PairFrequency counts draws containing both A and B, with A < B.
type PairFrequency struct {
	A         int `json:"a"`
	B         int `json:"b"`
	Frequency int `json:"frequency"`
}

// ComputePairs returns the most frequent co-occurring pairs. Ties go to the
// numerically smaller pair.
func ComputePairs(h draw.History) []PairFrequency {
	counts := make(map[[2]int]int)
	for _, d := range h {
		nums := d.Sorted()
		for i := 0; i < len(nums); i++ {
			for j := i + 1; j < len(nums); j++ {
				counts[[2]int{nums[i], nums[j]}]++
			}
		}
	}

	pairs := make([]PairFrequency, 0, len(counts))
	for p, c := range counts {
		pairs = append(pairs, PairFrequency{A: p[0], B: p[1], Frequency: c})
	}
	slices.SortFunc(pairs, func(x, y PairFrequency) int {
		if c := cmp.Compare(y.Frequency, x.Frequency); c != 0 {
			return c
		}
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})

	if len(pairs) > TopPairs {
		pairs = pairs[:TopPairs]
	}
	return pairs
}
