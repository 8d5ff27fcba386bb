package analytics

import (
	"slices"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

const topPerPosition = 5

// NumberCount pairs a number with how often it was observed.
type NumberCount struct {
	Number    int `json:"number"`
	Frequency int `json:"frequency"`
}

// PositionStats lists the most common occupants of one sorted slot.
// Position 1 is the smallest number of a draw, 5 the largest.
type PositionStats struct {
	Position int           `json:"position"`
	Top      []NumberCount `json:"top_numbers"`
}

// ComputePositions tallies which numbers land in each ascending slot. Ties
// keep the order in which numbers were first encountered.
func ComputePositions(h draw.History) []PositionStats {
	var (
		counts [draw.NumbersPerDraw]map[int]int
		order  [draw.NumbersPerDraw][]int
	)
	for i := range counts {
		counts[i] = make(map[int]int)
	}

	for _, d := range h {
		for slot, n := range d.Sorted() {
			if counts[slot][n] == 0 {
				order[slot] = append(order[slot], n)
			}
			counts[slot][n]++
		}
	}

	out := make([]PositionStats, draw.NumbersPerDraw)
	for slot := range out {
		top := make([]NumberCount, len(order[slot]))
		for i, n := range order[slot] {
			top[i] = NumberCount{Number: n, Frequency: counts[slot][n]}
		}
		slices.SortStableFunc(top, func(a, b NumberCount) int { return b.Frequency - a.Frequency })
		if len(top) > topPerPosition {
			top = top[:topPerPosition]
		}
		out[slot] = PositionStats{Position: slot + 1, Top: top}
	}
	return out
}
