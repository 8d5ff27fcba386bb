package analytics

import (
	"cmp"
	"slices"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

// Gap describes how many draws have passed since a number was last seen.
// LastSeen is empty for numbers that never appeared.
type Gap struct {
	Number   int    `json:"number"`
	Gap      int    `json:"gap"`
	LastSeen string `json:"last_seen,omitempty"`
}

// ComputeGaps ranks every number in [1, maxNumber] by draws since its last
// appearance, most overdue first. A number never drawn has a gap equal to
// the history length.
func ComputeGaps(h draw.History, maxNumber int) []Gap {
	return gaps(h, maxNumber, mainValues)
}

// ComputeSuperGaps is ComputeGaps over the super number range.
func ComputeSuperGaps(h draw.History) []Gap {
	return gaps(h, draw.MaxSuper, superValues)
}

func gaps(h draw.History, maxNumber int, values func(draw.Draw) []int) []Gap {
	recent := h.SortedByDate(true)

	out := make([]Gap, maxNumber)
	for i := range out {
		out[i] = Gap{Number: i + 1, Gap: len(recent)}
	}

	seen := make([]bool, maxNumber+1)
	remaining := maxNumber
	for idx, d := range recent {
		for _, n := range values(d) {
			if n < 1 || n > maxNumber || seen[n] {
				continue
			}
			seen[n] = true
			out[n-1].Gap = idx
			out[n-1].LastSeen = d.Date
			remaining--
		}
		if remaining == 0 {
			break
		}
	}

	slices.SortFunc(out, func(a, b Gap) int {
		if c := cmp.Compare(b.Gap, a.Gap); c != 0 {
			return c
		}
		return cmp.Compare(a.Number, b.Number)
	})
	return out
}
