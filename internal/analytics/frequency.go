// Package analytics turns a draw history into descriptive statistics.
//
// Every function here is a pure function of the history it is given: nothing
// is cached between calls and input slices are never modified, so callers may
// run analyzers concurrently over the same snapshot as long as nobody writes
// to it in the meantime.
package analytics

import (
	"math"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

// Frequencies holds occurrence counts keyed by number. Numbers that never
// appeared are absent and should be read as zero.
type Frequencies struct {
	Numbers map[int]int `json:"numbers"`
	Super   map[int]int `json:"super"`
}

// ComputeFrequencies counts every main number and every super number.
func ComputeFrequencies(h draw.History) Frequencies {
	f := Frequencies{
		Numbers: make(map[int]int),
		Super:   make(map[int]int),
	}
	for _, d := range h {
		for _, n := range d.Numbers {
			f.Numbers[n]++
		}
		if d.Super != nil {
			f.Super[*d.Super]++
		}
	}
	return f
}

// Total returns the sum of all main number counts.
func (f Frequencies) Total() int {
	total := 0
	for _, c := range f.Numbers {
		total += c
	}
	return total
}

func superValues(d draw.Draw) []int {
	if d.Super == nil {
		return nil
	}
	return []int{*d.Super}
}

func mainValues(d draw.Draw) []int {
	return d.Numbers[:]
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
