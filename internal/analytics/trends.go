package analytics

import (
	"cmp"
	"slices"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

const (
	// MinTrendDraws is the smallest history ComputeTrends will split.
	MinTrendDraws = 5
	// TrendThreshold is the percentage change separating a trend from noise.
	TrendThreshold = 30.0
	maxTrendList   = 10
)

// Trend compares a number's per-draw rate in the older and newer half of
// the history.
type Trend struct {
	Number     int     `json:"number"`
	FirstRate  float64 `json:"first_rate"`
	SecondRate float64 `json:"second_rate"`
	ChangePct  float64 `json:"change_pct"`
}

// TrendReport groups numbers by direction of change.
type TrendReport struct {
	Up     []Trend `json:"trending_up"`
	Down   []Trend `json:"trending_down"`
	Stable []Trend `json:"stable"`
}

// ComputeTrends splits the history chronologically in half and classifies
// each number by how its occurrence rate moved. Histories shorter than
// MinTrendDraws produce an empty report.
func ComputeTrends(h draw.History, maxNumber int) TrendReport {
	report := TrendReport{Up: []Trend{}, Down: []Trend{}, Stable: []Trend{}}
	if len(h) < MinTrendDraws {
		return report
	}

	ordered := h.SortedByDate(false)
	mid := len(ordered) / 2
	first, second := ordered[:mid], ordered[mid:]
	firstCounts := ComputeFrequencies(first).Numbers
	secondCounts := ComputeFrequencies(second).Numbers

	for n := 1; n <= maxNumber; n++ {
		t := Trend{
			Number:     n,
			FirstRate:  float64(firstCounts[n]) / float64(max(1, len(first))),
			SecondRate: float64(secondCounts[n]) / float64(max(1, len(second))),
		}
		t.ChangePct = changePct(t.FirstRate, t.SecondRate)

		switch {
		case t.ChangePct > TrendThreshold:
			report.Up = append(report.Up, t)
		case t.ChangePct < -TrendThreshold:
			report.Down = append(report.Down, t)
		default:
			report.Stable = append(report.Stable, t)
		}
	}

	slices.SortStableFunc(report.Up, func(a, b Trend) int { return cmp.Compare(b.ChangePct, a.ChangePct) })
	slices.SortStableFunc(report.Down, func(a, b Trend) int { return cmp.Compare(a.ChangePct, b.ChangePct) })
	if len(report.Up) > maxTrendList {
		report.Up = report.Up[:maxTrendList]
	}
	if len(report.Down) > maxTrendList {
		report.Down = report.Down[:maxTrendList]
	}

	for _, list := range [][]Trend{report.Up, report.Down, report.Stable} {
		for i := range list {
			list[i].FirstRate = round2(list[i].FirstRate)
			list[i].SecondRate = round2(list[i].SecondRate)
			list[i].ChangePct = round2(list[i].ChangePct)
		}
	}
	return report
}

func changePct(first, second float64) float64 {
	if first > 0 {
		return (second - first) / max(0.01, first) * 100
	}
	if second > 0 {
		return 100
	}
	return 0
}
