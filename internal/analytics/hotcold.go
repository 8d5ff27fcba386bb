package analytics

import (
	"cmp"
	"slices"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

const (
	// HotColdMargin is the fraction of the expected count a number must
	// exceed (or fall short of) to be called hot (or cold).
	HotColdMargin = 0.3
	maxHotCold    = 10
)

// Class labels a number's observed frequency against a uniform baseline.
type Class string

const (
	Hot     Class = "hot"
	Cold    Class = "cold"
	Neutral Class = "neutral"
)

// Classified is one number's observed count and its deviation from the
// expected count.
type Classified struct {
	Number    int     `json:"number"`
	Count     int     `json:"count"`
	Deviation float64 `json:"deviation"`
	Class     Class   `json:"class"`
}

// HotColdReport lists hot and cold numbers (at most ten each) and every
// neutral number. HotTotal and ColdTotal count before truncation.
type HotColdReport struct {
	Expected  float64      `json:"expected"`
	Hot       []Classified `json:"hot"`
	Cold      []Classified `json:"cold"`
	Neutral   []Classified `json:"neutral"`
	HotTotal  int          `json:"hot_total"`
	ColdTotal int          `json:"cold_total"`
}

// Classify labels every number in [1, maxNumber]. The result is indexed by
// number-1 and is not truncated.
func Classify(h draw.History, maxNumber int) []Classified {
	return classify(ComputeFrequencies(h).Numbers, len(h)*draw.NumbersPerDraw, maxNumber)
}

// ComputeHotCold classifies the main numbers of a history.
func ComputeHotCold(h draw.History, maxNumber int) HotColdReport {
	return summarize(Classify(h, maxNumber), expectedCount(len(h)*draw.NumbersPerDraw, maxNumber))
}

// ComputeSuperHotCold classifies super numbers in [1, draw.MaxSuper].
func ComputeSuperHotCold(h draw.History) HotColdReport {
	counts := ComputeFrequencies(h).Super
	drawn := 0
	for _, c := range counts {
		drawn += c
	}
	return summarize(classify(counts, drawn, draw.MaxSuper), expectedCount(drawn, draw.MaxSuper))
}

func expectedCount(drawn, maxNumber int) float64 {
	if maxNumber <= 0 {
		return 0
	}
	return float64(drawn) / float64(maxNumber)
}

// classify compares counts against drawn/maxNumber. Both bounds are strict,
// so with an empty history every number is neutral.
func classify(counts map[int]int, drawn, maxNumber int) []Classified {
	expected := expectedCount(drawn, maxNumber)
	margin := HotColdMargin * expected

	out := make([]Classified, 0, maxNumber)
	for n := 1; n <= maxNumber; n++ {
		deviation := float64(counts[n]) - expected
		c := Classified{Number: n, Count: counts[n], Deviation: round2(deviation), Class: Neutral}
		switch {
		case deviation > margin:
			c.Class = Hot
		case deviation < -margin:
			c.Class = Cold
		}
		out = append(out, c)
	}
	return out
}

func summarize(all []Classified, expected float64) HotColdReport {
	r := HotColdReport{
		Expected: round2(expected),
		Hot:      []Classified{},
		Cold:     []Classified{},
		Neutral:  []Classified{},
	}
	for _, c := range all {
		switch c.Class {
		case Hot:
			r.Hot = append(r.Hot, c)
		case Cold:
			r.Cold = append(r.Cold, c)
		default:
			r.Neutral = append(r.Neutral, c)
		}
	}
	r.HotTotal, r.ColdTotal = len(r.Hot), len(r.Cold)

	// all is in number order, so stable sorts break count ties by number
	slices.SortStableFunc(r.Hot, func(a, b Classified) int { return cmp.Compare(b.Count, a.Count) })
	slices.SortStableFunc(r.Cold, func(a, b Classified) int { return cmp.Compare(a.Count, b.Count) })
	if len(r.Hot) > maxHotCold {
		r.Hot = r.Hot[:maxHotCold]
	}
	if len(r.Cold) > maxHotCold {
		r.Cold = r.Cold[:maxHotCold]
	}
	return r
}
