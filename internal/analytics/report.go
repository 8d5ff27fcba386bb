package analytics

import (
	"context"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"golang.org/x/sync/errgroup"
)

// SuperReport mirrors the frequency, hot/cold and gap sections for the
// super number.
type SuperReport struct {
	Frequencies map[int]int   `json:"frequencies"`
	HotCold     HotColdReport `json:"hot_cold"`
	Gaps        []Gap         `json:"gaps"`
}

// Report is the combined analysis of one game's history.
type Report struct {
	Kind        draw.Kind       `json:"kind"`
	TotalDraws  int             `json:"total_draws"`
	Frequencies map[int]int     `json:"frequencies"`
	HotCold     HotColdReport   `json:"hot_cold"`
	Gaps        []Gap           `json:"gaps"`
	Pairs       []PairFrequency `json:"pairs"`
	Sums        SumStats        `json:"sum_distribution"`
	Trends      TrendReport     `json:"trends"`
	Positions   []PositionStats `json:"positions"`
	Super       *SuperReport    `json:"super_analysis,omitempty"`
}

// BuildReport runs every analyzer over h. Sections read only the history,
// never each other's output, so they run concurrently; each goroutine owns
// one field of the report. h must already be filtered to kind and must not
// be modified until BuildReport returns.
func BuildReport(ctx context.Context, h draw.History, kind draw.Kind) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maxNumber := kind.MaxNumber()
	r := &Report{Kind: kind, TotalDraws: len(h)}
	if kind.HasSuper() {
		r.Super = &SuperReport{}
	}

	g, ctx := errgroup.WithContext(ctx)
	section := func(fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}

	section(func() { r.Frequencies = ComputeFrequencies(h).Numbers })
	section(func() { r.HotCold = ComputeHotCold(h, maxNumber) })
	section(func() { r.Gaps = ComputeGaps(h, maxNumber) })
	section(func() { r.Pairs = ComputePairs(h) })
	section(func() { r.Sums = ComputeSumDistribution(h) })
	section(func() { r.Trends = ComputeTrends(h, maxNumber) })
	section(func() { r.Positions = ComputePositions(h) })
	if r.Super != nil {
		section(func() { r.Super.Frequencies = ComputeFrequencies(h).Super })
		section(func() { r.Super.HotCold = ComputeSuperHotCold(h) })
		section(func() { r.Super.Gaps = ComputeSuperGaps(h) })
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}
