package main

import (
	"github.com/jrojasbu/SW-BALOTO/internal/analytics"
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"github.com/jrojasbu/SW-BALOTO/internal/render"
)

type StatsCmd struct {
	JSON bool `help:"Print JSON instead of tables"`
}

func (c *StatsCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	s, err := e.openStore()
	if err != nil {
		return err
	}

	stats := make([]render.KindStats, 0, len(draw.Kinds))
	for _, k := range draw.Kinds {
		h := s.History(k)
		stats = append(stats, render.KindStats{
			Kind:        k,
			TotalDraws:  len(h),
			Frequencies: analytics.ComputeFrequencies(h),
		})
	}

	if e.jsonOutput(c.JSON) {
		return render.JSON(stdout, stats)
	}
	return render.Stats(stdout, stats)
}
