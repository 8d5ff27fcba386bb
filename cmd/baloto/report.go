package main

import (
	"fmt"

	"github.com/jrojasbu/SW-BALOTO/internal/analytics"
	"github.com/jrojasbu/SW-BALOTO/internal/render"
)

type ReportCmd struct {
	Kind    string `short:"k" required:"" help:"Game to analyze (baloto, revancha, miloto)"`
	Section string `short:"s" default:"all" help:"Section to show (all, frequencies, hot-cold, gaps, pairs, sums, trends, positions, super)"`
	JSON    bool   `help:"Print JSON instead of tables"`
}

func (c *ReportCmd) Run(g *Globals) error {
	kind, err := parseKind(c.Kind)
	if err != nil {
		return err
	}
	section, err := render.ParseSection(c.Section)
	if err != nil {
		return err
	}

	e, err := g.env()
	if err != nil {
		return err
	}
	s, err := e.openStore()
	if err != nil {
		return err
	}

	h := s.History(kind)
	if len(h) == 0 {
		return fmt.Errorf("no draws for %s", kind)
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := analytics.BuildReport(ctx, h, kind)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	e.logger.Debug("Built report", "kind", kind, "draws", report.TotalDraws, "section", section)

	if e.jsonOutput(c.JSON) {
		data, err := render.SectionData(report, section)
		if err != nil {
			return err
		}
		return render.JSON(stdout, data)
	}
	return render.Report(stdout, report, section)
}
