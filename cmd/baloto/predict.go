package main

import (
	"github.com/jrojasbu/SW-BALOTO/internal/predict"
	"github.com/jrojasbu/SW-BALOTO/internal/randutil"
	"github.com/jrojasbu/SW-BALOTO/internal/render"
)

type PredictCmd struct {
	Kind    string `short:"k" required:"" help:"Game to generate for (baloto, revancha, miloto)"`
	Seed    *int64 `help:"Random seed for reproducible tickets (overrides config)"`
	Tickets int    `short:"n" help:"Number of tickets (overrides config)"`
	JSON    bool   `help:"Print JSON instead of tables"`
}

func (c *PredictCmd) Run(g *Globals) error {
	kind, err := parseKind(c.Kind)
	if err != nil {
		return err
	}

	e, err := g.env()
	if err != nil {
		return err
	}
	if c.Seed != nil {
		e.cfg.Prediction.Seed = c.Seed
	}
	if c.Tickets != 0 {
		e.cfg.Prediction.Tickets = c.Tickets
		if err := e.cfg.Validate(); err != nil {
			return err
		}
	}

	s, err := e.openStore()
	if err != nil {
		return err
	}
	h := s.History(kind)
	if len(h) == 0 {
		e.logger.Warn("No stored draws, sampling uniformly", "kind", kind)
	}

	gen := predict.NewGenerator(randutil.FromSeed(e.cfg.Prediction.Seed), e.clock)
	tickets := make([]predict.Prediction, 0, e.cfg.Prediction.Tickets)
	for range e.cfg.Prediction.Tickets {
		p, err := gen.Predict(h, kind)
		if err != nil {
			return err
		}
		e.logger.Debug("Generated prediction", "id", p.ID, "kind", kind, "numbers", p.Numbers)
		tickets = append(tickets, p)
	}

	if e.jsonOutput(c.JSON) {
		return render.JSON(stdout, tickets)
	}
	return render.Predictions(stdout, tickets)
}
