package main

import (
	"fmt"

	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"github.com/jrojasbu/SW-BALOTO/internal/simulator"
)

type SimulateCmd struct {
	Draws int    `short:"d" help:"Draws to simulate per game (overrides config)"`
	Seed  *int64 `help:"Random seed for reproducible simulations"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	if c.Draws < 0 {
		return fmt.Errorf("draws must not be negative")
	}

	kinds := e.cfg.SimulationDraws()
	if c.Draws > 0 {
		for k := range kinds {
			kinds[k] = c.Draws
		}
	}

	s, err := e.openStore()
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		Kinds:  kinds,
		Seed:   c.Seed,
		Clock:  e.clock,
		Logger: e.logger,
	})
	h, err := sim.Run()
	if err != nil {
		return err
	}

	added := s.Merge(h)
	if added > 0 {
		if err := s.Save(); err != nil {
			return err
		}
	}
	e.logger.Info("Simulation complete", "generated", len(h), "added", added, "path", s.Path())

	counts := s.CountByKind()
	for _, k := range draw.Kinds {
		fmt.Fprintf(stdout, "%s\t%d draws\n", k, counts[k])
	}
	return nil
}
