package main

import (
	"github.com/jrojasbu/SW-BALOTO/internal/render"
)

type HistoryCmd struct {
	Kind  string `short:"k" required:"" help:"Game to list (baloto, revancha, miloto)"`
	Limit int    `short:"n" help:"Show only the most recent N draws"`
	JSON  bool   `help:"Print JSON instead of tables"`
}

func (c *HistoryCmd) Run(g *Globals) error {
	kind, err := parseKind(c.Kind)
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

	h := s.History(kind).SortedByDate(true)
	if c.Limit > 0 && c.Limit < len(h) {
		h = h[:c.Limit]
	}

	if e.jsonOutput(c.JSON) {
		return render.JSON(stdout, h)
	}
	return render.History(stdout, h)
}
