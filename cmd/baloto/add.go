package main

import (
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"github.com/jrojasbu/SW-BALOTO/internal/render"
)

type AddCmd struct {
	Kind    string `short:"k" required:"" help:"Game of the result (baloto, revancha, miloto)"`
	Numbers []int  `required:"" sep:"," help:"The five drawn numbers, comma separated"`
	Super   *int   `help:"Super number (baloto and revancha only)"`
	Date    string `help:"Draw date as YYYY-MM-DD (defaults to today)"`
}

func (c *AddCmd) Run(g *Globals) error {
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

	before := s.Count()
	d, err := s.AddManual(c.Date, kind, c.Numbers, c.Super)
	if err != nil {
		return err
	}
	if s.Count() == before {
		return nil
	}
	if err := s.Save(); err != nil {
		return err
	}
	e.logger.Info("Added draw", "draw", d.String(), "path", s.Path())
	return render.History(stdout, draw.History{d})
}
