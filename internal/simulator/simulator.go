// Package simulator generates synthetic draw histories. It stands in for a
// results feed when none is available, so the rest of the tool has data to
// work with.
package simulator

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"github.com/jrojasbu/SW-BALOTO/internal/randutil"
)

// Config holds configuration for a simulation run
type Config struct {
	Kinds  map[draw.Kind]int // draws to generate per game
	Seed   *int64            // nil draws a fresh seed
	Clock  quartz.Clock
	Logger *log.Logger
}

// DefaultDraws is roughly a month of results: Baloto and Revancha twice a
// week, MiLoto four times.
func DefaultDraws() map[draw.Kind]int {
	return map[draw.Kind]int{
		draw.Baloto:   8,
		draw.Revancha: 8,
		draw.MiLoto:   14,
	}
}

// Simulator produces uniformly random, valid draws
type Simulator struct {
	config Config
	rng    *rand.Rand
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Kinds == nil {
		config.Kinds = DefaultDraws()
	}
	config.Logger = config.Logger.WithPrefix("simulate")
	return &Simulator{config: config, rng: randutil.FromSeed(config.Seed)}
}

// Run generates every configured game, most recent draw dated today.
func (s *Simulator) Run() (draw.History, error) {
	var out draw.History
	for _, kind := range draw.Kinds {
		n := s.config.Kinds[kind]
		if n <= 0 {
			continue
		}
		h, err := s.Simulate(kind, n)
		if err != nil {
			return nil, err
		}
		s.config.Logger.Debug("Simulated draws", "kind", kind, "draws", len(h))
		out = append(out, h...)
	}
	return out, nil
}

// Simulate generates n draws of kind stepping back from today.
func (s *Simulator) Simulate(kind draw.Kind, n int) (draw.History, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", draw.ErrUnknownKind, kind)
	}

	today := s.config.Clock.Now()
	step := drawInterval(kind)
	out := make(draw.History, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, -i*step).Format(draw.DateLayout)

		numbers := s.rng.Perm(kind.MaxNumber())[:draw.NumbersPerDraw]
		for j := range numbers {
			numbers[j]++
		}
		var super *int
		if kind.HasSuper() {
			super = draw.IntPtr(s.rng.IntN(draw.MaxSuper) + 1)
		}

		d, err := draw.New(date, kind, numbers, super)
		if err != nil {
			return nil, fmt.Errorf("simulated %s draw %d: %w", kind, i+1, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// drawInterval is the number of days between simulated results.
func drawInterval(kind draw.Kind) int {
	if kind == draw.MiLoto {
		return 2
	}
	return 3
}

// RunSimulation is a convenience function for simulating with a fixed seed
func RunSimulation(kinds map[draw.Kind]int, seed int64, clock quartz.Clock, logger *log.Logger) (draw.History, error) {
	return New(Config{Kinds: kinds, Seed: &seed, Clock: clock, Logger: logger}).Run()
}
