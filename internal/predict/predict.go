// Package predict draws frequency-weighted candidate tickets from a history.
//
// A prediction is a weighted random sample, not a forecast: every number
// keeps a nonzero chance of selection and more frequent numbers are simply
// more likely.
package predict

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/jrojasbu/SW-BALOTO/internal/analytics"
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

// ErrInvalidCount is returned when count cannot be satisfied from the range.
var ErrInvalidCount = errors.New("invalid pick count")

// Prediction is one generated ticket.
type Prediction struct {
	ID          uuid.UUID `json:"id"`
	Kind        draw.Kind `json:"kind"`
	Numbers     []int     `json:"numbers"`
	Super       *int      `json:"super,omitempty"`
	HistorySize int       `json:"history_size"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Generator samples numbers. It is not safe for concurrent use because the
// underlying *rand.Rand is not.
type Generator struct {
	rng   *rand.Rand
	clock quartz.Clock
}

// NewGenerator returns a Generator using rng for sampling and clock for
// timestamps. A nil clock means the real clock.
func NewGenerator(rng *rand.Rand, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{rng: rng, clock: clock}
}

// Numbers picks count distinct numbers from [1, maxNumber] without
// replacement, weighting each by its historical count plus one. The result
// is sorted ascending.
func (g *Generator) Numbers(h draw.History, count, maxNumber int) ([]int, error) {
	if count <= 0 || count > maxNumber {
		return nil, fmt.Errorf("%w: %d from [1, %d]", ErrInvalidCount, count, maxNumber)
	}

	p := newPool(analytics.ComputeFrequencies(h).Numbers, maxNumber)
	picked := make([]int, 0, count)
	for len(picked) < count && p.len() > 0 {
		picked = append(picked, p.take(g.rng))
	}
	slices.Sort(picked)
	return picked, nil
}

// Super makes one weighted pick from [1, draw.MaxSuper] using the super
// number counts of h, independently of any main-number sample.
func (g *Generator) Super(h draw.History) int {
	p := newPool(analytics.ComputeFrequencies(h).Super, draw.MaxSuper)
	return p.take(g.rng)
}

// Predict builds a full ticket for kind. h must hold only draws of kind.
func (g *Generator) Predict(h draw.History, kind draw.Kind) (Prediction, error) {
	if !kind.Valid() {
		return Prediction{}, fmt.Errorf("%w: %q", draw.ErrUnknownKind, kind)
	}

	numbers, err := g.Numbers(h, draw.NumbersPerDraw, kind.MaxNumber())
	if err != nil {
		return Prediction{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Prediction{}, fmt.Errorf("generate prediction id: %w", err)
	}

	p := Prediction{
		ID:          id,
		Kind:        kind,
		Numbers:     numbers,
		HistorySize: len(h),
		GeneratedAt: g.clock.Now(),
	}
	if kind.HasSuper() {
		p.Super = draw.IntPtr(g.Super(h))
	}
	return p, nil
}

// pool is the live set of candidates. Taking a number swap-removes it, so
// the remaining weights never need to be rebuilt.
type pool struct {
	numbers []int
	weights []int
	total   int
}

func newPool(counts map[int]int, maxNumber int) *pool {
	p := &pool{
		numbers: make([]int, maxNumber),
		weights: make([]int, maxNumber),
	}
	for i := range p.numbers {
		n := i + 1
		p.numbers[i] = n
		p.weights[i] = counts[n] + 1
		p.total += p.weights[i]
	}
	return p
}

func (p *pool) len() int {
	return len(p.numbers)
}

func (p *pool) take(rng *rand.Rand) int {
	r := rng.IntN(p.total)
	i := 0
	for ; i < len(p.weights)-1; i++ {
		if r < p.weights[i] {
			break
		}
		r -= p.weights[i]
	}

	n := p.numbers[i]
	p.total -= p.weights[i]
	last := len(p.numbers) - 1
	p.numbers[i], p.weights[i] = p.numbers[last], p.weights[last]
	p.numbers, p.weights = p.numbers[:last], p.weights[:last]
	return n
}
