// Package store keeps the draw history in a TOML file.
//
// A Store is an explicitly owned collection: commands open it, read snapshots
// with History, and save it back. Analysis code only ever sees the copies
// returned by History.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

const fileVersion = 1

// record is the on-disk shape of a draw.
type record struct {
	Date    string `toml:"date"`
	Kind    string `toml:"kind"`
	Numbers []int  `toml:"numbers"`
	Super   *int   `toml:"super,omitempty"`
}

type document struct {
	Version int      `toml:"version"`
	Draws   []record `toml:"draw"`
}

// drawKey identifies a draw the way draw.Draw.Equal does.
type drawKey struct {
	date    string
	kind    draw.Kind
	numbers [draw.NumbersPerDraw]int
	super   int // 0 when absent
}

func keyOf(d draw.Draw) drawKey {
	k := drawKey{date: d.Date, kind: d.Kind, numbers: d.Sorted()}
	if d.Super != nil {
		k.super = *d.Super
	}
	return k
}

// Store is a de-duplicated set of draws backed by a file.
type Store struct {
	mu     sync.RWMutex
	path   string
	draws  draw.History
	seen   map[drawKey]struct{}
	logger *log.Logger
	clock  quartz.Clock
}

// Open loads path if it exists. A missing file yields an empty store that
// will be created on Save.
func Open(path string, logger *log.Logger, clock quartz.Clock) (*Store, error) {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		path:   path,
		seen:   make(map[drawKey]struct{}),
		logger: logger.WithPrefix("store"),
		clock:  clock,
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("History file not found, starting empty", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	draws, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.Merge(draws)
	s.logger.Debug("Loaded history", "path", path, "draws", len(s.draws))
	return s, nil
}

// Decode reads draws from TOML, validating each one.
func Decode(r io.Reader) (draw.History, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if doc.Version > fileVersion {
		return nil, fmt.Errorf("unsupported history version %d", doc.Version)
	}

	out := make(draw.History, 0, len(doc.Draws))
	for i, rec := range doc.Draws {
		kind, err := draw.ParseKind(rec.Kind)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i+1, err)
		}
		d, err := draw.New(rec.Date, kind, rec.Numbers, rec.Super)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i+1, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Encode writes draws as TOML.
func Encode(w io.Writer, h draw.History) error {
	doc := document{Version: fileVersion, Draws: make([]record, len(h))}
	for i, d := range h {
		sorted := d.Sorted()
		doc.Draws[i] = record{
			Date:    d.Date,
			Kind:    d.Kind.String(),
			Numbers: sorted[:],
			Super:   d.Super,
		}
	}
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(doc)
}

// Add stores d unless an equal draw is already present. It reports whether
// the draw was added.
func (s *Store) Add(d draw.Draw) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(d)
}

func (s *Store) add(d draw.Draw) bool {
	k := keyOf(d)
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.draws = append(s.draws, d)
	return true
}

// Merge adds every draw not already stored and returns how many were new.
func (s *Store) Merge(draws []draw.Draw) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, d := range draws {
		if s.add(d) {
			added++
		}
	}
	return added
}

// AddManual validates and stores a hand-entered result. An empty date means
// today according to the store's clock.
func (s *Store) AddManual(date string, kind draw.Kind, numbers []int, super *int) (draw.Draw, error) {
	if date == "" {
		date = s.clock.Now().Format(draw.DateLayout)
	}
	d, err := draw.New(date, kind, numbers, super)
	if err != nil {
		return draw.Draw{}, err
	}
	if !s.Add(d) {
		s.logger.Warn("Draw already stored", "draw", d.String())
	}
	return d, nil
}

// History returns a copy of the stored draws of kind.
func (s *Store) History(kind draw.Kind) draw.History {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draws.Filter(kind)
}

// Count returns the number of stored draws.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.draws)
}

// CountByKind returns the number of stored draws per game.
func (s *Store) CountByKind() map[draw.Kind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[draw.Kind]int, len(draw.Kinds))
	for _, d := range s.draws {
		counts[d.Kind]++
	}
	return counts
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Save writes the store to its file atomically, ordered by date.
func (s *Store) Save() error {
	s.mu.RLock()
	ordered := s.draws.SortedByDate(false)
	s.mu.RUnlock()

	var buf bytes.Buffer
	if err := Encode(&buf, ordered); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := writeFileAtomic(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	s.logger.Debug("Saved history", "path", s.path, "draws", len(ordered))
	return nil
}
