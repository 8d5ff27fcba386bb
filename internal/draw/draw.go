// Package draw defines lottery draw records and the games they belong to.
package draw

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// NumbersPerDraw is how many main numbers every game draws.
	NumbersPerDraw = 5
	// MaxSuper is the upper bound of the secondary (super) number.
	MaxSuper = 16
	// DateLayout is the only accepted date format.
	DateLayout = "2006-01-02"
)

var (
	ErrUnknownKind     = errors.New("unknown game kind")
	ErrNumberCount     = errors.New("wrong number count")
	ErrNumberRange     = errors.New("number out of range")
	ErrDuplicateNumber = errors.New("duplicate number")
	ErrSuperMismatch   = errors.New("super number presence does not match game kind")
	ErrSuperRange      = errors.New("super number out of range")
	ErrInvalidDate     = errors.New("invalid date")
)

// Kind identifies a game. Baloto and Revancha share rules but are drawn
// independently, so they are analyzed as separate histories.
type Kind string

const (
	Baloto   Kind = "baloto"
	Revancha Kind = "revancha"
	MiLoto   Kind = "miloto"
)

// Kinds lists every supported game in display order.
var Kinds = []Kind{Baloto, Revancha, MiLoto}

// ParseKind converts a user supplied name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Valid reports whether k is a known game.
func (k Kind) Valid() bool {
	switch k {
	case Baloto, Revancha, MiLoto:
		return true
	}
	return false
}

// MaxNumber returns the highest main number for the game.
func (k Kind) MaxNumber() int {
	if k == MiLoto {
		return 39
	}
	return 43
}

// HasSuper reports whether the game draws a super number.
func (k Kind) HasSuper() bool {
	return k == Baloto || k == Revancha
}

func (k Kind) String() string {
	return string(k)
}

// Draw is one published result.
type Draw struct {
	Date    string              `json:"date"`
	Kind    Kind                `json:"kind"`
	Numbers [NumbersPerDraw]int `json:"numbers"`
	Super   *int                `json:"super,omitempty"`
}

// New validates its arguments and builds a Draw. Numbers are stored in the
// order given; use Sorted for the ascending view.
func New(date string, kind Kind, numbers []int, super *int) (Draw, error) {
	if !kind.Valid() {
		return Draw{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Draw{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if len(numbers) != NumbersPerDraw {
		return Draw{}, fmt.Errorf("%w: got %d, want %d", ErrNumberCount, len(numbers), NumbersPerDraw)
	}

	d := Draw{Date: date, Kind: kind}
	seen := make(map[int]bool, NumbersPerDraw)
	for i, n := range numbers {
		if n < 1 || n > kind.MaxNumber() {
			return Draw{}, fmt.Errorf("%w: %d not in [1, %d]", ErrNumberRange, n, kind.MaxNumber())
		}
		if seen[n] {
			return Draw{}, fmt.Errorf("%w: %d", ErrDuplicateNumber, n)
		}
		seen[n] = true
		d.Numbers[i] = n
	}

	switch {
	case kind.HasSuper() && super == nil:
		return Draw{}, fmt.Errorf("%w: %s requires a super number", ErrSuperMismatch, kind)
	case !kind.HasSuper() && super != nil:
		return Draw{}, fmt.Errorf("%w: %s has no super number", ErrSuperMismatch, kind)
	case super != nil:
		if *super < 1 || *super > MaxSuper {
			return Draw{}, fmt.Errorf("%w: %d not in [1, %d]", ErrSuperRange, *super, MaxSuper)
		}
		s := *super
		d.Super = &s
	}

	return d, nil
}

// Sorted returns the main numbers in ascending order.
func (d Draw) Sorted() [NumbersPerDraw]int {
	out := d.Numbers
	slices.Sort(out[:])
	return out
}

// Sum returns the total of the main numbers.
func (d Draw) Sum() int {
	total := 0
	for _, n := range d.Numbers {
		total += n
	}
	return total
}

// Contains reports whether n is one of the main numbers.
func (d Draw) Contains(n int) bool {
	return slices.Contains(d.Numbers[:], n)
}

// Equal compares draws as sets, the way duplicate results are detected.
func (d Draw) Equal(o Draw) bool {
	if d.Date != o.Date || d.Kind != o.Kind || d.Sorted() != o.Sorted() {
		return false
	}
	if d.Super == nil || o.Super == nil {
		return d.Super == nil && o.Super == nil
	}
	return *d.Super == *o.Super
}

func (d Draw) String() string {
	nums := d.Sorted()
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	s := fmt.Sprintf("%s %s [%s]", d.Date, d.Kind, strings.Join(parts, " "))
	if d.Super != nil {
		s += fmt.Sprintf(" super %02d", *d.Super)
	}
	return s
}

// IntPtr is a convenience for building optional super numbers.
func IntPtr(n int) *int {
	return &n
}
