package draw

import (
	"cmp"
	"slices"
)

// History is a collection of draws. Analyzers treat it as read-only.
type History []Draw

// Filter returns the draws of a single kind in a new slice.
func (h History) Filter(kind Kind) History {
	out := make(History, 0, len(h))
	for _, d := range h {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// SortedByDate returns a stably sorted copy. Dates compare lexically, which
// matches chronological order for the YYYY-MM-DD layout.
func (h History) SortedByDate(desc bool) History {
	out := slices.Clone(h)
	slices.SortStableFunc(out, func(a, b Draw) int {
		if desc {
			return cmp.Compare(b.Date, a.Date)
		}
		return cmp.Compare(a.Date, b.Date)
	})
	return out
}

// Contains reports whether an equal draw is already present.
func (h History) Contains(d Draw) bool {
	return slices.ContainsFunc(h, d.Equal)
}
