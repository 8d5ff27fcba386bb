// Package render formats analytics results for the terminal and as JSON.
package render

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/jrojasbu/SW-BALOTO/internal/analytics"
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"github.com/jrojasbu/SW-BALOTO/internal/predict"
)

// Section selects one part of a report.
type Section string

const (
	SectionAll         Section = "all"
	SectionFrequencies Section = "frequencies"
	SectionHotCold     Section = "hot-cold"
	SectionGaps        Section = "gaps"
	SectionPairs       Section = "pairs"
	SectionSums        Section = "sums"
	SectionTrends      Section = "trends"
	SectionPositions   Section = "positions"
	SectionSuper       Section = "super"
)

// Sections lists every selectable section in display order.
var Sections = []Section{
	SectionAll, SectionFrequencies, SectionHotCold, SectionGaps, SectionPairs,
	SectionSums, SectionTrends, SectionPositions, SectionSuper,
}

// ErrUnknownSection is returned by ParseSection for unrecognised names.
var ErrUnknownSection = errors.New("unknown section")

// gapRows bounds the gap table in text output; JSON always carries every number.
const gapRows = 10

// ParseSection resolves a section name.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Sections, sec) {
		return sec, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownSection, s)
}

// SectionData returns the part of r that a section selects, for JSON output.
func SectionData(r *analytics.Report, s Section) (any, error) {
	switch s {
	case SectionAll:
		return r, nil
	case SectionFrequencies:
		return r.Frequencies, nil
	case SectionHotCold:
		return r.HotCold, nil
	case SectionGaps:
		return r.Gaps, nil
	case SectionPairs:
		return r.Pairs, nil
	case SectionSums:
		return r.Sums, nil
	case SectionTrends:
		return r.Trends, nil
	case SectionPositions:
		return r.Positions, nil
	case SectionSuper:
		if r.Super == nil {
			return nil, fmt.Errorf("%s has no super number", r.Kind)
		}
		return r.Super, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSection, s)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Report writes the selected section of r, or all of it.
func Report(w io.Writer, r *analytics.Report, s Section) error {
	if s == SectionSuper && r.Super == nil {
		return fmt.Errorf("%s has no super number", r.Kind)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", HeaderStyle.Render(fmt.Sprintf(" %s · %d draws ", r.Kind, r.TotalDraws)))

	show := func(sec Section) bool { return s == SectionAll || s == sec }
	if show(SectionFrequencies) {
		writeFrequencies(tw, "frequencies", r.Frequencies, r.Kind.MaxNumber())
	}
	if show(SectionHotCold) {
		writeHotCold(tw, "hot / cold", r.HotCold)
	}
	if show(SectionGaps) {
		writeGaps(tw, "most overdue", r.Gaps)
	}
	if show(SectionPairs) {
		writePairs(tw, r.Pairs)
	}
	if show(SectionSums) {
		writeSums(tw, r.Sums)
	}
	if show(SectionTrends) {
		writeTrends(tw, r.Trends)
	}
	if show(SectionPositions) {
		writePositions(tw, r.Positions)
	}
	if r.Super != nil && show(SectionSuper) {
		writeFrequencies(tw, "super frequencies", r.Super.Frequencies, draw.MaxSuper)
		writeHotCold(tw, "super hot / cold", r.Super.HotCold)
		writeGaps(tw, "super most overdue", r.Super.Gaps)
	}
	return tw.Flush()
}

func title(w io.Writer, s string) {
	fmt.Fprintf(w, "\n%s\n", TitleStyle.Render(s))
}

func ball(n int) string {
	return BallStyle.Render(fmt.Sprintf("%02d", n))
}

func writeFrequencies(w io.Writer, name string, freq map[int]int, maxNumber int) {
	title(w, name)
	for n := 1; n <= maxNumber; n++ {
		fmt.Fprintf(w, "%s %d\t", ball(n), freq[n])
		if n%8 == 0 || n == maxNumber {
			fmt.Fprintln(w)
		}
	}
}

func writeHotCold(w io.Writer, name string, hc analytics.HotColdReport) {
	title(w, name)
	fmt.Fprintf(w, "%s\t%.2f\n", InfoStyle.Render("expected"), hc.Expected)
	fmt.Fprintf(w, "%s\t%s\n", HotStyle.Render(fmt.Sprintf("hot (%d)", hc.HotTotal)), classified(hc.Hot))
	fmt.Fprintf(w, "%s\t%s\n", ColdStyle.Render(fmt.Sprintf("cold (%d)", hc.ColdTotal)), classified(hc.Cold))
	fmt.Fprintf(w, "%s\t%d numbers\n", InfoStyle.Render("neutral"), len(hc.Neutral))
}

func classified(cs []analytics.Classified) string {
	if len(cs) == 0 {
		return "-"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%02d (%d, %+.2f)", c.Number, c.Count, c.Deviation)
	}
	return strings.Join(parts, "  ")
}

func writeGaps(w io.Writer, name string, gaps []analytics.Gap) {
	title(w, name)
	fmt.Fprintf(w, "number\tgap\tlast seen\n")
	for _, g := range gaps[:min(gapRows, len(gaps))] {
		last := g.LastSeen
		if last == "" {
			last = "never"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", ball(g.Number), g.Gap, last)
	}
}

func writePairs(w io.Writer, pairs []analytics.PairFrequency) {
	title(w, "top pairs")
	if len(pairs) == 0 {
		fmt.Fprintln(w, InfoStyle.Render("no pairs"))
		return
	}
	fmt.Fprintf(w, "pair\tdraws\n")
	for _, p := range pairs {
		fmt.Fprintf(w, "%s-%s\t%d\n", ball(p.A), ball(p.B), p.Frequency)
	}
}

func writeSums(w io.Writer, s analytics.SumStats) {
	title(w, "sum distribution")
	fmt.Fprintf(w, "average\t%.2f\n", s.Average)
	fmt.Fprintf(w, "std dev\t%.2f\n", s.StdDev)
	fmt.Fprintf(w, "range\t%d-%d\n", s.Min, s.Max)
	fmt.Fprintf(w, "recommended\t%s\n", UpStyle.Render(fmt.Sprintf("%d-%d", s.RecommendedLow, s.RecommendedHigh)))
	for _, b := range s.Buckets {
		fmt.Fprintf(w, "%d-%d\t%d\t%s\n", b.RangeStart, b.RangeEnd, b.Count, strings.Repeat("#", b.Count))
	}
}

func writeTrends(w io.Writer, t analytics.TrendReport) {
	title(w, "trends")
	if len(t.Up)+len(t.Down)+len(t.Stable) == 0 {
		fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("need at least %d draws", analytics.MinTrendDraws)))
		return
	}
	fmt.Fprintf(w, "%s\t%s\n", UpStyle.Render("up"), trends(t.Up))
	fmt.Fprintf(w, "%s\t%s\n", DownStyle.Render("down"), trends(t.Down))
	fmt.Fprintf(w, "%s\t%d numbers\n", InfoStyle.Render("stable"), len(t.Stable))
}

func trends(ts []analytics.Trend) string {
	if len(ts) == 0 {
		return "-"
	}
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = fmt.Sprintf("%02d (%+.1f%%)", t.Number, t.ChangePct)
	}
	return strings.Join(parts, "  ")
}

func writePositions(w io.Writer, ps []analytics.PositionStats) {
	title(w, "positions")
	for _, p := range ps {
		parts := make([]string, len(p.Top))
		for i, nc := range p.Top {
			parts[i] = fmt.Sprintf("%s×%d", ball(nc.Number), nc.Frequency)
		}
		fmt.Fprintf(w, "#%d\t%s\n", p.Position, strings.Join(parts, "  "))
	}
}

// Predictions writes one line per generated ticket.
func Predictions(w io.Writer, ps []predict.Prediction) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range ps {
		balls := make([]string, len(p.Numbers))
		for i, n := range p.Numbers {
			balls[i] = ball(n)
		}
		line := strings.Join(balls, " ")
		if p.Super != nil {
			line += "  " + SuperStyle.Render(fmt.Sprintf("super %02d", *p.Super))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", TitleStyle.Render(p.Kind.String()), line,
			InfoStyle.Render(fmt.Sprintf("from %d draws", p.HistorySize)))
	}
	return tw.Flush()
}

// History lists draws in the order given.
func History(w io.Writer, h draw.History) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		TitleStyle.Render("date"), TitleStyle.Render("game"),
		TitleStyle.Render("numbers"), TitleStyle.Render("super"))
	for _, d := range h {
		balls := make([]string, 0, draw.NumbersPerDraw)
		for _, n := range d.Sorted() {
			balls = append(balls, ball(n))
		}
		super := "-"
		if d.Super != nil {
			super = SuperStyle.Render(fmt.Sprintf("%02d", *d.Super))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Date, d.Kind, strings.Join(balls, " "), super)
	}
	return tw.Flush()
}

// KindStats summarises one game's stored history.
type KindStats struct {
	Kind        draw.Kind             `json:"kind"`
	TotalDraws  int                   `json:"total_draws"`
	Frequencies analytics.Frequencies `json:"frequencies"`
}

// statsTop is how many leading numbers the text stats view shows per game.
const statsTop = 5

// Stats writes a per-game summary with the most drawn numbers.
func Stats(w io.Writer, stats []KindStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		TitleStyle.Render("game"), TitleStyle.Render("draws"),
		TitleStyle.Render("most drawn"), TitleStyle.Render("most drawn super"))
	for _, s := range stats {
		super := "-"
		if s.Kind.HasSuper() {
			super = countList(TopNumbers(s.Frequencies.Super, statsTop))
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Kind, s.TotalDraws,
			countList(TopNumbers(s.Frequencies.Numbers, statsTop)), super)
	}
	return tw.Flush()
}

func countList(ncs []analytics.NumberCount) string {
	if len(ncs) == 0 {
		return "-"
	}
	parts := make([]string, len(ncs))
	for i, nc := range ncs {
		parts[i] = fmt.Sprintf("%02d×%d", nc.Number, nc.Frequency)
	}
	return strings.Join(parts, " ")
}

// TopNumbers returns the n most frequent entries of freq, ties broken by
// the smaller number.
func TopNumbers(freq map[int]int, n int) []analytics.NumberCount {
	out := make([]analytics.NumberCount, 0, len(freq))
	for num, c := range freq {
		out = append(out, analytics.NumberCount{Number: num, Frequency: c})
	}
	slices.SortFunc(out, func(a, b analytics.NumberCount) int {
		if a.Frequency != b.Frequency {
			return cmp.Compare(b.Frequency, a.Frequency)
		}
		return cmp.Compare(a.Number, b.Number)
	})
	return out[:min(n, len(out))]
}
