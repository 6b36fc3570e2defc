package scoring

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Aggregator accumulates per-entity statistics over a sequence of games.
// It is not safe for concurrent use; build one per computation.
type Aggregator struct {
	stats map[string]*Stats
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{stats: make(map[string]*Stats)}
}

// Add places a game and credits every named entrant. Entrants whose name is
// blank after trimming are skipped.
func (a *Aggregator) Add(game GameRecord) (Placement, error) {
	p, err := game.Place()
	if err != nil {
		return p, err
	}
	for seat, e := range game.Entrants {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		st := a.entry(name)
		st.Games++
		st.totalTenths += p.tenths[seat]
		st.RankCounts[p.Ranks[seat]-1]++
	}
	return p, nil
}

// Ensure registers a name so that it shows up in the ranking even without games.
func (a *Aggregator) Ensure(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	a.entry(name)
}

func (a *Aggregator) entry(name string) *Stats {
	st, ok := a.stats[name]
	if !ok {
		st = &Stats{Name: name}
		a.stats[name] = st
	}
	return st
}

// Stats returns a copy of the accumulated statistics for name.
func (a *Aggregator) Stats(name string) (Stats, bool) {
	st, ok := a.stats[name]
	if !ok {
		return Stats{}, false
	}
	return *st, true
}

// Ranking returns all entities sorted by total points, highest first.
// Equal totals are ordered by name.
func (a *Aggregator) Ranking() []RankingRow {
	all := make([]*Stats, 0, len(a.stats))
	for _, st := range a.stats {
		all = append(all, st)
	}
	slices.SortFunc(all, func(x, y *Stats) int {
		if c := cmp.Compare(y.totalTenths, x.totalTenths); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})

	rows := make([]RankingRow, len(all))
	for i, st := range all {
		rows[i] = st.Row()
	}
	return rows
}

// BuildRanking aggregates games in order and returns the ranking table.
func BuildRanking(games []GameRecord) ([]RankingRow, error) {
	a := NewAggregator()
	for i, g := range games {
		if _, err := a.Add(g); err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
	}
	return a.Ranking(), nil
}

// TotalPoints is the sum of the rounded per-game points.
func (s Stats) TotalPoints() float64 {
	return tenthsToFloat(s.totalTenths)
}

// AveragePoints is TotalPoints per game, rounded to one decimal. Zero when no games.
func (s Stats) AveragePoints() float64 {
	if s.Games == 0 {
		return 0
	}
	return tenthsToFloat(divRound(s.totalTenths, s.Games))
}

// TopTwoRate is the percentage of first and second place finishes, rounded
// to one decimal. Zero when no games.
func (s Stats) TopTwoRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return tenthsToFloat(divRound((s.RankCounts[0]+s.RankCounts[1])*1000, s.Games))
}

// Row converts the statistics to a ranking row.
func (s Stats) Row() RankingRow {
	return RankingRow{
		Name:       s.Name,
		Games:      s.Games,
		TotalPt:    s.TotalPoints(),
		AvgPt:      s.AveragePoints(),
		YondeRate:  s.TopTwoRate(),
		RankCounts: s.RankCounts,
	}
}
