package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/scoring"
)

// Builder turns stored records into display models. Every call recomputes
// from the records it is given.
type Builder struct {
	offset time.Duration
}

// NewBuilder returns a Builder that renders times shifted by offset from UTC.
func NewBuilder(offset time.Duration) *Builder {
	return &Builder{offset: offset}
}

// GameRow renders a single individual game.
func (b *Builder) GameRow(g records.Game) (GameRow, error) {
	p, err := g.Record().Place()
	if err != nil {
		return GameRow{}, fmt.Errorf("game %d: %w", g.ID, err)
	}
	row := GameRow{
		ID:        g.ID,
		CreatedAt: g.CreatedAt,
		Time:      FormatLocalTime(g.CreatedAt, b.offset),
	}
	names, scores := g.Names(), g.Scores()
	for i := range row.Seats {
		row.Seats[i] = newSeat(names[i], "", scores[i], p, i)
	}
	return row, nil
}

// TeamGameRow renders a single team game.
func (b *Builder) TeamGameRow(g records.TeamGame) (GameRow, error) {
	p, err := g.TeamRecord().Place()
	if err != nil {
		return GameRow{}, fmt.Errorf("team game %d: %w", g.ID, err)
	}
	row := GameRow{
		ID:        g.ID,
		CreatedAt: g.CreatedAt,
		Time:      FormatLocalTime(g.CreatedAt, b.offset),
	}
	players, teams, scores := g.Players(), g.Teams(), g.Scores()
	for i := range row.Seats {
		row.Seats[i] = newSeat(players[i], teams[i], scores[i], p, i)
	}
	return row, nil
}

func newSeat(name, team string, score int, p scoring.Placement, i int) Seat {
	pt := p.Points[i]
	return Seat{
		Name:   strings.TrimSpace(name),
		Team:   strings.TrimSpace(team),
		Score:  score,
		Points: pt,
		Rank:   p.Ranks[i],
		Winner: p.Ranks[i] == 1,
		Text:   strconv.Itoa(score) + " (" + strconv.FormatFloat(pt, 'f', -1, 64) + ")",
	}
}

// GameTable renders games in the order given.
func (b *Builder) GameTable(games []records.Game) ([]GameRow, error) {
	rows := make([]GameRow, 0, len(games))
	for _, g := range games {
		row, err := b.GameRow(g)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// TeamGameTable renders team games in the order given.
func (b *Builder) TeamGameTable(games []records.TeamGame) ([]GameRow, error) {
	rows := make([]GameRow, 0, len(games))
	for _, g := range games {
		row, err := b.TeamGameRow(g)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// PersonalRanking aggregates individual games by player name.
func PersonalRanking(games []records.Game) ([]RankingRow, error) {
	recs := make([]scoring.GameRecord, len(games))
	for i, g := range games {
		recs[i] = g.Record()
	}
	ranking, err := scoring.BuildRanking(recs)
	if err != nil {
		return nil, err
	}

	rows := make([]RankingRow, len(ranking))
	for i, r := range ranking {
		rows[i] = RankingRow{
			Position:     i + 1,
			RankingRow:   r,
			Distribution: scoring.RankDistribution(r.RankCounts, r.Games),
		}
	}
	return rows, nil
}

// TeamRanking aggregates team games by team name. Every registered team is
// listed, including teams that have not played yet.
func TeamRanking(teams []records.Team, games []records.TeamGame) ([]TeamRankingRow, error) {
	agg := scoring.NewAggregator()
	for _, t := range teams {
		agg.Ensure(t.Name)
	}
	for _, g := range games {
		if _, err := agg.Add(g.TeamRecord()); err != nil {
			return nil, fmt.Errorf("team game %d: %w", g.ID, err)
		}
	}

	ranking := agg.Ranking()
	rows := make([]TeamRankingRow, len(ranking))
	for i, r := range ranking {
		rows[i] = TeamRankingRow{
			Position:     i + 1,
			TeamName:     r.Name,
			Games:        r.Games,
			TotalPt:      r.TotalPt,
			AvgPt:        r.AvgPt,
			YondeRate:    r.YondeRate,
			RankCounts:   r.RankCounts,
			Distribution: scoring.RankDistribution(r.RankCounts, r.Games),
		}
	}
	return rows, nil
}

// TeamOverviews groups members under their teams, keeping team order.
func TeamOverviews(teams []records.Team, members []records.TeamMember) []TeamOverview {
	byTeam := make(map[string][]string)
	for _, m := range members {
		byTeam[m.TeamName] = append(byTeam[m.TeamName], m.PlayerName)
	}
	out := make([]TeamOverview, len(teams))
	for i, t := range teams {
		list := byTeam[t.Name]
		if list == nil {
			list = []string{}
		}
		out[i] = TeamOverview{Name: t.Name, Members: list}
	}
	return out
}
