package view

import (
	"time"

	"github.com/mauv0809/mahjong-rating/internal/scoring"
)

// KST is the display offset of the club, UTC+9.
const KST = 9 * time.Hour

// Seat is one cell of the games table.
type Seat struct {
	Name   string  `json:"name"`
	Team   string  `json:"team,omitempty"`
	Score  int     `json:"score"`
	Points float64 `json:"points"`
	Rank   int     `json:"rank"`
	Winner bool    `json:"winner"`
	// Text is "score (pt)", e.g. "45000 (65)".
	Text string `json:"text"`
}

// GameRow is one rendered game.
type GameRow struct {
	ID        int64               `json:"id"`
	CreatedAt string              `json:"created_at"`
	Time      string              `json:"time"`
	Seats     [scoring.Seats]Seat `json:"seats"`
}

// RankingRow is a personal ranking line with its position and distribution bar.
type RankingRow struct {
	Position int `json:"position"`
	scoring.RankingRow
	Distribution [scoring.Seats]scoring.Segment `json:"distribution"`
}

// TeamRankingRow is a team ranking line, keyed the way the team API exposes it.
type TeamRankingRow struct {
	Position     int                            `json:"position"`
	TeamName     string                         `json:"team_name"`
	Games        int                            `json:"games"`
	TotalPt      float64                        `json:"total_pt"`
	AvgPt        float64                        `json:"avg_pt"`
	YondeRate    float64                        `json:"yonde_rate"`
	RankCounts   [scoring.Seats]int             `json:"rank_counts"`
	Distribution [scoring.Seats]scoring.Segment `json:"distribution"`
}

// TeamOverview lists a team with the names of its members.
type TeamOverview struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}
