package scoring

import "errors"

// Seats is the number of entrants in every game.
const Seats = 4

const (
	// ReturnScore is the score subtracted before converting to points.
	ReturnScore = 30000
	// StartingTotal is the nominal sum of the four final scores.
	StartingTotal = 100000
	// MaxScore bounds the magnitude of a single score.
	MaxScore = 1<<31 - 1
)

// Uma is the placement bonus by rank, oka already folded into first place.
var Uma = [Seats]int{50, 10, -10, -30}

// ErrInvalidInput is returned when a game does not have exactly four entrants
// or a score lies outside [-MaxScore, MaxScore].
var ErrInvalidInput = errors.New("invalid input")

// Placement is the outcome of a single game, indexed by seat.
type Placement struct {
	// Ranks holds 1..4 for each seat.
	Ranks [Seats]int
	// RawPoints are the unrounded point values. They sum to zero when the
	// scores sum to StartingTotal.
	RawPoints [Seats]float64
	// Points are RawPoints rounded to one decimal, half away from zero.
	Points [Seats]float64

	tenths [Seats]int
}

// Entrant is a named score inside a game. Name may be blank.
type Entrant struct {
	Name  string
	Score int
}

// GameRecord is one finished game as it is fed to the aggregator.
type GameRecord struct {
	Entrants []Entrant
}

// Stats is the running aggregate for one player or team.
type Stats struct {
	Name       string
	Games      int
	RankCounts [Seats]int

	totalTenths int
}

// RankingRow is a ranking table line ready for rendering.
type RankingRow struct {
	Name       string     `json:"name"`
	Games      int        `json:"games"`
	TotalPt    float64    `json:"total_pt"`
	AvgPt      float64    `json:"avg_pt"`
	YondeRate  float64    `json:"yonde_rate"`
	RankCounts [Seats]int `json:"rankCounts"`
}

// Segment is one bar of a rank distribution.
type Segment struct {
	Rank       int     `json:"rank"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	// Width is the CSS width, e.g. "33.3%".
	Width string `json:"width"`
	// Label is the rounded percentage, empty when Count is zero.
	Label string `json:"label"`
}
