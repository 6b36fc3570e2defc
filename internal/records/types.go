package records

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/mahjong-rating/internal/scoring"
)

var (
	// ErrNotFound is returned when a record with the given id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique name is already taken.
	ErrDuplicate = errors.New("already exists")
)

// store handles all database operations for game records.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() string
}

// Game is an individual four-player game.
type Game struct {
	ID           int64  `json:"id"`
	CreatedAt    string `json:"created_at"`
	Player1Name  string `json:"player1_name"`
	Player2Name  string `json:"player2_name"`
	Player3Name  string `json:"player3_name"`
	Player4Name  string `json:"player4_name"`
	Player1Score int    `json:"player1_score"`
	Player2Score int    `json:"player2_score"`
	Player3Score int    `json:"player3_score"`
	Player4Score int    `json:"player4_score"`
}

// Team is a registered team together with its current member count.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}

// TeamMember maps a player to a team by name.
type TeamMember struct {
	ID         int64  `json:"id"`
	TeamName   string `json:"team_name"`
	PlayerName string `json:"player_name"`
	JoinedAt   string `json:"joined_at"`
}

// TeamGame is a four-player game where every seat also plays for a team.
type TeamGame struct {
	ID           int64  `json:"id"`
	CreatedAt    string `json:"created_at"`
	P1PlayerName string `json:"p1_player_name"`
	P1TeamName   string `json:"p1_team_name"`
	P1Score      int    `json:"p1_score"`
	P2PlayerName string `json:"p2_player_name"`
	P2TeamName   string `json:"p2_team_name"`
	P2Score      int    `json:"p2_score"`
	P3PlayerName string `json:"p3_player_name"`
	P3TeamName   string `json:"p3_team_name"`
	P3Score      int    `json:"p3_score"`
	P4PlayerName string `json:"p4_player_name"`
	P4TeamName   string `json:"p4_team_name"`
	P4Score      int    `json:"p4_score"`
}

// Names returns the player names in seat order.
func (g Game) Names() [scoring.Seats]string {
	return [scoring.Seats]string{g.Player1Name, g.Player2Name, g.Player3Name, g.Player4Name}
}

// Scores returns the final scores in seat order.
func (g Game) Scores() [scoring.Seats]int {
	return [scoring.Seats]int{g.Player1Score, g.Player2Score, g.Player3Score, g.Player4Score}
}

// Record converts the game to the calculator's input.
func (g Game) Record() scoring.GameRecord {
	return newRecord(g.Names(), g.Scores())
}

// Players returns the player names in seat order.
func (g TeamGame) Players() [scoring.Seats]string {
	return [scoring.Seats]string{g.P1PlayerName, g.P2PlayerName, g.P3PlayerName, g.P4PlayerName}
}

// Teams returns the team names in seat order.
func (g TeamGame) Teams() [scoring.Seats]string {
	return [scoring.Seats]string{g.P1TeamName, g.P2TeamName, g.P3TeamName, g.P4TeamName}
}

// Scores returns the final scores in seat order.
func (g TeamGame) Scores() [scoring.Seats]int {
	return [scoring.Seats]int{g.P1Score, g.P2Score, g.P3Score, g.P4Score}
}

// TeamRecord converts the game to calculator input keyed by team name.
func (g TeamGame) TeamRecord() scoring.GameRecord {
	return newRecord(g.Teams(), g.Scores())
}

func newRecord(names [scoring.Seats]string, scores [scoring.Seats]int) scoring.GameRecord {
	rec := scoring.GameRecord{Entrants: make([]scoring.Entrant, scoring.Seats)}
	for i := range names {
		rec.Entrants[i] = scoring.Entrant{Name: names[i], Score: scores[i]}
	}
	return rec
}
