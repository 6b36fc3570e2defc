package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// TimeLayout is the minute-precision timestamp format stored in created_at and joined_at.
const TimeLayout = "2006-01-02T15:04"

// New creates a new Store backed by db.
func New(db *sql.DB) Store {
	return &store{
		db: db,
		now: func() string {
			return time.Now().UTC().Format(TimeLayout)
		},
	}
}

const gameColumns = `id, created_at,
	player1_name, player2_name, player3_name, player4_name,
	player1_score, player2_score, player3_score, player4_score`

const teamGameColumns = `id, created_at,
	p1_player_name, p1_team_name, p1_score,
	p2_player_name, p2_team_name, p2_score,
	p3_player_name, p3_team_name, p3_score,
	p4_player_name, p4_team_name, p4_score`

func (s *store) ListGames(ctx context.Context) ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT "+gameColumns+" FROM games ORDER BY id DESC")
	if err != nil {
		log.Error("Failed to query games", "error", err)
		return nil, err
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		var g Game
		err := rows.Scan(&g.ID, &g.CreatedAt,
			&g.Player1Name, &g.Player2Name, &g.Player3Name, &g.Player4Name,
			&g.Player1Score, &g.Player2Score, &g.Player3Score, &g.Player4Score)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (s *store) CreateGame(ctx context.Context, game Game) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if game.CreatedAt == "" {
		game.CreatedAt = s.now()
	}
	id, err := insertGame(ctx, s.db, game)
	if err != nil {
		return 0, err
	}
	log.Info("Created game", "id", id)
	return id, nil
}

// CreateGames inserts many games at once, used by the CSV import.
func (s *store) CreateGames(ctx context.Context, games []Game) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	for i, g := range games {
		if g.CreatedAt == "" {
			g.CreatedAt = s.now()
		}
		if _, err := insertGame(ctx, tx, g); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert game %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Info("Created games in bulk", "count", len(games))
	return len(games), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertGame(ctx context.Context, db execer, g Game) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO games (
			created_at,
			player1_name, player2_name, player3_name, player4_name,
			player1_score, player2_score, player3_score, player4_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.CreatedAt,
		g.Player1Name, g.Player2Name, g.Player3Name, g.Player4Name,
		g.Player1Score, g.Player2Score, g.Player3Score, g.Player4Score,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *store) DeleteGame(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "games", id)
}

func (s *store) ListTeams(ctx context.Context) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, COUNT(m.id)
		FROM teams t
		LEFT JOIN team_members m ON m.team_name = t.name
		GROUP BY t.id, t.name
		ORDER BY t.id ASC`)
	if err != nil {
		log.Error("Failed to query teams", "error", err)
		return nil, err
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.MemberCount); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *store) CreateTeam(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM teams WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if team exists", "error", err, "team", name)
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("team %q: %w", name, ErrDuplicate)
	}

	res, err := s.db.ExecContext(ctx, "INSERT INTO teams (name) VALUES (?)", name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Info("Created team", "id", id, "team", name)
	return id, nil
}

func (s *store) DeleteTeam(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var name string
	err = tx.QueryRowContext(ctx, "SELECT name FROM teams WHERE id = ?", id).Scan(&name)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return fmt.Errorf("team %d: %w", id, ErrNotFound)
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM team_members WHERE team_name = ?", name); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM teams WHERE id = ?", id); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Deleted team and its members", "id", id, "team", name)
	return nil
}

func (s *store) ListTeamMembers(ctx context.Context) ([]TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, team_name, player_name, joined_at
		FROM team_members
		ORDER BY team_name ASC, id ASC`)
	if err != nil {
		log.Error("Failed to query team members", "error", err)
		return nil, err
	}
	defer rows.Close()

	members := []TeamMember{}
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.TeamName, &m.PlayerName, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *store) AddTeamMember(ctx context.Context, teamName, playerName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM teams WHERE name = ?)", teamName).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("team %q: %w", teamName, ErrNotFound)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO team_members (team_name, player_name, joined_at) VALUES (?, ?, ?)",
		teamName, playerName, s.now())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Info("Added team member", "team", teamName, "player", playerName)
	return id, nil
}

func (s *store) DeleteTeamMember(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "team_members", id)
}

func (s *store) ListTeamGames(ctx context.Context) ([]TeamGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT "+teamGameColumns+" FROM team_games ORDER BY id DESC")
	if err != nil {
		log.Error("Failed to query team games", "error", err)
		return nil, err
	}
	defer rows.Close()

	games := []TeamGame{}
	for rows.Next() {
		var g TeamGame
		err := rows.Scan(&g.ID, &g.CreatedAt,
			&g.P1PlayerName, &g.P1TeamName, &g.P1Score,
			&g.P2PlayerName, &g.P2TeamName, &g.P2Score,
			&g.P3PlayerName, &g.P3TeamName, &g.P3Score,
			&g.P4PlayerName, &g.P4TeamName, &g.P4Score)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (s *store) CreateTeamGame(ctx context.Context, g TeamGame) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.CreatedAt == "" {
		g.CreatedAt = s.now()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO team_games (
			created_at,
			p1_player_name, p1_team_name, p1_score,
			p2_player_name, p2_team_name, p2_score,
			p3_player_name, p3_team_name, p3_score,
			p4_player_name, p4_team_name, p4_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.CreatedAt,
		g.P1PlayerName, g.P1TeamName, g.P1Score,
		g.P2PlayerName, g.P2TeamName, g.P2Score,
		g.P3PlayerName, g.P3TeamName, g.P3Score,
		g.P4PlayerName, g.P4TeamName, g.P4Score,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Info("Created team game", "id", id)
	return id, nil
}

func (s *store) DeleteTeamGame(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "team_games", id)
}

// deleteByID removes one row from table. table is never user input.
func (s *store) deleteByID(ctx context.Context, table string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		log.Error("Failed to delete row", "error", err, "table", table, "id", id)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}
	log.Info("Deleted row", "table", table, "id", id)
	return nil
}
