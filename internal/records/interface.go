package records

import "context"

// Store defines the persistence operations for games, teams and team games.
type Store interface {
	// ListGames returns all individual games, newest first.
	ListGames(ctx context.Context) ([]Game, error)
	CreateGame(ctx context.Context, game Game) (int64, error)
	// CreateGames inserts the games in one transaction and returns how many were stored.
	CreateGames(ctx context.Context, games []Game) (int, error)
	DeleteGame(ctx context.Context, id int64) error

	ListTeams(ctx context.Context) ([]Team, error)
	CreateTeam(ctx context.Context, name string) (int64, error)
	// DeleteTeam removes the team and all of its members.
	DeleteTeam(ctx context.Context, id int64) error

	ListTeamMembers(ctx context.Context) ([]TeamMember, error)
	AddTeamMember(ctx context.Context, teamName, playerName string) (int64, error)
	DeleteTeamMember(ctx context.Context, id int64) error

	// ListTeamGames returns all team games, newest first.
	ListTeamGames(ctx context.Context) ([]TeamGame, error)
	CreateTeamGame(ctx context.Context, game TeamGame) (int64, error)
	DeleteTeamGame(ctx context.Context, id int64) error
}
