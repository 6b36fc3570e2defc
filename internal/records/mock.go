package records

import (
	"context"
	"sync"
)

var _ Store = (*MockStore)(nil)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use. Unset funcs return empty results and no error.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListGamesFunc        func(ctx context.Context) ([]Game, error)
	CreateGameFunc       func(ctx context.Context, game Game) (int64, error)
	CreateGamesFunc      func(ctx context.Context, games []Game) (int, error)
	DeleteGameFunc       func(ctx context.Context, id int64) error
	ListTeamsFunc        func(ctx context.Context) ([]Team, error)
	CreateTeamFunc       func(ctx context.Context, name string) (int64, error)
	DeleteTeamFunc       func(ctx context.Context, id int64) error
	ListTeamMembersFunc  func(ctx context.Context) ([]TeamMember, error)
	AddTeamMemberFunc    func(ctx context.Context, teamName, playerName string) (int64, error)
	DeleteTeamMemberFunc func(ctx context.Context, id int64) error
	ListTeamGamesFunc    func(ctx context.Context) ([]TeamGame, error)
	CreateTeamGameFunc   func(ctx context.Context, game TeamGame) (int64, error)
	DeleteTeamGameFunc   func(ctx context.Context, id int64) error

	// Call records
	CreateGameCalls     []Game
	CreateGamesCalls    [][]Game
	DeleteGameCalls     []int64
	CreateTeamCalls     []string
	CreateTeamGameCalls []TeamGame
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ListGames(ctx context.Context) ([]Game, error) {
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc(ctx)
	}
	return []Game{}, nil
}

func (m *MockStore) CreateGame(ctx context.Context, game Game) (int64, error) {
	m.mu.Lock()
	m.CreateGameCalls = append(m.CreateGameCalls, game)
	n := len(m.CreateGameCalls)
	m.mu.Unlock()
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(ctx, game)
	}
	return int64(n), nil
}

func (m *MockStore) CreateGames(ctx context.Context, games []Game) (int, error) {
	m.mu.Lock()
	m.CreateGamesCalls = append(m.CreateGamesCalls, games)
	m.mu.Unlock()
	if m.CreateGamesFunc != nil {
		return m.CreateGamesFunc(ctx, games)
	}
	return len(games), nil
}

func (m *MockStore) DeleteGame(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteGameCalls = append(m.DeleteGameCalls, id)
	m.mu.Unlock()
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) ListTeams(ctx context.Context) ([]Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return []Team{}, nil
}

func (m *MockStore) CreateTeam(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	m.CreateTeamCalls = append(m.CreateTeamCalls, name)
	n := len(m.CreateTeamCalls)
	m.mu.Unlock()
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, name)
	}
	return int64(n), nil
}

func (m *MockStore) DeleteTeam(ctx context.Context, id int64) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) ListTeamMembers(ctx context.Context) ([]TeamMember, error) {
	if m.ListTeamMembersFunc != nil {
		return m.ListTeamMembersFunc(ctx)
	}
	return []TeamMember{}, nil
}

func (m *MockStore) AddTeamMember(ctx context.Context, teamName, playerName string) (int64, error) {
	if m.AddTeamMemberFunc != nil {
		return m.AddTeamMemberFunc(ctx, teamName, playerName)
	}
	return 1, nil
}

func (m *MockStore) DeleteTeamMember(ctx context.Context, id int64) error {
	if m.DeleteTeamMemberFunc != nil {
		return m.DeleteTeamMemberFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) ListTeamGames(ctx context.Context) ([]TeamGame, error) {
	if m.ListTeamGamesFunc != nil {
		return m.ListTeamGamesFunc(ctx)
	}
	return []TeamGame{}, nil
}

func (m *MockStore) CreateTeamGame(ctx context.Context, game TeamGame) (int64, error) {
	m.mu.Lock()
	m.CreateTeamGameCalls = append(m.CreateTeamGameCalls, game)
	n := len(m.CreateTeamGameCalls)
	m.mu.Unlock()
	if m.CreateTeamGameFunc != nil {
		return m.CreateTeamGameFunc(ctx, game)
	}
	return int64(n), nil
}

func (m *MockStore) DeleteTeamGame(ctx context.Context, id int64) error {
	if m.DeleteTeamGameFunc != nil {
		return m.DeleteTeamGameFunc(ctx, id)
	}
	return nil
}
