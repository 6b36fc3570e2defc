package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/mahjong-rating/internal/view"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendGameResultFunc            func(game view.GameRow, dryRun bool) error
	FormatRankingResponseFunc     func(rows []view.RankingRow) (any, error)
	FormatTeamRankingResponseFunc func(rows []view.TeamRankingRow) (any, error)

	// Call records
	SendGameResultCalls []SendGameResultCall
	SendRankingCalls    [][]view.RankingRow
	LastRankingResponse any
}

// SendGameResultCall holds the arguments for a call to SendGameResult.
type SendGameResultCall struct {
	Game   view.GameRow
	DryRun bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameResultCalls = nil
	m.SendRankingCalls = nil
	m.LastRankingResponse = nil
}

func (m *Mock) SendGameResult(ctx context.Context, game view.GameRow, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameResultCalls = append(m.SendGameResultCalls, SendGameResultCall{Game: game, DryRun: dryRun})
	if m.SendGameResultFunc != nil {
		return m.SendGameResultFunc(game, dryRun)
	}
	return nil
}

func (m *Mock) SendRanking(ctx context.Context, rows []view.RankingRow, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRankingCalls = append(m.SendRankingCalls, rows)
	return nil
}

func (m *Mock) FormatRankingResponse(rows []view.RankingRow) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatRankingResponseFunc != nil {
		resp, err := m.FormatRankingResponseFunc(rows)
		m.LastRankingResponse = resp
		return resp, err
	}
	return "formatted_ranking", nil
}

func (m *Mock) FormatTeamRankingResponse(rows []view.TeamRankingRow) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatTeamRankingResponseFunc != nil {
		return m.FormatTeamRankingResponseFunc(rows)
	}
	return "formatted_team_ranking", nil
}

// GameResultCount returns how many results were sent.
func (m *Mock) GameResultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendGameResultCalls)
}
