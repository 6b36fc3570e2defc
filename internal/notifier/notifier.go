package notifier

import (
	"context"

	"github.com/mauv0809/mahjong-rating/internal/view"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded games
	SendGameResult(ctx context.Context, game view.GameRow, dryRun bool) error
	// For posting the standings to the channel
	SendRanking(ctx context.Context, rows []view.RankingRow, dryRun bool) error

	// For formatting responses for slash commands
	FormatRankingResponse(rows []view.RankingRow) (any, error)
	FormatTeamRankingResponse(rows []view.TeamRankingRow) (any, error)
}
