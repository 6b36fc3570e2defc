package processor

import (
	"context"

	"github.com/mauv0809/mahjong-rating/internal/notifier"
	"github.com/mauv0809/mahjong-rating/internal/records"
)

// Store defines the database operations required by the processor.
type Store interface {
	ListGames(ctx context.Context) ([]records.Game, error)
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
