package processor

import (
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/pubsub"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/view"
)

// Processor reacts to recorded games: it publishes them as events and turns
// received events into notifications.
type Processor struct {
	store    Store
	notifier Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
	builder  *view.Builder
}

// GameRecordedEvent is the payload published on the game-recorded topic.
// Exactly one of Game and TeamGame is set.
type GameRecordedEvent struct {
	ID       string            `msgpack:"id"`
	Game     *records.Game     `msgpack:"game,omitempty"`
	TeamGame *records.TeamGame `msgpack:"team_game,omitempty"`
	DryRun   bool              `msgpack:"dry_run"`
}
