package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/pubsub"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/view"
)

// ErrEmptyEvent is returned for an event carrying neither a game nor a team game.
var ErrEmptyEvent = errors.New("event has no game")

// New creates a new Processor. ps may be nil, in which case events are
// handled in-process instead of being published.
func New(store Store, notifier Notifier, metrics metrics.Metrics, ps pubsub.PubSubClient, builder *view.Builder) *Processor {
	return &Processor{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   ps,
		builder:  builder,
	}
}

// GameRecorded announces a newly stored game.
func (p *Processor) GameRecorded(ctx context.Context, game records.Game, dryRun bool) {
	p.metrics.IncGamesRecorded()
	p.dispatch(ctx, GameRecordedEvent{ID: uuid.NewString(), Game: &game, DryRun: dryRun})
}

// TeamGameRecorded announces a newly stored team game.
func (p *Processor) TeamGameRecorded(ctx context.Context, game records.TeamGame, dryRun bool) {
	p.metrics.IncTeamGamesRecorded()
	p.dispatch(ctx, GameRecordedEvent{ID: uuid.NewString(), TeamGame: &game, DryRun: dryRun})
}

// dispatch never fails the caller; the game is already stored.
func (p *Processor) dispatch(ctx context.Context, ev GameRecordedEvent) {
	if p.pubsub == nil {
		if err := p.HandleGameRecorded(ctx, ev); err != nil {
			log.Error("Failed to handle game recorded event", "error", err, "eventID", ev.ID)
		}
		return
	}
	topic := pubsub.EventGameRecorded
	if ev.TeamGame != nil {
		topic = pubsub.EventTeamGameRecorded
	}
	if ev.DryRun {
		log.Info("[Dry Run] Would publish event", "topic", topic, "eventID", ev.ID)
		return
	}
	if err := p.pubsub.SendMessage(ctx, topic, ev); err != nil {
		log.Error("Failed to publish game recorded event", "error", err, "eventID", ev.ID, "topic", topic)
	}
}

// HandleGameRecorded renders the game in an event and sends it as a result notification.
func (p *Processor) HandleGameRecorded(ctx context.Context, ev GameRecordedEvent) error {
	var (
		row view.GameRow
		err error
	)
	switch {
	case ev.Game != nil:
		row, err = p.builder.GameRow(*ev.Game)
	case ev.TeamGame != nil:
		row, err = p.builder.TeamGameRow(*ev.TeamGame)
	default:
		return fmt.Errorf("event %s: %w", ev.ID, ErrEmptyEvent)
	}
	if err != nil {
		return fmt.Errorf("event %s: %w", ev.ID, err)
	}
	log.Info("Sending game result", "eventID", ev.ID, "gameID", row.ID)
	return p.notifier.SendGameResult(ctx, row, ev.DryRun)
}

// Ranking recomputes the personal ranking from all stored games.
func (p *Processor) Ranking(ctx context.Context) ([]view.RankingRow, error) {
	games, err := p.store.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := view.PersonalRanking(games)
	p.metrics.ObserveRankingDuration(time.Since(start).Seconds())
	return rows, err
}

// PostRanking sends the current ranking to the channel.
func (p *Processor) PostRanking(ctx context.Context, dryRun bool) error {
	rows, err := p.Ranking(ctx)
	if err != nil {
		return err
	}
	return p.notifier.SendRanking(ctx, rows, dryRun)
}
