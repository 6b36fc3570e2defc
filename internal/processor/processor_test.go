package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/notifier"
	"github.com/mauv0809/mahjong-rating/internal/pubsub"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGame() records.Game {
	return records.Game{
		ID:          3,
		CreatedAt:   "2025-11-19T05:30",
		Player1Name: "Alice", Player1Score: 45000,
		Player2Name: "Bob", Player2Score: 25000,
		Player3Name: "Carol", Player3Score: 20000,
		Player4Name: "Dan", Player4Score: 10000,
	}
}

func TestGameRecorded(t *testing.T) {
	t.Run("without pubsub notifies directly", func(t *testing.T) {
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		p := New(records.NewMock(), notif, metr, nil, view.NewBuilder(view.KST))

		p.GameRecorded(context.Background(), sampleGame(), false)

		assert.Equal(t, 1, metr.GamesRecorded())
		require.Len(t, notif.SendGameResultCalls, 1)
		row := notif.SendGameResultCalls[0].Game
		assert.Equal(t, int64(3), row.ID)
		assert.Equal(t, "2025-11-19 14:30", row.Time)
		assert.True(t, row.Seats[0].Winner)
		assert.Equal(t, 65.0, row.Seats[0].Points)
	})

	t.Run("with pubsub publishes event", func(t *testing.T) {
		notif := notifier.NewMock()
		ps := pubsub.NewMock()
		p := New(records.NewMock(), notif, metrics.NewMock(), ps, view.NewBuilder(view.KST))

		p.GameRecorded(context.Background(), sampleGame(), false)

		require.Len(t, ps.SendMessageCalls, 1)
		assert.Equal(t, pubsub.EventGameRecorded, ps.SendMessageCalls[0].Topic)
		ev, ok := ps.SendMessageCalls[0].Data.(GameRecordedEvent)
		require.True(t, ok)
		assert.NotEmpty(t, ev.ID)
		require.NotNil(t, ev.Game)
		assert.Equal(t, "Alice", ev.Game.Player1Name)
		assert.Empty(t, notif.SendGameResultCalls, "notification happens on the push side")
	})

	t.Run("dry run does not publish", func(t *testing.T) {
		ps := pubsub.NewMock()
		p := New(records.NewMock(), notifier.NewMock(), metrics.NewMock(), ps, view.NewBuilder(view.KST))

		p.GameRecorded(context.Background(), sampleGame(), true)

		assert.Empty(t, ps.SendMessageCalls)
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		ps := pubsub.NewMock()
		ps.SendMessageFunc = func(topic pubsub.EventType, data any) error {
			return errors.New("unavailable")
		}
		p := New(records.NewMock(), notifier.NewMock(), metrics.NewMock(), ps, view.NewBuilder(view.KST))

		assert.NotPanics(t, func() {
			p.GameRecorded(context.Background(), sampleGame(), false)
		})
		assert.Len(t, ps.SendMessageCalls, 1)
	})
}

func TestTeamGameRecorded(t *testing.T) {
	notif := notifier.NewMock()
	metr := metrics.NewMock()
	p := New(records.NewMock(), notif, metr, nil, view.NewBuilder(view.KST))

	p.TeamGameRecorded(context.Background(), records.TeamGame{
		ID:           1,
		P1PlayerName: "Alice", P1TeamName: "Red", P1Score: 40000,
		P2PlayerName: "Bob", P2TeamName: "Blue", P2Score: 30000,
		P3PlayerName: "Carol", P3TeamName: "Red", P3Score: 20000,
		P4PlayerName: "Dan", P4TeamName: "Blue", P4Score: 10000,
	}, true)

	assert.Equal(t, 1, metr.TeamGamesRecorded())
	require.Len(t, notif.SendGameResultCalls, 1)
	call := notif.SendGameResultCalls[0]
	assert.True(t, call.DryRun)
	assert.Equal(t, "Red", call.Game.Seats[0].Team)
}

func TestTeamGameRecorded_PublishesOnTeamTopic(t *testing.T) {
	ps := pubsub.NewMock()
	notif := notifier.NewMock()
	p := New(records.NewMock(), notif, metrics.NewMock(), ps, view.NewBuilder(view.KST))

	p.TeamGameRecorded(context.Background(), records.TeamGame{
		ID:           2,
		P1PlayerName: "Alice", P1TeamName: "Red", P1Score: 40000,
		P2PlayerName: "Bob", P2TeamName: "Blue", P2Score: 30000,
		P3PlayerName: "Carol", P3TeamName: "Red", P3Score: 20000,
		P4PlayerName: "Dan", P4TeamName: "Blue", P4Score: 10000,
	}, false)

	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, pubsub.EventTeamGameRecorded, ps.SendMessageCalls[0].Topic)
	ev, ok := ps.SendMessageCalls[0].Data.(GameRecordedEvent)
	require.True(t, ok)
	require.NotNil(t, ev.TeamGame)
	assert.Nil(t, ev.Game)
	assert.Empty(t, notif.SendGameResultCalls)
}

func TestHandleGameRecorded_RoundTrip(t *testing.T) {
	notif := notifier.NewMock()
	p := New(records.NewMock(), notif, metrics.NewMock(), nil, view.NewBuilder(view.KST))

	g := sampleGame()
	data, err := pubsub.Encode(GameRecordedEvent{ID: "ev-1", Game: &g})
	require.NoError(t, err)

	var ev GameRecordedEvent
	require.NoError(t, pubsub.Decode(data, &ev))
	require.NoError(t, p.HandleGameRecorded(context.Background(), ev))

	require.Len(t, notif.SendGameResultCalls, 1)
	assert.Equal(t, "Dan", notif.SendGameResultCalls[0].Game.Seats[3].Name)
}

func TestHandleGameRecorded_Empty(t *testing.T) {
	p := New(records.NewMock(), notifier.NewMock(), metrics.NewMock(), nil, view.NewBuilder(view.KST))
	err := p.HandleGameRecorded(context.Background(), GameRecordedEvent{ID: "x"})
	assert.ErrorIs(t, err, ErrEmptyEvent)
}

func TestPostRanking(t *testing.T) {
	store := records.NewMock()
	store.ListGamesFunc = func(ctx context.Context) ([]records.Game, error) {
		return []records.Game{sampleGame()}, nil
	}
	notif := notifier.NewMock()
	metr := metrics.NewMock()
	p := New(store, notif, metr, nil, view.NewBuilder(view.KST))

	require.NoError(t, p.PostRanking(context.Background(), false))

	require.Len(t, notif.SendRankingCalls, 1)
	rows := notif.SendRankingCalls[0]
	require.Len(t, rows, 4)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, 1, metr.RankingObservations())
}

func TestPostRanking_StoreError(t *testing.T) {
	store := records.NewMock()
	store.ListGamesFunc = func(ctx context.Context) ([]records.Game, error) {
		return nil, errors.New("db down")
	}
	notif := notifier.NewMock()
	p := New(store, notif, metrics.NewMock(), nil, view.NewBuilder(view.KST))

	assert.Error(t, p.PostRanking(context.Background(), false))
	assert.Empty(t, notif.SendRankingCalls)
}
