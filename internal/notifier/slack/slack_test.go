package slack

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/scoring"
	"github.com/mauv0809/mahjong-rating/internal/view"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleGame() view.GameRow {
	return view.GameRow{
		ID:   12,
		Time: "2025-11-19 14:30",
		Seats: [scoring.Seats]view.Seat{
			{Name: "Bob", Score: 10000, Points: -50, Rank: 4},
			{Name: "Alice", Score: 45000, Points: 65, Rank: 1, Winner: true},
			{Name: "Dan", Score: 20000, Points: -20, Rank: 3},
			{Name: "Carol", Score: 25000, Points: 5, Rank: 2},
		},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics, nil)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(context.Background(), message, true)
	require.NoError(t, err)
}

func TestSendMessage_NoChannel(t *testing.T) {
	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(nil, "", metrics, nil)

	err := notifier.SendGameResult(context.Background(), sampleGame(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	counters := metrics.NewStoreMock()
	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics, counters)

	err := notifier.SendGameResult(context.Background(), sampleGame(), false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
	all, err := counters.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 1, all["slack_notifications_sent"])
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	counters := metrics.NewStoreMock()
	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics, counters)

	err := notifier.SendRanking(context.Background(), nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
	all, err := counters.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFormatGameResult(t *testing.T) {
	msg := formatGameResult(sampleGame())

	require.Len(t, msg.Blocks.BlockSet, 3, "Expected 3 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Game recorded")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	require.Len(t, section.Fields, 4)
	// Fields are ordered by rank, not by seat.
	assert.Contains(t, section.Fields[0].Text, "Alice")
	assert.Contains(t, section.Fields[0].Text, "+65.0 pt")
	assert.Contains(t, section.Fields[1].Text, "Carol")
	assert.Contains(t, section.Fields[2].Text, "Dan")
	assert.Contains(t, section.Fields[3].Text, "Bob")
	assert.Contains(t, section.Fields[3].Text, "-50.0 pt")

	contextBlock, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	text := contextBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	assert.Equal(t, "Game #12 · 2025-11-19 14:30", text.Text)
}

func TestFormatGameResult_TeamNames(t *testing.T) {
	game := sampleGame()
	game.Seats[1].Team = "Red"
	msg := formatGameResult(game)

	section := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Contains(t, section.Fields[0].Text, "Alice (Red)")
}

func TestFormatRanking(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		msg := formatRanking(nil)
		require.Len(t, msg.Blocks.BlockSet, 2)
		section := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		assert.Equal(t, "No games recorded yet.", section.Text.Text)
	})

	t.Run("rows", func(t *testing.T) {
		rows := []view.RankingRow{
			{Position: 1, RankingRow: scoring.RankingRow{Name: "Alice", Games: 4, TotalPt: 120.5, AvgPt: 30.1, YondeRate: 75}},
			{Position: 2, RankingRow: scoring.RankingRow{Name: "Bob", Games: 4, TotalPt: -120.5, AvgPt: -30.1, YondeRate: 25}},
		}
		msg := formatRanking(rows)
		require.Len(t, msg.Blocks.BlockSet, 2)
		section := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		assert.Contains(t, section.Text.Text, "1. 🥇 *Alice*  +120.5 pt | 4 games | top-two 75.0% | avg +30.1")
		assert.Contains(t, section.Text.Text, "2. 🥈 *Bob*  -120.5 pt")
	})

	t.Run("truncated", func(t *testing.T) {
		rows := make([]view.RankingRow, rankingLimit+3)
		for i := range rows {
			rows[i] = view.RankingRow{Position: i + 1, RankingRow: scoring.RankingRow{Name: fmt.Sprintf("P%d", i)}}
		}
		msg := formatRanking(rows)
		require.Len(t, msg.Blocks.BlockSet, 3)
		contextBlock := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
		text := contextBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
		assert.Equal(t, "and 3 more", text.Text)
	})
}

func TestFormatTeamRanking(t *testing.T) {
	rows := []view.TeamRankingRow{
		{Position: 1, TeamName: "Red", Games: 2, TotalPt: 40, YondeRate: 50},
		{Position: 2, TeamName: "Green"},
	}
	resp, err := NewNotifierWithAPI(nil, "C1", metrics.NewMock(), nil).FormatTeamRankingResponse(rows)
	require.NoError(t, err)
	msg := resp.(slackapi.Message)
	require.Len(t, msg.Blocks.BlockSet, 3)
	first := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Contains(t, first.Text.Text, "*Red*")
	assert.Contains(t, first.Text.Text, "+40.0 pt | 2 games | top-two 50.0%")
	second := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	assert.Contains(t, second.Text.Text, "0.0 pt | 0 games")
}
