package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/notifier"
	"github.com/mauv0809/mahjong-rating/internal/view"
	"github.com/slack-go/slack"
)

// rankingLimit caps the number of ranking lines in a message.
const rankingLimit = 10

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	counters  metrics.MetricsStore
}

// NewNotifier creates a new Notifier. counters may be nil.
func NewNotifier(token, channelID string, metrics metrics.Metrics, counters metrics.MetricsStore) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		counters:  counters,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics, counters metrics.MetricsStore) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		counters:  counters,
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}
	if s.channelID == "" {
		log.Warn("No Slack channel configured, skipping message")
		return "", "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	if s.counters != nil {
		s.counters.Increment(metrics.KeySlackNotifsSent)
	}
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendGameResult(ctx context.Context, game view.GameRow, dryRun bool) error {
	_, _, err := s.sendMessage(ctx, formatGameResult(game), dryRun)
	return err
}

func (s *Notifier) SendRanking(ctx context.Context, rows []view.RankingRow, dryRun bool) error {
	_, _, err := s.sendMessage(ctx, formatRanking(rows), dryRun)
	return err
}

// FormatRankingResponse formats the personal ranking for a slash command response.
func (s *Notifier) FormatRankingResponse(rows []view.RankingRow) (any, error) {
	return formatRanking(rows), nil
}

// FormatTeamRankingResponse formats the team ranking for a slash command response.
func (s *Notifier) FormatTeamRankingResponse(rows []view.TeamRankingRow) (any, error) {
	return formatTeamRanking(rows), nil
}

func medal(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func signed(pt float64) string {
	s := strconv.FormatFloat(pt, 'f', 1, 64)
	if pt > 0 {
		return "+" + s
	}
	return s
}

// formatGameResult creates the Slack message for a recorded game, seats listed by rank.
func formatGameResult(game view.GameRow) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🀄 Game recorded 🀄", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	fields := make([]*slack.TextBlockObject, 0, len(game.Seats))
	for rank := 1; rank <= len(game.Seats); rank++ {
		for _, seat := range game.Seats {
			if seat.Rank != rank {
				continue
			}
			name := seat.Name
			if seat.Team != "" {
				name = fmt.Sprintf("%s (%s)", seat.Name, seat.Team)
			}
			text := fmt.Sprintf("*%d. %s* %s\n%d → %s pt", rank, medal(rank), name, seat.Score, signed(seat.Points))
			fields = append(fields, slack.NewTextBlockObject("mrkdwn", text, false, false))
		}
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	contextText := fmt.Sprintf("Game #%d · %s", game.ID, game.Time)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatRanking creates a Slack message to display the personal ranking.
func formatRanking(rows []view.RankingRow) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Ranking 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No games recorded yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var sb strings.Builder
	for i, row := range rows {
		if i == rankingLimit {
			break
		}
		fmt.Fprintf(&sb, "%d. %s *%s*  %s pt | %d games | top-two %.1f%% | avg %s\n",
			row.Position, medal(row.Position), row.Name, signed(row.TotalPt), row.Games, row.YondeRate, signed(row.AvgPt))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", sb.String(), false, false), nil, nil))

	if len(rows) > rankingLimit {
		more := fmt.Sprintf("and %d more", len(rows)-rankingLimit)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", more, true, false)))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatTeamRanking creates a Slack message to display the team ranking.
func formatTeamRanking(rows []view.TeamRankingRow) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Team Ranking 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No teams registered yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, row := range rows {
		text := fmt.Sprintf("%d. %s *%s*\n> %s pt | %d games | top-two %.1f%%",
			row.Position, medal(row.Position), row.TeamName, signed(row.TotalPt), row.Games, row.YondeRate)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}
	return slack.NewBlockMessage(blocks...)
}
