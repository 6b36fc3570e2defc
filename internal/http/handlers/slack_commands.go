package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/notifier"
	"github.com/mauv0809/mahjong-rating/internal/processor"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// respondFormatted writes a notifier response, which must be a slack.Message.
func respondFormatted(w http.ResponseWriter, msg any, err error) {
	if err != nil {
		http.Error(w, "Failed to format ranking", http.StatusInternalServerError)
		log.Error("Failed to format ranking", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

// RankingCommandHandler answers /ranking. "/ranking team" shows the team ranking.
func RankingCommandHandler(proc *processor.Processor, store records.Store, m metrics.Metrics, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Invalid slash command", http.StatusBadRequest)
			log.Error("Failed to parse slash command", "error", err)
			return
		}
		log.Info("Received ranking command", "user", cmd.UserName, "text", cmd.Text)

		if strings.EqualFold(strings.TrimSpace(cmd.Text), "team") {
			rows, err := teamRanking(r, store, m)
			if err != nil {
				http.Error(w, "Failed to compute team ranking", http.StatusInternalServerError)
				log.Error("Failed to compute team ranking", "error", err)
				return
			}
			msg, err := notifier.FormatTeamRankingResponse(rows)
			respondFormatted(w, msg, err)
			return
		}

		rows, err := proc.Ranking(r.Context())
		if err != nil {
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			log.Error("Failed to compute ranking", "error", err)
			return
		}
		msg, err := notifier.FormatRankingResponse(rows)
		respondFormatted(w, msg, err)
	}
}

// PostRankingHandler pushes the current ranking to the channel, e.g. from a scheduler.
func PostRankingHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := proc.PostRanking(r.Context(), IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to post ranking", "error", err)
			http.Error(w, "Failed to post ranking", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
