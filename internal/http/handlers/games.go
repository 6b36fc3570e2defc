package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/processor"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/view"
)

func ListGamesHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.ListGames(r.Context())
		if err != nil {
			writeStoreError(w, err, "list games")
			return
		}
		writeJSON(w, http.StatusOK, games)
	}
}

// parseGame validates a create-game body.
func parseGame(body map[string]any) (records.Game, string) {
	var names [4]string
	var scores [4]int
	for i := range names {
		if !hasAll(body, fmt.Sprintf("player%d_name", i+1), fmt.Sprintf("player%d_score", i+1)) {
			return records.Game{}, "missing fields"
		}
	}
	for i := range names {
		names[i] = textField(body[fmt.Sprintf("player%d_name", i+1)])
		if names[i] == "" {
			return records.Game{}, "all player names required"
		}
	}
	for i := range scores {
		n, ok := intField(body[fmt.Sprintf("player%d_score", i+1)])
		if !ok {
			return records.Game{}, "scores must be integers"
		}
		scores[i] = n
	}
	return records.Game{
		Player1Name: names[0], Player1Score: scores[0],
		Player2Name: names[1], Player2Score: scores[1],
		Player3Name: names[2], Player3Score: scores[2],
		Player4Name: names[3], Player4Score: scores[3],
	}, ""
}

func CreateGameHandler(store records.Store, proc *processor.Processor, counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(w, r)
		if err != nil {
			log.Debug("Invalid game body", "error", err)
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}
		game, problem := parseGame(body)
		if problem != "" {
			writeError(w, http.StatusBadRequest, problem)
			return
		}

		id, err := store.CreateGame(r.Context(), game)
		if err != nil {
			writeStoreError(w, err, "create game")
			return
		}
		game.ID = id
		counters.Increment(metrics.KeyGamesCreated)
		proc.GameRecorded(r.Context(), game, IsDryRunFromContext(r))

		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func DeleteGameHandler(store records.Store, m metrics.Metrics, counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if err := store.DeleteGame(r.Context(), id); err != nil {
			writeStoreError(w, err, "delete game")
			return
		}
		m.IncGamesDeleted()
		counters.Increment(metrics.KeyGamesDeleted)
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// GamesViewHandler renders the games table, newest first.
func GamesViewHandler(store records.Store, builder *view.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.ListGames(r.Context())
		if err != nil {
			writeStoreError(w, err, "list games")
			return
		}
		rows, err := builder.GameTable(games)
		if err != nil {
			log.Error("Failed to render games", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to render games")
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
