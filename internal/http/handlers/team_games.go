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

func ListTeamGamesHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.ListTeamGames(r.Context())
		if err != nil {
			writeStoreError(w, err, "list team games")
			return
		}
		writeJSON(w, http.StatusOK, games)
	}
}

// parseTeamGame validates a create-team-game body keyed g1_player, g1_team, g1_score, ...
func parseTeamGame(body map[string]any) (records.TeamGame, string) {
	var players, teams [4]string
	var scores [4]int
	for i := range players {
		seat := i + 1
		if !hasAll(body, fmt.Sprintf("g%d_player", seat), fmt.Sprintf("g%d_team", seat), fmt.Sprintf("g%d_score", seat)) {
			return records.TeamGame{}, "missing fields"
		}
	}
	for i := range players {
		seat := i + 1
		players[i] = textField(body[fmt.Sprintf("g%d_player", seat)])
		teams[i] = textField(body[fmt.Sprintf("g%d_team", seat)])
		if players[i] == "" || teams[i] == "" {
			return records.TeamGame{}, "all player and team names required"
		}
	}
	for i := range scores {
		n, ok := intField(body[fmt.Sprintf("g%d_score", i+1)])
		if !ok {
			return records.TeamGame{}, "scores must be integers"
		}
		scores[i] = n
	}
	return records.TeamGame{
		P1PlayerName: players[0], P1TeamName: teams[0], P1Score: scores[0],
		P2PlayerName: players[1], P2TeamName: teams[1], P2Score: scores[1],
		P3PlayerName: players[2], P3TeamName: teams[2], P3Score: scores[2],
		P4PlayerName: players[3], P4TeamName: teams[3], P4Score: scores[3],
	}, ""
}

func CreateTeamGameHandler(store records.Store, proc *processor.Processor, counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}
		game, problem := parseTeamGame(body)
		if problem != "" {
			writeError(w, http.StatusBadRequest, problem)
			return
		}
		id, err := store.CreateTeamGame(r.Context(), game)
		if err != nil {
			writeStoreError(w, err, "create team game")
			return
		}
		game.ID = id
		counters.Increment(metrics.KeyTeamGames)
		proc.TeamGameRecorded(r.Context(), game, IsDryRunFromContext(r))

		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func DeleteTeamGameHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if err := store.DeleteTeamGame(r.Context(), id); err != nil {
			writeStoreError(w, err, "delete team game")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// TeamGamesViewHandler renders the team games table, newest first.
func TeamGamesViewHandler(store records.Store, builder *view.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.ListTeamGames(r.Context())
		if err != nil {
			writeStoreError(w, err, "list team games")
			return
		}
		rows, err := builder.TeamGameTable(games)
		if err != nil {
			log.Error("Failed to render team games", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to render team games")
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
