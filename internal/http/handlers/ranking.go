package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/processor"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/view"
)

// RankingHandler recomputes the personal ranking from all games.
func RankingHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := proc.Ranking(r.Context())
		if err != nil {
			log.Error("Failed to compute ranking", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to compute ranking")
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// teamRanking loads teams and team games and aggregates them.
func teamRanking(r *http.Request, store records.Store, m metrics.Metrics) ([]view.TeamRankingRow, error) {
	teams, err := store.ListTeams(r.Context())
	if err != nil {
		return nil, err
	}
	games, err := store.ListTeamGames(r.Context())
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := view.TeamRanking(teams, games)
	m.ObserveRankingDuration(time.Since(start).Seconds())
	return rows, err
}

// TeamRankingHandler lists every registered team, including those without games.
func TeamRankingHandler(store records.Store, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := teamRanking(r, store, m)
		if err != nil {
			log.Error("Failed to compute team ranking", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to compute team ranking")
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
