package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/view"
)

func ListTeamsHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := store.ListTeams(r.Context())
		if err != nil {
			writeStoreError(w, err, "list teams")
			return
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

func CreateTeamHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "team_name required")
			return
		}
		name := textField(body["team_name"])
		if name == "" {
			writeError(w, http.StatusBadRequest, "team_name required")
			return
		}
		id, err := store.CreateTeam(r.Context(), name)
		if err != nil {
			writeStoreError(w, err, "create team")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func DeleteTeamHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if err := store.DeleteTeam(r.Context(), id); err != nil {
			writeStoreError(w, err, "delete team")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func ListTeamMembersHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := store.ListTeamMembers(r.Context())
		if err != nil {
			writeStoreError(w, err, "list team members")
			return
		}
		writeJSON(w, http.StatusOK, members)
	}
}

func AddTeamMemberHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "player_name and team_name required")
			return
		}
		player, team := textField(body["player_name"]), textField(body["team_name"])
		if player == "" || team == "" {
			writeError(w, http.StatusBadRequest, "player_name and team_name required")
			return
		}
		id, err := store.AddTeamMember(r.Context(), team, player)
		if err != nil {
			writeStoreError(w, err, "add team member")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func DeleteTeamMemberHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if err := store.DeleteTeamMember(r.Context(), id); err != nil {
			writeStoreError(w, err, "delete team member")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// TeamOverviewHandler lists every team with its members.
func TeamOverviewHandler(store records.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := store.ListTeams(r.Context())
		if err != nil {
			writeStoreError(w, err, "list teams")
			return
		}
		members, err := store.ListTeamMembers(r.Context())
		if err != nil {
			writeStoreError(w, err, "list team members")
			return
		}
		log.Debug("Building team overview", "teams", len(teams), "members", len(members))
		writeJSON(w, http.StatusOK, view.TeamOverviews(teams, members))
	}
}
