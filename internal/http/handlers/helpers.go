package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/scoring"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps store errors to status codes. Unexpected errors are logged.
func writeStoreError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, records.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, records.ErrDuplicate):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.Error("Store operation failed", "action", action, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// decodeBody reads a JSON object keeping numbers as json.Number.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

// hasAll reports whether every key is present in body.
func hasAll(body map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := body[k]; !ok {
			return false
		}
	}
	return true
}

// textField converts a JSON value to trimmed text.
func textField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// intField accepts integers, integral strings, and numbers with a
// fraction, which are truncated toward zero. Values beyond scoring.MaxScore
// are rejected.
func intField(v any) (int, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return boundedScore(float64(n))
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return boundedScore(math.Trunc(f))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return boundedScore(float64(n))
	}
	return 0, false
}

func boundedScore(f float64) (int, bool) {
	if math.IsNaN(f) || math.Abs(f) > scoring.MaxScore {
		return 0, false
	}
	return int(f), true
}
