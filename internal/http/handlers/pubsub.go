package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/processor"
	"github.com/mauv0809/mahjong-rating/internal/pubsub"
)

// pushEnvelope is the body of a Pub/Sub push delivery.
type pushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID   string `json:"messageId"`
		Data string `json:"data"`
	} `json:"message"`
}

// readPushData unwraps the base64 payload of a push delivery.
func readPushData(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return nil, false
	}
	log.Debug("Received push message", "body", string(bodyBytes))

	var pubsubMsg pushEnvelope
	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return nil, false
	}

	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		http.Error(w, "Invalid base64 data", http.StatusBadRequest)
		return nil, false
	}
	return rawData, true
}

// GameRecordedHandler receives game-recorded events and sends the result notification.
func GameRecordedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, ok := readPushData(w, r)
		if !ok {
			return
		}
		var ev processor.GameRecordedEvent
		if err := pubsubClient.ProcessMessage(rawData, &ev); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if IsDryRunFromContext(r) {
			ev.DryRun = true
		}
		if err := proc.HandleGameRecorded(r.Context(), ev); err != nil {
			// Acknowledge anyway, a redelivery would fail the same way.
			log.Error("Failed to handle game recorded event", "error", err, "eventID", ev.ID)
		}
		w.Write([]byte("OK"))
	}
}
