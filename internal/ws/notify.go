package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type event struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id,omitempty"`
	Count     int    `json:"count,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NotifyAnalysisUpdated tells subscribers that a user's recommendation
// analysis was recomputed.
func (h *Hub) NotifyAnalysisUpdated(userID uuid.UUID) {
	h.publish(event{
		Type:      "analysis_updated",
		UserID:    userID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NotifyJobsIngested announces a batch of freshly scraped postings.
func (h *Hub) NotifyJobsIngested(count int) {
	h.publish(event{
		Type:      "jobs_ingested",
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Hub) publish(ev event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Printf("[WS] marshal event failed: %v", err)
		return
	}
	h.Broadcast(payload)
}
