package messaging

import "time"

// NewLeadEvent is handed to the notification dispatcher after a lead is stored.
type NewLeadEvent struct {
	Email      string    `json:"email"`
	Source     string    `json:"source"`
	CapturedAt time.Time `json:"capturedAt"`
}
