package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"

	DefaultFrequency = FrequencyWeekly
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type Newsletter struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
	OwnerID   uuid.UUID `json:"ownerId"`
}

// NewsletterForm carries the fields shared by create and update. An empty
// frequency falls back to WEEKLY; an empty owner is rejected.
type NewsletterForm struct {
	Name      string `form:"name"      json:"name"      validate:"required,min=3"`
	Frequency string `form:"frequency" json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY"`
	OwnerID   string `form:"ownerId"   json:"ownerId"   validate:"required,uuid"`
}

func (f *NewsletterForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Frequency = strings.ToUpper(strings.TrimSpace(f.Frequency))
	if f.Frequency == "" {
		f.Frequency = string(DefaultFrequency)
	}
	f.OwnerID = strings.TrimSpace(f.OwnerID)
}

func (f *NewsletterForm) FieldMessages() map[string]string {
	return map[string]string{
		"name":      "Name must be at least 3 characters.",
		"frequency": "Please select a frequency.",
		"ownerId":   "Owner is required.",
	}
}
