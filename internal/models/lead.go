package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultLeadSource = "web"

type Lead struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

type LeadForm struct {
	Email  string `form:"email"  json:"email"  validate:"required,email"`
	Source string `form:"source" json:"source" validate:"omitempty,max=64"`
}

func (f *LeadForm) Normalize() {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Source = strings.TrimSpace(f.Source)
	if f.Source == "" {
		f.Source = DefaultLeadSource
	}
}

func (f *LeadForm) FieldMessages() map[string]string {
	return map[string]string{
		"email":  "Invalid email address.",
		"source": "Source must be at most 64 characters.",
	}
}
